package hdpath

import "fmt"

// ShortHDPath 是四段的简短路径 m/purpose'/coin_type'/account'/index，
// 一些早期钱包（没有 change 层级）使用这种形状。
type ShortHDPath struct {
	Purpose  Purpose
	CoinType uint32
	Account  uint32
	Index    uint32
}

// ShortFromPath 把通用容器收窄为简短路径，段数必须恰好为 4，
// 前三段强化、末段普通。
func ShortFromPath(path *CustomHDPath) (*ShortHDPath, error) {
	if int(path.Len()) != 4 {
		return nil, &InvalidLengthError{Len: int(path.Len())}
	}
	p0, _ := path.Get(0)
	p1, _ := path.Get(1)
	p2, _ := path.Get(2)
	p3, _ := path.Get(3)
	if !p0.IsHardened() || !p1.IsHardened() || !p2.IsHardened() || p3.IsHardened() {
		return nil, ErrInvalidStructure
	}
	purpose, err := PurposeFromValue(p0.AsNumber())
	if err != nil {
		return nil, err
	}
	return &ShortHDPath{
		Purpose:  purpose,
		CoinType: p1.AsNumber(),
		Account:  p2.AsNumber(),
		Index:    p3.AsNumber(),
	}, nil
}

// ParseShort 解析文本形式的简短路径
func ParseShort(s string) (*ShortHDPath, error) {
	path, err := ParseCustom(s)
	if err != nil {
		return nil, err
	}
	return ShortFromPath(path)
}

// ShortFromBytes 解码二进制形式的简短路径，段数必须恰好为 4
func ShortFromBytes(buf []byte) (*ShortHDPath, error) {
	path, err := CustomFromBytes(buf)
	if err != nil {
		return nil, err
	}
	return ShortFromPath(path)
}

func (s *ShortHDPath) Len() uint8 {
	return 4
}

func (s *ShortHDPath) Get(pos uint8) (PathValue, bool) {
	switch pos {
	case 0:
		return s.Purpose.AsValue(), true
	case 1:
		return PathValue{value: s.CoinType, hardened: true}, true
	case 2:
		return PathValue{value: s.Account, hardened: true}, true
	case 3:
		return PathValue{value: s.Index}, true
	}
	return PathValue{}, false
}

// ToCustom 转换回通用容器
func (s *ShortHDPath) ToCustom() *CustomHDPath {
	return CustomFromHDPath(s)
}

func (s *ShortHDPath) String() string {
	return fmt.Sprintf("m/%d'/%d'/%d'/%d", uint32(s.Purpose), s.CoinType, s.Account, s.Index)
}
