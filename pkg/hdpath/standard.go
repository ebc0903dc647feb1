package hdpath

import "fmt"

// StandardHDPath 是 BIP-44/49/84 规定的五段标准路径：
// m/purpose'/coin_type'/account'/change/address_index，如 m/44'/0'/0'/0/0。
// 前三段必须强化，后两段必须是普通段。
type StandardHDPath struct {
	purpose  Purpose
	coinType uint32
	account  uint32
	change   uint32
	index    uint32
}

// NewStandard 按字段构造标准路径。
// 字段按 purpose, coin_type, account, change, index 的顺序逐个做范围校验，
// 返回第一个越界字段的 FieldError。
func NewStandard(purpose Purpose, coinType, account, change, index uint32) (*StandardHDPath, error) {
	if !IsValidValue(uint32(purpose)) {
		return nil, &FieldError{Field: "purpose", Value: uint32(purpose)}
	}
	if !IsValidValue(coinType) {
		return nil, &FieldError{Field: "coin_type", Value: coinType}
	}
	if !IsValidValue(account) {
		return nil, &FieldError{Field: "account", Value: account}
	}
	if !IsValidValue(change) {
		return nil, &FieldError{Field: "change", Value: change}
	}
	if !IsValidValue(index) {
		return nil, &FieldError{Field: "index", Value: index}
	}
	return &StandardHDPath{
		purpose:  purpose,
		coinType: coinType,
		account:  account,
		change:   change,
		index:    index,
	}, nil
}

// MustStandard 同 NewStandard，仅用于字面量输入，字段越界时 panic
func MustStandard(purpose Purpose, coinType, account, change, index uint32) *StandardHDPath {
	path, err := NewStandard(purpose, coinType, account, change, index)
	if err != nil {
		panic(err)
	}
	return path
}

// DefaultStandard 返回 m/44'/0'/0'/0/0
func DefaultStandard() *StandardHDPath {
	return &StandardHDPath{purpose: PurposePubkey}
}

// StandardFromPath 把通用容器收窄为标准路径。
// 段数不为 5 返回 InvalidLengthError，强化模式不匹配返回 ErrInvalidStructure，
// 首段数值无法作为 Purpose 时透传相应错误。
func StandardFromPath(path *CustomHDPath) (*StandardHDPath, error) {
	if int(path.Len()) != 5 {
		return nil, &InvalidLengthError{Len: int(path.Len())}
	}
	p0, _ := path.Get(0)
	p1, _ := path.Get(1)
	p2, _ := path.Get(2)
	p3, _ := path.Get(3)
	p4, _ := path.Get(4)
	if !p0.IsHardened() || !p1.IsHardened() || !p2.IsHardened() ||
		p3.IsHardened() || p4.IsHardened() {
		return nil, ErrInvalidStructure
	}
	purpose, err := PurposeFromValue(p0.AsNumber())
	if err != nil {
		return nil, err
	}
	return &StandardHDPath{
		purpose:  purpose,
		coinType: p1.AsNumber(),
		account:  p2.AsNumber(),
		change:   p3.AsNumber(),
		index:    p4.AsNumber(),
	}, nil
}

// ParseStandard 解析文本形式的标准路径
func ParseStandard(s string) (*StandardHDPath, error) {
	path, err := ParseCustom(s)
	if err != nil {
		return nil, err
	}
	return StandardFromPath(path)
}

// StandardFromBytes 解码二进制形式的标准路径，段数必须恰好为 5
func StandardFromBytes(buf []byte) (*StandardHDPath, error) {
	path, err := CustomFromBytes(buf)
	if err != nil {
		return nil, err
	}
	return StandardFromPath(path)
}

func (s *StandardHDPath) Purpose() Purpose {
	return s.purpose
}

func (s *StandardHDPath) CoinType() uint32 {
	return s.coinType
}

func (s *StandardHDPath) Account() uint32 {
	return s.account
}

func (s *StandardHDPath) Change() uint32 {
	return s.change
}

func (s *StandardHDPath) Index() uint32 {
	return s.index
}

func (s *StandardHDPath) Len() uint8 {
	return 5
}

func (s *StandardHDPath) Get(pos uint8) (PathValue, bool) {
	switch pos {
	case 0:
		return s.purpose.AsValue(), true
	case 1:
		return PathValue{value: s.coinType, hardened: true}, true
	case 2:
		return PathValue{value: s.account, hardened: true}, true
	case 3:
		return PathValue{value: s.change}, true
	case 4:
		return PathValue{value: s.index}, true
	}
	return PathValue{}, false
}

// ToCustom 转换回通用容器
func (s *StandardHDPath) ToCustom() *CustomHDPath {
	return CustomFromHDPath(s)
}

// ToAccount 取前三段，投影为账户路径
func (s *StandardHDPath) ToAccount() *AccountHDPath {
	return &AccountHDPath{
		purpose:  s.purpose,
		coinType: s.coinType,
		account:  s.account,
	}
}

// Cmp 按 (purpose, coin_type, account, change, index) 的字典序比较两条路径，
// 各字段按无符号幅值比较。返回 -1、0 或 1。
func (s *StandardHDPath) Cmp(other *StandardHDPath) int {
	pairs := [5][2]uint32{
		{uint32(s.purpose), uint32(other.purpose)},
		{s.coinType, other.coinType},
		{s.account, other.account},
		{s.change, other.change},
		{s.index, other.index},
	}
	for _, p := range pairs {
		if p[0] < p[1] {
			return -1
		}
		if p[0] > p[1] {
			return 1
		}
	}
	return 0
}

// Less 报告 s 是否排在 other 之前
func (s *StandardHDPath) Less(other *StandardHDPath) bool {
	return s.Cmp(other) < 0
}

func (s *StandardHDPath) String() string {
	return fmt.Sprintf("m/%d'/%d'/%d'/%d/%d",
		uint32(s.purpose), s.coinType, s.account, s.change, s.index)
}
