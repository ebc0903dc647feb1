package hdpath

import (
	"fmt"
	"strings"
)

// AccountHDPath 是 BIP-44 层级中的账户前缀：m/purpose'/coin_type'/account'，
// 三段全部强化。它本身不用于派生地址，而是作为派生其他路径的基础，
// 文本形式输出为 m/44'/0'/0'/x/x。
type AccountHDPath struct {
	purpose  Purpose
	coinType uint32
	account  uint32
}

// NewAccount 按字段构造账户路径，校验顺序与错误形式同 NewStandard
func NewAccount(purpose Purpose, coinType, account uint32) (*AccountHDPath, error) {
	if !IsValidValue(uint32(purpose)) {
		return nil, &FieldError{Field: "purpose", Value: uint32(purpose)}
	}
	if !IsValidValue(coinType) {
		return nil, &FieldError{Field: "coin_type", Value: coinType}
	}
	if !IsValidValue(account) {
		return nil, &FieldError{Field: "account", Value: account}
	}
	return &AccountHDPath{
		purpose:  purpose,
		coinType: coinType,
		account:  account,
	}, nil
}

// MustAccount 同 NewAccount，字段越界时 panic
func MustAccount(purpose Purpose, coinType, account uint32) *AccountHDPath {
	path, err := NewAccount(purpose, coinType, account)
	if err != nil {
		panic(err)
	}
	return path
}

// AccountFromPath 把通用容器收窄为账户路径，段数必须恰好为 3。
// 更长的标准兼容路径只能通过 ParseAccount 的显式截断接受。
func AccountFromPath(path *CustomHDPath) (*AccountHDPath, error) {
	if int(path.Len()) != 3 {
		return nil, &InvalidLengthError{Len: int(path.Len())}
	}
	return accountFromPrefix(path)
}

// accountFromPrefix 校验前三段并构造账户路径，不关心容器的总长度
func accountFromPrefix(path *CustomHDPath) (*AccountHDPath, error) {
	p0, _ := path.Get(0)
	p1, _ := path.Get(1)
	p2, _ := path.Get(2)
	if !p0.IsHardened() || !p1.IsHardened() || !p2.IsHardened() {
		return nil, ErrInvalidStructure
	}
	purpose, err := PurposeFromValue(p0.AsNumber())
	if err != nil {
		return nil, err
	}
	return &AccountHDPath{
		purpose:  purpose,
		coinType: p1.AsNumber(),
		account:  p2.AsNumber(),
	}, nil
}

// ParseAccount 解析文本形式的账户路径。
// 接受 m/84'/0'/0'、带占位后缀的 m/84'/0'/0'/x/x，
// 以及更长的标准兼容路径（如 m/84'/0'/0'/0/0，截断为账户前缀）。
func ParseAccount(s string) (*AccountHDPath, error) {
	clean := strings.TrimSuffix(s, "/x/x")
	path, err := ParseCustom(clean)
	if err != nil {
		return nil, err
	}
	if path.Len() < 3 {
		return nil, &InvalidLengthError{Len: int(path.Len())}
	}
	return accountFromPrefix(path)
}

// AccountFromBytes 解码二进制形式的账户路径，段数必须恰好为 3
func AccountFromBytes(buf []byte) (*AccountHDPath, error) {
	path, err := CustomFromBytes(buf)
	if err != nil {
		return nil, err
	}
	return AccountFromPath(path)
}

// AddressAt 在该账户下派生地址路径，重新校验 change 与 index。
// change 或 index 落在强化空间时返回 FieldError。
func (a *AccountHDPath) AddressAt(change, index uint32) (*StandardHDPath, error) {
	return NewStandard(a.purpose, a.coinType, a.account, change, index)
}

func (a *AccountHDPath) Purpose() Purpose {
	return a.purpose
}

func (a *AccountHDPath) CoinType() uint32 {
	return a.coinType
}

func (a *AccountHDPath) Account() uint32 {
	return a.account
}

func (a *AccountHDPath) Len() uint8 {
	return 3
}

func (a *AccountHDPath) Get(pos uint8) (PathValue, bool) {
	switch pos {
	case 0:
		return a.purpose.AsValue(), true
	case 1:
		return PathValue{value: a.coinType, hardened: true}, true
	case 2:
		return PathValue{value: a.account, hardened: true}, true
	}
	return PathValue{}, false
}

// ToCustom 转换回通用容器（三段，不含占位符）
func (a *AccountHDPath) ToCustom() *CustomHDPath {
	return CustomFromHDPath(a)
}

// Cmp 按 (purpose, coin_type, account) 的字典序比较
func (a *AccountHDPath) Cmp(other *AccountHDPath) int {
	pairs := [3][2]uint32{
		{uint32(a.purpose), uint32(other.purpose)},
		{a.coinType, other.coinType},
		{a.account, other.account},
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

func (a *AccountHDPath) String() string {
	return fmt.Sprintf("m/%d'/%d'/%d'/x/x", uint32(a.purpose), a.coinType, a.account)
}
