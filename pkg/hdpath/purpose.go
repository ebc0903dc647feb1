package hdpath

import "fmt"

// Purpose 是路径的第一个（总是强化的）路径段，标识整条路径遵循的约定，
// 参考 BIP-43。
//
// 相等与排序只看底层数值：Custom(44) 与 Pubkey 在比较意义下完全相同，
// 符号名称只影响 String 输出。这与原有的下游排序行为保持一致。
type Purpose uint32

const (
	PurposeNone       Purpose = 0  // m/0'
	PurposePubkey     Purpose = 44 // BIP-44, P2PKH
	PurposeScriptHash Purpose = 49 // BIP-49, P2WPKH-in-P2SH
	PurposeWitness    Purpose = 84 // BIP-84, P2WPKH
)

// PurposeFromValue 从无符号数值构造 Purpose。
// 数值占用最高位时返回 ErrHighBitIsSet。
func PurposeFromValue(value uint32) (Purpose, error) {
	if !IsValidValue(value) {
		return 0, ErrHighBitIsSet
	}
	return Purpose(value), nil
}

// PurposeFromInt 从带符号整数构造 Purpose，负值视为非法 Purpose
func PurposeFromInt(value int) (Purpose, error) {
	if value < 0 {
		return 0, &InvalidPurposeError{Code: 0}
	}
	return PurposeFromValue(uint32(value))
}

// AsValue 返回 Purpose 对应的路径段，总是强化段
func (p Purpose) AsValue() PathValue {
	return PathValue{value: uint32(p), hardened: true}
}

// IsCustom 返回该 Purpose 是否没有符号名称
func (p Purpose) IsCustom() bool {
	switch p {
	case PurposeNone, PurposePubkey, PurposeScriptHash, PurposeWitness:
		return false
	}
	return true
}

func (p Purpose) String() string {
	switch p {
	case PurposeNone:
		return "None"
	case PurposePubkey:
		return "Pubkey"
	case PurposeScriptHash:
		return "ScriptHash"
	case PurposeWitness:
		return "Witness"
	}
	return fmt.Sprintf("Custom(%d)", uint32(p))
}
