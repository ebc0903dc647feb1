package hdpath

import "strconv"

// FirstBit 是 32 位原始值中标记强化(Hardened)派生的最高位
const FirstBit uint32 = 0x80000000

// PathValue 是路径中的单个路径段：一个 31 位幅值加上强化标记。
// 构造之后不可变，可以自由复制。
type PathValue struct {
	value    uint32
	hardened bool
}

// IsValidValue 检查数值是否在路径段允许的范围内（< 2^31）
func IsValidValue(value uint32) bool {
	return value < FirstBit
}

// TryNormal 构造一个普通（非强化）路径段
func TryNormal(value uint32) (PathValue, error) {
	if !IsValidValue(value) {
		return PathValue{}, ErrHighBitIsSet
	}
	return PathValue{value: value}, nil
}

// TryHardened 构造一个强化路径段
func TryHardened(value uint32) (PathValue, error) {
	if !IsValidValue(value) {
		return PathValue{}, ErrHighBitIsSet
	}
	return PathValue{value: value, hardened: true}, nil
}

// Normal 构造普通路径段，仅用于字面量等已经校验过的输入。
// 数值越界时 panic，属于调用方编程错误而非运行时条件。
func Normal(value uint32) PathValue {
	pv, err := TryNormal(value)
	if err != nil {
		panic("hdpath: raw hardened value passed")
	}
	return pv
}

// Hardened 构造强化路径段，越界时 panic，见 Normal
func Hardened(value uint32) PathValue {
	pv, err := TryHardened(value)
	if err != nil {
		panic("hdpath: raw hardened value passed")
	}
	return pv
}

// FromRaw 从 32 位原始值解码路径段。任何 uint32 都对应唯一的路径段，
// 因此该函数不会失败。
func FromRaw(raw uint32) PathValue {
	if raw >= FirstBit {
		return PathValue{value: raw - FirstBit, hardened: true}
	}
	return PathValue{value: raw}
}

// AsNumber 返回去掉强化标记后的幅值
func (pv PathValue) AsNumber() uint32 {
	return pv.value
}

// ToRaw 返回 32 位原始编码，是 FromRaw 的逆运算
func (pv PathValue) ToRaw() uint32 {
	if pv.hardened {
		return pv.value + FirstBit
	}
	return pv.value
}

// IsHardened 返回该路径段是否为强化段
func (pv PathValue) IsHardened() bool {
	return pv.hardened
}

// String 输出规范文本：普通段为十进制数字，强化段带 ' 后缀
func (pv PathValue) String() string {
	s := strconv.FormatUint(uint64(pv.value), 10)
	if pv.hardened {
		return s + "'"
	}
	return s
}
