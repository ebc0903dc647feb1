package hdpath

import (
	"errors"
	"fmt"
)

// 路径相关的错误定义。所有可失败的公开操作都同步返回这里定义的错误，
// 内部不做任何恢复或重试。
var (
	// ErrHighBitIsSet 表示数值已占用最高位（>= 2^31），不能作为路径段的幅值
	ErrHighBitIsSet = errors.New("hdpath: high bit is set")
	// ErrInvalidFormat 表示输入的文本或二进制数据不符合路径语法/布局
	ErrInvalidFormat = errors.New("hdpath: invalid format")
	// ErrInvalidStructure 表示长度匹配但某个位置的强化标记与目标形状不符，
	// 或者解析出的路径没有任何路径段
	ErrInvalidStructure = errors.New("hdpath: invalid structure")
)

// InvalidLengthError 表示路径段数量或字节长度与目标形状不兼容
type InvalidLengthError struct {
	Len int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("hdpath: invalid length %d", e.Len)
}

// InvalidPurposeError 表示首段数值无法作为 Purpose 接受
type InvalidPurposeError struct {
	Code uint32
}

func (e *InvalidPurposeError) Error() string {
	return fmt.Sprintf("hdpath: invalid purpose %d", e.Code)
}

// FieldError 表示按字段构造固定形状路径时，某个字段超出了 31 位取值范围。
// 字段按 purpose, coin_type, account, change, index 的固定顺序校验，
// 第一个失败的字段会短路后续校验。
type FieldError struct {
	Field string
	Value uint32
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("hdpath: invalid %s: %d", e.Field, e.Value)
}
