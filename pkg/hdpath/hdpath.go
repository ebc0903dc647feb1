package hdpath

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// HDPath 是所有路径类型共用的能力契约：按位置读取有序的路径段序列。
// CustomHDPath、StandardHDPath、ShortHDPath、AccountHDPath 都实现该接口。
type HDPath interface {
	// Len 返回路径段数量
	Len() uint8
	// Get 返回指定位置的路径段。位置在 [0, Len()) 之内时第二个返回值为 true
	Get(pos uint8) (PathValue, bool)
}

// ToBytes 编码为二进制形式：首字节为路径段数量，
// 之后每个路径段占 4 字节，为大端序的 32 位原始值。
// 对满足长度不变式的路径该函数总是成功。
func ToBytes(path HDPath) []byte {
	n := path.Len()
	buf := make([]byte, 1+4*int(n))
	buf[0] = n
	for i := uint8(0); i < n; i++ {
		pv, ok := path.Get(i)
		if !ok {
			panic(fmt.Sprintf("hdpath: no value at %d", i))
		}
		binary.BigEndian.PutUint32(buf[1+4*int(i):], pv.ToRaw())
	}
	return buf
}

// FormatPath 输出规范文本形式："m" 加上每个路径段的 "/段文本"。
// 强化标记统一输出为 '。
func FormatPath(path HDPath) string {
	var sb strings.Builder
	sb.WriteByte('m')
	n := path.Len()
	for i := uint8(0); i < n; i++ {
		pv, _ := path.Get(i)
		sb.WriteByte('/')
		sb.WriteString(pv.String())
	}
	return sb.String()
}

// Parent 去掉最后一个路径段，返回父路径。
// 只有空路径没有父路径；固定形状路径永远非空。
func Parent(path HDPath) (*CustomHDPath, error) {
	n := path.Len()
	if n == 0 {
		return nil, &InvalidLengthError{Len: 0}
	}
	values := make([]PathValue, 0, int(n)-1)
	for i := uint8(0); i < n-1; i++ {
		pv, _ := path.Get(i)
		values = append(values, pv)
	}
	return &CustomHDPath{values: values}, nil
}
