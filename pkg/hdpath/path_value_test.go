package hdpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidValue(t *testing.T) {
	// 31 位以内的值全部合法
	for _, v := range []uint32{0, 1, 2, 3, 100, 1000, 10000, 0x80000000 - 1} {
		assert.True(t, IsValidValue(v), "value: %d", v)
	}
	// 占用最高位的值全部非法
	for _, v := range []uint32{0x80000000, 0x80000001, 0xffffffff} {
		assert.False(t, IsValidValue(v), "value: %d", v)
	}
}

func TestTryNormal(t *testing.T) {
	pv, err := TryNormal(101)
	if err != nil {
		t.Fatalf("构造普通路径段失败: %v", err)
	}
	assert.Equal(t, uint32(101), pv.AsNumber())
	assert.False(t, pv.IsHardened())

	_, err = TryNormal(0x80000001)
	assert.ErrorIs(t, err, ErrHighBitIsSet)
}

func TestTryHardened(t *testing.T) {
	pv, err := TryHardened(44)
	if err != nil {
		t.Fatalf("构造强化路径段失败: %v", err)
	}
	assert.Equal(t, uint32(44), pv.AsNumber())
	assert.True(t, pv.IsHardened())

	_, err = TryHardened(0x80000000)
	assert.ErrorIs(t, err, ErrHighBitIsSet)
}

func TestPanicOnInvalidLiteral(t *testing.T) {
	assert.Panics(t, func() { Normal(0x80000001) })
	assert.Panics(t, func() { Hardened(0x80000001) })
}

func TestFromRaw(t *testing.T) {
	assert.Equal(t, Normal(0), FromRaw(0))
	assert.Equal(t, Normal(100), FromRaw(100))
	assert.Equal(t, Normal(0xffffff), FromRaw(0xffffff))

	assert.Equal(t, Hardened(0), FromRaw(0x80000000))
	assert.Equal(t, Hardened(1), FromRaw(0x80000001))
	assert.Equal(t, Hardened(44), FromRaw(0x8000002c))
}

func TestToRaw(t *testing.T) {
	assert.Equal(t, uint32(0), Normal(0).ToRaw())
	assert.Equal(t, uint32(123), Normal(123).ToRaw())
	assert.Equal(t, uint32(0x80000000), Hardened(0).ToRaw())
	assert.Equal(t, uint32(0x8000002c), Hardened(44).ToRaw())
}

// 原始值编解码必须对所有合法幅值构成双射
func TestRawRoundTrip(t *testing.T) {
	for _, v := range []uint32{0, 1, 44, 1000, 0x7fffffff} {
		assert.Equal(t, Normal(v), FromRaw(Normal(v).ToRaw()), "normal %d", v)
		assert.Equal(t, Hardened(v), FromRaw(Hardened(v).ToRaw()), "hardened %d", v)
	}
}

func TestPathValueString(t *testing.T) {
	assert.Equal(t, "0", Normal(0).String())
	assert.Equal(t, "11", Normal(11).String())
	assert.Equal(t, "0'", Hardened(0).String())
	assert.Equal(t, "11'", Hardened(11).String())
}
