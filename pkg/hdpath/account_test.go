package hdpath

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAccount(t *testing.T) {
	tests := []struct {
		path    string
		purpose Purpose
		coin    uint32
		account uint32
	}{
		{"m/84'/0'/5'", PurposeWitness, 0, 5},
		{"m/84'/0'/5'/x/x", PurposeWitness, 0, 5},
		{"m/49'/0'/5'", PurposeScriptHash, 0, 5},
		{"m/44'/0'/5'", PurposePubkey, 0, 5},
		{"m/218'/0'/5'", Purpose(218), 0, 5},
	}
	for _, tt := range tests {
		acc, err := ParseAccount(tt.path)
		require.NoError(t, err, "test: %s", tt.path)
		assert.Equal(t, tt.purpose, acc.Purpose())
		assert.Equal(t, tt.coin, acc.CoinType())
		assert.Equal(t, tt.account, acc.Account())
	}
}

// 更长的标准兼容路径解析时截断为账户前缀
func TestParseAccountFromFullPath(t *testing.T) {
	acc, err := ParseAccount("m/84'/0'/5'/0/101")
	require.NoError(t, err)
	assert.Equal(t, PurposeWitness, acc.Purpose())
	assert.Equal(t, uint32(0), acc.CoinType())
	assert.Equal(t, uint32(5), acc.Account())
}

func TestParseAccountInvalid(t *testing.T) {
	_, err := ParseAccount("m/84'/0'")
	var lenErr *InvalidLengthError
	require.True(t, errors.As(err, &lenErr))
	assert.Equal(t, 2, lenErr.Len)

	_, err = ParseAccount("m/84/0'/5'")
	assert.ErrorIs(t, err, ErrInvalidStructure)
}

// 容器到账户形状的结构转换要求段数恰好为 3
func TestAccountFromPathExactArity(t *testing.T) {
	path, err := ParseCustom("m/84'/0'/0'/0/0")
	require.NoError(t, err)
	_, err = AccountFromPath(path)
	var lenErr *InvalidLengthError
	require.True(t, errors.As(err, &lenErr))
	assert.Equal(t, 5, lenErr.Len)

	path, err = ParseCustom("m/84'/0'/0'")
	require.NoError(t, err)
	acc, err := AccountFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, MustAccount(PurposeWitness, 0, 0), acc)
}

func TestAccountString(t *testing.T) {
	acc, err := ParseAccount("m/84'/0'/5'/0/101")
	require.NoError(t, err)
	assert.Equal(t, "m/84'/0'/5'/x/x", acc.String())
}

func TestAccountAddressAt(t *testing.T) {
	acc, err := ParseAccount("m/84'/0'/0'")
	require.NoError(t, err)

	change, err := acc.AddressAt(1, 3)
	require.NoError(t, err)
	want, err := ParseStandard("m/84'/0'/0'/1/3")
	require.NoError(t, err)
	assert.Equal(t, want, change)

	receive, err := acc.AddressAt(0, 15)
	require.NoError(t, err)
	want, err = ParseStandard("m/84'/0'/0'/0/15")
	require.NoError(t, err)
	assert.Equal(t, want, receive)
}

func TestAccountAddressAtInvalid(t *testing.T) {
	acc := MustAccount(PurposeWitness, 0, 0)
	_, err := acc.AddressAt(0x80000000, 0)
	var fieldErr *FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "change", fieldErr.Field)

	_, err = acc.AddressAt(0, 0x80000001)
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "index", fieldErr.Field)
}

func TestAccountFromStandard(t *testing.T) {
	tests := []struct {
		full    string
		account string
	}{
		{"m/84'/0'/0'/0/15", "m/84'/0'/0'"},
		{"m/84'/0'/3'/0/0", "m/84'/0'/3'"},
		{"m/44'/1'/1'/0/0", "m/44'/1'/1'"},
	}
	for _, tt := range tests {
		std, err := ParseStandard(tt.full)
		require.NoError(t, err, "test: %s", tt.full)
		want, err := ParseAccount(tt.account)
		require.NoError(t, err)
		assert.Equal(t, want, std.ToAccount())
	}
}

func TestAccountBytesRoundTrip(t *testing.T) {
	acc := MustAccount(PurposeWitness, 0, 5)
	decoded, err := AccountFromBytes(ToBytes(acc))
	require.NoError(t, err)
	assert.Equal(t, acc, decoded)
}

func TestAccountParent(t *testing.T) {
	acc := MustAccount(PurposeWitness, 0, 5)
	parent, err := Parent(acc)
	require.NoError(t, err)
	assert.Equal(t, "m/84'/0'", parent.String())
}

func TestMustAccountPanics(t *testing.T) {
	assert.Panics(t, func() { MustAccount(PurposePubkey, 0x80000000, 0) })
}
