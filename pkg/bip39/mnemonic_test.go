package bip39

import (
	"encoding/hex"
	"testing"
)

func TestGenerate(t *testing.T) {
	// 12 个单词 (128 bits)
	mnemonic12, err := Generate(128)
	if err != nil {
		t.Fatalf("生成 12 词助记词失败: %v", err)
	}
	if !Validate(mnemonic12) {
		t.Errorf("生成的 12 词助记词无效")
	}

	// 24 个单词 (256 bits)
	mnemonic24, err := Generate(256)
	if err != nil {
		t.Fatalf("生成 24 词助记词失败: %v", err)
	}
	if !Validate(mnemonic24) {
		t.Errorf("生成的 24 词助记词无效")
	}
}

func TestToSeed(t *testing.T) {
	// 已知的测试向量
	mnemonic := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	expectedSeedHex := "5eb00bbddcf069084889a8ab9155568165f5c453ccb85e70811aaed6f6da5fc19a5ac40b389cd370d086206dec8aa6c43daea6690f20ad3d8d48b2d2ce9e38e4"

	if !Validate(mnemonic) {
		t.Fatalf("测试向量助记词无效")
	}

	seedHex := hex.EncodeToString(ToSeed(mnemonic, ""))
	if seedHex != expectedSeedHex {
		t.Errorf("Seed 生成不匹配。\n预期: %s\n实际: %s", expectedSeedHex, seedHex)
	}
}

func TestValidateInvalid(t *testing.T) {
	invalid := "hello world invalid mnemonic phrase designed to fail validation check"
	if Validate(invalid) {
		t.Errorf("期望验证失败，但验证通过了")
	}
}
