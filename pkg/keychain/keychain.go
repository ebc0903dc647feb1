package keychain

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"

	"hdpath-core/pkg/hdpath"
)

// 本包是 pkg/hdpath 与 btcutil/hdkeychain 之间的可选桥接：
// 把有序的 (是否强化, 幅值) 序列喂给外部派生库，仅依赖 hdpath 的公开访问器。
// 实际的密钥派生完全由 hdkeychain 完成。

var (
	ErrInvalidSeed = errors.New("无效的种子")
)

// ChildIndexes 把路径转换为 hdkeychain 使用的原始子索引序列，
// 强化段加上 HardenedKeyStart 偏移
func ChildIndexes(path hdpath.HDPath) []uint32 {
	n := path.Len()
	out := make([]uint32, 0, n)
	for i := uint8(0); i < n; i++ {
		pv, _ := path.Get(i)
		if pv.IsHardened() {
			out = append(out, hdkeychain.HardenedKeyStart+pv.AsNumber())
		} else {
			out = append(out, pv.AsNumber())
		}
	}
	return out
}

// Key 包装了 BIP-32 扩展密钥
type Key struct {
	key     *hdkeychain.ExtendedKey
	network *chaincfg.Params
}

// NewMasterKey 从 BIP-39 种子生成主密钥。
// network 为 nil 时默认使用 chaincfg.MainNetParams。
func NewMasterKey(seed []byte, network *chaincfg.Params) (*Key, error) {
	if len(seed) < 16 || len(seed) > 64 {
		return nil, ErrInvalidSeed
	}
	if network == nil {
		network = &chaincfg.MainNetParams
	}
	masterKey, err := hdkeychain.NewMaster(seed, network)
	if err != nil {
		return nil, fmt.Errorf("生成主密钥失败: %w", err)
	}
	return &Key{key: masterKey, network: network}, nil
}

// Derive 沿路径逐级派生子密钥
func (k *Key) Derive(path hdpath.HDPath) (*Key, error) {
	key := k.key
	for _, index := range ChildIndexes(path) {
		child, err := key.Derive(index)
		if err != nil {
			return nil, fmt.Errorf("派生子密钥失败: %w", err)
		}
		key = child
	}
	return &Key{key: key, network: k.network}, nil
}

// String 返回 Base58 编码的密钥字符串 (xprv... / xpub...)
func (k *Key) String() string {
	return k.key.String()
}

// IsPrivate 返回是否包含私钥
func (k *Key) IsPrivate() bool {
	return k.key.IsPrivate()
}

// Neuter 返回对应的扩展公钥
func (k *Key) Neuter() (*Key, error) {
	neutered, err := k.key.Neuter()
	if err != nil {
		return nil, fmt.Errorf("转换公钥失败: %w", err)
	}
	return &Key{key: neutered, network: k.network}, nil
}

// ECPubKey 返回底层的 EC 公钥
func (k *Key) ECPubKey() (*btcec.PublicKey, error) {
	return k.key.ECPubKey()
}
