package cmd

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hdpath-core/pkg/bip39"
	"hdpath-core/pkg/config"
	"hdpath-core/pkg/hdpath"
	"hdpath-core/pkg/keychain"
	"hdpath-core/pkg/logger"
)

var (
	deriveMnemonic   string
	deriveSeedHex    string
	derivePassphrase string
	deriveTestnet    bool
)

// deriveCmd 代表 derive 命令
var deriveCmd = &cobra.Command{
	Use:   "derive [path]",
	Short: "在指定路径上派生扩展密钥",
	Long: `从助记词或种子生成主密钥，并沿派生路径逐级派生扩展密钥。
路径省略时使用配置中的默认路径。密钥派生由 btcutil/hdkeychain 完成。`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pathStr := config.Global.Path.DefaultPath
		if len(args) == 1 {
			pathStr = args[0]
		}
		path, err := hdpath.ParseCustom(pathStr)
		if err != nil {
			return err
		}

		seed, err := buildSeed()
		if err != nil {
			return err
		}

		network := &chaincfg.MainNetParams
		if deriveTestnet || config.Global.Path.Network == "testnet" {
			network = &chaincfg.TestNet3Params
		}
		logger.Debug("deriving key", zap.String("path", path.String()), zap.String("network", network.Name))

		master, err := keychain.NewMasterKey(seed, network)
		if err != nil {
			return err
		}
		key, err := master.Derive(path)
		if err != nil {
			return err
		}

		fmt.Printf("路径: %s\n", path)
		fmt.Printf("扩展私钥: %s\n", key)
		pub, err := key.Neuter()
		if err != nil {
			return err
		}
		fmt.Printf("扩展公钥: %s\n", pub)
		ecPub, err := key.ECPubKey()
		if err != nil {
			return err
		}
		fmt.Printf("压缩公钥: %s\n", hex.EncodeToString(ecPub.SerializeCompressed()))
		return nil
	},
}

// buildSeed 依据命令行参数构造 BIP-39 种子
func buildSeed() ([]byte, error) {
	switch {
	case deriveSeedHex != "":
		seed, err := hex.DecodeString(deriveSeedHex)
		if err != nil {
			return nil, fmt.Errorf("种子不是合法的十六进制: %w", err)
		}
		return seed, nil
	case deriveMnemonic != "":
		if !bip39.Validate(deriveMnemonic) {
			return nil, errors.New("无效的助记词")
		}
		return bip39.ToSeed(deriveMnemonic, derivePassphrase), nil
	default:
		return nil, errors.New("必须提供 --mnemonic 或 --seed")
	}
}

func init() {
	deriveCmd.Flags().StringVar(&deriveMnemonic, "mnemonic", "", "BIP-39 助记词")
	deriveCmd.Flags().StringVar(&deriveSeedHex, "seed", "", "十六进制编码的种子")
	deriveCmd.Flags().StringVar(&derivePassphrase, "passphrase", "", "助记词密码 (可选)")
	deriveCmd.Flags().BoolVar(&deriveTestnet, "testnet", false, "使用测试网参数")
	rootCmd.AddCommand(deriveCmd)
}
