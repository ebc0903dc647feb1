package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hdpath-core/pkg/errno"
)

// rootCmd 代表基础命令，没有子命令时直接调用
var rootCmd = &cobra.Command{
	Use:   "hdpath-cli",
	Short: "HD 派生路径命令行工具",
	Long: `解析、校验和编码 BIP-32 分层派生路径的命令行工具。
支持 BIP-44/49/84 标准路径形状、二进制编码，以及通过 hdkeychain 派生扩展密钥。`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute 将所有子命令添加到根命令并执行
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		code, msg := errno.Decode(err)
		fmt.Fprintf(os.Stderr, "错误 [%d]: %s\n", code, msg)
		os.Exit(1)
	}
}
