package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"hdpath-core/pkg/hdpath"
)

var (
	accountChange uint32
	accountIndex  uint32
)

// accountCmd 代表 account 命令
var accountCmd = &cobra.Command{
	Use:   "account <path>",
	Short: "解析账户路径并派生地址路径",
	Long: `解析 m/44'/0'/0' 或 m/44'/0'/0'/x/x 形式的账户路径，
并按 --change/--index 派生出完整的地址路径。`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		acc, err := hdpath.ParseAccount(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("账户路径: %s\n", acc)
		fmt.Printf("  purpose:   %s\n", acc.Purpose())
		fmt.Printf("  coin_type: %d\n", acc.CoinType())
		fmt.Printf("  account:   %d\n", acc.Account())

		address, err := acc.AddressAt(accountChange, accountIndex)
		if err != nil {
			return err
		}
		fmt.Printf("地址路径: %s\n", address)
		return nil
	},
}

func init() {
	accountCmd.Flags().Uint32Var(&accountChange, "change", 0, "change 层级 (0=收款, 1=找零)")
	accountCmd.Flags().Uint32Var(&accountIndex, "index", 0, "地址索引")
	rootCmd.AddCommand(accountCmd)
}
