package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"hdpath-core/pkg/hdpath"
)

// parseCmd 代表 parse 命令
var parseCmd = &cobra.Command{
	Use:   "parse <path>",
	Short: "解析并检查一条派生路径",
	Long: `解析任意形状的派生路径，输出规范文本形式、逐段分解、
匹配到的标准形状，以及二进制编码。`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := hdpath.ParseCustom(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("规范形式: %s\n", path)
		for i := uint8(0); i < path.Len(); i++ {
			pv, _ := path.Get(i)
			kind := "normal"
			if pv.IsHardened() {
				kind = "hardened"
			}
			fmt.Printf("  段 %d: %-12s %s (raw=0x%08x)\n", i, pv, kind, pv.ToRaw())
		}
		fmt.Printf("形状: %s\n", classify(path))
		fmt.Printf("二进制编码: %s\n", hex.EncodeToString(hdpath.ToBytes(path)))

		if parent, err := hdpath.Parent(path); err == nil && parent.Len() > 0 {
			fmt.Printf("父路径: %s\n", parent)
		}
		return nil
	},
}

// classify 尝试用结构校验器收窄，报告匹配到的固定形状
func classify(path *hdpath.CustomHDPath) string {
	if std, err := hdpath.StandardFromPath(path); err == nil {
		return fmt.Sprintf("standard (purpose=%s coin_type=%d account=%d change=%d index=%d)",
			std.Purpose(), std.CoinType(), std.Account(), std.Change(), std.Index())
	}
	if short, err := hdpath.ShortFromPath(path); err == nil {
		return fmt.Sprintf("short (purpose=%s coin_type=%d account=%d index=%d)",
			short.Purpose, short.CoinType, short.Account, short.Index)
	}
	if acc, err := hdpath.AccountFromPath(path); err == nil {
		return fmt.Sprintf("account (purpose=%s coin_type=%d account=%d)",
			acc.Purpose(), acc.CoinType(), acc.Account())
	}
	return "custom"
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
