package cmd

import (
	"fmt"
	"os"
)

// resolveReplaceBudget はコマンドラインフラグまたは環境変数から既存予算の置き換え可否を決定する
func resolveReplaceBudget() bool {
	if setupReplace {
		fmt.Println("🔍 --replaceオプションが指定されたため、既存予算を置き換えます")
		return true
	}
	if os.Getenv("REPLACE_BUDGET") != "" {
		fmt.Println("🔍 環境変数 REPLACE_BUDGET が設定されているため、既存予算を置き換えます")
		return true
	}
	return false
}
