package cmd

import (
	"costwatch/internal/service/account"
	budgetsvc "costwatch/internal/service/budget"

	"github.com/spf13/cobra"
)

var (
	budgetAccountId string

	// budget ls flags
	budgetLsFilter string
	// budget rm flags
	budgetRmSearch string
	budgetRmExact  bool
)

// BudgetCmd represents the budget command
var BudgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "予算リソース操作コマンド",
	Long:  `AWS Budgetsの予算に関する操作コマンド群です。一覧表示と削除に対応しています。`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 親のPersistentPreRunEを実行（AWSクライアント初期化）
		if err := RootCmd.PersistentPreRunE(cmd, args); err != nil {
			return err
		}

		// Budgets APIはアカウントID指定が必須
		accountId, err := account.GetAccountId(awsClients.Sts())
		if err != nil {
			cmd.SilenceUsage = true
			return err
		}
		budgetAccountId = accountId
		return nil
	},
}

var budgetLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "予算一覧を表示",
	Long: `アカウントの予算一覧を上限額・実績額つきで表示します。

例:
  ` + AppName + ` budget ls                # 全予算
  ` + AppName + ` budget ls -s "Monthly*"  # パターンに一致する予算のみ`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return budgetsvc.List(awsClients.Budgets(), budgetAccountId, budgetsvc.ListOptions{
			Filter: budgetLsFilter,
		})
	},
	SilenceUsage: true,
}

var budgetRmCmd = &cobra.Command{
	Use:   "rm",
	Short: "予算を削除",
	Long: `検索パターンに一致する予算を削除します。

例:
  ` + AppName + ` budget rm -s "test-*"               # パターンマッチで削除
  ` + AppName + ` budget rm -s MonthlyCharges --exact # 完全一致で削除`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return budgetsvc.DeleteBudgets(awsClients.Budgets(), budgetAccountId, budgetsvc.DeleteOptions{
			Filter: budgetRmSearch,
			Exact:  budgetRmExact,
		})
	},
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(BudgetCmd)
	BudgetCmd.AddCommand(budgetLsCmd)
	BudgetCmd.AddCommand(budgetRmCmd)

	// budget ls flags
	budgetLsCmd.Flags().StringVarP(&budgetLsFilter, "search", "s", "", "検索パターン（*でグロブ、なしで部分一致）")

	// budget rm flags
	budgetRmCmd.Flags().StringVarP(&budgetRmSearch, "search", "s", "", "削除対象の検索パターン（必須）")
	_ = budgetRmCmd.MarkFlagRequired("search")
	budgetRmCmd.Flags().BoolVar(&budgetRmExact, "exact", false, "名前の完全一致のみ削除")
}
