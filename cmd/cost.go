package cmd

import (
	costsvc "costwatch/internal/service/cost"

	"github.com/spf13/cobra"
)

// costCmd represents the cost command
var costCmd = &cobra.Command{
	Use:   "cost",
	Short: "当月のコストを表示",
	Long: `Cost Explorerで当月1日から今日までの未調整コストをサービス別に表示します。

例:
  ` + AppName + ` cost`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return costsvc.ShowMonthToDate(awsClients.CostExplorer())
	},
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(costCmd)
}
