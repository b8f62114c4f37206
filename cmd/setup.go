package cmd

import (
	"costwatch/internal/service/setup"
	"costwatch/internal/templates"

	"github.com/spf13/cobra"
)

var (
	setupReplace bool
	setupTopic   string
)

// setupCmd represents the setup command
var setupCmd = &cobra.Command{
	Use:   "setup [budget_amount] [email_address]",
	Short: "コスト監視リソース（SNSトピック＋予算）を一括作成",
	Long: `SNSトピックの作成、メールアドレスの購読登録、Budgetsサービスへの
公開許可ポリシーの設定、予算と通知ルールの作成をまとめて行います。

予算額は整数部1〜4桁・小数部2桁までのUSD建て文字列で指定します。
メールアドレスを省略した場合は git config user.email の値を使います。
各ステップは冪等なので、失敗しても再実行すれば途中から復旧できます。

例:
  ` + AppName + ` setup                       # 予算額0.01 USD、git configのメールアドレスを使用
  ` + AppName + ` setup 50                    # 予算額50 USD
  ` + AppName + ` setup 50 a@example.com      # 予算額とメールアドレスを指定
  REPLACE_BUDGET=1 ` + AppName + ` setup 50   # 既存予算を削除して再作成`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount := ""
		email := ""
		if len(args) > 0 {
			amount = args[0]
		}
		if len(args) > 1 {
			email = args[1]
		}

		// バリデーションエラー時のみUsageを表示する
		opts, err := setup.ResolveOptions(amount, email)
		if err != nil {
			return err
		}
		cmd.SilenceUsage = true

		opts.TopicName = setupTopic
		opts.Replace = resolveReplaceBudget()
		opts.TemplateDir = templates.Dir()

		clients := setup.ClientSet{
			Sns:     awsClients.Sns(),
			Sts:     awsClients.Sts(),
			Budgets: awsClients.Budgets(),
		}
		return setup.Run(clients, opts)
	},
}

func init() {
	RootCmd.AddCommand(setupCmd)

	setupCmd.Flags().BoolVar(&setupReplace, "replace", false, "既存予算を削除して再作成（環境変数 REPLACE_BUDGET でも指定可）")
	setupCmd.Flags().StringVar(&setupTopic, "topic", setup.DefaultTopicName, "SNSトピック名")
}
