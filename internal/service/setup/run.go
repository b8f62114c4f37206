package setup

import (
	"fmt"

	"costwatch/internal/service/account"
	"costwatch/internal/service/budget"
	"costwatch/internal/service/common"
	"costwatch/internal/service/topic"
)

// Run はコスト監視リソースの作成フローを実行する
// トピック作成 → メール購読 → アカウントID解決 → ポリシー設定 → 予算作成の順。
// 各ステージは冪等なので、途中で失敗してもロールバックせず再実行すればよい
func Run(clients ClientSet, opts Options) error {
	// フロー単体で呼ばれた場合もリモート呼び出し前に検証する
	if err := ValidateBudgetAmount(opts.BudgetAmount); err != nil {
		return err
	}
	if opts.Email == "" {
		return fmt.Errorf("%s メールアドレスが指定されていません", common.ErrorIcon)
	}
	if opts.TopicName == "" {
		opts.TopicName = DefaultTopicName
	}

	fmt.Printf("🔔 SNSトピック %s を作成中...\n", opts.TopicName)
	topicArn, err := topic.EnsureTopic(clients.Sns, opts.TopicName)
	if err != nil {
		return err
	}
	fmt.Printf("%s トピックARN: %s\n", common.SuccessIcon, topicArn)

	fmt.Printf("📧 %s を購読登録中...\n", opts.Email)
	subHandle, err := topic.SubscribeEmail(clients.Sns, topicArn, opts.Email)
	if err != nil {
		return err
	}
	fmt.Printf("%s 購読リクエストを送信しました: %s\n", common.SuccessIcon, subHandle)
	fmt.Printf("%s 通知を受け取るには、届いた確認メールのリンクを承認してください\n", common.WarningIcon)

	fmt.Printf("%s アカウントIDを取得中...\n", common.SearchIcon)
	accountId, err := account.GetAccountId(clients.Sts)
	if err != nil {
		return err
	}
	fmt.Printf("%s アカウントID: %s\n", common.SuccessIcon, accountId)

	fmt.Println("🔐 トピックにBudgets用の公開ポリシーを設定中...")
	err = topic.AttachPublishPolicy(clients.Sns, topic.PolicyOptions{
		TopicArn:    topicArn,
		AccountId:   accountId,
		TemplateDir: opts.TemplateDir,
	})
	if err != nil {
		return err
	}
	fmt.Printf("%s トピックポリシーを設定しました\n", common.SuccessIcon)

	result, err := budget.Reconcile(clients.Budgets, budget.ReconcileOptions{
		AccountId:   accountId,
		TopicArn:    topicArn,
		Amount:      opts.BudgetAmount,
		TemplateDir: opts.TemplateDir,
		Replace:     opts.Replace,
	})
	if err != nil {
		return err
	}

	if result.State == budget.StatePresentKeep {
		fmt.Printf("%s 予算 %s は既に存在するため、そのまま残します（REPLACE_BUDGET=1 で置き換え）\n", common.InfoIcon, result.BudgetName)
		return nil
	}

	fmt.Printf("%s コスト監視のセットアップが完了しました（予算 %s / 上限 %s USD）\n", common.PartyIcon, result.BudgetName, opts.BudgetAmount)
	return nil
}
