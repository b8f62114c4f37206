// Package setup はコスト監視リソース（SNSトピック＋予算）の一括作成フローを実装する
package setup

import (
	"costwatch/internal/service/account"
	"costwatch/internal/service/budget"
	"costwatch/internal/service/topic"
)

// デフォルト値
const (
	DefaultTopicName    = "AWS_Charges"
	DefaultBudgetAmount = "0.01"
)

// ClientSet はセットアップ処理が利用するAWSクライアント一式
type ClientSet struct {
	Sns     topic.SnsApi
	Sts     account.StsApi
	Budgets budget.BudgetsApi
}

// Options はセットアップ処理のパラメータ
// 各ステージはこの構造体経由で設定を受け取り、プロセスグローバルには依存しない
type Options struct {
	BudgetAmount string // 予算上限（USD）
	Email        string // 通知先メールアドレス
	TopicName    string // SNSトピック名
	TemplateDir  string // テンプレートディレクトリ
	Replace      bool   // 既存予算を削除して再作成するか
}
