package budget

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/budgets"
)

// BudgetsApi は予算操作で利用するBudgets APIの抽象
// テストではフェイク実装を注入する
type BudgetsApi interface {
	DescribeBudgets(ctx context.Context, params *budgets.DescribeBudgetsInput, optFns ...func(*budgets.Options)) (*budgets.DescribeBudgetsOutput, error)
	CreateBudget(ctx context.Context, params *budgets.CreateBudgetInput, optFns ...func(*budgets.Options)) (*budgets.CreateBudgetOutput, error)
	DeleteBudget(ctx context.Context, params *budgets.DeleteBudgetInput, optFns ...func(*budgets.Options)) (*budgets.DeleteBudgetOutput, error)
}

var _ BudgetsApi = (*budgets.Client)(nil)

// State は既存予算の観測状態
// 1回のDescribeBudgets結果から導出し、以降の遷移判断に使う
type State int

const (
	StateAbsent         State = iota // 予算が存在しない → 作成する
	StatePresentKeep                 // 存在し、置き換え指定なし → 何もしない
	StatePresentReplace              // 存在し、置き換え指定あり → 削除して再作成
)

// String はStateの表示名を返す
func (s State) String() string {
	switch s {
	case StateAbsent:
		return "absent"
	case StatePresentKeep:
		return "present(keep)"
	case StatePresentReplace:
		return "present(replace)"
	default:
		return "unknown"
	}
}

// ReconcileOptions は予算作成処理のパラメータ
type ReconcileOptions struct {
	AccountId   string // 予算の所属アカウントID
	TopicArn    string // 通知先SNSトピックのARN
	Amount      string // 予算上限（USD、検証済みの文字列）
	TemplateDir string // テンプレートディレクトリ
	Replace     bool   // 既存予算を削除して再作成するか
}

// ReconcileResult は予算作成処理の結果
type ReconcileResult struct {
	State      State
	BudgetName string
}

// ListOptions は予算一覧表示のオプション
type ListOptions struct {
	Filter string // 検索パターン（グロブまたは部分一致）
}

// DeleteOptions は予算削除のオプション
type DeleteOptions struct {
	Filter string // 削除対象の検索パターン（必須）
	Exact  bool   // 名前の完全一致のみ対象にする
}
