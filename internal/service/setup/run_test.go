package setup

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"costwatch/internal/templates"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/budgets"
	budgettypes "github.com/aws/aws-sdk-go-v2/service/budgets/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder はサービス横断の呼び出し順を記録する
type recorder struct {
	calls []string
}

type fakeSns struct {
	rec        *recorder
	subscribed []*sns.SubscribeInput
	policies   []*sns.SetTopicAttributesInput
}

func (f *fakeSns) CreateTopic(ctx context.Context, params *sns.CreateTopicInput, optFns ...func(*sns.Options)) (*sns.CreateTopicOutput, error) {
	f.rec.calls = append(f.rec.calls, "sns.CreateTopic")
	arn := "arn:aws:sns:us-east-1:123456789012:" + aws.ToString(params.Name)
	return &sns.CreateTopicOutput{TopicArn: aws.String(arn)}, nil
}

func (f *fakeSns) Subscribe(ctx context.Context, params *sns.SubscribeInput, optFns ...func(*sns.Options)) (*sns.SubscribeOutput, error) {
	f.rec.calls = append(f.rec.calls, "sns.Subscribe")
	f.subscribed = append(f.subscribed, params)
	return &sns.SubscribeOutput{SubscriptionArn: aws.String("pending confirmation")}, nil
}

func (f *fakeSns) SetTopicAttributes(ctx context.Context, params *sns.SetTopicAttributesInput, optFns ...func(*sns.Options)) (*sns.SetTopicAttributesOutput, error) {
	f.rec.calls = append(f.rec.calls, "sns.SetTopicAttributes")
	f.policies = append(f.policies, params)
	return &sns.SetTopicAttributesOutput{}, nil
}

type fakeSts struct {
	rec *recorder
}

func (f *fakeSts) GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
	f.rec.calls = append(f.rec.calls, "sts.GetCallerIdentity")
	return &sts.GetCallerIdentityOutput{Account: aws.String("123456789012")}, nil
}

type fakeBudgets struct {
	rec     *recorder
	names   []string
	created []*budgets.CreateBudgetInput
	deleted []string
}

func (f *fakeBudgets) DescribeBudgets(ctx context.Context, params *budgets.DescribeBudgetsInput, optFns ...func(*budgets.Options)) (*budgets.DescribeBudgetsOutput, error) {
	f.rec.calls = append(f.rec.calls, "budgets.DescribeBudgets")
	var bs []budgettypes.Budget
	for _, n := range f.names {
		bs = append(bs, budgettypes.Budget{BudgetName: aws.String(n)})
	}
	return &budgets.DescribeBudgetsOutput{Budgets: bs}, nil
}

func (f *fakeBudgets) CreateBudget(ctx context.Context, params *budgets.CreateBudgetInput, optFns ...func(*budgets.Options)) (*budgets.CreateBudgetOutput, error) {
	f.rec.calls = append(f.rec.calls, "budgets.CreateBudget")
	f.created = append(f.created, params)
	return &budgets.CreateBudgetOutput{}, nil
}

func (f *fakeBudgets) DeleteBudget(ctx context.Context, params *budgets.DeleteBudgetInput, optFns ...func(*budgets.Options)) (*budgets.DeleteBudgetOutput, error) {
	f.rec.calls = append(f.rec.calls, "budgets.DeleteBudget")
	f.deleted = append(f.deleted, aws.ToString(params.BudgetName))
	return &budgets.DeleteBudgetOutput{}, nil
}

func newFakes(existingBudgets ...string) (*recorder, ClientSet, *fakeSns, *fakeBudgets) {
	rec := &recorder{}
	snsFake := &fakeSns{rec: rec}
	budgetsFake := &fakeBudgets{rec: rec, names: existingBudgets}
	clients := ClientSet{
		Sns:     snsFake,
		Sts:     &fakeSts{rec: rec},
		Budgets: budgetsFake,
	}
	return rec, clients, snsFake, budgetsFake
}

// setupTemplateDir は3テンプレート全てを持つディレクトリを作る
func setupTemplateDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		templates.TopicPolicyFile: `{
  "Statement": [{"Resource": "<TOPIC_ARN_PLACEHOLDER>", "Condition": {"StringEquals": {"aws:SourceAccount": "<ACCOUNT_ID_PLACEHOLDER>"}}}]
}`,
		templates.BudgetFile: `{
  "BudgetName": "MonthlyCharges",
  "BudgetLimit": {"Amount": "<BUDGET_AMOUNT_PLACEHOLDER>", "Unit": "USD"},
  "BudgetType": "COST",
  "TimeUnit": "MONTHLY"
}`,
		templates.NotificationFile: `[
  {
    "Notification": {"ComparisonOperator": "GREATER_THAN", "NotificationType": "ACTUAL", "Threshold": 80, "ThresholdType": "PERCENTAGE"},
    "Subscribers": [{"Address": "<TOPIC_ARN_PLACEHOLDER>", "SubscriptionType": "SNS"}]
  }
]`,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestRunCreatesEverything(t *testing.T) {
	// 予算が存在しない状態からのフルセットアップ
	rec, clients, snsFake, budgetsFake := newFakes()

	err := Run(clients, Options{
		BudgetAmount: "50",
		Email:        "a@b.com",
		TopicName:    DefaultTopicName,
		TemplateDir:  setupTemplateDir(t),
	})
	require.NoError(t, err)

	// ステージの実行順: トピック → 購読 → アカウントID → ポリシー → 予算
	assert.Equal(t, []string{
		"sns.CreateTopic",
		"sns.Subscribe",
		"sts.GetCallerIdentity",
		"sns.SetTopicAttributes",
		"budgets.DescribeBudgets",
		"budgets.CreateBudget",
	}, rec.calls)

	require.Len(t, snsFake.subscribed, 1)
	assert.Equal(t, "a@b.com", aws.ToString(snsFake.subscribed[0].Endpoint))

	require.Len(t, budgetsFake.created, 1)
	created := budgetsFake.created[0]
	assert.Equal(t, "MonthlyCharges", aws.ToString(created.Budget.BudgetName))
	assert.Equal(t, "50", aws.ToString(created.Budget.BudgetLimit.Amount))
	assert.Equal(t, "arn:aws:sns:us-east-1:123456789012:AWS_Charges",
		aws.ToString(created.NotificationsWithSubscribers[0].Subscribers[0].Address))
}

func TestRunKeepsExistingBudget(t *testing.T) {
	// 既存予算あり・置き換えなし: 削除も作成も行わず正常終了
	rec, clients, _, budgetsFake := newFakes("MonthlyCharges")

	err := Run(clients, Options{
		BudgetAmount: "50",
		Email:        "a@b.com",
		TemplateDir:  setupTemplateDir(t),
	})
	require.NoError(t, err)

	assert.NotContains(t, rec.calls, "budgets.DeleteBudget")
	assert.NotContains(t, rec.calls, "budgets.CreateBudget")
	assert.Empty(t, budgetsFake.deleted)
}

func TestRunReplacesExistingBudget(t *testing.T) {
	// 既存予算あり・置き換えあり: 削除してから再作成
	rec, clients, _, budgetsFake := newFakes("MonthlyCharges")

	err := Run(clients, Options{
		BudgetAmount: "50",
		Email:        "a@b.com",
		TemplateDir:  setupTemplateDir(t),
		Replace:      true,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"MonthlyCharges"}, budgetsFake.deleted)
	assert.Contains(t, rec.calls, "budgets.DeleteBudget")
	assert.Contains(t, rec.calls, "budgets.CreateBudget")
	assert.Less(t,
		indexOf(rec.calls, "budgets.DeleteBudget"),
		indexOf(rec.calls, "budgets.CreateBudget"))
}

func TestRunInvalidAmountMakesNoRemoteCalls(t *testing.T) {
	// 整数部5桁は検証で弾かれ、リモート呼び出しは発生しない
	rec, clients, _, _ := newFakes()

	err := Run(clients, Options{
		BudgetAmount: "10000",
		Email:        "a@b.com",
		TemplateDir:  setupTemplateDir(t),
	})
	require.Error(t, err)
	assert.Empty(t, rec.calls)
}

func TestRunMissingPolicyTemplate(t *testing.T) {
	// ポリシーテンプレートだけ欠落: トピック作成と購読は済んだ後、
	// ポリシー設定の前に設定エラーで停止する
	rec, clients, snsFake, _ := newFakes()
	dir := setupTemplateDir(t)
	require.NoError(t, os.Remove(filepath.Join(dir, templates.TopicPolicyFile)))

	err := Run(clients, Options{
		BudgetAmount: "50",
		Email:        "a@b.com",
		TemplateDir:  dir,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), templates.TopicPolicyFile)

	assert.Equal(t, []string{
		"sns.CreateTopic",
		"sns.Subscribe",
		"sts.GetCallerIdentity",
	}, rec.calls)
	assert.Empty(t, snsFake.policies)
}

func TestRunIsRerunnable(t *testing.T) {
	// 同一入力で2回実行しても2回目はPresentKeepになり、予算作成は1回だけ
	rec, clients, _, budgetsFake := newFakes()
	dir := setupTemplateDir(t)
	opts := Options{BudgetAmount: "50", Email: "a@b.com", TemplateDir: dir}

	require.NoError(t, Run(clients, opts))
	budgetsFake.names = []string{"MonthlyCharges"} // 1回目の作成結果を反映
	require.NoError(t, Run(clients, opts))

	createCount := 0
	for _, c := range rec.calls {
		if c == "budgets.CreateBudget" {
			createCount++
		}
	}
	assert.Equal(t, 1, createCount)
}

func indexOf(calls []string, target string) int {
	for i, c := range calls {
		if c == target {
			return i
		}
	}
	return -1
}
