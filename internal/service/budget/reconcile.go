package budget

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"costwatch/internal/service/common"
	"costwatch/internal/templates"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/budgets"
)

// Reconcile は予算の状態を判定し、必要なら削除・作成を行う
// 遷移は3状態:
//
//	Absent          → テンプレートから作成
//	PresentKeep     → 何もしない（呼び出し側が案内を表示する）
//	PresentReplace  → 名前指定で削除してから作成
func Reconcile(client BudgetsApi, opts ReconcileOptions) (ReconcileResult, error) {
	// テンプレートの欠落は設定エラーなので、このステージの
	// リモート呼び出しより前にまとめて確認する
	budgetDoc, err := templates.LoadFile(filepath.Join(opts.TemplateDir, templates.BudgetFile))
	if err != nil {
		return ReconcileResult{}, err
	}
	notifDoc, err := templates.LoadFile(filepath.Join(opts.TemplateDir, templates.NotificationFile))
	if err != nil {
		return ReconcileResult{}, err
	}

	// 予算名はテンプレートのBudgetNameフィールドが正
	budgetName, err := extractBudgetName(budgetDoc)
	if err != nil {
		return ReconcileResult{}, err
	}

	fmt.Printf("%s 予算 %s の有無を確認中...\n", common.SearchIcon, budgetName)
	names, err := ListBudgetNames(client, opts.AccountId)
	if err != nil {
		return ReconcileResult{}, err
	}

	state := DecideState(names, budgetName, opts.Replace)
	result := ReconcileResult{State: state, BudgetName: budgetName}

	switch state {
	case StatePresentKeep:
		return result, nil
	case StatePresentReplace:
		fmt.Printf("%s 既存の予算 %s を削除中...\n", common.ProcessIcon, budgetName)
		if err := Delete(client, opts.AccountId, budgetName); err != nil {
			return result, err
		}
	}

	fmt.Printf("💰 予算 %s を作成中...（上限 %s USD）\n", budgetName, opts.Amount)
	if err := create(client, opts, budgetDoc, notifDoc); err != nil {
		return result, err
	}
	fmt.Printf(common.CreateSuccessFormat+"\n", common.SuccessIcon, "予算 "+budgetName)
	return result, nil
}

// DecideState は予算名一覧から遷移先の状態を決定する
// 判定は完全一致（大文字小文字を区別）で行い、
// 似た名前の予算を前方一致や部分一致で誤検知しない
func DecideState(names []string, budgetName string, replace bool) State {
	for _, n := range names {
		if n == budgetName {
			if replace {
				return StatePresentReplace
			}
			return StatePresentKeep
		}
	}
	return StateAbsent
}

// ListBudgetNames はアカウントの予算名一覧を取得する
func ListBudgetNames(client BudgetsApi, accountId string) ([]string, error) {
	var names []string
	input := &budgets.DescribeBudgetsInput{AccountId: aws.String(accountId)}
	for {
		out, err := client.DescribeBudgets(context.Background(), input)
		if err != nil {
			return nil, fmt.Errorf(common.ListErrorFormat, common.ErrorIcon, "予算", err)
		}
		for _, b := range out.Budgets {
			if b.BudgetName != nil {
				names = append(names, *b.BudgetName)
			}
		}
		if out.NextToken == nil {
			break
		}
		input.NextToken = out.NextToken
	}
	return names, nil
}

// extractBudgetName は予算テンプレートのBudgetNameフィールドを読み取る
func extractBudgetName(doc string) (string, error) {
	var probe struct {
		BudgetName string
	}
	if err := json.Unmarshal([]byte(doc), &probe); err != nil {
		return "", fmt.Errorf("❌ 予算テンプレートの解析に失敗: %w", err)
	}
	if probe.BudgetName == "" {
		return "", fmt.Errorf("❌ 予算テンプレートにBudgetNameがありません")
	}
	return probe.BudgetName, nil
}
