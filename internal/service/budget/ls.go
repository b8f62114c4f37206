package budget

import (
	"context"
	"fmt"

	"costwatch/internal/service/common"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/budgets"
	"github.com/aws/aws-sdk-go-v2/service/budgets/types"
)

// List はアカウントの予算一覧を表示する
func List(client BudgetsApi, accountId string, opts ListOptions) error {
	input := &budgets.DescribeBudgetsInput{AccountId: aws.String(accountId)}

	var items []string
	for {
		out, err := client.DescribeBudgets(context.Background(), input)
		if err != nil {
			return fmt.Errorf(common.ListErrorFormat, common.ErrorIcon, "予算", err)
		}
		for _, b := range out.Budgets {
			if b.BudgetName == nil {
				continue
			}
			name := *b.BudgetName
			if opts.Filter != "" && !common.MatchPattern(name, opts.Filter) {
				continue
			}
			items = append(items, formatBudgetLine(name, b))
		}
		if out.NextToken == nil {
			break
		}
		input.NextToken = out.NextToken
	}

	var filterLabel string
	if opts.Filter != "" {
		filterLabel = fmt.Sprintf("'%s' に一致する", opts.Filter)
	}
	common.PrintSimpleList(common.ListOutput{
		Title:        common.GenerateFilteredTitle("予算", filterLabel),
		Items:        items,
		ResourceName: "予算",
		ShowCount:    true,
	})
	return nil
}

// formatBudgetLine は予算1件を「名前 (上限 / 実績)」形式に整形する
func formatBudgetLine(name string, b types.Budget) string {
	if b.BudgetLimit == nil || b.BudgetLimit.Amount == nil {
		return name
	}
	unit := aws.ToString(b.BudgetLimit.Unit)
	line := fmt.Sprintf("%s (上限: %s %s", name, aws.ToString(b.BudgetLimit.Amount), unit)
	if b.CalculatedSpend != nil && b.CalculatedSpend.ActualSpend != nil && b.CalculatedSpend.ActualSpend.Amount != nil {
		line += fmt.Sprintf(", 実績: %s %s", aws.ToString(b.CalculatedSpend.ActualSpend.Amount), unit)
	}
	return line + ")"
}
