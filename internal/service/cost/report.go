// Package cost はCost Explorerによるコスト集計の表示を行う
package cost

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"costwatch/internal/service/common"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
)

// CostExplorerApi はコスト集計で利用するCost Explorer APIの抽象
type CostExplorerApi interface {
	GetCostAndUsage(ctx context.Context, params *costexplorer.GetCostAndUsageInput, optFns ...func(*costexplorer.Options)) (*costexplorer.GetCostAndUsageOutput, error)
}

var _ CostExplorerApi = (*costexplorer.Client)(nil)

// ShowMonthToDate は当月1日から今日までの未調整コストをサービス別に表示する
func ShowMonthToDate(client CostExplorerApi) error {
	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	// Endは排他的なので翌日を指定して当日分まで含める
	end := now.AddDate(0, 0, 1)

	out, err := client.GetCostAndUsage(context.Background(), &costexplorer.GetCostAndUsageInput{
		TimePeriod: &types.DateInterval{
			Start: aws.String(start.Format("2006-01-02")),
			End:   aws.String(end.Format("2006-01-02")),
		},
		Granularity: types.GranularityMonthly,
		Metrics:     []string{"UnblendedCost"},
		GroupBy: []types.GroupDefinition{
			{Type: types.GroupDefinitionTypeDimension, Key: aws.String("SERVICE")},
		},
	})
	if err != nil {
		return fmt.Errorf(common.GetErrorFormat, common.ErrorIcon, "当月コスト", err)
	}

	var items []string
	total := 0.0
	for _, result := range out.ResultsByTime {
		for _, g := range result.Groups {
			metric, ok := g.Metrics["UnblendedCost"]
			if !ok || metric.Amount == nil {
				continue
			}
			amount, err := strconv.ParseFloat(*metric.Amount, 64)
			if err != nil || amount == 0 {
				continue
			}
			total += amount
			items = append(items, fmt.Sprintf("%s: %.2f USD", strings.Join(g.Keys, "/"), amount))
		}
	}

	fmt.Printf("💰 当月のコスト（%s 〜 %s）\n", start.Format("2006-01-02"), now.Format("2006-01-02"))
	common.PrintSimpleList(common.ListOutput{
		Title:        "サービス別コスト",
		Items:        items,
		ResourceName: "コスト計上サービス",
	})
	fmt.Printf("\n合計: %.2f USD\n", total)
	return nil
}
