package budget

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"costwatch/internal/service/common"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/budgets"
	"github.com/aws/smithy-go"
)

// Delete は予算を名前指定で削除する
func Delete(client BudgetsApi, accountId, name string) error {
	_, err := client.DeleteBudget(context.Background(), &budgets.DeleteBudgetInput{
		AccountId:  aws.String(accountId),
		BudgetName: aws.String(name),
	})
	if err != nil {
		return fmt.Errorf(common.DeleteErrorFormat, common.ErrorIcon, "予算 "+name, err)
	}
	return nil
}

// DeleteBudgets はフィルターに一致する予算を並列で削除する
func DeleteBudgets(client BudgetsApi, accountId string, opts DeleteOptions) error {
	if opts.Filter == "" {
		return fmt.Errorf("フィルターパターンは必須です")
	}

	names, err := ListBudgetNames(client, accountId)
	if err != nil {
		return err
	}

	// 削除対象を絞り込み
	var targets []string
	for _, n := range names {
		if opts.Exact {
			if n == opts.Filter {
				targets = append(targets, n)
			}
		} else if common.MatchPattern(n, opts.Filter) {
			targets = append(targets, n)
		}
	}

	if len(targets) == 0 {
		fmt.Printf("フィルター '%s' に一致する予算が見つかりませんでした\n", opts.Filter)
		return nil
	}

	// 並列実行数を設定（最大8並列）
	maxWorkers := 8
	if len(targets) < maxWorkers {
		maxWorkers = len(targets)
	}

	executor := common.NewParallelExecutor(maxWorkers)
	results := make([]common.ProcessResult, len(targets))
	resultsMutex := &sync.Mutex{}

	fmt.Printf("🚀 %d個の予算を最大%d並列で削除します...\n\n", len(targets), maxWorkers)

	for i, name := range targets {
		idx := i
		n := name
		executor.Execute(func() {
			err := Delete(client, accountId, n)

			resultsMutex.Lock()
			switch {
			case err == nil:
				fmt.Printf(common.DeleteSuccessFormat+"\n", common.SuccessIcon, "予算 "+n)
				results[idx] = common.ProcessResult{Item: n, Success: true}
			case isNotFound(err):
				// 並行削除などで既に消えているケースは成功扱い
				fmt.Printf("%s 予算 %s は既に削除されていました\n", common.WarningIcon, n)
				results[idx] = common.ProcessResult{Item: n, Success: true}
			default:
				fmt.Printf("%s 予算 %s の削除に失敗しました: %v\n", common.ErrorIcon, n, err)
				results[idx] = common.ProcessResult{Item: n, Success: false, Error: err}
			}
			resultsMutex.Unlock()
		})
	}

	executor.Wait()

	// 結果の集計
	successCount, failCount := common.CollectResults(results)
	fmt.Printf("\n%s 削除完了: 成功 %d個, 失敗 %d個\n", common.SuccessIcon, successCount, failCount)

	if failCount > 0 {
		return fmt.Errorf("一部の予算の削除に失敗しました")
	}
	return nil
}

// isNotFound はBudgets APIのNotFoundExceptionかどうかを判定する
func isNotFound(err error) bool {
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode() == "NotFoundException"
}
