package budget

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"costwatch/internal/service/common"
	"costwatch/internal/templates"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/budgets"
	"github.com/aws/aws-sdk-go-v2/service/budgets/types"
)

// create はテンプレートを描画して予算と通知ルールを作成する
// 描画済みドキュメントをSDKの型へ変換してCreateBudgetを1回呼ぶ
func create(client BudgetsApi, opts ReconcileOptions, budgetDoc, notifDoc string) error {
	renderedBudget := templates.Render(budgetDoc, map[string]string{
		templates.BudgetAmountPlaceholder: opts.Amount,
	})
	renderedNotif := templates.Render(notifDoc, map[string]string{
		templates.TopicArnPlaceholder: opts.TopicArn,
	})

	// 未解決のプレースホルダーが残ったドキュメントは送信しない
	for _, doc := range []string{renderedBudget, renderedNotif} {
		if rest := templates.Unresolved(doc); len(rest) > 0 {
			return fmt.Errorf("❌ テンプレートに未解決のプレースホルダーが残っています: %s", strings.Join(rest, ", "))
		}
	}

	var budgetDef types.Budget
	if err := json.Unmarshal([]byte(renderedBudget), &budgetDef); err != nil {
		return fmt.Errorf("❌ 予算テンプレートの解析に失敗: %w", err)
	}
	var notifications []types.NotificationWithSubscribers
	if err := json.Unmarshal([]byte(renderedNotif), &notifications); err != nil {
		return fmt.Errorf("❌ 通知テンプレートの解析に失敗: %w", err)
	}

	_, err := client.CreateBudget(context.Background(), &budgets.CreateBudgetInput{
		AccountId:                    aws.String(opts.AccountId),
		Budget:                       &budgetDef,
		NotificationsWithSubscribers: notifications,
	})
	if err != nil {
		return fmt.Errorf(common.CreateErrorFormat, common.ErrorIcon, "予算 "+aws.ToString(budgetDef.BudgetName), err)
	}
	return nil
}
