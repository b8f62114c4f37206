// Package templates はJSONテンプレートの読み込みとプレースホルダー置換を行う
package templates

import (
	"regexp"
	"strings"
)

// テンプレート内のプレースホルダー
const (
	TopicArnPlaceholder     = "<TOPIC_ARN_PLACEHOLDER>"
	AccountIdPlaceholder    = "<ACCOUNT_ID_PLACEHOLDER>"
	BudgetAmountPlaceholder = "<BUDGET_AMOUNT_PLACEHOLDER>"
)

// テンプレートファイル名
const (
	TopicPolicyFile  = "topic-policy.json"
	BudgetFile       = "budget.json"
	NotificationFile = "notification-with-subscribers.json"
)

// placeholderRe は未解決プレースホルダーの検出用
var placeholderRe = regexp.MustCompile(`<[A-Z_]+_PLACEHOLDER>`)

// Render はテンプレート内のプレースホルダーを値で置換する
// 同じプレースホルダーが複数回現れても全て置換される純粋な文字列置換
func Render(doc string, bindings map[string]string) string {
	for placeholder, value := range bindings {
		doc = strings.ReplaceAll(doc, placeholder, value)
	}
	return doc
}

// Unresolved はドキュメントに残っているプレースホルダーを返す
// リモートAPIへ未解決のドキュメントを送らないための事前チェックに使う
func Unresolved(doc string) []string {
	return placeholderRe.FindAllString(doc, -1)
}
