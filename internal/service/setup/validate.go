package setup

import (
	"fmt"
	"regexp"
	"strings"

	"costwatch/internal/cli"
)

// 予算額のパターン: 整数部1〜4桁、小数部は任意で1〜2桁
var budgetAmountRe = regexp.MustCompile(`^\d{1,4}(\.\d{1,2})?$`)

// gitEmailFunc はテストで差し替えるためのフック
var gitEmailFunc = cli.GetGitUserEmail

// ValidateBudgetAmount は予算額の書式を検証する
func ValidateBudgetAmount(amount string) error {
	if !budgetAmountRe.MatchString(amount) {
		return fmt.Errorf("❌ 予算額 %q が不正です（整数部1〜4桁、小数部は2桁まで）", amount)
	}
	return nil
}

// ResolveEmail は引数のメールアドレスを優先し、空ならgit config user.emailから取得する
// 引数で指定された場合はgit configの設定値に関わらずそのまま使う
func ResolveEmail(email string) (string, error) {
	if email != "" {
		return email, nil
	}
	fallback, err := gitEmailFunc()
	if err == nil {
		fallback = strings.TrimSpace(fallback)
	}
	if err != nil || fallback == "" {
		return "", fmt.Errorf("❌ メールアドレスが指定されておらず、git config user.email からも取得できませんでした")
	}
	fmt.Println("🔍 git config user.email の値 '" + fallback + "' を使用します")
	return fallback, nil
}

// ResolveOptions は引数を検証してOptionsを組み立てる
// 検証を通過するまでリモート呼び出しは一切行わない
func ResolveOptions(amount, email string) (Options, error) {
	if amount == "" {
		amount = DefaultBudgetAmount
	}
	if err := ValidateBudgetAmount(amount); err != nil {
		return Options{}, err
	}
	resolved, err := ResolveEmail(email)
	if err != nil {
		return Options{}, err
	}
	return Options{
		BudgetAmount: amount,
		Email:        resolved,
		TopicName:    DefaultTopicName,
	}, nil
}
