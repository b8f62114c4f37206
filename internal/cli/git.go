package cli

import (
	"os/exec"
	"strings"
)

// GetGitConfig はgit configの値を取得する
func GetGitConfig(key string) (string, error) {
	cmd := exec.Command("git", "config", "--get", key)
	output, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(output)), nil
}

// GetGitUserEmail はgitに設定されたメールアドレスを取得する
// ローカル設定がなければグローバル設定の値が返る
func GetGitUserEmail() (string, error) {
	return GetGitConfig("user.email")
}
