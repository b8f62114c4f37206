package templates

import (
	"fmt"
	"os"
	"path/filepath"
)

// LoadFile はテンプレートファイルを読み込む
// ファイルの欠落は設定エラーとして、そのテンプレートを使うステージの
// リモート呼び出しより前に報告される
func LoadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("❌ テンプレートファイル %s が見つかりません", path)
		}
		return "", fmt.Errorf("❌ テンプレートファイル %s の読み込みに失敗: %w", path, err)
	}
	return string(data), nil
}

// Dir はテンプレートディレクトリのパスを解決する
// 実行ファイルと同じ場所のtemplates/を優先し、
// 無ければカレントディレクトリ相対のtemplates/を返す（go run用）
func Dir() string {
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Join(filepath.Dir(exe), "templates")
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return "templates"
}
