package common

// ListOutput はリスト表示の共通構造体
type ListOutput struct {
	Title        string   // 例: "予算一覧"
	Items        []string // 表示するアイテムのリスト
	ResourceName string   // 例: "予算", "トピック"
	ShowCount    bool     // 合計数を表示するか
}

// ProcessResult は処理結果を保持する構造体
type ProcessResult struct {
	Item    string
	Success bool
	Error   error
}
