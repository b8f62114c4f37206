package templates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		bindings map[string]string
		want     string
	}{
		{
			name:     "単一プレースホルダーを置換",
			doc:      `{"Resource": "<TOPIC_ARN_PLACEHOLDER>"}`,
			bindings: map[string]string{TopicArnPlaceholder: "arn:aws:sns:us-east-1:123456789012:AWS_Charges"},
			want:     `{"Resource": "arn:aws:sns:us-east-1:123456789012:AWS_Charges"}`,
		},
		{
			name: "複数プレースホルダーを置換",
			doc:  `{"Resource": "<TOPIC_ARN_PLACEHOLDER>", "Account": "<ACCOUNT_ID_PLACEHOLDER>"}`,
			bindings: map[string]string{
				TopicArnPlaceholder:  "arn:topic",
				AccountIdPlaceholder: "123456789012",
			},
			want: `{"Resource": "arn:topic", "Account": "123456789012"}`,
		},
		{
			name:     "同じプレースホルダーの複数出現を全て置換",
			doc:      `<TOPIC_ARN_PLACEHOLDER>/<TOPIC_ARN_PLACEHOLDER>`,
			bindings: map[string]string{TopicArnPlaceholder: "arn:topic"},
			want:     "arn:topic/arn:topic",
		},
		{
			name:     "バインディングなしなら原文のまま",
			doc:      `{"Amount": "<BUDGET_AMOUNT_PLACEHOLDER>"}`,
			bindings: map[string]string{},
			want:     `{"Amount": "<BUDGET_AMOUNT_PLACEHOLDER>"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.doc, tt.bindings)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderRoundTrip(t *testing.T) {
	// 描画結果には値が含まれ、プレースホルダーは残らない
	doc := `{"a": "<TOPIC_ARN_PLACEHOLDER>", "b": "<ACCOUNT_ID_PLACEHOLDER>", "c": "<BUDGET_AMOUNT_PLACEHOLDER>"}`
	bindings := map[string]string{
		TopicArnPlaceholder:     "arn:aws:sns:us-east-1:123456789012:t",
		AccountIdPlaceholder:    "123456789012",
		BudgetAmountPlaceholder: "50",
	}

	got := Render(doc, bindings)
	for placeholder, value := range bindings {
		assert.Contains(t, got, value)
		assert.NotContains(t, got, placeholder)
	}
	assert.Empty(t, Unresolved(got))
}

func TestUnresolved(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []string
	}{
		{
			name: "未解決なし",
			doc:  `{"a": "b"}`,
			want: nil,
		},
		{
			name: "未解決あり",
			doc:  `{"a": "<TOPIC_ARN_PLACEHOLDER>", "b": "<ACCOUNT_ID_PLACEHOLDER>"}`,
			want: []string{"<TOPIC_ARN_PLACEHOLDER>", "<ACCOUNT_ID_PLACEHOLDER>"},
		},
		{
			name: "プレースホルダー形式でない山括弧は対象外",
			doc:  `{"a": "<html>"}`,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Unresolved(tt.doc))
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "budget.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"BudgetName": "x"}`), 0o644))

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"BudgetName": "x"}`, got)
}

func TestLoadFileMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "topic-policy.json")

	_, err := LoadFile(missing)
	require.Error(t, err)
	// エラーメッセージに欠落ファイル名を含む
	assert.Contains(t, err.Error(), "topic-policy.json")
	assert.Contains(t, err.Error(), "見つかりません")
}
