package topic

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// EnsureTopic はSNSトピックを作成してARNを返す
// CreateTopicは同名トピックが既に存在する場合も同じARNを返すため、
// 再実行しても安全（冪等性はAWS側が保証する）
func EnsureTopic(client SnsApi, name string) (string, error) {
	out, err := client.CreateTopic(context.Background(), &sns.CreateTopicInput{
		Name: aws.String(name),
	})
	if err != nil {
		return "", fmt.Errorf("❌ SNSトピック %s の作成に失敗: %w", name, err)
	}
	if out.TopicArn == nil || *out.TopicArn == "" {
		return "", fmt.Errorf("❌ SNSトピック %s のARNを取得できませんでした", name)
	}
	return *out.TopicArn, nil
}
