package topic

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// SubscribeEmail はトピックにメールアドレスをemailプロトコルで購読登録する
// 購読は受信者が確認メールのリンクを踏むまでPendingConfirmationのままだが、
// ここでは承認を待たずリクエスト送信のみ行う（確認はAWSからのメールで完結する）
func SubscribeEmail(client SnsApi, topicArn, email string) (string, error) {
	out, err := client.Subscribe(context.Background(), &sns.SubscribeInput{
		TopicArn: aws.String(topicArn),
		Protocol: aws.String("email"),
		Endpoint: aws.String(email),
	})
	if err != nil {
		return "", fmt.Errorf("❌ %s の購読登録に失敗: %w", email, err)
	}
	// emailプロトコルでは確認完了までARNの代わりに"pending confirmation"が返る
	if out.SubscriptionArn == nil || *out.SubscriptionArn == "" {
		return "pending confirmation", nil
	}
	return *out.SubscriptionArn, nil
}
