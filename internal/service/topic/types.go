package topic

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// SnsApi はトピック操作で利用するSNS APIの抽象
// テストではフェイク実装を注入する
type SnsApi interface {
	CreateTopic(ctx context.Context, params *sns.CreateTopicInput, optFns ...func(*sns.Options)) (*sns.CreateTopicOutput, error)
	Subscribe(ctx context.Context, params *sns.SubscribeInput, optFns ...func(*sns.Options)) (*sns.SubscribeOutput, error)
	SetTopicAttributes(ctx context.Context, params *sns.SetTopicAttributesInput, optFns ...func(*sns.Options)) (*sns.SetTopicAttributesOutput, error)
}

var _ SnsApi = (*sns.Client)(nil)

// PolicyOptions はアクセスポリシー設定のパラメータ
type PolicyOptions struct {
	TopicArn    string
	AccountId   string
	TemplateDir string
}
