package topic

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"costwatch/internal/templates"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// AttachPublishPolicy はBudgetsサービスからの公開を許可するポリシーをトピックに設定する
// 既存のポリシーとマージはせず、Policy属性を丸ごと置き換える
func AttachPublishPolicy(client SnsApi, opts PolicyOptions) error {
	doc, err := templates.LoadFile(filepath.Join(opts.TemplateDir, templates.TopicPolicyFile))
	if err != nil {
		return err
	}

	rendered := templates.Render(doc, map[string]string{
		templates.TopicArnPlaceholder:  opts.TopicArn,
		templates.AccountIdPlaceholder: opts.AccountId,
	})
	if rest := templates.Unresolved(rendered); len(rest) > 0 {
		return fmt.Errorf("❌ ポリシーテンプレートに未解決のプレースホルダーが残っています: %s", strings.Join(rest, ", "))
	}

	_, err = client.SetTopicAttributes(context.Background(), &sns.SetTopicAttributesInput{
		TopicArn:       aws.String(opts.TopicArn),
		AttributeName:  aws.String("Policy"),
		AttributeValue: aws.String(rendered),
	})
	if err != nil {
		return fmt.Errorf("❌ トピックポリシーの設定に失敗: %w", err)
	}
	return nil
}
