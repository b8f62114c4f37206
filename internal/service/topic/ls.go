package topic

import (
	"context"
	"fmt"

	"costwatch/internal/service/common"

	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// ListTopics はリージョン内のSNSトピック一覧を表示する
func ListTopics(client sns.ListTopicsAPIClient) error {
	paginator := sns.NewListTopicsPaginator(client, &sns.ListTopicsInput{})

	var arns []string
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(context.Background())
		if err != nil {
			return fmt.Errorf(common.ListErrorFormat, common.ErrorIcon, "SNSトピック", err)
		}
		for _, t := range out.Topics {
			if t.TopicArn != nil {
				arns = append(arns, *t.TopicArn)
			}
		}
	}

	common.PrintSimpleList(common.ListOutput{
		Title:        "SNSトピック一覧",
		Items:        arns,
		ResourceName: "トピック",
		ShowCount:    true,
	})
	return nil
}
