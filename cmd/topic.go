package cmd

import (
	topicsvc "costwatch/internal/service/topic"

	"github.com/spf13/cobra"
)

// TopicCmd represents the topic command
var TopicCmd = &cobra.Command{
	Use:   "topic",
	Short: "SNSトピック操作コマンド",
}

var topicLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "SNSトピック一覧を表示",
	Long: `リージョン内のSNSトピックのARN一覧を表示します。

例:
  ` + AppName + ` topic ls`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return topicsvc.ListTopics(awsClients.Sns())
	},
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(TopicCmd)
	TopicCmd.AddCommand(topicLsCmd)
}
