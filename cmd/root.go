package cmd

import (
	"fmt"
	"os"

	awsx "costwatch/internal/aws"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// AppName はコマンド名（ヘルプの使用例で参照する）
const AppName = "costwatch"

var (
	region  string
	profile string

	// PersistentPreRunEで初期化されるAWSクライアント群
	awsClients *awsx.Clients
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   AppName,
	Short: "AWSコスト監視のセットアップツール",
	Long: `AWSのコスト監視リソースを管理するツールです。

SNSトピックの作成・メール購読・Budgets用ポリシーの設定・予算の作成を
一括で行うsetupコマンドのほか、予算やトピックの一覧表示、
当月コストの確認に対応しています。`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&region, "region", "R", "us-east-1", "AWSリージョン")
	RootCmd.PersistentFlags().StringVarP(&profile, "profile", "P", "", "AWSプロファイル")

	// コマンド実行前に共通でAWS設定の読み込みを行う
	RootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// AWSを使わないコマンドはスキップ
		switch cmd.Name() {
		case "help", "version", "completion", "__complete":
			return nil
		}

		// カレントディレクトリに.envがあれば読み込む（REPLACE_BUDGETなどの指定用）
		_ = godotenv.Load()

		resolveProfile(cmd)

		clients, err := awsx.NewClients(awsx.Context{Profile: profile, Region: region})
		if err != nil {
			cmd.SilenceUsage = true // エラー時のUsage表示を抑制
			return fmt.Errorf("❌ AWS設定の読み込みに失敗: %w", err)
		}
		awsClients = clients
		return nil
	}
}

// resolveProfile はプロファイルの確認と設定を行うプライベート関数
func resolveProfile(cmd *cobra.Command) {
	// プロファイルがすでに指定されている場合は何もしない
	if profile != "" {
		return
	}
	// 環境変数からプロファイル取得を試みる
	envProfile := os.Getenv("AWS_PROFILE")
	if envProfile == "" {
		// どちらもなければSDKのデフォルト解決チェーンに委ねる
		return
	}
	profile = envProfile
	cmd.Println("🔍 環境変数 AWS_PROFILE の値 '" + profile + "' を使用します")
}
