// Package account は呼び出し元AWSアカウントの特定を行う
package account

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// StsApi はアカウントID解決で利用するSTS APIの抽象
type StsApi interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

var _ StsApi = (*sts.Client)(nil)

// GetAccountId は呼び出し元のAWSアカウントIDを取得する
func GetAccountId(client StsApi) (string, error) {
	out, err := client.GetCallerIdentity(context.Background(), &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("❌ アカウントIDの取得に失敗: %w", err)
	}
	if out.Account == nil || *out.Account == "" {
		return "", fmt.Errorf("❌ アカウントIDが空で返されました")
	}
	return *out.Account, nil
}
