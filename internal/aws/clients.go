package aws

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/budgets"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// Clients はAWS設定と各サービスクライアントを管理
type Clients struct {
	cfg aws.Config

	// 遅延初期化されるクライアント群
	sns          *sns.Client
	sts          *sts.Client
	budgets      *budgets.Client
	costExplorer *costexplorer.Client
}

// NewClients は認証情報からAWS設定を読み込んでクライアント管理構造体を作成
func NewClients(ctx Context) (*Clients, error) {
	cfg, err := LoadAwsConfig(ctx)
	if err != nil {
		return nil, err
	}

	return &Clients{cfg: cfg}, nil
}

// Sns は遅延初期化でSNSクライアントを取得
func (c *Clients) Sns() *sns.Client {
	if c.sns == nil {
		c.sns = sns.NewFromConfig(c.cfg)
	}
	return c.sns
}

// Sts は遅延初期化でSTSクライアントを取得
func (c *Clients) Sts() *sts.Client {
	if c.sts == nil {
		c.sts = sts.NewFromConfig(c.cfg)
	}
	return c.sts
}

// Budgets は遅延初期化でBudgetsクライアントを取得
// Budgetsはグローバルエンドポイントのサービスなのでリージョンはどこでもよい
func (c *Clients) Budgets() *budgets.Client {
	if c.budgets == nil {
		c.budgets = budgets.NewFromConfig(c.cfg)
	}
	return c.budgets
}

// CostExplorer は遅延初期化でCost Explorerクライアントを取得
func (c *Clients) CostExplorer() *costexplorer.Client {
	if c.costExplorer == nil {
		c.costExplorer = costexplorer.NewFromConfig(c.cfg)
	}
	return c.costExplorer
}
