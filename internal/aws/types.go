package aws

// Context は認証情報を保持
type Context struct {
	Profile string
	Region  string
}
