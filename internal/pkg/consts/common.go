package consts

const (
	// PageSize 所有列表页固定每页 10 条
	PageSize = 10

	AuthCookieName = "blog_token"

	MaxImageWidth = 1600
	MaxUploadSize = 10 << 20
)
