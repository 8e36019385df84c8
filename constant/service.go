package constant

const (
	ServiceName    = "wiki-service"
	ServiceVersion = "1.0.0"
)

// COSObjectKeyPrefixLogos 工具 logo 在 COS 中的对象键前缀
const COSObjectKeyPrefixLogos = "listings/logos/"

// DefaultMaxLogoSize logo 上传大小上限 (2MB)
const DefaultMaxLogoSize int64 = 2 << 20

// 用户名长度范围，按字符计，去掉首尾空白后校验
const (
	MinUsernameLength = 3
	MaxUsernameLength = 50
)
