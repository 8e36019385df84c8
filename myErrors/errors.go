package myErrors

import "errors"

// ErrCacheMiss 表示在缓存层未找到对应的键值
var ErrCacheMiss = errors.New("cache: key not found (miss)")

// 账号相关
var (
	ErrAccountTaken       = errors.New("邮箱或用户名已被注册")
	ErrUsernameTaken      = errors.New("用户名已被占用")
	ErrInvalidCredentials = errors.New("邮箱或密码错误")
	ErrUserBanned         = errors.New("账号已被封禁")
	ErrInvalidUsername    = errors.New("用户名长度必须在 3 到 50 个字符之间")
)

// 工具与审核
var (
	ErrInvalidCategory  = errors.New("分类不存在")
	ErrAlreadyModerated = errors.New("该工具已被审核过")
	ErrReasonRequired   = errors.New("拒绝时必须提供原因")
	ErrStorageDisabled  = errors.New("对象存储未配置")
)

// 评价、收藏、勋章
var (
	ErrInvalidRating      = errors.New("评分必须在 1 到 5 之间")
	ErrDuplicateReview    = errors.New("已经评价过该工具")
	ErrDuplicateFavorite  = errors.New("该工具已在收藏中")
	ErrBadgeAlreadyOwned  = errors.New("已经拥有该勋章")
	ErrInsufficientPoints = errors.New("可用积分不足")
)

// 请求参数
var (
	ErrEmptyQuery      = errors.New("搜索关键词不能为空")
	ErrLogoTooLarge    = errors.New("logo 文件过大")
	ErrInvalidLogoType = errors.New("logo 必须是图片")
)
