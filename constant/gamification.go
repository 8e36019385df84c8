package constant

// 用户角色
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// UserRoleKey / UsernameKey 是鉴权中间件写入 gin.Context 的键，用户 ID 使用 go-common 的 constants.UserIDKey
const (
	UserRoleKey = "userRole"
	UsernameKey = "username"
)

// 积分流水与动态类型
const (
	PointTypeListingApproved = "listing_approved"
	PointTypeReviewCreated   = "review_created"
	ActivityBadgeRedeemed    = "badge_redeemed"
)

// 审核动作
const (
	ModerationActionApprove = "approve"
	ModerationActionReject  = "reject"
)

// DefaultBanReason 管理员未填写原因时使用
const DefaultBanReason = "Violación de términos de uso"
