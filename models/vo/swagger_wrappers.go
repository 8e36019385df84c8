package vo

// --- 用于成功响应且包含具体 Data 的包装器，仅供 swagger 文档使用 ---

// AuthResponseWrapper 对应 response.APIResponse[vo.AuthResponse]
type AuthResponseWrapper struct {
	Code    int          `json:"code" example:"0"`
	Message string       `json:"message,omitempty" example:"success"`
	Data    AuthResponse `json:"data"`
}

// ProfileResponseWrapper 对应 response.APIResponse[vo.ProfileVO]
type ProfileResponseWrapper struct {
	Code    int       `json:"code" example:"0"`
	Message string    `json:"message,omitempty" example:"success"`
	Data    ProfileVO `json:"data"`
}

// ListingResponseWrapper 对应 response.APIResponse[vo.ListingVO]
type ListingResponseWrapper struct {
	Code    int       `json:"code" example:"0"`
	Message string    `json:"message,omitempty" example:"success"`
	Data    ListingVO `json:"data"`
}

// ListingListResponseWrapper 对应 response.APIResponse[[]*vo.ListingVO]
type ListingListResponseWrapper struct {
	Code    int          `json:"code" example:"0"`
	Message string       `json:"message,omitempty" example:"success"`
	Data    []*ListingVO `json:"data"`
}

// ListListingsAdminResponseWrapper 对应 response.APIResponse[vo.ListListingsAdminResponse]
type ListListingsAdminResponseWrapper struct {
	Code    int                       `json:"code" example:"0"`
	Message string                    `json:"message,omitempty" example:"success"`
	Data    ListListingsAdminResponse `json:"data"`
}

// LogoUploadResponseWrapper 对应 response.APIResponse[vo.LogoUploadVO]
type LogoUploadResponseWrapper struct {
	Code    int          `json:"code" example:"0"`
	Message string       `json:"message,omitempty" example:"success"`
	Data    LogoUploadVO `json:"data"`
}

// CategoryListResponseWrapper 对应 response.APIResponse[[]vo.CategoryVO]
type CategoryListResponseWrapper struct {
	Code    int          `json:"code" example:"0"`
	Message string       `json:"message,omitempty" example:"success"`
	Data    []CategoryVO `json:"data"`
}

// CategoryDetailResponseWrapper 对应 response.APIResponse[vo.CategoryDetailVO]
type CategoryDetailResponseWrapper struct {
	Code    int              `json:"code" example:"0"`
	Message string           `json:"message,omitempty" example:"success"`
	Data    CategoryDetailVO `json:"data"`
}

// CategoryStatsResponseWrapper 对应 response.APIResponse[vo.CategoryStatsVO]
type CategoryStatsResponseWrapper struct {
	Code    int             `json:"code" example:"0"`
	Message string          `json:"message,omitempty" example:"success"`
	Data    CategoryStatsVO `json:"data"`
}

// ReviewResponseWrapper 对应 response.APIResponse[vo.ReviewVO]
type ReviewResponseWrapper struct {
	Code    int      `json:"code" example:"0"`
	Message string   `json:"message,omitempty" example:"success"`
	Data    ReviewVO `json:"data"`
}

// ReviewListResponseWrapper 对应 response.APIResponse[[]*vo.ReviewVO]
type ReviewListResponseWrapper struct {
	Code    int         `json:"code" example:"0"`
	Message string      `json:"message,omitempty" example:"success"`
	Data    []*ReviewVO `json:"data"`
}

// FavoriteListResponseWrapper 对应 response.APIResponse[[]*vo.FavoriteVO]
type FavoriteListResponseWrapper struct {
	Code    int           `json:"code" example:"0"`
	Message string        `json:"message,omitempty" example:"success"`
	Data    []*FavoriteVO `json:"data"`
}

// FavoriteResponseWrapper 对应 response.APIResponse[vo.FavoriteVO]
type FavoriteResponseWrapper struct {
	Code    int        `json:"code" example:"0"`
	Message string     `json:"message,omitempty" example:"success"`
	Data    FavoriteVO `json:"data"`
}

// FavoriteCheckResponseWrapper 对应 response.APIResponse[vo.FavoriteCheckVO]
type FavoriteCheckResponseWrapper struct {
	Code    int             `json:"code" example:"0"`
	Message string          `json:"message,omitempty" example:"success"`
	Data    FavoriteCheckVO `json:"data"`
}

// RankingResponseWrapper 对应 response.APIResponse[[]*vo.RankingEntryVO]
type RankingResponseWrapper struct {
	Code    int               `json:"code" example:"0"`
	Message string            `json:"message,omitempty" example:"success"`
	Data    []*RankingEntryVO `json:"data"`
}

// PublicProfileResponseWrapper 对应 response.APIResponse[vo.PublicProfileVO]
type PublicProfileResponseWrapper struct {
	Code    int             `json:"code" example:"0"`
	Message string          `json:"message,omitempty" example:"success"`
	Data    PublicProfileVO `json:"data"`
}

// ActivityListResponseWrapper 对应 response.APIResponse[[]*vo.ActivityVO]
type ActivityListResponseWrapper struct {
	Code    int           `json:"code" example:"0"`
	Message string        `json:"message,omitempty" example:"success"`
	Data    []*ActivityVO `json:"data"`
}

// BadgeListResponseWrapper 对应 response.APIResponse[[]vo.BadgeVO]
type BadgeListResponseWrapper struct {
	Code    int       `json:"code" example:"0"`
	Message string    `json:"message,omitempty" example:"success"`
	Data    []BadgeVO `json:"data"`
}

// UserBadgeListResponseWrapper 对应 response.APIResponse[[]vo.UserBadgeVO]
type UserBadgeListResponseWrapper struct {
	Code    int           `json:"code" example:"0"`
	Message string        `json:"message,omitempty" example:"success"`
	Data    []UserBadgeVO `json:"data"`
}

// RedeemBadgeResponseWrapper 对应 response.APIResponse[vo.RedeemBadgeVO]
type RedeemBadgeResponseWrapper struct {
	Code    int           `json:"code" example:"0"`
	Message string        `json:"message,omitempty" example:"success"`
	Data    RedeemBadgeVO `json:"data"`
}

// LevelListResponseWrapper 对应 response.APIResponse[[]*vo.LevelVO]
type LevelListResponseWrapper struct {
	Code    int        `json:"code" example:"0"`
	Message string     `json:"message,omitempty" example:"success"`
	Data    []*LevelVO `json:"data"`
}

// DashboardStatsResponseWrapper 对应 response.APIResponse[vo.DashboardStatsVO]
type DashboardStatsResponseWrapper struct {
	Code    int              `json:"code" example:"0"`
	Message string           `json:"message,omitempty" example:"success"`
	Data    DashboardStatsVO `json:"data"`
}

// ModerationResultResponseWrapper 对应 response.APIResponse[vo.ModerationResultVO]
type ModerationResultResponseWrapper struct {
	Code    int                `json:"code" example:"0"`
	Message string             `json:"message,omitempty" example:"success"`
	Data    ModerationResultVO `json:"data"`
}

// ModerationHistoryResponseWrapper 对应 response.APIResponse[[]*vo.ModerationHistoryVO]
type ModerationHistoryResponseWrapper struct {
	Code    int                    `json:"code" example:"0"`
	Message string                 `json:"message,omitempty" example:"success"`
	Data    []*ModerationHistoryVO `json:"data"`
}

// AdminUserListResponseWrapper 对应 response.APIResponse[[]*vo.AdminUserVO]
type AdminUserListResponseWrapper struct {
	Code    int            `json:"code" example:"0"`
	Message string         `json:"message,omitempty" example:"success"`
	Data    []*AdminUserVO `json:"data"`
}

// HealthResponseWrapper 对应 response.APIResponse[vo.HealthVO]
type HealthResponseWrapper struct {
	Code    int      `json:"code" example:"0"`
	Message string   `json:"message,omitempty" example:"success"`
	Data    HealthVO `json:"data"`
}

// --- 用于错误响应 或 简单成功响应（只有 Code 和 Message） ---

// BaseResponseWrapper 只包含 Code 和 Message 的响应。
// 错误时 Data 为 nil 且被 omitempty 省略，DELETE 等操作成功时也只返回这两个字段。
type BaseResponseWrapper struct {
	Code    int    `json:"code" example:"0"`
	Message string `json:"message" example:"success"`
}
