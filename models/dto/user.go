package dto

const (
	DefaultRankingLimit  = 10
	DefaultActivityLimit = 20
	DefaultHistoryLimit  = 50
	RecentActivityLimit  = 20
)

// LimitRequest 通用的 limit 查询参数
type LimitRequest struct {
	Limit int `form:"limit" binding:"omitempty,gte=1,lte=100"`
}

// GetLimit 未提供时返回 def
func (r *LimitRequest) GetLimit(def int) int {
	if r.Limit <= 0 {
		return def
	}
	return r.Limit
}
