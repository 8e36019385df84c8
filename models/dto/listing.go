package dto

// 工具列表排序方式
const (
	ListingOrderRecent   = "recent"
	ListingOrderTopRated = "top-rated"
	ListingOrderMostUsed = "most-used"
)

const (
	DefaultListingLimit = 50
	SearchResultLimit   = 20
)

// ListListingsRequest 公开工具列表的查询参数
type ListListingsRequest struct {
	// Category 分类 slug，为空时不过滤；slug 不存在时返回空列表
	Category string `form:"category" binding:"omitempty,max=100"`
	// Order 排序: recent / top-rated / most-used (默认)
	Order string `form:"order" binding:"omitempty,oneof=recent top-rated most-used"`
	Limit int    `form:"limit" binding:"omitempty,gte=1,lte=100"`
}

// GetLimit 获取返回数量，默认 50
func (r *ListListingsRequest) GetLimit() int {
	if r.Limit <= 0 {
		return DefaultListingLimit
	}
	return r.Limit
}

// ListingQuery 在 Service 层和 Repo 层之间传递的结构化查询条件
type ListingQuery struct {
	CategoryID *uint64
	Order      string
	Limit      int
}

// CreateListingRequest 提交新工具
type CreateListingRequest struct {
	Name        string `json:"name" binding:"required,max=150"`
	Description string `json:"description" binding:"required,max=5000"`
	URL         string `json:"url" binding:"required,url,max=500"`
	CategoryID  uint64 `json:"category_id" binding:"required,gte=1"`
	LogoURL     string `json:"logo_url" binding:"omitempty,url,max=500"`
}

// SearchListingsRequest 搜索关键词
type SearchListingsRequest struct {
	Q string `form:"q" binding:"required,max=100"`
}

// CategoryDetailLimit 分类详情页最多返回的工具数量
const CategoryDetailLimit = 100
