package dto

import "github.com/Xushengqwer/go-common/models/enums"

// RejectListingRequest 拒绝工具，必须提供原因
type RejectListingRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

// ChangeCategoryRequest 修改工具分类
type ChangeCategoryRequest struct {
	CategoryID uint64 `json:"category_id" binding:"required,gte=1"`
}

// BanUserRequest 封禁用户，原因可选
type BanUserRequest struct {
	Reason string `json:"reason" binding:"omitempty,max=255"`
}

// ListListingsByConditionRequest 管理后台按条件分页查询工具
type ListListingsByConditionRequest struct {
	// Status 0=待审核, 1=通过, 2=拒绝
	Status     *enums.Status `form:"status" binding:"omitempty,oneof=0 1 2"`
	Name       *string       `form:"name" binding:"omitempty,max=150"`
	CategoryID *uint64       `form:"category_id" binding:"omitempty,gte=1"`
	AuthorID   *uint64       `form:"author_id" binding:"omitempty,gte=1"`
	// OrderBy created_at / usage_count / average_rating / name
	OrderBy   string `form:"order_by" binding:"omitempty,oneof=created_at usage_count average_rating name"`
	OrderDesc bool   `form:"order_desc"`
	Page      int    `form:"page" binding:"omitempty,gte=1"`
	PageSize  int    `form:"page_size" binding:"omitempty,gte=1,lte=100"`
}

// GetOffset 计算分页偏移量
func (r *ListListingsByConditionRequest) GetOffset() int {
	if r.Page <= 0 {
		return 0
	}
	return (r.Page - 1) * r.PageSize
}

// GetLimit 获取每页数量
func (r *ListListingsByConditionRequest) GetLimit() int {
	return r.PageSize
}

// ModerationDecision 一次审核决定，来自管理后台或消息队列
type ModerationDecision struct {
	ListingID   uint64
	ModeratorID uint64
	Approved    bool
	Reason      string
}
