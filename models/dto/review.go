package dto

// CreateReviewRequest 发表评价
// - Rating 范围在服务层校验，越界返回 400
type CreateReviewRequest struct {
	ListingID uint64 `json:"listing_id" binding:"required,gte=1"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment" binding:"omitempty,max=2000"`
}

// UpdateReviewRequest 修改自己的评价，字段为 nil 表示不修改
type UpdateReviewRequest struct {
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment" binding:"omitempty,max=2000"`
}
