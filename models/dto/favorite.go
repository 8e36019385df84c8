package dto

// AddFavoriteRequest 添加收藏
type AddFavoriteRequest struct {
	ListingID uint64 `json:"listing_id" binding:"required,gte=1"`
}
