package vo

import (
	"time"

	"github.com/Xushengqwer/go-common/models/enums"
	"github.com/Xushengqwer/wiki_service/models/entities"
)

// CategoryBriefVO 工具列表中嵌套的分类信息
type CategoryBriefVO struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// AuthorBriefVO 工具列表中嵌套的作者信息
type AuthorBriefVO struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// ListingVO 工具条目的响应结构
type ListingVO struct {
	ID            uint64           `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	URL           string           `json:"url"`
	LogoURL       string           `json:"logo_url"`
	CategoryID    uint64           `json:"category_id"`
	Category      *CategoryBriefVO `json:"category,omitempty"`
	AuthorID      uint64           `json:"author_id"`
	Author        *AuthorBriefVO   `json:"author,omitempty"`
	Status        enums.Status     `json:"status"` // 0=待审核, 1=通过, 2=拒绝
	UsageCount    int64            `json:"usage_count"`
	AverageRating float64          `json:"average_rating"`
	ReviewCount   int64            `json:"review_count"`
	// RejectionReason 仅在被拒绝时有值
	RejectionReason *string    `json:"rejection_reason,omitempty"`
	ModeratedAt     *time.Time `json:"moderated_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// ListListingsAdminResponse 管理员按条件分页查询的响应
type ListListingsAdminResponse struct {
	Listings []*ListingVO `json:"listings"`
	Total    int64        `json:"total"`
}

// LogoUploadVO 上传 logo 后返回的公开访问地址
type LogoUploadVO struct {
	URL string `json:"url"`
}

// NewListingVO 实体转换为响应结构。预加载了分类或作者时一并填充。
func NewListingVO(l *entities.Listing) *ListingVO {
	if l == nil {
		return nil
	}
	out := &ListingVO{
		ID:            l.ID,
		Name:          l.Name,
		Description:   l.Description,
		URL:           l.URL,
		LogoURL:       l.LogoURL,
		CategoryID:    l.CategoryID,
		AuthorID:      l.AuthorID,
		Status:        l.Status,
		UsageCount:    l.UsageCount,
		AverageRating: l.AverageRating,
		ReviewCount:   l.ReviewCount,
		ModeratedAt:   l.ModeratedAt,
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}
	if l.RejectionReason.Valid {
		reason := l.RejectionReason.String
		out.RejectionReason = &reason
	}
	if l.Category.ID != 0 {
		out.Category = &CategoryBriefVO{
			ID:    l.Category.ID,
			Name:  l.Category.Name,
			Slug:  l.Category.Slug,
			Icon:  l.Category.Icon,
			Color: l.Category.Color,
		}
	}
	if l.Author.ID != 0 {
		out.Author = &AuthorBriefVO{
			ID:       l.Author.ID,
			Username: l.Author.Username,
			Avatar:   l.Author.Avatar,
		}
	}
	return out
}

// NewListingVOs 批量转换，空输入返回空切片而不是 nil
func NewListingVOs(listings []*entities.Listing) []*ListingVO {
	out := make([]*ListingVO, 0, len(listings))
	for _, l := range listings {
		if l == nil {
			continue
		}
		out = append(out, NewListingVO(l))
	}
	return out
}
