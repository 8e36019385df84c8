package vo

import "github.com/Xushengqwer/wiki_service/models/entities"

// CategoryVO 分类响应结构
type CategoryVO struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	SortOrder   int    `json:"sort_order"`
}

// CategoryDetailVO 分类详情，附带该分类下已通过的工具
type CategoryDetailVO struct {
	CategoryVO
	Listings []*ListingVO `json:"listings"`
}

// CategoryStatsVO 分类统计
type CategoryStatsVO struct {
	TotalListings int64   `json:"total_listings"`
	AverageRating float64 `json:"average_rating"` // 保留两位小数
}

func NewCategoryVO(c *entities.Category) CategoryVO {
	return CategoryVO{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Icon:        c.Icon,
		Color:       c.Color,
		SortOrder:   c.SortOrder,
	}
}

func NewCategoryVOs(categories []*entities.Category) []CategoryVO {
	out := make([]CategoryVO, 0, len(categories))
	for _, c := range categories {
		out = append(out, NewCategoryVO(c))
	}
	return out
}
