package vo

import (
	"time"

	"github.com/Xushengqwer/wiki_service/models/entities"
)

// FavoriteVO 收藏记录，附带被收藏的工具
type FavoriteVO struct {
	ID        uint64     `json:"id"`
	ListingID uint64     `json:"listing_id"`
	Listing   *ListingVO `json:"listing,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// FavoriteCheckVO 是否已收藏
type FavoriteCheckVO struct {
	IsFavorite bool `json:"is_favorite"`
}

func NewFavoriteVO(f *entities.Favorite) *FavoriteVO {
	out := &FavoriteVO{ID: f.ID, ListingID: f.ListingID, CreatedAt: f.CreatedAt}
	if f.Listing.ID != 0 {
		out.Listing = NewListingVO(&f.Listing)
	}
	return out
}

func NewFavoriteVOs(favorites []*entities.Favorite) []*FavoriteVO {
	out := make([]*FavoriteVO, 0, len(favorites))
	for _, f := range favorites {
		out = append(out, NewFavoriteVO(f))
	}
	return out
}
