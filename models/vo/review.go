package vo

import (
	"time"

	"github.com/Xushengqwer/wiki_service/models/entities"
)

// ReviewerVO 评价者的公开信息
type ReviewerVO struct {
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
	Level    int    `json:"level"`
}

// ReviewVO 评价响应结构
type ReviewVO struct {
	ID        uint64      `json:"id"`
	ListingID uint64      `json:"listing_id"`
	UserID    uint64      `json:"user_id"`
	Rating    int         `json:"rating"`
	Comment   string      `json:"comment"`
	Edited    bool        `json:"edited"`
	User      *ReviewerVO `json:"user,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func NewReviewVO(r *entities.Review) *ReviewVO {
	out := &ReviewVO{
		ID:        r.ID,
		ListingID: r.ListingID,
		UserID:    r.UserID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		Edited:    r.Edited,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.User.ID != 0 {
		out.User = &ReviewerVO{Username: r.User.Username, Avatar: r.User.Avatar, Level: r.User.Level}
	}
	return out
}

func NewReviewVOs(reviews []*entities.Review) []*ReviewVO {
	out := make([]*ReviewVO, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, NewReviewVO(r))
	}
	return out
}
