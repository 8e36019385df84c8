package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
	"go.uber.org/zap"

	"github.com/Xushengqwer/wiki_service/constant"
	"github.com/Xushengqwer/wiki_service/models/dto"
	"github.com/Xushengqwer/wiki_service/myErrors"
	"github.com/Xushengqwer/wiki_service/service"
)

// RoleSetter 把第一个用户提升为管理员
type RoleSetter interface {
	SetRole(ctx context.Context, id uint64, role string) error
}

// Services Seed 通过这些服务写入数据，积分和评分由业务逻辑维护
type Services struct {
	Auth       service.AuthService
	Listing    service.ListingService
	Category   service.CategoryService
	Review     service.ReviewService
	Moderation service.AdminService
	UserRoles  RoleSetter
}

// Options 填充规模
type Options struct {
	Users        int
	Listings     int
	ApproveRatio float64
	MaxReviews   int
	// Seed 非零时生成可重复的数据
	Seed int64
}

func (o Options) Validate() error {
	if o.Users < 2 {
		return errors.New("至少需要 2 个用户 (其中一个是管理员)")
	}
	if o.Listings < 0 || o.MaxReviews < 0 {
		return errors.New("数量不能为负")
	}
	if o.ApproveRatio < 0 || o.ApproveRatio > 1 {
		return errors.New("approve 必须在 0 到 1 之间")
	}
	return nil
}

// Summary 实际写入的数量
type Summary struct {
	Users    int
	Listings int
	Approved int
	Rejected int
	Reviews  int
}

// Seed 注册用户、提交工具、按比例审核并为通过的工具写评价。
// 单条数据失败只记录日志，缺少分类或管理员时返回错误。
func Seed(ctx context.Context, svcs Services, opts Options, logger *zap.Logger) (*Summary, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	faker := gofakeit.New(opts.Seed)
	summary := &Summary{}

	categories, err := svcs.Category.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询分类失败: %w", err)
	}
	if len(categories) == 0 {
		return nil, errors.New("没有可用的分类，请先写入默认数据")
	}

	userIDs := make([]uint64, 0, opts.Users)
	for len(userIDs) < opts.Users {
		res, err := svcs.Auth.Register(ctx, &dto.RegisterRequest{
			Username: fmt.Sprintf("%s%d", faker.Username(), faker.Number(10, 9999)),
			Email:    faker.Email(),
			Password: faker.Password(true, true, true, false, false, 12),
		})
		if err != nil {
			if errors.Is(err, myErrors.ErrAccountTaken) {
				continue
			}
			return nil, fmt.Errorf("注册用户失败: %w", err)
		}
		userIDs = append(userIDs, res.User.ID)
	}
	summary.Users = len(userIDs)

	adminID := userIDs[0]
	if err := svcs.UserRoles.SetRole(ctx, adminID, constant.RoleAdmin); err != nil {
		return nil, fmt.Errorf("设置管理员失败: %w", err)
	}
	authors := userIDs[1:]

	for i := 0; i < opts.Listings; i++ {
		category := categories[faker.Number(0, len(categories)-1)]
		authorID := authors[faker.Number(0, len(authors)-1)]
		listing, err := svcs.Listing.CreateListing(ctx, authorID, &dto.CreateListingRequest{
			Name:        fmt.Sprintf("%s %s", faker.AppName(), faker.Word()),
			Description: faker.Paragraph(1, 3, 12, " "),
			URL:         faker.URL(),
			CategoryID:  category.ID,
		})
		if err != nil {
			logger.Error("提交工具失败", zap.Int("index", i), zap.Error(err))
			continue
		}
		summary.Listings++

		roll := faker.Float64Range(0, 1)
		switch {
		case roll < opts.ApproveRatio:
			if _, err := svcs.Moderation.Moderate(ctx, dto.ModerationDecision{ListingID: listing.ID, ModeratorID: adminID, Approved: true}); err != nil {
				logger.Error("审核通过失败", zap.Uint64("listingID", listing.ID), zap.Error(err))
				continue
			}
			summary.Approved++
			summary.Reviews += seedReviews(ctx, svcs.Review, faker, listing.ID, authors, opts.MaxReviews, logger)
		case roll < opts.ApproveRatio+(1-opts.ApproveRatio)/2:
			if _, err := svcs.Moderation.Moderate(ctx, dto.ModerationDecision{
				ListingID:   listing.ID,
				ModeratorID: adminID,
				Reason:      faker.Sentence(6),
			}); err != nil {
				logger.Error("审核拒绝失败", zap.Uint64("listingID", listing.ID), zap.Error(err))
				continue
			}
			summary.Rejected++
		}
	}
	return summary, nil
}

// seedReviews 每个评价者对同一工具只评价一次
func seedReviews(ctx context.Context, reviews service.ReviewService, faker *gofakeit.Faker, listingID uint64, reviewers []uint64, maxReviews int, logger *zap.Logger) int {
	n := 0
	if maxReviews > 0 {
		n = faker.Number(0, maxReviews)
	}
	if n > len(reviewers) {
		n = len(reviewers)
	}
	order := make([]int, len(reviewers))
	for i := range order {
		order[i] = i
	}
	faker.ShuffleInts(order)

	created := 0
	for _, idx := range order[:n] {
		_, err := reviews.CreateReview(ctx, reviewers[idx], &dto.CreateReviewRequest{
			ListingID: listingID,
			Rating:    faker.Number(1, 5),
			Comment:   faker.Sentence(10),
		})
		if err != nil {
			logger.Warn("写入评价失败", zap.Uint64("listingID", listingID), zap.Error(err))
			continue
		}
		created++
	}
	return created
}
