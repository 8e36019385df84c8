package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/wiki_service/constant"
	"github.com/Xushengqwer/wiki_service/models/dto"
	"github.com/Xushengqwer/wiki_service/models/entities"
	"github.com/Xushengqwer/wiki_service/models/vo"
	"github.com/Xushengqwer/wiki_service/myErrors"
	"github.com/Xushengqwer/wiki_service/repo/postgres"
	"github.com/Xushengqwer/wiki_service/repo/redis"
)

// ReviewService 工具评价。评价的增删改与评分重算在同一事务中完成。
type ReviewService interface {
	ListByListing(ctx context.Context, listingID uint64) ([]*vo.ReviewVO, error)

	// CreateReview 每个用户对每个工具只能评价一次，成功后奖励积分
	CreateReview(ctx context.Context, userID uint64, req *dto.CreateReviewRequest) (*vo.ReviewVO, error)

	// UpdateReview / DeleteReview 只能操作自己的有效评价，否则返回 ErrRepoNotFound
	UpdateReview(ctx context.Context, userID, reviewID uint64, req *dto.UpdateReviewRequest) (*vo.ReviewVO, error)
	DeleteReview(ctx context.Context, userID, reviewID uint64) error
}

type reviewService struct {
	db           *gorm.DB
	reviewRepo   postgres.ReviewRepository
	listingRepo  postgres.ListingRepository
	gamification GamificationService
	rankingCache redis.RankingCache
	logger       *zap.Logger
}

func NewReviewService(
	db *gorm.DB,
	reviewRepo postgres.ReviewRepository,
	listingRepo postgres.ListingRepository,
	gamification GamificationService,
	rankingCache redis.RankingCache,
	logger *zap.Logger,
) ReviewService {
	return &reviewService{
		db:           db,
		reviewRepo:   reviewRepo,
		listingRepo:  listingRepo,
		gamification: gamification,
		rankingCache: rankingCache,
		logger:       logger,
	}
}

func validRating(rating int) bool {
	return rating >= 1 && rating <= 5
}

func (s *reviewService) ListByListing(ctx context.Context, listingID uint64) ([]*vo.ReviewVO, error) {
	reviews, err := s.reviewRepo.ListActiveByListing(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("查询工具(ID: %d)评价失败: %w", listingID, err)
	}
	return vo.NewReviewVOs(reviews), nil
}

func (s *reviewService) CreateReview(ctx context.Context, userID uint64, req *dto.CreateReviewRequest) (*vo.ReviewVO, error) {
	if !validRating(req.Rating) {
		return nil, myErrors.ErrInvalidRating
	}
	listing, err := s.listingRepo.GetApprovedByID(ctx, req.ListingID)
	if err != nil {
		return nil, fmt.Errorf("获取工具(ID: %d)失败: %w", req.ListingID, err)
	}

	review := &entities.Review{
		ListingID: req.ListingID,
		UserID:    userID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		IsActive:  true,
	}
	points := s.gamification.Rules().ReviewCreatedPoints

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := s.reviewRepo.ExistsForUser(ctx, tx, userID, req.ListingID)
		if err != nil {
			return err
		}
		if exists {
			return myErrors.ErrDuplicateReview
		}
		if err := s.reviewRepo.Create(ctx, tx, review); err != nil {
			return err
		}

		ref := review.ID
		if _, err := s.gamification.AwardPoints(ctx, tx, PointAward{
			UserID:      userID,
			Points:      points,
			Type:        constant.PointTypeReviewCreated,
			ReferenceID: &ref,
			Description: fmt.Sprintf("Reseña de %s", listing.Name),
		}); err != nil {
			return err
		}
		return s.gamification.RecalculateRating(ctx, tx, req.ListingID)
	})
	if err != nil {
		return nil, fmt.Errorf("发表评价失败: %w", err)
	}

	s.logger.Info("用户发表评价", zap.Uint64("userID", userID), zap.Uint64("listingID", req.ListingID), zap.Int("rating", req.Rating))
	invalidateRanking(ctx, s.rankingCache, s.logger)
	return vo.NewReviewVO(review), nil
}

func (s *reviewService) UpdateReview(ctx context.Context, userID, reviewID uint64, req *dto.UpdateReviewRequest) (*vo.ReviewVO, error) {
	if req.Rating != nil && !validRating(*req.Rating) {
		return nil, myErrors.ErrInvalidRating
	}

	var review *entities.Review
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		review, err = s.reviewRepo.GetOwnedActive(ctx, tx, reviewID, userID)
		if err != nil {
			return err
		}
		if err := s.reviewRepo.Update(ctx, tx, reviewID, req.Rating, req.Comment); err != nil {
			return err
		}
		return s.gamification.RecalculateRating(ctx, tx, review.ListingID)
	})
	if err != nil {
		return nil, fmt.Errorf("修改评价(ID: %d)失败: %w", reviewID, err)
	}

	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Comment != nil {
		review.Comment = *req.Comment
	}
	review.Edited = true
	s.logger.Info("用户修改评价", zap.Uint64("userID", userID), zap.Uint64("reviewID", reviewID))
	return vo.NewReviewVO(review), nil
}

func (s *reviewService) DeleteReview(ctx context.Context, userID, reviewID uint64) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		review, err := s.reviewRepo.GetOwnedActive(ctx, tx, reviewID, userID)
		if err != nil {
			return err
		}
		if err := s.reviewRepo.Deactivate(ctx, tx, reviewID); err != nil {
			return err
		}
		return s.gamification.RecalculateRating(ctx, tx, review.ListingID)
	})
	if err != nil {
		return fmt.Errorf("删除评价(ID: %d)失败: %w", reviewID, err)
	}
	s.logger.Info("用户删除评价", zap.Uint64("userID", userID), zap.Uint64("reviewID", reviewID))
	return nil
}
