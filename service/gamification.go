package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/Xushengqwer/go-common/commonerrors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/wiki_service/config"
	"github.com/Xushengqwer/wiki_service/constant"
	"github.com/Xushengqwer/wiki_service/models/entities"
	"github.com/Xushengqwer/wiki_service/models/vo"
	"github.com/Xushengqwer/wiki_service/myErrors"
	"github.com/Xushengqwer/wiki_service/repo/postgres"
)

// PointAward 一次积分奖励
type PointAward struct {
	UserID      uint64
	Points      int64
	Type        string
	ReferenceID *uint64
	Description string
}

// GamificationService 积分、等级、评分聚合与勋章兑换。
// AwardPoints 和 RecalculateRating 必须在调用方的事务中执行。
type GamificationService interface {
	// AwardPoints 写积分流水、累加积分、重算等级、写用户动态，返回新的累计积分
	AwardPoints(ctx context.Context, tx *gorm.DB, award PointAward) (int64, error)

	// RecalculateRating 用有效评价重算工具的平均分和评价数
	RecalculateRating(ctx context.Context, tx *gorm.DB, listingID uint64) error

	// RedeemBadge 用可用积分兑换勋章，累计积分和等级不受影响
	RedeemBadge(ctx context.Context, userID, badgeID uint64) (*vo.RedeemBadgeVO, error)

	Rules() config.GamificationConfig
}

type gamificationService struct {
	db           *gorm.DB
	userRepo     postgres.UserRepository
	levelRepo    postgres.LevelRepository
	reviewRepo   postgres.ReviewRepository
	listingRepo  postgres.ListingRepository
	badgeRepo    postgres.BadgeRepository
	activityRepo postgres.ActivityRepository
	rules        config.GamificationConfig
	logger       *zap.Logger
}

func NewGamificationService(
	db *gorm.DB,
	userRepo postgres.UserRepository,
	levelRepo postgres.LevelRepository,
	reviewRepo postgres.ReviewRepository,
	listingRepo postgres.ListingRepository,
	badgeRepo postgres.BadgeRepository,
	activityRepo postgres.ActivityRepository,
	rules config.GamificationConfig,
	logger *zap.Logger,
) GamificationService {
	return &gamificationService{
		db:           db,
		userRepo:     userRepo,
		levelRepo:    levelRepo,
		reviewRepo:   reviewRepo,
		listingRepo:  listingRepo,
		badgeRepo:    badgeRepo,
		activityRepo: activityRepo,
		rules:        rules.WithDefaults(),
		logger:       logger,
	}
}

func (s *gamificationService) Rules() config.GamificationConfig {
	return s.rules
}

func (s *gamificationService) AwardPoints(ctx context.Context, tx *gorm.DB, award PointAward) (int64, error) {
	txn := &entities.PointTransaction{
		UserID:      award.UserID,
		Points:      award.Points,
		Type:        award.Type,
		ReferenceID: award.ReferenceID,
		Description: award.Description,
	}
	if err := s.activityRepo.CreatePointTransaction(ctx, tx, txn); err != nil {
		return 0, fmt.Errorf("写入积分流水失败: %w", err)
	}

	points, err := s.userRepo.AddPoints(ctx, tx, award.UserID, award.Points)
	if err != nil {
		return 0, fmt.Errorf("累加用户(ID: %d)积分失败: %w", award.UserID, err)
	}

	level, err := s.levelRepo.FindForPoints(ctx, tx, points)
	switch {
	case err == nil:
		if err := s.userRepo.SetLevel(ctx, tx, award.UserID, level.Level); err != nil {
			return 0, fmt.Errorf("更新用户等级失败: %w", err)
		}
	case errors.Is(err, commonerrors.ErrRepoNotFound):
		// 等级表为空时保留原等级
		s.logger.Warn("等级表为空，跳过等级计算", zap.Uint64("userID", award.UserID))
	default:
		return 0, fmt.Errorf("计算用户等级失败: %w", err)
	}

	activity := &entities.Activity{
		UserID:      award.UserID,
		Type:        award.Type,
		Description: award.Description,
		Points:      award.Points,
		ReferenceID: award.ReferenceID,
	}
	if err := s.activityRepo.Create(ctx, tx, activity); err != nil {
		return 0, fmt.Errorf("写入用户动态失败: %w", err)
	}

	s.logger.Info("发放积分",
		zap.Uint64("userID", award.UserID),
		zap.Int64("points", award.Points),
		zap.String("type", award.Type),
		zap.Int64("total", points),
	)
	return points, nil
}

func (s *gamificationService) RecalculateRating(ctx context.Context, tx *gorm.DB, listingID uint64) error {
	average, count, err := s.reviewRepo.ActiveStats(ctx, tx, listingID)
	if err != nil {
		return fmt.Errorf("统计工具(ID: %d)评价失败: %w", listingID, err)
	}
	average = roundTo2(average)
	if err := s.listingRepo.UpdateRatingStats(ctx, tx, listingID, average, count); err != nil {
		return fmt.Errorf("更新工具(ID: %d)评分失败: %w", listingID, err)
	}
	return nil
}

func (s *gamificationService) RedeemBadge(ctx context.Context, userID, badgeID uint64) (*vo.RedeemBadgeVO, error) {
	var badge *entities.Badge
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		badge, err = s.badgeRepo.GetActiveByID(ctx, tx, badgeID)
		if err != nil {
			return err
		}

		owned, err := s.badgeRepo.UserHasBadge(ctx, tx, userID, badgeID)
		if err != nil {
			return err
		}
		if owned {
			return myErrors.ErrBadgeAlreadyOwned
		}

		if err := s.userRepo.SpendPoints(ctx, tx, userID, badge.Cost); err != nil {
			return err
		}
		if err := s.badgeRepo.Grant(ctx, tx, &entities.UserBadge{UserID: userID, BadgeID: badgeID}); err != nil {
			return err
		}

		ref := badgeID
		return s.activityRepo.Create(ctx, tx, &entities.Activity{
			UserID:      userID,
			Type:        constant.ActivityBadgeRedeemed,
			Description: fmt.Sprintf("Canjeó la medalla %s", badge.Name),
			Points:      -badge.Cost,
			ReferenceID: &ref,
		})
	})
	if err != nil {
		s.logger.Warn("兑换勋章失败", zap.Uint64("userID", userID), zap.Uint64("badgeID", badgeID), zap.Error(err))
		return nil, fmt.Errorf("兑换勋章(ID: %d)失败: %w", badgeID, err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("兑换后读取用户失败: %w", err)
	}
	s.logger.Info("勋章兑换成功", zap.Uint64("userID", userID), zap.Uint64("badgeID", badgeID), zap.Int64("cost", badge.Cost))
	return &vo.RedeemBadgeVO{Badge: vo.NewBadgeVO(badge), AvailablePoints: user.AvailablePoints()}, nil
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
