package service

import (
	"context"
	"fmt"

	"github.com/Xushengqwer/wiki_service/models/vo"
	"github.com/Xushengqwer/wiki_service/repo/postgres"
)

// BadgeService 勋章目录、我的勋章、兑换与等级表
type BadgeService interface {
	ListBadges(ctx context.Context) ([]vo.BadgeVO, error)
	MyBadges(ctx context.Context, userID uint64) ([]vo.UserBadgeVO, error)
	Redeem(ctx context.Context, userID, badgeID uint64) (*vo.RedeemBadgeVO, error)
	ListLevels(ctx context.Context) ([]*vo.LevelVO, error)
}

type badgeService struct {
	badgeRepo    postgres.BadgeRepository
	levelRepo    postgres.LevelRepository
	gamification GamificationService
}

func NewBadgeService(badgeRepo postgres.BadgeRepository, levelRepo postgres.LevelRepository, gamification GamificationService) BadgeService {
	return &badgeService{badgeRepo: badgeRepo, levelRepo: levelRepo, gamification: gamification}
}

func (s *badgeService) ListBadges(ctx context.Context) ([]vo.BadgeVO, error) {
	badges, err := s.badgeRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询勋章失败: %w", err)
	}
	return vo.NewBadgeVOs(badges), nil
}

func (s *badgeService) MyBadges(ctx context.Context, userID uint64) ([]vo.UserBadgeVO, error) {
	grants, err := s.badgeRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("查询我的勋章失败: %w", err)
	}
	return vo.NewUserBadgeVOs(grants), nil
}

func (s *badgeService) Redeem(ctx context.Context, userID, badgeID uint64) (*vo.RedeemBadgeVO, error) {
	return s.gamification.RedeemBadge(ctx, userID, badgeID)
}

func (s *badgeService) ListLevels(ctx context.Context) ([]*vo.LevelVO, error) {
	levels, err := s.levelRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询等级表失败: %w", err)
	}
	return vo.NewLevelVOs(levels), nil
}
