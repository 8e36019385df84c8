package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Xushengqwer/wiki_service/models/entities"
	"github.com/Xushengqwer/wiki_service/models/vo"
	"github.com/Xushengqwer/wiki_service/myErrors"
	"github.com/Xushengqwer/wiki_service/repo/postgres"
	"github.com/Xushengqwer/wiki_service/repo/redis"
)

// UserService 公开的用户信息: 排行榜、个人主页、动态
type UserService interface {
	// Ranking 按累计积分降序，优先读 Redis 缓存
	Ranking(ctx context.Context, limit int) ([]*vo.RankingEntryVO, error)
	// RefreshRanking 从数据库重建指定长度的榜单并写入缓存
	RefreshRanking(ctx context.Context, limit int) ([]*vo.RankingEntryVO, error)

	// 以下方法在用户不存在、未启用或被封禁时返回 ErrRepoNotFound
	PublicProfile(ctx context.Context, username string) (*vo.PublicProfileVO, error)
	ListingsByUsername(ctx context.Context, username string) ([]*vo.ListingVO, error)
	ActivityByUsername(ctx context.Context, username string, limit int) ([]*vo.ActivityVO, error)
}

type userService struct {
	userRepo     postgres.UserRepository
	levelRepo    postgres.LevelRepository
	badgeRepo    postgres.BadgeRepository
	listingRepo  postgres.ListingRepository
	reviewRepo   postgres.ReviewRepository
	activityRepo postgres.ActivityRepository
	rankingCache redis.RankingCache // 可为 nil
	logger       *zap.Logger
}

func NewUserService(
	userRepo postgres.UserRepository,
	levelRepo postgres.LevelRepository,
	badgeRepo postgres.BadgeRepository,
	listingRepo postgres.ListingRepository,
	reviewRepo postgres.ReviewRepository,
	activityRepo postgres.ActivityRepository,
	rankingCache redis.RankingCache,
	logger *zap.Logger,
) UserService {
	return &userService{
		userRepo:     userRepo,
		levelRepo:    levelRepo,
		badgeRepo:    badgeRepo,
		listingRepo:  listingRepo,
		reviewRepo:   reviewRepo,
		activityRepo: activityRepo,
		rankingCache: rankingCache,
		logger:       logger,
	}
}

func (s *userService) Ranking(ctx context.Context, limit int) ([]*vo.RankingEntryVO, error) {
	if s.rankingCache != nil {
		entries, err := s.rankingCache.Get(ctx, limit)
		if err == nil {
			return entries, nil
		}
		if !errors.Is(err, myErrors.ErrCacheMiss) {
			s.logger.Warn("读取排行榜缓存失败，回退到数据库", zap.Int("limit", limit), zap.Error(err))
		}
	}
	return s.RefreshRanking(ctx, limit)
}

func (s *userService) RefreshRanking(ctx context.Context, limit int) ([]*vo.RankingEntryVO, error) {
	users, err := s.userRepo.ListRanking(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("查询排行榜失败: %w", err)
	}
	levels, err := s.levelIndex(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]*vo.RankingEntryVO, 0, len(users))
	for i, u := range users {
		entries = append(entries, &vo.RankingEntryVO{
			Position:  i + 1,
			UserID:    u.ID,
			Username:  u.Username,
			Avatar:    u.Avatar,
			Points:    u.Points,
			Level:     u.Level,
			LevelInfo: vo.NewLevelVO(levels[u.Level]),
		})
	}

	if s.rankingCache != nil {
		if err := s.rankingCache.Set(ctx, limit, entries); err != nil {
			s.logger.Warn("写入排行榜缓存失败", zap.Int("limit", limit), zap.Error(err))
		}
	}
	return entries, nil
}

func (s *userService) levelIndex(ctx context.Context) (map[int]*entities.Level, error) {
	levels, err := s.levelRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询等级表失败: %w", err)
	}
	index := make(map[int]*entities.Level, len(levels))
	for _, l := range levels {
		index[l.Level] = l
	}
	return index, nil
}

func (s *userService) findPublic(ctx context.Context, username string) (*entities.User, error) {
	user, err := s.userRepo.GetPublicByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("获取用户 '%s' 失败: %w", username, err)
	}
	return user, nil
}

func (s *userService) PublicProfile(ctx context.Context, username string) (*vo.PublicProfileVO, error) {
	user, err := s.findPublic(ctx, username)
	if err != nil {
		return nil, err
	}

	profile := &vo.PublicProfileVO{
		ID:        user.ID,
		Username:  user.Username,
		Avatar:    user.Avatar,
		Bio:       user.Bio,
		Points:    user.Points,
		Level:     user.Level,
		CreatedAt: user.CreatedAt,
	}
	if level, err := s.levelRepo.GetByLevel(ctx, user.Level); err == nil {
		profile.LevelInfo = vo.NewLevelVO(level)
	}

	grants, err := s.badgeRepo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("查询用户勋章失败: %w", err)
	}
	profile.Badges = vo.NewUserBadgeVOs(grants)

	if profile.Stats.ApprovedListings, err = s.listingRepo.CountApprovedByAuthor(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("统计用户工具失败: %w", err)
	}
	if profile.Stats.ActiveReviews, err = s.reviewRepo.CountActiveByUser(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("统计用户评价失败: %w", err)
	}
	return profile, nil
}

func (s *userService) ListingsByUsername(ctx context.Context, username string) ([]*vo.ListingVO, error) {
	user, err := s.findPublic(ctx, username)
	if err != nil {
		return nil, err
	}
	listings, err := s.listingRepo.ListByAuthor(ctx, user.ID, true)
	if err != nil {
		return nil, fmt.Errorf("查询用户工具失败: %w", err)
	}
	return vo.NewListingVOs(listings), nil
}

func (s *userService) ActivityByUsername(ctx context.Context, username string, limit int) ([]*vo.ActivityVO, error) {
	user, err := s.findPublic(ctx, username)
	if err != nil {
		return nil, err
	}
	activities, err := s.activityRepo.ListByUser(ctx, user.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("查询用户动态失败: %w", err)
	}
	return vo.NewActivityVOs(activities), nil
}
