package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Xushengqwer/go-common/models/enums"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/wiki_service/constant"
	"github.com/Xushengqwer/wiki_service/models/dto"
	"github.com/Xushengqwer/wiki_service/models/entities"
	"github.com/Xushengqwer/wiki_service/models/vo"
	"github.com/Xushengqwer/wiki_service/mq/events"
	"github.com/Xushengqwer/wiki_service/myErrors"
	"github.com/Xushengqwer/wiki_service/notify"
	"github.com/Xushengqwer/wiki_service/repo/postgres"
	"github.com/Xushengqwer/wiki_service/repo/redis"
)

// AdminService 管理后台: 审核、统计、用户管理
type AdminService interface {
	DashboardStats(ctx context.Context) (*vo.DashboardStatsVO, error)
	ListPending(ctx context.Context) ([]*vo.ListingVO, error)

	// Moderate 把待审核工具流转为通过或拒绝，只能成功一次。
	// 工具不存在返回 ErrRepoNotFound，已审核过返回 myErrors.ErrAlreadyModerated，
	// 拒绝但没有原因返回 myErrors.ErrReasonRequired。
	Moderate(ctx context.Context, decision dto.ModerationDecision) (*vo.ModerationResultVO, error)

	ChangeCategory(ctx context.Context, listingID, categoryID uint64) error
	ListListingsByCondition(ctx context.Context, req *dto.ListListingsByConditionRequest) (*vo.ListListingsAdminResponse, error)

	ListUsers(ctx context.Context) ([]*vo.AdminUserVO, error)
	BanUser(ctx context.Context, userID uint64, reason string) error
	UnbanUser(ctx context.Context, userID uint64) error

	ModerationHistory(ctx context.Context, limit int) ([]*vo.ModerationHistoryVO, error)
	RecentActivity(ctx context.Context) ([]*vo.ActivityVO, error)
}

type adminService struct {
	db             *gorm.DB
	listingRepo    postgres.ListingRepository
	listingAdmin   postgres.ListingAdminRepository
	categoryRepo   postgres.CategoryRepository
	userRepo       postgres.UserRepository
	reviewRepo     postgres.ReviewRepository
	moderationRepo postgres.ModerationRepository
	activityRepo   postgres.ActivityRepository
	gamification   GamificationService
	rankingCache   redis.RankingCache    // 可为 nil
	publisher      ListingEventPublisher // 可为 nil
	notifier       ModerationNotifier    // 可为 nil
	logger         *zap.Logger
}

// AdminDeps 管理服务的依赖集合
type AdminDeps struct {
	DB             *gorm.DB
	ListingRepo    postgres.ListingRepository
	ListingAdmin   postgres.ListingAdminRepository
	CategoryRepo   postgres.CategoryRepository
	UserRepo       postgres.UserRepository
	ReviewRepo     postgres.ReviewRepository
	ModerationRepo postgres.ModerationRepository
	ActivityRepo   postgres.ActivityRepository
	Gamification   GamificationService
	RankingCache   redis.RankingCache
	Publisher      ListingEventPublisher
	Notifier       ModerationNotifier
}

func NewAdminService(deps AdminDeps, logger *zap.Logger) AdminService {
	return &adminService{
		db:             deps.DB,
		listingRepo:    deps.ListingRepo,
		listingAdmin:   deps.ListingAdmin,
		categoryRepo:   deps.CategoryRepo,
		userRepo:       deps.UserRepo,
		reviewRepo:     deps.ReviewRepo,
		moderationRepo: deps.ModerationRepo,
		activityRepo:   deps.ActivityRepo,
		gamification:   deps.Gamification,
		rankingCache:   deps.RankingCache,
		publisher:      deps.Publisher,
		notifier:       deps.Notifier,
		logger:         logger,
	}
}

func (s *adminService) DashboardStats(ctx context.Context) (*vo.DashboardStatsVO, error) {
	stats := &vo.DashboardStatsVO{}
	var err error

	if stats.TotalUsers, err = s.userRepo.CountActive(ctx); err != nil {
		return nil, fmt.Errorf("统计用户数失败: %w", err)
	}
	byStatus, err := s.listingAdmin.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("统计工具状态失败: %w", err)
	}
	stats.PendingListings = byStatus[enums.Pending]
	stats.ApprovedListings = byStatus[enums.Approved]
	stats.RejectedListings = byStatus[enums.Rejected]

	if stats.TotalVisits, err = s.listingAdmin.SumApprovedUsage(ctx); err != nil {
		return nil, fmt.Errorf("统计访问量失败: %w", err)
	}
	if stats.TotalReviews, err = s.reviewRepo.CountActive(ctx); err != nil {
		return nil, fmt.Errorf("统计评价数失败: %w", err)
	}
	return stats, nil
}

func (s *adminService) ListPending(ctx context.Context) ([]*vo.ListingVO, error) {
	listings, err := s.listingAdmin.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询待审核工具失败: %w", err)
	}
	return vo.NewListingVOs(listings), nil
}

func (s *adminService) Moderate(ctx context.Context, d dto.ModerationDecision) (*vo.ModerationResultVO, error) {
	reasonText := strings.TrimSpace(d.Reason)
	if !d.Approved && reasonText == "" {
		return nil, myErrors.ErrReasonRequired
	}

	listing, err := s.listingRepo.GetByID(ctx, d.ListingID)
	if err != nil {
		return nil, fmt.Errorf("获取工具(ID: %d)失败: %w", d.ListingID, err)
	}

	target := enums.Rejected
	action := constant.ModerationActionReject
	reason := sql.NullString{String: reasonText, Valid: true}
	if d.Approved {
		target = enums.Approved
		action = constant.ModerationActionApprove
		reason = sql.NullString{}
	}

	var awarded int64
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.listingAdmin.TransitionStatus(ctx, tx, d.ListingID, enums.Pending, target, d.ModeratorID, reason); err != nil {
			return err
		}

		if d.Approved {
			awarded = s.gamification.Rules().ListingApprovedPoints
			ref := d.ListingID
			if _, err := s.gamification.AwardPoints(ctx, tx, PointAward{
				UserID:      listing.AuthorID,
				Points:      awarded,
				Type:        constant.PointTypeListingApproved,
				ReferenceID: &ref,
				Description: fmt.Sprintf("Herramienta aprobada: %s", listing.Name),
			}); err != nil {
				return err
			}
		}

		return s.moderationRepo.Create(ctx, tx, &entities.ModerationHistory{
			ListingID:      d.ListingID,
			AdminID:        moderatorRef(d.ModeratorID),
			Action:         action,
			PreviousStatus: enums.Pending,
			NewStatus:      target,
			Comment:        reasonText,
		})
	})
	if err != nil {
		s.logger.Warn("审核工具失败",
			zap.Uint64("listingID", d.ListingID),
			zap.Uint64("moderatorID", d.ModeratorID),
			zap.Bool("approved", d.Approved),
			zap.Error(err),
		)
		return nil, fmt.Errorf("审核工具(ID: %d)失败: %w", d.ListingID, err)
	}

	s.logger.Info("工具审核完成",
		zap.Uint64("listingID", d.ListingID),
		zap.Uint64("moderatorID", d.ModeratorID),
		zap.String("action", action),
		zap.Int64("awardedPoints", awarded),
	)
	s.afterModeration(ctx, listing, d, target, reasonText, awarded)

	return &vo.ModerationResultVO{ListingID: d.ListingID, Status: target, AwardedPoints: awarded}, nil
}

// moderatorRef 0 表示决策来源没有管理员身份
func moderatorRef(id uint64) *uint64 {
	if id == 0 {
		return nil
	}
	return &id
}

// afterModeration 事务提交后的副作用，全部失败容忍
func (s *adminService) afterModeration(ctx context.Context, listing *entities.Listing, d dto.ModerationDecision, status enums.Status, reason string, awarded int64) {
	if d.Approved {
		invalidateRanking(ctx, s.rankingCache, s.logger)
	}

	if s.publisher != nil {
		data := events.ModerationData{
			ListingID:   listing.ID,
			AuthorID:    listing.AuthorID,
			Status:      status,
			ModeratorID: d.ModeratorID,
			Reason:      reason,
		}
		publishAsync(s.logger, "listing.moderated", listing.ID, func(ctx context.Context) error {
			return s.publisher.SendListingModeratedEvent(ctx, data)
		})
	}

	if s.notifier != nil {
		s.notifier.NotifyModeration(notify.ModerationNotice{
			ListingID:   listing.ID,
			ListingName: listing.Name,
			AuthorEmail: listing.Author.Email,
			AuthorName:  listing.Author.Username,
			Approved:    d.Approved,
			Reason:      reason,
			Points:      awarded,
		})
	}
}

func (s *adminService) ChangeCategory(ctx context.Context, listingID, categoryID uint64) error {
	exists, err := s.categoryRepo.Exists(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("检查分类失败: %w", err)
	}
	if !exists {
		return myErrors.ErrInvalidCategory
	}
	if err := s.listingAdmin.UpdateCategory(ctx, listingID, categoryID); err != nil {
		return fmt.Errorf("修改工具(ID: %d)分类失败: %w", listingID, err)
	}
	s.logger.Info("管理员修改工具分类", zap.Uint64("listingID", listingID), zap.Uint64("categoryID", categoryID))
	return nil
}

func (s *adminService) ListListingsByCondition(ctx context.Context, req *dto.ListListingsByConditionRequest) (*vo.ListListingsAdminResponse, error) {
	listings, total, err := s.listingAdmin.ListByCondition(ctx, req)
	if err != nil {
		s.logger.Error("管理员按条件查询工具失败", zap.Any("request", req), zap.Error(err))
		return nil, fmt.Errorf("查询工具列表失败: %w", err)
	}
	return &vo.ListListingsAdminResponse{Listings: vo.NewListingVOs(listings), Total: total}, nil
}

func (s *adminService) ListUsers(ctx context.Context) ([]*vo.AdminUserVO, error) {
	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询用户列表失败: %w", err)
	}
	return vo.NewAdminUserVOs(users), nil
}

func (s *adminService) BanUser(ctx context.Context, userID uint64, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = constant.DefaultBanReason
	}
	if err := s.userRepo.SetBanned(ctx, userID, true, sql.NullString{String: reason, Valid: true}); err != nil {
		return fmt.Errorf("封禁用户(ID: %d)失败: %w", userID, err)
	}
	s.logger.Info("用户已被封禁", zap.Uint64("userID", userID), zap.String("reason", reason))
	invalidateRanking(ctx, s.rankingCache, s.logger)
	return nil
}

func (s *adminService) UnbanUser(ctx context.Context, userID uint64) error {
	if err := s.userRepo.SetBanned(ctx, userID, false, sql.NullString{}); err != nil {
		return fmt.Errorf("解封用户(ID: %d)失败: %w", userID, err)
	}
	s.logger.Info("用户已解封", zap.Uint64("userID", userID))
	invalidateRanking(ctx, s.rankingCache, s.logger)
	return nil
}

func (s *adminService) ModerationHistory(ctx context.Context, limit int) ([]*vo.ModerationHistoryVO, error) {
	rows, err := s.moderationRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("查询审核历史失败: %w", err)
	}
	return vo.NewModerationHistoryVOs(rows), nil
}

func (s *adminService) RecentActivity(ctx context.Context) ([]*vo.ActivityVO, error) {
	activities, err := s.activityRepo.ListRecent(ctx, dto.RecentActivityLimit)
	if err != nil {
		return nil, fmt.Errorf("查询最近动态失败: %w", err)
	}
	return vo.NewActivityVOs(activities), nil
}
