package postgres

import (
	"context"
	"errors"

	"github.com/Xushengqwer/go-common/commonerrors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/wiki_service/models/entities"
	"github.com/Xushengqwer/wiki_service/myErrors"
)

// BadgeRepository 勋章目录和用户勋章
type BadgeRepository interface {
	// ListActive 启用的勋章，按价格升序
	ListActive(ctx context.Context) ([]*entities.Badge, error)
	// GetActiveByID 不存在或未启用时返回 commonerrors.ErrRepoNotFound
	GetActiveByID(ctx context.Context, tx *gorm.DB, id uint64) (*entities.Badge, error)

	// ListByUser 用户拥有的勋章，最新获得的在前
	ListByUser(ctx context.Context, userID uint64) ([]*entities.UserBadge, error)
	UserHasBadge(ctx context.Context, tx *gorm.DB, userID, badgeID uint64) (bool, error)
	// Grant 发放勋章，重复时返回 myErrors.ErrBadgeAlreadyOwned
	Grant(ctx context.Context, tx *gorm.DB, grant *entities.UserBadge) error
}

type badgeRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewBadgeRepository(db *gorm.DB, logger *zap.Logger) BadgeRepository {
	return &badgeRepository{db: db, logger: logger}
}

func (r *badgeRepository) ListActive(ctx context.Context) ([]*entities.Badge, error) {
	var badges []*entities.Badge
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("cost ASC, id ASC").Find(&badges).Error
	if err != nil {
		r.logger.Error("查询勋章列表失败", zap.Error(err))
		return nil, err
	}
	return badges, nil
}

func (r *badgeRepository) GetActiveByID(ctx context.Context, tx *gorm.DB, id uint64) (*entities.Badge, error) {
	var badge entities.Badge
	err := tx.WithContext(ctx).Where("id = ? AND is_active = ?", id, true).First(&badge).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		return nil, err
	}
	return &badge, nil
}

func (r *badgeRepository) ListByUser(ctx context.Context, userID uint64) ([]*entities.UserBadge, error) {
	var grants []*entities.UserBadge
	err := r.db.WithContext(ctx).
		Preload("Badge").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&grants).Error
	if err != nil {
		r.logger.Error("查询用户勋章失败", zap.Uint64("userID", userID), zap.Error(err))
		return nil, err
	}
	return grants, nil
}

func (r *badgeRepository) UserHasBadge(ctx context.Context, tx *gorm.DB, userID, badgeID uint64) (bool, error) {
	var count int64
	err := tx.WithContext(ctx).Model(&entities.UserBadge{}).
		Where("user_id = ? AND badge_id = ?", userID, badgeID).
		Count(&count).Error
	return count > 0, err
}

func (r *badgeRepository) Grant(ctx context.Context, tx *gorm.DB, grant *entities.UserBadge) error {
	if err := tx.WithContext(ctx).Create(grant).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return myErrors.ErrBadgeAlreadyOwned
		}
		return err
	}
	return nil
}
