package postgres

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/wiki_service/models/entities"
)

// ModerationRepository 审核历史
type ModerationRepository interface {
	Create(ctx context.Context, tx *gorm.DB, history *entities.ModerationHistory) error
	// List 最新的在前，预加载工具名称和管理员
	List(ctx context.Context, limit int) ([]*entities.ModerationHistory, error)
}

type moderationRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewModerationRepository(db *gorm.DB, logger *zap.Logger) ModerationRepository {
	return &moderationRepository{db: db, logger: logger}
}

func (r *moderationRepository) Create(ctx context.Context, tx *gorm.DB, history *entities.ModerationHistory) error {
	return tx.WithContext(ctx).Create(history).Error
}

func (r *moderationRepository) List(ctx context.Context, limit int) ([]*entities.ModerationHistory, error) {
	var rows []*entities.ModerationHistory
	err := r.db.WithContext(ctx).
		Preload("Listing", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		Preload("Admin").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		r.logger.Error("查询审核历史失败", zap.Error(err))
		return nil, err
	}
	return rows, nil
}
