package postgres

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/wiki_service/models/entities"
)

// ActivityRepository 用户动态和积分流水
type ActivityRepository interface {
	Create(ctx context.Context, tx *gorm.DB, activity *entities.Activity) error
	CreatePointTransaction(ctx context.Context, tx *gorm.DB, txn *entities.PointTransaction) error

	// ListByUser 某个用户最近的动态
	ListByUser(ctx context.Context, userID uint64, limit int) ([]*entities.Activity, error)
	// ListRecent 全站最近动态，附带用户名
	ListRecent(ctx context.Context, limit int) ([]*entities.Activity, error)
}

type activityRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewActivityRepository(db *gorm.DB, logger *zap.Logger) ActivityRepository {
	return &activityRepository{db: db, logger: logger}
}

func (r *activityRepository) Create(ctx context.Context, tx *gorm.DB, activity *entities.Activity) error {
	return tx.WithContext(ctx).Create(activity).Error
}

func (r *activityRepository) CreatePointTransaction(ctx context.Context, tx *gorm.DB, txn *entities.PointTransaction) error {
	return tx.WithContext(ctx).Create(txn).Error
}

func (r *activityRepository) ListByUser(ctx context.Context, userID uint64, limit int) ([]*entities.Activity, error) {
	var activities []*entities.Activity
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&activities).Error
	if err != nil {
		r.logger.Error("查询用户动态失败", zap.Uint64("userID", userID), zap.Error(err))
		return nil, err
	}
	return activities, nil
}

func (r *activityRepository) ListRecent(ctx context.Context, limit int) ([]*entities.Activity, error) {
	var activities []*entities.Activity
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&activities).Error
	if err != nil {
		r.logger.Error("查询最近动态失败", zap.Error(err))
		return nil, err
	}
	return activities, nil
}
