package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/wiki_service/models/entities"
	"github.com/Xushengqwer/wiki_service/myErrors"
)

// ReviewRepository 评价的持久化操作
type ReviewRepository interface {
	// Create 插入评价，(用户, 工具) 冲突时返回 myErrors.ErrDuplicateReview
	Create(ctx context.Context, tx *gorm.DB, review *entities.Review) error
	// ExistsForUser 包含已删除的评价
	ExistsForUser(ctx context.Context, tx *gorm.DB, userID, listingID uint64) (bool, error)

	// GetOwnedActive 获取属于该用户且未删除的评价，否则返回 commonerrors.ErrRepoNotFound
	GetOwnedActive(ctx context.Context, tx *gorm.DB, id, userID uint64) (*entities.Review, error)
	// Update 更新评分/内容并标记为已编辑，字段为 nil 表示不修改
	Update(ctx context.Context, tx *gorm.DB, id uint64, rating *int, comment *string) error
	Deactivate(ctx context.Context, tx *gorm.DB, id uint64) error

	// ListActiveByListing 最新的在前，预加载评价者
	ListActiveByListing(ctx context.Context, listingID uint64) ([]*entities.Review, error)
	// ActiveStats 工具所有有效评价的平均分和数量
	ActiveStats(ctx context.Context, tx *gorm.DB, listingID uint64) (float64, int64, error)

	CountActiveByUser(ctx context.Context, userID uint64) (int64, error)
	CountActive(ctx context.Context) (int64, error)
}

type reviewRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewReviewRepository(db *gorm.DB, logger *zap.Logger) ReviewRepository {
	return &reviewRepository{db: db, logger: logger}
}

func (r *reviewRepository) Create(ctx context.Context, tx *gorm.DB, review *entities.Review) error {
	if err := tx.WithContext(ctx).Create(review).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return myErrors.ErrDuplicateReview
		}
		r.logger.Error("创建评价失败", zap.Uint64("listingID", review.ListingID), zap.Error(err))
		return err
	}
	return nil
}

func (r *reviewRepository) ExistsForUser(ctx context.Context, tx *gorm.DB, userID, listingID uint64) (bool, error) {
	var count int64
	err := tx.WithContext(ctx).Model(&entities.Review{}).
		Where("user_id = ? AND listing_id = ?", userID, listingID).
		Count(&count).Error
	return count > 0, err
}

func (r *reviewRepository) GetOwnedActive(ctx context.Context, tx *gorm.DB, id, userID uint64) (*entities.Review, error) {
	var review entities.Review
	err := tx.WithContext(ctx).
		Where("id = ? AND user_id = ? AND is_active = ?", id, userID, true).
		First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) Update(ctx context.Context, tx *gorm.DB, id uint64, rating *int, comment *string) error {
	updateMap := map[string]interface{}{
		"edited":     true,
		"updated_at": time.Now(),
	}
	if rating != nil {
		updateMap["rating"] = *rating
	}
	if comment != nil {
		updateMap["comment"] = *comment
	}
	return tx.WithContext(ctx).Model(&entities.Review{}).Where("id = ?", id).Updates(updateMap).Error
}

func (r *reviewRepository) Deactivate(ctx context.Context, tx *gorm.DB, id uint64) error {
	return tx.WithContext(ctx).Model(&entities.Review{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_active": false, "updated_at": time.Now()}).Error
}

func (r *reviewRepository) ListActiveByListing(ctx context.Context, listingID uint64) ([]*entities.Review, error) {
	var reviews []*entities.Review
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("listing_id = ? AND is_active = ?", listingID, true).
		Order("created_at DESC, id DESC").
		Find(&reviews).Error
	if err != nil {
		r.logger.Error("查询工具评价失败", zap.Uint64("listingID", listingID), zap.Error(err))
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) ActiveStats(ctx context.Context, tx *gorm.DB, listingID uint64) (float64, int64, error) {
	var row struct {
		Average float64
		Total   int64
	}
	err := tx.WithContext(ctx).Model(&entities.Review{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS total").
		Where("listing_id = ? AND is_active = ?", listingID, true).
		Scan(&row).Error
	return row.Average, row.Total, err
}

func (r *reviewRepository) CountActiveByUser(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Review{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Count(&count).Error
	return count, err
}

func (r *reviewRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Review{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}
