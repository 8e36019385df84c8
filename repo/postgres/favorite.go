package postgres

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/wiki_service/models/entities"
	"github.com/Xushengqwer/wiki_service/myErrors"
)

// FavoriteRepository 收藏的持久化操作
type FavoriteRepository interface {
	// ListByUser 最新收藏在前，预加载工具及其分类
	ListByUser(ctx context.Context, userID uint64) ([]*entities.Favorite, error)
	// Create 重复收藏返回 myErrors.ErrDuplicateFavorite
	Create(ctx context.Context, favorite *entities.Favorite) error
	// Delete 取消收藏，记录不存在时不报错
	Delete(ctx context.Context, userID, listingID uint64) error
	Exists(ctx context.Context, userID, listingID uint64) (bool, error)
}

type favoriteRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewFavoriteRepository(db *gorm.DB, logger *zap.Logger) FavoriteRepository {
	return &favoriteRepository{db: db, logger: logger}
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userID uint64) ([]*entities.Favorite, error) {
	var favorites []*entities.Favorite
	err := r.db.WithContext(ctx).
		Preload("Listing").Preload("Listing.Category").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&favorites).Error
	if err != nil {
		r.logger.Error("查询收藏失败", zap.Uint64("userID", userID), zap.Error(err))
		return nil, err
	}
	return favorites, nil
}

func (r *favoriteRepository) Create(ctx context.Context, favorite *entities.Favorite) error {
	if err := r.db.WithContext(ctx).Create(favorite).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return myErrors.ErrDuplicateFavorite
		}
		r.logger.Error("添加收藏失败", zap.Uint64("userID", favorite.UserID), zap.Error(err))
		return err
	}
	return nil
}

func (r *favoriteRepository) Delete(ctx context.Context, userID, listingID uint64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND listing_id = ?", userID, listingID).
		Delete(&entities.Favorite{}).Error
}

func (r *favoriteRepository) Exists(ctx context.Context, userID, listingID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Favorite{}).
		Where("user_id = ? AND listing_id = ?", userID, listingID).
		Count(&count).Error
	return count > 0, err
}
