package postgres

import (
	"context"
	"errors"

	"github.com/Xushengqwer/go-common/commonerrors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/wiki_service/models/entities"
)

// CategoryRepository 分类查询
type CategoryRepository interface {
	// ListActive 启用的分类，按 sort_order 升序
	ListActive(ctx context.Context) ([]*entities.Category, error)
	// GetActiveBySlug 找不到或已停用时返回 commonerrors.ErrRepoNotFound
	GetActiveBySlug(ctx context.Context, slug string) (*entities.Category, error)
	// Exists 提交工具和修改分类前校验分类是否存在
	Exists(ctx context.Context, id uint64) (bool, error)
}

type categoryRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewCategoryRepository(db *gorm.DB, logger *zap.Logger) CategoryRepository {
	return &categoryRepository{db: db, logger: logger}
}

func (r *categoryRepository) ListActive(ctx context.Context) ([]*entities.Category, error) {
	var categories []*entities.Category
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC, id ASC").
		Find(&categories).Error
	if err != nil {
		r.logger.Error("查询分类列表失败", zap.Error(err))
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) GetActiveBySlug(ctx context.Context, slug string) (*entities.Category, error) {
	var category entities.Category
	err := r.db.WithContext(ctx).Where("slug = ? AND is_active = ?", slug, true).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 slug 查询分类失败", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) Exists(ctx context.Context, id uint64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Category{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
