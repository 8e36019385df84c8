package postgres

import (
	"context"
	"errors"

	"github.com/Xushengqwer/go-common/commonerrors"
	"gorm.io/gorm"

	"github.com/Xushengqwer/wiki_service/models/entities"
)

// LevelRepository 等级表只读访问
type LevelRepository interface {
	ListAll(ctx context.Context) ([]*entities.Level, error)
	// GetByLevel 等级不存在时返回 commonerrors.ErrRepoNotFound
	GetByLevel(ctx context.Context, level int) (*entities.Level, error)
	// FindForPoints 返回 min_points 不超过 points 的最高等级
	FindForPoints(ctx context.Context, tx *gorm.DB, points int64) (*entities.Level, error)
}

type levelRepository struct {
	db *gorm.DB
}

func NewLevelRepository(db *gorm.DB) LevelRepository {
	return &levelRepository{db: db}
}

func (r *levelRepository) ListAll(ctx context.Context) ([]*entities.Level, error) {
	var levels []*entities.Level
	err := r.db.WithContext(ctx).Order("level ASC").Find(&levels).Error
	return levels, err
}

func (r *levelRepository) GetByLevel(ctx context.Context, level int) (*entities.Level, error) {
	var l entities.Level
	if err := r.db.WithContext(ctx).Where("level = ?", level).First(&l).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		return nil, err
	}
	return &l, nil
}

func (r *levelRepository) FindForPoints(ctx context.Context, tx *gorm.DB, points int64) (*entities.Level, error) {
	var l entities.Level
	err := tx.WithContext(ctx).
		Where("min_points <= ?", points).
		Order("min_points DESC").
		First(&l).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		return nil, err
	}
	return &l, nil
}
