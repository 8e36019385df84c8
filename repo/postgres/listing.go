package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/models/enums"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/wiki_service/models/dto"
	"github.com/Xushengqwer/wiki_service/models/entities"
)

// ListingRepository 工具条目面向公开接口和用户自身的持久化操作
type ListingRepository interface {
	// Create 插入新工具，状态由调用方设置为待审核
	Create(ctx context.Context, tx *gorm.DB, listing *entities.Listing) error

	// GetByID 获取任意状态的工具，并预加载分类和作者
	GetByID(ctx context.Context, id uint64) (*entities.Listing, error)
	// GetApprovedByID 只返回已通过且启用的工具
	GetApprovedByID(ctx context.Context, id uint64) (*entities.Listing, error)

	// ListApproved 公开列表: 已通过且启用，可按分类过滤，支持三种排序
	ListApproved(ctx context.Context, query dto.ListingQuery) ([]*entities.Listing, error)
	// Search 在名称和描述中做不区分大小写的匹配
	Search(ctx context.Context, term string, limit int) ([]*entities.Listing, error)
	// ListByAuthor approvedOnly 为 false 时返回该作者的全部工具
	ListByAuthor(ctx context.Context, authorID uint64, approvedOnly bool) ([]*entities.Listing, error)
	CountApprovedByAuthor(ctx context.Context, authorID uint64) (int64, error)

	// CategoryStats 分类下已通过工具的数量和平均评分的均值
	CategoryStats(ctx context.Context, categoryID uint64) (int64, float64, error)

	// IncrementUsage 直接在数据库累加使用次数，Redis 不可用时使用
	IncrementUsage(ctx context.Context, id uint64, delta int64) error
	// UpdateRatingStats 回写评价聚合结果
	UpdateRatingStats(ctx context.Context, tx *gorm.DB, id uint64, average float64, count int64) error
}

type listingRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewListingRepository(db *gorm.DB, logger *zap.Logger) ListingRepository {
	return &listingRepository{db: db, logger: logger}
}

// approvedScope 公开可见的工具
func approvedScope(db *gorm.DB) *gorm.DB {
	return db.Where("listings.status = ? AND listings.is_active = ?", enums.Approved, true)
}

func (r *listingRepository) Create(ctx context.Context, tx *gorm.DB, listing *entities.Listing) error {
	return tx.WithContext(ctx).Create(listing).Error
}

func (r *listingRepository) GetByID(ctx context.Context, id uint64) (*entities.Listing, error) {
	var listing entities.Listing
	err := r.db.WithContext(ctx).Preload("Category").Preload("Author").First(&listing, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取工具失败", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	return &listing, nil
}

func (r *listingRepository) GetApprovedByID(ctx context.Context, id uint64) (*entities.Listing, error) {
	var listing entities.Listing
	err := r.db.WithContext(ctx).Scopes(approvedScope).
		Preload("Category").Preload("Author").
		Where("listings.id = ?", id).
		First(&listing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("获取已通过工具失败", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	return &listing, nil
}

// listingOrderClause 将排序方式映射为 ORDER BY 子句，未知值按使用次数排序
func listingOrderClause(order string) string {
	switch order {
	case dto.ListingOrderRecent:
		return "listings.created_at DESC, listings.id DESC"
	case dto.ListingOrderTopRated:
		return "listings.average_rating DESC, listings.review_count DESC, listings.id DESC"
	default:
		return "listings.usage_count DESC, listings.id DESC"
	}
}

func (r *listingRepository) ListApproved(ctx context.Context, query dto.ListingQuery) ([]*entities.Listing, error) {
	var listings []*entities.Listing
	dbQuery := r.db.WithContext(ctx).Scopes(approvedScope).Preload("Category").Preload("Author")
	if query.CategoryID != nil {
		dbQuery = dbQuery.Where("listings.category_id = ?", *query.CategoryID)
	}
	limit := query.Limit
	if limit <= 0 {
		limit = dto.DefaultListingLimit
	}
	if err := dbQuery.Order(listingOrderClause(query.Order)).Limit(limit).Find(&listings).Error; err != nil {
		r.logger.Error("查询工具列表失败", zap.Any("query", query), zap.Error(err))
		return nil, err
	}
	return listings, nil
}

func (r *listingRepository) Search(ctx context.Context, term string, limit int) ([]*entities.Listing, error) {
	var listings []*entities.Listing
	pattern := "%" + strings.ToLower(term) + "%"
	err := r.db.WithContext(ctx).Scopes(approvedScope).
		Preload("Category").
		Where("(LOWER(listings.name) LIKE ? OR LOWER(listings.description) LIKE ?)", pattern, pattern).
		Order("listings.usage_count DESC, listings.id DESC").
		Limit(limit).
		Find(&listings).Error
	if err != nil {
		r.logger.Error("搜索工具失败", zap.String("term", term), zap.Error(err))
		return nil, err
	}
	return listings, nil
}

func (r *listingRepository) ListByAuthor(ctx context.Context, authorID uint64, approvedOnly bool) ([]*entities.Listing, error) {
	var listings []*entities.Listing
	dbQuery := r.db.WithContext(ctx).Preload("Category").Where("listings.author_id = ?", authorID)
	if approvedOnly {
		dbQuery = dbQuery.Scopes(approvedScope)
	}
	if err := dbQuery.Order("listings.created_at DESC, listings.id DESC").Find(&listings).Error; err != nil {
		r.logger.Error("查询作者的工具失败", zap.Uint64("authorID", authorID), zap.Error(err))
		return nil, err
	}
	return listings, nil
}

func (r *listingRepository) CountApprovedByAuthor(ctx context.Context, authorID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Listing{}).Scopes(approvedScope).
		Where("listings.author_id = ?", authorID).
		Count(&count).Error
	return count, err
}

func (r *listingRepository) CategoryStats(ctx context.Context, categoryID uint64) (int64, float64, error) {
	var row struct {
		Total   int64
		Average float64
	}
	err := r.db.WithContext(ctx).Model(&entities.Listing{}).Scopes(approvedScope).
		Select("COUNT(*) AS total, COALESCE(AVG(listings.average_rating), 0) AS average").
		Where("listings.category_id = ?", categoryID).
		Scan(&row).Error
	if err != nil {
		r.logger.Error("统计分类数据失败", zap.Uint64("categoryID", categoryID), zap.Error(err))
		return 0, 0, err
	}
	return row.Total, row.Average, nil
}

func (r *listingRepository) IncrementUsage(ctx context.Context, id uint64, delta int64) error {
	return r.db.WithContext(ctx).Model(&entities.Listing{}).
		Where("id = ?", id).
		UpdateColumn("usage_count", gorm.Expr("usage_count + ?", delta)).Error
}

func (r *listingRepository) UpdateRatingStats(ctx context.Context, tx *gorm.DB, id uint64, average float64, count int64) error {
	return tx.WithContext(ctx).Model(&entities.Listing{}).
		Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"average_rating": average,
			"review_count":   count,
		}).Error
}
