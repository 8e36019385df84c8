package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/models/enums"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/wiki_service/models/dto"
	"github.com/Xushengqwer/wiki_service/models/entities"
	"github.com/Xushengqwer/wiki_service/myErrors"
)

// ListingAdminRepository 管理员后台对工具的查询和状态修改
type ListingAdminRepository interface {
	// ListPending 待审核工具，最早提交的排在前面
	ListPending(ctx context.Context) ([]*entities.Listing, error)

	// TransitionStatus 条件更新: 只有当前状态为 from 时才改为 to。
	// - 工具不存在返回 commonerrors.ErrRepoNotFound
	// - 工具存在但状态已变化返回 myErrors.ErrAlreadyModerated
	TransitionStatus(ctx context.Context, tx *gorm.DB, id uint64, from, to enums.Status, moderatorID uint64, reason sql.NullString) error

	// UpdateCategory 修改分类，工具不存在时返回 commonerrors.ErrRepoNotFound
	UpdateCategory(ctx context.Context, id, categoryID uint64) error

	// ListByCondition 按条件分页查询，返回列表和总数
	ListByCondition(ctx context.Context, req *dto.ListListingsByConditionRequest) ([]*entities.Listing, int64, error)

	// CountByStatus 各状态的工具数量
	CountByStatus(ctx context.Context) (map[enums.Status]int64, error)
	// SumApprovedUsage 已通过工具的总使用次数
	SumApprovedUsage(ctx context.Context) (int64, error)
}

type listingAdminRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewListingAdminRepository(db *gorm.DB, logger *zap.Logger) ListingAdminRepository {
	return &listingAdminRepository{db: db, logger: logger}
}

func (r *listingAdminRepository) ListPending(ctx context.Context) ([]*entities.Listing, error) {
	var listings []*entities.Listing
	err := r.db.WithContext(ctx).
		Preload("Category").Preload("Author").
		Where("status = ?", enums.Pending).
		Order("created_at ASC, id ASC").
		Find(&listings).Error
	if err != nil {
		r.logger.Error("查询待审核工具失败", zap.Error(err))
		return nil, err
	}
	return listings, nil
}

func (r *listingAdminRepository) TransitionStatus(ctx context.Context, tx *gorm.DB, id uint64, from, to enums.Status, moderatorID uint64, reason sql.NullString) error {
	now := time.Now()
	result := tx.WithContext(ctx).Model(&entities.Listing{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]interface{}{
			"status":           to,
			"moderated_by":     moderatedBy(moderatorID),
			"moderated_at":     now,
			"rejection_reason": reason,
			"updated_at":       now,
		})
	if result.Error != nil {
		r.logger.Error("更新工具审核状态失败", zap.Uint64("listingID", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	// 没有行受影响: 区分不存在和已被审核
	var count int64
	if err := tx.WithContext(ctx).Model(&entities.Listing{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return commonerrors.ErrRepoNotFound
	}
	r.logger.Warn("工具已被审核，忽略本次状态变更", zap.Uint64("listingID", id), zap.Uint64("moderatorID", moderatorID))
	return myErrors.ErrAlreadyModerated
}

func moderatedBy(moderatorID uint64) interface{} {
	if moderatorID == 0 {
		return nil
	}
	return moderatorID
}

func (r *listingAdminRepository) UpdateCategory(ctx context.Context, id, categoryID uint64) error {
	result := r.db.WithContext(ctx).Model(&entities.Listing{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"category_id": categoryID, "updated_at": time.Now()})
	if result.Error != nil {
		r.logger.Error("修改工具分类失败", zap.Uint64("listingID", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

// adminOrderFields 允许排序的字段白名单
var adminOrderFields = map[string]string{
	"created_at":     "created_at",
	"usage_count":    "usage_count",
	"average_rating": "average_rating",
	"name":           "name",
}

func (r *listingAdminRepository) ListByCondition(ctx context.Context, req *dto.ListListingsByConditionRequest) ([]*entities.Listing, int64, error) {
	var listings []*entities.Listing
	dbQuery := r.db.WithContext(ctx).Model(&entities.Listing{})

	if req.Status != nil {
		dbQuery = dbQuery.Where("status = ?", *req.Status)
	}
	if req.Name != nil && *req.Name != "" {
		dbQuery = dbQuery.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(*req.Name)+"%")
	}
	if req.CategoryID != nil {
		dbQuery = dbQuery.Where("category_id = ?", *req.CategoryID)
	}
	if req.AuthorID != nil {
		dbQuery = dbQuery.Where("author_id = ?", *req.AuthorID)
	}

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		r.logger.Error("按条件查询工具计数失败", zap.Error(err))
		return nil, 0, err
	}
	if total == 0 {
		return []*entities.Listing{}, 0, nil
	}

	orderField, ok := adminOrderFields[req.OrderBy]
	if !ok {
		orderField = "created_at"
	}
	orderDirection := "ASC"
	if req.OrderDesc {
		orderDirection = "DESC"
	}
	orderClause := fmt.Sprintf("%s %s, id %s", orderField, orderDirection, orderDirection)

	err := dbQuery.Preload("Category").Preload("Author").
		Order(orderClause).
		Limit(req.GetLimit()).
		Offset(req.GetOffset()).
		Find(&listings).Error
	if err != nil {
		r.logger.Error("按条件查询工具分页数据失败", zap.Error(err))
		return nil, 0, err
	}
	return listings, total, nil
}

func (r *listingAdminRepository) CountByStatus(ctx context.Context) (map[enums.Status]int64, error) {
	var rows []struct {
		Status enums.Status
		Total  int64
	}
	err := r.db.WithContext(ctx).Model(&entities.Listing{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		r.logger.Error("统计工具状态失败", zap.Error(err))
		return nil, err
	}
	counts := make(map[enums.Status]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}

func (r *listingAdminRepository) SumApprovedUsage(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entities.Listing{}).
		Where("status = ?", enums.Approved).
		Select("COALESCE(SUM(usage_count), 0)").
		Scan(&total).Error
	return total, err
}

