package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Xushengqwer/wiki_service/models/dto"
	"github.com/Xushengqwer/wiki_service/models/vo"
	"github.com/Xushengqwer/wiki_service/repo/postgres"
)

// CategoryService 分类目录
type CategoryService interface {
	ListCategories(ctx context.Context) ([]vo.CategoryVO, error)
	// GetCategory 分类及其下已通过的工具 (按使用次数降序)
	GetCategory(ctx context.Context, slug string) (*vo.CategoryDetailVO, error)
	GetCategoryStats(ctx context.Context, slug string) (*vo.CategoryStatsVO, error)
}

type categoryService struct {
	categoryRepo postgres.CategoryRepository
	listingRepo  postgres.ListingRepository
	logger       *zap.Logger
}

func NewCategoryService(categoryRepo postgres.CategoryRepository, listingRepo postgres.ListingRepository, logger *zap.Logger) CategoryService {
	return &categoryService{categoryRepo: categoryRepo, listingRepo: listingRepo, logger: logger}
}

func (s *categoryService) ListCategories(ctx context.Context) ([]vo.CategoryVO, error) {
	categories, err := s.categoryRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询分类列表失败: %w", err)
	}
	return vo.NewCategoryVOs(categories), nil
}

func (s *categoryService) GetCategory(ctx context.Context, slug string) (*vo.CategoryDetailVO, error) {
	category, err := s.categoryRepo.GetActiveBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("获取分类 '%s' 失败: %w", slug, err)
	}
	listings, err := s.listingRepo.ListApproved(ctx, dto.ListingQuery{
		CategoryID: &category.ID,
		Order:      dto.ListingOrderMostUsed,
		Limit:      dto.CategoryDetailLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("查询分类下的工具失败: %w", err)
	}
	return &vo.CategoryDetailVO{CategoryVO: vo.NewCategoryVO(category), Listings: vo.NewListingVOs(listings)}, nil
}

func (s *categoryService) GetCategoryStats(ctx context.Context, slug string) (*vo.CategoryStatsVO, error) {
	category, err := s.categoryRepo.GetActiveBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("获取分类 '%s' 失败: %w", slug, err)
	}
	total, average, err := s.listingRepo.CategoryStats(ctx, category.ID)
	if err != nil {
		return nil, fmt.Errorf("统计分类 '%s' 失败: %w", slug, err)
	}
	return &vo.CategoryStatsVO{TotalListings: total, AverageRating: roundTo2(average)}, nil
}
