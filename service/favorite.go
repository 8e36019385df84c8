package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Xushengqwer/wiki_service/models/entities"
	"github.com/Xushengqwer/wiki_service/models/vo"
	"github.com/Xushengqwer/wiki_service/repo/postgres"
)

// FavoriteService 用户收藏
type FavoriteService interface {
	ListFavorites(ctx context.Context, userID uint64) ([]*vo.FavoriteVO, error)
	// AddFavorite 只能收藏已通过的工具，重复收藏返回 myErrors.ErrDuplicateFavorite
	AddFavorite(ctx context.Context, userID, listingID uint64) (*vo.FavoriteVO, error)
	// RemoveFavorite 幂等
	RemoveFavorite(ctx context.Context, userID, listingID uint64) error
	IsFavorite(ctx context.Context, userID, listingID uint64) (bool, error)
}

type favoriteService struct {
	favoriteRepo postgres.FavoriteRepository
	listingRepo  postgres.ListingRepository
	logger       *zap.Logger
}

func NewFavoriteService(favoriteRepo postgres.FavoriteRepository, listingRepo postgres.ListingRepository, logger *zap.Logger) FavoriteService {
	return &favoriteService{favoriteRepo: favoriteRepo, listingRepo: listingRepo, logger: logger}
}

func (s *favoriteService) ListFavorites(ctx context.Context, userID uint64) ([]*vo.FavoriteVO, error) {
	favorites, err := s.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("查询收藏失败: %w", err)
	}
	return vo.NewFavoriteVOs(favorites), nil
}

func (s *favoriteService) AddFavorite(ctx context.Context, userID, listingID uint64) (*vo.FavoriteVO, error) {
	listing, err := s.listingRepo.GetApprovedByID(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("获取工具(ID: %d)失败: %w", listingID, err)
	}

	favorite := &entities.Favorite{UserID: userID, ListingID: listingID}
	if err := s.favoriteRepo.Create(ctx, favorite); err != nil {
		return nil, err
	}
	favorite.Listing = *listing
	s.logger.Info("用户收藏工具", zap.Uint64("userID", userID), zap.Uint64("listingID", listingID))
	return vo.NewFavoriteVO(favorite), nil
}

func (s *favoriteService) RemoveFavorite(ctx context.Context, userID, listingID uint64) error {
	if err := s.favoriteRepo.Delete(ctx, userID, listingID); err != nil {
		return fmt.Errorf("取消收藏失败: %w", err)
	}
	return nil
}

func (s *favoriteService) IsFavorite(ctx context.Context, userID, listingID uint64) (bool, error) {
	return s.favoriteRepo.Exists(ctx, userID, listingID)
}
