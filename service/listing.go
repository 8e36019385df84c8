package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/models/enums"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/wiki_service/constant"
	"github.com/Xushengqwer/wiki_service/dependencies"
	"github.com/Xushengqwer/wiki_service/models/dto"
	"github.com/Xushengqwer/wiki_service/models/entities"
	"github.com/Xushengqwer/wiki_service/models/vo"
	"github.com/Xushengqwer/wiki_service/mq/events"
	"github.com/Xushengqwer/wiki_service/myErrors"
	"github.com/Xushengqwer/wiki_service/repo/postgres"
	"github.com/Xushengqwer/wiki_service/repo/redis"
)

// ListingService 面向用户的工具目录操作
type ListingService interface {
	// ListListings 已通过且启用的工具，支持分类过滤、排序和数量限制
	ListListings(ctx context.Context, req *dto.ListListingsRequest) ([]*vo.ListingVO, error)

	// GetListing 只返回已通过的工具，并增加一次使用计数
	GetListing(ctx context.Context, id uint64) (*vo.ListingVO, error)

	// CreateListing 新工具进入待审核状态，成功后异步发布 listing.submitted 事件
	CreateListing(ctx context.Context, authorID uint64, req *dto.CreateListingRequest) (*vo.ListingVO, error)

	// ListMine 当前用户提交的全部工具，不区分状态
	ListMine(ctx context.Context, authorID uint64) ([]*vo.ListingVO, error)

	Search(ctx context.Context, query string) ([]*vo.ListingVO, error)

	// UploadLogo 上传 logo 到对象存储，返回公开 URL
	UploadLogo(ctx context.Context, userID uint64, file *multipart.FileHeader) (*vo.LogoUploadVO, error)
}

type listingService struct {
	db           *gorm.DB
	listingRepo  postgres.ListingRepository
	categoryRepo postgres.CategoryRepository
	usageRepo    redis.ListingUsageRepository // 可为 nil，此时直接写数据库
	storage      dependencies.ObjectStorage   // 可为 nil
	publisher    ListingEventPublisher        // 可为 nil
	maxLogoSize  int64
	logger       *zap.Logger
}

func NewListingService(
	db *gorm.DB,
	listingRepo postgres.ListingRepository,
	categoryRepo postgres.CategoryRepository,
	usageRepo redis.ListingUsageRepository,
	storage dependencies.ObjectStorage,
	publisher ListingEventPublisher,
	maxLogoSize int64,
	logger *zap.Logger,
) ListingService {
	if maxLogoSize <= 0 {
		maxLogoSize = constant.DefaultMaxLogoSize
	}
	return &listingService{
		db:           db,
		listingRepo:  listingRepo,
		categoryRepo: categoryRepo,
		usageRepo:    usageRepo,
		storage:      storage,
		publisher:    publisher,
		maxLogoSize:  maxLogoSize,
		logger:       logger,
	}
}

func (s *listingService) ListListings(ctx context.Context, req *dto.ListListingsRequest) ([]*vo.ListingVO, error) {
	query := dto.ListingQuery{Order: req.Order, Limit: req.GetLimit()}
	if query.Order == "" {
		query.Order = dto.ListingOrderMostUsed
	}

	// 未知分类不做过滤，返回全部已通过的工具
	if req.Category != "" {
		category, err := s.categoryRepo.GetActiveBySlug(ctx, req.Category)
		switch {
		case err == nil:
			query.CategoryID = &category.ID
		case errors.Is(err, commonerrors.ErrRepoNotFound):
			s.logger.Debug("分类不存在，忽略分类过滤", zap.String("slug", req.Category))
		default:
			return nil, fmt.Errorf("查询分类 '%s' 失败: %w", req.Category, err)
		}
	}

	listings, err := s.listingRepo.ListApproved(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("查询工具列表失败: %w", err)
	}
	return vo.NewListingVOs(listings), nil
}

func (s *listingService) GetListing(ctx context.Context, id uint64) (*vo.ListingVO, error) {
	listing, err := s.listingRepo.GetApprovedByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("获取工具(ID: %d)失败: %w", id, err)
	}
	s.recordUsage(ctx, id)
	return vo.NewListingVO(listing), nil
}

// recordUsage 计数失败不影响详情返回
func (s *listingService) recordUsage(ctx context.Context, id uint64) {
	if s.usageRepo != nil {
		if err := s.usageRepo.Increment(ctx, id); err == nil {
			return
		}
		s.logger.Warn("Redis 计数失败，回退到数据库", zap.Uint64("listingID", id))
	}
	if err := s.listingRepo.IncrementUsage(ctx, id, 1); err != nil {
		s.logger.Error("增加工具使用次数失败", zap.Uint64("listingID", id), zap.Error(err))
	}
}

func (s *listingService) CreateListing(ctx context.Context, authorID uint64, req *dto.CreateListingRequest) (*vo.ListingVO, error) {
	exists, err := s.categoryRepo.Exists(ctx, req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("检查分类失败: %w", err)
	}
	if !exists {
		return nil, myErrors.ErrInvalidCategory
	}

	listing := &entities.Listing{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		URL:         strings.TrimSpace(req.URL),
		LogoURL:     req.LogoURL,
		CategoryID:  req.CategoryID,
		AuthorID:    authorID,
		Status:      enums.Pending,
		IsActive:    true,
	}
	if err := s.listingRepo.Create(ctx, s.db, listing); err != nil {
		s.logger.Error("创建工具失败", zap.Uint64("authorID", authorID), zap.Error(err))
		return nil, fmt.Errorf("创建工具失败: %w", err)
	}
	s.logger.Info("新工具已提交，等待审核", zap.Uint64("listingID", listing.ID), zap.Uint64("authorID", authorID))

	if s.publisher != nil {
		data := events.ListingData{
			ID:          listing.ID,
			Name:        listing.Name,
			URL:         listing.URL,
			CategoryID:  listing.CategoryID,
			AuthorID:    listing.AuthorID,
			Description: listing.Description,
		}
		publishAsync(s.logger, "listing.submitted", listing.ID, func(ctx context.Context) error {
			return s.publisher.SendListingSubmittedEvent(ctx, data)
		})
	}
	return vo.NewListingVO(listing), nil
}

func (s *listingService) ListMine(ctx context.Context, authorID uint64) ([]*vo.ListingVO, error) {
	listings, err := s.listingRepo.ListByAuthor(ctx, authorID, false)
	if err != nil {
		return nil, fmt.Errorf("查询我的工具失败: %w", err)
	}
	return vo.NewListingVOs(listings), nil
}

func (s *listingService) Search(ctx context.Context, query string) ([]*vo.ListingVO, error) {
	term := strings.TrimSpace(query)
	if term == "" {
		return nil, myErrors.ErrEmptyQuery
	}
	listings, err := s.listingRepo.Search(ctx, term, dto.SearchResultLimit)
	if err != nil {
		return nil, fmt.Errorf("搜索工具失败: %w", err)
	}
	return vo.NewListingVOs(listings), nil
}

func (s *listingService) UploadLogo(ctx context.Context, userID uint64, file *multipart.FileHeader) (*vo.LogoUploadVO, error) {
	if s.storage == nil {
		return nil, myErrors.ErrStorageDisabled
	}
	if file.Size > s.maxLogoSize {
		return nil, myErrors.ErrLogoTooLarge
	}
	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, myErrors.ErrInvalidLogoType
	}

	reader, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("打开上传文件失败: %w", err)
	}
	defer reader.Close()

	objectKey := logoObjectKey(userID, file.Filename, time.Now())
	url, err := s.storage.UploadFile(ctx, objectKey, reader, file.Size, contentType)
	if err != nil {
		s.logger.Error("上传 logo 失败", zap.Uint64("userID", userID), zap.String("objectKey", objectKey), zap.Error(err))
		return nil, fmt.Errorf("上传 logo 失败: %w", err)
	}
	s.logger.Info("logo 上传成功", zap.Uint64("userID", userID), zap.String("objectKey", objectKey))
	return &vo.LogoUploadVO{URL: url}, nil
}

// logoObjectKey 规则: listings/logos/YYYYMMDD/<userID>_<uuid>.<ext>
func logoObjectKey(userID uint64, filename string, now time.Time) string {
	return constant.COSObjectKeyPrefixLogos +
		now.Format("20060102") + "/" +
		strconv.FormatUint(userID, 10) + "_" + uuid.NewString() +
		strings.ToLower(filepath.Ext(filename))
}
