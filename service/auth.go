package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Xushengqwer/go-common/commonerrors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/wiki_service/constant"
	"github.com/Xushengqwer/wiki_service/models/dto"
	"github.com/Xushengqwer/wiki_service/models/entities"
	"github.com/Xushengqwer/wiki_service/models/vo"
	"github.com/Xushengqwer/wiki_service/myErrors"
	"github.com/Xushengqwer/wiki_service/repo/postgres"
	"github.com/Xushengqwer/wiki_service/repo/redis"
	"github.com/Xushengqwer/wiki_service/security"
)

// TokenIssuer 签发登录令牌，由 *security.TokenManager 实现
type TokenIssuer interface {
	Issue(userID uint64, username, email, role string) (string, error)
}

// AuthService 注册、登录和个人资料
type AuthService interface {
	// Register 邮箱或用户名重复时返回 myErrors.ErrAccountTaken
	Register(ctx context.Context, req *dto.RegisterRequest) (*vo.AuthResponse, error)

	// Login 凭证错误返回 myErrors.ErrInvalidCredentials；被封禁返回包装了原因的 myErrors.ErrUserBanned
	Login(ctx context.Context, req *dto.LoginRequest) (*vo.AuthResponse, error)

	GetProfile(ctx context.Context, userID uint64) (*vo.ProfileVO, error)
	UpdateProfile(ctx context.Context, userID uint64, req *dto.UpdateProfileRequest) (*vo.ProfileVO, error)
}

type authService struct {
	db        *gorm.DB
	userRepo  postgres.UserRepository
	levelRepo postgres.LevelRepository
	badgeRepo postgres.BadgeRepository
	tokens    TokenIssuer
	ranking   redis.RankingCache // 可为 nil
	logger    *zap.Logger
}

func NewAuthService(
	db *gorm.DB,
	userRepo postgres.UserRepository,
	levelRepo postgres.LevelRepository,
	badgeRepo postgres.BadgeRepository,
	tokens TokenIssuer,
	ranking redis.RankingCache,
	logger *zap.Logger,
) AuthService {
	return &authService{
		db:        db,
		userRepo:  userRepo,
		levelRepo: levelRepo,
		badgeRepo: badgeRepo,
		tokens:    tokens,
		ranking:   ranking,
		logger:    logger,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*vo.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	username, err := normalizeUsername(req.Username)
	if err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByEmailOrUsername(ctx, email, username)
	if err != nil {
		return nil, fmt.Errorf("检查账号是否存在失败: %w", err)
	}
	if exists {
		return nil, myErrors.ErrAccountTaken
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("生成密码哈希失败: %w", err)
	}

	now := time.Now()
	user := &entities.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         constant.RoleUser,
		Level:        1,
		IsActive:     true,
		LastActiveAt: &now,
	}
	if level, err := s.levelRepo.FindForPoints(ctx, s.db, 0); err == nil {
		user.Level = level.Level
	}

	// 并发注册时唯一索引兜底，仓库层返回 ErrAccountTaken
	if err := s.userRepo.Create(ctx, s.db, user); err != nil {
		return nil, err
	}
	s.logger.Info("新用户注册", zap.Uint64("userID", user.ID), zap.String("username", user.Username))

	return s.issue(user)
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*vo.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return nil, myErrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}

	ok, err := security.CheckPassword(user.PasswordHash, req.Password)
	if err != nil {
		return nil, fmt.Errorf("校验密码失败: %w", err)
	}
	if !ok || !user.IsActive {
		return nil, myErrors.ErrInvalidCredentials
	}
	if user.IsBanned {
		reason := constant.DefaultBanReason
		if user.BanReason.Valid && user.BanReason.String != "" {
			reason = user.BanReason.String
		}
		s.logger.Warn("被封禁用户尝试登录", zap.Uint64("userID", user.ID))
		return nil, fmt.Errorf("%w: %s", myErrors.ErrUserBanned, reason)
	}

	if err := s.userRepo.TouchLastActive(ctx, user.ID, time.Now()); err != nil {
		s.logger.Warn("更新最后活跃时间失败", zap.Uint64("userID", user.ID), zap.Error(err))
	}
	return s.issue(user)
}

func (s *authService) issue(user *entities.User) (*vo.AuthResponse, error) {
	token, err := s.tokens.Issue(user.ID, user.Username, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("签发令牌失败: %w", err)
	}
	return &vo.AuthResponse{Token: token, User: vo.NewUserVO(user)}, nil
}

func (s *authService) GetProfile(ctx context.Context, userID uint64) (*vo.ProfileVO, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("获取用户(ID: %d)失败: %w", userID, err)
	}

	profile := &vo.ProfileVO{
		UserVO:       vo.NewUserVO(user),
		Bio:          user.Bio,
		CreatedAt:    user.CreatedAt,
		LastActiveAt: user.LastActiveAt,
	}

	level, err := s.levelRepo.GetByLevel(ctx, user.Level)
	if err != nil && !errors.Is(err, commonerrors.ErrRepoNotFound) {
		return nil, fmt.Errorf("获取等级信息失败: %w", err)
	}
	profile.LevelInfo = vo.NewLevelVO(level)

	grants, err := s.badgeRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("获取用户勋章失败: %w", err)
	}
	profile.Badges = vo.NewUserBadgeVOs(grants)
	return profile, nil
}

func (s *authService) UpdateProfile(ctx context.Context, userID uint64, req *dto.UpdateProfileRequest) (*vo.ProfileVO, error) {
	if req.Username != nil {
		trimmed, err := normalizeUsername(*req.Username)
		if err != nil {
			return nil, err
		}
		req.Username = &trimmed
		taken, err := s.userRepo.UsernameTakenByOther(ctx, trimmed, userID)
		if err != nil {
			return nil, fmt.Errorf("检查用户名失败: %w", err)
		}
		if taken {
			return nil, myErrors.ErrUsernameTaken
		}
	}

	if err := s.userRepo.UpdateProfile(ctx, userID, req.Username, req.Bio, req.Avatar); err != nil {
		return nil, err
	}
	s.logger.Info("用户更新个人资料", zap.Uint64("userID", userID))
	if req.Username != nil || req.Avatar != nil {
		// 排行榜缓存里带用户名和头像
		invalidateRanking(ctx, s.ranking, s.logger)
	}
	return s.GetProfile(ctx, userID)
}

// normalizeUsername 绑定校验只看原始长度，这里按去掉首尾空白后的长度再校验一次
func normalizeUsername(raw string) (string, error) {
	username := strings.TrimSpace(raw)
	if n := utf8.RuneCountInString(username); n < constant.MinUsernameLength || n > constant.MaxUsernameLength {
		return "", myErrors.ErrInvalidUsername
	}
	return username, nil
}
