package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/wiki_service/models/entities"
	"github.com/Xushengqwer/wiki_service/myErrors"
)

// UserRepository 用户数据的持久化操作。
// - 需要参与事务的写操作通过 tx 参数传入事务对象。
type UserRepository interface {
	// Create 插入新用户。邮箱或用户名冲突时返回 myErrors.ErrAccountTaken。
	Create(ctx context.Context, tx *gorm.DB, user *entities.User) error

	GetByID(ctx context.Context, id uint64) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	// GetPublicByUsername 只返回启用且未封禁的用户
	GetPublicByUsername(ctx context.Context, username string) (*entities.User, error)

	// ExistsByEmailOrUsername 注册前的重复检查
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)
	// UsernameTakenByOther 检查用户名是否被其他用户使用
	UsernameTakenByOther(ctx context.Context, username string, excludeID uint64) (bool, error)

	// UpdateProfile 只更新非 nil 的字段
	UpdateProfile(ctx context.Context, id uint64, username, bio, avatar *string) error
	TouchLastActive(ctx context.Context, id uint64, at time.Time) error

	// ListRanking 按累计积分降序列出启用且未封禁的用户
	ListRanking(ctx context.Context, limit int) ([]*entities.User, error)
	// ListAll 管理后台使用，按积分降序
	ListAll(ctx context.Context) ([]*entities.User, error)
	CountActive(ctx context.Context) (int64, error)

	// SetBanned 封禁或解封，用户不存在时返回 commonerrors.ErrRepoNotFound
	SetBanned(ctx context.Context, id uint64, banned bool, reason sql.NullString) error
	// SetRole 修改角色，用于初始化管理员账号
	SetRole(ctx context.Context, id uint64, role string) error

	// AddPoints 在事务内增加累计积分并返回最新的累计积分
	AddPoints(ctx context.Context, tx *gorm.DB, id uint64, delta int64) (int64, error)
	SetLevel(ctx context.Context, tx *gorm.DB, id uint64, level int) error
	// SpendPoints 条件扣减可用积分，可用积分不足时返回 myErrors.ErrInsufficientPoints
	SpendPoints(ctx context.Context, tx *gorm.DB, id uint64, cost int64) error
}

type userRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewUserRepository(db *gorm.DB, logger *zap.Logger) UserRepository {
	return &userRepository{db: db, logger: logger}
}

func (r *userRepository) Create(ctx context.Context, tx *gorm.DB, user *entities.User) error {
	if err := tx.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return myErrors.ErrAccountTaken
		}
		r.logger.Error("创建用户失败", zap.String("email", user.Email), zap.Error(err))
		return err
	}
	return nil
}

func (r *userRepository) first(ctx context.Context, query string, args ...interface{}) (*entities.User, error) {
	var user entities.User
	err := r.db.WithContext(ctx).Where(query, args...).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("查询用户失败", zap.String("condition", query), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByID(ctx context.Context, id uint64) (*entities.User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *userRepository) GetPublicByUsername(ctx context.Context, username string) (*entities.User, error) {
	return r.first(ctx, "username = ? AND is_active = ? AND is_banned = ?", username, true, false)
}

func (r *userRepository) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.User{}).
		Where("email = ? OR username = ?", email, username).
		Count(&count).Error
	if err != nil {
		r.logger.Error("检查用户是否存在失败", zap.Error(err))
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) UsernameTakenByOther(ctx context.Context, username string, excludeID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.User{}).
		Where("username = ? AND id <> ?", username, excludeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, id uint64, username, bio, avatar *string) error {
	updateMap := make(map[string]interface{})
	if username != nil {
		updateMap["username"] = *username
	}
	if bio != nil {
		updateMap["bio"] = *bio
	}
	if avatar != nil {
		updateMap["avatar"] = *avatar
	}
	if len(updateMap) == 0 {
		return nil
	}
	updateMap["updated_at"] = time.Now()

	result := r.db.WithContext(ctx).Model(&entities.User{}).Where("id = ?", id).Updates(updateMap)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return myErrors.ErrUsernameTaken
		}
		r.logger.Error("更新用户资料失败", zap.Uint64("userID", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

func (r *userRepository) TouchLastActive(ctx context.Context, id uint64, at time.Time) error {
	return r.db.WithContext(ctx).Model(&entities.User{}).
		Where("id = ?", id).
		UpdateColumn("last_active_at", at).Error
}

func (r *userRepository) ListRanking(ctx context.Context, limit int) ([]*entities.User, error) {
	var users []*entities.User
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND is_banned = ?", true, false).
		Order("points DESC, id ASC").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		r.logger.Error("查询排行榜失败", zap.Int("limit", limit), zap.Error(err))
		return nil, err
	}
	return users, nil
}

func (r *userRepository) ListAll(ctx context.Context) ([]*entities.User, error) {
	var users []*entities.User
	if err := r.db.WithContext(ctx).Order("points DESC, id ASC").Find(&users).Error; err != nil {
		r.logger.Error("查询用户列表失败", zap.Error(err))
		return nil, err
	}
	return users, nil
}

func (r *userRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.User{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

func (r *userRepository) SetBanned(ctx context.Context, id uint64, banned bool, reason sql.NullString) error {
	result := r.db.WithContext(ctx).Model(&entities.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_banned":  banned,
			"ban_reason": reason,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		r.logger.Error("更新封禁状态失败", zap.Uint64("userID", id), zap.Bool("banned", banned), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

func (r *userRepository) SetRole(ctx context.Context, id uint64, role string) error {
	result := r.db.WithContext(ctx).Model(&entities.User{}).Where("id = ?", id).Update("role", role)
	if result.Error != nil {
		r.logger.Error("修改用户角色失败", zap.Uint64("userID", id), zap.String("role", role), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

func (r *userRepository) AddPoints(ctx context.Context, tx *gorm.DB, id uint64, delta int64) (int64, error) {
	result := tx.WithContext(ctx).Model(&entities.User{}).
		Where("id = ?", id).
		UpdateColumn("points", gorm.Expr("points + ?", delta))
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, commonerrors.ErrRepoNotFound
	}

	var points int64
	if err := tx.WithContext(ctx).Model(&entities.User{}).Where("id = ?", id).Pluck("points", &points).Error; err != nil {
		return 0, err
	}
	return points, nil
}

func (r *userRepository) SetLevel(ctx context.Context, tx *gorm.DB, id uint64, level int) error {
	return tx.WithContext(ctx).Model(&entities.User{}).Where("id = ?", id).UpdateColumn("level", level).Error
}

func (r *userRepository) SpendPoints(ctx context.Context, tx *gorm.DB, id uint64, cost int64) error {
	result := tx.WithContext(ctx).Model(&entities.User{}).
		Where("id = ? AND points - spent_points >= ?", id, cost).
		UpdateColumn("spent_points", gorm.Expr("spent_points + ?", cost))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return myErrors.ErrInsufficientPoints
	}
	return nil
}
