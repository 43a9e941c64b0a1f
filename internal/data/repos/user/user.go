package user

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/fairwaylabs/golfcoach-backend/internal/domain"
	"github.com/fairwaylabs/golfcoach-backend/internal/platform/logger"
)

type UserRepo interface {
	Create(ctx context.Context, tx *gorm.DB, u *types.User) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.User, error)
	GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.User, error)
	EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error)
	GetByResetToken(ctx context.Context, tx *gorm.DB, token string) (*types.User, error)
	SetResetToken(ctx context.Context, tx *gorm.DB, userID uuid.UUID, token string, expires time.Time) error
	// ConsumeResetToken replaces the hash and clears the reset token and
	// expiry in a single guarded statement. It reports false when no live
	// token matched, so a consumed or expired token can never authorize a
	// second change even under concurrent calls.
	ConsumeResetToken(ctx context.Context, tx *gorm.DB, token, passwordHash string, now time.Time) (bool, error)
	ListAll(ctx context.Context, tx *gorm.DB) ([]*types.User, error)
}

type userRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	return &userRepo{db: db, log: baseLog.With("repo", "UserRepo")}
}

func (ur *userRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return ur.db
}

func (ur *userRepo) Create(ctx context.Context, tx *gorm.DB, u *types.User) error {
	return ur.conn(tx).WithContext(ctx).Create(u).Error
}

func (ur *userRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.User, error) {
	var result types.User
	if err := ur.conn(tx).WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (ur *userRepo) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.User, error) {
	var result types.User
	if err := ur.conn(tx).WithContext(ctx).
		Where("email = ?", email).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (ur *userRepo) EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
	var count int64
	if err := ur.conn(tx).WithContext(ctx).
		Model(&types.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (ur *userRepo) GetByResetToken(ctx context.Context, tx *gorm.DB, token string) (*types.User, error) {
	var result types.User
	if err := ur.conn(tx).WithContext(ctx).
		Where("reset_token = ?", token).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (ur *userRepo) SetResetToken(ctx context.Context, tx *gorm.DB, userID uuid.UUID, token string, expires time.Time) error {
	return ur.conn(tx).WithContext(ctx).
		Model(&types.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"reset_token":   token,
			"reset_expires": expires,
		}).Error
}

func (ur *userRepo) ConsumeResetToken(ctx context.Context, tx *gorm.DB, token, passwordHash string, now time.Time) (bool, error) {
	result := ur.conn(tx).WithContext(ctx).
		Model(&types.User{}).
		Where("reset_token = ? AND reset_expires > ?", token, now).
		Updates(map[string]any{
			"password_hash": passwordHash,
			"reset_token":   nil,
			"reset_expires": nil,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (ur *userRepo) ListAll(ctx context.Context, tx *gorm.DB) ([]*types.User, error) {
	var results []*types.User
	if err := ur.conn(tx).WithContext(ctx).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
