package golf

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/fairwaylabs/golfcoach-backend/internal/domain"
	"github.com/fairwaylabs/golfcoach-backend/internal/platform/logger"
)

type ProfileRepo interface {
	Create(ctx context.Context, tx *gorm.DB, p *types.Profile) error
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.Profile, error)
	// UpdateFields overwrites only the supplied columns.
	UpdateFields(ctx context.Context, tx *gorm.DB, userID uuid.UUID, fields map[string]any) error
}

type profileRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProfileRepo(db *gorm.DB, baseLog *logger.Logger) ProfileRepo {
	return &profileRepo{db: db, log: baseLog.With("repo", "ProfileRepo")}
}

func (pr *profileRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return pr.db
}

func (pr *profileRepo) Create(ctx context.Context, tx *gorm.DB, p *types.Profile) error {
	return pr.conn(tx).WithContext(ctx).Create(p).Error
}

func (pr *profileRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.Profile, error) {
	var result types.Profile
	if err := pr.conn(tx).WithContext(ctx).
		Where("user_id = ?", userID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (pr *profileRepo) UpdateFields(ctx context.Context, tx *gorm.DB, userID uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return pr.conn(tx).WithContext(ctx).
		Model(&types.Profile{}).
		Where("user_id = ?", userID).
		Updates(fields).Error
}
