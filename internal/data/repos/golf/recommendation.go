package golf

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/fairwaylabs/golfcoach-backend/internal/domain"
	"github.com/fairwaylabs/golfcoach-backend/internal/platform/logger"
)

// RecommendationRepo is insert-only; rows are removed only by cascade when
// the owning user is deleted.
type RecommendationRepo interface {
	Create(ctx context.Context, tx *gorm.DB, r *types.AIRecommendation) error
	ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.AIRecommendation, error)
	GetLatest(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.AIRecommendation, error)
}

type recommendationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRecommendationRepo(db *gorm.DB, baseLog *logger.Logger) RecommendationRepo {
	return &recommendationRepo{db: db, log: baseLog.With("repo", "RecommendationRepo")}
}

func (rr *recommendationRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return rr.db
}

func (rr *recommendationRepo) Create(ctx context.Context, tx *gorm.DB, r *types.AIRecommendation) error {
	return rr.conn(tx).WithContext(ctx).Create(r).Error
}

func (rr *recommendationRepo) ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.AIRecommendation, error) {
	var results []*types.AIRecommendation
	if err := rr.conn(tx).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (rr *recommendationRepo) GetLatest(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.AIRecommendation, error) {
	var result types.AIRecommendation
	if err := rr.conn(tx).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}
