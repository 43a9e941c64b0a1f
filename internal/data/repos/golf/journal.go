package golf

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/fairwaylabs/golfcoach-backend/internal/domain"
	"github.com/fairwaylabs/golfcoach-backend/internal/platform/logger"
)

type JournalRepo interface {
	Create(ctx context.Context, tx *gorm.DB, e *types.JournalEntry) error
	// GetByIDForUser scopes the lookup to the owner; an entry owned by a
	// different user behaves exactly like an absent one.
	GetByIDForUser(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) (*types.JournalEntry, error)
	ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.JournalEntry, error)
	ListRecent(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.JournalEntry, error)
	Save(ctx context.Context, tx *gorm.DB, e *types.JournalEntry) error
	Delete(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) error
}

type journalRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewJournalRepo(db *gorm.DB, baseLog *logger.Logger) JournalRepo {
	return &journalRepo{db: db, log: baseLog.With("repo", "JournalRepo")}
}

func (jr *journalRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return jr.db
}

func (jr *journalRepo) Create(ctx context.Context, tx *gorm.DB, e *types.JournalEntry) error {
	return jr.conn(tx).WithContext(ctx).Create(e).Error
}

func (jr *journalRepo) GetByIDForUser(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) (*types.JournalEntry, error) {
	var result types.JournalEntry
	if err := jr.conn(tx).WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (jr *journalRepo) ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.JournalEntry, error) {
	var results []*types.JournalEntry
	if err := jr.conn(tx).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (jr *journalRepo) ListRecent(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.JournalEntry, error) {
	var results []*types.JournalEntry
	if err := jr.conn(tx).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (jr *journalRepo) Save(ctx context.Context, tx *gorm.DB, e *types.JournalEntry) error {
	return jr.conn(tx).WithContext(ctx).Save(e).Error
}

func (jr *journalRepo) Delete(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) error {
	return jr.conn(tx).WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&types.JournalEntry{}).Error
}
