package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fairwaylabs/golfcoach-backend/internal/apperr"
	golfrepo "github.com/fairwaylabs/golfcoach-backend/internal/data/repos/golf"
	types "github.com/fairwaylabs/golfcoach-backend/internal/domain"
	"github.com/fairwaylabs/golfcoach-backend/internal/platform/logger"
)

// JournalInput carries the writable fields of an entry. Updates are full
// overwrites: an omitted course or datePlayed clears the stored value.
type JournalInput struct {
	Content    string     `json:"content"`
	Course     *string    `json:"course"`
	DatePlayed *time.Time `json:"datePlayed"`
}

type JournalService interface {
	Create(ctx context.Context, userID uuid.UUID, input JournalInput) (*types.JournalEntry, error)
	List(ctx context.Context, userID uuid.UUID) ([]*types.JournalEntry, error)
	Get(ctx context.Context, userID, entryID uuid.UUID) (*types.JournalEntry, error)
	Update(ctx context.Context, userID, entryID uuid.UUID, input JournalInput) (*types.JournalEntry, error)
	Delete(ctx context.Context, userID, entryID uuid.UUID) error
}

type journalService struct {
	db          *gorm.DB
	log         *logger.Logger
	journalRepo golfrepo.JournalRepo
}

func NewJournalService(db *gorm.DB, log *logger.Logger, journalRepo golfrepo.JournalRepo) JournalService {
	return &journalService{
		db:          db,
		log:         log.With("service", "JournalService"),
		journalRepo: journalRepo,
	}
}

func (js *journalService) Create(ctx context.Context, userID uuid.UUID, input JournalInput) (*types.JournalEntry, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, fmt.Errorf("%w: content is required", apperr.ErrValidation)
	}
	entry := &types.JournalEntry{
		ID:         uuid.New(),
		UserID:     userID,
		Content:    input.Content,
		Course:     input.Course,
		DatePlayed: input.DatePlayed,
	}
	if err := js.journalRepo.Create(ctx, nil, entry); err != nil {
		return nil, fmt.Errorf("create journal entry: %w", err)
	}
	return entry, nil
}

func (js *journalService) List(ctx context.Context, userID uuid.UUID) ([]*types.JournalEntry, error) {
	entries, err := js.journalRepo.ListByUserID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("list journal entries: %w", err)
	}
	return entries, nil
}

func (js *journalService) Get(ctx context.Context, userID, entryID uuid.UUID) (*types.JournalEntry, error) {
	entry, err := js.journalRepo.GetByIDForUser(ctx, nil, entryID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: journal entry", apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("fetch journal entry: %w", err)
	}
	return entry, nil
}

func (js *journalService) Update(ctx context.Context, userID, entryID uuid.UUID, input JournalInput) (*types.JournalEntry, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, fmt.Errorf("%w: content is required", apperr.ErrValidation)
	}
	entry, err := js.Get(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}
	entry.Content = input.Content
	entry.Course = input.Course
	entry.DatePlayed = input.DatePlayed
	if err := js.journalRepo.Save(ctx, nil, entry); err != nil {
		return nil, fmt.Errorf("update journal entry: %w", err)
	}
	return entry, nil
}

func (js *journalService) Delete(ctx context.Context, userID, entryID uuid.UUID) error {
	if _, err := js.Get(ctx, userID, entryID); err != nil {
		return err
	}
	if err := js.journalRepo.Delete(ctx, nil, entryID, userID); err != nil {
		return fmt.Errorf("delete journal entry: %w", err)
	}
	return nil
}
