package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/fairwaylabs/golfcoach-backend/internal/domain"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.User {
	tb.Helper()
	u := &types.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: "$2a$10$notarealhashnotarealhashnotarealhash",
		FirstName:    "A",
		LastName:     "B",
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedProfile(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID) *types.Profile {
	tb.Helper()
	p := &types.Profile{
		ID:     uuid.New(),
		UserID: userID,
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed profile: %v", err)
	}
	return p
}

func SeedJournalEntry(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID, content string) *types.JournalEntry {
	tb.Helper()
	e := &types.JournalEntry{
		ID:      uuid.New(),
		UserID:  userID,
		Content: content,
	}
	if err := tx.WithContext(ctx).Create(e).Error; err != nil {
		tb.Fatalf("seed journal entry: %v", err)
	}
	return e
}

func SeedRecommendation(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID, focusArea string) *types.AIRecommendation {
	tb.Helper()
	r := &types.AIRecommendation{
		ID:              uuid.New(),
		UserID:          userID,
		FocusArea:       focusArea,
		AdviceType:      "practice_plan",
		Recommendations: "work on tempo",
		PromptUsed:      "prompt",
	}
	if err := tx.WithContext(ctx).Create(r).Error; err != nil {
		tb.Fatalf("seed recommendation: %v", err)
	}
	return r
}

func PtrString(v string) *string { return &v }

func PtrTime(v time.Time) *time.Time { return &v }
