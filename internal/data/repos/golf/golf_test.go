package golf

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/fairwaylabs/golfcoach-backend/internal/data/repos/testutil"
	types "github.com/fairwaylabs/golfcoach-backend/internal/domain"
)

func TestProfileRepoUpdateFields(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	repo := NewProfileRepo(tx, testutil.Logger(t))
	ctx := context.Background()

	u := testutil.SeedUser(t, ctx, tx, "profile@example.com")
	testutil.SeedProfile(t, ctx, tx, u.ID)

	if err := repo.UpdateFields(ctx, tx, u.ID, map[string]any{
		"goals":           "break 80",
		"handicap":        14.2,
		"chipping_rating": 4,
	}); err != nil {
		t.Fatalf("update fields: %v", err)
	}

	p, err := repo.GetByUserID(ctx, tx, u.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Goals == nil || *p.Goals != "break 80" {
		t.Fatalf("goals %v", p.Goals)
	}
	if p.Handicap == nil || *p.Handicap != 14.2 {
		t.Fatalf("handicap %v", p.Handicap)
	}
	if p.ChippingRating == nil || *p.ChippingRating != 4 {
		t.Fatalf("chipping rating %v", p.ChippingRating)
	}
}

func TestProfileRepoUpdateFieldsEmptyMap(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	repo := NewProfileRepo(tx, testutil.Logger(t))
	ctx := context.Background()

	u := testutil.SeedUser(t, ctx, tx, "noop@example.com")
	testutil.SeedProfile(t, ctx, tx, u.ID)

	if err := repo.UpdateFields(ctx, tx, u.ID, map[string]any{}); err != nil {
		t.Fatalf("empty update should be a no-op: %v", err)
	}
}

func TestProfileRepoGetMissing(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	repo := NewProfileRepo(tx, testutil.Logger(t))
	ctx := context.Background()

	u := testutil.SeedUser(t, ctx, tx, "noprofile@example.com")
	_, err := repo.GetByUserID(ctx, tx, u.ID)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("want ErrRecordNotFound, got %v", err)
	}
}

func TestJournalRepoOwnershipScope(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	repo := NewJournalRepo(tx, testutil.Logger(t))
	ctx := context.Background()

	owner := testutil.SeedUser(t, ctx, tx, "owner@example.com")
	other := testutil.SeedUser(t, ctx, tx, "other@example.com")
	entry := testutil.SeedJournalEntry(t, ctx, tx, owner.ID, "good range session")

	if _, err := repo.GetByIDForUser(ctx, tx, entry.ID, owner.ID); err != nil {
		t.Fatalf("owner get: %v", err)
	}
	if _, err := repo.GetByIDForUser(ctx, tx, entry.ID, other.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("foreign get: want ErrRecordNotFound, got %v", err)
	}

	if err := repo.Delete(ctx, tx, entry.ID, other.ID); err != nil {
		t.Fatalf("foreign delete: %v", err)
	}
	// Scoped delete must not have touched the row.
	if _, err := repo.GetByIDForUser(ctx, tx, entry.ID, owner.ID); err != nil {
		t.Fatalf("entry deleted by non-owner: %v", err)
	}
}

func TestJournalRepoListRecent(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	repo := NewJournalRepo(tx, testutil.Logger(t))
	ctx := context.Background()

	u := testutil.SeedUser(t, ctx, tx, "recent@example.com")
	base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		e := testutil.SeedJournalEntry(t, ctx, tx, u.ID, "entry")
		if err := tx.Model(&types.JournalEntry{}).Where("id = ?", e.ID).
			Update("created_at", base.Add(time.Duration(i)*time.Hour)).Error; err != nil {
			t.Fatalf("set created_at: %v", err)
		}
	}

	recent, err := repo.ListRecent(ctx, tx, u.ID, 3)
	if err != nil {
		t.Fatalf("list recent: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("got %d entries, want 3", len(recent))
	}
	if !recent[0].CreatedAt.After(recent[2].CreatedAt) {
		t.Fatalf("entries not newest-first: %v, %v", recent[0].CreatedAt, recent[2].CreatedAt)
	}
}

func TestRecommendationRepoListAndLatest(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	repo := NewRecommendationRepo(tx, testutil.Logger(t))
	ctx := context.Background()

	u := testutil.SeedUser(t, ctx, tx, "recs@example.com")
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	var last *types.AIRecommendation
	for i := 0; i < 4; i++ {
		r := testutil.SeedRecommendation(t, ctx, tx, u.ID, "Putting")
		if err := tx.Model(&types.AIRecommendation{}).Where("id = ?", r.ID).
			Update("created_at", base.Add(time.Duration(i)*time.Hour)).Error; err != nil {
			t.Fatalf("set created_at: %v", err)
		}
		last = r
	}

	list, err := repo.ListByUserID(ctx, tx, u.ID, 3)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("got %d recommendations, want 3", len(list))
	}
	if list[0].ID != last.ID {
		t.Fatalf("list not newest-first: got %s, want %s", list[0].ID, last.ID)
	}

	latest, err := repo.GetLatest(ctx, tx, u.ID)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest.ID != last.ID {
		t.Fatalf("latest = %s, want %s", latest.ID, last.ID)
	}
}

func TestRecommendationRepoLatestMissing(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	repo := NewRecommendationRepo(tx, testutil.Logger(t))
	ctx := context.Background()

	u := testutil.SeedUser(t, ctx, tx, "norecs@example.com")
	_, err := repo.GetLatest(ctx, tx, u.ID)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("want ErrRecordNotFound, got %v", err)
	}
}
