package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/fairwaylabs/golfcoach-backend/internal/data/db"
	golfrepo "github.com/fairwaylabs/golfcoach-backend/internal/data/repos/golf"
	userrepo "github.com/fairwaylabs/golfcoach-backend/internal/data/repos/user"
	"github.com/fairwaylabs/golfcoach-backend/internal/platform/logger"
	"github.com/fairwaylabs/golfcoach-backend/internal/platform/sendgrid"
)

var (
	testLogOnce sync.Once
	testLog     *logger.Logger
	testLogErr  error
)

func testLogger(tb testing.TB) *logger.Logger {
	tb.Helper()
	testLogOnce.Do(func() {
		testLog, testLogErr = logger.New("test")
	})
	if testLogErr != nil {
		tb.Fatalf("init logger: %v", testLogErr)
	}
	return testLog
}

// testDB opens a fresh in-memory database per test so cases cannot see each
// other's rows.
func testDB(tb testing.TB) *gorm.DB {
	tb.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrateAll(gdb); err != nil {
		tb.Fatalf("automigrate: %v", err)
	}
	return gdb
}

// fakeMailer records outgoing mail instead of talking to SendGrid.
type fakeMailer struct {
	sent []sendgrid.SendEmailRequest
	err  error
}

func (f *fakeMailer) Send(ctx context.Context, req sendgrid.SendEmailRequest) (*sendgrid.SendEmailResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, req)
	return &sendgrid.SendEmailResult{StatusCode: 202}, nil
}

// fakeCompleter is a canned completion provider.
type fakeCompleter struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeCompleter) GenerateText(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func newAuthService(tb testing.TB, gdb *gorm.DB, mail sendgrid.Client) AuthService {
	tb.Helper()
	log := testLogger(tb)
	return NewAuthService(
		gdb, log,
		userrepo.NewUserRepo(gdb, log),
		mail,
		"test-secret",
		time.Hour,
		time.Hour,
		"http://localhost:5173",
	)
}

func newProfileService(tb testing.TB, gdb *gorm.DB) ProfileService {
	tb.Helper()
	log := testLogger(tb)
	return NewProfileService(gdb, log, golfrepo.NewProfileRepo(gdb, log))
}

func newJournalService(tb testing.TB, gdb *gorm.DB) JournalService {
	tb.Helper()
	log := testLogger(tb)
	return NewJournalService(gdb, log, golfrepo.NewJournalRepo(gdb, log))
}

func newCoachService(tb testing.TB, gdb *gorm.DB, ai *fakeCompleter) CoachService {
	tb.Helper()
	log := testLogger(tb)
	return NewCoachService(
		gdb, log,
		golfrepo.NewProfileRepo(gdb, log),
		golfrepo.NewJournalRepo(gdb, log),
		golfrepo.NewRecommendationRepo(gdb, log),
		ai,
	)
}
