package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/fairwaylabs/golfcoach-backend/internal/data/db"
	golfrepo "github.com/fairwaylabs/golfcoach-backend/internal/data/repos/golf"
	userrepo "github.com/fairwaylabs/golfcoach-backend/internal/data/repos/user"
	"github.com/fairwaylabs/golfcoach-backend/internal/http/handlers"
	"github.com/fairwaylabs/golfcoach-backend/internal/http/middleware"
	"github.com/fairwaylabs/golfcoach-backend/internal/platform/logger"
	"github.com/fairwaylabs/golfcoach-backend/internal/platform/sendgrid"
	"github.com/fairwaylabs/golfcoach-backend/internal/services"
)

type stubMailer struct{}

func (stubMailer) Send(ctx context.Context, req sendgrid.SendEmailRequest) (*sendgrid.SendEmailResult, error) {
	return &sendgrid.SendEmailResult{StatusCode: 202}, nil
}

type stubCompleter struct{}

func (stubCompleter) GenerateText(ctx context.Context, prompt string) (string, error) {
	return "Keep your head still.", nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrateAll(gdb); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}

	userRepo := userrepo.NewUserRepo(gdb, log)
	profileRepo := golfrepo.NewProfileRepo(gdb, log)
	journalRepo := golfrepo.NewJournalRepo(gdb, log)
	recsRepo := golfrepo.NewRecommendationRepo(gdb, log)

	authService := services.NewAuthService(gdb, log, userRepo, stubMailer{}, "test-secret", time.Hour, time.Hour, "http://localhost:5173")
	profileService := services.NewProfileService(gdb, log, profileRepo)
	journalService := services.NewJournalService(gdb, log, journalRepo)
	coachService := services.NewCoachService(gdb, log, profileRepo, journalRepo, recsRepo, stubCompleter{})

	return NewRouter(RouterConfig{
		Log:             log,
		FrontendBaseURL: "http://localhost:5173",
		AuthMiddleware:  middleware.NewAuthMiddleware(log, authService),
		HealthHandler:   handlers.NewHealthHandler(),
		AuthHandler:     handlers.NewAuthHandler(authService),
		ProfileHandler:  handlers.NewProfileHandler(profileService),
		JournalHandler:  handlers.NewJournalHandler(journalService),
		CoachHandler:    handlers.NewCoachHandler(coachService),
	})
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func registerAndLogin(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"email": email, "password": "longenough", "firstName": "Test", "lastName": "Golfer",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status %d: %s", rec.Code, rec.Body.String())
	}
	rec = doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": email, "password": "longenough",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login status %d: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Token string `json:"token"`
	}
	decode(t, rec, &body)
	if body.Token == "" {
		t.Fatal("login returned no token")
	}
	return body.Token
}

func TestHealthcheck(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/healthcheck", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestRegisterDoesNotLeakPassword(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"email": "leak@example.com", "password": "longenough", "firstName": "A", "lastName": "B",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	if bytes.Contains(rec.Body.Bytes(), []byte("longenough")) || bytes.Contains(rec.Body.Bytes(), []byte("password")) {
		t.Fatalf("response leaks credentials: %s", rec.Body.String())
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)
	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/profile"},
		{http.MethodGet, "/api/journal"},
		{http.MethodPost, "/api/ai-coach/generate"},
		{http.MethodGet, "/api/auth/users"},
	}
	for _, p := range paths {
		rec := doJSON(t, router, p.method, p.path, "", nil)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: status %d, want 401", p.method, p.path, rec.Code)
		}
		var env struct {
			Error struct {
				Message string `json:"message"`
				Code    string `json:"code"`
			} `json:"error"`
		}
		decode(t, rec, &env)
		if env.Error.Code != "unauthorized" {
			t.Fatalf("%s %s: error code %q", p.method, p.path, env.Error.Code)
		}
	}
}

func TestInvalidTokenRejected(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/api/profile", "not-a-real-token", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status %d, want 401", rec.Code)
	}
}

func TestProfileRoundTrip(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router, "profile@example.com")

	// First GET lazily creates an empty profile.
	rec := doJSON(t, router, http.MethodGet, "/api/profile", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodPut, "/api/profile", token, gin.H{
		"goals":          "break 80",
		"handicap":       14.2,
		"chippingRating": 4,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("put status %d: %s", rec.Code, rec.Body.String())
	}
	var profile struct {
		Goals          string   `json:"goals"`
		Handicap       *float64 `json:"handicap"`
		ChippingRating *int     `json:"chippingRating"`
	}
	decode(t, rec, &profile)
	if profile.Goals != "break 80" || profile.Handicap == nil || *profile.Handicap != 14.2 {
		t.Fatalf("profile not updated: %s", rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodPut, "/api/profile", token, gin.H{"chippingRating": 9})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("out-of-range rating: status %d, want 400", rec.Code)
	}
}

func TestJournalEndpoints(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router, "journal@example.com")

	rec := doJSON(t, router, http.MethodPost, "/api/journal", token, gin.H{
		"content": "Solid ball striking today.",
		"course":  "Pebble Creek",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status %d: %s", rec.Code, rec.Body.String())
	}
	var entry struct {
		ID string `json:"id"`
	}
	decode(t, rec, &entry)

	rec = doJSON(t, router, http.MethodGet, "/api/journal/"+entry.ID, token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodPost, "/api/journal", token, gin.H{"content": ""})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty content: status %d, want 400", rec.Code)
	}

	// Another account sees 404, not 403, for the same entry.
	otherToken := registerAndLogin(t, router, "other@example.com")
	rec = doJSON(t, router, http.MethodGet, "/api/journal/"+entry.ID, otherToken, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("cross-user get: status %d, want 404", rec.Code)
	}

	rec = doJSON(t, router, http.MethodDelete, "/api/journal/"+entry.ID, token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status %d: %s", rec.Code, rec.Body.String())
	}
	rec = doJSON(t, router, http.MethodGet, "/api/journal/"+entry.ID, token, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("deleted entry: status %d, want 404", rec.Code)
	}
}

func TestCoachEndpoints(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router, "coach@example.com")

	// No recommendation yet.
	rec := doJSON(t, router, http.MethodGet, "/api/ai-coach/latest", token, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("latest before generate: status %d, want 404", rec.Code)
	}

	// Profile is created by the first GET.
	if rec := doJSON(t, router, http.MethodGet, "/api/profile", token, nil); rec.Code != http.StatusOK {
		t.Fatalf("profile get status %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPost, "/api/ai-coach/generate", token, gin.H{
		"focusArea": "Putting", "adviceType": "practice drills",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("generate status %d: %s", rec.Code, rec.Body.String())
	}
	var generated struct {
		Recommendations string `json:"recommendations"`
		FocusArea       string `json:"focusArea"`
	}
	decode(t, rec, &generated)
	if generated.Recommendations != "Keep your head still." {
		t.Fatalf("recommendation %q", generated.Recommendations)
	}

	rec = doJSON(t, router, http.MethodPost, "/api/ai-coach/generate", token, gin.H{"focusArea": "Putting"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing adviceType: status %d, want 400", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/ai-coach/history", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("history status %d: %s", rec.Code, rec.Body.String())
	}
	var history []json.RawMessage
	decode(t, rec, &history)
	if len(history) != 1 {
		t.Fatalf("history length %d, want 1", len(history))
	}

	rec = doJSON(t, router, http.MethodGet, "/api/ai-coach/latest", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("latest status %d: %s", rec.Code, rec.Body.String())
	}
}

func TestForgotPasswordUniformResponse(t *testing.T) {
	router := newTestRouter(t)
	registerAndLogin(t, router, "known@example.com")

	known := doJSON(t, router, http.MethodPost, "/api/auth/forgot", "", gin.H{"email": "known@example.com"})
	unknown := doJSON(t, router, http.MethodPost, "/api/auth/forgot", "", gin.H{"email": "ghost@example.com"})
	if known.Code != http.StatusOK || unknown.Code != http.StatusOK {
		t.Fatalf("status %d / %d, want 200 for both", known.Code, unknown.Code)
	}
	if known.Body.String() != unknown.Body.String() {
		t.Fatalf("responses must be identical: %q vs %q", known.Body.String(), unknown.Body.String())
	}
}

func TestResetPasswordBadToken(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodPost, "/api/auth/reset/bogus-token", "", gin.H{"password": "longenough"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rec.Code)
	}
}
