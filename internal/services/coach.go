package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/fairwaylabs/golfcoach-backend/internal/apperr"
	"github.com/fairwaylabs/golfcoach-backend/internal/coachprompt"
	golfrepo "github.com/fairwaylabs/golfcoach-backend/internal/data/repos/golf"
	types "github.com/fairwaylabs/golfcoach-backend/internal/domain"
	"github.com/fairwaylabs/golfcoach-backend/internal/platform/logger"
	"github.com/fairwaylabs/golfcoach-backend/internal/platform/openai"
)

// HistoryLimit caps how many past recommendations the history endpoint returns.
const HistoryLimit = 10

type CoachService interface {
	// Generate builds a prompt from the player's profile and recent journal
	// entries, calls the completion provider once, and stores the result.
	Generate(ctx context.Context, userID uuid.UUID, focusArea, adviceType string) (*types.AIRecommendation, error)
	History(ctx context.Context, userID uuid.UUID) ([]*types.AIRecommendation, error)
	Latest(ctx context.Context, userID uuid.UUID) (*types.AIRecommendation, error)
}

type coachService struct {
	db          *gorm.DB
	log         *logger.Logger
	profileRepo golfrepo.ProfileRepo
	journalRepo golfrepo.JournalRepo
	recsRepo    golfrepo.RecommendationRepo
	ai          openai.Client
}

func NewCoachService(
	db *gorm.DB,
	log *logger.Logger,
	profileRepo golfrepo.ProfileRepo,
	journalRepo golfrepo.JournalRepo,
	recsRepo golfrepo.RecommendationRepo,
	ai openai.Client,
) CoachService {
	return &coachService{
		db:          db,
		log:         log.With("service", "CoachService"),
		profileRepo: profileRepo,
		journalRepo: journalRepo,
		recsRepo:    recsRepo,
		ai:          ai,
	}
}

// sessionSnapshot is the persisted record of which journal entries fed a
// recommendation, kept alongside the prompt for later inspection.
type sessionSnapshot struct {
	ID      uuid.UUID `json:"id"`
	Date    string    `json:"date"`
	Content string    `json:"content"`
}

func (cs *coachService) Generate(ctx context.Context, userID uuid.UUID, focusArea, adviceType string) (*types.AIRecommendation, error) {
	focusArea = strings.TrimSpace(focusArea)
	adviceType = strings.TrimSpace(adviceType)
	if focusArea == "" || adviceType == "" {
		return nil, fmt.Errorf("%w: focusArea and adviceType are required", apperr.ErrValidation)
	}

	profile, err := cs.profileRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: profile", apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("fetch profile: %w", err)
	}

	sessions, err := cs.journalRepo.ListRecent(ctx, nil, userID, coachprompt.MaxSessions)
	if err != nil {
		return nil, fmt.Errorf("fetch recent sessions: %w", err)
	}

	profileContext := coachprompt.ContextFields(coachprompt.ParseFocusArea(focusArea), profile)
	sessionSummary := coachprompt.FormatSessions(sessions)

	prompt, err := coachprompt.Build(focusArea, adviceType, profileContext, sessionSummary)
	if err != nil {
		return nil, err
	}

	text, err := cs.ai.GenerateText(ctx, prompt)
	if err != nil {
		cs.log.Error("completion request failed", "user_id", userID, "focus_area", focusArea, "error", err)
		return nil, fmt.Errorf("%w: completion provider: %v", apperr.ErrUpstream, err)
	}

	profileJSON, err := json.Marshal(profileContext)
	if err != nil {
		return nil, fmt.Errorf("serialize profile snapshot: %w", err)
	}
	snapshots := make([]sessionSnapshot, 0, len(sessions))
	for _, s := range sessions {
		snapshots = append(snapshots, sessionSnapshot{
			ID:      s.ID,
			Date:    s.CreatedAt.Format("1/2/2006"),
			Content: s.Content,
		})
	}
	sessionJSON, err := json.Marshal(snapshots)
	if err != nil {
		return nil, fmt.Errorf("serialize session snapshot: %w", err)
	}

	rec := &types.AIRecommendation{
		ID:              uuid.New(),
		UserID:          userID,
		FocusArea:       focusArea,
		AdviceType:      adviceType,
		Recommendations: text,
		PromptUsed:      prompt,
		ProfileContext:  datatypes.JSON(profileJSON),
		SessionContext:  datatypes.JSON(sessionJSON),
	}
	if err := cs.recsRepo.Create(ctx, nil, rec); err != nil {
		return nil, fmt.Errorf("store recommendation: %w", err)
	}
	return rec, nil
}

func (cs *coachService) History(ctx context.Context, userID uuid.UUID) ([]*types.AIRecommendation, error) {
	recs, err := cs.recsRepo.ListByUserID(ctx, nil, userID, HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("list recommendations: %w", err)
	}
	return recs, nil
}

func (cs *coachService) Latest(ctx context.Context, userID uuid.UUID) (*types.AIRecommendation, error) {
	rec, err := cs.recsRepo.GetLatest(ctx, nil, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: recommendation", apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("fetch latest recommendation: %w", err)
	}
	return rec, nil
}
