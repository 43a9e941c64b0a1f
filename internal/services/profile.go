package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/fairwaylabs/golfcoach-backend/internal/apperr"
	golfrepo "github.com/fairwaylabs/golfcoach-backend/internal/data/repos/golf"
	types "github.com/fairwaylabs/golfcoach-backend/internal/domain"
	"github.com/fairwaylabs/golfcoach-backend/internal/platform/logger"
)

// ProfileUpdate carries the fields supplied in a replace request. Nil means
// "not supplied, leave alone"; a present pointer overwrites, including with
// an empty value.
type ProfileUpdate struct {
	ProfilePicURL    *string  `json:"profilePicUrl"`
	HomeCourse       *string  `json:"homeCourse"`
	Handicap         *float64 `json:"handicap"`
	PlayingFrequency *string  `json:"playingFrequency"`
	YearsPlaying     *int     `json:"yearsPlaying"`
	Goals            *string  `json:"goals"`

	DriverMisses          *[]string `json:"driverMisses"`
	DriverMissDescription *string   `json:"driverMissDescription"`
	DriverStrengthRating  *int      `json:"driverStrengthRating"`
	IronMisses            *[]string `json:"ironMisses"`
	IronMissDescription   *string   `json:"ironMissDescription"`
	IronStrengthRating    *int      `json:"ironStrengthRating"`
	SwingFocus            *string   `json:"swingFocus"`

	ShortGameMisses      *[]string `json:"shortGameMisses"`
	ShortGameDescription *string   `json:"shortGameDescription"`
	ChippingRating       *int      `json:"chippingRating"`
	PitchingRating       *int      `json:"pitchingRating"`
	BunkerRating         *int      `json:"bunkerRating"`

	PuttingMisses      *[]string `json:"puttingMisses"`
	PuttingDescription *string   `json:"puttingDescription"`
	ShortPuttRating    *int      `json:"shortPuttRating"`
	MediumPuttRating   *int      `json:"mediumPuttRating"`
	LagPuttRating      *int      `json:"lagPuttRating"`
	GreenReadingRating *int      `json:"greenReadingRating"`

	MentalStrengths  *[]string `json:"mentalStrengths"`
	MentalWeaknesses *[]string `json:"mentalWeaknesses"`
	MentalGameNotes  *string   `json:"mentalGameNotes"`
	PreShotRoutine   *string   `json:"preShotRoutine"`
	FavoriteThoughts *string   `json:"favoriteThoughts"`

	DriverInfo *string `json:"driverInfo"`
	IronInfo   *string `json:"ironInfo"`
	WedgeInfo  *string `json:"wedgeInfo"`
	PutterInfo *string `json:"putterInfo"`
}

type ProfileService interface {
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*types.Profile, error)
	Replace(ctx context.Context, userID uuid.UUID, update ProfileUpdate) (*types.Profile, error)
}

type profileService struct {
	db          *gorm.DB
	log         *logger.Logger
	profileRepo golfrepo.ProfileRepo
}

func NewProfileService(db *gorm.DB, log *logger.Logger, profileRepo golfrepo.ProfileRepo) ProfileService {
	return &profileService{
		db:          db,
		log:         log.With("service", "ProfileService"),
		profileRepo: profileRepo,
	}
}

func (ps *profileService) GetOrCreate(ctx context.Context, userID uuid.UUID) (*types.Profile, error) {
	p, err := ps.profileRepo.GetByUserID(ctx, nil, userID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}

	fresh := &types.Profile{ID: uuid.New(), UserID: userID}
	if createErr := ps.profileRepo.Create(ctx, nil, fresh); createErr != nil {
		// A concurrent first access may have created the row; the unique
		// user_id index makes the second insert fail, so fetch again.
		p, err = ps.profileRepo.GetByUserID(ctx, nil, userID)
		if err != nil {
			return nil, fmt.Errorf("create profile: %w", createErr)
		}
		return p, nil
	}
	return fresh, nil
}

func (ps *profileService) Replace(ctx context.Context, userID uuid.UUID, update ProfileUpdate) (*types.Profile, error) {
	if _, err := ps.profileRepo.GetByUserID(ctx, nil, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: profile", apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("fetch profile: %w", err)
	}

	fields, err := update.columns()
	if err != nil {
		return nil, err
	}
	if err := ps.profileRepo.UpdateFields(ctx, nil, userID, fields); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	p, err := ps.profileRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("reload profile: %w", err)
	}
	return p, nil
}

// columns maps supplied fields to their database columns after validating
// every rating lies in [1,5]. Tag vocabularies are deliberately unchecked.
func (u ProfileUpdate) columns() (map[string]any, error) {
	fields := map[string]any{}

	setString := func(col string, v *string) {
		if v != nil {
			fields[col] = *v
		}
	}
	setTags := func(col string, v *[]string) {
		if v != nil {
			fields[col] = datatypes.JSONSlice[string](*v)
		}
	}
	setRating := func(col string, v *int) error {
		if v == nil {
			return nil
		}
		if *v < 1 || *v > 5 {
			return fmt.Errorf("%w: %s must be between 1 and 5", apperr.ErrValidation, col)
		}
		fields[col] = *v
		return nil
	}

	setString("profile_pic_url", u.ProfilePicURL)
	setString("home_course", u.HomeCourse)
	if u.Handicap != nil {
		fields["handicap"] = *u.Handicap
	}
	setString("playing_frequency", u.PlayingFrequency)
	if u.YearsPlaying != nil {
		fields["years_playing"] = *u.YearsPlaying
	}
	setString("goals", u.Goals)

	setTags("driver_misses", u.DriverMisses)
	setString("driver_miss_description", u.DriverMissDescription)
	setTags("iron_misses", u.IronMisses)
	setString("iron_miss_description", u.IronMissDescription)
	setString("swing_focus", u.SwingFocus)

	setTags("short_game_misses", u.ShortGameMisses)
	setString("short_game_description", u.ShortGameDescription)

	setTags("putting_misses", u.PuttingMisses)
	setString("putting_description", u.PuttingDescription)

	setTags("mental_strengths", u.MentalStrengths)
	setTags("mental_weaknesses", u.MentalWeaknesses)
	setString("mental_game_notes", u.MentalGameNotes)
	setString("pre_shot_routine", u.PreShotRoutine)
	setString("favorite_thoughts", u.FavoriteThoughts)

	setString("driver_info", u.DriverInfo)
	setString("iron_info", u.IronInfo)
	setString("wedge_info", u.WedgeInfo)
	setString("putter_info", u.PutterInfo)

	ratings := []struct {
		col string
		val *int
	}{
		{"driver_strength_rating", u.DriverStrengthRating},
		{"iron_strength_rating", u.IronStrengthRating},
		{"chipping_rating", u.ChippingRating},
		{"pitching_rating", u.PitchingRating},
		{"bunker_rating", u.BunkerRating},
		{"short_putt_rating", u.ShortPuttRating},
		{"medium_putt_rating", u.MediumPuttRating},
		{"lag_putt_rating", u.LagPuttRating},
		{"green_reading_rating", u.GreenReadingRating},
	}
	for _, r := range ratings {
		if err := setRating(r.col, r.val); err != nil {
			return nil, err
		}
	}

	return fields, nil
}
