package golf

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Profile is the per-user self-assessment record. Every field beyond the
// identity columns is optional; the frontend fills them in over time and the
// recommendation engine selects category subsets from them.
//
// Miss-pattern fields are unordered tag sets drawn loosely from a suggested
// vocabulary (e.g. Slice, Hook, Push, Pull, Thin, Fat). They are not
// validated server-side. Rating fields, when present, lie in [1,5].
type Profile struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null;column:user_id" json:"userId"`

	// Core
	ProfilePicURL    *string  `gorm:"column:profile_pic_url" json:"profilePicUrl"`
	HomeCourse       *string  `gorm:"column:home_course" json:"homeCourse"`
	Handicap         *float64 `gorm:"column:handicap" json:"handicap"`
	PlayingFrequency *string  `gorm:"column:playing_frequency" json:"playingFrequency"`
	YearsPlaying     *int     `gorm:"column:years_playing" json:"yearsPlaying"`
	Goals            *string  `gorm:"column:goals" json:"goals"`

	// Full swing
	DriverMisses          datatypes.JSONSlice[string] `gorm:"column:driver_misses" json:"driverMisses"`
	DriverMissDescription *string                     `gorm:"column:driver_miss_description" json:"driverMissDescription"`
	DriverStrengthRating  *int                        `gorm:"column:driver_strength_rating" json:"driverStrengthRating"`
	IronMisses            datatypes.JSONSlice[string] `gorm:"column:iron_misses" json:"ironMisses"`
	IronMissDescription   *string                     `gorm:"column:iron_miss_description" json:"ironMissDescription"`
	IronStrengthRating    *int                        `gorm:"column:iron_strength_rating" json:"ironStrengthRating"`
	SwingFocus            *string                     `gorm:"column:swing_focus" json:"swingFocus"`

	// Short game
	ShortGameMisses      datatypes.JSONSlice[string] `gorm:"column:short_game_misses" json:"shortGameMisses"`
	ShortGameDescription *string                     `gorm:"column:short_game_description" json:"shortGameDescription"`
	ChippingRating       *int                        `gorm:"column:chipping_rating" json:"chippingRating"`
	PitchingRating       *int                        `gorm:"column:pitching_rating" json:"pitchingRating"`
	BunkerRating         *int                        `gorm:"column:bunker_rating" json:"bunkerRating"`

	// Putting
	PuttingMisses      datatypes.JSONSlice[string] `gorm:"column:putting_misses" json:"puttingMisses"`
	PuttingDescription *string                     `gorm:"column:putting_description" json:"puttingDescription"`
	ShortPuttRating    *int                        `gorm:"column:short_putt_rating" json:"shortPuttRating"`
	MediumPuttRating   *int                        `gorm:"column:medium_putt_rating" json:"mediumPuttRating"`
	LagPuttRating      *int                        `gorm:"column:lag_putt_rating" json:"lagPuttRating"`
	GreenReadingRating *int                        `gorm:"column:green_reading_rating" json:"greenReadingRating"`

	// Mental game
	MentalStrengths  datatypes.JSONSlice[string] `gorm:"column:mental_strengths" json:"mentalStrengths"`
	MentalWeaknesses datatypes.JSONSlice[string] `gorm:"column:mental_weaknesses" json:"mentalWeaknesses"`
	MentalGameNotes  *string                     `gorm:"column:mental_game_notes" json:"mentalGameNotes"`
	PreShotRoutine   *string                     `gorm:"column:pre_shot_routine" json:"preShotRoutine"`
	FavoriteThoughts *string                     `gorm:"column:favorite_thoughts" json:"favoriteThoughts"`

	// Equipment
	DriverInfo *string `gorm:"column:driver_info" json:"driverInfo"`
	IronInfo   *string `gorm:"column:iron_info" json:"ironInfo"`
	WedgeInfo  *string `gorm:"column:wedge_info" json:"wedgeInfo"`
	PutterInfo *string `gorm:"column:putter_info" json:"putterInfo"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Profile) TableName() string { return "profiles" }
