package golf

import (
	"time"

	"github.com/google/uuid"
)

type JournalEntry struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID  `gorm:"type:uuid;index;not null;column:user_id" json:"userId"`
	Content    string     `gorm:"not null;column:content" json:"content"`
	Course     *string    `gorm:"column:course" json:"course"`
	DatePlayed *time.Time `gorm:"column:date_played" json:"datePlayed"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (JournalEntry) TableName() string { return "journal_entries" }
