package golf

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AIRecommendation is an insert-only history row: one per generation request,
// capturing the request parameters, the generated text, and the exact prompt
// and context snapshots used to build it (kept for audit and debugging).
type AIRecommendation struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null;column:user_id" json:"userId"`

	FocusArea  string `gorm:"not null;column:focus_area" json:"focusArea"`
	AdviceType string `gorm:"not null;column:advice_type" json:"adviceType"`

	Recommendations string `gorm:"not null;column:recommendations" json:"recommendations"`

	PromptUsed     string         `gorm:"column:prompt_used" json:"promptUsed,omitempty"`
	ProfileContext datatypes.JSON `gorm:"column:profile_context" json:"profileContext,omitempty"`
	SessionContext datatypes.JSON `gorm:"column:session_context" json:"sessionContext,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (AIRecommendation) TableName() string { return "ai_recommendations" }
