package model

import "time"

// Suggestion statuses. A suggestion starts pending and is resolved by a
// moderator to approved or rejected.
const (
	SuggestionPending  = "pending"
	SuggestionApproved = "approved"
	SuggestionRejected = "rejected"
)

// Suggestion tracks the moderation state of a user-submitted game. It is
// created atomically alongside its Game, which carries is_suggestion=true
// and approved=false until moderation.
type Suggestion struct {
	SuggestionID   string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"suggestion_id"`
	GameID         string    `gorm:"type:uuid;not null;uniqueIndex"                 json:"game_id"`
	SubmittedBy    string    `gorm:"type:uuid;not null"                             json:"submitted_by"`
	SubmittedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"submitted_at"`
	ModeratorNotes string    `gorm:"type:text;not null;default:''"                  json:"moderator_notes,omitempty"`
	Status         string    `gorm:"type:varchar(20);not null;default:'pending'"    json:"status"`

	Game *Game `gorm:"foreignKey:GameID;references:GameID" json:"game,omitempty"`
}

// TableName maps the model to its table.
func (Suggestion) TableName() string { return "suggestions" }
