package model

// TrainingSession is a named, persisted, ordered collection of games
// owned by an account.
type TrainingSession struct {
	SessionID   string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"session_id"`
	Name        string `gorm:"type:varchar(200);not null"                     json:"name"`
	Description string `gorm:"type:text;not null;default:''"                  json:"description,omitempty"`
	CreatedBy   string `gorm:"type:uuid;not null"                             json:"created_by"`

	Entries []SessionEntry `gorm:"foreignKey:SessionID;references:SessionID" json:"entries,omitempty"`

	Timestamps
}

// TableName maps the model to its table.
func (TrainingSession) TableName() string { return "training_sessions" }

// SessionEntry is one game inside a training session. The same game may
// appear twice in a session, but only at distinct positions.
type SessionEntry struct {
	EntryID    string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"          json:"entry_id"`
	SessionID  string  `gorm:"type:uuid;not null;uniqueIndex:uniq_session_game_pos"    json:"session_id"`
	GameID     string  `gorm:"type:uuid;not null;uniqueIndex:uniq_session_game_pos"    json:"game_id"`
	Position   int     `gorm:"not null;uniqueIndex:uniq_session_game_pos"              json:"position"`
	Multiplier float64 `gorm:"not null;default:1.0"                                    json:"multiplier"`
	Notes      string  `gorm:"type:text;not null;default:''"                           json:"notes,omitempty"`

	Game *Game `gorm:"foreignKey:GameID;references:GameID" json:"game,omitempty"`
}

// TableName maps the model to its table.
func (SessionEntry) TableName() string { return "session_entries" }

// Multiplier bounds for session entries.
const (
	MinMultiplier = 0.5
	MaxMultiplier = 3.0
)
