package dto

// ── training session DTOs ──

// SessionResponse is a persisted training session with its ordered games.
type SessionResponse struct {
	ID           string                 `json:"id"`
	Name         string                 `json:"name"`
	Description  string                 `json:"description,omitempty"`
	TotalMinutes float64                `json:"total_minutes"`
	Entries      []SessionEntryResponse `json:"entries"`
	CreatedAt    string                 `json:"created_at"`
	UpdatedAt    string                 `json:"updated_at"`
}

// SessionSummaryResponse is the list view of a session (no entries).
type SessionSummaryResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	GameCount    int     `json:"game_count"`
	TotalMinutes float64 `json:"total_minutes"`
	CreatedAt    string  `json:"created_at"`
}

// SessionEntryResponse is one game inside a session.
type SessionEntryResponse struct {
	ID         string        `json:"id"`
	Position   int           `json:"position"`
	Multiplier float64       `json:"multiplier"`
	Notes      string        `json:"notes,omitempty"`
	Game       *GameResponse `json:"game,omitempty"`
}

// UpdateSessionRequest updates a session's name or description.
type UpdateSessionRequest struct {
	Name        *string `json:"name"        binding:"omitempty,min=1,max=200"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
}

// AddSessionEntryRequest appends a game to a session.
type AddSessionEntryRequest struct {
	GameID     string  `json:"game_id"    binding:"required,uuid"`
	Multiplier float64 `json:"multiplier" binding:"omitempty,min=0.5,max=3.0"`
	Notes      string  `json:"notes"      binding:"omitempty,max=2000"`
}

// UpdateSessionEntryRequest adjusts an entry's multiplier, notes or position.
type UpdateSessionEntryRequest struct {
	Position   *int     `json:"position"   binding:"omitempty,min=1"`
	Multiplier *float64 `json:"multiplier" binding:"omitempty,min=0.5,max=3.0"`
	Notes      *string  `json:"notes"      binding:"omitempty,max=2000"`
}
