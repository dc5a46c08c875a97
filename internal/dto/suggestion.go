package dto

// ── suggestion DTOs ──

// SubmitSuggestionRequest carries the same field set as regular game
// creation. The service forces the suggestion visibility flags.
type SubmitSuggestionRequest struct {
	Name        string   `json:"name"         binding:"required,max=200"`
	Description string   `json:"description"  binding:"required"`
	PlayerCount string   `json:"player_count" binding:"required"`
	Duration    string   `json:"duration"     binding:"required"`
	Variants    string   `json:"variants"     binding:"omitempty"`
	FocusIDs    []string `json:"focus_ids"    binding:"omitempty,dive,uuid"`
	MaterialIDs []string `json:"material_ids" binding:"omitempty,dive,uuid"`
	LabelIDs    []string `json:"label_ids"    binding:"omitempty,dive,uuid"`
	LanguageIDs []string `json:"language_ids" binding:"omitempty,dive,uuid"`
}

// ReviewSuggestionRequest resolves a pending suggestion.
type ReviewSuggestionRequest struct {
	Status         string `json:"status"          binding:"required,oneof=approved rejected"`
	ModeratorNotes string `json:"moderator_notes" binding:"omitempty,max=2000"`
}

// SuggestionListRequest filters the moderation queue.
type SuggestionListRequest struct {
	Status string `form:"status" binding:"omitempty,oneof=pending approved rejected"`
}

// SuggestionResponse is one entry in the moderation queue.
type SuggestionResponse struct {
	ID             string        `json:"id"`
	Status         string        `json:"status"`
	SubmittedBy    string        `json:"submitted_by"`
	SubmittedAt    string        `json:"submitted_at"`
	ModeratorNotes string        `json:"moderator_notes,omitempty"`
	Game           *GameResponse `json:"game,omitempty"`
}
