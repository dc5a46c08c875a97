package dto

// ── content block DTOs ──

// ContentBlockResponse is the public view of a block: the markdown body
// already rendered to sanitized HTML.
type ContentBlockResponse struct {
	ID           string `json:"id"`
	Kind         string `json:"kind"`
	Title        string `json:"title"`
	HTML         string `json:"html"`
	DisplayOrder int    `json:"display_order"`
}

// AdminContentBlockResponse is the admin view: raw markdown included.
type AdminContentBlockResponse struct {
	ID           string `json:"id"`
	Kind         string `json:"kind"`
	Title        string `json:"title"`
	Body         string `json:"body"`
	IsActive     bool   `json:"is_active"`
	DisplayOrder int    `json:"display_order"`
	UpdatedAt    string `json:"updated_at"`
}

// CreateContentBlockRequest creates a block on one of the fixed surfaces.
type CreateContentBlockRequest struct {
	Kind         string `json:"kind"          binding:"required,oneof=about impressum"`
	Title        string `json:"title"         binding:"required,max=200"`
	Body         string `json:"body"          binding:"omitempty"`
	IsActive     *bool  `json:"is_active"`
	DisplayOrder int    `json:"display_order" binding:"omitempty,min=0"`
}

// UpdateContentBlockRequest updates a block; absent fields are untouched.
type UpdateContentBlockRequest struct {
	Title        *string `json:"title"         binding:"omitempty,min=1,max=200"`
	Body         *string `json:"body"`
	IsActive     *bool   `json:"is_active"`
	DisplayOrder *int    `json:"display_order" binding:"omitempty,min=0"`
}

// ── language preference DTOs ──

// SetLanguageRequest selects the visitor's UI language.
type SetLanguageRequest struct {
	Code string `json:"code" binding:"required,max=10"`
}

// LanguagePreferenceResponse is the visitor's effective language.
type LanguagePreferenceResponse struct {
	Code string `json:"code"`
}
