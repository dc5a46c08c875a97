package dto

// ── catalog DTOs ──

// GameListRequest carries the optional, independently-toggleable filter
// criteria. Absent criteria are not applied. The page number is parsed
// separately by the handler so malformed input degrades to page 1.
type GameListRequest struct {
	Search      string   `form:"search"`
	Focus       []string `form:"focus"`
	PlayerCount string   `form:"player_count"`
	Duration    string   `form:"duration"`
	Materials   []string `form:"materials"`
	Labels      []string `form:"labels"`
	Languages   []string `form:"languages"`
}

// HasFilters reports whether any criterion is supplied.
func (r *GameListRequest) HasFilters() bool {
	return r.Search != "" || len(r.Focus) > 0 || r.PlayerCount != "" ||
		r.Duration != "" || len(r.Materials) > 0 || len(r.Labels) > 0 || len(r.Languages) > 0
}

// GameResponse is the public view of a catalog game.
type GameResponse struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Description     string             `json:"description"`
	PlayerCount     string             `json:"player_count"`
	Duration        string             `json:"duration"`
	DurationMinutes int                `json:"duration_minutes"`
	Variants        string             `json:"variants,omitempty"`
	Focuses         []TagResponse      `json:"focuses"`
	Materials       []TagResponse      `json:"materials"`
	Labels          []LabelResponse    `json:"labels"`
	Languages       []LanguageResponse `json:"languages"`
	CreatedAt       string             `json:"created_at"`
}

// TagResponse is a named tag (focus or material).
type TagResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// LabelResponse is a label tag with its color swatch.
type LabelResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// LanguageResponse is a supported language.
type LanguageResponse struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// FacetsResponse lists the filter options shown next to catalog results.
type FacetsResponse struct {
	Focuses      []TagResponse      `json:"focuses"`
	Materials    []TagResponse      `json:"materials"`
	Labels       []LabelResponse    `json:"labels"`
	Languages    []LanguageResponse `json:"languages"`
	PlayerCounts []string           `json:"player_counts"`
	Durations    []string           `json:"durations"`
}

// GameListResponse is the catalog listing payload: one page of games plus
// the facet option lists.
type GameListResponse struct {
	Games  []GameResponse `json:"games"`
	Facets FacetsResponse `json:"facets"`
}
