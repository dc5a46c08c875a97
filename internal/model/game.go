package model

import (
	"strconv"
	"strings"
)

// DurationChoices are the categorical duration labels a game can carry.
// Labels ending in "+min" denote an open-ended lower bound.
var DurationChoices = []string{
	"5min", "10min", "15min", "20min", "30min", "45min", "60min", "90min", "120min",
	"10+min", "15+min", "20+min", "30+min",
}

// PlayerCountChoices are the categorical player-count labels.
var PlayerCountChoices = []string{
	"1-2", "3-4", "5-6", "7-8", "9-10", "11-12", "13+", "any",
}

// IsValidDuration reports whether label is a known duration choice.
func IsValidDuration(label string) bool {
	for _, d := range DurationChoices {
		if d == label {
			return true
		}
	}
	return false
}

// IsValidPlayerCount reports whether label is a known player-count choice.
func IsValidPlayerCount(label string) bool {
	for _, p := range PlayerCountChoices {
		if p == label {
			return true
		}
	}
	return false
}

// DurationMinutes maps a duration label to its minute value. Open-ended
// labels ("10+min") map to their stated minimum. Unknown labels map to 0.
func DurationMinutes(label string) int {
	s := strings.TrimSuffix(label, "min")
	s = strings.TrimSuffix(s, "+")
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Game is a single drill or exercise in the catalog.
type Game struct {
	GameID      string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"game_id"`
	Name        string `gorm:"type:varchar(200);not null"                     json:"name"`
	Description string `gorm:"type:text;not null"                             json:"description"`
	PlayerCount string `gorm:"type:varchar(10);not null"                      json:"player_count"`
	Variants    string `gorm:"type:text;not null;default:''"                  json:"variants,omitempty"`
	Duration    string `gorm:"type:varchar(10);not null"                      json:"duration"`

	IsActive     bool    `gorm:"not null;default:true"  json:"is_active"`
	IsSuggestion bool    `gorm:"not null;default:false" json:"is_suggestion"`
	Approved     bool    `gorm:"not null;default:false" json:"approved"`
	CreatedBy    *string `gorm:"type:uuid"              json:"created_by,omitempty"`
	SuggestedBy  *string `gorm:"type:uuid"              json:"suggested_by,omitempty"`

	Focuses   []Focus    `gorm:"many2many:game_focuses"   json:"focuses,omitempty"`
	Materials []Material `gorm:"many2many:game_materials" json:"materials,omitempty"`
	Labels    []Label    `gorm:"many2many:game_labels"    json:"labels,omitempty"`
	Languages []Language `gorm:"many2many:game_languages" json:"languages,omitempty"`

	Timestamps
}

// TableName maps the model to its table.
func (Game) TableName() string { return "games" }

// IsPubliclyVisible reports whether the game may appear in public catalog
// listings. A pending suggestion must never show up.
func (g *Game) IsPubliclyVisible() bool {
	return g.IsActive && !(g.IsSuggestion && !g.Approved)
}

// BaseMinutes is the game's duration label mapped to minutes.
func (g *Game) BaseMinutes() int {
	return DurationMinutes(g.Duration)
}
