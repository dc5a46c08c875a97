package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/monsdar/MiniGameArchive/internal/model"
)

// SuggestionRepository is the moderation-queue data access interface.
type SuggestionRepository interface {
	// CreateWithGame persists the game and its suggestion record in one
	// transaction; nothing is written if either insert fails.
	CreateWithGame(ctx context.Context, game *model.Game, suggestion *model.Suggestion) error
	GetByID(ctx context.Context, id string) (*model.Suggestion, error)
	List(ctx context.Context, status string) ([]model.Suggestion, error)
	// Resolve stores the suggestion's new status and the linked game's
	// visibility flags atomically.
	Resolve(ctx context.Context, suggestion *model.Suggestion, game *model.Game) error
}

type suggestionRepo struct {
	db *gorm.DB
}

// NewSuggestionRepo creates a SuggestionRepository instance.
func NewSuggestionRepo(db *gorm.DB) SuggestionRepository {
	return &suggestionRepo{db: db}
}

func (r *suggestionRepo) CreateWithGame(ctx context.Context, game *model.Game, suggestion *model.Suggestion) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(game).Error; err != nil {
			return err
		}
		suggestion.GameID = game.GameID
		return tx.Create(suggestion).Error
	})
}

func (r *suggestionRepo) GetByID(ctx context.Context, id string) (*model.Suggestion, error) {
	var suggestion model.Suggestion
	err := r.db.WithContext(ctx).
		Preload("Game").
		Preload("Game.Focuses").
		Preload("Game.Materials").
		Preload("Game.Labels").
		Preload("Game.Languages").
		Where("suggestion_id = ?", id).
		First(&suggestion).Error
	if err != nil {
		return nil, err
	}
	return &suggestion, nil
}

func (r *suggestionRepo) List(ctx context.Context, status string) ([]model.Suggestion, error) {
	db := r.db.WithContext(ctx).
		Preload("Game").
		Order("submitted_at DESC")

	if status != "" {
		db = db.Where("status = ?", status)
	}

	var suggestions []model.Suggestion
	err := db.Find(&suggestions).Error
	return suggestions, err
}

func (r *suggestionRepo) Resolve(ctx context.Context, suggestion *model.Suggestion, game *model.Game) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&model.Suggestion{}).
			Where("suggestion_id = ?", suggestion.SuggestionID).
			Updates(map[string]interface{}{
				"status":          suggestion.Status,
				"moderator_notes": suggestion.ModeratorNotes,
			}).Error
		if err != nil {
			return err
		}
		return tx.Model(&model.Game{}).
			Where("game_id = ?", game.GameID).
			Updates(map[string]interface{}{
				"is_suggestion": game.IsSuggestion,
				"approved":      game.Approved,
				"updated_at":    gorm.Expr("NOW()"),
			}).Error
	})
}
