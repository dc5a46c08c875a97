package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/monsdar/MiniGameArchive/internal/dto"
	"github.com/monsdar/MiniGameArchive/internal/model"
	"github.com/monsdar/MiniGameArchive/internal/repository"
	"github.com/monsdar/MiniGameArchive/pkg/apperrors"
)

// ── suggestion errors ──

var (
	ErrSuggestionNotFound = errors.New("suggestion not found")
	ErrSuggestionResolved = errors.New("suggestion already resolved")
)

// SuggestionService handles user-submitted games and their moderation.
// Submission creates the game hidden (pending suggestion); moderation is
// administrative only.
type SuggestionService interface {
	Submit(ctx context.Context, req *dto.SubmitSuggestionRequest, submitterID string) (*dto.SuggestionResponse, error)
	List(ctx context.Context, status string) ([]dto.SuggestionResponse, error)
	Get(ctx context.Context, id string) (*dto.SuggestionResponse, error)
	// Review resolves a pending suggestion. Approving flips the linked
	// game's visibility flags; rejecting leaves the game hidden.
	Review(ctx context.Context, id string, req *dto.ReviewSuggestionRequest) (*dto.SuggestionResponse, error)
}

type suggestionService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSuggestionService creates a SuggestionService instance.
func NewSuggestionService(repo *repository.Repository, logger *zap.Logger) SuggestionService {
	return &suggestionService{repo: repo, logger: logger}
}

func (s *suggestionService) Submit(ctx context.Context, req *dto.SubmitSuggestionRequest, submitterID string) (*dto.SuggestionResponse, error) {
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}

	focuses, err := s.repo.Tag.GetFocusesByIDs(ctx, req.FocusIDs)
	if err != nil {
		return nil, err
	}
	materials, err := s.repo.Tag.GetMaterialsByIDs(ctx, req.MaterialIDs)
	if err != nil {
		return nil, err
	}
	labels, err := s.repo.Tag.GetLabelsByIDs(ctx, req.LabelIDs)
	if err != nil {
		return nil, err
	}

	game := &model.Game{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		PlayerCount: req.PlayerCount,
		Duration:    req.Duration,
		Variants:    req.Variants,
		Focuses:     focuses,
		Materials:   materials,
		Labels:      labels,
		IsActive:    true,
		// Suggestion flags are forced, never caller-controlled.
		IsSuggestion: true,
		Approved:     false,
		SuggestedBy:  &submitterID,
	}

	if len(req.LanguageIDs) > 0 {
		languages, err := s.languagesByIDs(ctx, req.LanguageIDs)
		if err != nil {
			return nil, err
		}
		game.Languages = languages
	}

	suggestion := &model.Suggestion{
		SubmittedBy: submitterID,
		Status:      model.SuggestionPending,
	}

	if err := s.repo.Suggestion.CreateWithGame(ctx, game, suggestion); err != nil {
		s.logger.Error("creating suggestion failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("game suggestion submitted",
		zap.String("suggestion_id", suggestion.SuggestionID),
		zap.String("game", game.Name),
	)

	suggestion.Game = game
	return toSuggestionResponse(suggestion), nil
}

func (s *suggestionService) List(ctx context.Context, status string) ([]dto.SuggestionResponse, error) {
	suggestions, err := s.repo.Suggestion.List(ctx, status)
	if err != nil {
		s.logger.Error("listing suggestions failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.SuggestionResponse, 0, len(suggestions))
	for i := range suggestions {
		result = append(result, *toSuggestionResponse(&suggestions[i]))
	}
	return result, nil
}

func (s *suggestionService) Get(ctx context.Context, id string) (*dto.SuggestionResponse, error) {
	suggestion, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSuggestionResponse(suggestion), nil
}

func (s *suggestionService) Review(ctx context.Context, id string, req *dto.ReviewSuggestionRequest) (*dto.SuggestionResponse, error) {
	suggestion, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if suggestion.Status != model.SuggestionPending {
		return nil, ErrSuggestionResolved
	}
	if suggestion.Game == nil {
		return nil, ErrSuggestionNotFound
	}

	suggestion.Status = req.Status
	suggestion.ModeratorNotes = req.ModeratorNotes

	if req.Status == model.SuggestionApproved {
		suggestion.Game.IsSuggestion = false
		suggestion.Game.Approved = true
	}
	// A rejection leaves the game flags untouched: the visibility
	// invariant keeps the pending flags hiding it from listings.

	if err := s.repo.Suggestion.Resolve(ctx, suggestion, suggestion.Game); err != nil {
		s.logger.Error("resolving suggestion failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("suggestion reviewed",
		zap.String("id", id),
		zap.String("status", req.Status),
	)
	return toSuggestionResponse(suggestion), nil
}

// ── helpers ──

func (s *suggestionService) getByID(ctx context.Context, id string) (*model.Suggestion, error) {
	suggestion, err := s.repo.Suggestion.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSuggestionNotFound
		}
		s.logger.Error("loading suggestion failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return suggestion, nil
}

func (s *suggestionService) validate(ctx context.Context, req *dto.SubmitSuggestionRequest) error {
	var verr *apperrors.ValidationError

	addErr := func(field, msg string) {
		if verr == nil {
			verr = apperrors.NewValidation(field, msg)
		} else {
			verr.Add(field, msg)
		}
	}

	if strings.TrimSpace(req.Name) == "" {
		addErr("name", "name must not be empty")
	}
	if strings.TrimSpace(req.Description) == "" {
		addErr("description", "description must not be empty")
	}
	if !model.IsValidPlayerCount(req.PlayerCount) {
		addErr("player_count", "unknown player count")
	}
	if !model.IsValidDuration(req.Duration) {
		addErr("duration", "unknown duration")
	}

	if verr != nil {
		return verr
	}
	return nil
}

func (s *suggestionService) languagesByIDs(ctx context.Context, ids []string) ([]model.Language, error) {
	all, err := s.repo.Language.List(ctx)
	if err != nil {
		return nil, err
	}
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var languages []model.Language
	for _, l := range all {
		if wanted[l.LanguageID] {
			languages = append(languages, l)
		}
	}
	return languages, nil
}
