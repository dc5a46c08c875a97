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

// ── training session errors ──

var (
	ErrSessionNotFound = errors.New("training session not found")
	ErrEntryNotFound   = errors.New("session entry not found")
)

// SessionService manages persisted training sessions. Every operation is
// scoped to the owning account; a session owned by someone else is
// indistinguishable from a missing one.
type SessionService interface {
	ListOwn(ctx context.Context, ownerID string) ([]dto.SessionSummaryResponse, error)
	Get(ctx context.Context, id, ownerID string) (*dto.SessionResponse, error)
	Update(ctx context.Context, id, ownerID string, req *dto.UpdateSessionRequest) (*dto.SessionResponse, error)
	Delete(ctx context.Context, id, ownerID string) error

	AddEntry(ctx context.Context, sessionID, ownerID string, req *dto.AddSessionEntryRequest) (*dto.SessionResponse, error)
	UpdateEntry(ctx context.Context, sessionID, entryID, ownerID string, req *dto.UpdateSessionEntryRequest) (*dto.SessionResponse, error)
	RemoveEntry(ctx context.Context, sessionID, entryID, ownerID string) (*dto.SessionResponse, error)
}

type sessionService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSessionService creates a SessionService instance.
func NewSessionService(repo *repository.Repository, logger *zap.Logger) SessionService {
	return &sessionService{repo: repo, logger: logger}
}

func (s *sessionService) ListOwn(ctx context.Context, ownerID string) ([]dto.SessionSummaryResponse, error) {
	sessions, err := s.repo.Session.ListByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("listing sessions failed", zap.String("owner_id", ownerID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.SessionSummaryResponse, 0, len(sessions))
	for i := range sessions {
		result = append(result, toSessionSummary(&sessions[i]))
	}
	return result, nil
}

func (s *sessionService) Get(ctx context.Context, id, ownerID string) (*dto.SessionResponse, error) {
	session, err := s.getOwned(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	return toSessionResponse(session), nil
}

func (s *sessionService) Update(ctx context.Context, id, ownerID string, req *dto.UpdateSessionRequest) (*dto.SessionResponse, error) {
	session, err := s.getOwned(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, apperrors.NewValidation("name", "name must not be empty")
		}
		session.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		session.Description = *req.Description
	}

	if err := s.repo.Session.Update(ctx, session); err != nil {
		s.logger.Error("updating session failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.Get(ctx, id, ownerID)
}

func (s *sessionService) Delete(ctx context.Context, id, ownerID string) error {
	if _, err := s.getOwned(ctx, id, ownerID); err != nil {
		return err
	}
	if err := s.repo.Session.Delete(ctx, id, ownerID); err != nil {
		s.logger.Error("deleting session failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── entries ──

func (s *sessionService) AddEntry(ctx context.Context, sessionID, ownerID string, req *dto.AddSessionEntryRequest) (*dto.SessionResponse, error) {
	if _, err := s.getOwned(ctx, sessionID, ownerID); err != nil {
		return nil, err
	}
	if _, err := s.repo.Game.GetVisibleByID(ctx, req.GameID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	multiplier := req.Multiplier
	if multiplier == 0 {
		multiplier = 1.0
	}

	maxPos, err := s.repo.Session.MaxPosition(ctx, sessionID)
	if err != nil {
		s.logger.Error("reading max position failed", zap.String("session_id", sessionID), zap.Error(err))
		return nil, err
	}

	entry := &model.SessionEntry{
		SessionID:  sessionID,
		GameID:     req.GameID,
		Position:   maxPos + 1,
		Multiplier: multiplier,
		Notes:      req.Notes,
	}
	if err := s.repo.Session.AddEntry(ctx, entry); err != nil {
		s.logger.Error("adding session entry failed", zap.String("session_id", sessionID), zap.Error(err))
		return nil, err
	}

	return s.Get(ctx, sessionID, ownerID)
}

func (s *sessionService) UpdateEntry(ctx context.Context, sessionID, entryID, ownerID string, req *dto.UpdateSessionEntryRequest) (*dto.SessionResponse, error) {
	if _, err := s.getOwned(ctx, sessionID, ownerID); err != nil {
		return nil, err
	}

	entry, err := s.repo.Session.GetEntry(ctx, entryID, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}

	if req.Position != nil {
		entry.Position = *req.Position
	}
	if req.Multiplier != nil {
		if *req.Multiplier < model.MinMultiplier || *req.Multiplier > model.MaxMultiplier {
			return nil, apperrors.NewValidation("multiplier", "multiplier must be between 0.5 and 3.0")
		}
		entry.Multiplier = *req.Multiplier
	}
	if req.Notes != nil {
		entry.Notes = *req.Notes
	}

	if err := s.repo.Session.UpdateEntry(ctx, entry); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewValidation("position", "this game already occupies that position")
		}
		s.logger.Error("updating session entry failed", zap.String("entry_id", entryID), zap.Error(err))
		return nil, err
	}

	return s.Get(ctx, sessionID, ownerID)
}

func (s *sessionService) RemoveEntry(ctx context.Context, sessionID, entryID, ownerID string) (*dto.SessionResponse, error) {
	if _, err := s.getOwned(ctx, sessionID, ownerID); err != nil {
		return nil, err
	}

	if _, err := s.repo.Session.GetEntry(ctx, entryID, sessionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}

	if err := s.repo.Session.DeleteEntry(ctx, entryID, sessionID); err != nil {
		s.logger.Error("removing session entry failed", zap.String("entry_id", entryID), zap.Error(err))
		return nil, err
	}

	return s.Get(ctx, sessionID, ownerID)
}

// getOwned loads a session scoped to its owner, mapping a missing or
// foreign session to ErrSessionNotFound.
func (s *sessionService) getOwned(ctx context.Context, id, ownerID string) (*model.TrainingSession, error) {
	session, err := s.repo.Session.GetByIDForOwner(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("loading session failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return session, nil
}
