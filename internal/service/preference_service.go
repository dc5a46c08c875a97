package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/monsdar/MiniGameArchive/config"
	"github.com/monsdar/MiniGameArchive/internal/dto"
	"github.com/monsdar/MiniGameArchive/internal/repository"
)

// PreferenceService manages the visitor's UI language. The preference is
// per visitor, not per account, so coaches and anonymous visitors behave
// the same way.
type PreferenceService interface {
	// SetLanguage stores the preference when code names a known language
	// and silently keeps the current one otherwise.
	SetLanguage(ctx context.Context, visitorID, code string) (*dto.LanguagePreferenceResponse, error)
	GetLanguage(ctx context.Context, visitorID string) (*dto.LanguagePreferenceResponse, error)
}

type preferenceService struct {
	cfg    *config.Config
	repo   *repository.Repository
	store  VisitorStore
	logger *zap.Logger
}

// NewPreferenceService creates a PreferenceService instance.
func NewPreferenceService(cfg *config.Config, repo *repository.Repository, store VisitorStore, logger *zap.Logger) PreferenceService {
	return &preferenceService{cfg: cfg, repo: repo, store: store, logger: logger}
}

func (s *preferenceService) SetLanguage(ctx context.Context, visitorID, code string) (*dto.LanguagePreferenceResponse, error) {
	code = strings.ToLower(strings.TrimSpace(code))

	lang, err := s.repo.Language.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Unsupported codes are ignored, not rejected. The visitor
			// keeps whatever language was effective before.
			s.logger.Debug("ignoring unsupported language code",
				zap.String("code", code))
			return s.GetLanguage(ctx, visitorID)
		}
		s.logger.Error("looking up language failed", zap.String("code", code), zap.Error(err))
		return nil, err
	}

	if err := s.store.SetLanguage(ctx, visitorID, lang.Code, s.cfg.Catalog.CartTTL); err != nil {
		s.logger.Error("storing language preference failed", zap.Error(err))
		return nil, err
	}
	return &dto.LanguagePreferenceResponse{Code: lang.Code}, nil
}

func (s *preferenceService) GetLanguage(ctx context.Context, visitorID string) (*dto.LanguagePreferenceResponse, error) {
	code, err := s.store.GetLanguage(ctx, visitorID)
	if err != nil {
		s.logger.Error("loading language preference failed", zap.Error(err))
		return nil, err
	}
	if code == "" {
		code = s.cfg.Catalog.DefaultLanguage
	}
	return &dto.LanguagePreferenceResponse{Code: code}, nil
}
