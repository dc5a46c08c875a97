package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/monsdar/MiniGameArchive/config"
	"github.com/monsdar/MiniGameArchive/internal/repository"
	"github.com/monsdar/MiniGameArchive/pkg/jwt"
)

// VisitorStore is the per-visitor session state: the ordered cart id list
// and the language preference. Backed by Redis in production; cart logic
// stays store-agnostic so it can be unit-tested without a server.
type VisitorStore interface {
	GetCart(ctx context.Context, visitorID string) ([]string, error)
	SaveCart(ctx context.Context, visitorID string, ids []string, ttl time.Duration) error
	GetLanguage(ctx context.Context, visitorID string) (string, error)
	SetLanguage(ctx context.Context, visitorID, code string, ttl time.Duration) error
}

// TokenBlacklist invalidates issued JWTs before their natural expiry.
type TokenBlacklist interface {
	BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
}

// Service aggregates all business services.
type Service struct {
	Auth       AuthService
	Catalog    CatalogService
	Cart       CartService
	Session    SessionService
	Suggestion SuggestionService
	Content    ContentService
	Preference PreferenceService
	Export     ExportService
}

// NewService wires the service layer.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	store VisitorStore,
	blacklist TokenBlacklist,
	jwtMgr *jwt.Manager,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:       NewAuthService(cfg, repo, blacklist, jwtMgr, logger),
		Catalog:    NewCatalogService(cfg, repo, logger),
		Cart:       NewCartService(cfg, repo, store, logger),
		Session:    NewSessionService(repo, logger),
		Suggestion: NewSuggestionService(repo, logger),
		Content:    NewContentService(repo, logger),
		Preference: NewPreferenceService(cfg, repo, store, logger),
		Export:     NewExportService(repo, store, logger),
	}
}
