package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/monsdar/MiniGameArchive/config"
	"github.com/monsdar/MiniGameArchive/internal/dto"
	"github.com/monsdar/MiniGameArchive/internal/model"
	"github.com/monsdar/MiniGameArchive/internal/repository"
	"github.com/monsdar/MiniGameArchive/pkg/apperrors"
)

// ── cart errors ──

var ErrCartEmpty = errors.New("cart is empty")

// CartService manages the per-visitor cart and its materialization into a
// persisted training session. Cart state is read-modify-written against
// the visitor store per request; a browser session is effectively
// single-writer, so no cross-request locking is needed.
type CartService interface {
	Add(ctx context.Context, visitorID, gameID string) (int, error)
	Remove(ctx context.Context, visitorID, gameID string) (int, error)
	Clear(ctx context.Context, visitorID string) error
	View(ctx context.Context, visitorID string) (*dto.CartResponse, error)
	// Materialize turns the cart into a training session owned by
	// ownerID and clears the cart on success. Stale game ids are skipped
	// rather than aborting the operation.
	Materialize(ctx context.Context, visitorID, ownerID string, req *dto.MaterializeCartRequest) (string, error)
}

type cartService struct {
	repo   *repository.Repository
	store  VisitorStore
	ttl    time.Duration
	logger *zap.Logger
}

// NewCartService creates a CartService instance.
func NewCartService(cfg *config.Config, repo *repository.Repository, store VisitorStore, logger *zap.Logger) CartService {
	return &cartService{repo: repo, store: store, ttl: cfg.Catalog.CartTTL, logger: logger}
}

func (s *cartService) Add(ctx context.Context, visitorID, gameID string) (int, error) {
	if _, err := s.repo.Game.GetVisibleByID(ctx, gameID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrGameNotFound
		}
		s.logger.Error("loading game for cart add failed", zap.String("game_id", gameID), zap.Error(err))
		return 0, err
	}

	cart, err := s.loadCart(ctx, visitorID)
	if err != nil {
		return 0, err
	}

	size := cart.Add(gameID)
	if err := s.store.SaveCart(ctx, visitorID, cart.GameIDs, s.ttl); err != nil {
		s.logger.Error("saving cart failed", zap.String("visitor_id", visitorID), zap.Error(err))
		return 0, err
	}

	s.logger.Debug("game added to cart",
		zap.String("game_id", gameID),
		zap.Int("cart_count", size),
	)
	return size, nil
}

func (s *cartService) Remove(ctx context.Context, visitorID, gameID string) (int, error) {
	cart, err := s.loadCart(ctx, visitorID)
	if err != nil {
		return 0, err
	}

	size := cart.Remove(gameID)
	if err := s.store.SaveCart(ctx, visitorID, cart.GameIDs, s.ttl); err != nil {
		s.logger.Error("saving cart failed", zap.String("visitor_id", visitorID), zap.Error(err))
		return 0, err
	}

	return size, nil
}

func (s *cartService) Clear(ctx context.Context, visitorID string) error {
	if err := s.store.SaveCart(ctx, visitorID, nil, s.ttl); err != nil {
		s.logger.Error("clearing cart failed", zap.String("visitor_id", visitorID), zap.Error(err))
		return err
	}
	return nil
}

func (s *cartService) View(ctx context.Context, visitorID string) (*dto.CartResponse, error) {
	cart, err := s.loadCart(ctx, visitorID)
	if err != nil {
		return nil, err
	}

	games, err := s.gamesInCartOrder(ctx, cart)
	if err != nil {
		return nil, err
	}

	resp := &dto.CartResponse{
		Games:        make([]dto.GameResponse, 0, len(games)),
		CartCount:    cart.Size(),
		TotalMinutes: model.PlanTotalMinutes(model.PlanFromGames(games)),
	}
	for _, g := range games {
		resp.Games = append(resp.Games, *toGameResponse(g))
	}
	return resp, nil
}

func (s *cartService) Materialize(ctx context.Context, visitorID, ownerID string, req *dto.MaterializeCartRequest) (string, error) {
	if ownerID == "" {
		return "", apperrors.NewValidation("owner", "materializing a cart requires an authenticated account")
	}
	if strings.TrimSpace(req.Name) == "" {
		return "", apperrors.NewValidation("name", "name must not be empty")
	}

	cart, err := s.loadCart(ctx, visitorID)
	if err != nil {
		return "", err
	}
	if cart.Size() == 0 {
		return "", ErrCartEmpty
	}

	// Stale ids (games deleted since they were added) are dropped here:
	// the session is created from whatever still exists, in cart order.
	games, err := s.gamesInCartOrder(ctx, cart)
	if err != nil {
		return "", err
	}
	if skipped := cart.Size() - len(games); skipped > 0 {
		s.logger.Warn("skipping stale cart entries during materialization",
			zap.String("visitor_id", visitorID),
			zap.Int("skipped", skipped),
		)
	}

	session := &model.TrainingSession{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		CreatedBy:   ownerID,
	}

	entries := make([]model.SessionEntry, 0, len(games))
	for i, g := range games {
		entries = append(entries, model.SessionEntry{
			GameID:     g.GameID,
			Position:   i + 1,
			Multiplier: 1.0,
		})
	}

	if err := s.repo.Session.CreateWithEntries(ctx, session, entries); err != nil {
		s.logger.Error("materializing cart failed", zap.String("owner_id", ownerID), zap.Error(err))
		return "", err
	}

	if err := s.store.SaveCart(ctx, visitorID, nil, s.ttl); err != nil {
		// The session exists; a cart that failed to clear is an
		// inconsistency worth logging but not a failed materialization.
		s.logger.Warn("clearing cart after materialization failed",
			zap.String("visitor_id", visitorID), zap.Error(err))
	}

	s.logger.Info("cart materialized into training session",
		zap.String("session_id", session.SessionID),
		zap.Int("entries", len(entries)),
	)
	return session.SessionID, nil
}

// ── helpers ──

func (s *cartService) loadCart(ctx context.Context, visitorID string) (model.Cart, error) {
	ids, err := s.store.GetCart(ctx, visitorID)
	if err != nil {
		s.logger.Error("loading cart failed", zap.String("visitor_id", visitorID), zap.Error(err))
		return model.Cart{}, err
	}
	return model.NewCart(ids), nil
}

// gamesInCartOrder fetches the cart's games and restores cart order. Ids
// that no longer resolve to a visible game are silently dropped.
func (s *cartService) gamesInCartOrder(ctx context.Context, cart model.Cart) ([]*model.Game, error) {
	games, err := s.repo.Game.ListVisibleByIDs(ctx, cart.GameIDs)
	if err != nil {
		s.logger.Error("loading cart games failed", zap.Error(err))
		return nil, err
	}

	byID := make(map[string]*model.Game, len(games))
	for i := range games {
		byID[games[i].GameID] = &games[i]
	}

	ordered := make([]*model.Game, 0, len(games))
	for _, id := range cart.GameIDs {
		if g, ok := byID[id]; ok {
			ordered = append(ordered, g)
		}
	}
	return ordered, nil
}
