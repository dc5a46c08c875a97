package service

import (
	"context"
	"errors"
	"testing"

	"github.com/monsdar/MiniGameArchive/internal/dto"
	"github.com/monsdar/MiniGameArchive/pkg/apperrors"
)

func TestCartAddIsIdempotent(t *testing.T) {
	env := newTestEnv()
	svc := NewCartService(env.cfg, env.repo, env.store, env.logger)
	g := env.visibleGame("Dribbling", "10min")

	size, err := svc.Add(context.Background(), "v1", g.GameID)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if size != 1 {
		t.Fatalf("size = %d, want 1", size)
	}

	size, err = svc.Add(context.Background(), "v1", g.GameID)
	if err != nil {
		t.Fatalf("second Add: %v", err)
	}
	if size != 1 {
		t.Errorf("size after duplicate add = %d, want 1", size)
	}
}

func TestCartAddUnknownGame(t *testing.T) {
	env := newTestEnv()
	svc := NewCartService(env.cfg, env.repo, env.store, env.logger)

	if _, err := svc.Add(context.Background(), "v1", "00000000-0000-0000-0000-000000000000"); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("Add unknown game: err = %v, want ErrGameNotFound", err)
	}
}

func TestCartRemoveMissingIsNoOp(t *testing.T) {
	env := newTestEnv()
	svc := NewCartService(env.cfg, env.repo, env.store, env.logger)
	g := env.visibleGame("Dribbling", "10min")

	if _, err := svc.Add(context.Background(), "v1", g.GameID); err != nil {
		t.Fatalf("Add: %v", err)
	}

	size, err := svc.Remove(context.Background(), "v1", "00000000-0000-0000-0000-000000000000")
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if size != 1 {
		t.Errorf("size = %d, want 1 (remove of absent id must not change the cart)", size)
	}
}

func TestCartViewPreservesInsertionOrder(t *testing.T) {
	env := newTestEnv()
	svc := NewCartService(env.cfg, env.repo, env.store, env.logger)

	// Names sort differently than insertion order on purpose.
	c := env.visibleGame("C Drill", "5min")
	a := env.visibleGame("A Drill", "10min")
	b := env.visibleGame("B Drill", "15min")

	for _, g := range []string{c.GameID, a.GameID, b.GameID} {
		if _, err := svc.Add(context.Background(), "v1", g); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	view, err := svc.View(context.Background(), "v1")
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if view.CartCount != 3 {
		t.Fatalf("CartCount = %d, want 3", view.CartCount)
	}
	wantOrder := []string{"C Drill", "A Drill", "B Drill"}
	for i, want := range wantOrder {
		if view.Games[i].Name != want {
			t.Errorf("position %d = %q, want %q", i, view.Games[i].Name, want)
		}
	}
	if view.TotalMinutes != 30 {
		t.Errorf("TotalMinutes = %v, want 30", view.TotalMinutes)
	}
}

func TestCartMaterializePositionsAndClear(t *testing.T) {
	env := newTestEnv()
	svc := NewCartService(env.cfg, env.repo, env.store, env.logger)
	sessions := NewSessionService(env.repo, env.logger)

	g1 := env.visibleGame("First", "5min")
	g2 := env.visibleGame("Second", "10min")
	g3 := env.visibleGame("Third", "15min")
	for _, id := range []string{g1.GameID, g2.GameID, g3.GameID} {
		if _, err := svc.Add(context.Background(), "v1", id); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	sessionID, err := svc.Materialize(context.Background(), "v1", "owner-1",
		&dto.MaterializeCartRequest{Name: "Tuesday Practice"})
	if err != nil {
		t.Fatalf("Materialize: %v", err)
	}

	session, err := sessions.Get(context.Background(), sessionID, "owner-1")
	if err != nil {
		t.Fatalf("Get session: %v", err)
	}
	if len(session.Entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(session.Entries))
	}
	for i, e := range session.Entries {
		if e.Position != i+1 {
			t.Errorf("entry %d position = %d, want %d", i, e.Position, i+1)
		}
		if e.Multiplier != 1.0 {
			t.Errorf("entry %d multiplier = %v, want 1.0", i, e.Multiplier)
		}
	}
	if session.Entries[0].Game.Name != "First" {
		t.Errorf("first entry = %q, want cart order preserved", session.Entries[0].Game.Name)
	}
	if session.TotalMinutes != 30 {
		t.Errorf("TotalMinutes = %v, want 30", session.TotalMinutes)
	}

	view, err := svc.View(context.Background(), "v1")
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if view.CartCount != 0 {
		t.Errorf("cart not cleared after materialization, count = %d", view.CartCount)
	}
}

func TestCartMaterializeSkipsStaleGames(t *testing.T) {
	env := newTestEnv()
	svc := NewCartService(env.cfg, env.repo, env.store, env.logger)
	sessions := NewSessionService(env.repo, env.logger)

	g1 := env.visibleGame("Keep", "5min")
	g2 := env.visibleGame("Doomed", "10min")
	for _, id := range []string{g1.GameID, g2.GameID} {
		if _, err := svc.Add(context.Background(), "v1", id); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	// The game disappears between add and checkout.
	delete(env.gameRepo.games, g2.GameID)

	sessionID, err := svc.Materialize(context.Background(), "v1", "owner-1",
		&dto.MaterializeCartRequest{Name: "Practice"})
	if err != nil {
		t.Fatalf("Materialize: %v", err)
	}

	session, err := sessions.Get(context.Background(), sessionID, "owner-1")
	if err != nil {
		t.Fatalf("Get session: %v", err)
	}
	if len(session.Entries) != 1 {
		t.Fatalf("entries = %d, want 1 (stale id skipped)", len(session.Entries))
	}
	if session.Entries[0].Game.Name != "Keep" {
		t.Errorf("surviving entry = %q, want Keep", session.Entries[0].Game.Name)
	}
}

func TestCartMaterializeValidation(t *testing.T) {
	env := newTestEnv()
	svc := NewCartService(env.cfg, env.repo, env.store, env.logger)

	var verr *apperrors.ValidationError

	_, err := svc.Materialize(context.Background(), "v1", "",
		&dto.MaterializeCartRequest{Name: "Practice"})
	if !errors.As(err, &verr) {
		t.Errorf("materialize without account: err = %v, want ValidationError", err)
	}

	_, err = svc.Materialize(context.Background(), "v1", "owner-1",
		&dto.MaterializeCartRequest{Name: "   "})
	if !errors.As(err, &verr) {
		t.Errorf("materialize with blank name: err = %v, want ValidationError", err)
	}
}

func TestCartMaterializeEmptyCartRejected(t *testing.T) {
	env := newTestEnv()
	svc := NewCartService(env.cfg, env.repo, env.store, env.logger)

	_, err := svc.Materialize(context.Background(), "v1", "owner-1",
		&dto.MaterializeCartRequest{Name: "Practice"})
	if !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("materialize empty cart: err = %v, want ErrCartEmpty", err)
	}
	if len(env.sessRepo.sessions) != 0 {
		t.Errorf("empty-cart materialization persisted %d sessions", len(env.sessRepo.sessions))
	}
}
