package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/monsdar/MiniGameArchive/internal/dto"
)

func TestPrintableGame(t *testing.T) {
	env := newTestEnv()
	svc := NewExportService(env.repo, env.store, env.logger)
	g := env.visibleGame("Passing Square", "15min")
	g.Description = "Pass the ball **quickly**."

	body, filename, err := svc.PrintableGame(context.Background(), g.GameID)
	if err != nil {
		t.Fatalf("PrintableGame: %v", err)
	}
	if filename != "passing-square.html" {
		t.Errorf("filename = %q", filename)
	}
	html := string(body)
	if !strings.Contains(html, "Passing Square") {
		t.Error("game name missing from document")
	}
	if !strings.Contains(html, "<strong>quickly</strong>") {
		t.Error("description markdown not rendered")
	}
}

func TestPrintableGameNotFound(t *testing.T) {
	env := newTestEnv()
	svc := NewExportService(env.repo, env.store, env.logger)

	if _, _, err := svc.PrintableGame(context.Background(), "00000000-0000-0000-0000-000000000000"); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("err = %v, want ErrGameNotFound", err)
	}
}

func TestPrintableSessionTotals(t *testing.T) {
	env := newTestEnv()
	svc := NewExportService(env.repo, env.store, env.logger)
	id := seedSession(t, env, "owner-1",
		env.visibleGame("First", "5min"),
		env.visibleGame("Second", "10min"),
	)

	body, _, err := svc.PrintableSession(context.Background(), id, "owner-1")
	if err != nil {
		t.Fatalf("PrintableSession: %v", err)
	}
	html := string(body)
	if !strings.Contains(html, "Total: 15 min") {
		t.Errorf("total missing from document:\n%s", html)
	}

	if _, _, err := svc.PrintableSession(context.Background(), id, "owner-2"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("foreign session: err = %v, want ErrSessionNotFound", err)
	}
}

func TestPrintableCartEmpty(t *testing.T) {
	env := newTestEnv()
	svc := NewExportService(env.repo, env.store, env.logger)

	if _, _, err := svc.PrintableCart(context.Background(), "v1"); !errors.Is(err, ErrCartEmpty) {
		t.Errorf("empty cart: err = %v, want ErrCartEmpty", err)
	}
}

func TestPrintableCartPreview(t *testing.T) {
	env := newTestEnv()
	cart := NewCartService(env.cfg, env.repo, env.store, env.logger)
	svc := NewExportService(env.repo, env.store, env.logger)

	g1 := env.visibleGame("Z Drill", "5min")
	g2 := env.visibleGame("A Drill", "10min")
	for _, id := range []string{g1.GameID, g2.GameID} {
		if _, err := cart.Add(context.Background(), "v1", id); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	body, filename, err := svc.PrintableCart(context.Background(), "v1")
	if err != nil {
		t.Fatalf("PrintableCart: %v", err)
	}
	if filename != "session-preview.html" {
		t.Errorf("filename = %q", filename)
	}
	html := string(body)
	// Cart order, not name order.
	if strings.Index(html, "Z Drill") > strings.Index(html, "A Drill") {
		t.Error("cart order not preserved in preview")
	}
}

func TestCatalogWorkbook(t *testing.T) {
	env := newTestEnv()
	svc := NewExportService(env.repo, env.store, env.logger)
	env.visibleGame("Alpha Drill", "5min")
	env.visibleGame("Beta Drill", "10min")

	data, err := svc.CatalogWorkbook(context.Background())
	if err != nil {
		t.Fatalf("CatalogWorkbook: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Catalog")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2 games", len(rows))
	}
	if rows[0][0] != "Name" {
		t.Errorf("header = %q, want Name", rows[0][0])
	}
	if rows[1][0] != "Alpha Drill" {
		t.Errorf("first row = %q, want Alpha Drill", rows[1][0])
	}
}

func TestCatalogWorkbookExcludesHiddenGames(t *testing.T) {
	env := newTestEnv()
	svc := NewExportService(env.repo, env.store, env.logger)
	sugg := NewSuggestionService(env.repo, env.logger)

	env.visibleGame("Visible Drill", "5min")
	if _, err := sugg.Submit(context.Background(), &dto.SubmitSuggestionRequest{
		Name:        "Hidden Drill",
		Description: "d",
		PlayerCount: "any",
		Duration:    "5min",
	}, "coach-1"); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	data, err := svc.CatalogWorkbook(context.Background())
	if err != nil {
		t.Fatalf("CatalogWorkbook: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows("Catalog")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 2 {
		t.Errorf("rows = %d, want header + 1 visible game", len(rows))
	}
}
