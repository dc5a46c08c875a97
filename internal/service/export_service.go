package service

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/monsdar/MiniGameArchive/internal/model"
	"github.com/monsdar/MiniGameArchive/internal/repository"
	"github.com/monsdar/MiniGameArchive/pkg/markdown"
)

// ExportService produces downloadable artifacts: standalone printable HTML
// documents for games, sessions and the cart preview, and the admin
// catalog workbook.
type ExportService interface {
	PrintableGame(ctx context.Context, gameID string) ([]byte, string, error)
	PrintableSession(ctx context.Context, sessionID, ownerID string) ([]byte, string, error)
	PrintableCart(ctx context.Context, visitorID string) ([]byte, string, error)
	CatalogWorkbook(ctx context.Context) ([]byte, error)
}

type exportService struct {
	repo   *repository.Repository
	store  VisitorStore
	logger *zap.Logger
}

// NewExportService creates an ExportService instance.
func NewExportService(repo *repository.Repository, store VisitorStore, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, store: store, logger: logger}
}

// ── printable HTML ──

type printableGame struct {
	Name        string
	PlayerCount string
	Duration    string
	Description template.HTML
	Variants    template.HTML
	Focuses     []string
	Materials   []string
	Labels      []string
}

type printablePlanItem struct {
	Position   int
	Multiplier float64
	Notes      string
	Minutes    float64
	Game       printableGame
}

type printableDoc struct {
	Title        string
	Subtitle     string
	GeneratedAt  string
	Items        []printablePlanItem
	TotalMinutes float64
}

var printableTmpl = template.Must(template.New("printable").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2em; color: #222; }
h1 { border-bottom: 2px solid #222; padding-bottom: .2em; }
h2 { margin-bottom: .2em; }
.meta { color: #666; font-size: .9em; }
.item { page-break-inside: avoid; margin-bottom: 2em; }
.tags { font-size: .9em; color: #444; }
.total { font-size: 1.2em; font-weight: bold; margin-top: 1em; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{if .Subtitle}}<p>{{.Subtitle}}</p>{{end}}
<p class="meta">{{.GeneratedAt}}</p>
{{range .Items}}
<div class="item">
<h2>{{.Position}}. {{.Game.Name}}</h2>
<p class="meta">{{.Game.PlayerCount}} players &middot; {{.Game.Duration}}{{if ne .Multiplier 1.0}} &times; {{.Multiplier}}{{end}} &rarr; {{.Minutes}} min</p>
{{.Game.Description}}
{{if .Game.Variants}}<h3>Variants</h3>{{.Game.Variants}}{{end}}
{{if .Notes}}<p><em>{{.Notes}}</em></p>{{end}}
<p class="tags">
{{if .Game.Focuses}}Focus: {{range $i, $f := .Game.Focuses}}{{if $i}}, {{end}}{{$f}}{{end}}<br>{{end}}
{{if .Game.Materials}}Materials: {{range $i, $m := .Game.Materials}}{{if $i}}, {{end}}{{$m}}{{end}}<br>{{end}}
{{if .Game.Labels}}Labels: {{range $i, $l := .Game.Labels}}{{if $i}}, {{end}}{{$l}}{{end}}{{end}}
</p>
</div>
{{end}}
{{if gt (len .Items) 1}}<p class="total">Total: {{.TotalMinutes}} min</p>{{end}}
</body>
</html>
`))

func (s *exportService) PrintableGame(ctx context.Context, gameID string) ([]byte, string, error) {
	game, err := s.repo.Game.GetVisibleByID(ctx, gameID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrGameNotFound
		}
		s.logger.Error("loading game for print failed", zap.String("id", gameID), zap.Error(err))
		return nil, "", err
	}

	doc := printableDoc{
		Title:       game.Name,
		GeneratedAt: time.Now().Format("2006-01-02 15:04"),
		Items:       toPrintableItems(model.PlanFromGames([]*model.Game{game})),
	}
	doc.TotalMinutes = float64(game.BaseMinutes())

	body, err := s.render(doc)
	if err != nil {
		return nil, "", err
	}
	return body, exportFilename(game.Name) + ".html", nil
}

func (s *exportService) PrintableSession(ctx context.Context, sessionID, ownerID string) ([]byte, string, error) {
	session, err := s.repo.Session.GetByIDForOwner(ctx, sessionID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrSessionNotFound
		}
		s.logger.Error("loading session for print failed", zap.String("id", sessionID), zap.Error(err))
		return nil, "", err
	}

	items := model.PlanFromEntries(session.Entries)
	doc := printableDoc{
		Title:        session.Name,
		Subtitle:     session.Description,
		GeneratedAt:  time.Now().Format("2006-01-02 15:04"),
		Items:        toPrintableItems(items),
		TotalMinutes: model.PlanTotalMinutes(items),
	}

	body, err := s.render(doc)
	if err != nil {
		return nil, "", err
	}
	return body, exportFilename(session.Name) + ".html", nil
}

func (s *exportService) PrintableCart(ctx context.Context, visitorID string) ([]byte, string, error) {
	ids, err := s.store.GetCart(ctx, visitorID)
	if err != nil {
		s.logger.Error("loading cart for print failed", zap.Error(err))
		return nil, "", err
	}
	if len(ids) == 0 {
		return nil, "", ErrCartEmpty
	}

	games, err := s.repo.Game.ListVisibleByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("loading cart games failed", zap.Error(err))
		return nil, "", err
	}
	ordered := orderGamesByIDs(ids, games)
	if len(ordered) == 0 {
		return nil, "", ErrCartEmpty
	}

	items := model.PlanFromGames(ordered)
	doc := printableDoc{
		Title:        "Session Preview",
		GeneratedAt:  time.Now().Format("2006-01-02 15:04"),
		Items:        toPrintableItems(items),
		TotalMinutes: model.PlanTotalMinutes(items),
	}

	body, err := s.render(doc)
	if err != nil {
		return nil, "", err
	}
	return body, "session-preview.html", nil
}

func (s *exportService) render(doc printableDoc) ([]byte, error) {
	var buf bytes.Buffer
	if err := printableTmpl.Execute(&buf, doc); err != nil {
		s.logger.Error("rendering printable failed", zap.Error(err))
		return nil, err
	}
	return buf.Bytes(), nil
}

func toPrintableItems(items []model.PlanItem) []printablePlanItem {
	result := make([]printablePlanItem, 0, len(items))
	for _, item := range items {
		if item.Game == nil {
			continue
		}
		result = append(result, printablePlanItem{
			Position:   item.Position,
			Multiplier: item.Multiplier,
			Notes:      item.Notes,
			Minutes:    float64(item.Game.BaseMinutes()) * item.Multiplier,
			Game:       toPrintableGame(item.Game),
		})
	}
	return result
}

func toPrintableGame(g *model.Game) printableGame {
	pg := printableGame{
		Name:        g.Name,
		PlayerCount: g.PlayerCount,
		Duration:    g.Duration,
		Description: renderedHTML(g.Description),
		Variants:    renderedHTML(g.Variants),
	}
	for _, f := range g.Focuses {
		pg.Focuses = append(pg.Focuses, f.Name)
	}
	for _, m := range g.Materials {
		pg.Materials = append(pg.Materials, m.Name)
	}
	for _, l := range g.Labels {
		pg.Labels = append(pg.Labels, l.Name)
	}
	return pg
}

// renderedHTML is safe to mark as template.HTML: the markdown renderer
// sanitizes its output before returning it.
func renderedHTML(md string) template.HTML {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	html, err := markdown.Render(md)
	if err != nil {
		return template.HTML(template.HTMLEscapeString(md))
	}
	return template.HTML(html)
}

func exportFilename(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('-')
		}
	}
	if b.Len() == 0 {
		return "export"
	}
	return b.String()
}

// ── catalog workbook ──

func (s *exportService) CatalogWorkbook(ctx context.Context) ([]byte, error) {
	games, err := s.repo.Game.ListAllVisible(ctx)
	if err != nil {
		s.logger.Error("loading catalog for export failed", zap.Error(err))
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Catalog"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Name", "Player Count", "Duration", "Focuses", "Materials", "Labels", "Languages", "Description"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, g := range games {
		values := []interface{}{
			g.Name,
			g.PlayerCount,
			g.Duration,
			joinFocusNames(g.Focuses),
			joinMaterialNames(g.Materials),
			joinLabelNames(g.Labels),
			joinLanguageCodes(g.Languages),
			g.Description,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		s.logger.Error("writing workbook failed", zap.Error(err))
		return nil, err
	}
	s.logger.Info("catalog workbook exported", zap.Int("games", len(games)))
	return buf.Bytes(), nil
}

func joinFocusNames(fs []model.Focus) string {
	names := make([]string, 0, len(fs))
	for _, f := range fs {
		names = append(names, f.Name)
	}
	return strings.Join(names, ", ")
}

func joinMaterialNames(ms []model.Material) string {
	names := make([]string, 0, len(ms))
	for _, m := range ms {
		names = append(names, m.Name)
	}
	return strings.Join(names, ", ")
}

func joinLabelNames(ls []model.Label) string {
	names := make([]string, 0, len(ls))
	for _, l := range ls {
		names = append(names, l.Name)
	}
	return strings.Join(names, ", ")
}

func joinLanguageCodes(ls []model.Language) string {
	codes := make([]string, 0, len(ls))
	for _, l := range ls {
		codes = append(codes, l.Code)
	}
	return strings.Join(codes, ", ")
}

// ── shared helpers ──

// orderGamesByIDs reorders loaded games into the id list's order, dropping
// ids that did not resolve to a visible game.
func orderGamesByIDs(ids []string, games []model.Game) []*model.Game {
	byID := make(map[string]*model.Game, len(games))
	for i := range games {
		byID[games[i].GameID] = &games[i]
	}
	ordered := make([]*model.Game, 0, len(ids))
	for _, id := range ids {
		if g, ok := byID[id]; ok {
			ordered = append(ordered, g)
		}
	}
	return ordered
}
