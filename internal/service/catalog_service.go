package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/monsdar/MiniGameArchive/config"
	"github.com/monsdar/MiniGameArchive/internal/dto"
	"github.com/monsdar/MiniGameArchive/internal/model"
	"github.com/monsdar/MiniGameArchive/internal/repository"
)

// ── catalog errors ──

var ErrGameNotFound = errors.New("game not found")

// CatalogService is the public catalog: filtered listings plus detail
// reads. Listings only ever contain publicly visible games.
type CatalogService interface {
	// List returns one page of games matching the filter, the facet
	// option lists and the total match count. Out-of-range pages clamp
	// to the nearest valid page.
	List(ctx context.Context, req *dto.GameListRequest, page int) (*dto.GameListResponse, int64, int, error)
	Get(ctx context.Context, id string) (*dto.GameResponse, error)
	PageSize() int
}

type catalogService struct {
	repo     *repository.Repository
	pageSize int
	logger   *zap.Logger
}

// NewCatalogService creates a CatalogService instance.
func NewCatalogService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) CatalogService {
	return &catalogService{repo: repo, pageSize: cfg.Catalog.PageSize, logger: logger}
}

func (s *catalogService) PageSize() int { return s.pageSize }

func (s *catalogService) List(ctx context.Context, req *dto.GameListRequest, page int) (*dto.GameListResponse, int64, int, error) {
	filter := repository.GameFilter{
		Search:        req.Search,
		FocusNames:    req.Focus,
		PlayerCount:   req.PlayerCount,
		Duration:      req.Duration,
		MaterialNames: req.Materials,
		LabelNames:    req.Labels,
		LanguageCodes: req.Languages,
	}

	total, err := s.repo.Game.CountVisible(ctx, filter)
	if err != nil {
		s.logger.Error("counting catalog games failed", zap.Error(err))
		return nil, 0, 0, err
	}

	page = clampPage(page, total, s.pageSize)
	offset := (page - 1) * s.pageSize

	games, err := s.repo.Game.ListVisible(ctx, filter, offset, s.pageSize)
	if err != nil {
		s.logger.Error("listing catalog games failed", zap.Error(err))
		return nil, 0, 0, err
	}

	facets, err := s.buildFacets(ctx)
	if err != nil {
		s.logger.Error("loading facet options failed", zap.Error(err))
		return nil, 0, 0, err
	}

	resp := &dto.GameListResponse{
		Games:  make([]dto.GameResponse, 0, len(games)),
		Facets: *facets,
	}
	for i := range games {
		resp.Games = append(resp.Games, *toGameResponse(&games[i]))
	}

	return resp, total, page, nil
}

func (s *catalogService) Get(ctx context.Context, id string) (*dto.GameResponse, error) {
	game, err := s.repo.Game.GetVisibleByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		s.logger.Error("loading game failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toGameResponse(game), nil
}

// clampPage keeps the page number inside [1, totalPages]. An empty result
// set still has page 1.
func clampPage(page int, total int64, pageSize int) int {
	if page < 1 {
		return 1
	}
	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

func (s *catalogService) buildFacets(ctx context.Context) (*dto.FacetsResponse, error) {
	focuses, err := s.repo.Tag.ListFocuses(ctx)
	if err != nil {
		return nil, err
	}
	materials, err := s.repo.Tag.ListMaterials(ctx)
	if err != nil {
		return nil, err
	}
	labels, err := s.repo.Tag.ListLabels(ctx)
	if err != nil {
		return nil, err
	}
	languages, err := s.repo.Language.List(ctx)
	if err != nil {
		return nil, err
	}

	facets := &dto.FacetsResponse{
		Focuses:      make([]dto.TagResponse, 0, len(focuses)),
		Materials:    make([]dto.TagResponse, 0, len(materials)),
		Labels:       make([]dto.LabelResponse, 0, len(labels)),
		Languages:    make([]dto.LanguageResponse, 0, len(languages)),
		PlayerCounts: model.PlayerCountChoices,
		Durations:    model.DurationChoices,
	}
	for _, f := range focuses {
		facets.Focuses = append(facets.Focuses, dto.TagResponse{ID: f.FocusID, Name: f.Name, Description: f.Description})
	}
	for _, m := range materials {
		facets.Materials = append(facets.Materials, dto.TagResponse{ID: m.MaterialID, Name: m.Name, Description: m.Description})
	}
	for _, l := range labels {
		facets.Labels = append(facets.Labels, dto.LabelResponse{ID: l.LabelID, Name: l.Name, Color: l.Color})
	}
	for _, l := range languages {
		facets.Languages = append(facets.Languages, dto.LanguageResponse{ID: l.LanguageID, Code: l.Code, Name: l.Name})
	}

	return facets, nil
}
