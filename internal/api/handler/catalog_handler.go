package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/monsdar/MiniGameArchive/internal/dto"
	"github.com/monsdar/MiniGameArchive/internal/service"
	"github.com/monsdar/MiniGameArchive/pkg/response"
)

// CatalogHandler serves the public game catalog.
type CatalogHandler struct {
	catalogSvc service.CatalogService
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(catalogSvc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogSvc: catalogSvc}
}

// List lists catalog games with optional filters.
// GET /api/v1/games?search=&focus=&player_count=&duration=&materials=&labels=&languages=&page=
func (h *CatalogHandler) List(c *gin.Context) {
	var req dto.GameListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	// A malformed page number degrades to page 1 instead of an error.
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}

	result, total, page, err := h.catalogSvc.List(c.Request.Context(), &req, page)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, result, total, page, h.catalogSvc.PageSize())
}

// Get returns one game by id.
// GET /api/v1/games/:id
func (h *CatalogHandler) Get(c *gin.Context) {
	game, err := h.catalogSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			response.NotFound(c, 20001, "game not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, game)
}
