package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/monsdar/MiniGameArchive/internal/dto"
	"github.com/monsdar/MiniGameArchive/internal/service"
	"github.com/monsdar/MiniGameArchive/pkg/response"
)

// SuggestionHandler serves game suggestions and their moderation queue.
type SuggestionHandler struct {
	suggestionSvc service.SuggestionService
}

// NewSuggestionHandler creates a SuggestionHandler.
func NewSuggestionHandler(suggestionSvc service.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{suggestionSvc: suggestionSvc}
}

// Submit files a new game suggestion. The game stays hidden until a
// moderator approves it.
// POST /api/v1/suggestions
func (h *SuggestionHandler) Submit(c *gin.Context) {
	accountID, ok := MustGetAccountID(c)
	if !ok {
		return
	}

	var req dto.SubmitSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	suggestion, err := h.suggestionSvc.Submit(c.Request.Context(), &req, accountID)
	if err != nil {
		if writeValidationError(c, err) {
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, suggestion)
}

// List lists the moderation queue, optionally filtered by status.
// GET /api/v1/admin/suggestions?status=
func (h *SuggestionHandler) List(c *gin.Context) {
	var req dto.SuggestionListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	suggestions, err := h.suggestionSvc.List(c.Request.Context(), req.Status)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, suggestions)
}

// Get returns one suggestion with its game.
// GET /api/v1/admin/suggestions/:id
func (h *SuggestionHandler) Get(c *gin.Context) {
	suggestion, err := h.suggestionSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, suggestion)
}

// Review approves or rejects a pending suggestion.
// POST /api/v1/admin/suggestions/:id/review
func (h *SuggestionHandler) Review(c *gin.Context) {
	var req dto.ReviewSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	suggestion, err := h.suggestionSvc.Review(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, suggestion)
}

func (h *SuggestionHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSuggestionNotFound):
		response.NotFound(c, 23001, "suggestion not found")
	case errors.Is(err, service.ErrSuggestionResolved):
		response.Error(c, http.StatusConflict, 23002, "suggestion already resolved")
	default:
		response.InternalError(c)
	}
}
