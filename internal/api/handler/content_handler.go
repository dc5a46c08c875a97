package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/monsdar/MiniGameArchive/internal/dto"
	"github.com/monsdar/MiniGameArchive/internal/service"
	"github.com/monsdar/MiniGameArchive/pkg/response"
)

// ContentHandler serves the informational surfaces and the visitor's
// language preference.
type ContentHandler struct {
	contentSvc    service.ContentService
	preferenceSvc service.PreferenceService
}

// NewContentHandler creates a ContentHandler.
func NewContentHandler(contentSvc service.ContentService, preferenceSvc service.PreferenceService) *ContentHandler {
	return &ContentHandler{contentSvc: contentSvc, preferenceSvc: preferenceSvc}
}

// ListPublic returns the active blocks of one surface, rendered to HTML.
// GET /api/v1/content/:kind
func (h *ContentHandler) ListPublic(c *gin.Context) {
	blocks, err := h.contentSvc.ListPublic(c.Request.Context(), c.Param("kind"))
	if err != nil {
		if writeValidationError(c, err) {
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, blocks)
}

// ListAdmin returns all blocks of one surface with raw markdown.
// GET /api/v1/admin/content/:kind
func (h *ContentHandler) ListAdmin(c *gin.Context) {
	blocks, err := h.contentSvc.ListAdmin(c.Request.Context(), c.Param("kind"))
	if err != nil {
		if writeValidationError(c, err) {
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, blocks)
}

// Create adds a content block.
// POST /api/v1/admin/content
func (h *ContentHandler) Create(c *gin.Context) {
	var req dto.CreateContentBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	block, err := h.contentSvc.Create(c.Request.Context(), &req)
	if err != nil {
		if writeValidationError(c, err) {
			return
		}
		response.InternalError(c)
		return
	}
	response.Created(c, block)
}

// Update edits a content block.
// PATCH /api/v1/admin/content/:id
func (h *ContentHandler) Update(c *gin.Context) {
	var req dto.UpdateContentBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	block, err := h.contentSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, block)
}

// Delete removes a content block.
// DELETE /api/v1/admin/content/:id
func (h *ContentHandler) Delete(c *gin.Context) {
	if err := h.contentSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, nil)
}

// GetLanguage returns the visitor's effective UI language.
// GET /api/v1/language
func (h *ContentHandler) GetLanguage(c *gin.Context) {
	pref, err := h.preferenceSvc.GetLanguage(c.Request.Context(), VisitorID(c))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, pref)
}

// SetLanguage stores the visitor's UI language. Unsupported codes are
// ignored and the current preference is returned unchanged.
// PUT /api/v1/language
func (h *ContentHandler) SetLanguage(c *gin.Context) {
	var req dto.SetLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	pref, err := h.preferenceSvc.SetLanguage(c.Request.Context(), VisitorID(c), req.Code)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, pref)
}

func (h *ContentHandler) handleError(c *gin.Context, err error) {
	switch {
	case writeValidationError(c, err):
	case errors.Is(err, service.ErrContentNotFound):
		response.NotFound(c, 24001, "content block not found")
	default:
		response.InternalError(c)
	}
}
