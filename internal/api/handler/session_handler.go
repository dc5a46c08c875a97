package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/monsdar/MiniGameArchive/internal/dto"
	"github.com/monsdar/MiniGameArchive/internal/service"
	"github.com/monsdar/MiniGameArchive/pkg/response"
)

// SessionHandler serves persisted training sessions. All routes require
// authentication; everything is scoped to the calling account.
type SessionHandler struct {
	sessionSvc service.SessionService
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(sessionSvc service.SessionService) *SessionHandler {
	return &SessionHandler{sessionSvc: sessionSvc}
}

// List lists the caller's sessions.
// GET /api/v1/sessions
func (h *SessionHandler) List(c *gin.Context) {
	accountID, ok := MustGetAccountID(c)
	if !ok {
		return
	}

	sessions, err := h.sessionSvc.ListOwn(c.Request.Context(), accountID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, sessions)
}

// Get returns one session with its ordered entries.
// GET /api/v1/sessions/:id
func (h *SessionHandler) Get(c *gin.Context) {
	accountID, ok := MustGetAccountID(c)
	if !ok {
		return
	}

	session, err := h.sessionSvc.Get(c.Request.Context(), c.Param("id"), accountID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, session)
}

// Update renames a session or changes its description.
// PATCH /api/v1/sessions/:id
func (h *SessionHandler) Update(c *gin.Context) {
	accountID, ok := MustGetAccountID(c)
	if !ok {
		return
	}

	var req dto.UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	session, err := h.sessionSvc.Update(c.Request.Context(), c.Param("id"), accountID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, session)
}

// Delete removes a session and its entries.
// DELETE /api/v1/sessions/:id
func (h *SessionHandler) Delete(c *gin.Context) {
	accountID, ok := MustGetAccountID(c)
	if !ok {
		return
	}

	if err := h.sessionSvc.Delete(c.Request.Context(), c.Param("id"), accountID); err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, nil)
}

// AddEntry appends a game to the session.
// POST /api/v1/sessions/:id/entries
func (h *SessionHandler) AddEntry(c *gin.Context) {
	accountID, ok := MustGetAccountID(c)
	if !ok {
		return
	}

	var req dto.AddSessionEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	session, err := h.sessionSvc.AddEntry(c.Request.Context(), c.Param("id"), accountID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, session)
}

// UpdateEntry adjusts an entry's multiplier, notes or position.
// PATCH /api/v1/sessions/:id/entries/:entry_id
func (h *SessionHandler) UpdateEntry(c *gin.Context) {
	accountID, ok := MustGetAccountID(c)
	if !ok {
		return
	}

	var req dto.UpdateSessionEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	session, err := h.sessionSvc.UpdateEntry(c.Request.Context(), c.Param("id"), c.Param("entry_id"), accountID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, session)
}

// RemoveEntry removes one entry from the session.
// DELETE /api/v1/sessions/:id/entries/:entry_id
func (h *SessionHandler) RemoveEntry(c *gin.Context) {
	accountID, ok := MustGetAccountID(c)
	if !ok {
		return
	}

	session, err := h.sessionSvc.RemoveEntry(c.Request.Context(), c.Param("id"), c.Param("entry_id"), accountID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, session)
}

func (h *SessionHandler) handleError(c *gin.Context, err error) {
	switch {
	case writeValidationError(c, err):
	case errors.Is(err, service.ErrSessionNotFound):
		response.NotFound(c, 22001, "training session not found")
	case errors.Is(err, service.ErrEntryNotFound):
		response.NotFound(c, 22002, "session entry not found")
	case errors.Is(err, service.ErrGameNotFound):
		response.NotFound(c, 20001, "game not found")
	default:
		response.InternalError(c)
	}
}
