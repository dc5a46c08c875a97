package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/monsdar/MiniGameArchive/internal/dto"
	"github.com/monsdar/MiniGameArchive/internal/service"
	"github.com/monsdar/MiniGameArchive/pkg/response"
)

// AuthHandler serves registration, login and the token lifecycle.
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Register creates a coach account and returns a token pair.
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	tokens, err := h.authSvc.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			response.Error(c, http.StatusConflict, 11002, "email already registered")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, tokens)
}

// Login authenticates an account.
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	tokens, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, 11001, "invalid email or password")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, tokens)
}

// Refresh exchanges a refresh token for a fresh token pair.
// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	tokens, err := h.authSvc.Refresh(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			response.Unauthorized(c, 11003, "invalid or expired refresh token")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, tokens)
}

// Logout blacklists the presented access token until it expires.
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	tokenID := c.GetString("token_id")
	expiresAt, _ := c.Get("token_expires_at")

	exp, ok := expiresAt.(time.Time)
	if tokenID == "" || !ok {
		response.OK(c, nil)
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), tokenID, exp); err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// Me returns the calling account.
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	accountID, ok := MustGetAccountID(c)
	if !ok {
		return
	}

	account, err := h.authSvc.Me(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			response.NotFound(c, 11004, "account not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, account)
}
