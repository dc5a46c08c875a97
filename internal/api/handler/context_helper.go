package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/monsdar/MiniGameArchive/pkg/apperrors"
	"github.com/monsdar/MiniGameArchive/pkg/response"
)

// MustGetAccountID safely extracts the account id injected by the JWT
// middleware. On failure it writes a 401 response; the caller should
// return immediately when ok=false.
func MustGetAccountID(c *gin.Context) (string, bool) {
	v, exists := c.Get("account_id")
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	return s, true
}

// MustGetRole safely extracts the role injected by the JWT middleware.
func MustGetRole(c *gin.Context) (string, bool) {
	v, exists := c.Get("role")
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	return s, true
}

// VisitorID extracts the visitor id injected by the visitor middleware.
// The middleware always sets it; an empty result means the route was
// wired without it.
func VisitorID(c *gin.Context) string {
	return c.GetString("visitor_id")
}

// OptionalAccountID returns the account id when the request is
// authenticated and "" otherwise, without writing a response.
func OptionalAccountID(c *gin.Context) string {
	return c.GetString("account_id")
}

// writeValidationError writes a 422 for service-level validation errors
// and reports whether err was one.
func writeValidationError(c *gin.Context, err error) bool {
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		response.ValidationFailed(c, 10001, verr.Fields)
		return true
	}
	return false
}
