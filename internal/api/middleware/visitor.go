package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// VisitorCookieName identifies the anonymous visitor across requests.
// Cart contents and the language preference are keyed by it.
const VisitorCookieName = "mga_visitor"

const visitorIDKey = "visitor_id"

// VisitorID ensures every request carries a visitor id. A missing or
// malformed cookie gets replaced with a fresh UUID; the id is injected
// into the context for handlers.
func VisitorID(ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(VisitorCookieName)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.New().String()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(VisitorCookieName, id, int(ttl.Seconds()), "/", "", false, true)
		}

		c.Set(visitorIDKey, id)
		c.Next()
	}
}
