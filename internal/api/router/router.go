package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/monsdar/MiniGameArchive/config"
	"github.com/monsdar/MiniGameArchive/internal/api/handler"
	"github.com/monsdar/MiniGameArchive/internal/api/middleware"
	"github.com/monsdar/MiniGameArchive/internal/model"
	"github.com/monsdar/MiniGameArchive/pkg/jwt"
	"github.com/monsdar/MiniGameArchive/pkg/redis"
)

// Setup builds the Gin engine with all routes and middleware wired.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))
	r.Use(middleware.VisitorID(cfg.Catalog.CartTTL))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// auth (no token required)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// public catalog
		games := v1.Group("/games")
		{
			games.GET("", h.Catalog.List)
			games.GET("/:id", h.Catalog.Get)
			games.GET("/:id/print", h.Export.PrintGame)
		}

		// per-visitor cart (no account required; materialize is below)
		cart := v1.Group("/cart")
		{
			cart.GET("", h.Cart.View)
			cart.POST("/items", h.Cart.Add)
			cart.DELETE("/items/:game_id", h.Cart.Remove)
			cart.DELETE("", h.Cart.Clear)
			cart.GET("/print", h.Export.PrintCart)
		}

		// informational surfaces + language preference
		v1.GET("/content/:kind", h.Content.ListPublic)
		v1.GET("/language", h.Content.GetLanguage)
		v1.PUT("/language", h.Content.SetLanguage)

		// routes requiring authentication
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)

			authorized.POST("/cart/materialize", h.Cart.Materialize)

			// suggestion submissions are rate-limited per IP
			authorized.POST("/suggestions",
				middleware.RateLimit(rdb, 10, time.Hour), h.Suggestion.Submit)

			sessions := authorized.Group("/sessions")
			{
				sessions.GET("", h.Session.List)
				sessions.GET("/:id", h.Session.Get)
				sessions.PATCH("/:id", h.Session.Update)
				sessions.DELETE("/:id", h.Session.Delete)
				sessions.GET("/:id/print", h.Export.PrintSession)
				sessions.POST("/:id/entries", h.Session.AddEntry)
				sessions.PATCH("/:id/entries/:entry_id", h.Session.UpdateEntry)
				sessions.DELETE("/:id/entries/:entry_id", h.Session.RemoveEntry)
			}

			// admin surface
			admin := authorized.Group("/admin")
			admin.Use(middleware.RoleAuth(model.RoleAdmin))
			{
				admin.GET("/suggestions", h.Suggestion.List)
				admin.GET("/suggestions/:id", h.Suggestion.Get)
				admin.POST("/suggestions/:id/review", h.Suggestion.Review)

				admin.GET("/content/:kind", h.Content.ListAdmin)
				admin.POST("/content", h.Content.Create)
				admin.PATCH("/content/:id", h.Content.Update)
				admin.DELETE("/content/:id", h.Content.Delete)

				admin.GET("/export/catalog", h.Export.ExportCatalog)
			}
		}
	}

	return r
}
