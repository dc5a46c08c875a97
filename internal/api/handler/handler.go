package handler

import "github.com/monsdar/MiniGameArchive/internal/service"

// Handler aggregates all HTTP handlers.
type Handler struct {
	Auth       *AuthHandler
	Catalog    *CatalogHandler
	Cart       *CartHandler
	Session    *SessionHandler
	Suggestion *SuggestionHandler
	Content    *ContentHandler
	Export     *ExportHandler
}

// NewHandler creates the handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(svc.Auth),
		Catalog:    NewCatalogHandler(svc.Catalog),
		Cart:       NewCartHandler(svc.Cart),
		Session:    NewSessionHandler(svc.Session),
		Suggestion: NewSuggestionHandler(svc.Suggestion),
		Content:    NewContentHandler(svc.Content, svc.Preference),
		Export:     NewExportHandler(svc.Export),
	}
}
