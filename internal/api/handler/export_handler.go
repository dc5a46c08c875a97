package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/monsdar/MiniGameArchive/internal/service"
	"github.com/monsdar/MiniGameArchive/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves downloadable artifacts: printable HTML documents
// and the admin catalog workbook.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// PrintGame downloads a single game as a printable HTML document.
// GET /api/v1/games/:id/print
func (h *ExportHandler) PrintGame(c *gin.Context) {
	body, filename, err := h.exportSvc.PrintableGame(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	writeAttachment(c, body, filename, "text/html; charset=utf-8")
}

// PrintSession downloads a training session as a printable HTML document.
// GET /api/v1/sessions/:id/print
func (h *ExportHandler) PrintSession(c *gin.Context) {
	accountID, ok := MustGetAccountID(c)
	if !ok {
		return
	}

	body, filename, err := h.exportSvc.PrintableSession(c.Request.Context(), c.Param("id"), accountID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	writeAttachment(c, body, filename, "text/html; charset=utf-8")
}

// PrintCart downloads the current cart as a printable session preview.
// GET /api/v1/cart/print
func (h *ExportHandler) PrintCart(c *gin.Context) {
	body, filename, err := h.exportSvc.PrintableCart(c.Request.Context(), VisitorID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	writeAttachment(c, body, filename, "text/html; charset=utf-8")
}

// ExportCatalog downloads the visible catalog as an .xlsx workbook.
// GET /api/v1/admin/export/catalog
func (h *ExportHandler) ExportCatalog(c *gin.Context) {
	data, err := h.exportSvc.CatalogWorkbook(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	writeAttachment(c, data, "catalog.xlsx", xlsxContentType)
}

func (h *ExportHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		response.NotFound(c, 20001, "game not found")
	case errors.Is(err, service.ErrSessionNotFound):
		response.NotFound(c, 22001, "training session not found")
	case errors.Is(err, service.ErrCartEmpty):
		response.BadRequest(c, 21001, "cart is empty")
	default:
		response.InternalError(c)
	}
}

func writeAttachment(c *gin.Context, body []byte, filename, contentType string) {
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, contentType, body)
}
