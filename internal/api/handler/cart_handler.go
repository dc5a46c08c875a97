package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/monsdar/MiniGameArchive/internal/dto"
	"github.com/monsdar/MiniGameArchive/internal/service"
	"github.com/monsdar/MiniGameArchive/pkg/response"
)

// CartHandler serves the per-visitor session cart.
type CartHandler struct {
	cartSvc service.CartService
}

// NewCartHandler creates a CartHandler.
func NewCartHandler(cartSvc service.CartService) *CartHandler {
	return &CartHandler{cartSvc: cartSvc}
}

// View returns the cart's games in cart order plus the duration preview.
// GET /api/v1/cart
func (h *CartHandler) View(c *gin.Context) {
	cart, err := h.cartSvc.View(c.Request.Context(), VisitorID(c))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, cart)
}

// Add puts a game into the cart. Adding a game twice is a no-op.
// POST /api/v1/cart/items
func (h *CartHandler) Add(c *gin.Context) {
	var req dto.CartMutationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	count, err := h.cartSvc.Add(c.Request.Context(), VisitorID(c), req.GameID)
	if err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			response.NotFound(c, 20001, "game not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, dto.CartCountResponse{CartCount: count})
}

// Remove takes a game out of the cart. Removing an absent game is a no-op.
// DELETE /api/v1/cart/items/:game_id
func (h *CartHandler) Remove(c *gin.Context) {
	count, err := h.cartSvc.Remove(c.Request.Context(), VisitorID(c), c.Param("game_id"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, dto.CartCountResponse{CartCount: count})
}

// Clear empties the cart.
// DELETE /api/v1/cart
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.cartSvc.Clear(c.Request.Context(), VisitorID(c)); err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, dto.CartCountResponse{CartCount: 0})
}

// Materialize turns the cart into a persisted training session.
// POST /api/v1/cart/materialize
func (h *CartHandler) Materialize(c *gin.Context) {
	accountID, ok := MustGetAccountID(c)
	if !ok {
		return
	}

	var req dto.MaterializeCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	sessionID, err := h.cartSvc.Materialize(c.Request.Context(), VisitorID(c), accountID, &req)
	if err != nil {
		if writeValidationError(c, err) {
			return
		}
		if errors.Is(err, service.ErrCartEmpty) {
			response.BadRequest(c, 21001, "cart is empty")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, dto.MaterializeCartResponse{SessionID: sessionID})
}
