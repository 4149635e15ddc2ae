package handlers

import (
	"strings"

	"masterbike/internal/core/services"
	"masterbike/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CartHandler normalizes client cart snapshots against the catalog
type CartHandler struct {
	inventoryService *services.InventoryService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(inventoryService *services.InventoryService) *CartHandler {
	return &CartHandler{inventoryService: inventoryService}
}

// Validate rebuilds a stored cart against current prices and stock.
// The body is the raw cart snapshot JSON; a corrupt snapshot comes back
// as an empty cart, never an error.
// @Summary Validate cart snapshot
// @Description Normalize a client cart against current catalog prices and stock
// @Tags Cart
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /cart/validate [post]
func (h *CartHandler) Validate(c *fiber.Ctx) error {
	normalized, warnings, err := h.inventoryService.NormalizeCart(c.Context(), c.Body())
	if err != nil {
		return response.InternalServerError(c, "Failed to validate cart")
	}

	data := fiber.Map{
		"lines":       normalized.Lines(),
		"total_items": normalized.TotalItems(),
		"subtotal":    normalized.Subtotal(),
	}

	if len(warnings) > 0 {
		return response.SuccessWithWarning(c, "Cart validated", strings.Join(warnings, "; "), data)
	}
	return response.Success(c, "Cart validated", data)
}
