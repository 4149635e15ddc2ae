package handlers

import (
	"errors"

	"masterbike/internal/core/domain"
	"masterbike/internal/core/services"
	"masterbike/internal/pkg/pagination"
	"masterbike/internal/pkg/response"
	"masterbike/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// PurchaseHandler handles checkout endpoints
type PurchaseHandler struct {
	purchaseService *services.PurchaseService
}

// NewPurchaseHandler creates a new purchase handler
func NewPurchaseHandler(purchaseService *services.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: purchaseService}
}

// Create confirms a sales order
// @Summary Create purchase
// @Description Validate the cart, decrement stock and persist the order
// @Tags Purchases
// @Accept json
// @Produce json
// @Param body body services.PurchaseInput true "Order data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /purchase [post]
func (h *PurchaseHandler) Create(c *fiber.Ctx) error {
	var input services.PurchaseInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := validation.ValidateStruct(&input); err != nil {
		return response.BadRequest(c, err.Error())
	}

	purchase, err := h.purchaseService.Create(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyCart):
			return response.BadRequest(c, "Cart is empty")
		case errors.Is(err, domain.ErrDeliveryDateInvalid):
			return response.BadRequest(c, "Delivery date must be a business day and not in the past")
		case errors.Is(err, domain.ErrItemNotFound):
			return response.NotFound(c, "One of the items no longer exists")
		case errors.Is(err, domain.ErrInsufficientStock):
			return response.Conflict(c, "Insufficient stock for one of the items")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Invalid order line")
		default:
			return response.InternalServerError(c, "Failed to create purchase")
		}
	}

	return response.Created(c, "Purchase confirmed successfully", purchase)
}

// List lists purchases
// @Summary List purchases
// @Description List sales orders with pagination (employee/admin)
// @Tags Purchases
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /purchases [get]
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	purchases, total, err := h.purchaseService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list purchases")
	}

	return response.Success(c, "Purchases retrieved successfully",
		pagination.NewResponse(purchases, params, total))
}
