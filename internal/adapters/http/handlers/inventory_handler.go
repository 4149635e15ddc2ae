package handlers

import (
	"errors"

	"masterbike/internal/core/domain"
	"masterbike/internal/core/services"
	"masterbike/internal/pkg/response"
	"masterbike/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// InventoryHandler handles sale catalog endpoints
type InventoryHandler struct {
	inventoryService *services.InventoryService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// List lists sale items
// @Summary List inventory
// @Description List sale items, optionally filtered by category (Bicicleta or Repuesto)
// @Tags Inventory
// @Accept json
// @Produce json
// @Param category query string false "Category filter"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	items, err := h.inventoryService.List(c.Context(), c.Query("category"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return response.BadRequest(c, "Unknown category")
		}
		return response.InternalServerError(c, "Failed to list inventory")
	}

	return response.Success(c, "Inventory retrieved successfully", items)
}

// Get gets one sale item
// @Summary Get inventory item
// @Description Get a single sale item by ID
// @Tags Inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /inventory/{id} [get]
func (h *InventoryHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid item ID")
	}

	item, err := h.inventoryService.Get(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return response.NotFound(c, "Item not found")
		}
		return response.InternalServerError(c, "Failed to get item")
	}

	return response.Success(c, "Item retrieved successfully", item)
}

// Create creates a sale item
// @Summary Create inventory item
// @Description Create a new sale item (employee/admin)
// @Tags Inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.InventoryInput true "Item data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var input services.InventoryInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := validation.ValidateStruct(&input); err != nil {
		return response.BadRequest(c, err.Error())
	}

	item, err := h.inventoryService.Create(c.Context(), &input)
	if err != nil {
		return response.InternalServerError(c, "Failed to create item")
	}

	return response.Created(c, "Item created successfully", item)
}

// Update updates a sale item
// @Summary Update inventory item
// @Description Update a sale item (employee/admin)
// @Tags Inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Param body body services.InventoryInput true "Item data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /inventory/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid item ID")
	}

	var input services.InventoryInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := validation.ValidateStruct(&input); err != nil {
		return response.BadRequest(c, err.Error())
	}

	item, err := h.inventoryService.Update(c.Context(), uint(id), &input)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return response.NotFound(c, "Item not found")
		}
		return response.InternalServerError(c, "Failed to update item")
	}

	return response.Success(c, "Item updated successfully", item)
}

// Delete removes a sale item
// @Summary Delete inventory item
// @Description Delete a sale item (employee/admin)
// @Tags Inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid item ID")
	}

	if err := h.inventoryService.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return response.NotFound(c, "Item not found")
		}
		return response.InternalServerError(c, "Failed to delete item")
	}

	return response.Success(c, "Item deleted successfully", nil)
}
