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

// RepairHandler handles repair ticket endpoints
type RepairHandler struct {
	repairService *services.RepairService
}

// NewRepairHandler creates a new repair handler
func NewRepairHandler(repairService *services.RepairService) *RepairHandler {
	return &RepairHandler{repairService: repairService}
}

// Create opens a repair ticket
// @Summary Create repair ticket
// @Description Open a new repair request for a bike
// @Tags Repairs
// @Accept json
// @Produce json
// @Param body body services.RepairInput true "Repair request data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /repairs [post]
func (h *RepairHandler) Create(c *fiber.Ctx) error {
	var input services.RepairInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := validation.ValidateStruct(&input); err != nil {
		return response.BadRequest(c, err.Error())
	}

	repair, err := h.repairService.Create(c.Context(), &input)
	if err != nil {
		return response.InternalServerError(c, "Failed to create repair ticket")
	}

	return response.Created(c, "Repair ticket created successfully", repair)
}

// List lists repair tickets
// @Summary List repair tickets
// @Description List repair tickets with pagination, newest first (employee/admin)
// @Tags Repairs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /repairs [get]
func (h *RepairHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	repairs, total, err := h.repairService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list repair tickets")
	}

	return response.Success(c, "Repair tickets retrieved successfully",
		pagination.NewResponse(repairs, params, total))
}

// UpdateStatus moves a ticket to another status
// @Summary Update repair status
// @Description Move a repair ticket through the status set (employee/admin)
// @Tags Repairs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Param body body services.RepairStatusInput true "New status"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /repairs/{id} [put]
func (h *RepairHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid ticket ID")
	}

	var input services.RepairStatusInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := validation.ValidateStruct(&input); err != nil {
		return response.BadRequest(c, err.Error())
	}

	repair, err := h.repairService.UpdateStatus(c.Context(), uint(id), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRepairNotFound):
			return response.NotFound(c, "Repair ticket not found")
		case errors.Is(err, domain.ErrInvalidRepairStatus):
			return response.BadRequest(c, "Invalid status transition")
		default:
			return response.InternalServerError(c, "Failed to update repair ticket")
		}
	}

	return response.Success(c, "Repair ticket updated successfully", repair)
}
