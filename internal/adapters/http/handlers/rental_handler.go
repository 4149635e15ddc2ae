package handlers

import (
	"context"
	"errors"
	"time"

	"masterbike/internal/adapters/persistence/models"
	"masterbike/internal/core/domain"
	"masterbike/internal/core/services"
	"masterbike/internal/pkg/pagination"
	"masterbike/internal/pkg/response"
	"masterbike/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// RentalHandler handles rental endpoints
type RentalHandler struct {
	rentalService *services.RentalService
}

// NewRentalHandler creates a new rental handler
func NewRentalHandler(rentalService *services.RentalService) *RentalHandler {
	return &RentalHandler{rentalService: rentalService}
}

// Quote computes a rental price without creating anything.
// Missing or not-ready dates quote as zero rather than failing.
// @Summary Quote rental price
// @Description Compute the price of renting a bike for a period
// @Tags Rentals
// @Accept json
// @Produce json
// @Param bike_id query int true "Bike ID"
// @Param start query string false "Start time (RFC3339)"
// @Param end query string false "End time (RFC3339)"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /rentals/quote [get]
func (h *RentalHandler) Quote(c *fiber.Ctx) error {
	bikeID := c.QueryInt("bike_id")
	if bikeID < 1 {
		return response.BadRequest(c, "Invalid bike ID")
	}

	start, _ := time.Parse(time.RFC3339, c.Query("start"))
	end, _ := time.Parse(time.RFC3339, c.Query("end"))

	price, hours, err := h.rentalService.QuotePrice(c.Context(), uint(bikeID), start, end)
	if err != nil {
		if errors.Is(err, domain.ErrBikeNotFound) {
			return response.NotFound(c, "Bike not found")
		}
		return response.InternalServerError(c, "Failed to quote price")
	}

	return response.Success(c, "Quote computed successfully", fiber.Map{
		"bike_id":        bikeID,
		"duration_hours": hours,
		"total_price":    price,
	})
}

// Create confirms a new rental
// @Summary Create rental
// @Description Confirm a bike rental for a period
// @Tags Rentals
// @Accept json
// @Produce json
// @Param body body services.RentalInput true "Rental data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /rentals [post]
func (h *RentalHandler) Create(c *fiber.Ctx) error {
	var input services.RentalInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := validation.ValidateStruct(&input); err != nil {
		return response.BadRequest(c, err.Error())
	}

	rental, err := h.rentalService.Create(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRentalPeriod):
			return response.BadRequest(c, "Invalid rental period")
		case errors.Is(err, domain.ErrBikeNotFound):
			return response.NotFound(c, "Bike not found")
		case errors.Is(err, domain.ErrBikeNotRentable):
			return response.Conflict(c, "Bike is not offered for rent")
		case errors.Is(err, domain.ErrInsufficientStock):
			return response.Conflict(c, "No units available for this bike")
		default:
			return response.InternalServerError(c, "Failed to create rental")
		}
	}

	return response.Created(c, "Rental confirmed successfully", rental)
}

// List lists rentals
// @Summary List rentals
// @Description List rentals with pagination (employee/admin)
// @Tags Rentals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /rentals [get]
func (h *RentalHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	rentals, total, err := h.rentalService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list rentals")
	}

	return response.Success(c, "Rentals retrieved successfully",
		pagination.NewResponse(rentals, params, total))
}

// Complete marks a rental as returned
// @Summary Complete rental
// @Description Mark a rental as returned and restore the bike unit (employee/admin)
// @Tags Rentals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Rental ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /rentals/{id}/complete [put]
func (h *RentalHandler) Complete(c *fiber.Ctx) error {
	return h.transition(c, h.rentalService.Complete, "Rental completed successfully")
}

// Cancel cancels a confirmed rental
// @Summary Cancel rental
// @Description Cancel a confirmed rental and restore the bike unit (employee/admin)
// @Tags Rentals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Rental ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /rentals/{id}/cancel [put]
func (h *RentalHandler) Cancel(c *fiber.Ctx) error {
	return h.transition(c, h.rentalService.Cancel, "Rental cancelled successfully")
}

func (h *RentalHandler) transition(
	c *fiber.Ctx,
	fn func(ctx context.Context, id uint) (*models.Rental, error),
	message string,
) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid rental ID")
	}

	rental, err := fn(c.Context(), uint(id))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRentalNotFound):
			return response.NotFound(c, "Rental not found")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.Conflict(c, "Rental is no longer active")
		default:
			return response.InternalServerError(c, "Failed to update rental")
		}
	}

	return response.Success(c, message, rental)
}
