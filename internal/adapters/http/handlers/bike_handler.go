package handlers

import (
	"masterbike/internal/core/services"
	"masterbike/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// BikeHandler handles rental fleet endpoints
type BikeHandler struct {
	rentalService *services.RentalService
}

// NewBikeHandler creates a new bike handler
func NewBikeHandler(rentalService *services.RentalService) *BikeHandler {
	return &BikeHandler{rentalService: rentalService}
}

// List lists bikes offered for rent
// @Summary List rental bikes
// @Description List all bikes currently offered for rent
// @Tags Bikes
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /bikes [get]
func (h *BikeHandler) List(c *fiber.Ctx) error {
	bikes, err := h.rentalService.ListBikes(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list bikes")
	}

	return response.Success(c, "Bikes retrieved successfully", bikes)
}
