package handlers

import (
	"errors"
	"fmt"

	"masterbike/internal/core/domain"
	"masterbike/internal/core/services"
	"masterbike/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ReceiptHandler serves PDF confirmations as downloads
type ReceiptHandler struct {
	receiptService *services.ReceiptService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *services.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// RentalReceipt downloads the confirmation PDF for a rental
// @Summary Download rental receipt
// @Description Download the confirmation PDF for a rental
// @Tags Receipts
// @Produce application/pdf
// @Param id path int true "Rental ID"
// @Success 200 {file} binary
// @Failure 404 {object} response.Response
// @Router /rentals/{id}/receipt [get]
func (h *ReceiptHandler) RentalReceipt(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid rental ID")
	}

	pdf, filename, err := h.receiptService.RentalReceipt(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrRentalNotFound) {
			return response.NotFound(c, "Rental not found")
		}
		return response.InternalServerError(c, "Failed to render receipt")
	}

	return servePDF(c, pdf, filename)
}

// PurchaseReceipt downloads the confirmation PDF for a purchase
// @Summary Download purchase receipt
// @Description Download the confirmation PDF for a sales order
// @Tags Receipts
// @Produce application/pdf
// @Param id path int true "Purchase ID"
// @Success 200 {file} binary
// @Failure 404 {object} response.Response
// @Router /purchases/{id}/receipt [get]
func (h *ReceiptHandler) PurchaseReceipt(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid purchase ID")
	}

	pdf, filename, err := h.receiptService.PurchaseReceipt(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrPurchaseNotFound) {
			return response.NotFound(c, "Purchase not found")
		}
		return response.InternalServerError(c, "Failed to render receipt")
	}

	return servePDF(c, pdf, filename)
}

// RepairReceipt downloads the confirmation PDF for a repair ticket
// @Summary Download repair confirmation
// @Description Download the confirmation PDF for a repair request
// @Tags Receipts
// @Produce application/pdf
// @Param id path int true "Ticket ID"
// @Success 200 {file} binary
// @Failure 404 {object} response.Response
// @Router /repairs/{id}/receipt [get]
func (h *ReceiptHandler) RepairReceipt(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid ticket ID")
	}

	pdf, filename, err := h.receiptService.RepairReceipt(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrRepairNotFound) {
			return response.NotFound(c, "Repair ticket not found")
		}
		return response.InternalServerError(c, "Failed to render receipt")
	}

	return servePDF(c, pdf, filename)
}

func servePDF(c *fiber.Ctx, pdf []byte, filename string) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdf)
}
