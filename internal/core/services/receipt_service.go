package services

import (
	"context"
	"fmt"

	"masterbike/internal/adapters/persistence/models"
	"masterbike/internal/pkg/receipt"
)

// ReceiptService renders PDF confirmations for orders
type ReceiptService struct {
	rentalService   *RentalService
	purchaseService *PurchaseService
	repairService   *RepairService
}

// NewReceiptService creates a new receipt service
func NewReceiptService(
	rentalService *RentalService,
	purchaseService *PurchaseService,
	repairService *RepairService,
) *ReceiptService {
	return &ReceiptService{
		rentalService:   rentalService,
		purchaseService: purchaseService,
		repairService:   repairService,
	}
}

// RentalReceipt renders the confirmation PDF for a rental
func (s *ReceiptService) RentalReceipt(ctx context.Context, rentalID uint) ([]byte, string, error) {
	rental, err := s.rentalService.Get(ctx, rentalID)
	if err != nil {
		return nil, "", err
	}

	bikeName := "Bicicleta"
	if rental.Bike != nil {
		bikeName = fmt.Sprintf("%s %s", rental.Bike.Brand, rental.Bike.Name)
	}

	doc := &receipt.Document{
		Title:         "Confirmación de Renta",
		Number:        rental.RentalNo,
		IssuedAt:      rental.CreatedAt,
		CustomerName:  rental.CustomerName,
		CustomerEmail: rental.CustomerEmail,
		Notes: []string{
			fmt.Sprintf("Inicio: %s", rental.StartDate.Format("02/01/2006 15:04")),
			fmt.Sprintf("Fin: %s", rental.EndDate.Format("02/01/2006 15:04")),
			fmt.Sprintf("Estado: %s", rental.Status),
		},
		Items: []receipt.Item{
			{
				Description: fmt.Sprintf("Renta de %s (%d h)", bikeName, rental.DurationHours),
				Quantity:    1,
				UnitPrice:   rental.TotalPrice,
				LineTotal:   rental.TotalPrice,
			},
		},
		Total: rental.TotalPrice,
	}

	out, err := receipt.Render(doc)
	if err != nil {
		return nil, "", err
	}
	return out, fmt.Sprintf("recibo-%s.pdf", rental.RentalNo), nil
}

// PurchaseReceipt renders the confirmation PDF for a purchase
func (s *ReceiptService) PurchaseReceipt(ctx context.Context, purchaseID uint) ([]byte, string, error) {
	purchase, err := s.purchaseService.Get(ctx, purchaseID)
	if err != nil {
		return nil, "", err
	}

	doc := &receipt.Document{
		Title:         "Recibo de Compra",
		Number:        purchase.OrderNo,
		IssuedAt:      purchase.CreatedAt,
		CustomerName:  purchase.CustomerName,
		CustomerEmail: purchase.CustomerEmail,
		Notes: []string{
			fmt.Sprintf("Dirección de entrega: %s", purchase.CustomerAddress),
			fmt.Sprintf("Fecha de entrega: %s", purchase.DeliveryDate.Format("02/01/2006")),
		},
		Items: purchaseItems(purchase),
		Total: purchase.TotalAmount,
	}

	out, err := receipt.Render(doc)
	if err != nil {
		return nil, "", err
	}
	return out, fmt.Sprintf("recibo-%s.pdf", purchase.OrderNo), nil
}

// RepairReceipt renders the confirmation PDF for a repair ticket
func (s *ReceiptService) RepairReceipt(ctx context.Context, repairID uint) ([]byte, string, error) {
	repair, err := s.repairService.Get(ctx, repairID)
	if err != nil {
		return nil, "", err
	}

	doc := &receipt.Document{
		Title:         "Solicitud de Reparación",
		Number:        repair.TicketNo,
		IssuedAt:      repair.CreatedAt,
		CustomerName:  repair.ContactName,
		CustomerEmail: repair.ContactEmail,
		Notes: []string{
			fmt.Sprintf("Bicicleta: %s %s", repair.BikeBrand, repair.BikeType),
			fmt.Sprintf("Problema: %s", repair.ProblemDescription),
			fmt.Sprintf("Estado: %s", repair.Status),
		},
	}

	out, err := receipt.Render(doc)
	if err != nil {
		return nil, "", err
	}
	return out, fmt.Sprintf("solicitud-%s.pdf", repair.TicketNo), nil
}

func purchaseItems(purchase *models.Purchase) []receipt.Item {
	items := make([]receipt.Item, 0, len(purchase.Items))
	for _, line := range purchase.Items {
		items = append(items, receipt.Item{
			Description: line.Name,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			LineTotal:   line.LineTotal,
		})
	}
	return items
}
