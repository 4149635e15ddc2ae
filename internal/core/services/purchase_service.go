package services

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"masterbike/internal/adapters/persistence/models"
	"masterbike/internal/adapters/persistence/repositories"
	"masterbike/internal/core/domain"
	"masterbike/internal/core/pricing"

	"gorm.io/gorm"
)

// PurchaseService handles checkout business logic
type PurchaseService struct {
	inventoryRepo repositories.InventoryRepository
	purchaseRepo  repositories.PurchaseRepository
}

// NewPurchaseService creates a new purchase service
func NewPurchaseService(inventoryRepo repositories.InventoryRepository, purchaseRepo repositories.PurchaseRepository) *PurchaseService {
	return &PurchaseService{
		inventoryRepo: inventoryRepo,
		purchaseRepo:  purchaseRepo,
	}
}

// PurchaseLineInput is one requested order line
type PurchaseLineInput struct {
	ItemID   uint `json:"item_id" validate:"required"`
	Quantity int  `json:"quantity" validate:"required,gte=1"`
}

// PurchaseInput represents checkout input
type PurchaseInput struct {
	CustomerName    string              `json:"customer_name" validate:"required,min=2,max=100"`
	CustomerEmail   string              `json:"customer_email" validate:"required,email"`
	CustomerAddress string              `json:"customer_address" validate:"required,min=5,max=255"`
	DeliveryDate    time.Time           `json:"delivery_date" validate:"required"`
	Lines           []PurchaseLineInput `json:"lines" validate:"required,min=1,dive"`
}

// Create validates and persists a sales order.
// Prices and the total are recomputed from the catalog, never trusted
// from the client, and stock is decremented in the same transaction.
func (s *PurchaseService) Create(ctx context.Context, input *PurchaseInput) (*models.Purchase, error) {
	// 1. Reject empty carts
	if len(input.Lines) == 0 {
		return nil, domain.ErrEmptyCart
	}

	// 2. Re-check delivery date eligibility at order time
	if !pricing.DeliveryDateEligible(input.DeliveryDate, time.Now()) {
		return nil, domain.ErrDeliveryDateInvalid
	}

	purchase := &models.Purchase{
		OrderNo:         newOrderNo("ORD"),
		CustomerName:    input.CustomerName,
		CustomerEmail:   input.CustomerEmail,
		CustomerAddress: input.CustomerAddress,
		DeliveryDate:    input.DeliveryDate,
	}

	// 3. Validate each line against the live catalog; unit prices come
	// from the stored item, never from the client
	var priceLines []pricing.Line
	for _, line := range input.Lines {
		if line.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}

		item, err := s.inventoryRepo.GetByID(ctx, line.ItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrItemNotFound
			}
			return nil, err
		}

		if item.Stock < line.Quantity {
			return nil, domain.ErrInsufficientStock
		}

		purchase.Items = append(purchase.Items, models.PurchaseItem{
			ItemID:    item.ID,
			Name:      item.Name,
			UnitPrice: item.Price,
			Quantity:  line.Quantity,
			LineTotal: item.Price * float64(line.Quantity),
		})
		priceLines = append(priceLines, pricing.Line{
			ItemID:    strconv.FormatUint(uint64(item.ID), 10),
			UnitPrice: item.Price,
			Quantity:  line.Quantity,
		})
	}

	purchase.TotalAmount = pricing.Subtotal(priceLines)

	// 4. Persist order and stock decrements atomically; the repository
	// re-checks stock so concurrent checkouts cannot oversell
	if err := s.purchaseRepo.CreateWithStock(ctx, purchase); err != nil {
		return nil, err
	}

	log.Printf("✅ Purchase confirmed: %s (%d lines, $%.2f)",
		purchase.OrderNo, len(purchase.Items), purchase.TotalAmount)

	return purchase, nil
}

// Get gets one purchase with its items
func (s *PurchaseService) Get(ctx context.Context, id uint) (*models.Purchase, error) {
	purchase, err := s.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPurchaseNotFound
		}
		return nil, err
	}
	return purchase, nil
}

// List lists purchases with pagination, newest first
func (s *PurchaseService) List(ctx context.Context, offset, limit int) ([]*models.Purchase, int64, error) {
	return s.purchaseRepo.List(ctx, offset, limit)
}
