package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"masterbike/internal/adapters/persistence/models"
	"masterbike/internal/adapters/persistence/repositories"
	"masterbike/internal/core/cart"
	"masterbike/internal/core/domain"

	"gorm.io/gorm"
)

// InventoryService handles sale catalog business logic
type InventoryService struct {
	inventoryRepo repositories.InventoryRepository
}

// NewInventoryService creates a new inventory service
func NewInventoryService(inventoryRepo repositories.InventoryRepository) *InventoryService {
	return &InventoryService{inventoryRepo: inventoryRepo}
}

// InventoryInput represents create/update input for a sale item
type InventoryInput struct {
	Name     string  `json:"name" validate:"required,min=2,max=100"`
	Brand    string  `json:"brand" validate:"max=50"`
	Category string  `json:"category" validate:"required,oneof=Bicicleta Repuesto"`
	ImageURL string  `json:"image_url" validate:"omitempty,url"`
	Price    float64 `json:"price" validate:"required,gt=0"`
	Stock    int     `json:"stock" validate:"gte=0"`
}

// List lists sale items, optionally filtered by category
func (s *InventoryService) List(ctx context.Context, category string) ([]*models.InventoryItem, error) {
	if category == "" {
		return s.inventoryRepo.List(ctx)
	}

	if category != models.CategoryBike && category != models.CategorySparePart {
		return nil, domain.ErrInvalidInput
	}
	return s.inventoryRepo.ListByCategory(ctx, category)
}

// Get gets one sale item
func (s *InventoryService) Get(ctx context.Context, id uint) (*models.InventoryItem, error) {
	item, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

// Create creates a sale item
func (s *InventoryService) Create(ctx context.Context, input *InventoryInput) (*models.InventoryItem, error) {
	item := &models.InventoryItem{
		Name:     input.Name,
		Brand:    input.Brand,
		Category: input.Category,
		ImageURL: input.ImageURL,
		Price:    input.Price,
		Stock:    input.Stock,
	}

	if err := s.inventoryRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	log.Printf("✅ Inventory item created: %s (%s)", item.Name, item.Category)
	return item, nil
}

// Update updates a sale item
func (s *InventoryService) Update(ctx context.Context, id uint, input *InventoryInput) (*models.InventoryItem, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	item.Name = input.Name
	item.Brand = input.Brand
	item.Category = input.Category
	item.ImageURL = input.ImageURL
	item.Price = input.Price
	item.Stock = input.Stock

	if err := s.inventoryRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	log.Printf("✅ Inventory item updated: %d", item.ID)
	return item, nil
}

// NormalizeCart rebuilds a client cart snapshot against the current catalog.
// Corrupt snapshots restore as empty, lines whose item disappeared are
// dropped, and quantities are clamped to current stock. The returned
// warnings are informational, never errors.
func (s *InventoryService) NormalizeCart(ctx context.Context, snapshot []byte) (*cart.Cart, []string, error) {
	restored := cart.Restore(snapshot)
	normalized := cart.New()
	var warnings []string

	for _, line := range restored.Lines() {
		id, err := strconv.ParseUint(line.ItemID, 10, 32)
		if err != nil {
			continue
		}

		item, err := s.inventoryRepo.GetByID(ctx, uint(id))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				warnings = append(warnings, fmt.Sprintf("%s ya no está disponible", line.Name))
				continue
			}
			return nil, nil, err
		}

		if warn := normalized.Add(line.ItemID, item.Name, item.Price, line.Quantity, item.Stock); warn != "" {
			warnings = append(warnings, fmt.Sprintf("%s: %s", item.Name, warn))
		}
	}

	return normalized, warnings, nil
}

// Delete removes a sale item from the catalog
func (s *InventoryService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	if err := s.inventoryRepo.Delete(ctx, id); err != nil {
		return err
	}

	log.Printf("✅ Inventory item deleted: %d", id)
	return nil
}
