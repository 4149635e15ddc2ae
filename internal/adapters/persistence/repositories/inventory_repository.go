package repositories

import (
	"context"

	"masterbike/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// inventoryRepository implements InventoryRepository interface
type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

// Create creates a new inventory item
func (r *inventoryRepository) Create(ctx context.Context, item *models.InventoryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// GetByID gets an inventory item by ID
func (r *inventoryRepository) GetByID(ctx context.Context, id uint) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// List lists all inventory items
func (r *inventoryRepository) List(ctx context.Context) ([]*models.InventoryItem, error) {
	var items []*models.InventoryItem
	err := r.db.WithContext(ctx).Order("category, name").Find(&items).Error
	return items, err
}

// ListByCategory lists items in one category
func (r *inventoryRepository) ListByCategory(ctx context.Context, category string) ([]*models.InventoryItem, error) {
	var items []*models.InventoryItem
	err := r.db.WithContext(ctx).Where("category = ?", category).Order("name").Find(&items).Error
	return items, err
}

// Update updates an inventory item
func (r *inventoryRepository) Update(ctx context.Context, item *models.InventoryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete soft deletes an inventory item
func (r *inventoryRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.InventoryItem{}, id).Error
}
