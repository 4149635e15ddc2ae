package repositories

import (
	"context"

	"masterbike/internal/adapters/persistence/models"
	"masterbike/internal/core/domain"

	"gorm.io/gorm"
)

// purchaseRepository implements PurchaseRepository interface
type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository creates a new purchase repository
func NewPurchaseRepository(db *gorm.DB) PurchaseRepository {
	return &purchaseRepository{db: db}
}

// Create creates a purchase with its items in one transaction
func (r *purchaseRepository) Create(ctx context.Context, purchase *models.Purchase) error {
	return r.db.WithContext(ctx).Create(purchase).Error
}

// CreateWithStock persists a purchase and decrements inventory stock for
// each of its items in one transaction, so a failing line leaves nothing
// partially executed. The conditional update guards against concurrent
// checkouts draining the same item.
func (r *purchaseRepository) CreateWithStock(ctx context.Context, purchase *models.Purchase) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range purchase.Items {
			res := tx.Model(&models.InventoryItem{}).
				Where("id = ? AND stock >= ?", item.ItemID, item.Quantity).
				Update("stock", gorm.Expr("stock - ?", item.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return domain.ErrInsufficientStock
			}
		}
		return tx.Create(purchase).Error
	})
}

// GetByID gets a purchase by ID with its items
func (r *purchaseRepository) GetByID(ctx context.Context, id uint) (*models.Purchase, error) {
	var purchase models.Purchase
	err := r.db.WithContext(ctx).Preload("Items").Where("id = ?", id).First(&purchase).Error
	if err != nil {
		return nil, err
	}
	return &purchase, nil
}

// List lists purchases with pagination, newest first
func (r *purchaseRepository) List(ctx context.Context, offset, limit int) ([]*models.Purchase, int64, error) {
	var purchases []*models.Purchase
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Purchase{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).Preload("Items").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&purchases).Error
	if err != nil {
		return nil, 0, err
	}

	return purchases, total, nil
}
