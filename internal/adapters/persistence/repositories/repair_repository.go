package repositories

import (
	"context"

	"masterbike/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// repairRepository implements RepairRepository interface
type repairRepository struct {
	db *gorm.DB
}

// NewRepairRepository creates a new repair repository
func NewRepairRepository(db *gorm.DB) RepairRepository {
	return &repairRepository{db: db}
}

// Create creates a new repair request
func (r *repairRepository) Create(ctx context.Context, repair *models.RepairRequest) error {
	return r.db.WithContext(ctx).Create(repair).Error
}

// GetByID gets a repair request by ID
func (r *repairRepository) GetByID(ctx context.Context, id uint) (*models.RepairRequest, error) {
	var repair models.RepairRequest
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&repair).Error
	if err != nil {
		return nil, err
	}
	return &repair, nil
}

// List lists repair requests with pagination, newest first
func (r *repairRepository) List(ctx context.Context, offset, limit int) ([]*models.RepairRequest, int64, error) {
	var repairs []*models.RepairRequest
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.RepairRequest{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&repairs).Error
	if err != nil {
		return nil, 0, err
	}

	return repairs, total, nil
}

// Update updates a repair request
func (r *repairRepository) Update(ctx context.Context, repair *models.RepairRequest) error {
	return r.db.WithContext(ctx).Save(repair).Error
}
