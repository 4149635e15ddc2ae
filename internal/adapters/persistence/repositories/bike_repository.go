package repositories

import (
	"context"

	"masterbike/internal/adapters/persistence/models"
	"masterbike/internal/core/domain"

	"gorm.io/gorm"
)

// bikeRepository implements BikeRepository interface
type bikeRepository struct {
	db *gorm.DB
}

// NewBikeRepository creates a new bike repository
func NewBikeRepository(db *gorm.DB) BikeRepository {
	return &bikeRepository{db: db}
}

// Create creates a new bike
func (r *bikeRepository) Create(ctx context.Context, bike *models.Bike) error {
	return r.db.WithContext(ctx).Create(bike).Error
}

// GetByID gets a bike by ID
func (r *bikeRepository) GetByID(ctx context.Context, id uint) (*models.Bike, error) {
	var bike models.Bike
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&bike).Error
	if err != nil {
		return nil, err
	}
	return &bike, nil
}

// List lists all bikes
func (r *bikeRepository) List(ctx context.Context) ([]*models.Bike, error) {
	var bikes []*models.Bike
	err := r.db.WithContext(ctx).Order("name").Find(&bikes).Error
	return bikes, err
}

// ListRentable lists bikes available for rent with stock
func (r *bikeRepository) ListRentable(ctx context.Context) ([]*models.Bike, error) {
	var bikes []*models.Bike
	err := r.db.WithContext(ctx).
		Where("available_for_rent = ? AND stock > 0", true).
		Order("name").
		Find(&bikes).Error
	return bikes, err
}

// Update updates a bike
func (r *bikeRepository) Update(ctx context.Context, bike *models.Bike) error {
	return r.db.WithContext(ctx).Save(bike).Error
}

// AdjustStock applies a stock delta, refusing to go below zero.
func (r *bikeRepository) AdjustStock(ctx context.Context, id uint, delta int) error {
	result := r.db.WithContext(ctx).Model(&models.Bike{}).
		Where("id = ? AND stock + ? >= 0", id, delta).
		Update("stock", gorm.Expr("stock + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrInsufficientStock
	}
	return nil
}
