package repositories

import (
	"context"
	"time"

	"masterbike/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// rentalRepository implements RentalRepository interface
type rentalRepository struct {
	db *gorm.DB
}

// NewRentalRepository creates a new rental repository
func NewRentalRepository(db *gorm.DB) RentalRepository {
	return &rentalRepository{db: db}
}

// Create creates a new rental
func (r *rentalRepository) Create(ctx context.Context, rental *models.Rental) error {
	return r.db.WithContext(ctx).Create(rental).Error
}

// GetByID gets a rental by ID with its bike
func (r *rentalRepository) GetByID(ctx context.Context, id uint) (*models.Rental, error) {
	var rental models.Rental
	err := r.db.WithContext(ctx).Preload("Bike").Where("id = ?", id).First(&rental).Error
	if err != nil {
		return nil, err
	}
	return &rental, nil
}

// List lists rentals with pagination, newest first
func (r *rentalRepository) List(ctx context.Context, offset, limit int) ([]*models.Rental, int64, error) {
	var rentals []*models.Rental
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Rental{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).Preload("Bike").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&rentals).Error
	if err != nil {
		return nil, 0, err
	}

	return rentals, total, nil
}

// ListExpiredConfirmed lists confirmed rentals whose end date has passed
func (r *rentalRepository) ListExpiredConfirmed(ctx context.Context, now time.Time) ([]*models.Rental, error) {
	var rentals []*models.Rental
	err := r.db.WithContext(ctx).
		Where("status = ? AND end_date < ?", models.RentalStatusConfirmed, now).
		Find(&rentals).Error
	return rentals, err
}

// UpdateStatus updates a rental status
func (r *rentalRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).Model(&models.Rental{}).
		Where("id = ?", id).
		Update("status", status).Error
}
