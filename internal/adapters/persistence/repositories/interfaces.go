package repositories

import (
	"context"
	"time"

	"masterbike/internal/adapters/persistence/models"
)

// UserRepository defines user persistence operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]*models.User, int64, error)
}

// RefreshTokenRepository defines refresh token persistence operations
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, id uint) error
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByUserID(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

// BikeRepository defines rental fleet persistence operations
type BikeRepository interface {
	Create(ctx context.Context, bike *models.Bike) error
	GetByID(ctx context.Context, id uint) (*models.Bike, error)
	List(ctx context.Context) ([]*models.Bike, error)
	ListRentable(ctx context.Context) ([]*models.Bike, error)
	Update(ctx context.Context, bike *models.Bike) error
	AdjustStock(ctx context.Context, id uint, delta int) error
}

// InventoryRepository defines sale inventory persistence operations
type InventoryRepository interface {
	Create(ctx context.Context, item *models.InventoryItem) error
	GetByID(ctx context.Context, id uint) (*models.InventoryItem, error)
	List(ctx context.Context) ([]*models.InventoryItem, error)
	ListByCategory(ctx context.Context, category string) ([]*models.InventoryItem, error)
	Update(ctx context.Context, item *models.InventoryItem) error
	Delete(ctx context.Context, id uint) error
}

// RentalRepository defines rental order persistence operations
type RentalRepository interface {
	Create(ctx context.Context, rental *models.Rental) error
	GetByID(ctx context.Context, id uint) (*models.Rental, error)
	List(ctx context.Context, offset, limit int) ([]*models.Rental, int64, error)
	ListExpiredConfirmed(ctx context.Context, now time.Time) ([]*models.Rental, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
}

// PurchaseRepository defines sales order persistence operations
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *models.Purchase) error
	CreateWithStock(ctx context.Context, purchase *models.Purchase) error
	GetByID(ctx context.Context, id uint) (*models.Purchase, error)
	List(ctx context.Context, offset, limit int) ([]*models.Purchase, int64, error)
}

// RepairRepository defines repair ticket persistence operations
type RepairRepository interface {
	Create(ctx context.Context, repair *models.RepairRequest) error
	GetByID(ctx context.Context, id uint) (*models.RepairRequest, error)
	List(ctx context.Context, offset, limit int) ([]*models.RepairRequest, int64, error)
	Update(ctx context.Context, repair *models.RepairRequest) error
}
