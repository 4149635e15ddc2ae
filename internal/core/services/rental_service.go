package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"masterbike/internal/adapters/persistence/models"
	"masterbike/internal/adapters/persistence/repositories"
	"masterbike/internal/core/domain"
	"masterbike/internal/core/pricing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RentalService handles bike rental business logic
type RentalService struct {
	bikeRepo   repositories.BikeRepository
	rentalRepo repositories.RentalRepository
}

// NewRentalService creates a new rental service
func NewRentalService(
	bikeRepo repositories.BikeRepository,
	rentalRepo repositories.RentalRepository,
) *RentalService {
	return &RentalService{
		bikeRepo:   bikeRepo,
		rentalRepo: rentalRepo,
	}
}

// RentalInput represents rental creation input
type RentalInput struct {
	BikeID        uint      `json:"bike_id" validate:"required"`
	CustomerName  string    `json:"customer_name" validate:"required,min=2,max=100"`
	CustomerEmail string    `json:"customer_email" validate:"required,email"`
	StartDate     time.Time `json:"start_date" validate:"required"`
	EndDate       time.Time `json:"end_date" validate:"required"`
}

// ListBikes lists the rental fleet
func (s *RentalService) ListBikes(ctx context.Context) ([]*models.Bike, error) {
	return s.bikeRepo.ListRentable(ctx)
}

// QuotePrice computes the rental price for a bike and period.
// Not-ready input yields a zero quote, never an error.
func (s *RentalService) QuotePrice(ctx context.Context, bikeID uint, start, end time.Time) (float64, int, error) {
	bike, err := s.getBike(ctx, bikeID)
	if err != nil {
		return 0, 0, err
	}

	hours := pricing.DurationHours(start, end)
	return pricing.RentalPrice(start, end, bike.HourlyRate), hours, nil
}

// Create confirms a new rental
func (s *RentalService) Create(ctx context.Context, input *RentalInput) (*models.Rental, error) {
	// 1. Validate the rental period
	if input.StartDate.IsZero() || input.EndDate.IsZero() || !input.EndDate.After(input.StartDate) {
		return nil, domain.ErrInvalidRentalPeriod
	}

	// 2. Get the bike and check it is offered for rent
	bike, err := s.getBike(ctx, input.BikeID)
	if err != nil {
		return nil, err
	}
	if !bike.AvailableForRent {
		return nil, domain.ErrBikeNotRentable
	}

	// 3. Recompute duration and price server-side. The client may display
	// its own quote but the stored total always comes from here.
	hours := pricing.DurationHours(input.StartDate, input.EndDate)
	total := pricing.RentalPrice(input.StartDate, input.EndDate, bike.HourlyRate)
	if hours < 1 || total <= 0 {
		return nil, domain.ErrInvalidRentalPeriod
	}

	// 4. Reserve one unit of stock
	if err := s.bikeRepo.AdjustStock(ctx, bike.ID, -1); err != nil {
		return nil, err
	}

	// 5. Persist the rental
	rental := &models.Rental{
		RentalNo:      newOrderNo("RNT"),
		BikeID:        bike.ID,
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		DurationHours: hours,
		TotalPrice:    total,
		Status:        models.RentalStatusConfirmed,
	}

	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		// Give the reserved unit back
		if restoreErr := s.bikeRepo.AdjustStock(ctx, bike.ID, 1); restoreErr != nil {
			log.Printf("❌ Failed to restore stock for bike %d: %v", bike.ID, restoreErr)
		}
		return nil, err
	}

	rental.Bike = bike

	log.Printf("✅ Rental confirmed: %s (bike: %s, %dh, $%.2f)",
		rental.RentalNo, bike.Name, hours, total)

	return rental, nil
}

// Get gets one rental with its bike
func (s *RentalService) Get(ctx context.Context, id uint) (*models.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRentalNotFound
		}
		return nil, err
	}
	return rental, nil
}

// List lists rentals with pagination, newest first
func (s *RentalService) List(ctx context.Context, offset, limit int) ([]*models.Rental, int64, error) {
	return s.rentalRepo.List(ctx, offset, limit)
}

// Complete marks a rental as returned and restores the bike unit
func (s *RentalService) Complete(ctx context.Context, id uint) (*models.Rental, error) {
	rental, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if rental.Status != models.RentalStatusConfirmed {
		return nil, domain.ErrInvalidInput
	}

	if err := s.rentalRepo.UpdateStatus(ctx, rental.ID, models.RentalStatusCompleted); err != nil {
		return nil, err
	}
	if err := s.bikeRepo.AdjustStock(ctx, rental.BikeID, 1); err != nil {
		log.Printf("❌ Failed to restore stock for bike %d: %v", rental.BikeID, err)
	}

	rental.Status = models.RentalStatusCompleted

	log.Printf("✅ Rental completed: %s", rental.RentalNo)
	return rental, nil
}

// Cancel cancels a confirmed rental and restores the bike unit
func (s *RentalService) Cancel(ctx context.Context, id uint) (*models.Rental, error) {
	rental, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if rental.Status != models.RentalStatusConfirmed {
		return nil, domain.ErrInvalidInput
	}

	if err := s.rentalRepo.UpdateStatus(ctx, rental.ID, models.RentalStatusCancelled); err != nil {
		return nil, err
	}
	if err := s.bikeRepo.AdjustStock(ctx, rental.BikeID, 1); err != nil {
		log.Printf("❌ Failed to restore stock for bike %d: %v", rental.BikeID, err)
	}

	rental.Status = models.RentalStatusCancelled

	log.Printf("✅ Rental cancelled: %s", rental.RentalNo)
	return rental, nil
}

func (s *RentalService) getBike(ctx context.Context, id uint) (*models.Bike, error) {
	bike, err := s.bikeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBikeNotFound
		}
		return nil, err
	}
	return bike, nil
}

// newOrderNo builds a short human readable order number
func newOrderNo(prefix string) string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return fmt.Sprintf("%s-%s-%s", prefix, time.Now().Format("20060102"), id[:8])
}
