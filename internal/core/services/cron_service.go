package services

import (
	"context"
	"log"
	"time"

	"masterbike/internal/adapters/persistence/models"
	"masterbike/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// CronService runs periodic housekeeping jobs
type CronService struct {
	cron             *cron.Cron
	rentalRepo       repositories.RentalRepository
	bikeRepo         repositories.BikeRepository
	refreshTokenRepo repositories.RefreshTokenRepository
}

// NewCronService creates a new cron service
func NewCronService(
	rentalRepo repositories.RentalRepository,
	bikeRepo repositories.BikeRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
) *CronService {
	return &CronService{
		cron:             cron.New(),
		rentalRepo:       rentalRepo,
		bikeRepo:         bikeRepo,
		refreshTokenRepo: refreshTokenRepo,
	}
}

// Start registers and starts all scheduled jobs
func (s *CronService) Start() error {
	// Every 10 minutes: close rentals whose end time has passed
	if _, err := s.cron.AddFunc("*/10 * * * *", s.completeExpiredRentals); err != nil {
		return err
	}

	// Daily at 03:00: purge expired refresh tokens
	if _, err := s.cron.AddFunc("0 3 * * *", s.purgeExpiredTokens); err != nil {
		return err
	}

	s.cron.Start()
	log.Println("✅ Cron jobs started")
	return nil
}

// Stop stops the scheduler and waits for running jobs
func (s *CronService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("🛑 Cron jobs stopped")
}

// completeExpiredRentals marks overdue confirmed rentals as completed
// and returns their bikes to stock
func (s *CronService) completeExpiredRentals() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	rentals, err := s.rentalRepo.ListExpiredConfirmed(ctx, time.Now())
	if err != nil {
		log.Printf("❌ Expired rental scan failed: %v", err)
		return
	}

	for _, rental := range rentals {
		if err := s.rentalRepo.UpdateStatus(ctx, rental.ID, models.RentalStatusCompleted); err != nil {
			log.Printf("❌ Failed to complete rental %s: %v", rental.RentalNo, err)
			continue
		}
		if err := s.bikeRepo.AdjustStock(ctx, rental.BikeID, 1); err != nil {
			log.Printf("❌ Failed to restore stock for bike %d: %v", rental.BikeID, err)
		}
	}

	if len(rentals) > 0 {
		log.Printf("✅ Completed %d expired rentals", len(rentals))
	}
}

// purgeExpiredTokens deletes refresh tokens past their expiry
func (s *CronService) purgeExpiredTokens() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	deleted, err := s.refreshTokenRepo.DeleteExpired(ctx, time.Now())
	if err != nil {
		log.Printf("❌ Token purge failed: %v", err)
		return
	}

	if deleted > 0 {
		log.Printf("✅ Purged %d expired refresh tokens", deleted)
	}
}
