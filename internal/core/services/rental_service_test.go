package services

import (
	"context"
	"testing"
	"time"

	"masterbike/internal/adapters/persistence/models"
	"masterbike/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRentalService(bikeRepo *MockBikeRepo, rentalRepo *MockRentalRepo) *RentalService {
	return NewRentalService(bikeRepo, rentalRepo)
}

func TestRentalCreate(t *testing.T) {
	start := time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC)

	t.Run("recomputes price server side with hourly round up", func(t *testing.T) {
		bikeRepo := new(MockBikeRepo)
		rentalRepo := new(MockRentalRepo)
		svc := newTestRentalService(bikeRepo, rentalRepo)

		bike := &models.Bike{ID: 1, Name: "Urbana", HourlyRate: 80, Stock: 3, AvailableForRent: true}
		bikeRepo.On("GetByID", mock.Anything, uint(1)).Return(bike, nil)
		bikeRepo.On("AdjustStock", mock.Anything, uint(1), -1).Return(nil)
		rentalRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Rental")).Return(nil)

		// 90 minutes rounds up to 2 billable hours
		rental, err := svc.Create(context.Background(), &RentalInput{
			BikeID:        1,
			CustomerName:  "Ana Torres",
			CustomerEmail: "ana@example.com",
			StartDate:     start,
			EndDate:       start.Add(90 * time.Minute),
		})
		require.NoError(t, err)

		assert.Equal(t, 2, rental.DurationHours)
		assert.Equal(t, 160.0, rental.TotalPrice)
		assert.Equal(t, models.RentalStatusConfirmed, rental.Status)
		assert.NotEmpty(t, rental.RentalNo)
		bikeRepo.AssertExpectations(t)
		rentalRepo.AssertExpectations(t)
	})

	t.Run("rejects inverted period before touching stock", func(t *testing.T) {
		bikeRepo := new(MockBikeRepo)
		rentalRepo := new(MockRentalRepo)
		svc := newTestRentalService(bikeRepo, rentalRepo)

		_, err := svc.Create(context.Background(), &RentalInput{
			BikeID:        1,
			CustomerName:  "Ana Torres",
			CustomerEmail: "ana@example.com",
			StartDate:     start,
			EndDate:       start.Add(-time.Hour),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidRentalPeriod)
		bikeRepo.AssertNotCalled(t, "AdjustStock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects bike not offered for rent", func(t *testing.T) {
		bikeRepo := new(MockBikeRepo)
		rentalRepo := new(MockRentalRepo)
		svc := newTestRentalService(bikeRepo, rentalRepo)

		bike := &models.Bike{ID: 2, HourlyRate: 80, Stock: 3, AvailableForRent: false}
		bikeRepo.On("GetByID", mock.Anything, uint(2)).Return(bike, nil)

		_, err := svc.Create(context.Background(), &RentalInput{
			BikeID:        2,
			CustomerName:  "Ana Torres",
			CustomerEmail: "ana@example.com",
			StartDate:     start,
			EndDate:       start.Add(time.Hour),
		})
		assert.ErrorIs(t, err, domain.ErrBikeNotRentable)
	})

	t.Run("restores stock when persisting fails", func(t *testing.T) {
		bikeRepo := new(MockBikeRepo)
		rentalRepo := new(MockRentalRepo)
		svc := newTestRentalService(bikeRepo, rentalRepo)

		bike := &models.Bike{ID: 1, HourlyRate: 80, Stock: 3, AvailableForRent: true}
		bikeRepo.On("GetByID", mock.Anything, uint(1)).Return(bike, nil)
		bikeRepo.On("AdjustStock", mock.Anything, uint(1), -1).Return(nil)
		bikeRepo.On("AdjustStock", mock.Anything, uint(1), 1).Return(nil)
		rentalRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Rental")).
			Return(assert.AnError)

		_, err := svc.Create(context.Background(), &RentalInput{
			BikeID:        1,
			CustomerName:  "Ana Torres",
			CustomerEmail: "ana@example.com",
			StartDate:     start,
			EndDate:       start.Add(time.Hour),
		})
		assert.Error(t, err)
		bikeRepo.AssertCalled(t, "AdjustStock", mock.Anything, uint(1), 1)
	})
}

func TestRentalComplete(t *testing.T) {
	t.Run("completes a confirmed rental and restores the unit", func(t *testing.T) {
		bikeRepo := new(MockBikeRepo)
		rentalRepo := new(MockRentalRepo)
		svc := newTestRentalService(bikeRepo, rentalRepo)

		rental := &models.Rental{ID: 7, RentalNo: "RNT-X", BikeID: 1, Status: models.RentalStatusConfirmed}
		rentalRepo.On("GetByID", mock.Anything, uint(7)).Return(rental, nil)
		rentalRepo.On("UpdateStatus", mock.Anything, uint(7), models.RentalStatusCompleted).Return(nil)
		bikeRepo.On("AdjustStock", mock.Anything, uint(1), 1).Return(nil)

		updated, err := svc.Complete(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, models.RentalStatusCompleted, updated.Status)
	})

	t.Run("rejects completing a cancelled rental", func(t *testing.T) {
		bikeRepo := new(MockBikeRepo)
		rentalRepo := new(MockRentalRepo)
		svc := newTestRentalService(bikeRepo, rentalRepo)

		rental := &models.Rental{ID: 7, BikeID: 1, Status: models.RentalStatusCancelled}
		rentalRepo.On("GetByID", mock.Anything, uint(7)).Return(rental, nil)

		_, err := svc.Complete(context.Background(), 7)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
