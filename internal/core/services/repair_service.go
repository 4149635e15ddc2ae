package services

import (
	"context"
	"errors"
	"log"

	"masterbike/internal/adapters/persistence/models"
	"masterbike/internal/adapters/persistence/repositories"
	"masterbike/internal/core/domain"

	"gorm.io/gorm"
)

// RepairService handles repair ticket business logic
type RepairService struct {
	repairRepo repositories.RepairRepository
}

// NewRepairService creates a new repair service
func NewRepairService(repairRepo repositories.RepairRepository) *RepairService {
	return &RepairService{repairRepo: repairRepo}
}

// RepairInput represents repair ticket creation input
type RepairInput struct {
	BikeType           string `json:"bike_type" validate:"required,min=2,max=50"`
	BikeBrand          string `json:"bike_brand" validate:"required,min=2,max=50"`
	ProblemDescription string `json:"problem_description" validate:"required,min=10"`
	ContactName        string `json:"contact_name" validate:"required,min=2,max=100"`
	ContactEmail       string `json:"contact_email" validate:"required,email"`
	ContactPhone       string `json:"contact_phone" validate:"omitempty,max=30"`
}

// RepairStatusInput represents a status transition request
type RepairStatusInput struct {
	Status string `json:"status" validate:"required"`
}

// Create opens a new repair ticket in Pendiente status
func (s *RepairService) Create(ctx context.Context, input *RepairInput) (*models.RepairRequest, error) {
	repair := &models.RepairRequest{
		TicketNo:           newOrderNo("REP"),
		BikeType:           input.BikeType,
		BikeBrand:          input.BikeBrand,
		ProblemDescription: input.ProblemDescription,
		ContactName:        input.ContactName,
		ContactEmail:       input.ContactEmail,
		ContactPhone:       input.ContactPhone,
		Status:             models.RepairStatusPending,
	}

	if err := s.repairRepo.Create(ctx, repair); err != nil {
		return nil, err
	}

	log.Printf("✅ Repair ticket opened: %s (%s %s)", repair.TicketNo, repair.BikeBrand, repair.BikeType)
	return repair, nil
}

// Get gets one repair ticket
func (s *RepairService) Get(ctx context.Context, id uint) (*models.RepairRequest, error) {
	repair, err := s.repairRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRepairNotFound
		}
		return nil, err
	}
	return repair, nil
}

// List lists repair tickets with pagination, newest first
func (s *RepairService) List(ctx context.Context, offset, limit int) ([]*models.RepairRequest, int64, error) {
	return s.repairRepo.List(ctx, offset, limit)
}

// UpdateStatus moves a ticket to another status in the closed set
func (s *RepairService) UpdateStatus(ctx context.Context, id uint, input *RepairStatusInput) (*models.RepairRequest, error) {
	// 1. Status must belong to the closed set
	if !models.IsValidRepairStatus(input.Status) {
		return nil, domain.ErrInvalidRepairStatus
	}

	// 2. Get the ticket
	repair, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	// 3. Completed and cancelled tickets are terminal
	if repair.Status == models.RepairStatusCompleted || repair.Status == models.RepairStatusCancelled {
		return nil, domain.ErrInvalidRepairStatus
	}

	// 4. Persist the transition
	repair.Status = input.Status
	if err := s.repairRepo.Update(ctx, repair); err != nil {
		return nil, err
	}

	log.Printf("✅ Repair ticket %s moved to %s", repair.TicketNo, repair.Status)
	return repair, nil
}
