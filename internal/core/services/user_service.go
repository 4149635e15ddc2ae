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

// UserService handles account administration
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// List lists accounts with pagination
func (s *UserService) List(ctx context.Context, offset, limit int) ([]*models.UserResponse, int64, error) {
	users, total, err := s.userRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	out := make([]*models.UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, user.ToResponse())
	}
	return out, total, nil
}

// SetActive enables or disables an account
func (s *UserService) SetActive(ctx context.Context, id uint, active bool) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	user.IsActive = active
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("✅ User %d active=%t", user.ID, active)
	return user.ToResponse(), nil
}

// Delete removes an account
func (s *UserService) Delete(ctx context.Context, id uint) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	log.Printf("✅ User deleted: %d", id)
	return nil
}
