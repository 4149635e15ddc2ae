package services

import (
	"context"
	"time"

	"masterbike/internal/adapters/persistence/models"

	"github.com/stretchr/testify/mock"
)

// MockBikeRepo
type MockBikeRepo struct {
	mock.Mock
}

func (m *MockBikeRepo) Create(ctx context.Context, bike *models.Bike) error {
	args := m.Called(ctx, bike)
	return args.Error(0)
}
func (m *MockBikeRepo) GetByID(ctx context.Context, id uint) (*models.Bike, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bike), args.Error(1)
}
func (m *MockBikeRepo) List(ctx context.Context) ([]*models.Bike, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Bike), args.Error(1)
}
func (m *MockBikeRepo) ListRentable(ctx context.Context) ([]*models.Bike, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Bike), args.Error(1)
}
func (m *MockBikeRepo) Update(ctx context.Context, bike *models.Bike) error {
	args := m.Called(ctx, bike)
	return args.Error(0)
}
func (m *MockBikeRepo) AdjustStock(ctx context.Context, id uint, delta int) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Create(ctx context.Context, rental *models.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) GetByID(ctx context.Context, id uint) (*models.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rental), args.Error(1)
}
func (m *MockRentalRepo) List(ctx context.Context, offset, limit int) ([]*models.Rental, int64, error) {
	args := m.Called(ctx, offset, limit)
	return args.Get(0).([]*models.Rental), args.Get(1).(int64), args.Error(2)
}
func (m *MockRentalRepo) ListExpiredConfirmed(ctx context.Context, now time.Time) ([]*models.Rental, error) {
	args := m.Called(ctx, now)
	return args.Get(0).([]*models.Rental), args.Error(1)
}
func (m *MockRentalRepo) UpdateStatus(ctx context.Context, id uint, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockInventoryRepo
type MockInventoryRepo struct {
	mock.Mock
}

func (m *MockInventoryRepo) Create(ctx context.Context, item *models.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockInventoryRepo) GetByID(ctx context.Context, id uint) (*models.InventoryItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InventoryItem), args.Error(1)
}
func (m *MockInventoryRepo) List(ctx context.Context) ([]*models.InventoryItem, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.InventoryItem), args.Error(1)
}
func (m *MockInventoryRepo) ListByCategory(ctx context.Context, category string) ([]*models.InventoryItem, error) {
	args := m.Called(ctx, category)
	return args.Get(0).([]*models.InventoryItem), args.Error(1)
}
func (m *MockInventoryRepo) Update(ctx context.Context, item *models.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockInventoryRepo) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPurchaseRepo
type MockPurchaseRepo struct {
	mock.Mock
}

func (m *MockPurchaseRepo) Create(ctx context.Context, purchase *models.Purchase) error {
	args := m.Called(ctx, purchase)
	return args.Error(0)
}
func (m *MockPurchaseRepo) CreateWithStock(ctx context.Context, purchase *models.Purchase) error {
	args := m.Called(ctx, purchase)
	return args.Error(0)
}
func (m *MockPurchaseRepo) GetByID(ctx context.Context, id uint) (*models.Purchase, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Purchase), args.Error(1)
}
func (m *MockPurchaseRepo) List(ctx context.Context, offset, limit int) ([]*models.Purchase, int64, error) {
	args := m.Called(ctx, offset, limit)
	return args.Get(0).([]*models.Purchase), args.Get(1).(int64), args.Error(2)
}

// MockRepairRepo
type MockRepairRepo struct {
	mock.Mock
}

func (m *MockRepairRepo) Create(ctx context.Context, repair *models.RepairRequest) error {
	args := m.Called(ctx, repair)
	return args.Error(0)
}
func (m *MockRepairRepo) GetByID(ctx context.Context, id uint) (*models.RepairRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RepairRequest), args.Error(1)
}
func (m *MockRepairRepo) List(ctx context.Context, offset, limit int) ([]*models.RepairRequest, int64, error) {
	args := m.Called(ctx, offset, limit)
	return args.Get(0).([]*models.RepairRequest), args.Get(1).(int64), args.Error(2)
}
func (m *MockRepairRepo) Update(ctx context.Context, repair *models.RepairRequest) error {
	args := m.Called(ctx, repair)
	return args.Error(0)
}
