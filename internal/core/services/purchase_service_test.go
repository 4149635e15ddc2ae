package services

import (
	"context"
	"testing"
	"time"

	"masterbike/internal/adapters/persistence/models"
	"masterbike/internal/core/domain"
	"masterbike/internal/core/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func nextSaturday(now time.Time) time.Time {
	d := now.AddDate(0, 0, 1)
	for d.Weekday() != time.Saturday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

func validPurchaseInput(lines ...PurchaseLineInput) *PurchaseInput {
	return &PurchaseInput{
		CustomerName:    "Ana Torres",
		CustomerEmail:   "ana@example.com",
		CustomerAddress: "Av. Reforma 123, CDMX",
		DeliveryDate:    pricing.NextEligibleDeliveryDate(time.Now()),
		Lines:           lines,
	}
}

func TestPurchaseCreate(t *testing.T) {
	t.Run("recomputes total from catalog prices", func(t *testing.T) {
		inventoryRepo := new(MockInventoryRepo)
		purchaseRepo := new(MockPurchaseRepo)
		svc := NewPurchaseService(inventoryRepo, purchaseRepo)

		inventoryRepo.On("GetByID", mock.Anything, uint(1)).
			Return(&models.InventoryItem{ID: 1, Name: "Casco", Price: 850, Stock: 10}, nil)
		inventoryRepo.On("GetByID", mock.Anything, uint(2)).
			Return(&models.InventoryItem{ID: 2, Name: "Cadena", Price: 320, Stock: 5}, nil)
		purchaseRepo.On("CreateWithStock", mock.Anything, mock.AnythingOfType("*models.Purchase")).
			Return(nil)

		purchase, err := svc.Create(context.Background(), validPurchaseInput(
			PurchaseLineInput{ItemID: 1, Quantity: 2},
			PurchaseLineInput{ItemID: 2, Quantity: 1},
		))
		require.NoError(t, err)

		// 2 x 850 + 1 x 320, from the stored prices
		assert.Equal(t, 2020.0, purchase.TotalAmount)
		require.Len(t, purchase.Items, 2)
		assert.Equal(t, 850.0, purchase.Items[0].UnitPrice)
		assert.Equal(t, 1700.0, purchase.Items[0].LineTotal)
		assert.NotEmpty(t, purchase.OrderNo)
		purchaseRepo.AssertExpectations(t)
	})

	t.Run("rejects weekend delivery date before touching the catalog", func(t *testing.T) {
		inventoryRepo := new(MockInventoryRepo)
		purchaseRepo := new(MockPurchaseRepo)
		svc := NewPurchaseService(inventoryRepo, purchaseRepo)

		input := validPurchaseInput(PurchaseLineInput{ItemID: 1, Quantity: 1})
		input.DeliveryDate = nextSaturday(time.Now())

		_, err := svc.Create(context.Background(), input)
		assert.ErrorIs(t, err, domain.ErrDeliveryDateInvalid)
		inventoryRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		purchaseRepo.AssertNotCalled(t, "CreateWithStock", mock.Anything, mock.Anything)
	})

	t.Run("rejects delivery date in the past", func(t *testing.T) {
		inventoryRepo := new(MockInventoryRepo)
		purchaseRepo := new(MockPurchaseRepo)
		svc := NewPurchaseService(inventoryRepo, purchaseRepo)

		input := validPurchaseInput(PurchaseLineInput{ItemID: 1, Quantity: 1})
		input.DeliveryDate = time.Date(2020, 3, 2, 0, 0, 0, 0, time.UTC)

		_, err := svc.Create(context.Background(), input)
		assert.ErrorIs(t, err, domain.ErrDeliveryDateInvalid)
		purchaseRepo.AssertNotCalled(t, "CreateWithStock", mock.Anything, mock.Anything)
	})

	t.Run("rejects empty cart", func(t *testing.T) {
		svc := NewPurchaseService(new(MockInventoryRepo), new(MockPurchaseRepo))

		_, err := svc.Create(context.Background(), validPurchaseInput())
		assert.ErrorIs(t, err, domain.ErrEmptyCart)
	})

	t.Run("short stock on a later line persists nothing", func(t *testing.T) {
		inventoryRepo := new(MockInventoryRepo)
		purchaseRepo := new(MockPurchaseRepo)
		svc := NewPurchaseService(inventoryRepo, purchaseRepo)

		inventoryRepo.On("GetByID", mock.Anything, uint(1)).
			Return(&models.InventoryItem{ID: 1, Name: "Casco", Price: 850, Stock: 10}, nil)
		inventoryRepo.On("GetByID", mock.Anything, uint(2)).
			Return(&models.InventoryItem{ID: 2, Name: "Cadena", Price: 320, Stock: 1}, nil)

		_, err := svc.Create(context.Background(), validPurchaseInput(
			PurchaseLineInput{ItemID: 1, Quantity: 1},
			PurchaseLineInput{ItemID: 2, Quantity: 3},
		))
		assert.ErrorIs(t, err, domain.ErrInsufficientStock)
		purchaseRepo.AssertNotCalled(t, "CreateWithStock", mock.Anything, mock.Anything)
	})

	t.Run("surfaces oversell detected at persist time", func(t *testing.T) {
		inventoryRepo := new(MockInventoryRepo)
		purchaseRepo := new(MockPurchaseRepo)
		svc := NewPurchaseService(inventoryRepo, purchaseRepo)

		inventoryRepo.On("GetByID", mock.Anything, uint(1)).
			Return(&models.InventoryItem{ID: 1, Name: "Casco", Price: 850, Stock: 2}, nil)
		// A concurrent checkout drained the stock between validation and commit
		purchaseRepo.On("CreateWithStock", mock.Anything, mock.AnythingOfType("*models.Purchase")).
			Return(domain.ErrInsufficientStock)

		_, err := svc.Create(context.Background(), validPurchaseInput(
			PurchaseLineInput{ItemID: 1, Quantity: 2},
		))
		assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	})

	t.Run("rejects unknown item", func(t *testing.T) {
		inventoryRepo := new(MockInventoryRepo)
		purchaseRepo := new(MockPurchaseRepo)
		svc := NewPurchaseService(inventoryRepo, purchaseRepo)

		inventoryRepo.On("GetByID", mock.Anything, uint(99)).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Create(context.Background(), validPurchaseInput(
			PurchaseLineInput{ItemID: 99, Quantity: 1},
		))
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
		purchaseRepo.AssertNotCalled(t, "CreateWithStock", mock.Anything, mock.Anything)
	})
}
