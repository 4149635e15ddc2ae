package services

import (
	"context"
	"testing"

	"masterbike/internal/adapters/persistence/models"
	"masterbike/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRepairCreate(t *testing.T) {
	repairRepo := new(MockRepairRepo)
	svc := NewRepairService(repairRepo)

	repairRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.RepairRequest")).Return(nil)

	repair, err := svc.Create(context.Background(), &RepairInput{
		BikeType:           "Montaña",
		BikeBrand:          "Alubike",
		ProblemDescription: "El cambio trasero no entra en los piñones grandes",
		ContactName:        "Luis Pérez",
		ContactEmail:       "luis@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, models.RepairStatusPending, repair.Status)
	assert.NotEmpty(t, repair.TicketNo)
}

func TestRepairUpdateStatus(t *testing.T) {
	tests := []struct {
		name    string
		current string
		next    string
		wantErr error
	}{
		{"pending to in progress", models.RepairStatusPending, models.RepairStatusInProgress, nil},
		{"in progress to completed", models.RepairStatusInProgress, models.RepairStatusCompleted, nil},
		{"pending to cancelled", models.RepairStatusPending, models.RepairStatusCancelled, nil},
		{"unknown status rejected", models.RepairStatusPending, "Arreglada", domain.ErrInvalidRepairStatus},
		{"completed is terminal", models.RepairStatusCompleted, models.RepairStatusInProgress, domain.ErrInvalidRepairStatus},
		{"cancelled is terminal", models.RepairStatusCancelled, models.RepairStatusPending, domain.ErrInvalidRepairStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repairRepo := new(MockRepairRepo)
			svc := NewRepairService(repairRepo)

			ticket := &models.RepairRequest{ID: 3, TicketNo: "REP-X", Status: tt.current}
			repairRepo.On("GetByID", mock.Anything, uint(3)).Return(ticket, nil).Maybe()
			repairRepo.On("Update", mock.Anything, mock.AnythingOfType("*models.RepairRequest")).Return(nil).Maybe()

			updated, err := svc.UpdateStatus(context.Background(), 3, &RepairStatusInput{Status: tt.next})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.next, updated.Status)
		})
	}
}
