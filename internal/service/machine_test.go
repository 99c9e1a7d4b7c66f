package service

import (
	"context"
	"testing"

	"locmaq-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateRental(t *testing.T) {
	machineRepo := new(MockMachineRepo)
	svc := NewMachineService(machineRepo)
	ctx := context.Background()

	machineRepo.On("GetByID", ctx, "machine-1").Return(&domain.Machine{
		ID:             "machine-1",
		Name:           "Escavadeira",
		DailyRateCents: 10000,
	}, nil)

	est, err := svc.EstimateRental(ctx, "machine-1", "2026-03-01", "2026-03-10")

	require.NoError(t, err)
	assert.Equal(t, 1, est.Weeks)
	assert.Equal(t, 3, est.Days)
	assert.Equal(t, int32(100000), est.TotalCost)
}

func TestEstimateRental_BadDates(t *testing.T) {
	machineRepo := new(MockMachineRepo)
	svc := NewMachineService(machineRepo)
	ctx := context.Background()
	machineRepo.On("GetByID", ctx, "machine-1").Return(&domain.Machine{ID: "machine-1", DailyRateCents: 10000}, nil)

	_, err := svc.EstimateRental(ctx, "machine-1", "01/03/2026", "2026-03-10")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.EstimateRental(ctx, "machine-1", "2026-03-10", "2026-03-01")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEstimateRental_MachineNotFound(t *testing.T) {
	machineRepo := new(MockMachineRepo)
	svc := NewMachineService(machineRepo)
	ctx := context.Background()

	machineRepo.On("GetByID", ctx, "missing").Return(nil, domain.ErrNotFound)

	_, err := svc.EstimateRental(ctx, "missing", "2026-03-01", "2026-03-10")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateMachine_NotOwner(t *testing.T) {
	machineRepo := new(MockMachineRepo)
	svc := NewMachineService(machineRepo)
	ctx := context.Background()

	machineRepo.On("GetByID", ctx, "machine-1").Return(&domain.Machine{ID: "machine-1", OwnerID: "owner-1"}, nil)

	err := svc.UpdateMachine(ctx, "intruder", &domain.Machine{ID: "machine-1", Name: "Guindaste"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	machineRepo.AssertNotCalled(t, "Update", ctx, "machine-1")
}

func TestAddMachine_Validation(t *testing.T) {
	machineRepo := new(MockMachineRepo)
	svc := NewMachineService(machineRepo)

	err := svc.AddMachine(context.Background(), &domain.Machine{Name: "Escavadeira"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	err = svc.AddMachine(context.Background(), &domain.Machine{
		Name: "Escavadeira", Category: "earthmoving", OwnerID: "owner-1", DailyRateCents: -1,
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
