package service

import (
	"context"
	"fmt"
	"time"

	"locmaq-backend/internal/domain"
	"locmaq-backend/internal/repository"
	"locmaq-backend/internal/utils"
)

type machineService struct {
	machineRepo repository.MachineRepository
}

func NewMachineService(machineRepo repository.MachineRepository) MachineService {
	return &machineService{machineRepo: machineRepo}
}

func (s *machineService) AddMachine(ctx context.Context, m *domain.Machine) error {
	if m.Name == "" || m.Category == "" || m.OwnerID == "" {
		return fmt.Errorf("%w: name, category and owner are required", domain.ErrValidation)
	}
	if m.DailyRateCents < 0 {
		return fmt.Errorf("%w: daily rate cannot be negative", domain.ErrValidation)
	}
	return s.machineRepo.Create(ctx, m)
}

func (s *machineService) GetMachine(ctx context.Context, id string) (*domain.Machine, error) {
	return s.machineRepo.GetByID(ctx, id)
}

func (s *machineService) UpdateMachine(ctx context.Context, ownerID string, m *domain.Machine) error {
	existing, err := s.machineRepo.GetByID(ctx, m.ID)
	if err != nil {
		return err
	}
	if existing.OwnerID != ownerID {
		return domain.ErrUnauthorized
	}
	return s.machineRepo.Update(ctx, m)
}

func (s *machineService) DeleteMachine(ctx context.Context, ownerID, id string) error {
	existing, err := s.machineRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.OwnerID != ownerID {
		return domain.ErrUnauthorized
	}
	return s.machineRepo.Delete(ctx, id)
}

func (s *machineService) ListMachines(ctx context.Context, page, pageSize int32) ([]domain.Machine, int32, error) {
	return s.machineRepo.List(ctx, normalizePage(page), normalizePageSize(pageSize))
}

func (s *machineService) ListMyMachines(ctx context.Context, ownerID string, page, pageSize int32) ([]domain.Machine, int32, error) {
	return s.machineRepo.ListByOwner(ctx, ownerID, normalizePage(page), normalizePageSize(pageSize))
}

func (s *machineService) SearchMachines(ctx context.Context, query, category, workPhase, application string, page, pageSize int32) ([]domain.Machine, int32, error) {
	return s.machineRepo.Search(ctx, query, category, workPhase, application, normalizePage(page), normalizePageSize(pageSize))
}

func (s *machineService) EstimateRental(ctx context.Context, machineID, startDate, endDate string) (*utils.RentalEstimate, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start date: %v", domain.ErrValidation, err)
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid end date: %v", domain.ErrValidation, err)
	}

	machine, err := s.machineRepo.GetByID(ctx, machineID)
	if err != nil {
		return nil, err
	}

	est, err := utils.EstimateRentalCost(machine, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return &est, nil
}

func normalizePage(page int32) int32 {
	if page < 1 {
		return 1
	}
	return page
}

func normalizePageSize(pageSize int32) int32 {
	if pageSize < 1 || pageSize > 100 {
		return 20
	}
	return pageSize
}
