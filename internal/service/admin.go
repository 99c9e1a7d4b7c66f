package service

import (
	"context"

	"locmaq-backend/internal/domain"
	"locmaq-backend/internal/repository"
)

type adminService struct {
	quoteRepo   repository.QuoteRepository
	machineRepo repository.MachineRepository
	retryRepo   repository.RetryRepository
}

func NewAdminService(
	quoteRepo repository.QuoteRepository,
	machineRepo repository.MachineRepository,
	retryRepo repository.RetryRepository,
) AdminService {
	return &adminService{
		quoteRepo:   quoteRepo,
		machineRepo: machineRepo,
		retryRepo:   retryRepo,
	}
}

func (s *adminService) GetDashboard(ctx context.Context) (*DashboardSummary, error) {
	byStatus, err := s.quoteRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	_, machineCount, err := s.machineRepo.List(ctx, 1, 1)
	if err != nil {
		return nil, err
	}
	pending, err := s.retryRepo.CountPending(ctx, domain.MaxNotificationRetries)
	if err != nil {
		return nil, err
	}
	dead, err := s.retryRepo.CountDeadLetters(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardSummary{
		QuotesByStatus: byStatus,
		MachineCount:   machineCount,
		PendingRetries: pending,
		DeadLetters:    dead,
	}, nil
}
