package service

import (
	"context"

	"locmaq-backend/internal/domain"
	"locmaq-backend/internal/utils"
)

// CreateQuoteRequest carries the renter-supplied fields for a new quote.
type CreateQuoteRequest struct {
	MachineID string
	AddressID string
	Purpose   string
	StartDate string // "2006-01-02"
	EndDate   string // optional
	Notes     string
}

type QuoteService interface {
	CreateQuote(ctx context.Context, requesterID string, req *CreateQuoteRequest) (*domain.Quote, error)
	SubmitTerms(ctx context.Context, ownerID, quoteID string, valueCents int32, conditions string) (*domain.Quote, error)
	UpdateStatus(ctx context.Context, actorID, quoteID string, newStatus domain.QuoteStatus) (*domain.Quote, error)
	ListForUser(ctx context.Context, userID string) ([]domain.Quote, error)
	ListForOwner(ctx context.Context, ownerID string) ([]domain.Quote, error)
	GetQuote(ctx context.Context, userID, quoteID string) (*domain.Quote, error)
}

type MachineService interface {
	AddMachine(ctx context.Context, m *domain.Machine) error
	GetMachine(ctx context.Context, id string) (*domain.Machine, error)
	UpdateMachine(ctx context.Context, ownerID string, m *domain.Machine) error
	DeleteMachine(ctx context.Context, ownerID, id string) error
	ListMachines(ctx context.Context, page, pageSize int32) ([]domain.Machine, int32, error)
	ListMyMachines(ctx context.Context, ownerID string, page, pageSize int32) ([]domain.Machine, int32, error)
	SearchMachines(ctx context.Context, query, category, workPhase, application string, page, pageSize int32) ([]domain.Machine, int32, error)
	EstimateRental(ctx context.Context, machineID, startDate, endDate string) (*utils.RentalEstimate, error)
}

type AddressService interface {
	AddAddress(ctx context.Context, addr *domain.Address) error
	ListMyAddresses(ctx context.Context, userID string) ([]domain.Address, error)
	DeleteAddress(ctx context.Context, userID, addressID string) error
}

type NotificationService interface {
	GetNotifications(ctx context.Context, userID string, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID, notificationID string) error
	CountUnread(ctx context.Context, userID string) (int32, error)
}

// DashboardSummary aggregates counts for the admin dashboard.
type DashboardSummary struct {
	QuotesByStatus map[domain.QuoteStatus]int32 `json:"quotes_by_status"`
	MachineCount   int32                        `json:"machine_count"`
	PendingRetries int32                        `json:"pending_retries"`
	DeadLetters    int32                        `json:"dead_letters"`
}

type AdminService interface {
	GetDashboard(ctx context.Context) (*DashboardSummary, error)
}

type EmailService interface {
	SendQuoteNotification(ctx context.Context, toEmail, toName, title, body string) error
}

type PushService interface {
	SendPush(ctx context.Context, deviceToken, title, body string, data map[string]string) error
}
