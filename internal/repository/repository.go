package repository

import (
	"context"
	"time"

	"locmaq-backend/internal/domain"
)

type UserRepository interface {
	Upsert(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type AddressRepository interface {
	Create(ctx context.Context, addr *domain.Address) error
	GetByID(ctx context.Context, id string) (*domain.Address, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Address, error)
	Delete(ctx context.Context, id, userID string) error
}

type MachineRepository interface {
	Create(ctx context.Context, m *domain.Machine) error
	GetByID(ctx context.Context, id string) (*domain.Machine, error)
	Update(ctx context.Context, m *domain.Machine) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, page, pageSize int32) ([]domain.Machine, int32, error)
	ListByOwner(ctx context.Context, ownerID string, page, pageSize int32) ([]domain.Machine, int32, error)
	Search(ctx context.Context, query, category, workPhase, application string, page, pageSize int32) ([]domain.Machine, int32, error)
}

type QuoteRepository interface {
	Create(ctx context.Context, q *domain.Quote) error
	GetByID(ctx context.Context, id string) (*domain.Quote, error)
	UpdateStatus(ctx context.Context, id string, status domain.QuoteStatus) error
	SetTerms(ctx context.Context, id string, valueCents int32, conditions string) error
	ListByRequester(ctx context.Context, requesterID string) ([]domain.Quote, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Quote, error)
	CountByStatus(ctx context.Context) (map[domain.QuoteStatus]int32, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	List(ctx context.Context, userID string, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID string) error
	CountUnread(ctx context.Context, userID string) (int32, error)
	ListIDsOlderThan(ctx context.Context, cutoff time.Time) ([]string, error)
}

type RetryRepository interface {
	Create(ctx context.Context, r *domain.NotificationRetry) error
	// ListPending returns, in arrival order, retry records whose retry count
	// is still below the ceiling.
	ListPending(ctx context.Context, maxRetries int32) ([]domain.NotificationRetry, error)
	CountPending(ctx context.Context, maxRetries int32) (int32, error)
	CountDeadLetters(ctx context.Context) (int32, error)
}

// Batch stages write operations and commits them as one group. Staged
// operations execute in order inside a single transaction on Commit.
type Batch interface {
	CreateNotification(n *domain.Notification)
	DeleteRetry(id string)
	UpdateRetry(r *domain.NotificationRetry)
	MoveToDeadLetter(r *domain.NotificationRetry)
	DeleteNotification(id string)
	Commit(ctx context.Context) error
}

// BatchWriter opens write batches for the sweep jobs.
type BatchWriter interface {
	NewBatch() Batch
}
