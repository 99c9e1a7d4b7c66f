package service

import (
	"context"
	"time"

	"locmaq-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockQuoteRepo
type MockQuoteRepo struct {
	mock.Mock
}

func (m *MockQuoteRepo) Create(ctx context.Context, q *domain.Quote) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}
func (m *MockQuoteRepo) GetByID(ctx context.Context, id string) (*domain.Quote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}
func (m *MockQuoteRepo) UpdateStatus(ctx context.Context, id string, status domain.QuoteStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockQuoteRepo) SetTerms(ctx context.Context, id string, valueCents int32, conditions string) error {
	args := m.Called(ctx, id, valueCents, conditions)
	return args.Error(0)
}
func (m *MockQuoteRepo) ListByRequester(ctx context.Context, requesterID string) ([]domain.Quote, error) {
	args := m.Called(ctx, requesterID)
	return args.Get(0).([]domain.Quote), args.Error(1)
}
func (m *MockQuoteRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Quote, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Quote), args.Error(1)
}
func (m *MockQuoteRepo) CountByStatus(ctx context.Context) (map[domain.QuoteStatus]int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[domain.QuoteStatus]int32), args.Error(1)
}

// MockMachineRepo
type MockMachineRepo struct {
	mock.Mock
}

func (m *MockMachineRepo) Create(ctx context.Context, machine *domain.Machine) error {
	args := m.Called(ctx, machine)
	return args.Error(0)
}
func (m *MockMachineRepo) GetByID(ctx context.Context, id string) (*domain.Machine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Machine), args.Error(1)
}
func (m *MockMachineRepo) Update(ctx context.Context, machine *domain.Machine) error {
	args := m.Called(ctx, machine)
	return args.Error(0)
}
func (m *MockMachineRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockMachineRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Machine, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Machine), args.Get(1).(int32), args.Error(2)
}
func (m *MockMachineRepo) ListByOwner(ctx context.Context, ownerID string, page, pageSize int32) ([]domain.Machine, int32, error) {
	args := m.Called(ctx, ownerID, page, pageSize)
	return args.Get(0).([]domain.Machine), args.Get(1).(int32), args.Error(2)
}
func (m *MockMachineRepo) Search(ctx context.Context, query, category, workPhase, application string, page, pageSize int32) ([]domain.Machine, int32, error) {
	args := m.Called(ctx, query, category, workPhase, application, page, pageSize)
	return args.Get(0).([]domain.Machine), args.Get(1).(int32), args.Error(2)
}

// MockAddressRepo
type MockAddressRepo struct {
	mock.Mock
}

func (m *MockAddressRepo) Create(ctx context.Context, addr *domain.Address) error {
	args := m.Called(ctx, addr)
	return args.Error(0)
}
func (m *MockAddressRepo) GetByID(ctx context.Context, id string) (*domain.Address, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Address), args.Error(1)
}
func (m *MockAddressRepo) ListByUser(ctx context.Context, userID string) ([]domain.Address, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Address), args.Error(1)
}
func (m *MockAddressRepo) Delete(ctx context.Context, id, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Upsert(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, userID string, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}
func (m *MockNotificationRepo) CountUnread(ctx context.Context, userID string) (int32, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockNotificationRepo) ListIDsOlderThan(ctx context.Context, cutoff time.Time) ([]string, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).([]string), args.Error(1)
}

// MockRetryRepo
type MockRetryRepo struct {
	mock.Mock
}

func (m *MockRetryRepo) Create(ctx context.Context, r *domain.NotificationRetry) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockRetryRepo) ListPending(ctx context.Context, maxRetries int32) ([]domain.NotificationRetry, error) {
	args := m.Called(ctx, maxRetries)
	return args.Get(0).([]domain.NotificationRetry), args.Error(1)
}
func (m *MockRetryRepo) CountPending(ctx context.Context, maxRetries int32) (int32, error) {
	args := m.Called(ctx, maxRetries)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockRetryRepo) CountDeadLetters(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(int32), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendQuoteNotification(ctx context.Context, toEmail, toName, title, body string) error {
	args := m.Called(ctx, toEmail, toName, title, body)
	return args.Error(0)
}

// MockPushService
type MockPushService struct {
	mock.Mock
}

func (m *MockPushService) SendPush(ctx context.Context, deviceToken, title, body string, data map[string]string) error {
	args := m.Called(ctx, deviceToken, title, body, data)
	return args.Error(0)
}
