package jobs

import (
	"context"
	"time"

	"locmaq-backend/internal/domain"
	"locmaq-backend/internal/repository"

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

// batchOp records one staged operation for later inspection.
type batchOp struct {
	kind  string // create_notification, delete_retry, update_retry, dead_letter, delete_notification
	id    string
	note  *domain.Notification
	retry *domain.NotificationRetry
}

// recordingBatch stages operations in memory and records commit sizes on its
// parent writer. failOnCommit triggers an error on the Nth commit (1-based).
type recordingBatch struct {
	writer *recordingBatchWriter
	ops    []batchOp
}

func (b *recordingBatch) CreateNotification(n *domain.Notification) {
	b.ops = append(b.ops, batchOp{kind: "create_notification", note: n})
}
func (b *recordingBatch) DeleteRetry(id string) {
	b.ops = append(b.ops, batchOp{kind: "delete_retry", id: id})
}
func (b *recordingBatch) UpdateRetry(r *domain.NotificationRetry) {
	b.ops = append(b.ops, batchOp{kind: "update_retry", retry: r})
}
func (b *recordingBatch) MoveToDeadLetter(r *domain.NotificationRetry) {
	b.ops = append(b.ops, batchOp{kind: "dead_letter", retry: r})
}
func (b *recordingBatch) DeleteNotification(id string) {
	b.ops = append(b.ops, batchOp{kind: "delete_notification", id: id})
}
func (b *recordingBatch) Commit(ctx context.Context) error {
	b.writer.commits++
	if b.writer.failOnCommit > 0 && b.writer.commits == b.writer.failOnCommit {
		return b.writer.commitErr
	}
	b.writer.commitSizes = append(b.writer.commitSizes, len(b.ops))
	b.writer.committed = append(b.writer.committed, b.ops...)
	b.ops = nil
	return nil
}

type recordingBatchWriter struct {
	commits      int
	commitSizes  []int
	committed    []batchOp
	failOnCommit int
	commitErr    error
}

func (w *recordingBatchWriter) NewBatch() repository.Batch {
	return &recordingBatch{writer: w}
}

func (w *recordingBatchWriter) committedOfKind(kind string) []batchOp {
	var out []batchOp
	for _, op := range w.committed {
		if op.kind == kind {
			out = append(out, op)
		}
	}
	return out
}
