package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"locmaq-backend/internal/domain"
	"locmaq-backend/internal/logger"
	"locmaq-backend/internal/repository"

	"github.com/google/uuid"
)

// batch stages write operations and runs them inside a single transaction on
// Commit. Grouping is a throughput concern; the operations staged for one
// retry record always land in the same batch, so its insert-notification and
// delete-retry pair commits atomically.
type batch struct {
	db  *sql.DB
	ops []func(ctx context.Context, tx *sql.Tx) error
}

func newBatch(db *sql.DB) repository.Batch {
	return &batch{db: db}
}

func (b *batch) CreateNotification(n *domain.Notification) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	b.ops = append(b.ops, func(ctx context.Context, tx *sql.Tx) error {
		data, err := json.Marshal(n.Data)
		if err != nil {
			return fmt.Errorf("failed to marshal notification data: %w", err)
		}
		query := `INSERT INTO notifications (id, user_id, type, title, body, read, data, created_on)
		          VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())`
		_, err = tx.ExecContext(ctx, query, n.ID, n.UserID, n.Type, n.Title, n.Body, n.Read, data)
		return err
	})
}

func (b *batch) DeleteRetry(id string) {
	b.ops = append(b.ops, func(ctx context.Context, tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `DELETE FROM notification_retries WHERE id = $1`, id)
		return err
	})
}

func (b *batch) UpdateRetry(r *domain.NotificationRetry) {
	b.ops = append(b.ops, func(ctx context.Context, tx *sql.Tx) error {
		query := `UPDATE notification_retries SET retry_count = $1, last_error = $2, last_retry = $3 WHERE id = $4`
		_, err := tx.ExecContext(ctx, query, r.RetryCount, r.LastError, r.LastRetry, r.ID)
		return err
	})
}

func (b *batch) MoveToDeadLetter(r *domain.NotificationRetry) {
	b.ops = append(b.ops, func(ctx context.Context, tx *sql.Tx) error {
		query := `INSERT INTO dead_letters (id, quote_id, quote_status, retry_count, last_error, abandoned_on)
		          VALUES ($1, $2, $3, $4, $5, NOW())`
		if _, err := tx.ExecContext(ctx, query, r.ID, r.QuoteID, r.QuoteStatus, r.RetryCount, r.LastError); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `DELETE FROM notification_retries WHERE id = $1`, r.ID)
		return err
	})
}

func (b *batch) DeleteNotification(id string) {
	b.ops = append(b.ops, func(ctx context.Context, tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `DELETE FROM notifications WHERE id = $1`, id)
		return err
	})
}

func (b *batch) Commit(ctx context.Context) error {
	if len(b.ops) == 0 {
		return nil
	}
	logger.DatabaseCall("BATCH", "commit", "operations", len(b.ops))

	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin batch transaction: %w", err)
	}
	for _, op := range b.ops {
		if err := op(ctx, tx); err != nil {
			_ = tx.Rollback()
			logger.DatabaseResult("BATCH", 0, err)
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		logger.DatabaseResult("BATCH", 0, err)
		return err
	}
	logger.DatabaseResult("BATCH", int64(len(b.ops)), nil)
	b.ops = nil
	return nil
}
