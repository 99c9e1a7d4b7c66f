package postgres

import (
	"context"
	"database/sql"

	"locmaq-backend/internal/domain"
	"locmaq-backend/internal/logger"
	"locmaq-backend/internal/repository"

	"github.com/google/uuid"
)

type retryRepository struct {
	db *sql.DB
}

func NewRetryRepository(db *sql.DB) repository.RetryRepository {
	return &retryRepository{db: db}
}

func (r *retryRepository) Create(ctx context.Context, rec *domain.NotificationRetry) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	query := `INSERT INTO notification_retries (id, quote_id, quote_status, retry_count, last_error, last_retry, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, NOW()) RETURNING created_on`
	logger.DatabaseCall("INSERT", "notification_retries", "quoteID", rec.QuoteID, "status", rec.QuoteStatus)

	err := r.db.QueryRowContext(ctx, query,
		rec.ID, rec.QuoteID, rec.QuoteStatus, rec.RetryCount, rec.LastError, rec.LastRetry,
	).Scan(&rec.CreatedOn)
	logger.DatabaseResult("INSERT", 1, err, "retryID", rec.ID)
	return err
}

func (r *retryRepository) ListPending(ctx context.Context, maxRetries int32) ([]domain.NotificationRetry, error) {
	query := `SELECT id, quote_id, quote_status, retry_count, last_error, last_retry, created_on
	          FROM notification_retries WHERE retry_count < $1 ORDER BY created_on ASC`
	rows, err := r.db.QueryContext(ctx, query, maxRetries)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.NotificationRetry
	for rows.Next() {
		var rec domain.NotificationRetry
		var lastErr sql.NullString
		var lastRetry sql.NullTime
		if err := rows.Scan(&rec.ID, &rec.QuoteID, &rec.QuoteStatus, &rec.RetryCount,
			&lastErr, &lastRetry, &rec.CreatedOn); err != nil {
			return nil, err
		}
		rec.LastError = lastErr.String
		if lastRetry.Valid {
			t := lastRetry.Time
			rec.LastRetry = &t
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *retryRepository) CountPending(ctx context.Context, maxRetries int32) (int32, error) {
	var count int32
	query := `SELECT count(*) FROM notification_retries WHERE retry_count < $1`
	err := r.db.QueryRowContext(ctx, query, maxRetries).Scan(&count)
	return count, err
}

func (r *retryRepository) CountDeadLetters(ctx context.Context) (int32, error) {
	var count int32
	query := `SELECT count(*) FROM dead_letters`
	err := r.db.QueryRowContext(ctx, query).Scan(&count)
	return count, err
}
