package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"locmaq-backend/internal/domain"
	"locmaq-backend/internal/logger"
	"locmaq-backend/internal/repository"

	"github.com/google/uuid"
)

type quoteRepository struct {
	db *sql.DB
}

func NewQuoteRepository(db *sql.DB) repository.QuoteRepository {
	return &quoteRepository{db: db}
}

const quoteColumns = `id, machine_id, machine_name, requester_id, owner_id, status, purpose,
	address, start_date, end_date, notes, value_cents, conditions, created_on, updated_on`

func (r *quoteRepository) Create(ctx context.Context, q *domain.Quote) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	addr, err := json.Marshal(q.Address)
	if err != nil {
		return fmt.Errorf("failed to marshal address snapshot: %w", err)
	}

	query := `INSERT INTO quotes (id, machine_id, machine_name, requester_id, owner_id, status, purpose,
	          address, start_date, end_date, notes, value_cents, conditions, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
	          RETURNING created_on, updated_on`
	logger.DatabaseCall("INSERT", "quotes", "quoteID", q.ID, "requesterID", q.RequesterID)

	err = r.db.QueryRowContext(ctx, query,
		q.ID, q.MachineID, q.MachineName, q.RequesterID, q.OwnerID, q.Status, q.Purpose,
		addr, q.StartDate, q.EndDate, q.Notes, q.ValueCents, q.Conditions,
	).Scan(&q.CreatedOn, &q.UpdatedOn)
	logger.DatabaseResult("INSERT", 1, err, "quoteID", q.ID)
	return err
}

func (r *quoteRepository) GetByID(ctx context.Context, id string) (*domain.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)

	q, err := scanQuote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return q, err
}

func (r *quoteRepository) UpdateStatus(ctx context.Context, id string, status domain.QuoteStatus) error {
	query := `UPDATE quotes SET status = $1, updated_on = NOW() WHERE id = $2`
	logger.DatabaseCall("UPDATE", "quotes", "quoteID", id, "status", status)

	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err, "quoteID", id)
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *quoteRepository) SetTerms(ctx context.Context, id string, valueCents int32, conditions string) error {
	query := `UPDATE quotes SET value_cents = $1, conditions = $2, updated_on = NOW() WHERE id = $3`
	result, err := r.db.ExecContext(ctx, query, valueCents, conditions, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *quoteRepository) ListByRequester(ctx context.Context, requesterID string) ([]domain.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE requester_id = $1 ORDER BY created_on DESC`
	return r.list(ctx, query, requesterID)
}

func (r *quoteRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE owner_id = $1 ORDER BY created_on DESC`
	return r.list(ctx, query, ownerID)
}

func (r *quoteRepository) list(ctx context.Context, query, userID string) ([]domain.Quote, error) {
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quotes []domain.Quote
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, *q)
	}
	return quotes, rows.Err()
}

func (r *quoteRepository) CountByStatus(ctx context.Context) (map[domain.QuoteStatus]int32, error) {
	query := `SELECT status, count(*) FROM quotes GROUP BY status`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.QuoteStatus]int32)
	for rows.Next() {
		var status domain.QuoteStatus
		var count int32
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuote(row rowScanner) (*domain.Quote, error) {
	var q domain.Quote
	var addr []byte
	var endDate sql.NullTime
	err := row.Scan(&q.ID, &q.MachineID, &q.MachineName, &q.RequesterID, &q.OwnerID, &q.Status,
		&q.Purpose, &addr, &q.StartDate, &endDate, &q.Notes, &q.ValueCents, &q.Conditions,
		&q.CreatedOn, &q.UpdatedOn)
	if err != nil {
		return nil, err
	}
	if endDate.Valid {
		t := endDate.Time
		q.EndDate = &t
	}
	if len(addr) > 0 {
		if err := json.Unmarshal(addr, &q.Address); err != nil {
			return nil, fmt.Errorf("failed to unmarshal address snapshot: %w", err)
		}
	}
	return &q, nil
}
