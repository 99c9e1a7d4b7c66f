package postgres

import (
	"context"
	"testing"
	"time"

	"locmaq-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewQuoteRepository(db)

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO quotes`).
		WillReturnRows(sqlmock.NewRows([]string{"created_on", "updated_on"}).AddRow(now, now))

	quote := &domain.Quote{
		MachineID:   "machine-1",
		MachineName: "Escavadeira",
		RequesterID: "requester-1",
		OwnerID:     "owner-1",
		Status:      domain.QuoteStatusPending,
		Purpose:     "Terraplanagem",
		Address:     domain.AddressSnapshot{City: "São Paulo", State: "SP"},
		StartDate:   now,
	}
	err = repo.Create(context.Background(), quote)

	require.NoError(t, err)
	assert.NotEmpty(t, quote.ID, "create assigns an id when none is given")
	assert.Equal(t, now, quote.CreatedOn)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuoteRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewQuoteRepository(db)

	now := time.Now()
	columns := []string{"id", "machine_id", "machine_name", "requester_id", "owner_id", "status",
		"purpose", "address", "start_date", "end_date", "notes", "value_cents", "conditions",
		"created_on", "updated_on"}
	mock.ExpectQuery(`SELECT (.+) FROM quotes WHERE id = \$1`).
		WithArgs("quote-1").
		WillReturnRows(sqlmock.NewRows(columns).AddRow(
			"quote-1", "machine-1", "Escavadeira", "requester-1", "owner-1", "quoted",
			"Terraplanagem", []byte(`{"street":"Av. Paulista","city":"São Paulo","state":"SP"}`),
			now, nil, "", int32(150000), "Frete incluso", now, now,
		))

	quote, err := repo.GetByID(context.Background(), "quote-1")

	require.NoError(t, err)
	assert.Equal(t, domain.QuoteStatusQuoted, quote.Status)
	assert.Equal(t, "São Paulo", quote.Address.City)
	assert.Nil(t, quote.EndDate)
	assert.Equal(t, int32(150000), quote.ValueCents)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuoteRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewQuoteRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM quotes WHERE id = \$1`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = repo.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuoteRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewQuoteRepository(db)

	mock.ExpectExec(`UPDATE quotes SET status = \$1`).
		WithArgs(domain.QuoteStatusAccepted, "quote-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.UpdateStatus(context.Background(), "quote-1", domain.QuoteStatusAccepted)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuoteRepository_UpdateStatus_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewQuoteRepository(db)

	mock.ExpectExec(`UPDATE quotes SET status = \$1`).
		WithArgs(domain.QuoteStatusAccepted, "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.UpdateStatus(context.Background(), "missing", domain.QuoteStatusAccepted)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestQuoteRepository_CountByStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewQuoteRepository(db)

	mock.ExpectQuery(`SELECT status, count\(\*\) FROM quotes GROUP BY status`).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow("pending", int32(4)).
			AddRow("completed", int32(11)))

	counts, err := repo.CountByStatus(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int32(4), counts[domain.QuoteStatusPending])
	assert.Equal(t, int32(11), counts[domain.QuoteStatusCompleted])
}
