package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"locmaq-backend/internal/domain"
	"locmaq-backend/internal/repository"

	"github.com/google/uuid"
)

type machineRepository struct {
	db *sql.DB
}

func NewMachineRepository(db *sql.DB) repository.MachineRepository {
	return &machineRepository{db: db}
}

const machineColumns = `id, owner_id, name, category, work_phase, application, description,
	daily_rate_cents, weekly_rate_cents, monthly_rate_cents, status, image_url, created_on, updated_on`

func (r *machineRepository) Create(ctx context.Context, m *domain.Machine) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.Status == "" {
		m.Status = domain.MachineStatusAvailable
	}
	query := `INSERT INTO machines (id, owner_id, name, category, work_phase, application, description,
	          daily_rate_cents, weekly_rate_cents, monthly_rate_cents, status, image_url, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
	          RETURNING created_on, updated_on`
	return r.db.QueryRowContext(ctx, query,
		m.ID, m.OwnerID, m.Name, m.Category, m.WorkPhase, m.Application, m.Description,
		m.DailyRateCents, m.WeeklyRateCents, m.MonthlyRateCents, m.Status, m.ImageURL,
	).Scan(&m.CreatedOn, &m.UpdatedOn)
}

func (r *machineRepository) GetByID(ctx context.Context, id string) (*domain.Machine, error) {
	query := `SELECT ` + machineColumns + ` FROM machines WHERE id = $1`
	m, err := scanMachine(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return m, err
}

func (r *machineRepository) Update(ctx context.Context, m *domain.Machine) error {
	query := `UPDATE machines SET name = $1, category = $2, work_phase = $3, application = $4,
	          description = $5, daily_rate_cents = $6, weekly_rate_cents = $7, monthly_rate_cents = $8,
	          status = $9, image_url = $10, updated_on = NOW()
	          WHERE id = $11`
	result, err := r.db.ExecContext(ctx, query,
		m.Name, m.Category, m.WorkPhase, m.Application, m.Description,
		m.DailyRateCents, m.WeeklyRateCents, m.MonthlyRateCents, m.Status, m.ImageURL, m.ID)
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

func (r *machineRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM machines WHERE id = $1`, id)
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

func (r *machineRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Machine, int32, error) {
	query := `SELECT ` + machineColumns + ` FROM machines ORDER BY created_on DESC LIMIT $1 OFFSET $2`
	return r.listWithCount(ctx, `SELECT count(*) FROM machines`, nil, query, pageSize, (page-1)*pageSize)
}

func (r *machineRepository) ListByOwner(ctx context.Context, ownerID string, page, pageSize int32) ([]domain.Machine, int32, error) {
	countQuery := `SELECT count(*) FROM machines WHERE owner_id = $1`
	query := `SELECT ` + machineColumns + ` FROM machines WHERE owner_id = $1 ORDER BY created_on DESC LIMIT $2 OFFSET $3`

	var count int32
	if err := r.db.QueryRowContext(ctx, countQuery, ownerID).Scan(&count); err != nil {
		return nil, 0, err
	}
	rows, err := r.db.QueryContext(ctx, query, ownerID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	machines, err := collectMachines(rows)
	return machines, count, err
}

// Search filters by free-text query against name/description plus optional
// exact category, work phase and application filters.
func (r *machineRepository) Search(ctx context.Context, query, category, workPhase, application string, page, pageSize int32) ([]domain.Machine, int32, error) {
	var conds []string
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if query != "" {
		p := arg("%" + query + "%")
		conds = append(conds, "(name ILIKE "+p+" OR description ILIKE "+p+")")
	}
	if category != "" {
		conds = append(conds, "category = "+arg(category))
	}
	if workPhase != "" {
		conds = append(conds, "work_phase = "+arg(workPhase))
	}
	if application != "" {
		conds = append(conds, "application = "+arg(application))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM machines`+where, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	sel := `SELECT ` + machineColumns + ` FROM machines` + where +
		` ORDER BY created_on DESC LIMIT ` + arg(pageSize) + ` OFFSET ` + arg((page-1)*pageSize)
	rows, err := r.db.QueryContext(ctx, sel, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	machines, err := collectMachines(rows)
	return machines, count, err
}

func (r *machineRepository) listWithCount(ctx context.Context, countQuery string, countArgs []any, query string, args ...any) ([]domain.Machine, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&count); err != nil {
		return nil, 0, err
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	machines, err := collectMachines(rows)
	return machines, count, err
}

func collectMachines(rows *sql.Rows) ([]domain.Machine, error) {
	var machines []domain.Machine
	for rows.Next() {
		m, err := scanMachine(rows)
		if err != nil {
			return nil, err
		}
		machines = append(machines, *m)
	}
	return machines, rows.Err()
}

func scanMachine(row rowScanner) (*domain.Machine, error) {
	var m domain.Machine
	err := row.Scan(&m.ID, &m.OwnerID, &m.Name, &m.Category, &m.WorkPhase, &m.Application,
		&m.Description, &m.DailyRateCents, &m.WeeklyRateCents, &m.MonthlyRateCents,
		&m.Status, &m.ImageURL, &m.CreatedOn, &m.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
