package postgres

import (
	"context"
	"database/sql"
	"errors"

	"locmaq-backend/internal/domain"
	"locmaq-backend/internal/repository"

	"github.com/google/uuid"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Upsert mirrors the auth provider's profile into the local users table so
// notification delivery has an email and device token to work with.
func (r *userRepository) Upsert(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (id, name, email, phone, device_token, created_on)
	          VALUES ($1, $2, $3, $4, $5, NOW())
	          ON CONFLICT (id) DO UPDATE
	          SET name = EXCLUDED.name, email = EXCLUDED.email,
	              phone = EXCLUDED.phone, device_token = EXCLUDED.device_token
	          RETURNING created_on`
	return r.db.QueryRowContext(ctx, query, u.ID, u.Name, u.Email, u.Phone, u.DeviceToken).Scan(&u.CreatedOn)
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, name, email, phone, device_token, created_on FROM users WHERE id = $1`
	var u domain.User
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.DeviceToken, &u.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

type addressRepository struct {
	db *sql.DB
}

func NewAddressRepository(db *sql.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

func (r *addressRepository) Create(ctx context.Context, a *domain.Address) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	query := `INSERT INTO addresses (id, user_id, label, street, number, complement, district, city, state, zip_code, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW()) RETURNING created_on`
	return r.db.QueryRowContext(ctx, query,
		a.ID, a.UserID, a.Label, a.Street, a.Number, a.Complement, a.District, a.City, a.State, a.ZipCode,
	).Scan(&a.CreatedOn)
}

func (r *addressRepository) GetByID(ctx context.Context, id string) (*domain.Address, error) {
	query := `SELECT id, user_id, label, street, number, complement, district, city, state, zip_code, created_on
	          FROM addresses WHERE id = $1`
	var a domain.Address
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.UserID, &a.Label, &a.Street, &a.Number,
		&a.Complement, &a.District, &a.City, &a.State, &a.ZipCode, &a.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *addressRepository) ListByUser(ctx context.Context, userID string) ([]domain.Address, error) {
	query := `SELECT id, user_id, label, street, number, complement, district, city, state, zip_code, created_on
	          FROM addresses WHERE user_id = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var addrs []domain.Address
	for rows.Next() {
		var a domain.Address
		if err := rows.Scan(&a.ID, &a.UserID, &a.Label, &a.Street, &a.Number,
			&a.Complement, &a.District, &a.City, &a.State, &a.ZipCode, &a.CreatedOn); err != nil {
			return nil, err
		}
		addrs = append(addrs, a)
	}
	return addrs, rows.Err()
}

func (r *addressRepository) Delete(ctx context.Context, id, userID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM addresses WHERE id = $1 AND user_id = $2`, id, userID)
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
