package postgres

import (
	"database/sql"

	"locmaq-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.AddressRepository
	repository.MachineRepository
	repository.QuoteRepository
	repository.NotificationRepository
	repository.RetryRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		UserRepository:         NewUserRepository(db),
		AddressRepository:      NewAddressRepository(db),
		MachineRepository:      NewMachineRepository(db),
		QuoteRepository:        NewQuoteRepository(db),
		NotificationRepository: NewNotificationRepository(db),
		RetryRepository:        NewRetryRepository(db),
	}
}

// NewBatch satisfies repository.BatchWriter.
func (s *Store) NewBatch() repository.Batch {
	return newBatch(s.db)
}
