package postgres

import (
	"database/sql"

	"inmogestion-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.ListingRepository
	repository.VisitRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                db,
		UserRepository:    NewUserRepository(db),
		ListingRepository: NewListingRepository(db),
		VisitRepository:   NewVisitRepository(db),
	}
}
