package sheet

import (
	"inmogestion-backend/internal/repository"
	"inmogestion-backend/internal/rowstore"
)

type Store struct {
	rs rowstore.Store
	repository.UserRepository
	repository.ListingRepository
	repository.VisitRepository
}

func NewStore(rs rowstore.Store) *Store {
	return &Store{
		rs:                rs,
		UserRepository:    NewUserRepository(rs),
		ListingRepository: NewListingRepository(rs),
		VisitRepository:   NewVisitRepository(rs),
	}
}
