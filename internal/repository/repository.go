package repository

import (
	"context"
	"errors"

	"inmogestion-backend/internal/domain"
)

// ErrNotFound is returned by every backend when the requested record does not
// exist. Backends map their own not-found signals (sql.ErrNoRows, missing
// row-store rows) to this error so callers can react uniformly.
var ErrNotFound = errors.New("record not found")

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

// ListingFilter narrows a listing search. Zero-valued fields are ignored.
type ListingFilter struct {
	Query        string // matches title, city or neighborhood
	City         string
	PropertyType domain.PropertyType
	Status       domain.SaleStatus
	Currency     domain.Currency
	MaxPrice     float64
}

type ListingRepository interface {
	// Create persists the assembled record as a single append; no retry, no
	// partial-write recovery.
	Create(ctx context.Context, listing *domain.Listing) error
	GetByID(ctx context.Context, id string) (*domain.Listing, error)
	List(ctx context.Context, page, pageSize int32) ([]domain.Listing, int32, error)
	ListByAgent(ctx context.Context, agentID int32, page, pageSize int32) ([]domain.Listing, int32, error)
	Search(ctx context.Context, filter ListingFilter, page, pageSize int32) ([]domain.Listing, int32, error)
	UpdateStatus(ctx context.Context, id string, status domain.SaleStatus, buyerClient string) error
	UpdatePayment(ctx context.Context, id string, amountPaid, debt float64) error
	UpdateMediaRefs(ctx context.Context, id string, photoRefs, docRefs []string) error
	Summary(ctx context.Context) (*domain.InventorySummary, error)
}

type VisitRepository interface {
	Create(ctx context.Context, visit *domain.Visit) error
	GetByID(ctx context.Context, id string) (*domain.Visit, error)
	ListByListing(ctx context.Context, listingID string) ([]domain.Visit, error)
	ListByAgent(ctx context.Context, agentID int32) ([]domain.Visit, error)
	ListByDate(ctx context.Context, date string) ([]domain.Visit, error)
	UpdateStatus(ctx context.Context, id string, status domain.VisitStatus) error
}
