package service

import (
	"context"

	"inmogestion-backend/internal/domain"
	"inmogestion-backend/internal/repository"
)

type AuthService interface {
	Signup(ctx context.Context, name, email, phone, password string, role domain.UserRole) (*domain.User, string, string, error)
	Login(ctx context.Context, email, password string) (string, string, error) // access, refresh
	RefreshToken(ctx context.Context, refresh string) (string, string, error)
	Logout(ctx context.Context, refresh string) error
}

// ListingDraft is the raw form input for one property submission. The service
// validates it, prices it and assembles the persisted record.
type ListingDraft struct {
	Title        string                   `json:"title"`
	PropertyType domain.PropertyType      `json:"property_type"`
	City         string                   `json:"city"`
	Neighborhood string                   `json:"neighborhood"`
	Stratum      string                   `json:"stratum"`
	Area         float64                  `json:"area"`
	Rooms        int32                    `json:"rooms"`
	Bathrooms    int32                    `json:"bathrooms"`
	Floor        string                   `json:"floor"`
	Age          domain.AgeBracket        `json:"age"`
	Condition    domain.PropertyCondition `json:"condition"`
	Parking      domain.ParkingType       `json:"parking"`
	Amenities    []string                 `json:"amenities"`
	Notes        string                   `json:"notes"`

	OwnerName     string `json:"owner_name"`
	OwnerDocument string `json:"owner_document"`
	OwnerPhone    string `json:"owner_phone"`
	OwnerAltPhone string `json:"owner_alt_phone"`
	OwnerEmail    string `json:"owner_email"`

	Pricing domain.PricingInput `json:"pricing"`
	PreSale *domain.PreSale     `json:"pre_sale,omitempty"`

	PhotoRefs []string `json:"photo_refs"`
	DocRefs   []string `json:"doc_refs"`
}

type ListingService interface {
	// QuotePricing runs the calculator without persisting anything, for live
	// display of commission and net while the form is being filled.
	QuotePricing(ctx context.Context, in domain.PricingInput) (domain.PricingResult, error)
	CreateListing(ctx context.Context, agentID int32, draft ListingDraft) (*domain.Listing, error)
	GetListing(ctx context.Context, id string) (*domain.Listing, error)
	ListListings(ctx context.Context, page, pageSize int32) ([]domain.Listing, int32, error)
	ListMyListings(ctx context.Context, agentID int32, page, pageSize int32) ([]domain.Listing, int32, error)
	SearchListings(ctx context.Context, filter repository.ListingFilter, page, pageSize int32) ([]domain.Listing, int32, error)
	UpdateSaleStatus(ctx context.Context, id string, status domain.SaleStatus, buyerClient string) (*domain.Listing, error)
	RecordPayment(ctx context.Context, id string, amount float64) (*domain.Listing, error)
	AttachMedia(ctx context.Context, id string, photoRefs, docRefs []string) (*domain.Listing, error)
	InventorySummary(ctx context.Context) (*domain.InventorySummary, error)
}

type VisitService interface {
	ScheduleVisit(ctx context.Context, agentID int32, listingID, clientName, clientPhone, visitDate, visitTime, note string) (*domain.Visit, error)
	GetVisit(ctx context.Context, id string) (*domain.Visit, error)
	ListVisitsByListing(ctx context.Context, listingID string) ([]domain.Visit, error)
	ListMyVisits(ctx context.Context, agentID int32) ([]domain.Visit, error)
	UpdateVisitStatus(ctx context.Context, id string, status domain.VisitStatus) (*domain.Visit, error)
}

type EmailService interface {
	SendWelcome(ctx context.Context, email, name string) error
	SendVisitConfirmation(ctx context.Context, email, agentName, listingTitle, clientName, visitDate, visitTime string) error
	SendVisitReminder(ctx context.Context, email, agentName, listingTitle, clientName, visitDate, visitTime string) error
}
