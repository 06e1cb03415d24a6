package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"inmogestion-backend/internal/domain"
	"inmogestion-backend/internal/logger"
	"inmogestion-backend/internal/repository"
	"inmogestion-backend/internal/utils"
)

type listingService struct {
	listingRepo repository.ListingRepository
}

func NewListingService(listingRepo repository.ListingRepository) ListingService {
	return &listingService{listingRepo: listingRepo}
}

func (s *listingService) QuotePricing(ctx context.Context, in domain.PricingInput) (domain.PricingResult, error) {
	return utils.ComputePricing(in)
}

// CreateListing prices the draft and assembles the persisted record. Nothing
// is written unless the title is present and the sale price came out positive,
// so a rejected submission leaves no partial row behind.
func (s *listingService) CreateListing(ctx context.Context, agentID int32, draft ListingDraft) (*domain.Listing, error) {
	title := strings.TrimSpace(draft.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	result, err := utils.ComputePricing(draft.Pricing)
	if err != nil {
		return nil, err
	}
	if result.SaleEvent <= 0 {
		return nil, ErrInvalidSalePrice
	}
	if result.MarginWarning {
		logger.Warn("listing priced below owner net",
			"title", title,
			"ask_price", draft.Pricing.AskPrice,
			"owner_net", draft.Pricing.OwnerNet)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	listing := &domain.Listing{
		ID:        uuid.NewString(),
		CreatedOn: now,
		UpdatedOn: now,
		Status:    domain.SaleStatusAvailable,
		AgentID:   agentID,

		OwnerName:     draft.OwnerName,
		OwnerDocument: draft.OwnerDocument,
		OwnerPhone:    draft.OwnerPhone,
		OwnerAltPhone: draft.OwnerAltPhone,
		OwnerEmail:    draft.OwnerEmail,

		Currency:        draft.Pricing.Currency,
		SaleEvent:       result.SaleEvent,
		AgentCommission: result.AgentCommission,
		OwnerNet:        result.OwnerNet,
		MarginWarning:   result.MarginWarning,

		Title:        title,
		PropertyType: draft.PropertyType,
		City:         draft.City,
		Neighborhood: draft.Neighborhood,
		Stratum:      draft.Stratum,
		Area:         draft.Area,
		Rooms:        draft.Rooms,
		Bathrooms:    draft.Bathrooms,
		Floor:        draft.Floor,
		Age:          draft.Age,
		Condition:    draft.Condition,
		Parking:      draft.Parking,
		Amenities:    draft.Amenities,
		Notes:        draft.Notes,

		PreSale: draft.PreSale,

		PhotoRefs: draft.PhotoRefs,
		DocRefs:   draft.DocRefs,
	}
	if draft.Age != domain.AgeBracketOffPlan {
		listing.PreSale = nil
	}

	if err := s.listingRepo.Create(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

func (s *listingService) GetListing(ctx context.Context, id string) (*domain.Listing, error) {
	return s.listingRepo.GetByID(ctx, id)
}

func (s *listingService) ListListings(ctx context.Context, page, pageSize int32) ([]domain.Listing, int32, error) {
	return s.listingRepo.List(ctx, page, pageSize)
}

func (s *listingService) ListMyListings(ctx context.Context, agentID int32, page, pageSize int32) ([]domain.Listing, int32, error) {
	return s.listingRepo.ListByAgent(ctx, agentID, page, pageSize)
}

func (s *listingService) SearchListings(ctx context.Context, filter repository.ListingFilter, page, pageSize int32) ([]domain.Listing, int32, error) {
	return s.listingRepo.Search(ctx, filter, page, pageSize)
}

func (s *listingService) UpdateSaleStatus(ctx context.Context, id string, status domain.SaleStatus, buyerClient string) (*domain.Listing, error) {
	switch status {
	case domain.SaleStatusAvailable, domain.SaleStatusReserved, domain.SaleStatusSold, domain.SaleStatusRented:
	default:
		return nil, ErrInvalidStatus
	}
	if err := s.listingRepo.UpdateStatus(ctx, id, status, buyerClient); err != nil {
		return nil, err
	}
	return s.listingRepo.GetByID(ctx, id)
}

// RecordPayment accumulates buyer payments against the sale price. Debt is
// floored at zero so an overpayment does not show as negative.
func (s *listingService) RecordPayment(ctx context.Context, id string, amount float64) (*domain.Listing, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	listing, err := s.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	paid := listing.AmountPaid + amount
	debt := listing.SaleEvent - paid
	if debt < 0 {
		debt = 0
	}

	if err := s.listingRepo.UpdatePayment(ctx, id, paid, debt); err != nil {
		return nil, err
	}
	listing.AmountPaid = paid
	listing.Debt = debt
	return listing, nil
}

func (s *listingService) AttachMedia(ctx context.Context, id string, photoRefs, docRefs []string) (*domain.Listing, error) {
	listing, err := s.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	photos := append(append([]string{}, listing.PhotoRefs...), photoRefs...)
	docs := append(append([]string{}, listing.DocRefs...), docRefs...)

	if err := s.listingRepo.UpdateMediaRefs(ctx, id, photos, docs); err != nil {
		return nil, err
	}
	listing.PhotoRefs = photos
	listing.DocRefs = docs
	return listing, nil
}

func (s *listingService) InventorySummary(ctx context.Context) (*domain.InventorySummary, error) {
	return s.listingRepo.Summary(ctx)
}
