package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"inmogestion-backend/internal/domain"
	"inmogestion-backend/internal/repository"
	"inmogestion-backend/internal/utils"
)

func validDraft() ListingDraft {
	return ListingDraft{
		Title:        "Apartamento en Chapinero",
		PropertyType: domain.PropertyTypeApartment,
		City:         "Bogotá",
		Neighborhood: "Chapinero",
		Area:         85,
		Rooms:        3,
		Bathrooms:    2,
		Age:          domain.AgeBracketUsed,
		Condition:    domain.PropertyConditionGood,
		Parking:      domain.ParkingTypePrivate,
		OwnerName:    "Carlos Pérez",
		OwnerPhone:   "3001234567",
		Pricing: domain.PricingInput{
			Mode:              domain.PricingModePercentage,
			Currency:          domain.CurrencyCOP,
			TotalPrice:        200_000_000,
			CommissionPercent: 3,
		},
	}
}

func TestListingService_CreateListing(t *testing.T) {
	ctx := context.Background()

	t.Run("Percentage Mode", func(t *testing.T) {
		repo := new(MockListingRepo)
		svc := NewListingService(repo)

		var saved *domain.Listing
		repo.On("Create", ctx, mock.AnythingOfType("*domain.Listing")).Run(func(args mock.Arguments) {
			saved = args.Get(1).(*domain.Listing)
		}).Return(nil)

		listing, err := svc.CreateListing(ctx, 7, validDraft())
		assert.NoError(t, err)
		assert.NotEmpty(t, listing.ID)
		assert.Equal(t, int32(7), listing.AgentID)
		assert.Equal(t, domain.SaleStatusAvailable, listing.Status)
		assert.InDelta(t, 200_000_000, listing.SaleEvent, 0.01)
		assert.InDelta(t, 6_000_000, listing.AgentCommission, 0.01)
		assert.InDelta(t, 194_000_000, listing.OwnerNet, 0.01)
		assert.False(t, listing.MarginWarning)
		assert.Equal(t, listing, saved)
		repo.AssertExpectations(t)
	})

	t.Run("Markup Mode With Margin Warning", func(t *testing.T) {
		repo := new(MockListingRepo)
		svc := NewListingService(repo)
		repo.On("Create", ctx, mock.AnythingOfType("*domain.Listing")).Return(nil)

		draft := validDraft()
		draft.Pricing = domain.PricingInput{
			Mode:     domain.PricingModeMarkup,
			Currency: domain.CurrencyCOP,
			OwnerNet: 150_000_000,
			AskPrice: 140_000_000,
		}

		listing, err := svc.CreateListing(ctx, 7, draft)
		assert.NoError(t, err)
		assert.InDelta(t, 140_000_000, listing.SaleEvent, 0.01)
		assert.Zero(t, listing.AgentCommission)
		assert.True(t, listing.MarginWarning)
	})

	t.Run("Blank Title Rejected", func(t *testing.T) {
		repo := new(MockListingRepo)
		svc := NewListingService(repo)

		draft := validDraft()
		draft.Title = "   "

		_, err := svc.CreateListing(ctx, 7, draft)
		assert.ErrorIs(t, err, ErrTitleRequired)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("Zero Sale Price Rejected", func(t *testing.T) {
		repo := new(MockListingRepo)
		svc := NewListingService(repo)

		draft := validDraft()
		draft.Pricing.TotalPrice = 0

		_, err := svc.CreateListing(ctx, 7, draft)
		assert.ErrorIs(t, err, ErrInvalidSalePrice)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("Invalid Pricing Input Rejected", func(t *testing.T) {
		repo := new(MockListingRepo)
		svc := NewListingService(repo)

		draft := validDraft()
		draft.Pricing.CommissionPercent = 150

		_, err := svc.CreateListing(ctx, 7, draft)
		assert.ErrorIs(t, err, utils.ErrCommissionRange)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("PreSale Dropped For Used Property", func(t *testing.T) {
		repo := new(MockListingRepo)
		svc := NewListingService(repo)
		repo.On("Create", ctx, mock.AnythingOfType("*domain.Listing")).Return(nil)

		draft := validDraft()
		draft.PreSale = &domain.PreSale{Builder: "Constructora Andina"}

		listing, err := svc.CreateListing(ctx, 7, draft)
		assert.NoError(t, err)
		assert.Nil(t, listing.PreSale)
	})
}

func TestListingService_RecordPayment(t *testing.T) {
	ctx := context.Background()
	id := "b3f1c9d2-0000-4000-8000-000000000001"

	t.Run("Accumulates And Floors Debt", func(t *testing.T) {
		repo := new(MockListingRepo)
		svc := NewListingService(repo)

		repo.On("GetByID", ctx, id).Return(&domain.Listing{
			ID:         id,
			SaleEvent:  100_000_000,
			AmountPaid: 90_000_000,
			Debt:       10_000_000,
		}, nil)
		repo.On("UpdatePayment", ctx, id, float64(120_000_000), float64(0)).Return(nil)

		listing, err := svc.RecordPayment(ctx, id, 30_000_000)
		assert.NoError(t, err)
		assert.InDelta(t, 120_000_000, listing.AmountPaid, 0.01)
		assert.Zero(t, listing.Debt)
		repo.AssertExpectations(t)
	})

	t.Run("Non Positive Amount Rejected", func(t *testing.T) {
		repo := new(MockListingRepo)
		svc := NewListingService(repo)

		_, err := svc.RecordPayment(ctx, id, 0)
		assert.ErrorIs(t, err, ErrInvalidAmount)
		repo.AssertNotCalled(t, "GetByID")
	})

	t.Run("Missing Listing", func(t *testing.T) {
		repo := new(MockListingRepo)
		svc := NewListingService(repo)
		repo.On("GetByID", ctx, id).Return(nil, repository.ErrNotFound)

		_, err := svc.RecordPayment(ctx, id, 1000)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestListingService_UpdateSaleStatus(t *testing.T) {
	ctx := context.Background()
	id := "b3f1c9d2-0000-4000-8000-000000000002"

	t.Run("Success", func(t *testing.T) {
		repo := new(MockListingRepo)
		svc := NewListingService(repo)

		repo.On("UpdateStatus", ctx, id, domain.SaleStatusSold, "María Gómez").Return(nil)
		repo.On("GetByID", ctx, id).Return(&domain.Listing{ID: id, Status: domain.SaleStatusSold, BuyerClient: "María Gómez"}, nil)

		listing, err := svc.UpdateSaleStatus(ctx, id, domain.SaleStatusSold, "María Gómez")
		assert.NoError(t, err)
		assert.Equal(t, domain.SaleStatusSold, listing.Status)
	})

	t.Run("Unknown Status", func(t *testing.T) {
		repo := new(MockListingRepo)
		svc := NewListingService(repo)

		_, err := svc.UpdateSaleStatus(ctx, id, domain.SaleStatus("BURNED"), "")
		assert.ErrorIs(t, err, ErrInvalidStatus)
		repo.AssertNotCalled(t, "UpdateStatus")
	})
}

func TestListingService_AttachMedia(t *testing.T) {
	ctx := context.Background()
	id := "b3f1c9d2-0000-4000-8000-000000000003"

	repo := new(MockListingRepo)
	svc := NewListingService(repo)

	repo.On("GetByID", ctx, id).Return(&domain.Listing{
		ID:        id,
		PhotoRefs: []string{"frente.jpg"},
	}, nil)
	repo.On("UpdateMediaRefs", ctx, id, []string{"frente.jpg", "cocina.jpg"}, []string{"escritura.pdf"}).Return(nil)

	listing, err := svc.AttachMedia(ctx, id, []string{"cocina.jpg"}, []string{"escritura.pdf"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"frente.jpg", "cocina.jpg"}, listing.PhotoRefs)
	assert.Equal(t, []string{"escritura.pdf"}, listing.DocRefs)
	repo.AssertExpectations(t)
}
