package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"inmogestion-backend/internal/domain"
	"inmogestion-backend/internal/repository"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockListingRepo
type MockListingRepo struct {
	mock.Mock
}

func (m *MockListingRepo) Create(ctx context.Context, listing *domain.Listing) error {
	args := m.Called(ctx, listing)
	return args.Error(0)
}
func (m *MockListingRepo) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}
func (m *MockListingRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Listing, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Listing), args.Get(1).(int32), args.Error(2)
}
func (m *MockListingRepo) ListByAgent(ctx context.Context, agentID int32, page, pageSize int32) ([]domain.Listing, int32, error) {
	args := m.Called(ctx, agentID, page, pageSize)
	return args.Get(0).([]domain.Listing), args.Get(1).(int32), args.Error(2)
}
func (m *MockListingRepo) Search(ctx context.Context, filter repository.ListingFilter, page, pageSize int32) ([]domain.Listing, int32, error) {
	args := m.Called(ctx, filter, page, pageSize)
	return args.Get(0).([]domain.Listing), args.Get(1).(int32), args.Error(2)
}
func (m *MockListingRepo) UpdateStatus(ctx context.Context, id string, status domain.SaleStatus, buyerClient string) error {
	args := m.Called(ctx, id, status, buyerClient)
	return args.Error(0)
}
func (m *MockListingRepo) UpdatePayment(ctx context.Context, id string, amountPaid, debt float64) error {
	args := m.Called(ctx, id, amountPaid, debt)
	return args.Error(0)
}
func (m *MockListingRepo) UpdateMediaRefs(ctx context.Context, id string, photoRefs, docRefs []string) error {
	args := m.Called(ctx, id, photoRefs, docRefs)
	return args.Error(0)
}
func (m *MockListingRepo) Summary(ctx context.Context) (*domain.InventorySummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventorySummary), args.Error(1)
}

// MockVisitRepo
type MockVisitRepo struct {
	mock.Mock
}

func (m *MockVisitRepo) Create(ctx context.Context, visit *domain.Visit) error {
	args := m.Called(ctx, visit)
	return args.Error(0)
}
func (m *MockVisitRepo) GetByID(ctx context.Context, id string) (*domain.Visit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Visit), args.Error(1)
}
func (m *MockVisitRepo) ListByListing(ctx context.Context, listingID string) ([]domain.Visit, error) {
	args := m.Called(ctx, listingID)
	return args.Get(0).([]domain.Visit), args.Error(1)
}
func (m *MockVisitRepo) ListByAgent(ctx context.Context, agentID int32) ([]domain.Visit, error) {
	args := m.Called(ctx, agentID)
	return args.Get(0).([]domain.Visit), args.Error(1)
}
func (m *MockVisitRepo) ListByDate(ctx context.Context, date string) ([]domain.Visit, error) {
	args := m.Called(ctx, date)
	return args.Get(0).([]domain.Visit), args.Error(1)
}
func (m *MockVisitRepo) UpdateStatus(ctx context.Context, id string, status domain.VisitStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendWelcome(ctx context.Context, email, name string) error {
	args := m.Called(ctx, email, name)
	return args.Error(0)
}
func (m *MockEmailService) SendVisitConfirmation(ctx context.Context, email, agentName, listingTitle, clientName, visitDate, visitTime string) error {
	args := m.Called(ctx, email, agentName, listingTitle, clientName, visitDate, visitTime)
	return args.Error(0)
}
func (m *MockEmailService) SendVisitReminder(ctx context.Context, email, agentName, listingTitle, clientName, visitDate, visitTime string) error {
	args := m.Called(ctx, email, agentName, listingTitle, clientName, visitDate, visitTime)
	return args.Error(0)
}
