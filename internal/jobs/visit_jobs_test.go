package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"inmogestion-backend/internal/config"
	"inmogestion-backend/internal/domain"
	"inmogestion-backend/internal/repository"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *mockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *mockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

type mockVisitRepo struct{ mock.Mock }

func (m *mockVisitRepo) Create(ctx context.Context, visit *domain.Visit) error {
	return m.Called(ctx, visit).Error(0)
}
func (m *mockVisitRepo) GetByID(ctx context.Context, id string) (*domain.Visit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Visit), args.Error(1)
}
func (m *mockVisitRepo) ListByListing(ctx context.Context, listingID string) ([]domain.Visit, error) {
	args := m.Called(ctx, listingID)
	return args.Get(0).([]domain.Visit), args.Error(1)
}
func (m *mockVisitRepo) ListByAgent(ctx context.Context, agentID int32) ([]domain.Visit, error) {
	args := m.Called(ctx, agentID)
	return args.Get(0).([]domain.Visit), args.Error(1)
}
func (m *mockVisitRepo) ListByDate(ctx context.Context, date string) ([]domain.Visit, error) {
	args := m.Called(ctx, date)
	return args.Get(0).([]domain.Visit), args.Error(1)
}
func (m *mockVisitRepo) UpdateStatus(ctx context.Context, id string, status domain.VisitStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

type mockListingRepo struct{ mock.Mock }

func (m *mockListingRepo) Create(ctx context.Context, listing *domain.Listing) error {
	return m.Called(ctx, listing).Error(0)
}
func (m *mockListingRepo) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}
func (m *mockListingRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Listing, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Listing), args.Get(1).(int32), args.Error(2)
}
func (m *mockListingRepo) ListByAgent(ctx context.Context, agentID int32, page, pageSize int32) ([]domain.Listing, int32, error) {
	args := m.Called(ctx, agentID, page, pageSize)
	return args.Get(0).([]domain.Listing), args.Get(1).(int32), args.Error(2)
}
func (m *mockListingRepo) Search(ctx context.Context, filter repository.ListingFilter, page, pageSize int32) ([]domain.Listing, int32, error) {
	args := m.Called(ctx, filter, page, pageSize)
	return args.Get(0).([]domain.Listing), args.Get(1).(int32), args.Error(2)
}
func (m *mockListingRepo) UpdateStatus(ctx context.Context, id string, status domain.SaleStatus, buyerClient string) error {
	return m.Called(ctx, id, status, buyerClient).Error(0)
}
func (m *mockListingRepo) UpdatePayment(ctx context.Context, id string, amountPaid, debt float64) error {
	return m.Called(ctx, id, amountPaid, debt).Error(0)
}
func (m *mockListingRepo) UpdateMediaRefs(ctx context.Context, id string, photoRefs, docRefs []string) error {
	return m.Called(ctx, id, photoRefs, docRefs).Error(0)
}
func (m *mockListingRepo) Summary(ctx context.Context) (*domain.InventorySummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventorySummary), args.Error(1)
}

type mockEmail struct{ mock.Mock }

func (m *mockEmail) SendWelcome(ctx context.Context, email, name string) error {
	return m.Called(ctx, email, name).Error(0)
}
func (m *mockEmail) SendVisitConfirmation(ctx context.Context, email, agentName, listingTitle, clientName, visitDate, visitTime string) error {
	return m.Called(ctx, email, agentName, listingTitle, clientName, visitDate, visitTime).Error(0)
}
func (m *mockEmail) SendVisitReminder(ctx context.Context, email, agentName, listingTitle, clientName, visitDate, visitTime string) error {
	return m.Called(ctx, email, agentName, listingTitle, clientName, visitDate, visitTime).Error(0)
}

func TestExpireStaleVisits(t *testing.T) {
	visitRepo := new(mockVisitRepo)
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	visitRepo.On("ListByDate", mock.Anything, yesterday).Return([]domain.Visit{
		{ID: "v1", VisitDate: yesterday, Status: domain.VisitStatusScheduled},
		{ID: "v2", VisitDate: yesterday, Status: domain.VisitStatusCompleted},
	}, nil)
	visitRepo.On("UpdateStatus", mock.Anything, "v1", domain.VisitStatusCancelled).Return(nil)

	jr := NewJobRunner(new(mockUserRepo), nil, visitRepo, new(mockEmail), &config.Config{})
	jr.ExpireStaleVisits()

	visitRepo.AssertExpectations(t)
	visitRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, "v2", mock.Anything)
}

func TestSendVisitReminders(t *testing.T) {
	visitRepo := new(mockVisitRepo)
	userRepo := new(mockUserRepo)
	email := new(mockEmail)
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	visitRepo.On("ListByDate", mock.Anything, tomorrow).Return([]domain.Visit{
		{ID: "v1", ListingID: "l1", AgentID: 7, ClientName: "Pedro", VisitDate: tomorrow, VisitTime: "10:30", Status: domain.VisitStatusConfirmed},
		{ID: "v2", ListingID: "l1", AgentID: 7, VisitDate: tomorrow, Status: domain.VisitStatusCancelled},
	}, nil)
	userRepo.On("GetByID", mock.Anything, int32(7)).Return(&domain.User{ID: 7, Name: "Laura", Email: "laura@inmo.test"}, nil)

	listingRepo := new(mockListingRepo)
	listingRepo.On("GetByID", mock.Anything, "l1").Return(&domain.Listing{ID: "l1", Title: "Casa en Laureles"}, nil)

	email.On("SendVisitReminder", mock.Anything, "laura@inmo.test", "Laura", "Casa en Laureles", "Pedro", tomorrow, "10:30").Return(nil)

	jr := NewJobRunner(userRepo, listingRepo, visitRepo, email, &config.Config{})
	jr.SendVisitReminders()

	email.AssertExpectations(t)
}
