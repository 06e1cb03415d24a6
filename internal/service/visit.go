package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"inmogestion-backend/internal/domain"
	"inmogestion-backend/internal/logger"
	"inmogestion-backend/internal/repository"
)

type visitService struct {
	visitRepo   repository.VisitRepository
	listingRepo repository.ListingRepository
	userRepo    repository.UserRepository
	email       EmailService
}

func NewVisitService(visitRepo repository.VisitRepository, listingRepo repository.ListingRepository, userRepo repository.UserRepository, email EmailService) VisitService {
	return &visitService{
		visitRepo:   visitRepo,
		listingRepo: listingRepo,
		userRepo:    userRepo,
		email:       email,
	}
}

func (s *visitService) ScheduleVisit(ctx context.Context, agentID int32, listingID, clientName, clientPhone, visitDate, visitTime, note string) (*domain.Visit, error) {
	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	if _, err := time.Parse("2006-01-02", visitDate); err != nil {
		return nil, ErrInvalidVisitDate
	}
	visitTime = strings.TrimSpace(visitTime)
	if visitTime != "" {
		if _, err := time.Parse("15:04", visitTime); err != nil {
			return nil, ErrInvalidVisitTime
		}
	}

	visit := &domain.Visit{
		ID:          uuid.NewString(),
		ListingID:   listingID,
		AgentID:     agentID,
		ClientName:  clientName,
		ClientPhone: clientPhone,
		VisitDate:   visitDate,
		VisitTime:   visitTime,
		Note:        note,
		Status:      domain.VisitStatusScheduled,
		CreatedOn:   time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.visitRepo.Create(ctx, visit); err != nil {
		return nil, err
	}

	// Confirmation goes to the agent; failures are logged, the visit stands.
	if agent, err := s.userRepo.GetByID(ctx, agentID); err == nil {
		if err := s.email.SendVisitConfirmation(ctx, agent.Email, agent.Name, listing.Title, clientName, visitDate, visitTime); err != nil {
			logger.Warn("visit confirmation email not sent", "visit_id", visit.ID, "error", err)
		}
	}

	return visit, nil
}

func (s *visitService) GetVisit(ctx context.Context, id string) (*domain.Visit, error) {
	return s.visitRepo.GetByID(ctx, id)
}

func (s *visitService) ListVisitsByListing(ctx context.Context, listingID string) ([]domain.Visit, error) {
	return s.visitRepo.ListByListing(ctx, listingID)
}

func (s *visitService) ListMyVisits(ctx context.Context, agentID int32) ([]domain.Visit, error) {
	return s.visitRepo.ListByAgent(ctx, agentID)
}

func (s *visitService) UpdateVisitStatus(ctx context.Context, id string, status domain.VisitStatus) (*domain.Visit, error) {
	switch status {
	case domain.VisitStatusScheduled, domain.VisitStatusConfirmed, domain.VisitStatusCompleted, domain.VisitStatusCancelled:
	default:
		return nil, ErrInvalidStatus
	}
	if err := s.visitRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.visitRepo.GetByID(ctx, id)
}
