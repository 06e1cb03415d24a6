package sheet

import (
	"context"
	"errors"
	"sort"

	"inmogestion-backend/internal/domain"
	"inmogestion-backend/internal/repository"
	"inmogestion-backend/internal/rowstore"
)

type visitRepository struct {
	rs rowstore.Store
}

func NewVisitRepository(rs rowstore.Store) repository.VisitRepository {
	return &visitRepository{rs: rs}
}

func (r *visitRepository) all(ctx context.Context) ([]domain.Visit, error) {
	rows, err := r.rs.Rows(ctx, TabVisits)
	if err != nil {
		if errors.Is(err, rowstore.ErrTabNotFound) {
			return nil, nil
		}
		return nil, err
	}
	visits := make([]domain.Visit, 0, len(rows))
	for _, row := range rows {
		v, err := visitFromRow(row)
		if err != nil {
			return nil, err
		}
		visits = append(visits, *v)
	}
	sort.Slice(visits, func(i, j int) bool {
		if visits[i].VisitDate != visits[j].VisitDate {
			return visits[i].VisitDate < visits[j].VisitDate
		}
		return visits[i].VisitTime < visits[j].VisitTime
	})
	return visits, nil
}

func (r *visitRepository) Create(ctx context.Context, v *domain.Visit) error {
	return r.rs.Append(ctx, TabVisits, visitRow(v))
}

func (r *visitRepository) GetByID(ctx context.Context, id string) (*domain.Visit, error) {
	row, err := r.rs.Get(ctx, TabVisits, id)
	if err != nil {
		return nil, mapRowErr(err)
	}
	return visitFromRow(row)
}

func (r *visitRepository) ListByListing(ctx context.Context, listingID string) ([]domain.Visit, error) {
	visits, err := r.all(ctx)
	if err != nil {
		return nil, err
	}
	var matched []domain.Visit
	for _, v := range visits {
		if v.ListingID == listingID {
			matched = append(matched, v)
		}
	}
	return matched, nil
}

func (r *visitRepository) ListByAgent(ctx context.Context, agentID int32) ([]domain.Visit, error) {
	visits, err := r.all(ctx)
	if err != nil {
		return nil, err
	}
	var matched []domain.Visit
	for _, v := range visits {
		if v.AgentID == agentID {
			matched = append(matched, v)
		}
	}
	return matched, nil
}

func (r *visitRepository) ListByDate(ctx context.Context, date string) ([]domain.Visit, error) {
	visits, err := r.all(ctx)
	if err != nil {
		return nil, err
	}
	var matched []domain.Visit
	for _, v := range visits {
		if v.VisitDate == date {
			matched = append(matched, v)
		}
	}
	return matched, nil
}

func (r *visitRepository) UpdateStatus(ctx context.Context, id string, status domain.VisitStatus) error {
	return mapRowErr(r.rs.UpdateCell(ctx, TabVisits, id, visitColStatus, string(status)))
}
