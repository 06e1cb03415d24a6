package postgres

import (
	"context"
	"database/sql"
	"errors"

	"inmogestion-backend/internal/domain"
	"inmogestion-backend/internal/repository"
)

type visitRepository struct {
	db *sql.DB
}

func NewVisitRepository(db *sql.DB) repository.VisitRepository {
	return &visitRepository{db: db}
}

const visitColumns = `id, created_on, listing_id, agent_id, client_name, COALESCE(client_phone, ''), visit_date, COALESCE(visit_time, ''), COALESCE(note, ''), status`

func scanVisit(s rowScanner) (*domain.Visit, error) {
	v := &domain.Visit{}
	err := s.Scan(&v.ID, &v.CreatedOn, &v.ListingID, &v.AgentID, &v.ClientName, &v.ClientPhone, &v.VisitDate, &v.VisitTime, &v.Note, &v.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *visitRepository) Create(ctx context.Context, v *domain.Visit) error {
	query := `INSERT INTO visits (id, created_on, listing_id, agent_id, client_name, client_phone, visit_date, visit_time, note, status)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecContext(ctx, query, v.ID, v.CreatedOn, v.ListingID, v.AgentID, v.ClientName, v.ClientPhone, v.VisitDate, v.VisitTime, v.Note, v.Status)
	return err
}

func (r *visitRepository) GetByID(ctx context.Context, id string) (*domain.Visit, error) {
	query := `SELECT ` + visitColumns + ` FROM visits WHERE id = $1`
	return scanVisit(r.db.QueryRowContext(ctx, query, id))
}

func (r *visitRepository) queryVisits(ctx context.Context, query string, args ...interface{}) ([]domain.Visit, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var visits []domain.Visit
	for rows.Next() {
		v, err := scanVisit(rows)
		if err != nil {
			return nil, err
		}
		visits = append(visits, *v)
	}
	return visits, rows.Err()
}

func (r *visitRepository) ListByListing(ctx context.Context, listingID string) ([]domain.Visit, error) {
	query := `SELECT ` + visitColumns + ` FROM visits WHERE listing_id = $1 ORDER BY visit_date, visit_time`
	return r.queryVisits(ctx, query, listingID)
}

func (r *visitRepository) ListByAgent(ctx context.Context, agentID int32) ([]domain.Visit, error) {
	query := `SELECT ` + visitColumns + ` FROM visits WHERE agent_id = $1 ORDER BY visit_date, visit_time`
	return r.queryVisits(ctx, query, agentID)
}

func (r *visitRepository) ListByDate(ctx context.Context, date string) ([]domain.Visit, error) {
	query := `SELECT ` + visitColumns + ` FROM visits WHERE visit_date = $1 ORDER BY visit_time`
	return r.queryVisits(ctx, query, date)
}

func (r *visitRepository) UpdateStatus(ctx context.Context, id string, status domain.VisitStatus) error {
	result, err := r.db.ExecContext(ctx, `UPDATE visits SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	return checkAffected(result)
}
