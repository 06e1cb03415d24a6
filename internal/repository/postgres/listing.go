package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"inmogestion-backend/internal/domain"
	"inmogestion-backend/internal/repository"

	"github.com/lib/pq"
)

type listingRepository struct {
	db *sql.DB
}

func NewListingRepository(db *sql.DB) repository.ListingRepository {
	return &listingRepository{db: db}
}

const listingColumns = `id, created_on, COALESCE(updated_on::text, ''), status, agent_id,
	owner_name, COALESCE(owner_document, ''), COALESCE(owner_phone, ''), COALESCE(owner_alt_phone, ''), COALESCE(owner_email, ''),
	currency, sale_event, agent_commission, owner_net, margin_warning,
	title, property_type, COALESCE(city, ''), COALESCE(neighborhood, ''), COALESCE(stratum, ''),
	area, rooms, bathrooms, COALESCE(floor, ''), COALESCE(age, ''), COALESCE(condition, ''), COALESCE(parking, ''),
	amenities, COALESCE(notes, ''), is_presale, COALESCE(builder, ''), COALESCE(project, ''),
	COALESCE(presale_start, ''), COALESCE(presale_end, ''), COALESCE(down_payment, 0), COALESCE(installments, 0),
	COALESCE(buyer_client, ''), amount_paid, debt, photo_refs, doc_refs`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanListing(s rowScanner) (*domain.Listing, error) {
	l := &domain.Listing{}
	var isPreSale bool
	var builder, project, presaleStart, presaleEnd string
	var downPayment float64
	var installments int32

	err := s.Scan(&l.ID, &l.CreatedOn, &l.UpdatedOn, &l.Status, &l.AgentID,
		&l.OwnerName, &l.OwnerDocument, &l.OwnerPhone, &l.OwnerAltPhone, &l.OwnerEmail,
		&l.Currency, &l.SaleEvent, &l.AgentCommission, &l.OwnerNet, &l.MarginWarning,
		&l.Title, &l.PropertyType, &l.City, &l.Neighborhood, &l.Stratum,
		&l.Area, &l.Rooms, &l.Bathrooms, &l.Floor, &l.Age, &l.Condition, &l.Parking,
		pq.Array(&l.Amenities), &l.Notes, &isPreSale, &builder, &project,
		&presaleStart, &presaleEnd, &downPayment, &installments,
		&l.BuyerClient, &l.AmountPaid, &l.Debt, pq.Array(&l.PhotoRefs), pq.Array(&l.DocRefs))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if isPreSale {
		l.PreSale = &domain.PreSale{
			Builder:      builder,
			Project:      project,
			StartDate:    presaleStart,
			EndDate:      presaleEnd,
			DownPayment:  downPayment,
			Installments: installments,
		}
	}
	return l, nil
}

func (r *listingRepository) Create(ctx context.Context, l *domain.Listing) error {
	query := `INSERT INTO listings (id, created_on, status, agent_id,
	          owner_name, owner_document, owner_phone, owner_alt_phone, owner_email,
	          currency, sale_event, agent_commission, owner_net, margin_warning,
	          title, property_type, city, neighborhood, stratum,
	          area, rooms, bathrooms, floor, age, condition, parking,
	          amenities, notes, is_presale, builder, project, presale_start, presale_end, down_payment, installments,
	          buyer_client, amount_paid, debt, photo_refs, doc_refs)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
	                  $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32, $33, $34, $35, $36, $37, $38, $39, $40)`

	var builder, project, presaleStart, presaleEnd string
	var downPayment float64
	var installments int32
	isPreSale := l.PreSale != nil
	if isPreSale {
		builder = l.PreSale.Builder
		project = l.PreSale.Project
		presaleStart = l.PreSale.StartDate
		presaleEnd = l.PreSale.EndDate
		downPayment = l.PreSale.DownPayment
		installments = l.PreSale.Installments
	}

	_, err := r.db.ExecContext(ctx, query, l.ID, l.CreatedOn, l.Status, l.AgentID,
		l.OwnerName, l.OwnerDocument, l.OwnerPhone, l.OwnerAltPhone, l.OwnerEmail,
		l.Currency, l.SaleEvent, l.AgentCommission, l.OwnerNet, l.MarginWarning,
		l.Title, l.PropertyType, l.City, l.Neighborhood, l.Stratum,
		l.Area, l.Rooms, l.Bathrooms, l.Floor, l.Age, l.Condition, l.Parking,
		pq.Array(l.Amenities), l.Notes, isPreSale, builder, project, presaleStart, presaleEnd, downPayment, installments,
		l.BuyerClient, l.AmountPaid, l.Debt, pq.Array(l.PhotoRefs), pq.Array(l.DocRefs))
	return err
}

func (r *listingRepository) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE id = $1`
	return scanListing(r.db.QueryRowContext(ctx, query, id))
}

func (r *listingRepository) queryListings(ctx context.Context, query string, args ...interface{}) ([]domain.Listing, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, *l)
	}
	return listings, rows.Err()
}

func (r *listingRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Listing, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + listingColumns + ` FROM listings ORDER BY created_on DESC, id LIMIT $1 OFFSET $2`
	listings, err := r.queryListings(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM listings`).Scan(&count); err != nil {
		return nil, 0, err
	}
	return listings, count, nil
}

func (r *listingRepository) ListByAgent(ctx context.Context, agentID int32, page, pageSize int32) ([]domain.Listing, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + listingColumns + ` FROM listings WHERE agent_id = $1 ORDER BY created_on DESC, id LIMIT $2 OFFSET $3`
	listings, err := r.queryListings(ctx, query, agentID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM listings WHERE agent_id = $1`, agentID).Scan(&count); err != nil {
		return nil, 0, err
	}
	return listings, count, nil
}

func (r *listingRepository) Search(ctx context.Context, f repository.ListingFilter, page, pageSize int32) ([]domain.Listing, int32, error) {
	sqlStr := `SELECT ` + listingColumns + ` FROM listings WHERE 1=1`
	var args []interface{}
	argIdx := 1

	if f.Query != "" {
		sqlStr += fmt.Sprintf(" AND (title ILIKE $%d OR city ILIKE $%d OR neighborhood ILIKE $%d)", argIdx, argIdx, argIdx)
		args = append(args, "%"+f.Query+"%")
		argIdx++
	}
	if f.City != "" {
		sqlStr += fmt.Sprintf(" AND lower(city) = lower($%d)", argIdx)
		args = append(args, f.City)
		argIdx++
	}
	if f.PropertyType != "" {
		sqlStr += fmt.Sprintf(" AND property_type = $%d", argIdx)
		args = append(args, f.PropertyType)
		argIdx++
	}
	if f.Status != "" {
		sqlStr += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, f.Status)
		argIdx++
	}
	if f.Currency != "" {
		sqlStr += fmt.Sprintf(" AND currency = $%d", argIdx)
		args = append(args, f.Currency)
		argIdx++
	}
	if f.MaxPrice > 0 {
		sqlStr += fmt.Sprintf(" AND sale_event <= $%d", argIdx)
		args = append(args, f.MaxPrice)
		argIdx++
	}

	var count int32
	countSQL := "SELECT count(*) FROM (" + sqlStr + ") as sub"
	if err := r.db.QueryRowContext(ctx, countSQL, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	sqlStr += fmt.Sprintf(" ORDER BY created_on DESC, id LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	listings, err := r.queryListings(ctx, sqlStr, args...)
	if err != nil {
		return nil, 0, err
	}
	return listings, count, nil
}

func (r *listingRepository) UpdateStatus(ctx context.Context, id string, status domain.SaleStatus, buyerClient string) error {
	query := `UPDATE listings SET status = $1, buyer_client = COALESCE(NULLIF($2, ''), buyer_client), updated_on = $3 WHERE id = $4`
	result, err := r.db.ExecContext(ctx, query, status, buyerClient, time.Now(), id)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func (r *listingRepository) UpdatePayment(ctx context.Context, id string, amountPaid, debt float64) error {
	query := `UPDATE listings SET amount_paid = $1, debt = $2, updated_on = $3 WHERE id = $4`
	result, err := r.db.ExecContext(ctx, query, amountPaid, debt, time.Now(), id)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func (r *listingRepository) UpdateMediaRefs(ctx context.Context, id string, photoRefs, docRefs []string) error {
	query := `UPDATE listings SET photo_refs = $1, doc_refs = $2, updated_on = $3 WHERE id = $4`
	result, err := r.db.ExecContext(ctx, query, pq.Array(photoRefs), pq.Array(docRefs), time.Now(), id)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func checkAffected(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *listingRepository) Summary(ctx context.Context) (*domain.InventorySummary, error) {
	summary := &domain.InventorySummary{
		CountsByStatus: make(map[domain.SaleStatus]int32),
	}

	rows, err := r.db.QueryContext(ctx, `SELECT status, count(*) FROM listings GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var status domain.SaleStatus
		var count int32
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		summary.CountsByStatus[status] = count
		summary.TotalListings += count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// One bucket per currency tag; amounts in different currencies are never
	// summed together.
	curRows, err := r.db.QueryContext(ctx, `SELECT currency, count(*), COALESCE(sum(sale_event), 0), COALESCE(sum(agent_commission), 0) FROM listings GROUP BY currency ORDER BY currency`)
	if err != nil {
		return nil, err
	}
	defer curRows.Close()
	for curRows.Next() {
		var ct domain.CurrencyTotal
		if err := curRows.Scan(&ct.Currency, &ct.Listings, &ct.SaleValue, &ct.CommissionValue); err != nil {
			return nil, err
		}
		summary.TotalsByCurrency = append(summary.TotalsByCurrency, ct)
	}
	return summary, curRows.Err()
}
