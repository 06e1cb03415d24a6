package sheet

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"inmogestion-backend/internal/domain"
	"inmogestion-backend/internal/logger"
	"inmogestion-backend/internal/repository"
	"inmogestion-backend/internal/rowstore"
)

type listingRepository struct {
	rs rowstore.Store
}

func NewListingRepository(rs rowstore.Store) repository.ListingRepository {
	return &listingRepository{rs: rs}
}

func mapRowErr(err error) error {
	if errors.Is(err, rowstore.ErrRowNotFound) || errors.Is(err, rowstore.ErrTabNotFound) {
		return repository.ErrNotFound
	}
	return err
}

func (r *listingRepository) Create(ctx context.Context, l *domain.Listing) error {
	logger.StoreCall("Append", TabListings, "listing_id", l.ID)
	err := r.rs.Append(ctx, TabListings, listingRow(l))
	logger.StoreResult("Append", err, "listing_id", l.ID)
	return err
}

func (r *listingRepository) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	row, err := r.rs.Get(ctx, TabListings, id)
	if err != nil {
		return nil, mapRowErr(err)
	}
	return listingFromRow(row)
}

func (r *listingRepository) all(ctx context.Context) ([]domain.Listing, error) {
	rows, err := r.rs.Rows(ctx, TabListings)
	if err != nil {
		if errors.Is(err, rowstore.ErrTabNotFound) {
			return nil, nil // empty inventory, not an error
		}
		return nil, err
	}
	listings := make([]domain.Listing, 0, len(rows))
	for _, row := range rows {
		l, err := listingFromRow(row)
		if err != nil {
			return nil, err
		}
		listings = append(listings, *l)
	}
	// Newest first; ties broken by id for a stable order.
	sort.Slice(listings, func(i, j int) bool {
		if listings[i].CreatedOn != listings[j].CreatedOn {
			return listings[i].CreatedOn > listings[j].CreatedOn
		}
		return listings[i].ID < listings[j].ID
	})
	return listings, nil
}

func paginate(listings []domain.Listing, page, pageSize int32) ([]domain.Listing, int32) {
	total := int32(len(listings))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	start := (page - 1) * pageSize
	if start >= total {
		return nil, total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return listings[start:end], total
}

func (r *listingRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Listing, int32, error) {
	listings, err := r.all(ctx)
	if err != nil {
		return nil, 0, err
	}
	result, total := paginate(listings, page, pageSize)
	return result, total, nil
}

func (r *listingRepository) ListByAgent(ctx context.Context, agentID int32, page, pageSize int32) ([]domain.Listing, int32, error) {
	listings, err := r.all(ctx)
	if err != nil {
		return nil, 0, err
	}
	var mine []domain.Listing
	for _, l := range listings {
		if l.AgentID == agentID {
			mine = append(mine, l)
		}
	}
	result, total := paginate(mine, page, pageSize)
	return result, total, nil
}

func matchesFilter(l *domain.Listing, f repository.ListingFilter) bool {
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(l.Title), q) &&
			!strings.Contains(strings.ToLower(l.City), q) &&
			!strings.Contains(strings.ToLower(l.Neighborhood), q) {
			return false
		}
	}
	if f.City != "" && !strings.EqualFold(l.City, f.City) {
		return false
	}
	if f.PropertyType != "" && l.PropertyType != f.PropertyType {
		return false
	}
	if f.Status != "" && l.Status != f.Status {
		return false
	}
	if f.Currency != "" && l.Currency != f.Currency {
		return false
	}
	if f.MaxPrice > 0 && l.SaleEvent > f.MaxPrice {
		return false
	}
	return true
}

func (r *listingRepository) Search(ctx context.Context, filter repository.ListingFilter, page, pageSize int32) ([]domain.Listing, int32, error) {
	listings, err := r.all(ctx)
	if err != nil {
		return nil, 0, err
	}
	var matched []domain.Listing
	for i := range listings {
		if matchesFilter(&listings[i], filter) {
			matched = append(matched, listings[i])
		}
	}
	result, total := paginate(matched, page, pageSize)
	return result, total, nil
}

func (r *listingRepository) UpdateStatus(ctx context.Context, id string, status domain.SaleStatus, buyerClient string) error {
	if err := r.rs.UpdateCell(ctx, TabListings, id, colStatus, string(status)); err != nil {
		return mapRowErr(err)
	}
	if buyerClient != "" {
		if err := r.rs.UpdateCell(ctx, TabListings, id, colBuyerClient, buyerClient); err != nil {
			return mapRowErr(err)
		}
	}
	return mapRowErr(r.touch(ctx, id))
}

func (r *listingRepository) UpdatePayment(ctx context.Context, id string, amountPaid, debt float64) error {
	if err := r.rs.UpdateCell(ctx, TabListings, id, colAmountPaid, formatAmount(amountPaid)); err != nil {
		return mapRowErr(err)
	}
	if err := r.rs.UpdateCell(ctx, TabListings, id, colDebt, formatAmount(debt)); err != nil {
		return mapRowErr(err)
	}
	return mapRowErr(r.touch(ctx, id))
}

func (r *listingRepository) UpdateMediaRefs(ctx context.Context, id string, photoRefs, docRefs []string) error {
	if err := r.rs.UpdateCell(ctx, TabListings, id, colPhotoRefs, encodeList(photoRefs)); err != nil {
		return mapRowErr(err)
	}
	if err := r.rs.UpdateCell(ctx, TabListings, id, colDocRefs, encodeList(docRefs)); err != nil {
		return mapRowErr(err)
	}
	return mapRowErr(r.touch(ctx, id))
}

func (r *listingRepository) touch(ctx context.Context, id string) error {
	return r.rs.UpdateCell(ctx, TabListings, id, colUpdatedOn, time.Now().UTC().Format(time.RFC3339))
}

func (r *listingRepository) Summary(ctx context.Context) (*domain.InventorySummary, error) {
	listings, err := r.all(ctx)
	if err != nil {
		return nil, err
	}

	summary := &domain.InventorySummary{
		TotalListings:  int32(len(listings)),
		CountsByStatus: make(map[domain.SaleStatus]int32),
	}
	byCurrency := make(map[domain.Currency]*domain.CurrencyTotal)
	for _, l := range listings {
		summary.CountsByStatus[l.Status]++
		ct, ok := byCurrency[l.Currency]
		if !ok {
			ct = &domain.CurrencyTotal{Currency: l.Currency}
			byCurrency[l.Currency] = ct
		}
		ct.Listings++
		ct.SaleValue += l.SaleEvent
		ct.CommissionValue += l.AgentCommission
	}
	for _, c := range domain.Currencies {
		if ct, ok := byCurrency[c]; ok {
			summary.TotalsByCurrency = append(summary.TotalsByCurrency, *ct)
		}
	}
	return summary, nil
}
