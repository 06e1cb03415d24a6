package postgres

import (
	"context"
	"testing"

	"inmogestion-backend/internal/domain"
	"inmogestion-backend/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

var listingTestColumns = []string{
	"id", "created_on", "updated_on", "status", "agent_id",
	"owner_name", "owner_document", "owner_phone", "owner_alt_phone", "owner_email",
	"currency", "sale_event", "agent_commission", "owner_net", "margin_warning",
	"title", "property_type", "city", "neighborhood", "stratum",
	"area", "rooms", "bathrooms", "floor", "age", "condition", "parking",
	"amenities", "notes", "is_presale", "builder", "project",
	"presale_start", "presale_end", "down_payment", "installments",
	"buyer_client", "amount_paid", "debt", "photo_refs", "doc_refs",
}

func addSampleRow(rows *sqlmock.Rows, id string) *sqlmock.Rows {
	return rows.AddRow(
		id, "2026-08-29T10:00:00Z", "", "AVAILABLE", int32(7),
		"Carlos Pérez", "1098765432", "3001234567", "", "carlos@example.com",
		"COP", 200000000.0, 6000000.0, 194000000.0, false,
		"Apartamento en Cabecera", "APARTMENT", "Bucaramanga", "Cabecera", "4",
		85.5, int32(3), int32(2), "12", "USED", "GOOD", "PRIVATE",
		pq.Array([]string{"Piscina", "Gym"}), "Vista a la ciudad", false, "", "",
		"", "", 0.0, int32(0),
		"", 0.0, 0.0, pq.Array([]string{"frente.jpg"}), pq.Array([]string{}),
	)
}

func TestListingRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewListingRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := addSampleRow(sqlmock.NewRows(listingTestColumns), "L-1")

		mock.ExpectQuery("SELECT (.+) FROM listings WHERE id = \\$1").
			WithArgs("L-1").
			WillReturnRows(rows)

		l, err := repo.GetByID(ctx, "L-1")
		assert.NoError(t, err)
		assert.NotNil(t, l)
		assert.Equal(t, "L-1", l.ID)
		assert.Equal(t, "Apartamento en Cabecera", l.Title)
		assert.Equal(t, float64(200000000), l.SaleEvent)
		assert.Nil(t, l.PreSale)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM listings WHERE id = \\$1").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(listingTestColumns))

		_, err := repo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestListingRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewListingRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		l := &domain.Listing{
			ID:              "L-1",
			CreatedOn:       "2026-08-29T10:00:00Z",
			Status:          domain.SaleStatusAvailable,
			AgentID:         7,
			OwnerName:       "Carlos Pérez",
			Currency:        domain.CurrencyCOP,
			SaleEvent:       200000000,
			AgentCommission: 6000000,
			OwnerNet:        194000000,
			Title:           "Apartamento en Cabecera",
			PropertyType:    domain.PropertyTypeApartment,
			City:            "Bucaramanga",
			Amenities:       []string{"Piscina"},
		}

		mock.ExpectExec("INSERT INTO listings").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(ctx, l)
		assert.NoError(t, err)
	})
}

func TestListingRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewListingRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE listings SET status").
			WithArgs("RESERVED", "María Gómez", sqlmock.AnyArg(), "L-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(ctx, "L-1", domain.SaleStatusReserved, "María Gómez")
		assert.NoError(t, err)
	})

	t.Run("Missing listing", func(t *testing.T) {
		mock.ExpectExec("UPDATE listings SET status").
			WithArgs("SOLD", "", sqlmock.AnyArg(), "nope").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(ctx, "nope", domain.SaleStatusSold, "")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestListingRepository_Summary(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewListingRepository(db)
	ctx := context.Background()

	statusRows := sqlmock.NewRows([]string{"status", "count"}).
		AddRow("AVAILABLE", int32(2)).
		AddRow("SOLD", int32(1))
	mock.ExpectQuery("SELECT status, count\\(\\*\\) FROM listings GROUP BY status").
		WillReturnRows(statusRows)

	currencyRows := sqlmock.NewRows([]string{"currency", "count", "sale_value", "commission_value"}).
		AddRow("COP", int32(2), 300000000.0, 9000000.0).
		AddRow("USD", int32(1), 250000.0, 7500.0)
	mock.ExpectQuery("SELECT currency, count\\(\\*\\)").
		WillReturnRows(currencyRows)

	sum, err := repo.Summary(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int32(3), sum.TotalListings)
	assert.Equal(t, int32(2), sum.CountsByStatus[domain.SaleStatusAvailable])
	assert.Len(t, sum.TotalsByCurrency, 2)
	assert.Equal(t, float64(300000000), sum.TotalsByCurrency[0].SaleValue)
}
