// Package sheet implements the repositories on top of the row-store
// abstraction: each entity lives in a named tab as ordered text rows, the way
// the business previously kept everything in one spreadsheet.
package sheet

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"inmogestion-backend/internal/domain"
	"inmogestion-backend/internal/rowstore"
)

// Tab names. Kept in Spanish to stay import-compatible with the spreadsheet
// this datastore replaces.
const (
	TabListings = "Propiedades"
	TabUsers    = "Usuarios"
	TabVisits   = "Visitas"
)

// Canonical listing column layout. The first block follows the historical
// sheet order; the extension block carries fields the old sheet squeezed into
// free-form cells or dropped entirely. All values are stored as text.
const (
	colID = iota
	colCreatedOn
	colStatus
	colOwnerName
	colOwnerDocument
	colOwnerPhone
	colOwnerEmail
	colSaleEvent
	colAgentCommission
	colTitle
	colCity
	colNeighborhood
	colPropertyType
	colArea
	colRooms
	colFloor
	colAge
	colCondition
	colAmenities
	colNotes
	colIsPreSale
	colBuilder
	colProject
	colPreSaleStart
	colPreSaleEnd
	colDownPayment
	colInstallments
	colPhotoRefs
	colDocRefs
	// extension block
	colOwnerNet
	colCurrency
	colOwnerAltPhone
	colStratum
	colBathrooms
	colParking
	colBuyerClient
	colAmountPaid
	colDebt
	colAgentID
	colMarginWarning
	colUpdatedOn

	listingColumns
)

// Visit columns.
const (
	visitColID = iota
	visitColCreatedOn
	visitColListingID
	visitColAgentID
	visitColClientName
	visitColClientPhone
	visitColDate
	visitColTime
	visitColNote
	visitColStatus

	visitColumns
)

// User columns.
const (
	userColID = iota
	userColCreatedOn
	userColEmail
	userColPhone
	userColName
	userColRole
	userColPasswordHash
	userColUpdatedOn

	userColumns
)

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseAmount(cell string) (float64, error) {
	if cell == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad amount %q", rowstore.ErrMalformedRow, cell)
	}
	return v, nil
}

func formatInt(v int32) string {
	return strconv.FormatInt(int64(v), 10)
}

func parseInt(cell string) (int32, error) {
	if cell == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(cell, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: bad integer %q", rowstore.ErrMalformedRow, cell)
	}
	return int32(v), nil
}

func formatBool(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func parseBool(cell string) bool {
	switch strings.ToLower(strings.TrimSpace(cell)) {
	case "yes", "sí", "si", "true", "1":
		return true
	}
	return false
}

// encodeList serializes a composite field into a single cell. JSON is used so
// entries containing commas or quotes round-trip exactly.
func encodeList(items []string) string {
	if len(items) == 0 {
		return ""
	}
	data, _ := json.Marshal(items)
	return string(data)
}

// decodeList accepts both JSON arrays and legacy comma-joined cells from
// hand-edited sheets.
func decodeList(cell string) []string {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil
	}
	if strings.HasPrefix(cell, "[") {
		var items []string
		if err := json.Unmarshal([]byte(cell), &items); err == nil {
			return items
		}
	}
	parts := strings.Split(cell, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

// listingRow orders every listing attribute into the fixed column sequence.
func listingRow(l *domain.Listing) rowstore.Row {
	row := make(rowstore.Row, listingColumns)
	row[colID] = l.ID
	row[colCreatedOn] = l.CreatedOn
	row[colStatus] = string(l.Status)
	row[colOwnerName] = l.OwnerName
	row[colOwnerDocument] = l.OwnerDocument
	row[colOwnerPhone] = l.OwnerPhone
	row[colOwnerEmail] = l.OwnerEmail
	row[colSaleEvent] = formatAmount(l.SaleEvent)
	row[colAgentCommission] = formatAmount(l.AgentCommission)
	row[colTitle] = l.Title
	row[colCity] = l.City
	row[colNeighborhood] = l.Neighborhood
	row[colPropertyType] = string(l.PropertyType)
	row[colArea] = formatAmount(l.Area)
	row[colRooms] = formatInt(l.Rooms)
	row[colFloor] = l.Floor
	row[colAge] = string(l.Age)
	row[colCondition] = string(l.Condition)
	row[colAmenities] = encodeList(l.Amenities)
	row[colNotes] = l.Notes
	row[colIsPreSale] = formatBool(l.PreSale != nil)
	if l.PreSale != nil {
		row[colBuilder] = l.PreSale.Builder
		row[colProject] = l.PreSale.Project
		row[colPreSaleStart] = l.PreSale.StartDate
		row[colPreSaleEnd] = l.PreSale.EndDate
		row[colDownPayment] = formatAmount(l.PreSale.DownPayment)
		row[colInstallments] = formatInt(l.PreSale.Installments)
	}
	row[colPhotoRefs] = encodeList(l.PhotoRefs)
	row[colDocRefs] = encodeList(l.DocRefs)
	row[colOwnerNet] = formatAmount(l.OwnerNet)
	row[colCurrency] = string(l.Currency)
	row[colOwnerAltPhone] = l.OwnerAltPhone
	row[colStratum] = l.Stratum
	row[colBathrooms] = formatInt(l.Bathrooms)
	row[colParking] = string(l.Parking)
	row[colBuyerClient] = l.BuyerClient
	row[colAmountPaid] = formatAmount(l.AmountPaid)
	row[colDebt] = formatAmount(l.Debt)
	row[colAgentID] = formatInt(l.AgentID)
	row[colMarginWarning] = formatBool(l.MarginWarning)
	row[colUpdatedOn] = l.UpdatedOn
	return row
}

func listingFromRow(row rowstore.Row) (*domain.Listing, error) {
	if len(row) < listingColumns {
		return nil, fmt.Errorf("%w: listing row has %d of %d columns", rowstore.ErrMalformedRow, len(row), listingColumns)
	}

	l := &domain.Listing{
		ID:            row[colID],
		CreatedOn:     row[colCreatedOn],
		UpdatedOn:     row[colUpdatedOn],
		Status:        domain.SaleStatus(row[colStatus]),
		OwnerName:     row[colOwnerName],
		OwnerDocument: row[colOwnerDocument],
		OwnerPhone:    row[colOwnerPhone],
		OwnerAltPhone: row[colOwnerAltPhone],
		OwnerEmail:    row[colOwnerEmail],
		Currency:      domain.Currency(row[colCurrency]),
		Title:         row[colTitle],
		PropertyType:  domain.PropertyType(row[colPropertyType]),
		City:          row[colCity],
		Neighborhood:  row[colNeighborhood],
		Stratum:       row[colStratum],
		Floor:         row[colFloor],
		Age:           domain.AgeBracket(row[colAge]),
		Condition:     domain.PropertyCondition(row[colCondition]),
		Parking:       domain.ParkingType(row[colParking]),
		Amenities:     decodeList(row[colAmenities]),
		Notes:         row[colNotes],
		BuyerClient:   row[colBuyerClient],
		PhotoRefs:     decodeList(row[colPhotoRefs]),
		DocRefs:       decodeList(row[colDocRefs]),
		MarginWarning: parseBool(row[colMarginWarning]),
	}

	var err error
	if l.SaleEvent, err = parseAmount(row[colSaleEvent]); err != nil {
		return nil, err
	}
	if l.AgentCommission, err = parseAmount(row[colAgentCommission]); err != nil {
		return nil, err
	}
	if l.OwnerNet, err = parseAmount(row[colOwnerNet]); err != nil {
		return nil, err
	}
	if l.Area, err = parseAmount(row[colArea]); err != nil {
		return nil, err
	}
	if l.Rooms, err = parseInt(row[colRooms]); err != nil {
		return nil, err
	}
	if l.Bathrooms, err = parseInt(row[colBathrooms]); err != nil {
		return nil, err
	}
	if l.AmountPaid, err = parseAmount(row[colAmountPaid]); err != nil {
		return nil, err
	}
	if l.Debt, err = parseAmount(row[colDebt]); err != nil {
		return nil, err
	}
	if l.AgentID, err = parseInt(row[colAgentID]); err != nil {
		return nil, err
	}

	if parseBool(row[colIsPreSale]) {
		ps := &domain.PreSale{
			Builder:   row[colBuilder],
			Project:   row[colProject],
			StartDate: row[colPreSaleStart],
			EndDate:   row[colPreSaleEnd],
		}
		if ps.DownPayment, err = parseAmount(row[colDownPayment]); err != nil {
			return nil, err
		}
		if ps.Installments, err = parseInt(row[colInstallments]); err != nil {
			return nil, err
		}
		l.PreSale = ps
	}

	return l, nil
}

func visitRow(v *domain.Visit) rowstore.Row {
	row := make(rowstore.Row, visitColumns)
	row[visitColID] = v.ID
	row[visitColCreatedOn] = v.CreatedOn
	row[visitColListingID] = v.ListingID
	row[visitColAgentID] = formatInt(v.AgentID)
	row[visitColClientName] = v.ClientName
	row[visitColClientPhone] = v.ClientPhone
	row[visitColDate] = v.VisitDate
	row[visitColTime] = v.VisitTime
	row[visitColNote] = v.Note
	row[visitColStatus] = string(v.Status)
	return row
}

func visitFromRow(row rowstore.Row) (*domain.Visit, error) {
	if len(row) < visitColumns {
		return nil, fmt.Errorf("%w: visit row has %d of %d columns", rowstore.ErrMalformedRow, len(row), visitColumns)
	}
	agentID, err := parseInt(row[visitColAgentID])
	if err != nil {
		return nil, err
	}
	return &domain.Visit{
		ID:          row[visitColID],
		CreatedOn:   row[visitColCreatedOn],
		ListingID:   row[visitColListingID],
		AgentID:     agentID,
		ClientName:  row[visitColClientName],
		ClientPhone: row[visitColClientPhone],
		VisitDate:   row[visitColDate],
		VisitTime:   row[visitColTime],
		Note:        row[visitColNote],
		Status:      domain.VisitStatus(row[visitColStatus]),
	}, nil
}

func userRow(u *domain.User) rowstore.Row {
	row := make(rowstore.Row, userColumns)
	row[userColID] = formatInt(u.ID)
	row[userColCreatedOn] = u.CreatedOn
	row[userColEmail] = u.Email
	row[userColPhone] = u.PhoneNumber
	row[userColName] = u.Name
	row[userColRole] = string(u.Role)
	row[userColPasswordHash] = u.PasswordHash
	row[userColUpdatedOn] = u.UpdatedOn
	return row
}

func userFromRow(row rowstore.Row) (*domain.User, error) {
	if len(row) < userColumns {
		return nil, fmt.Errorf("%w: user row has %d of %d columns", rowstore.ErrMalformedRow, len(row), userColumns)
	}
	id, err := parseInt(row[userColID])
	if err != nil {
		return nil, err
	}
	return &domain.User{
		ID:           id,
		CreatedOn:    row[userColCreatedOn],
		Email:        row[userColEmail],
		PhoneNumber:  row[userColPhone],
		Name:         row[userColName],
		Role:         domain.UserRole(row[userColRole]),
		PasswordHash: row[userColPasswordHash],
		UpdatedOn:    row[userColUpdatedOn],
	}, nil
}
