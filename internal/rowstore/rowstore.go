package rowstore

import (
	"context"
	"errors"
)

// Row is one record as an ordered list of stringified cells. Cell 0 is the
// row identifier within its tab.
type Row []string

// ID returns the row identifier, or "" for an empty row.
func (r Row) ID() string {
	if len(r) == 0 {
		return ""
	}
	return r[0]
}

var (
	// ErrRowNotFound means the tab exists but holds no row with that id.
	ErrRowNotFound = errors.New("row not found")
	// ErrTabNotFound means the requested tab does not exist yet.
	ErrTabNotFound = errors.New("tab not found")
	// ErrMalformedRow means a stored value could not be decoded into cells.
	ErrMalformedRow = errors.New("malformed row")
	// ErrUnavailable means the backing store could not be reached or written.
	ErrUnavailable = errors.New("row store unavailable")
)

// Store is the spreadsheet-like persistence collaborator: named tabs holding
// ordered text rows. Writes are single atomic row appends or cell updates;
// there is no partial-write state to recover.
type Store interface {
	// Append adds a row to a tab, creating the tab on first use.
	Append(ctx context.Context, tab string, row Row) error
	// Rows returns every row of a tab. Returns ErrTabNotFound for a tab that
	// was never written.
	Rows(ctx context.Context, tab string) ([]Row, error)
	// Get returns the row with the given id.
	Get(ctx context.Context, tab, rowID string) (Row, error)
	// UpdateCell overwrites a single cell of an existing row.
	UpdateCell(ctx context.Context, tab, rowID string, column int, value string) error
	// UpdateRow replaces an existing row wholesale (last write wins).
	UpdateRow(ctx context.Context, tab string, row Row) error
	Close() error
}
