package rowstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	bolt "github.com/boltdb/bolt"
)

// BoltStore keeps every tab in one embedded database file, one bucket per
// tab, rows JSON-encoded under their id. No external database process is
// required, which mirrors the single-spreadsheet deployment this replaces.
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore opens (or creates) the database file at the given path.
func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return &BoltStore{db: db}, nil
}

// Close releases the database file lock.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

func (s *BoltStore) Append(ctx context.Context, tab string, row Row) error {
	if row.ID() == "" {
		return fmt.Errorf("%w: row has no id cell", ErrMalformedRow)
	}
	data, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedRow, err)
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(tab))
		if err != nil {
			return err
		}
		return b.Put([]byte(row.ID()), data)
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (s *BoltStore) Rows(ctx context.Context, tab string) ([]Row, error) {
	var rows []Row
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(tab))
		if b == nil {
			return ErrTabNotFound
		}
		return b.ForEach(func(k, v []byte) error {
			var row Row
			if err := json.Unmarshal(v, &row); err != nil {
				return fmt.Errorf("%w: row %s: %v", ErrMalformedRow, k, err)
			}
			rows = append(rows, row)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *BoltStore) Get(ctx context.Context, tab, rowID string) (Row, error) {
	var row Row
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(tab))
		if b == nil {
			return ErrTabNotFound
		}
		v := b.Get([]byte(rowID))
		if v == nil {
			return ErrRowNotFound
		}
		if err := json.Unmarshal(v, &row); err != nil {
			return fmt.Errorf("%w: row %s: %v", ErrMalformedRow, rowID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (s *BoltStore) UpdateCell(ctx context.Context, tab, rowID string, column int, value string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(tab))
		if b == nil {
			return ErrTabNotFound
		}
		v := b.Get([]byte(rowID))
		if v == nil {
			return ErrRowNotFound
		}
		var row Row
		if err := json.Unmarshal(v, &row); err != nil {
			return fmt.Errorf("%w: row %s: %v", ErrMalformedRow, rowID, err)
		}
		if column < 0 || column >= len(row) {
			return fmt.Errorf("%w: column %d out of range for row of %d cells", ErrMalformedRow, column, len(row))
		}
		row[column] = value
		data, err := json.Marshal(row)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedRow, err)
		}
		return b.Put([]byte(rowID), data)
	})
}

func (s *BoltStore) UpdateRow(ctx context.Context, tab string, row Row) error {
	if row.ID() == "" {
		return fmt.Errorf("%w: row has no id cell", ErrMalformedRow)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(tab))
		if b == nil {
			return ErrTabNotFound
		}
		if b.Get([]byte(row.ID())) == nil {
			return ErrRowNotFound
		}
		data, err := json.Marshal(row)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedRow, err)
		}
		return b.Put([]byte(row.ID()), data)
	})
}
