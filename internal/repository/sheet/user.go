package sheet

import (
	"context"
	"errors"
	"strings"
	"time"

	"inmogestion-backend/internal/domain"
	"inmogestion-backend/internal/repository"
	"inmogestion-backend/internal/rowstore"
)

type userRepository struct {
	rs rowstore.Store
}

func NewUserRepository(rs rowstore.Store) repository.UserRepository {
	return &userRepository{rs: rs}
}

func (r *userRepository) all(ctx context.Context) ([]domain.User, error) {
	rows, err := r.rs.Rows(ctx, TabUsers)
	if err != nil {
		if errors.Is(err, rowstore.ErrTabNotFound) {
			return nil, nil
		}
		return nil, err
	}
	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		u, err := userFromRow(row)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, nil
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	// The sheet has no sequence column; the next id is one past the highest
	// in use. Fine for the single-writer deployments this backend serves.
	users, err := r.all(ctx)
	if err != nil {
		return err
	}
	var maxID int32
	for _, existing := range users {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	u.ID = maxID + 1
	if u.CreatedOn == "" {
		u.CreatedOn = time.Now().UTC().Format(time.RFC3339)
	}
	return r.rs.Append(ctx, TabUsers, userRow(u))
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	row, err := r.rs.Get(ctx, TabUsers, formatInt(id))
	if err != nil {
		return nil, mapRowErr(err)
	}
	return userFromRow(row)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	users, err := r.all(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	u.UpdatedOn = time.Now().UTC().Format(time.RFC3339)
	return mapRowErr(r.rs.UpdateRow(ctx, TabUsers, userRow(u)))
}
