package repository

import (
	"context"

	"github.com/Domenick1991/spacebooking/internal/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
}

type PGUserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) UserRepository {
	return &PGUserRepository{db: db}
}

func (r *PGUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `SELECT id, username, email, hashed_password, full_name, bio, avatar_url,
		traveler_level, total_miles, completed_trips, destinations, created_at
		FROM users WHERE id=$1`, id)
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.HashedPassword, &u.FullName, &u.Bio, &u.AvatarURL,
		&u.TravelerLevel, &u.TotalMiles, &u.CompletedTrips, &u.Destinations, &u.CreatedAt); err != nil {
		return nil, lookupErr(err, domain.KindUser, id)
	}
	return &u, nil
}

func (r *PGUserRepository) Create(ctx context.Context, u *domain.User) error {
	err := r.db.QueryRow(ctx, `INSERT INTO users (username, email, hashed_password, full_name, bio, avatar_url,
		traveler_level, total_miles, completed_trips, destinations)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at`,
		u.Username, u.Email, u.HashedPassword, u.FullName, u.Bio, u.AvatarURL,
		u.TravelerLevel, u.TotalMiles, u.CompletedTrips, u.Destinations).
		Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return insertErr(err, domain.KindUser)
	}
	return nil
}

var _ UserRepository = (*PGUserRepository)(nil)
