package repository

import (
	"context"
	"fmt"

	"github.com/Domenick1991/spacebooking/internal/domain"
	"github.com/jackc/pgx/v5"
)

type AccommodationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Accommodation, error)
	ListByDestination(ctx context.Context, destinationID int64) ([]domain.Accommodation, error)
	Create(ctx context.Context, a *domain.Accommodation) error
}

type PGAccommodationRepository struct {
	db DBTX
}

func NewAccommodationRepository(db DBTX) AccommodationRepository {
	return &PGAccommodationRepository{db: db}
}

const accommodationColumns = `id, destination_id, name, description, price_per_night, features, rating, created_at`

func scanAccommodation(row pgx.Row) (domain.Accommodation, error) {
	var (
		a   domain.Accommodation
		raw *string
	)
	if err := row.Scan(&a.ID, &a.DestinationID, &a.Name, &a.Description, &a.PricePerNight, &raw, &a.Rating, &a.CreatedAt); err != nil {
		return a, err
	}
	features, err := decodeFeatures(raw)
	if err != nil {
		return a, fmt.Errorf("accommodation %d: %w", a.ID, err)
	}
	a.Features = features
	return a, nil
}

func (r *PGAccommodationRepository) GetByID(ctx context.Context, id int64) (*domain.Accommodation, error) {
	a, err := scanAccommodation(r.db.QueryRow(ctx, `SELECT `+accommodationColumns+` FROM accommodations WHERE id=$1`, id))
	if err != nil {
		return nil, lookupErr(err, domain.KindAccommodation, id)
	}
	return &a, nil
}

func (r *PGAccommodationRepository) ListByDestination(ctx context.Context, destinationID int64) ([]domain.Accommodation, error) {
	rows, err := r.db.Query(ctx, `SELECT `+accommodationColumns+` FROM accommodations WHERE destination_id=$1 ORDER BY id`, destinationID)
	if err != nil {
		return nil, fmt.Errorf("list accommodations: %w", err)
	}
	defer rows.Close()

	accommodations := make([]domain.Accommodation, 0)
	for rows.Next() {
		a, err := scanAccommodation(rows)
		if err != nil {
			return nil, err
		}
		accommodations = append(accommodations, a)
	}
	return accommodations, rows.Err()
}

func (r *PGAccommodationRepository) Create(ctx context.Context, a *domain.Accommodation) error {
	features, err := encodeFeatures(a.Features)
	if err != nil {
		return err
	}
	err = r.db.QueryRow(ctx, `INSERT INTO accommodations (destination_id, name, description, price_per_night, features, rating)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`, a.DestinationID, a.Name, a.Description, a.PricePerNight, features, a.Rating).
		Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return insertErr(err, domain.KindAccommodation)
	}
	return nil
}

var _ AccommodationRepository = (*PGAccommodationRepository)(nil)
