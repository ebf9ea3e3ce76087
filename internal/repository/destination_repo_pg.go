package repository

import (
	"context"
	"fmt"

	"github.com/Domenick1991/spacebooking/internal/domain"
)

type DestinationRepository interface {
	List(ctx context.Context) ([]domain.Destination, error)
	GetByID(ctx context.Context, id int64) (*domain.Destination, error)
	Create(ctx context.Context, d *domain.Destination) error
	Count(ctx context.Context) (int64, error)
}

type PGDestinationRepository struct {
	db DBTX
}

func NewDestinationRepository(db DBTX) DestinationRepository {
	return &PGDestinationRepository{db: db}
}

const destinationColumns = `id, name, description, type, travel_time, base_price, image_url, next_launch, created_at`

func (r *PGDestinationRepository) List(ctx context.Context) ([]domain.Destination, error) {
	rows, err := r.db.Query(ctx, `SELECT `+destinationColumns+` FROM destinations ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list destinations: %w", err)
	}
	defer rows.Close()

	destinations := make([]domain.Destination, 0)
	for rows.Next() {
		var d domain.Destination
		if err := rows.Scan(&d.ID, &d.Name, &d.Description, &d.Type, &d.TravelTime, &d.BasePrice, &d.ImageURL, &d.NextLaunch, &d.CreatedAt); err != nil {
			return nil, err
		}
		destinations = append(destinations, d)
	}
	return destinations, rows.Err()
}

func (r *PGDestinationRepository) GetByID(ctx context.Context, id int64) (*domain.Destination, error) {
	row := r.db.QueryRow(ctx, `SELECT `+destinationColumns+` FROM destinations WHERE id=$1`, id)
	var d domain.Destination
	if err := row.Scan(&d.ID, &d.Name, &d.Description, &d.Type, &d.TravelTime, &d.BasePrice, &d.ImageURL, &d.NextLaunch, &d.CreatedAt); err != nil {
		return nil, lookupErr(err, domain.KindDestination, id)
	}
	return &d, nil
}

func (r *PGDestinationRepository) Create(ctx context.Context, d *domain.Destination) error {
	err := r.db.QueryRow(ctx, `INSERT INTO destinations (name, description, type, travel_time, base_price, image_url, next_launch)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`, d.Name, d.Description, d.Type, d.TravelTime, d.BasePrice, d.ImageURL, d.NextLaunch).
		Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		return insertErr(err, domain.KindDestination)
	}
	return nil
}

func (r *PGDestinationRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM destinations`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count destinations: %w", err)
	}
	return n, nil
}

var _ DestinationRepository = (*PGDestinationRepository)(nil)
