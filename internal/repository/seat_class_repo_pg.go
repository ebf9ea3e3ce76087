package repository

import (
	"context"
	"fmt"

	"github.com/Domenick1991/spacebooking/internal/domain"
	"github.com/jackc/pgx/v5"
)

type SeatClassRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.SeatClass, error)
	ListByDestination(ctx context.Context, destinationID int64) ([]domain.SeatClass, error)
	Create(ctx context.Context, sc *domain.SeatClass) error
}

type PGSeatClassRepository struct {
	db DBTX
}

func NewSeatClassRepository(db DBTX) SeatClassRepository {
	return &PGSeatClassRepository{db: db}
}

const seatClassColumns = `id, destination_id, name, description, price, features, created_at`

func scanSeatClass(row pgx.Row) (domain.SeatClass, error) {
	var (
		sc  domain.SeatClass
		raw *string
	)
	if err := row.Scan(&sc.ID, &sc.DestinationID, &sc.Name, &sc.Description, &sc.Price, &raw, &sc.CreatedAt); err != nil {
		return sc, err
	}
	features, err := decodeFeatures(raw)
	if err != nil {
		return sc, fmt.Errorf("seat class %d: %w", sc.ID, err)
	}
	sc.Features = features
	return sc, nil
}

func (r *PGSeatClassRepository) GetByID(ctx context.Context, id int64) (*domain.SeatClass, error) {
	sc, err := scanSeatClass(r.db.QueryRow(ctx, `SELECT `+seatClassColumns+` FROM seat_classes WHERE id=$1`, id))
	if err != nil {
		return nil, lookupErr(err, domain.KindSeatClass, id)
	}
	return &sc, nil
}

func (r *PGSeatClassRepository) ListByDestination(ctx context.Context, destinationID int64) ([]domain.SeatClass, error) {
	rows, err := r.db.Query(ctx, `SELECT `+seatClassColumns+` FROM seat_classes WHERE destination_id=$1 ORDER BY id`, destinationID)
	if err != nil {
		return nil, fmt.Errorf("list seat classes: %w", err)
	}
	defer rows.Close()

	seatClasses := make([]domain.SeatClass, 0)
	for rows.Next() {
		sc, err := scanSeatClass(rows)
		if err != nil {
			return nil, err
		}
		seatClasses = append(seatClasses, sc)
	}
	return seatClasses, rows.Err()
}

func (r *PGSeatClassRepository) Create(ctx context.Context, sc *domain.SeatClass) error {
	features, err := encodeFeatures(sc.Features)
	if err != nil {
		return err
	}
	err = r.db.QueryRow(ctx, `INSERT INTO seat_classes (destination_id, name, description, price, features)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`, sc.DestinationID, sc.Name, sc.Description, sc.Price, features).
		Scan(&sc.ID, &sc.CreatedAt)
	if err != nil {
		return insertErr(err, domain.KindSeatClass)
	}
	return nil
}

var _ SeatClassRepository = (*PGSeatClassRepository)(nil)
