package repository

import (
	"context"
	"fmt"

	"github.com/Domenick1991/spacebooking/internal/domain"
)

// BookingRepository is append-only: bookings are inserted once and never updated.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
}

type PGBookingRepository struct {
	db DBTX
}

func NewBookingRepository(db DBTX) BookingRepository {
	return &PGBookingRepository{db: db}
}

func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	err := r.db.QueryRow(ctx, `INSERT INTO bookings (user_id, destination_id, seat_class_id, accommodation_id,
		departure_date, return_date, passengers, total_price, status, booking_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		booking.UserID, booking.DestinationID, booking.SeatClassID, booking.AccommodationID,
		booking.DepartureDate, booking.ReturnDate, booking.Passengers, booking.TotalPrice, booking.Status, booking.BookingDate).
		Scan(&booking.ID)
	if err != nil {
		return insertErr(err, domain.KindBooking)
	}
	return nil
}

func (r *PGBookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT id, user_id, destination_id, seat_class_id, accommodation_id,
		departure_date, return_date, passengers, total_price, status, booking_date
		FROM bookings WHERE user_id=$1 ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.UserID, &b.DestinationID, &b.SeatClassID, &b.AccommodationID,
			&b.DepartureDate, &b.ReturnDate, &b.Passengers, &b.TotalPrice, &b.Status, &b.BookingDate); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

var _ BookingRepository = (*PGBookingRepository)(nil)
