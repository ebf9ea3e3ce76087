package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is the query surface shared by *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Repositories struct {
	Bookings       BookingRepository
	Destinations   DestinationRepository
	SeatClasses    SeatClassRepository
	Accommodations AccommodationRepository
	Users          UserRepository
}

func NewRepositories(db DBTX) Repositories {
	return Repositories{
		Bookings:       NewBookingRepository(db),
		Destinations:   NewDestinationRepository(db),
		SeatClasses:    NewSeatClassRepository(db),
		Accommodations: NewAccommodationRepository(db),
		Users:          NewUserRepository(db),
	}
}

type TxRunner struct {
	pool *pgxpool.Pool
}

func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// WithinTx runs fn against repositories bound to a single transaction. The
// transaction commits only when fn returns nil.
func (t *TxRunner) WithinTx(ctx context.Context, fn func(Repositories) error) error {
	tx, err := t.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(NewRepositories(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
