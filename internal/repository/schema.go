package repository

import (
	"context"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id              BIGSERIAL PRIMARY KEY,
		username        TEXT NOT NULL UNIQUE,
		email           TEXT NOT NULL UNIQUE,
		hashed_password TEXT NOT NULL,
		full_name       TEXT NOT NULL DEFAULT '',
		bio             TEXT,
		avatar_url      TEXT,
		traveler_level  INTEGER NOT NULL DEFAULT 1,
		total_miles     BIGINT NOT NULL DEFAULT 0,
		completed_trips INTEGER NOT NULL DEFAULT 0,
		destinations    INTEGER NOT NULL DEFAULT 0,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS destinations (
		id          BIGSERIAL PRIMARY KEY,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		type        TEXT NOT NULL DEFAULT '',
		travel_time TEXT NOT NULL DEFAULT '',
		base_price  BIGINT NOT NULL,
		image_url   TEXT NOT NULL DEFAULT '',
		next_launch TEXT NOT NULL DEFAULT '',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS seat_classes (
		id             BIGSERIAL PRIMARY KEY,
		destination_id BIGINT NOT NULL REFERENCES destinations(id),
		name           TEXT NOT NULL,
		description    TEXT NOT NULL DEFAULT '',
		price          BIGINT NOT NULL,
		features       TEXT NOT NULL DEFAULT '[]',
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS accommodations (
		id              BIGSERIAL PRIMARY KEY,
		destination_id  BIGINT NOT NULL REFERENCES destinations(id),
		name            TEXT NOT NULL,
		description     TEXT NOT NULL DEFAULT '',
		price_per_night BIGINT NOT NULL,
		features        TEXT NOT NULL DEFAULT '[]',
		rating          DOUBLE PRECISION NOT NULL DEFAULT 0,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id               BIGSERIAL PRIMARY KEY,
		user_id          BIGINT NOT NULL REFERENCES users(id),
		destination_id   BIGINT NOT NULL REFERENCES destinations(id),
		seat_class_id    BIGINT NOT NULL REFERENCES seat_classes(id),
		accommodation_id BIGINT NOT NULL REFERENCES accommodations(id),
		departure_date   TIMESTAMPTZ NOT NULL,
		return_date      TIMESTAMPTZ NOT NULL,
		passengers       INTEGER NOT NULL,
		total_price      BIGINT NOT NULL,
		status           TEXT NOT NULL,
		booking_date     TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_seat_classes_destination ON seat_classes (destination_id)`,
	`CREATE INDEX IF NOT EXISTS idx_accommodations_destination ON accommodations (destination_id)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_user ON bookings (user_id)`,
}

// EnsureSchema creates the catalog tables when they are missing. Running it
// against an existing schema changes nothing.
func EnsureSchema(ctx context.Context, db DBTX) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
