package domain

import "time"

// User statistics are stored as-is and are not derived from bookings.
type User struct {
	ID             int64
	Username       string
	Email          string
	HashedPassword string
	FullName       string
	Bio            *string
	AvatarURL      *string
	TravelerLevel  int
	TotalMiles     int64
	CompletedTrips int
	Destinations   int
	CreatedAt      time.Time
}
