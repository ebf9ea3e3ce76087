package domain

import "time"

type BookingStatus string

// Bookings are created confirmed and never transition.
const BookingStatusConfirmed BookingStatus = "Confirmed"

type Booking struct {
	ID              int64
	UserID          int64
	DestinationID   int64
	SeatClassID     int64
	AccommodationID int64
	DepartureDate   time.Time
	ReturnDate      time.Time
	Passengers      int
	TotalPrice      int64
	Status          BookingStatus
	BookingDate     time.Time
}

// BookingDetails is a booking with its referenced catalog entities resolved.
type BookingDetails struct {
	Booking
	Destination   Destination
	SeatClass     SeatClass
	Accommodation Accommodation
}
