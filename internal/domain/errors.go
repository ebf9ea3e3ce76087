package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
)

type EntityKind string

const (
	KindDestination   EntityKind = "destination"
	KindSeatClass     EntityKind = "seat_class"
	KindAccommodation EntityKind = "accommodation"
	KindUser          EntityKind = "user"
	KindBooking       EntityKind = "booking"
)

var kindTitles = map[EntityKind]string{
	KindDestination:   "Destination",
	KindSeatClass:     "Seat class",
	KindAccommodation: "Accommodation",
	KindUser:          "User",
	KindBooking:       "Booking",
}

// NotFoundError reports a single entity lookup that matched no row.
// errors.Is(err, ErrNotFound) holds for every NotFoundError.
type NotFoundError struct {
	Kind EntityKind
	ID   int64
}

func NewNotFound(kind EntityKind, id int64) *NotFoundError {
	return &NotFoundError{Kind: kind, ID: id}
}

func (e *NotFoundError) Error() string {
	title, ok := kindTitles[e.Kind]
	if !ok {
		title = string(e.Kind)
	}
	return title + " not found"
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func InvalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
