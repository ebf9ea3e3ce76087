package api

import (
	"time"

	"github.com/Domenick1991/spacebooking/internal/domain"
)

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

type destinationResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	TravelTime  string `json:"travel_time"`
	BasePrice   int64  `json:"base_price"`
	ImageURL    string `json:"image_url"`
	NextLaunch  string `json:"next_launch"`
	CreatedAt   string `json:"created_at"`
}

func newDestinationResponse(d domain.Destination) destinationResponse {
	return destinationResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Type:        d.Type,
		TravelTime:  d.TravelTime,
		BasePrice:   d.BasePrice,
		ImageURL:    d.ImageURL,
		NextLaunch:  d.NextLaunch,
		CreatedAt:   formatTime(d.CreatedAt),
	}
}

type seatClassResponse struct {
	ID            int64    `json:"id"`
	DestinationID int64    `json:"destination_id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         int64    `json:"price"`
	Features      []string `json:"features"`
	CreatedAt     string   `json:"created_at"`
}

func newSeatClassResponse(sc domain.SeatClass) seatClassResponse {
	return seatClassResponse{
		ID:            sc.ID,
		DestinationID: sc.DestinationID,
		Name:          sc.Name,
		Description:   sc.Description,
		Price:         sc.Price,
		Features:      nonNil(sc.Features),
		CreatedAt:     formatTime(sc.CreatedAt),
	}
}

type accommodationResponse struct {
	ID            int64    `json:"id"`
	DestinationID int64    `json:"destination_id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	PricePerNight int64    `json:"price_per_night"`
	Features      []string `json:"features"`
	Rating        float64  `json:"rating"`
	CreatedAt     string   `json:"created_at"`
}

func newAccommodationResponse(a domain.Accommodation) accommodationResponse {
	return accommodationResponse{
		ID:            a.ID,
		DestinationID: a.DestinationID,
		Name:          a.Name,
		Description:   a.Description,
		PricePerNight: a.PricePerNight,
		Features:      nonNil(a.Features),
		Rating:        a.Rating,
		CreatedAt:     formatTime(a.CreatedAt),
	}
}

type bookingResponse struct {
	ID              int64  `json:"id"`
	UserID          int64  `json:"user_id"`
	DestinationID   int64  `json:"destination_id"`
	SeatClassID     int64  `json:"seat_class_id"`
	AccommodationID int64  `json:"accommodation_id"`
	DepartureDate   string `json:"departure_date"`
	ReturnDate      string `json:"return_date"`
	Passengers      int    `json:"passengers"`
	TotalPrice      int64  `json:"total_price"`
	Status          string `json:"status"`
	BookingDate     string `json:"booking_date"`
}

func newBookingResponse(b domain.Booking) bookingResponse {
	return bookingResponse{
		ID:              b.ID,
		UserID:          b.UserID,
		DestinationID:   b.DestinationID,
		SeatClassID:     b.SeatClassID,
		AccommodationID: b.AccommodationID,
		DepartureDate:   formatTime(b.DepartureDate),
		ReturnDate:      formatTime(b.ReturnDate),
		Passengers:      b.Passengers,
		TotalPrice:      b.TotalPrice,
		Status:          string(b.Status),
		BookingDate:     formatTime(b.BookingDate),
	}
}

type bookingDetailsResponse struct {
	ID            int64                 `json:"id"`
	UserID        int64                 `json:"user_id"`
	Destination   destinationResponse   `json:"destination"`
	SeatClass     seatClassResponse     `json:"seat_class"`
	Accommodation accommodationResponse `json:"accommodation"`
	DepartureDate string                `json:"departure_date"`
	ReturnDate    string                `json:"return_date"`
	Passengers    int                   `json:"passengers"`
	TotalPrice    int64                 `json:"total_price"`
	Status        string                `json:"status"`
	BookingDate   string                `json:"booking_date"`
}

func newBookingDetailsResponse(d domain.BookingDetails) bookingDetailsResponse {
	return bookingDetailsResponse{
		ID:            d.ID,
		UserID:        d.UserID,
		Destination:   newDestinationResponse(d.Destination),
		SeatClass:     newSeatClassResponse(d.SeatClass),
		Accommodation: newAccommodationResponse(d.Accommodation),
		DepartureDate: formatTime(d.DepartureDate),
		ReturnDate:    formatTime(d.ReturnDate),
		Passengers:    d.Passengers,
		TotalPrice:    d.TotalPrice,
		Status:        string(d.Status),
		BookingDate:   formatTime(d.BookingDate),
	}
}

type userResponse struct {
	ID             int64   `json:"id"`
	Username       string  `json:"username"`
	Email          string  `json:"email"`
	FullName       string  `json:"full_name"`
	Bio            *string `json:"bio"`
	AvatarURL      *string `json:"avatar_url"`
	TravelerLevel  int     `json:"traveler_level"`
	TotalMiles     int64   `json:"total_miles"`
	CompletedTrips int     `json:"completed_trips"`
	Destinations   int     `json:"destinations"`
	CreatedAt      string  `json:"created_at"`
}

func newUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		FullName:       u.FullName,
		Bio:            u.Bio,
		AvatarURL:      u.AvatarURL,
		TravelerLevel:  u.TravelerLevel,
		TotalMiles:     u.TotalMiles,
		CompletedTrips: u.CompletedTrips,
		Destinations:   u.Destinations,
		CreatedAt:      formatTime(u.CreatedAt),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func mapSlice[T, R any](in []T, f func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}
