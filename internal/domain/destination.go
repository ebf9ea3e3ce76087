package domain

import "time"

type Destination struct {
	ID          int64
	Name        string
	Description string
	Type        string
	TravelTime  string
	BasePrice   int64
	ImageURL    string
	NextLaunch  string
	CreatedAt   time.Time
}

type SeatClass struct {
	ID            int64
	DestinationID int64
	Name          string
	Description   string
	Price         int64
	Features      []string
	CreatedAt     time.Time
}

type Accommodation struct {
	ID            int64
	DestinationID int64
	Name          string
	Description   string
	PricePerNight int64
	Features      []string
	Rating        float64
	CreatedAt     time.Time
}
