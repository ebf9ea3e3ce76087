package seed

import "github.com/Domenick1991/spacebooking/internal/domain"

type seatTier struct {
	name        string
	description string
	multiplier  float64
	features    []string
}

type accommodationTier struct {
	name        string
	description string
	multiplier  float64
	rating      float64
	features    []string
}

type demoUser struct {
	user     domain.User
	password string
}

// demoBooking references entities by their position in the seeded lists.
type demoBooking struct {
	user          int
	destination   int
	seatTier      int
	accommodation int
	departInDays  int
	returnInDays  int
	passengers    int
}

var destinations = []domain.Destination{
	{
		Name:        "Lunar Gateway Station",
		Description: "Experience the moon's orbit in this state-of-the-art space station with breathtaking views of Earth and lunar landscapes.",
		Type:        "Space Station",
		TravelTime:  "3 days",
		BasePrice:   1200000,
		ImageURL:    "/images/lunar-gateway.jpg",
		NextLaunch:  "March 15, 2025",
	},
	{
		Name:        "Mars Base Alpha",
		Description: "Be among the first civilians to visit the red planet. Tour the first human settlement on Mars and experience 0.38g gravity.",
		Type:        "Planetary Base",
		TravelTime:  "8 months",
		BasePrice:   4500000,
		ImageURL:    "/images/mars-base.jpg",
		NextLaunch:  "July 22, 2025",
	},
	{
		Name:        "Europa Orbit Research Station",
		Description: "Journey to Jupiter's moon and participate in research on extraterrestrial life in Europa's subsurface ocean.",
		Type:        "Research Station",
		TravelTime:  "2.5 years",
		BasePrice:   12000000,
		ImageURL:    "/images/europa-station.jpg",
		NextLaunch:  "December 10, 2025",
	},
	{
		Name:        "Orbital Hotel Artemis",
		Description: "Luxury accommodations in Earth's orbit. Experience zero gravity living with five-star amenities.",
		Type:        "Space Hotel",
		TravelTime:  "1 day",
		BasePrice:   850000,
		ImageURL:    "/images/orbital-hotel.jpg",
		NextLaunch:  "April 5, 2025",
	},
	{
		Name:        "Venus Cloud Observatory",
		Description: "Float above Venus's atmosphere and study the greenhouse effect from our specialized research platform.",
		Type:        "Atmospheric Observatory",
		TravelTime:  "5 months",
		BasePrice:   3200000,
		ImageURL:    "/images/venus-observatory.jpg",
		NextLaunch:  "September 18, 2025",
	},
}

var seatTiers = []seatTier{
	{
		name:        "Economy",
		description: "Standard accommodations with essential life support and minimal personal space.",
		multiplier:  1,
		features:    []string{"Basic life support", "Shared quarters", "Standard meals", "Limited storage"},
	},
	{
		name:        "Luxury Cabin",
		description: "Premium accommodations with enhanced comfort and private quarters.",
		multiplier:  1.75,
		features:    []string{"Enhanced life support", "Private cabin", "Gourmet meals", "Increased storage", "Entertainment system"},
	},
	{
		name:        "VIP Zero-G Suite",
		description: "The ultimate space travel experience with dedicated staff and exclusive access to all facilities.",
		multiplier:  3.5,
		features:    []string{"Premium life support", "Luxury suite", "Personal chef", "Exclusive excursions", "Full medical support", "Priority scheduling"},
	},
}

var accommodationTiers = []accommodationTier{
	{
		name:        "Standard Pod",
		description: "Basic accommodation with essential amenities and shared facilities.",
		multiplier:  0.01,
		rating:      3.5,
		features:    []string{"Shared bathroom", "Basic amenities", "Daily cleaning", "Communal dining"},
	},
	{
		name:        "Comfort Suite",
		description: "Mid-tier accommodations with private facilities and enhanced comfort.",
		multiplier:  0.025,
		rating:      4.2,
		features:    []string{"Private bathroom", "Enhanced amenities", "Room service", "Entertainment system", "Small viewport"},
	},
	{
		name:        "Luxury Habitat",
		description: "Premium living space with all amenities and spectacular views.",
		multiplier:  0.05,
		rating:      4.8,
		features:    []string{"Luxury bathroom", "Premium amenities", "24/7 butler service", "Gourmet dining", "Large viewport", "Private excursions"},
	},
}

func strPtr(s string) *string { return &s }

var users = []demoUser{
	{
		user: domain.User{
			Username:       "astro_explorer",
			Email:          "alex@example.com",
			FullName:       "Alex Astronaut",
			Bio:            strPtr("Space enthusiast and adventure seeker"),
			AvatarURL:      strPtr("/avatars/user1.jpg"),
			TravelerLevel:  3,
			TotalMiles:     15000000,
			CompletedTrips: 2,
			Destinations:   2,
		},
		password: "astro_explorer",
	},
	{
		user: domain.User{
			Username:       "cosmic_voyager",
			Email:          "sam@example.com",
			FullName:       "Sam Spacefarer",
			Bio:            strPtr("Professional astronomer turned space tourist"),
			AvatarURL:      strPtr("/avatars/user2.jpg"),
			TravelerLevel:  4,
			TotalMiles:     28000000,
			CompletedTrips: 3,
			Destinations:   3,
		},
		password: "cosmic_voyager",
	},
}

var bookings = []demoBooking{
	{user: 0, destination: 0, seatTier: 1, accommodation: 1, departInDays: 45, returnInDays: 60, passengers: 2},
	{user: 0, destination: 3, seatTier: 0, accommodation: 1, departInDays: 120, returnInDays: 127, passengers: 1},
	{user: 1, destination: 1, seatTier: 1, accommodation: 1, departInDays: 90, returnInDays: 330, passengers: 2},
}
