// Package pricing computes booking totals. Every function is pure and works
// in integer currency units.
package pricing

import (
	"math"
	"time"

	"github.com/Domenick1991/spacebooking/internal/domain"
)

const secondsPerDay = 24 * 60 * 60

// Quote is the breakdown of a booking total.
type Quote struct {
	SeatPrice          int64
	AccommodationPrice int64
	Nights             int64
	Total              int64
}

// Nights returns the number of whole days between departure and return,
// rounded down. A return before departure yields a negative count.
func Nights(departure, ret time.Time) int64 {
	secs := ret.Unix() - departure.Unix()
	if ret.Nanosecond() < departure.Nanosecond() {
		secs--
	}
	n := secs / secondsPerDay
	if secs < 0 && secs%secondsPerDay != 0 {
		n--
	}
	return n
}

// Compute prices a booking as seat*passengers + pricePerNight*nights. A total
// that does not fit in int64 is rejected as invalid input.
func Compute(seat domain.SeatClass, acc domain.Accommodation, passengers int, departure, ret time.Time) (Quote, error) {
	nights := Nights(departure, ret)
	seatPrice, ok := mul(seat.Price, int64(passengers))
	if !ok {
		return Quote{}, domain.InvalidInput("seat price for %d passengers is out of range", passengers)
	}
	accPrice, ok := mul(acc.PricePerNight, nights)
	if !ok {
		return Quote{}, domain.InvalidInput("accommodation price for %d nights is out of range", nights)
	}
	total := seatPrice + accPrice
	if (accPrice > 0 && total < seatPrice) || (accPrice < 0 && total > seatPrice) {
		return Quote{}, domain.InvalidInput("booking total is out of range")
	}
	return Quote{
		SeatPrice:          seatPrice,
		AccommodationPrice: accPrice,
		Nights:             nights,
		Total:              total,
	}, nil
}

func mul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	c := a * b
	return c, c/b == a
}

// Tier derives a price from a base price and a multiplier, truncating toward zero.
func Tier(base int64, multiplier float64) int64 {
	return int64(float64(base) * multiplier)
}
