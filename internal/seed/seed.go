package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/Domenick1991/spacebooking/internal/domain"
	"github.com/Domenick1991/spacebooking/internal/pricing"
	"github.com/Domenick1991/spacebooking/internal/repository"
	"github.com/Domenick1991/spacebooking/internal/service/booking"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type BookingCreator interface {
	CreateBooking(ctx context.Context, input booking.CreateBookingInput) (*domain.Booking, error)
}

// Transactor runs fn against repositories bound to one transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(repository.Repositories) error) error
}

type DestinationInvalidator interface {
	InvalidateDestinations(ctx context.Context) error
}

// directTx runs fn on the plain repositories without a transaction.
type directTx struct {
	repos repository.Repositories
}

func (d directTx) WithinTx(ctx context.Context, fn func(repository.Repositories) error) error {
	return fn(d.repos)
}

// Seeder populates an empty catalog with demo data.
type Seeder struct {
	destinations repository.DestinationRepository
	tx           Transactor
	bookings     BookingCreator
	cache        DestinationInvalidator
	logger       *logrus.Logger
	now          func() time.Time
	hashCost     int
}

type Option func(*Seeder)

func WithClock(now func() time.Time) Option {
	return func(s *Seeder) {
		s.now = now
	}
}

func WithHashCost(cost int) Option {
	return func(s *Seeder) {
		s.hashCost = cost
	}
}

// WithTransactor makes the catalog and user inserts all-or-nothing.
func WithTransactor(tx Transactor) Option {
	return func(s *Seeder) {
		s.tx = tx
	}
}

// WithCacheInvalidator drops the cached destination list after a seed.
func WithCacheInvalidator(c DestinationInvalidator) Option {
	return func(s *Seeder) {
		s.cache = c
	}
}

func NewSeeder(repos booking.Repositories, bookings BookingCreator, logger *logrus.Logger, opts ...Option) *Seeder {
	s := &Seeder{
		destinations: repos.Destinations,
		tx:           directTx{repos: repos},
		bookings:     bookings,
		logger:       logger,
		now:          time.Now,
		hashCost:     bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type catalogEntry struct {
	destination    domain.Destination
	seatClasses    []domain.SeatClass
	accommodations []domain.Accommodation
}

// SeedIfEmpty writes the demo catalog, users and bookings unless at least
// one destination already exists. It reports whether anything was written.
// Catalog and users are committed together before bookings are placed
// through the booking workflow.
func (s *Seeder) SeedIfEmpty(ctx context.Context) (bool, error) {
	count, err := s.destinations.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("count destinations: %w", err)
	}
	if count > 0 {
		s.logger.WithField("destinations", count).Debug("catalog already populated, skipping seed")
		return false, nil
	}

	var (
		catalog []catalogEntry
		userIDs []int64
	)
	err = s.tx.WithinTx(ctx, func(repos repository.Repositories) error {
		var err error
		if catalog, err = s.seedCatalog(ctx, repos); err != nil {
			return err
		}
		userIDs, err = s.seedUsers(ctx, repos.Users)
		return err
	})
	if err != nil {
		return false, err
	}

	now := s.now()
	for _, b := range bookings {
		entry := catalog[b.destination]
		_, err := s.bookings.CreateBooking(ctx, booking.CreateBookingInput{
			UserID:          userIDs[b.user],
			DestinationID:   entry.destination.ID,
			SeatClassID:     entry.seatClasses[b.seatTier].ID,
			AccommodationID: entry.accommodations[b.accommodation].ID,
			DepartureDate:   now.AddDate(0, 0, b.departInDays),
			ReturnDate:      now.AddDate(0, 0, b.returnInDays),
			Passengers:      b.passengers,
		})
		if err != nil {
			return false, fmt.Errorf("seed booking: %w", err)
		}
	}

	if s.cache != nil {
		if err := s.cache.InvalidateDestinations(ctx); err != nil {
			s.logger.WithError(err).Warn("failed to invalidate destinations cache")
		}
	}

	s.logger.WithFields(logrus.Fields{
		"destinations": len(catalog),
		"users":        len(userIDs),
		"bookings":     len(bookings),
	}).Info("seeded demo data")
	return true, nil
}

func (s *Seeder) seedCatalog(ctx context.Context, repos repository.Repositories) ([]catalogEntry, error) {
	catalog := make([]catalogEntry, 0, len(destinations))

	for _, d := range destinations {
		dest := d
		if err := repos.Destinations.Create(ctx, &dest); err != nil {
			return nil, fmt.Errorf("seed destination %q: %w", d.Name, err)
		}
		entry := catalogEntry{destination: dest}

		for _, tier := range seatTiers {
			sc := domain.SeatClass{
				DestinationID: dest.ID,
				Name:          tier.name,
				Description:   tier.description,
				Price:         pricing.Tier(dest.BasePrice, tier.multiplier),
				Features:      tier.features,
			}
			if err := repos.SeatClasses.Create(ctx, &sc); err != nil {
				return nil, fmt.Errorf("seed seat class %q: %w", tier.name, err)
			}
			entry.seatClasses = append(entry.seatClasses, sc)
		}

		for _, tier := range accommodationTiers {
			acc := domain.Accommodation{
				DestinationID: dest.ID,
				Name:          fmt.Sprintf("%s at %s", tier.name, dest.Name),
				Description:   tier.description,
				PricePerNight: pricing.Tier(dest.BasePrice, tier.multiplier),
				Features:      tier.features,
				Rating:        tier.rating,
			}
			if err := repos.Accommodations.Create(ctx, &acc); err != nil {
				return nil, fmt.Errorf("seed accommodation %q: %w", acc.Name, err)
			}
			entry.accommodations = append(entry.accommodations, acc)
		}
		catalog = append(catalog, entry)
	}
	return catalog, nil
}

func (s *Seeder) seedUsers(ctx context.Context, repo repository.UserRepository) ([]int64, error) {
	userIDs := make([]int64, 0, len(users))
	for _, du := range users {
		u := du.user
		hash, err := bcrypt.GenerateFromPassword([]byte(du.password), s.hashCost)
		if err != nil {
			return nil, fmt.Errorf("hash seed password: %w", err)
		}
		u.HashedPassword = string(hash)
		if err := repo.Create(ctx, &u); err != nil {
			return nil, fmt.Errorf("seed user %q: %w", u.Username, err)
		}
		userIDs = append(userIDs, u.ID)
	}
	return userIDs, nil
}
