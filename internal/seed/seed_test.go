package seed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Domenick1991/spacebooking/internal/domain"
	"github.com/Domenick1991/spacebooking/internal/repository"
	"github.com/Domenick1991/spacebooking/internal/service/booking"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// memStore assigns sequential ids and keeps what was written.
type memStore struct {
	mock.Mock
	destinations   []domain.Destination
	seatClasses    []domain.SeatClass
	accommodations []domain.Accommodation
	users          []domain.User
	userErr        error
}

type destRepo struct{ *memStore }

func (r destRepo) List(ctx context.Context) ([]domain.Destination, error) {
	return r.destinations, nil
}

func (r destRepo) GetByID(ctx context.Context, id int64) (*domain.Destination, error) {
	return nil, domain.NewNotFound(domain.KindDestination, id)
}

func (r destRepo) Create(ctx context.Context, d *domain.Destination) error {
	d.ID = int64(len(r.destinations) + 1)
	r.destinations = append(r.destinations, *d)
	return nil
}

func (r destRepo) Count(ctx context.Context) (int64, error) {
	args := r.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type seatRepo struct{ *memStore }

func (r seatRepo) GetByID(ctx context.Context, id int64) (*domain.SeatClass, error) {
	return nil, domain.NewNotFound(domain.KindSeatClass, id)
}

func (r seatRepo) ListByDestination(ctx context.Context, destinationID int64) ([]domain.SeatClass, error) {
	return []domain.SeatClass{}, nil
}

func (r seatRepo) Create(ctx context.Context, sc *domain.SeatClass) error {
	sc.ID = int64(len(r.seatClasses) + 1)
	r.seatClasses = append(r.seatClasses, *sc)
	return nil
}

type accRepo struct{ *memStore }

func (r accRepo) GetByID(ctx context.Context, id int64) (*domain.Accommodation, error) {
	return nil, domain.NewNotFound(domain.KindAccommodation, id)
}

func (r accRepo) ListByDestination(ctx context.Context, destinationID int64) ([]domain.Accommodation, error) {
	return []domain.Accommodation{}, nil
}

func (r accRepo) Create(ctx context.Context, a *domain.Accommodation) error {
	a.ID = int64(len(r.accommodations) + 1)
	r.accommodations = append(r.accommodations, *a)
	return nil
}

type userRepo struct{ *memStore }

func (r userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return nil, domain.NewNotFound(domain.KindUser, id)
}

func (r userRepo) Create(ctx context.Context, u *domain.User) error {
	if r.userErr != nil {
		return r.userErr
	}
	u.ID = int64(len(r.users) + 1)
	r.users = append(r.users, *u)
	return nil
}

type MockBookingCreator struct {
	mock.Mock
}

func (m *MockBookingCreator) CreateBooking(ctx context.Context, input booking.CreateBookingInput) (*domain.Booking, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type MockInvalidator struct {
	mock.Mock
}

func (m *MockInvalidator) InvalidateDestinations(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// stagingTx hands fn a scratch store and copies it into the target only
// when fn succeeds.
type stagingTx struct {
	target *memStore
	calls  int
	err    error
}

func (tx *stagingTx) WithinTx(ctx context.Context, fn func(repository.Repositories) error) error {
	tx.calls++
	stage := &memStore{userErr: tx.target.userErr}
	tx.err = fn(repository.Repositories{
		Destinations:   destRepo{stage},
		SeatClasses:    seatRepo{stage},
		Accommodations: accRepo{stage},
		Users:          userRepo{stage},
	})
	if tx.err != nil {
		return tx.err
	}
	tx.target.destinations = stage.destinations
	tx.target.seatClasses = stage.seatClasses
	tx.target.accommodations = stage.accommodations
	tx.target.users = stage.users
	return nil
}

var seedNow = time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

func newSeeder(store *memStore, creator *MockBookingCreator, opts ...Option) *Seeder {
	logger, _ := test.NewNullLogger()
	opts = append([]Option{WithClock(func() time.Time { return seedNow }), WithHashCost(bcrypt.MinCost)}, opts...)
	return NewSeeder(booking.Repositories{
		Destinations:   destRepo{store},
		SeatClasses:    seatRepo{store},
		Accommodations: accRepo{store},
		Users:          userRepo{store},
	}, creator, logger, opts...)
}

func TestSeedIfEmpty_PopulatesCatalog(t *testing.T) {
	store := &memStore{}
	creator := &MockBookingCreator{}
	ctx := context.Background()

	store.On("Count", ctx).Return(int64(0), nil).Once()
	creator.On("CreateBooking", ctx, mock.Anything).Return(&domain.Booking{ID: 1}, nil).Times(3)

	seeded, err := newSeeder(store, creator).SeedIfEmpty(ctx)
	require.NoError(t, err)
	assert.True(t, seeded)

	require.Len(t, store.destinations, 5)
	require.Len(t, store.seatClasses, 15)
	require.Len(t, store.accommodations, 15)
	require.Len(t, store.users, 2)

	// Lunar Gateway Station tiers
	assert.Equal(t, int64(1200000), store.seatClasses[0].Price)
	assert.Equal(t, int64(2100000), store.seatClasses[1].Price)
	assert.Equal(t, int64(4200000), store.seatClasses[2].Price)
	assert.Equal(t, int64(12000), store.accommodations[0].PricePerNight)
	assert.Equal(t, int64(30000), store.accommodations[1].PricePerNight)
	assert.Equal(t, int64(60000), store.accommodations[2].PricePerNight)
	assert.Equal(t, "Comfort Suite at Lunar Gateway Station", store.accommodations[1].Name)
	assert.Equal(t, 4.8, store.accommodations[2].Rating)

	for _, sc := range store.seatClasses[3:6] {
		assert.Equal(t, int64(2), sc.DestinationID)
	}

	assert.Equal(t, "astro_explorer", store.users[0].Username)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(store.users[0].HashedPassword), []byte("astro_explorer")))

	creator.AssertNumberOfCalls(t, "CreateBooking", 3)
	first := creator.Calls[0].Arguments.Get(1).(booking.CreateBookingInput)
	assert.Equal(t, booking.CreateBookingInput{
		UserID:          1,
		DestinationID:   1,
		SeatClassID:     2,
		AccommodationID: 2,
		DepartureDate:   seedNow.AddDate(0, 0, 45),
		ReturnDate:      seedNow.AddDate(0, 0, 60),
		Passengers:      2,
	}, first)

	// Orbital Hotel Artemis economy seat and comfort suite
	second := creator.Calls[1].Arguments.Get(1).(booking.CreateBookingInput)
	assert.Equal(t, int64(4), second.DestinationID)
	assert.Equal(t, int64(10), second.SeatClassID)
	assert.Equal(t, int64(11), second.AccommodationID)
}

func TestSeedIfEmpty_SkipsPopulatedCatalog(t *testing.T) {
	store := &memStore{}
	creator := &MockBookingCreator{}
	ctx := context.Background()

	store.On("Count", ctx).Return(int64(5), nil).Once()

	seeded, err := newSeeder(store, creator).SeedIfEmpty(ctx)
	require.NoError(t, err)
	assert.False(t, seeded)
	assert.Empty(t, store.destinations)
	creator.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
}

func TestSeedIfEmpty_CountError(t *testing.T) {
	store := &memStore{}
	ctx := context.Background()

	store.On("Count", ctx).Return(int64(0), errors.New("db down")).Once()

	seeded, err := newSeeder(store, &MockBookingCreator{}).SeedIfEmpty(ctx)
	assert.False(t, seeded)
	assert.ErrorContains(t, err, "count destinations")
}

func TestSeedIfEmpty_BookingError(t *testing.T) {
	store := &memStore{}
	creator := &MockBookingCreator{}
	ctx := context.Background()

	store.On("Count", ctx).Return(int64(0), nil).Once()
	creator.On("CreateBooking", ctx, mock.Anything).Return(nil, domain.InvalidInput("boom")).Once()

	seeded, err := newSeeder(store, creator).SeedIfEmpty(ctx)
	assert.False(t, seeded)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSeedIfEmpty_CommitsCatalogInOneTransaction(t *testing.T) {
	store := &memStore{}
	creator := &MockBookingCreator{}
	invalidator := &MockInvalidator{}
	tx := &stagingTx{target: store}
	ctx := context.Background()

	store.On("Count", ctx).Return(int64(0), nil).Once()
	creator.On("CreateBooking", ctx, mock.Anything).Return(&domain.Booking{ID: 1}, nil).Times(3)
	invalidator.On("InvalidateDestinations", ctx).Return(nil).Once()

	seeded, err := newSeeder(store, creator, WithTransactor(tx), WithCacheInvalidator(invalidator)).SeedIfEmpty(ctx)
	require.NoError(t, err)
	assert.True(t, seeded)
	assert.Equal(t, 1, tx.calls)
	assert.Len(t, store.destinations, 5)
	assert.Len(t, store.users, 2)
	invalidator.AssertExpectations(t)
}

func TestSeedIfEmpty_UserFailureRollsBackCatalog(t *testing.T) {
	store := &memStore{userErr: domain.ErrConflict}
	creator := &MockBookingCreator{}
	invalidator := &MockInvalidator{}
	tx := &stagingTx{target: store}
	ctx := context.Background()

	store.On("Count", ctx).Return(int64(0), nil).Once()

	seeded, err := newSeeder(store, creator, WithTransactor(tx), WithCacheInvalidator(invalidator)).SeedIfEmpty(ctx)
	assert.False(t, seeded)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.ErrorContains(t, err, "seed user")
	assert.Empty(t, store.destinations)
	assert.Empty(t, store.seatClasses)
	creator.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
	invalidator.AssertNotCalled(t, "InvalidateDestinations", mock.Anything)
}

func TestSeedIfEmpty_InvalidateFailureIsNotFatal(t *testing.T) {
	store := &memStore{}
	creator := &MockBookingCreator{}
	invalidator := &MockInvalidator{}
	ctx := context.Background()

	store.On("Count", ctx).Return(int64(0), nil).Once()
	creator.On("CreateBooking", ctx, mock.Anything).Return(&domain.Booking{ID: 1}, nil).Times(3)
	invalidator.On("InvalidateDestinations", ctx).Return(errors.New("redis down")).Once()

	seeded, err := newSeeder(store, creator, WithCacheInvalidator(invalidator)).SeedIfEmpty(ctx)
	require.NoError(t, err)
	assert.True(t, seeded)
	invalidator.AssertExpectations(t)
}

func TestSeedIfEmpty_SkipDoesNotInvalidate(t *testing.T) {
	store := &memStore{}
	invalidator := &MockInvalidator{}
	ctx := context.Background()

	store.On("Count", ctx).Return(int64(3), nil).Once()

	seeded, err := newSeeder(store, &MockBookingCreator{}, WithCacheInvalidator(invalidator)).SeedIfEmpty(ctx)
	require.NoError(t, err)
	assert.False(t, seeded)
	invalidator.AssertNotCalled(t, "InvalidateDestinations", mock.Anything)
}
