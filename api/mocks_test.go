package api

import (
	"context"

	"github.com/Domenick1991/spacebooking/internal/domain"
	"github.com/Domenick1991/spacebooking/internal/service/booking"
	"github.com/Domenick1991/spacebooking/internal/service/users"
	"github.com/stretchr/testify/mock"
)

type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) CreateBooking(ctx context.Context, input booking.CreateBookingInput) (*domain.Booking, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) GetUserBookings(ctx context.Context, userID int64) ([]domain.BookingDetails, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookingDetails), args.Error(1)
}

type MockCatalogUseCase struct {
	mock.Mock
}

func (m *MockCatalogUseCase) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Destination), args.Error(1)
}

func (m *MockCatalogUseCase) GetDestination(ctx context.Context, id int64) (*domain.Destination, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Destination), args.Error(1)
}

func (m *MockCatalogUseCase) ListSeatClasses(ctx context.Context, destinationID int64) ([]domain.SeatClass, error) {
	args := m.Called(ctx, destinationID)
	return args.Get(0).([]domain.SeatClass), args.Error(1)
}

func (m *MockCatalogUseCase) ListAccommodations(ctx context.Context, destinationID int64) ([]domain.Accommodation, error) {
	args := m.Called(ctx, destinationID)
	return args.Get(0).([]domain.Accommodation), args.Error(1)
}

type MockUserUseCase struct {
	mock.Mock
}

func (m *MockUserUseCase) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserUseCase) CreateUser(ctx context.Context, input users.CreateUserInput) (*domain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockTipsUseCase struct {
	mock.Mock
}

func (m *MockTipsUseCase) Sample() []string {
	return m.Called().Get(0).([]string)
}

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
