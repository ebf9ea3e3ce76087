package booking

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/Domenick1991/spacebooking/internal/domain"
	"github.com/Domenick1991/spacebooking/internal/kafka"
	"github.com/Domenick1991/spacebooking/internal/pricing"
	"github.com/Domenick1991/spacebooking/internal/repository"
	"github.com/sirupsen/logrus"
)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	GetUserBookings(ctx context.Context, userID int64) ([]domain.BookingDetails, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type Repositories = repository.Repositories

type BookingService struct {
	bookings           repository.BookingRepository
	destinations       repository.DestinationRepository
	seatClasses        repository.SeatClassRepository
	accommodations     repository.AccommodationRepository
	users              repository.UserRepository
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	now                func() time.Time
	logger             *logrus.Logger
}

// CreateBookingInput carries no price or status: both are set server-side.
type CreateBookingInput struct {
	UserID          int64
	DestinationID   int64
	SeatClassID     int64
	AccommodationID int64
	DepartureDate   time.Time
	ReturnDate      time.Time
	Passengers      int
}

type BookingServiceOption func(*BookingService)

func WithProducer(producer Producer, bookingTopic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.bookingTopic = bookingTopic
	}
}

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func WithClock(now func() time.Time) BookingServiceOption {
	return func(s *BookingService) {
		s.now = now
	}
}

func NewBookingService(repos Repositories, logger *logrus.Logger, opts ...BookingServiceOption) *BookingService {
	service := &BookingService{
		bookings:       repos.Bookings,
		destinations:   repos.Destinations,
		seatClasses:    repos.SeatClasses,
		accommodations: repos.Accommodations,
		users:          repos.Users,
		now:            time.Now,
		logger:         logger,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func validate(input CreateBookingInput) error {
	switch {
	case input.Passengers < 1:
		return domain.InvalidInput("passengers must be at least 1, got %d", input.Passengers)
	case input.Passengers > math.MaxInt32:
		return domain.InvalidInput("passengers must be at most %d, got %d", math.MaxInt32, input.Passengers)
	case input.DepartureDate.IsZero():
		return domain.InvalidInput("departure_date is required")
	case input.ReturnDate.IsZero():
		return domain.InvalidInput("return_date is required")
	case input.ReturnDate.Before(input.DepartureDate):
		return domain.InvalidInput("return_date must not be before departure_date")
	}
	return nil
}

// CreateBooking resolves every referenced entity before anything is written,
// so a failed lookup leaves no booking row behind.
func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	destination, err := s.destinations.GetByID(ctx, input.DestinationID)
	if err != nil {
		return nil, err
	}
	seatClass, err := s.seatClasses.GetByID(ctx, input.SeatClassID)
	if err != nil {
		return nil, err
	}
	accommodation, err := s.accommodations.GetByID(ctx, input.AccommodationID)
	if err != nil {
		return nil, err
	}
	if _, err := s.users.GetByID(ctx, input.UserID); err != nil {
		return nil, err
	}

	if seatClass.DestinationID != destination.ID {
		return nil, domain.InvalidInput("seat class %d does not belong to destination %d", seatClass.ID, destination.ID)
	}
	if accommodation.DestinationID != destination.ID {
		return nil, domain.InvalidInput("accommodation %d does not belong to destination %d", accommodation.ID, destination.ID)
	}

	quote, err := pricing.Compute(*seatClass, *accommodation, input.Passengers, input.DepartureDate, input.ReturnDate)
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		UserID:          input.UserID,
		DestinationID:   destination.ID,
		SeatClassID:     seatClass.ID,
		AccommodationID: accommodation.ID,
		DepartureDate:   input.DepartureDate,
		ReturnDate:      input.ReturnDate,
		Passengers:      input.Passengers,
		TotalPrice:      quote.Total,
		Status:          domain.BookingStatusConfirmed,
		BookingDate:     s.now().UTC(),
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"booking_id":  booking.ID,
		"user_id":     booking.UserID,
		"destination": destination.Name,
		"nights":      quote.Nights,
		"total_price": booking.TotalPrice,
	}).Info("booking created")

	s.publish(ctx, booking, destination.Name)
	return booking, nil
}

// publish is best-effort: the booking is already committed.
func (s *BookingService) publish(ctx context.Context, booking *domain.Booking, destinationName string) {
	if s.producer == nil {
		return
	}

	event := kafka.BookingEvent{
		Type:            kafka.EventBookingCreated,
		BookingID:       booking.ID,
		UserID:          booking.UserID,
		DestinationID:   booking.DestinationID,
		DestinationName: destinationName,
		SeatClassID:     booking.SeatClassID,
		AccommodationID: booking.AccommodationID,
		Passengers:      booking.Passengers,
		TotalPrice:      booking.TotalPrice,
		Status:          string(booking.Status),
		DepartureDate:   booking.DepartureDate,
		ReturnDate:      booking.ReturnDate,
		BookingDate:     booking.BookingDate,
	}
	key := strconv.FormatInt(booking.ID, 10)

	for _, topic := range []string{s.bookingTopic, s.notificationsTopic} {
		if topic == "" {
			continue
		}
		if err := s.producer.Publish(ctx, topic, key, event); err != nil {
			s.logger.WithError(err).WithFields(logrus.Fields{
				"topic":      topic,
				"booking_id": booking.ID,
			}).Warn("failed to publish booking event")
		}
	}
}

// GetUserBookings returns the user's bookings in insertion order with their
// catalog entities embedded.
func (s *BookingService) GetUserBookings(ctx context.Context, userID int64) ([]domain.BookingDetails, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	bookings, err := s.bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	r := newResolver(s)
	details := make([]domain.BookingDetails, 0, len(bookings))
	for _, b := range bookings {
		d, err := r.destination(ctx, b.DestinationID)
		if err != nil {
			return nil, danglingErr(b.ID, err)
		}
		sc, err := r.seatClass(ctx, b.SeatClassID)
		if err != nil {
			return nil, danglingErr(b.ID, err)
		}
		acc, err := r.accommodation(ctx, b.AccommodationID)
		if err != nil {
			return nil, danglingErr(b.ID, err)
		}
		details = append(details, domain.BookingDetails{
			Booking:       b,
			Destination:   *d,
			SeatClass:     *sc,
			Accommodation: *acc,
		})
	}
	return details, nil
}

// danglingErr keeps a missing referenced entity from surfacing as a
// not-found of the user's request.
func danglingErr(bookingID int64, err error) error {
	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		return fmt.Errorf("booking %d references missing %s %d", bookingID, nf.Kind, nf.ID)
	}
	return fmt.Errorf("resolve booking %d: %w", bookingID, err)
}

// resolver memoizes catalog lookups for a single request.
type resolver struct {
	svc            *BookingService
	destinations   map[int64]*domain.Destination
	seatClasses    map[int64]*domain.SeatClass
	accommodations map[int64]*domain.Accommodation
}

func newResolver(svc *BookingService) *resolver {
	return &resolver{
		svc:            svc,
		destinations:   make(map[int64]*domain.Destination),
		seatClasses:    make(map[int64]*domain.SeatClass),
		accommodations: make(map[int64]*domain.Accommodation),
	}
}

func (r *resolver) destination(ctx context.Context, id int64) (*domain.Destination, error) {
	if d, ok := r.destinations[id]; ok {
		return d, nil
	}
	d, err := r.svc.destinations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.destinations[id] = d
	return d, nil
}

func (r *resolver) seatClass(ctx context.Context, id int64) (*domain.SeatClass, error) {
	if sc, ok := r.seatClasses[id]; ok {
		return sc, nil
	}
	sc, err := r.svc.seatClasses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.seatClasses[id] = sc
	return sc, nil
}

func (r *resolver) accommodation(ctx context.Context, id int64) (*domain.Accommodation, error) {
	if a, ok := r.accommodations[id]; ok {
		return a, nil
	}
	a, err := r.svc.accommodations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.accommodations[id] = a
	return a, nil
}

var _ BookingUseCase = (*BookingService)(nil)
