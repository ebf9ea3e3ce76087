package catalog

import (
	"context"

	"github.com/Domenick1991/spacebooking/internal/domain"
	"github.com/Domenick1991/spacebooking/internal/repository"
	"github.com/sirupsen/logrus"
)

type CatalogUseCase interface {
	ListDestinations(ctx context.Context) ([]domain.Destination, error)
	GetDestination(ctx context.Context, id int64) (*domain.Destination, error)
	ListSeatClasses(ctx context.Context, destinationID int64) ([]domain.SeatClass, error)
	ListAccommodations(ctx context.Context, destinationID int64) ([]domain.Accommodation, error)
}

type DestinationCache interface {
	GetDestinations(ctx context.Context) ([]domain.Destination, error)
	SetDestinations(ctx context.Context, destinations []domain.Destination) error
}

type CatalogService struct {
	destinations   repository.DestinationRepository
	seatClasses    repository.SeatClassRepository
	accommodations repository.AccommodationRepository
	cache          DestinationCache
	logger         *logrus.Logger
}

type Option func(*CatalogService)

// WithCache enables read-through caching of the destination list.
func WithCache(cache DestinationCache) Option {
	return func(s *CatalogService) {
		s.cache = cache
	}
}

func NewCatalogService(
	destinations repository.DestinationRepository,
	seatClasses repository.SeatClassRepository,
	accommodations repository.AccommodationRepository,
	logger *logrus.Logger,
	opts ...Option,
) *CatalogService {
	s := &CatalogService{
		destinations:   destinations,
		seatClasses:    seatClasses,
		accommodations: accommodations,
		logger:         logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *CatalogService) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	if s.cache != nil {
		cached, err := s.cache.GetDestinations(ctx)
		if err != nil {
			s.logger.WithError(err).Warn("destinations cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	destinations, err := s.destinations.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetDestinations(ctx, destinations); err != nil {
			s.logger.WithError(err).Warn("destinations cache write failed")
		}
	}
	return destinations, nil
}

func (s *CatalogService) GetDestination(ctx context.Context, id int64) (*domain.Destination, error) {
	return s.destinations.GetByID(ctx, id)
}

func (s *CatalogService) ListSeatClasses(ctx context.Context, destinationID int64) ([]domain.SeatClass, error) {
	return s.seatClasses.ListByDestination(ctx, destinationID)
}

func (s *CatalogService) ListAccommodations(ctx context.Context, destinationID int64) ([]domain.Accommodation, error) {
	return s.accommodations.ListByDestination(ctx, destinationID)
}

var _ CatalogUseCase = (*CatalogService)(nil)
