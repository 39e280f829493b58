package flights

import (
	"context"
	"fmt"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/query"
	"go.uber.org/zap"
)

type FlightUseCase interface {
	List(ctx context.Context, sortBy string) ([]domain.Flight, error)
	Search(ctx context.Context, field, value string) ([]domain.Flight, error)
	Get(ctx context.Context, number string) (*domain.Flight, error)
	Add(ctx context.Context, flight domain.Flight) (*domain.Flight, error)
	Update(ctx context.Context, number string, patch domain.FlightPatch) (*domain.Flight, error)
	Delete(ctx context.Context, number string) (int, error)
}

// Catalog is the part of the catalog store the flight service works on.
type Catalog interface {
	Flights() []domain.Flight
	FindFlight(number string) (domain.Flight, bool)
	AddFlight(f domain.Flight)
	UpdateFlight(number string, patch domain.FlightPatch) bool
	DeleteFlight(number string) int
	SaveFlights() error
}

// FlightCache stores sorted flight views keyed by the sort field.
type FlightCache interface {
	GetFlights(ctx context.Context, view string) ([]domain.Flight, error)
	SetFlights(ctx context.Context, view string, flights []domain.Flight) error
	InvalidateFlights(ctx context.Context) error
}

type FlightService struct {
	catalog       Catalog
	cache         FlightCache
	log           *zap.Logger
	uniqueNumbers bool
}

type FlightServiceOption func(*FlightService)

func WithCache(cache FlightCache) FlightServiceOption {
	return func(s *FlightService) {
		s.cache = cache
	}
}

// WithUniqueFlightNumbers makes Add reject a flight number that is already listed.
func WithUniqueFlightNumbers(enabled bool) FlightServiceOption {
	return func(s *FlightService) {
		s.uniqueNumbers = enabled
	}
}

func NewFlightService(catalog Catalog, log *zap.Logger, opts ...FlightServiceOption) *FlightService {
	service := &FlightService{catalog: catalog, log: log}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// List returns the catalog in stored order, or sorted by sortBy when it is set.
func (s *FlightService) List(ctx context.Context, sortBy string) ([]domain.Flight, error) {
	if sortBy == "" {
		return s.catalog.Flights(), nil
	}
	field, err := domain.ParseField(sortBy)
	if err != nil {
		return nil, err
	}

	view := string(field)
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx, view); err == nil && cached != nil {
			return cached, nil
		} else if err != nil {
			s.log.Warn("flight cache read failed", zap.String("view", view), zap.Error(err))
		}
	}

	sorted, err := query.SortByField(s.catalog.Flights(), field)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetFlights(ctx, view, sorted); err != nil {
			s.log.Warn("flight cache write failed", zap.String("view", view), zap.Error(err))
		}
	}
	return sorted, nil
}

func (s *FlightService) Search(ctx context.Context, field, value string) ([]domain.Flight, error) {
	f, err := domain.ParseField(field)
	if err != nil {
		return nil, err
	}
	return query.FilterByField(s.catalog.Flights(), f, value)
}

func (s *FlightService) Get(ctx context.Context, number string) (*domain.Flight, error) {
	flight, ok := s.catalog.FindFlight(number)
	if !ok {
		return nil, fmt.Errorf("flight %s: %w", number, domain.ErrNotFound)
	}
	return &flight, nil
}

func (s *FlightService) Add(ctx context.Context, flight domain.Flight) (*domain.Flight, error) {
	if _, exists := s.catalog.FindFlight(flight.FlightNumber); exists {
		if s.uniqueNumbers {
			return nil, fmt.Errorf("flight %s: %w", flight.FlightNumber, domain.ErrDuplicateFlight)
		}
		s.log.Warn("adding flight with a number that is already listed", zap.String("flight_number", flight.FlightNumber))
	}

	s.catalog.AddFlight(flight)
	if err := s.save(ctx); err != nil {
		return nil, err
	}
	s.log.Info("flight added", zap.String("flight_number", flight.FlightNumber))
	return &flight, nil
}

// Update patches the first flight with number. A missing flight is reported
// before anything is changed.
func (s *FlightService) Update(ctx context.Context, number string, patch domain.FlightPatch) (*domain.Flight, error) {
	if _, ok := s.catalog.FindFlight(number); !ok {
		return nil, fmt.Errorf("flight %s: %w", number, domain.ErrNotFound)
	}

	s.catalog.UpdateFlight(number, patch)
	if err := s.save(ctx); err != nil {
		return nil, err
	}

	updated, _ := s.catalog.FindFlight(number)
	s.log.Info("flight updated", zap.String("flight_number", number))
	return &updated, nil
}

// Delete removes every flight with number and returns how many were removed.
func (s *FlightService) Delete(ctx context.Context, number string) (int, error) {
	removed := s.catalog.DeleteFlight(number)
	if removed == 0 {
		return 0, fmt.Errorf("flight %s: %w", number, domain.ErrNotFound)
	}
	if err := s.save(ctx); err != nil {
		return 0, err
	}
	s.log.Info("flight deleted", zap.String("flight_number", number), zap.Int("removed", removed))
	return removed, nil
}

func (s *FlightService) save(ctx context.Context) error {
	if err := s.catalog.SaveFlights(); err != nil {
		s.log.Error("save flights failed", zap.Error(err))
		return fmt.Errorf("save flights: %w", err)
	}
	if s.cache != nil {
		if err := s.cache.InvalidateFlights(ctx); err != nil {
			s.log.Warn("flight cache invalidation failed", zap.Error(err))
		}
	}
	return nil
}

var _ FlightUseCase = (*FlightService)(nil)
