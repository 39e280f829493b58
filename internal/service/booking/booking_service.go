package booking

import (
	"context"
	"fmt"

	"github.com/Domenick1991/flightdesk/internal/catalog"
	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/kafka"
	"github.com/Domenick1991/flightdesk/internal/query"
	"go.uber.org/zap"
)

type BookingUseCase interface {
	List(ctx context.Context, sortBy string) ([]domain.Booking, error)
	Search(ctx context.Context, field, value string) ([]domain.Booking, error)
	Book(ctx context.Context, input BookInput) (*domain.Booking, error)
	Cancel(ctx context.Context, input CancelInput) (int, error)
}

// Catalog is the part of the catalog store the booking service works on.
type Catalog interface {
	Bookings() []domain.Booking
	AddBooking(number, passenger string) (domain.Booking, error)
	DeleteBooking(match func(domain.Booking) bool, all bool) int
	SaveBookings() error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookInput struct {
	FlightNumber  string `json:"flight_number"`
	PassengerName string `json:"passenger_name"`
}

// CancelInput selects bookings to remove. Without a passenger name every
// booking of the flight is removed; with one, only the first match.
type CancelInput struct {
	FlightNumber  string `json:"flight_number"`
	PassengerName string `json:"passenger_name"`
}

type BookingService struct {
	catalog     Catalog
	producer    Producer
	eventsTopic string
	log         *zap.Logger
}

type BookingServiceOption func(*BookingService)

func WithProducer(producer Producer, topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.eventsTopic = topic
	}
}

func NewBookingService(catalog Catalog, log *zap.Logger, opts ...BookingServiceOption) *BookingService {
	service := &BookingService{catalog: catalog, log: log}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) List(ctx context.Context, sortBy string) ([]domain.Booking, error) {
	if sortBy == "" {
		return s.catalog.Bookings(), nil
	}
	field, err := domain.ParseField(sortBy)
	if err != nil {
		return nil, err
	}
	return query.SortByField(s.catalog.Bookings(), field)
}

func (s *BookingService) Search(ctx context.Context, field, value string) ([]domain.Booking, error) {
	f, err := domain.ParseField(field)
	if err != nil {
		return nil, err
	}
	return query.FilterByField(s.catalog.Bookings(), f, value)
}

// Book snapshots the flight for the passenger and persists the ledger.
func (s *BookingService) Book(ctx context.Context, input BookInput) (*domain.Booking, error) {
	booking, err := s.catalog.AddBooking(input.FlightNumber, input.PassengerName)
	if err != nil {
		return nil, err
	}
	if err := s.catalog.SaveBookings(); err != nil {
		s.log.Error("save bookings failed", zap.Error(err))
		return nil, fmt.Errorf("save bookings: %w", err)
	}

	s.log.Info("flight booked",
		zap.String("flight_number", booking.FlightNumber),
		zap.String("passenger", booking.PassengerName),
	)
	s.publish(ctx, kafka.NewBookingEvent(kafka.EventBookingCreated, booking))
	return &booking, nil
}

func (s *BookingService) Cancel(ctx context.Context, input CancelInput) (int, error) {
	all := input.PassengerName == ""
	removed := s.catalog.DeleteBooking(catalog.MatchBooking(input.FlightNumber, input.PassengerName), all)
	if removed == 0 {
		return 0, fmt.Errorf("booking for flight %s: %w", input.FlightNumber, domain.ErrNotFound)
	}
	if err := s.catalog.SaveBookings(); err != nil {
		s.log.Error("save bookings failed", zap.Error(err))
		return 0, fmt.Errorf("save bookings: %w", err)
	}

	s.log.Info("booking cancelled",
		zap.String("flight_number", input.FlightNumber),
		zap.String("passenger", input.PassengerName),
		zap.Int("removed", removed),
	)
	event := kafka.NewBookingEvent(kafka.EventBookingCancelled, domain.Booking{
		Flight:        domain.Flight{FlightNumber: input.FlightNumber},
		PassengerName: input.PassengerName,
	})
	event.Removed = removed
	s.publish(ctx, event)
	return removed, nil
}

// publish never fails the interaction: the ledger is already on disk.
func (s *BookingService) publish(ctx context.Context, event kafka.BookingEvent) {
	if s.producer == nil || s.eventsTopic == "" {
		return
	}
	if err := s.producer.Publish(ctx, s.eventsTopic, event.Booking.FlightNumber, event); err != nil {
		s.log.Warn("publish booking event failed",
			zap.String("type", event.Type),
			zap.String("event_id", event.ID),
			zap.Error(err),
		)
	}
}

var _ BookingUseCase = (*BookingService)(nil)
