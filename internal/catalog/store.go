package catalog

import (
	"fmt"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/repository"
	"github.com/mohae/deepcopy"
)

// Store owns the flight catalog and the booking ledger of one process.
// Mutations only change memory; callers persist with SaveFlights or
// SaveBookings right after each one.
type Store struct {
	flightsFile  *repository.JSONFile[domain.Flight]
	bookingsFile *repository.JSONFile[domain.Booking]

	flights  []domain.Flight
	bookings []domain.Booking
}

// Open seeds missing files and loads both collections.
func Open(flightsPath, bookingsPath string) (*Store, error) {
	s := &Store{
		flightsFile:  repository.NewJSONFile[domain.Flight](flightsPath),
		bookingsFile: repository.NewJSONFile[domain.Booking](bookingsPath),
	}

	if _, err := s.flightsFile.InitializeIfAbsent(domain.SeedFlights()); err != nil {
		return nil, fmt.Errorf("seed flights: %w", err)
	}
	if _, err := s.bookingsFile.InitializeIfAbsent([]domain.Booking{}); err != nil {
		return nil, fmt.Errorf("seed bookings: %w", err)
	}

	var err error
	if s.flights, err = s.flightsFile.Load(); err != nil {
		return nil, fmt.Errorf("load flights: %w", err)
	}
	if s.bookings, err = s.bookingsFile.Load(); err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}
	return s, nil
}

func (s *Store) Flights() []domain.Flight {
	return deepcopy.Copy(s.flights).([]domain.Flight)
}

func (s *Store) Bookings() []domain.Booking {
	return deepcopy.Copy(s.bookings).([]domain.Booking)
}

func (s *Store) FindFlight(number string) (domain.Flight, bool) {
	return FindFlight(s.flights, number)
}

func (s *Store) AddFlight(f domain.Flight) {
	s.flights = AddFlight(s.flights, f)
}

func (s *Store) UpdateFlight(number string, patch domain.FlightPatch) bool {
	return UpdateFlight(s.flights, number, patch)
}

// DeleteFlight removes every flight with number and returns how many went.
func (s *Store) DeleteFlight(number string) int {
	before := len(s.flights)
	s.flights = DeleteFlight(s.flights, number)
	return before - len(s.flights)
}

// AddBooking books the first flight with number for passenger.
func (s *Store) AddBooking(number, passenger string) (domain.Booking, error) {
	flight, ok := s.FindFlight(number)
	if !ok {
		return domain.Booking{}, fmt.Errorf("flight %s: %w", number, domain.ErrNotFound)
	}
	s.bookings = AddBooking(s.bookings, flight, passenger)
	return s.bookings[len(s.bookings)-1], nil
}

func (s *Store) DeleteBooking(match func(domain.Booking) bool, all bool) int {
	var removed int
	s.bookings, removed = DeleteBooking(s.bookings, match, all)
	return removed
}

func (s *Store) SaveFlights() error {
	return s.flightsFile.Save(s.flights)
}

func (s *Store) SaveBookings() error {
	return s.bookingsFile.Save(s.bookings)
}
