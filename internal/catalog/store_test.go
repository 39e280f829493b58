package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/query"
	"github.com/Domenick1991/flightdesk/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) (*Store, string, string) {
	t.Helper()
	dir := t.TempDir()
	flights := filepath.Join(dir, "flights.json")
	bookings := filepath.Join(dir, "bookings.json")
	s, err := Open(flights, bookings)
	require.NoError(t, err)
	return s, flights, bookings
}

func TestOpen_SeedsMissingFiles(t *testing.T) {
	s, flightsPath, bookingsPath := openTemp(t)

	assert.Equal(t, domain.SeedFlights(), s.Flights())
	assert.Empty(t, s.Bookings())
	assert.FileExists(t, flightsPath)
	assert.FileExists(t, bookingsPath)
}

func TestOpen_KeepsExistingFiles(t *testing.T) {
	dir := t.TempDir()
	flightsPath := filepath.Join(dir, "flights.json")
	custom := []domain.Flight{{FlightNumber: "LH1", From: "Berlin", To: "Rome", Price: 80, Duration: 2}}
	require.NoError(t, repository.Save(flightsPath, custom))

	s, err := Open(flightsPath, filepath.Join(dir, "bookings.json"))
	require.NoError(t, err)
	assert.Equal(t, custom, s.Flights())
}

func TestOpen_MalformedFileFails(t *testing.T) {
	dir := t.TempDir()
	flightsPath := filepath.Join(dir, "flights.json")
	require.NoError(t, os.WriteFile(flightsPath, []byte("{not json"), 0o644))

	_, err := Open(flightsPath, filepath.Join(dir, "bookings.json"))
	assert.ErrorIs(t, err, domain.ErrParse)
}

func TestStore_AccessorsReturnCopies(t *testing.T) {
	s, _, _ := openTemp(t)

	flights := s.Flights()
	flights[0].Price = 1

	assert.Equal(t, 450.0, s.Flights()[0].Price)

	_, err := s.AddBooking("AI101", "Jane Doe")
	require.NoError(t, err)
	bookings := s.Bookings()
	bookings[0].PassengerName = "John Roe"
	bookings[0].Price = 1

	assert.Equal(t, "Jane Doe", s.Bookings()[0].PassengerName)
	assert.Equal(t, 450.0, s.Bookings()[0].Price)
}

func TestStore_AddBookingAppendsToLedger(t *testing.T) {
	s, _, _ := openTemp(t)

	first, err := s.AddBooking("AI101", "Jane Doe")
	require.NoError(t, err)
	second, err := s.AddBooking("BA202", "John Roe")
	require.NoError(t, err)

	assert.Equal(t, []domain.Booking{first, second}, s.Bookings())
	assert.Equal(t, "BA202", second.FlightNumber)
	assert.Equal(t, "John Roe", second.PassengerName)
}

func TestStore_EmptyCatalogSortsToEmptyList(t *testing.T) {
	s, _, _ := openTemp(t)
	for _, f := range domain.SeedFlights() {
		s.DeleteFlight(f.FlightNumber)
	}

	sorted, err := query.SortByField(s.Flights(), domain.FieldPrice)
	require.NoError(t, err)
	assert.NotNil(t, sorted)
	assert.Empty(t, sorted)
}

func TestStore_AddSaveLoadRoundTrip(t *testing.T) {
	s, flightsPath, bookingsPath := openTemp(t)

	s.AddFlight(domain.Flight{FlightNumber: "LH606", From: "Berlin", To: "Rome", Price: 120, Duration: 2})
	require.NoError(t, s.SaveFlights())

	reopened, err := Open(flightsPath, bookingsPath)
	require.NoError(t, err)
	assert.Equal(t, s.Flights(), reopened.Flights())
	assert.Len(t, reopened.Flights(), 6)
}

func TestStore_DeleteFlightLeavesOthersIdentical(t *testing.T) {
	s, flightsPath, bookingsPath := openTemp(t)
	s.AddFlight(domain.Flight{FlightNumber: "AI101", From: "Boston", To: "Paris", Price: 600, Duration: 8})

	removed := s.DeleteFlight("AI101")
	require.NoError(t, s.SaveFlights())

	assert.Equal(t, 2, removed)
	reopened, err := Open(flightsPath, bookingsPath)
	require.NoError(t, err)
	assert.Equal(t, domain.SeedFlights()[1:], reopened.Flights())
}

func TestStore_UpdateMissingIsNoop(t *testing.T) {
	s, _, _ := openTemp(t)

	price := 1.0
	assert.False(t, s.UpdateFlight("ZZ999", domain.FlightPatch{Price: &price}))
	assert.Equal(t, domain.SeedFlights(), s.Flights())
}

func TestStore_BookingScenarios(t *testing.T) {
	s, flightsPath, bookingsPath := openTemp(t)

	// Booking AI101 appends a full snapshot and persists it.
	booking, err := s.AddBooking("AI101", "Jane Doe")
	require.NoError(t, err)
	require.NoError(t, s.SaveBookings())

	want := domain.Booking{
		Flight:        domain.Flight{FlightNumber: "AI101", From: "New York", To: "London", Price: 450, Duration: 7},
		PassengerName: "Jane Doe",
	}
	assert.Equal(t, want, booking)
	persisted, err := repository.Load[domain.Booking](bookingsPath)
	require.NoError(t, err)
	assert.Equal(t, []domain.Booking{want}, persisted)

	// A later price change does not reach the booking.
	price := 500.0
	require.True(t, s.UpdateFlight("AI101", domain.FlightPatch{Price: &price}))
	require.NoError(t, s.SaveFlights())

	found, err := query.FilterByField(s.Flights(), domain.FieldFlightNumber, "AI101")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, 500.0, found[0].Price)
	assert.Equal(t, 450.0, s.Bookings()[0].Price)

	// Deleting the flight makes it unbookable.
	s.DeleteFlight("AI101")
	require.NoError(t, s.SaveFlights())
	_, err = s.AddBooking("AI101", "John Roe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Len(t, s.Bookings(), 1)

	reopened, err := Open(flightsPath, bookingsPath)
	require.NoError(t, err)
	assert.Equal(t, s.Flights(), reopened.Flights())
	assert.Equal(t, s.Bookings(), reopened.Bookings())
}

func TestStore_DeleteBooking(t *testing.T) {
	s, _, _ := openTemp(t)
	_, err := s.AddBooking("AI101", "Jane Doe")
	require.NoError(t, err)
	_, err = s.AddBooking("AI101", "John Roe")
	require.NoError(t, err)

	assert.Equal(t, 1, s.DeleteBooking(MatchBooking("AI101", "John Roe"), false))
	assert.Equal(t, 0, s.DeleteBooking(MatchBooking("BA202", ""), true))
	require.Len(t, s.Bookings(), 1)
	assert.Equal(t, "Jane Doe", s.Bookings()[0].PassengerName)
}
