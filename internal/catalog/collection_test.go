package catalog

import (
	"testing"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestAddFlight_AllowsDuplicateNumbers(t *testing.T) {
	flights := AddFlight(domain.SeedFlights(), domain.Flight{FlightNumber: "AI101", From: "Boston", To: "Paris", Price: 600, Duration: 8})

	assert.Len(t, flights, 6)
	assert.Equal(t, "Boston", flights[5].From)
}

func TestUpdateFlight_PatchesFirstMatchOnly(t *testing.T) {
	flights := AddFlight(domain.SeedFlights(), domain.Flight{FlightNumber: "AI101", From: "Boston", To: "Paris", Price: 600, Duration: 8})

	ok := UpdateFlight(flights, "AI101", domain.FlightPatch{Price: ptr(500.0), To: ptr("Dublin")})

	assert.True(t, ok)
	assert.Equal(t, domain.Flight{FlightNumber: "AI101", From: "New York", To: "Dublin", Price: 500, Duration: 7}, flights[0])
	assert.Equal(t, 600.0, flights[5].Price)
}

func TestUpdateFlight_AllFields(t *testing.T) {
	flights := domain.SeedFlights()
	ok := UpdateFlight(flights, "BA202", domain.FlightPatch{
		From:     ptr("Leeds"),
		To:       ptr("Doha"),
		Price:    ptr(10.0),
		Duration: ptr(5.5),
	})

	assert.True(t, ok)
	assert.Equal(t, domain.Flight{FlightNumber: "BA202", From: "Leeds", To: "Doha", Price: 10, Duration: 5.5}, flights[1])
}

func TestUpdateFlight_MissingLeavesCollectionUnchanged(t *testing.T) {
	flights := domain.SeedFlights()

	ok := UpdateFlight(flights, "ZZ999", domain.FlightPatch{Price: ptr(1.0)})

	assert.False(t, ok)
	assert.Equal(t, domain.SeedFlights(), flights)
}

func TestDeleteFlight_RemovesAllMatches(t *testing.T) {
	flights := AddFlight(domain.SeedFlights(), domain.Flight{FlightNumber: "AI101", From: "Boston"})

	out := DeleteFlight(flights, "AI101")

	assert.Equal(t, domain.SeedFlights()[1:], out)
	// The input is left as it was.
	assert.Len(t, flights, 6)
}

func TestFindFlight(t *testing.T) {
	f, ok := FindFlight(domain.SeedFlights(), "EK303")
	assert.True(t, ok)
	assert.Equal(t, "Sydney", f.To)

	_, ok = FindFlight(domain.SeedFlights(), "nope")
	assert.False(t, ok)
}

func TestAddBooking_IsSnapshot(t *testing.T) {
	flights := domain.SeedFlights()
	bookings := AddBooking(nil, flights[0], "Jane Doe")

	UpdateFlight(flights, "AI101", domain.FlightPatch{Price: ptr(500.0)})

	assert.Equal(t, 450.0, bookings[0].Price)
	assert.Equal(t, "Jane Doe", bookings[0].PassengerName)
}

func TestDeleteBooking_FirstMatch(t *testing.T) {
	seed := domain.SeedFlights()
	bookings := []domain.Booking{
		NewBooking(seed[0], "Jane Doe"),
		NewBooking(seed[1], "Jane Doe"),
		NewBooking(seed[0], "Jane Doe"),
		NewBooking(seed[0], "John Roe"),
	}

	out, removed := DeleteBooking(bookings, MatchBooking("AI101", "Jane Doe"), false)

	assert.Equal(t, 1, removed)
	assert.Equal(t, bookings[1:], out)
}

func TestDeleteBooking_AllForFlight(t *testing.T) {
	seed := domain.SeedFlights()
	bookings := []domain.Booking{
		NewBooking(seed[0], "Jane Doe"),
		NewBooking(seed[1], "Jane Doe"),
		NewBooking(seed[0], "John Roe"),
	}

	out, removed := DeleteBooking(bookings, MatchBooking("AI101", ""), true)

	assert.Equal(t, 2, removed)
	assert.Equal(t, []domain.Booking{bookings[1]}, out)
}

func TestDeleteBooking_NoMatch(t *testing.T) {
	bookings := []domain.Booking{NewBooking(domain.SeedFlights()[0], "Jane Doe")}

	out, removed := DeleteBooking(bookings, MatchBooking("AI101", "Nobody"), false)

	assert.Zero(t, removed)
	assert.Equal(t, bookings, out)
}
