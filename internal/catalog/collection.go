package catalog

import (
	"github.com/Domenick1991/flightdesk/internal/domain"
)

// AddFlight appends f. Duplicate flight numbers are not rejected here.
func AddFlight(flights []domain.Flight, f domain.Flight) []domain.Flight {
	return append(flights, f)
}

// FindFlight returns the first flight with the given number.
func FindFlight(flights []domain.Flight, number string) (domain.Flight, bool) {
	if i := indexOf(flights, number); i >= 0 {
		return flights[i], true
	}
	return domain.Flight{}, false
}

// UpdateFlight patches the first flight with the given number in place.
// It returns false and leaves flights untouched when there is no match.
func UpdateFlight(flights []domain.Flight, number string, patch domain.FlightPatch) bool {
	i := indexOf(flights, number)
	if i < 0 {
		return false
	}
	patch.Apply(&flights[i])
	return true
}

// DeleteFlight returns a new slice without every flight carrying number.
func DeleteFlight(flights []domain.Flight, number string) []domain.Flight {
	out := make([]domain.Flight, 0, len(flights))
	for _, f := range flights {
		if f.FlightNumber != number {
			out = append(out, f)
		}
	}
	return out
}

// AddBooking appends a snapshot of flight booked for passenger.
func AddBooking(bookings []domain.Booking, flight domain.Flight, passenger string) []domain.Booking {
	return append(bookings, NewBooking(flight, passenger))
}

func NewBooking(flight domain.Flight, passenger string) domain.Booking {
	return domain.Booking{
		Flight:        flight,
		PassengerName: passenger,
	}
}

// DeleteBooking removes the first booking satisfying match, or every one of
// them when all is set. It returns the remaining bookings and the number removed.
func DeleteBooking(bookings []domain.Booking, match func(domain.Booking) bool, all bool) ([]domain.Booking, int) {
	out := make([]domain.Booking, 0, len(bookings))
	removed := 0
	for _, b := range bookings {
		if match(b) && (all || removed == 0) {
			removed++
			continue
		}
		out = append(out, b)
	}
	return out, removed
}

// MatchBooking matches bookings of a flight, and of one passenger when passenger is not empty.
func MatchBooking(number, passenger string) func(domain.Booking) bool {
	return func(b domain.Booking) bool {
		if b.FlightNumber != number {
			return false
		}
		return passenger == "" || b.PassengerName == passenger
	}
}

func indexOf(flights []domain.Flight, number string) int {
	for i := range flights {
		if flights[i].FlightNumber == number {
			return i
		}
	}
	return -1
}
