package domain

// Booking is a snapshot of a flight taken at booking time plus the passenger.
// It is never updated by later edits of the flight it was taken from.
type Booking struct {
	Flight
	PassengerName string `json:"Passenger Name"`
}

func (b Booking) Lookup(field Field) (Value, bool) {
	if field == FieldPassengerName {
		return TextValue(b.PassengerName), true
	}
	return b.Flight.Lookup(field)
}
