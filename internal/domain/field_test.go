package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseField(t *testing.T) {
	cases := map[string]Field{
		"Flight Number":  FieldFlightNumber,
		"flight_number":  FieldFlightNumber,
		" FROM ":         FieldFrom,
		"to":             FieldTo,
		"Price":          FieldPrice,
		"duration":       FieldDuration,
		"Passenger Name": FieldPassengerName,
		"passenger_name": FieldPassengerName,
	}
	for in, want := range cases {
		got, err := ParseField(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseField("Altitude")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestValue_Compare(t *testing.T) {
	assert.Equal(t, -1, NumberValue(95).Compare(NumberValue(350)))
	assert.Equal(t, 1, TextValue("b").Compare(TextValue("a")))
	assert.True(t, NumberValue(450).Equal(NumberValue(450.0)))
	assert.False(t, TextValue("450").Equal(NumberValue(450)))
	assert.Equal(t, -1, NumberValue(1e9).Compare(TextValue("")))
}

func TestFlightPatch_Apply(t *testing.T) {
	f := Flight{FlightNumber: "AI101", From: "New York", To: "London", Price: 450, Duration: 7}
	to := "Paris"
	duration := 8.0

	FlightPatch{To: &to, Duration: &duration}.Apply(&f)

	assert.Equal(t, Flight{FlightNumber: "AI101", From: "New York", To: "Paris", Price: 450, Duration: 8}, f)
}

func TestBooking_JSONShape(t *testing.T) {
	b := Booking{Flight: SeedFlights()[0], PassengerName: "Jane Doe"}

	data, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Flight Number":"AI101","From":"New York","To":"London","Price":450,"Duration":7,"Passenger Name":"Jane Doe"}`, string(data))

	v, ok := b.Lookup(FieldPassengerName)
	assert.True(t, ok)
	assert.Equal(t, "Jane Doe", v.Text)
	_, ok = SeedFlights()[0].Lookup(FieldPassengerName)
	assert.False(t, ok)
}
