package domain

// Flight is one entry of the catalog. The JSON keys are the labels shown to
// the operator and must stay stable for files written by earlier runs.
type Flight struct {
	FlightNumber string  `json:"Flight Number"`
	From         string  `json:"From"`
	To           string  `json:"To"`
	Price        float64 `json:"Price"`
	Duration     float64 `json:"Duration"`
}

// FlightPatch carries the editable fields of a flight. Nil fields are left as they are.
type FlightPatch struct {
	From     *string
	To       *string
	Price    *float64
	Duration *float64
}

// Apply writes the non-nil patch fields into f.
func (p FlightPatch) Apply(f *Flight) {
	if p.From != nil {
		f.From = *p.From
	}
	if p.To != nil {
		f.To = *p.To
	}
	if p.Price != nil {
		f.Price = *p.Price
	}
	if p.Duration != nil {
		f.Duration = *p.Duration
	}
}

func (f Flight) Lookup(field Field) (Value, bool) {
	switch field {
	case FieldFlightNumber:
		return TextValue(f.FlightNumber), true
	case FieldFrom:
		return TextValue(f.From), true
	case FieldTo:
		return TextValue(f.To), true
	case FieldPrice:
		return NumberValue(f.Price), true
	case FieldDuration:
		return NumberValue(f.Duration), true
	default:
		return Value{}, false
	}
}

// SeedFlights is written to an empty catalog on first start.
func SeedFlights() []Flight {
	return []Flight{
		{FlightNumber: "AI101", From: "New York", To: "London", Price: 450, Duration: 7},
		{FlightNumber: "BA202", From: "London", To: "Dubai", Price: 350, Duration: 6},
		{FlightNumber: "EK303", From: "Dubai", To: "Sydney", Price: 950, Duration: 14},
		{FlightNumber: "QA404", From: "Sydney", To: "Tokyo", Price: 700, Duration: 10},
		{FlightNumber: "DL505", From: "Tokyo", To: "New York", Price: 1200, Duration: 12},
	}
}
