package email

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Domenick1991/flightdesk/internal/kafka"
	"go.uber.org/zap"
)

// Sender turns booking events into confirmation notices.
type Sender struct {
	out io.Writer
	log *zap.Logger
}

func NewSender(out io.Writer, log *zap.Logger) *Sender {
	return &Sender{out: out, log: log}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	notice, ok := Render(event)
	if !ok {
		s.log.Debug("no notice for event type", zap.String("type", event.Type))
		return nil
	}
	if _, err := io.WriteString(s.out, notice); err != nil {
		return fmt.Errorf("write notice: %w", err)
	}
	s.log.Info("booking notice sent",
		zap.String("event_id", event.ID),
		zap.String("type", event.Type),
		zap.String("flight_number", event.Booking.FlightNumber),
		zap.String("passenger", event.Booking.PassengerName),
	)
	return nil
}

// Render formats the notice for an event. It reports false for event types
// that produce no notice.
func Render(event kafka.BookingEvent) (string, bool) {
	b := event.Booking
	var sb strings.Builder
	switch event.Type {
	case kafka.EventBookingCreated:
		sb.WriteString("Booking confirmed\n")
		fmt.Fprintf(&sb, "  Passenger: %s\n", b.PassengerName)
		fmt.Fprintf(&sb, "  Flight:    %s\n", b.FlightNumber)
		fmt.Fprintf(&sb, "  Route:     %s -> %s\n", b.From, b.To)
		fmt.Fprintf(&sb, "  Price:     %s\n", formatNumber(b.Price))
		fmt.Fprintf(&sb, "  Duration:  %s h\n", formatNumber(b.Duration))
	case kafka.EventBookingCancelled:
		sb.WriteString("Booking cancelled\n")
		if b.PassengerName != "" {
			fmt.Fprintf(&sb, "  Passenger: %s\n", b.PassengerName)
		}
		fmt.Fprintf(&sb, "  Flight:    %s\n", b.FlightNumber)
		fmt.Fprintf(&sb, "  Removed:   %d\n", event.Removed)
	default:
		return "", false
	}
	return sb.String(), true
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
