package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type Consumer struct {
	reader *kafka.Reader
	log    *zap.Logger
}

func NewConsumer(brokers []string, groupID, topic string, log *zap.Logger) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           brokers,
			GroupID:           groupID,
			Topic:             topic,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
		log: log,
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

// Consume reads booking events until ctx is done. Messages that do not decode
// are logged and skipped.
func (c *Consumer) Consume(ctx context.Context, handler func(context.Context, BookingEvent) error) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

		event, err := DecodeBookingEvent(msg.Value)
		if err != nil {
			c.log.Warn("skip undecodable booking event", zap.Int64("offset", msg.Offset), zap.Error(err))
			continue
		}
		if err := handler(ctx, event); err != nil {
			return err
		}
	}
}

func DecodeBookingEvent(data []byte) (BookingEvent, error) {
	var event BookingEvent
	err := json.Unmarshal(data, &event)
	return event, err
}
