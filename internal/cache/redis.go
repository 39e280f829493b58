package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Domenick1991/flightdesk/config"
	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisCache keeps derived flight views (one per sort order) in a single hash
// so a catalog change can drop all of them at once.
type RedisCache struct {
	client     redis.Cmdable
	flightsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		flightsTTL: cfg.FlightsTTL(),
	}
}

// GetFlights returns nil, nil on a miss.
func (c *RedisCache) GetFlights(ctx context.Context, view string) ([]domain.Flight, error) {
	data, err := c.client.HGet(ctx, flightsKey(), view).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetFlights(ctx context.Context, view string, flights []domain.Flight) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	_, err = c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, flightsKey(), view, payload)
		pipe.Expire(ctx, flightsKey(), c.flightsTTL)
		return nil
	})
	return err
}

func (c *RedisCache) InvalidateFlights(ctx context.Context) error {
	return c.client.Del(ctx, flightsKey()).Err()
}

func (c *RedisCache) Close() error {
	if closer, ok := c.client.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

func flightsKey() string {
	return "cache:flights"
}
