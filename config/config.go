package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Storage StorageConfig `yaml:"storage"`
	Catalog CatalogConfig `yaml:"catalog"`
	Redis   RedisConfig   `yaml:"redis"`
	Kafka   KafkaConfig   `yaml:"kafka"`
	Log     LogConfig     `yaml:"log"`
}

type HTTPConfig struct {
	Address    string `yaml:"address"`
	SwaggerDir string `yaml:"swagger_dir"`
}

type StorageConfig struct {
	FlightsFile  string `yaml:"flights_file"`
	BookingsFile string `yaml:"bookings_file"`
}

type CatalogConfig struct {
	// UniqueFlightNumbers rejects a new flight whose number is already listed.
	UniqueFlightNumbers bool `yaml:"unique_flight_numbers"`
}

type RedisConfig struct {
	Addr              string `yaml:"addr"`
	Password          string `yaml:"password"`
	DB                int    `yaml:"db"`
	FlightsTTLSeconds int    `yaml:"flights_ttl_seconds"`
}

func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

func (r RedisConfig) FlightsTTL() time.Duration {
	return time.Duration(r.FlightsTTLSeconds) * time.Second
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	BookingEventsTopic string   `yaml:"booking_events_topic"`
	GroupID            string   `yaml:"group_id"`
}

func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0 && k.BookingEventsTopic != ""
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = "127.0.0.1:8501"
	}
	if c.Storage.FlightsFile == "" {
		c.Storage.FlightsFile = "flights.json"
	}
	if c.Storage.BookingsFile == "" {
		c.Storage.BookingsFile = "bookings.json"
	}
	if c.Redis.FlightsTTLSeconds <= 0 {
		c.Redis.FlightsTTLSeconds = 60
	}
	if c.Kafka.GroupID == "" {
		c.Kafka.GroupID = "flightdesk-confirmations"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}
