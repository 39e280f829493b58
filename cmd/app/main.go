package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/flightdesk/api"
	"github.com/Domenick1991/flightdesk/config"
	"github.com/Domenick1991/flightdesk/internal/bootstrap"
	"github.com/Domenick1991/flightdesk/internal/cache"
	"github.com/Domenick1991/flightdesk/internal/catalog"
	"github.com/Domenick1991/flightdesk/internal/kafka"
	"github.com/Domenick1991/flightdesk/internal/logger"
	"github.com/Domenick1991/flightdesk/internal/service/booking"
	"github.com/Domenick1991/flightdesk/internal/service/flights"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logg, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logg.Sync()

	if !cfg.Log.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := catalog.Open(cfg.Storage.FlightsFile, cfg.Storage.BookingsFile)
	if err != nil {
		logg.Fatal("open catalog", zap.Error(err))
	}
	logg.Info("catalog loaded",
		zap.String("flights_file", cfg.Storage.FlightsFile),
		zap.String("bookings_file", cfg.Storage.BookingsFile),
		zap.Int("flights", len(store.Flights())),
		zap.Int("bookings", len(store.Bookings())),
	)

	flightOpts := []flights.FlightServiceOption{flights.WithUniqueFlightNumbers(cfg.Catalog.UniqueFlightNumbers)}
	if cfg.Redis.Enabled() {
		redisCache := cache.NewRedisCache(cfg.Redis)
		defer redisCache.Close()
		flightOpts = append(flightOpts, flights.WithCache(redisCache))
	}

	var bookingOpts []booking.BookingServiceOption
	if cfg.Kafka.Enabled() {
		producer := kafka.NewProducer(cfg.Kafka.Brokers, logg)
		defer producer.Close()
		bookingOpts = append(bookingOpts, booking.WithProducer(producer, cfg.Kafka.BookingEventsTopic))
	}

	flightService := flights.NewFlightService(store, logg, flightOpts...)
	bookingService := booking.NewBookingService(store, logg, bookingOpts...)

	router := api.NewRouter(flightService, bookingService, logg)
	if err := bootstrap.Run(ctx, cfg, router, logg); err != nil {
		logg.Fatal("server error", zap.Error(err))
	}
}
