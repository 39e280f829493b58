package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/Domenick1991/flightdesk/internal/service/booking"
	"github.com/Domenick1991/flightdesk/internal/service/flights"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-ID"

// NewRouter wires the flight and booking handlers under /api/v1.
func NewRouter(flightSvc flights.FlightUseCase, bookingSvc booking.BookingUseCase, log *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(log), serialize())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	NewFlightHandler(flightSvc).Register(v1.Group("/flights"))
	NewBookingHandler(bookingSvc).Register(v1.Group("/bookings"))

	return router
}

// serialize lets one interaction run to completion before the next starts.
// The catalog store is not safe for concurrent use.
func serialize() gin.HandlerFunc {
	var mu sync.Mutex
	return func(c *gin.Context) {
		mu.Lock()
		defer mu.Unlock()
		c.Next()
	}
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)

		c.Next()

		fields := []zap.Field{
			zap.String("request_id", id),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("error", c.Errors.String()))
		}
		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			log.Error("request", fields...)
		case status >= http.StatusBadRequest:
			log.Warn("request", fields...)
		default:
			log.Info("request", fields...)
		}
	}
}
