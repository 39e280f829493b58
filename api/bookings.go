package api

import (
	"net/http"

	"github.com/Domenick1991/flightdesk/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	FlightNumber  string `json:"flight_number" binding:"required"`
	PassengerName string `json:"passenger_name" binding:"required"`
}

type cancelBookingResponse struct {
	FlightNumber  string `json:"flight_number"`
	PassengerName string `json:"passenger_name,omitempty"`
	Removed       int    `json:"removed"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/search", h.search)
	router.POST("", h.create)
	router.DELETE("/:number", h.cancel)
}

func (h *BookingHandler) list(c *gin.Context) {
	bookings, err := h.service.List(c.Request.Context(), c.Query("sort"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) search(c *gin.Context) {
	var q searchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	bookings, err := h.service.Search(c.Request.Context(), q.Field, q.Value)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	created, err := h.service.Book(c.Request.Context(), booking.BookInput{
		FlightNumber:  req.FlightNumber,
		PassengerName: req.PassengerName,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// cancel removes the first booking of the passenger on the flight, or every
// booking of the flight when passenger_name is not given.
func (h *BookingHandler) cancel(c *gin.Context) {
	input := booking.CancelInput{
		FlightNumber:  c.Param("number"),
		PassengerName: c.Query("passenger_name"),
	}
	removed, err := h.service.Cancel(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cancelBookingResponse{
		FlightNumber:  input.FlightNumber,
		PassengerName: input.PassengerName,
		Removed:       removed,
	})
}
