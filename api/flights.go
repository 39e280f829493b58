package api

import (
	"net/http"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

type flightRequest struct {
	FlightNumber string   `json:"flight_number" binding:"required"`
	From         string   `json:"from" binding:"required"`
	To           string   `json:"to" binding:"required"`
	Price        *float64 `json:"price" binding:"required,gte=0"`
	Duration     *float64 `json:"duration" binding:"required,gt=0"`
}

type updateFlightRequest struct {
	From     *string  `json:"from" binding:"omitempty,min=1"`
	To       *string  `json:"to" binding:"omitempty,min=1"`
	Price    *float64 `json:"price" binding:"omitempty,gte=0"`
	Duration *float64 `json:"duration" binding:"omitempty,gt=0"`
}

type searchQuery struct {
	Field string `form:"field" binding:"required"`
	Value string `form:"value"`
}

type deleteFlightResponse struct {
	FlightNumber string `json:"flight_number"`
	Removed      int    `json:"removed"`
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/search", h.search)
	router.GET("/:number", h.get)
	router.POST("", h.create)
	router.PUT("/:number", h.update)
	router.DELETE("/:number", h.delete)
}

func (h *FlightHandler) list(c *gin.Context) {
	flights, err := h.service.List(c.Request.Context(), c.Query("sort"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, flights)
}

func (h *FlightHandler) search(c *gin.Context) {
	var q searchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	flights, err := h.service.Search(c.Request.Context(), q.Field, q.Value)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, flights)
}

func (h *FlightHandler) get(c *gin.Context) {
	flight, err := h.service.Get(c.Request.Context(), c.Param("number"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) create(c *gin.Context) {
	var req flightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	flight, err := h.service.Add(c.Request.Context(), domain.Flight{
		FlightNumber: req.FlightNumber,
		From:         req.From,
		To:           req.To,
		Price:        *req.Price,
		Duration:     *req.Duration,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, flight)
}

func (h *FlightHandler) update(c *gin.Context) {
	var req updateFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	flight, err := h.service.Update(c.Request.Context(), c.Param("number"), domain.FlightPatch{
		From:     req.From,
		To:       req.To,
		Price:    req.Price,
		Duration: req.Duration,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) delete(c *gin.Context) {
	number := c.Param("number")
	removed, err := h.service.Delete(c.Request.Context(), number)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, deleteFlightResponse{FlightNumber: number, Removed: removed})
}
