package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps service errors to HTTP statuses. A missing record is an
// ordinary "no match" answer, not a server fault.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrUnknownField), errors.Is(err, domain.ErrInvalidValue):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrDuplicateFlight):
		status = http.StatusConflict
	}
	_ = c.Error(err)
	c.JSON(status, errorResponse{Error: err.Error()})
}
