// README: Base handler utilities (JSON helpers, id validation, error mapping).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"motorpool/internal/modules/booking"
	"motorpool/internal/modules/car"
)

type errorResponse struct {
	Error string `json:"error"`
}

// isValidID ensures ids are alphanumeric and at most 32 chars (matches the
// id generator).
func isValidID(v string) bool {
	if v == "" || len(v) > 32 {
		return false
	}
	for _, c := range v {
		if (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			continue
		}
		return false
	}
	return true
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeCarError(c *gin.Context, err error) {
	switch err {
	case car.ErrBadRequest:
		writeError(c, http.StatusBadRequest, err.Error())
	case car.ErrNotFound:
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeBookingError(c *gin.Context, err error) {
	switch err {
	case booking.ErrBadRequest:
		writeError(c, http.StatusBadRequest, err.Error())
	case booking.ErrNotFound:
		writeError(c, http.StatusNotFound, err.Error())
	case booking.ErrInvalidState, booking.ErrConflict, booking.ErrCarUnavailable:
		writeError(c, http.StatusConflict, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
