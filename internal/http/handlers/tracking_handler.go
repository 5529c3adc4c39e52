// README: Tracking handlers: single-car and fleet position lookups.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"motorpool/internal/http/middleware"
	"motorpool/internal/modules/tracking"
	"motorpool/internal/types"
)

// TrackingService is the gateway surface the handlers depend on.
type TrackingService interface {
	CarPosition(ctx context.Context, callerID string, carID types.ID) (tracking.CarResult, error)
	Fleet(ctx context.Context, callerID string) (tracking.FleetResult, error)
	PollAfterSeconds() int
}

type TrackingHandler struct {
	tracking TrackingService
}

func NewTrackingHandler(svc TrackingService) *TrackingHandler {
	return &TrackingHandler{tracking: svc}
}

func (h *TrackingHandler) CarPosition(c *gin.Context) {
	id := c.Param("id")
	if !isValidID(id) {
		// Malformed ids are rejected before the rate limiter ever sees them.
		writeJSON(c, http.StatusBadRequest, tracking.CarResult{
			Status:           tracking.StatusCarNotFound,
			PollAfterSeconds: h.tracking.PollAfterSeconds(),
		})
		return
	}
	res, err := h.tracking.CarPosition(c.Request.Context(), middleware.CallerUID(c), types.ID(id))
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, trackingStatusCode(res.Status), res)
}

func (h *TrackingHandler) Fleet(c *gin.Context) {
	res, err := h.tracking.Fleet(c.Request.Context(), middleware.CallerUID(c))
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, trackingStatusCode(res.Status), res)
}

// trackingStatusCode maps the closed status taxonomy onto HTTP codes. The
// status field stays authoritative; ok and no_fix_yet share 200.
func trackingStatusCode(st tracking.Status) int {
	switch st {
	case tracking.StatusOK, tracking.StatusNoFixYet:
		return http.StatusOK
	case tracking.StatusNotMapped, tracking.StatusDeviceNotFound, tracking.StatusCarNotFound:
		return http.StatusNotFound
	case tracking.StatusRateLimited:
		return http.StatusTooManyRequests
	case tracking.StatusNotConfigured:
		return http.StatusServiceUnavailable
	case tracking.StatusTraccarError:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
