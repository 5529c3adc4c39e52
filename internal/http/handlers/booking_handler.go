// README: Booking handlers for create/get and lifecycle transitions.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"motorpool/internal/http/middleware"
	"motorpool/internal/modules/booking"
	"motorpool/internal/types"
)

type BookingHandler struct {
	bookings *booking.Service
}

func NewBookingHandler(svc *booking.Service) *BookingHandler {
	return &BookingHandler{bookings: svc}
}

type createBookingReq struct {
	CarID     string    `json:"car_id"`
	StartsAt  time.Time `json:"starts_at"`
	EndsAt    time.Time `json:"ends_at"`
	FeeAmount int64     `json:"fee_amount"`
	FeeCcy    string    `json:"fee_currency"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req createBookingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if !isValidID(req.CarID) {
		writeError(c, http.StatusBadRequest, "invalid car id")
		return
	}
	id, err := h.bookings.Create(c.Request.Context(), booking.CreateCommand{
		CarID:    types.ID(req.CarID),
		UserID:   types.ID(middleware.CallerUID(c)),
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
		Fee:      types.Money{Amount: req.FeeAmount, Currency: req.FeeCcy},
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, map[string]any{"booking_id": id, "status": booking.StatusReserved})
}

func (h *BookingHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if !isValidID(id) {
		writeError(c, http.StatusBadRequest, "invalid booking id")
		return
	}
	b, err := h.bookings.Get(c.Request.Context(), types.ID(id))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{
		"booking_id": b.ID,
		"car_id":     b.CarID,
		"status":     b.Status,
		"starts_at":  b.StartsAt,
		"ends_at":    b.EndsAt,
	})
}

func (h *BookingHandler) Start(c *gin.Context) {
	h.transition(c, func(id types.ID) error {
		return h.bookings.Start(c.Request.Context(), booking.StartCommand{BookingID: id})
	}, booking.StatusActive)
}

func (h *BookingHandler) Complete(c *gin.Context) {
	h.transition(c, func(id types.ID) error {
		return h.bookings.Complete(c.Request.Context(), booking.CompleteCommand{BookingID: id})
	}, booking.StatusCompleted)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	h.transition(c, func(id types.ID) error {
		return h.bookings.Cancel(c.Request.Context(), booking.CancelCommand{
			BookingID: id,
			ActorType: "user",
			Reason:    "user_cancel",
		})
	}, booking.StatusCancelled)
}

func (h *BookingHandler) transition(c *gin.Context, apply func(types.ID) error, to booking.Status) {
	id := c.Param("id")
	if !isValidID(id) {
		writeError(c, http.StatusBadRequest, "invalid booking id")
		return
	}
	if err := apply(types.ID(id)); err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"status": to})
}
