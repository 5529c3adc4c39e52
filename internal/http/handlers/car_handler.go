// README: Car registry handlers (admin CRUD glue).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"motorpool/internal/modules/car"
	"motorpool/internal/types"
)

type CarHandler struct {
	cars *car.Service
}

func NewCarHandler(svc *car.Service) *CarHandler {
	return &CarHandler{cars: svc}
}

type carResponse struct {
	ID              types.ID `json:"id"`
	Name            string   `json:"name"`
	Plate           *string  `json:"plate,omitempty"`
	TraccarDeviceID *int64   `json:"traccar_device_id,omitempty"`
	TraccarUniqueID *string  `json:"traccar_unique_id,omitempty"`
}

func toCarResponse(c *car.Car) carResponse {
	return carResponse{
		ID:              c.ID,
		Name:            c.Name,
		Plate:           c.Plate,
		TraccarDeviceID: c.TraccarDeviceID,
		TraccarUniqueID: c.TraccarUniqueID,
	}
}

type createCarReq struct {
	Name            string  `json:"name"`
	Plate           *string `json:"plate"`
	TraccarDeviceID *int64  `json:"traccar_device_id"`
	TraccarUniqueID *string `json:"traccar_unique_id"`
}

func (h *CarHandler) Create(c *gin.Context) {
	var req createCarReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	id, err := h.cars.Create(c.Request.Context(), car.CreateCommand{
		Name:            req.Name,
		Plate:           req.Plate,
		TraccarDeviceID: req.TraccarDeviceID,
		TraccarUniqueID: req.TraccarUniqueID,
	})
	if err != nil {
		writeCarError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, map[string]any{"car_id": id})
}

func (h *CarHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if !isValidID(id) {
		writeError(c, http.StatusBadRequest, "invalid car id")
		return
	}
	record, err := h.cars.Get(c.Request.Context(), types.ID(id))
	if err != nil {
		writeCarError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, toCarResponse(record))
}

func (h *CarHandler) List(c *gin.Context) {
	records, err := h.cars.List(c.Request.Context())
	if err != nil {
		writeCarError(c, err)
		return
	}
	out := make([]carResponse, len(records))
	for i := range records {
		out[i] = toCarResponse(&records[i])
	}
	writeJSON(c, http.StatusOK, map[string]any{"cars": out})
}

type linkCarReq struct {
	TraccarDeviceID *int64  `json:"traccar_device_id"`
	TraccarUniqueID *string `json:"traccar_unique_id"`
}

// SetTraccarLink updates the car ↔ provider-device mapping; null fields
// clear it.
func (h *CarHandler) SetTraccarLink(c *gin.Context) {
	id := c.Param("id")
	if !isValidID(id) {
		writeError(c, http.StatusBadRequest, "invalid car id")
		return
	}
	var req linkCarReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	err := h.cars.SetTraccarLink(c.Request.Context(), car.LinkCommand{
		CarID:           types.ID(id),
		TraccarDeviceID: req.TraccarDeviceID,
		TraccarUniqueID: req.TraccarUniqueID,
	})
	if err != nil {
		writeCarError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"status": "ok"})
}
