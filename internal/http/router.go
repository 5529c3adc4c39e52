// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"motorpool/internal/http/handlers"
	"motorpool/internal/http/middleware"
	"motorpool/internal/infra"
	"motorpool/internal/modules/booking"
	"motorpool/internal/modules/car"
	"motorpool/internal/modules/tracking"
)

func NewRouter(
	carService *car.Service,
	bookingService *booking.Service,
	trackingService *tracking.Service,
	verifier infra.TokenVerifier,
) http.Handler {
	r := gin.New()
	r.Use(middleware.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api", middleware.Auth(verifier))

	bookingHandler := handlers.NewBookingHandler(bookingService)
	api.POST("/bookings", bookingHandler.Create)
	api.GET("/bookings/:id", bookingHandler.Get)
	api.POST("/bookings/:id/start", bookingHandler.Start)
	api.POST("/bookings/:id/complete", bookingHandler.Complete)
	api.POST("/bookings/:id/cancel", bookingHandler.Cancel)

	// Fleet management and tracking are admin-only surfaces.
	admin := api.Group("", middleware.RequireRole("admin"))

	carHandler := handlers.NewCarHandler(carService)
	admin.GET("/cars", carHandler.List)
	admin.POST("/cars", carHandler.Create)
	admin.GET("/cars/:id", carHandler.Get)
	admin.PUT("/cars/:id/traccar", carHandler.SetTraccarLink)

	trackingHandler := handlers.NewTrackingHandler(trackingService)
	admin.GET("/cars/:id/position", trackingHandler.CarPosition)
	admin.GET("/fleet/positions", trackingHandler.Fleet)

	return r
}
