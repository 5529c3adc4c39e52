// README: Entry point; loads config, wires services, starts the HTTP server and background tickers.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"motorpool/internal/config"
	httptransport "motorpool/internal/http"
	"motorpool/internal/infra"
	"motorpool/internal/maps"
	"motorpool/internal/modules/booking"
	"motorpool/internal/modules/car"
	"motorpool/internal/modules/tracking"
	"motorpool/internal/traccar"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Firebase.ProjectID == "" {
		log.Fatal("MP_FIREBASE_PROJECT_ID is required")
	}
	verifier, err := infra.NewFirebaseVerifier(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
	if err != nil {
		log.Fatalf("firebase init: %v", err)
	}

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	carStore := car.NewStore(dbPool)
	carSvc := car.NewService(carStore)

	bookingStore := booking.NewStore(dbPool)
	bookingSvc := booking.NewService(bookingStore)

	// The Traccar client is built even when unconfigured; tracking calls
	// then fail with traccar_not_configured instead of the process refusing
	// to start.
	traccarClient := traccar.NewClient(cfg.Traccar.BaseURL, cfg.Traccar.Username, cfg.Traccar.Password)

	var geocoder tracking.Geocoder
	if cfg.Maps.APIKey != "" {
		g, err := maps.NewGeocodeService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
		geocoder = g
	}

	limiter := tracking.NewLimiter(
		tracking.NewRedisLedger(redisClient),
		time.Duration(cfg.Tracking.MinPollSeconds)*time.Second,
	)
	trackingSvc := tracking.NewService(carStore, traccarClient, limiter, geocoder)

	handler := httptransport.NewRouter(carSvc, bookingSvc, trackingSvc, verifier)
	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go bookingSvc.RunExpireTicker(ctx)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
