// README: Seeds demo fleet cars for local development.
package main

import (
	"context"
	"log"

	"motorpool/internal/config"
	"motorpool/internal/infra"
	"motorpool/internal/modules/car"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	svc := car.NewService(car.NewStore(dbPool))

	plate1, plate2 := "B-MP 1001", "B-MP 1002"
	device1, device2 := int64(42), int64(43)
	unique1, unique3 := "868120279341", "868120279999"

	demo := []car.CreateCommand{
		// Fully mapped cars: device id plus hardware serial.
		{Name: "Van 1", Plate: &plate1, TraccarDeviceID: &device1, TraccarUniqueID: &unique1},
		{Name: "Van 2", Plate: &plate2, TraccarDeviceID: &device2},
		// Tracker installed but not yet registered: unique id only, not mapped.
		{Name: "City Car 1", TraccarUniqueID: &unique3},
		// No tracker at all.
		{Name: "City Car 2"},
	}

	for _, cmd := range demo {
		id, err := svc.Create(ctx, cmd)
		if err != nil {
			log.Fatalf("seed car %q: %v", cmd.Name, err)
		}
		log.Printf("seeded car %q as %s", cmd.Name, id)
	}
}
