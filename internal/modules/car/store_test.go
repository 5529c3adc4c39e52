// README: Car store integration tests (require a Postgres with the schema applied).
package car

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"motorpool/internal/types"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := os.Getenv("MP_DB_DSN")
	if dsn == "" {
		t.Skip("MP_DB_DSN not set; skipping integration test")
	}
	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)
	return NewStore(pool)
}

func TestStoreCreateGet(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	plate := "B-MP 9001"
	deviceID := int64(77)
	c := &Car{
		ID:              types.NewID(),
		Name:            "Test Van",
		Plate:           &plate,
		TraccarDeviceID: &deviceID,
	}
	if err := store.Create(ctx, c); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := store.Get(ctx, c.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Test Van" {
		t.Errorf("expected name Test Van, got %q", got.Name)
	}
	if got.Plate == nil || *got.Plate != plate {
		t.Errorf("expected plate %q, got %v", plate, got.Plate)
	}
	if got.TraccarDeviceID == nil || *got.TraccarDeviceID != deviceID {
		t.Errorf("expected device id %d, got %v", deviceID, got.TraccarDeviceID)
	}
	if got.TraccarUniqueID != nil {
		t.Errorf("expected nil unique id, got %v", *got.TraccarUniqueID)
	}
	if !got.Mapped() {
		t.Error("car with device id must be mapped")
	}
}

func TestStoreGetMissing(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.Get(context.Background(), types.NewID())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStoreListMappedExcludesUnmapped(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	unique := "868-test"
	unmapped := &Car{ID: types.NewID(), Name: "Unmapped", TraccarUniqueID: &unique}
	if err := store.Create(ctx, unmapped); err != nil {
		t.Fatalf("create: %v", err)
	}

	mapped, err := store.ListMapped(ctx)
	if err != nil {
		t.Fatalf("list mapped: %v", err)
	}
	for _, c := range mapped {
		if c.ID == unmapped.ID {
			t.Error("unique id alone must not count as mapped")
		}
		if c.TraccarDeviceID == nil {
			t.Errorf("mapped list contains car %s without device id", c.ID)
		}
	}
}

func TestStoreUpdateTraccarLink(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	c := &Car{ID: types.NewID(), Name: "Linkable"}
	if err := store.Create(ctx, c); err != nil {
		t.Fatalf("create: %v", err)
	}

	deviceID := int64(88)
	unique := "imei-88"
	ok, err := store.UpdateTraccarLink(ctx, c.ID, &deviceID, &unique)
	if err != nil {
		t.Fatalf("link: %v", err)
	}
	if !ok {
		t.Fatal("expected update to hit one row")
	}

	got, err := store.Get(ctx, c.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.TraccarDeviceID == nil || *got.TraccarDeviceID != deviceID {
		t.Errorf("expected device id %d, got %v", deviceID, got.TraccarDeviceID)
	}

	// Clearing the mapping.
	ok, err = store.UpdateTraccarLink(ctx, c.ID, nil, nil)
	if err != nil || !ok {
		t.Fatalf("unlink: ok=%v err=%v", ok, err)
	}
	got, err = store.Get(ctx, c.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Mapped() {
		t.Error("expected car to be unmapped after clearing the link")
	}
}
