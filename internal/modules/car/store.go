// README: Car store backed by PostgreSQL.
package car

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"motorpool/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, c *Car) error {
	_, err := s.db.Exec(ctx, `
        INSERT INTO cars (id, name, plate, traccar_device_id, traccar_unique_id)
        VALUES ($1, $2, $3, $4, $5)`,
		string(c.ID),
		c.Name,
		c.Plate,
		c.TraccarDeviceID,
		c.TraccarUniqueID,
	)
	return err
}

func (s *Store) Get(ctx context.Context, id types.ID) (*Car, error) {
	row := s.db.QueryRow(ctx, `
        SELECT id, name, plate, traccar_device_id, traccar_unique_id
        FROM cars
        WHERE id = $1`, string(id),
	)
	c, err := scanCar(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Store) List(ctx context.Context) ([]Car, error) {
	return s.list(ctx, `
        SELECT id, name, plate, traccar_device_id, traccar_unique_id
        FROM cars
        ORDER BY id`)
}

// ListMapped returns every car linked to a Traccar device, in stable id
// order. Fleet aggregation relies on that order.
func (s *Store) ListMapped(ctx context.Context) ([]Car, error) {
	return s.list(ctx, `
        SELECT id, name, plate, traccar_device_id, traccar_unique_id
        FROM cars
        WHERE traccar_device_id IS NOT NULL
        ORDER BY id`)
}

// UpdateTraccarLink replaces the car's provider linkage. Nil values clear it.
func (s *Store) UpdateTraccarLink(ctx context.Context, id types.ID, deviceID *int64, uniqueID *string) (bool, error) {
	tag, err := s.db.Exec(ctx, `
        UPDATE cars
        SET traccar_device_id = $1, traccar_unique_id = $2
        WHERE id = $3`,
		deviceID,
		uniqueID,
		string(id),
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (s *Store) list(ctx context.Context, query string) ([]Car, error) {
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cars := []Car{}
	for rows.Next() {
		c, err := scanCar(rows)
		if err != nil {
			return nil, err
		}
		cars = append(cars, *c)
	}
	return cars, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCar(row rowScanner) (*Car, error) {
	var c Car
	var plate, uniqueID sql.NullString
	var deviceID sql.NullInt64

	if err := row.Scan(&c.ID, &c.Name, &plate, &deviceID, &uniqueID); err != nil {
		return nil, err
	}
	if plate.Valid {
		c.Plate = &plate.String
	}
	if deviceID.Valid {
		v := deviceID.Int64
		c.TraccarDeviceID = &v
	}
	if uniqueID.Valid {
		c.TraccarUniqueID = &uniqueID.String
	}
	return &c, nil
}
