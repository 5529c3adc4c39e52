// README: Booking store backed by PostgreSQL with optimistic status updates.
package booking

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"motorpool/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, b *Booking) error {
	_, err := s.db.Exec(ctx, `
        INSERT INTO bookings (
            id, car_id, user_id, status, status_version,
            starts_at, ends_at, fee_amount, fee_currency, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		string(b.ID),
		string(b.CarID),
		string(b.UserID),
		string(b.Status),
		b.StatusVersion,
		b.StartsAt,
		b.EndsAt,
		b.Fee.Amount,
		b.Fee.Currency,
		b.CreatedAt,
	)
	return err
}

func (s *Store) Get(ctx context.Context, id types.ID) (*Booking, error) {
	row := s.db.QueryRow(ctx, `
        SELECT id, car_id, user_id, status, status_version,
               starts_at, ends_at, fee_amount, fee_currency,
               created_at, started_at, completed_at, cancelled_at, cancellation_reason
        FROM bookings
        WHERE id = $1`, string(id),
	)

	var b Booking
	var startedAt, completedAt, cancelledAt sql.NullTime
	var cancelReason sql.NullString

	err := row.Scan(
		&b.ID, &b.CarID, &b.UserID, &b.Status, &b.StatusVersion,
		&b.StartsAt, &b.EndsAt, &b.Fee.Amount, &b.Fee.Currency,
		&b.CreatedAt, &startedAt, &completedAt, &cancelledAt, &cancelReason,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	b.StartedAt = toTimePtr(startedAt)
	b.CompletedAt = toTimePtr(completedAt)
	b.CancelledAt = toTimePtr(cancelledAt)
	if cancelReason.Valid {
		b.CancelReason = &cancelReason.String
	}
	return &b, nil
}

// UpdateStatus applies a compare-and-set transition; it reports false when a
// concurrent update won.
func (s *Store) UpdateStatus(ctx context.Context, id types.ID, from, to Status, version int) (bool, error) {
	tag, err := s.db.Exec(ctx, `
        UPDATE bookings
        SET status = $1,
            status_version = status_version + 1,
            started_at = CASE WHEN $1 = 'active' THEN NOW() ELSE started_at END,
            completed_at = CASE WHEN $1 = 'completed' THEN NOW() ELSE completed_at END,
            cancelled_at = CASE WHEN $1 = 'cancelled' THEN NOW() ELSE cancelled_at END
        WHERE id = $2 AND status = $3 AND status_version = $4`,
		string(to),
		string(id),
		string(from),
		version,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (s *Store) AppendEvent(ctx context.Context, e *Event) error {
	_, err := s.db.Exec(ctx, `
        INSERT INTO booking_state_events (
            booking_id, from_status, to_status, actor_type, actor_id, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6)`,
		string(e.BookingID),
		string(e.FromStatus),
		string(e.ToStatus),
		e.ActorType,
		toStringPtr(e.ActorID),
		e.CreatedAt,
	)
	return err
}

// HasActiveByCar reports whether the car already has a live reservation.
func (s *Store) HasActiveByCar(ctx context.Context, carID types.ID) (bool, error) {
	row := s.db.QueryRow(ctx, `
        SELECT EXISTS (
            SELECT 1 FROM bookings
            WHERE car_id = $1
              AND status IN ('reserved','active')
        )`, string(carID),
	)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// ExpireOverdue expires reservations that were never started and whose
// window has already closed. Returns the number of bookings expired.
func (s *Store) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	tag, err := s.db.Exec(ctx, `
        UPDATE bookings
        SET status = 'expired', status_version = status_version + 1
        WHERE status = 'reserved' AND ends_at < $1`,
		now,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func toStringPtr(v *types.ID) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}

func toTimePtr(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}
