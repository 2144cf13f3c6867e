//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, email, role, batch string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, role, batch, squad_name, is_active) VALUES ($1, $2, $3, $4, 'Core', true) ON CONFLICT (email) DO NOTHING",
		userID, email, role, batch)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func DeactivateUser(t *testing.T, db DBLike, userID uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE users SET is_active = false WHERE id = $1", userID)
	require.NoError(t, err)
}

func CreateTestSeat(t *testing.T, db DBLike, number, zone string) uuid.UUID {
	t.Helper()

	seatID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO seats (id, number, zone) VALUES ($1, $2, $3) ON CONFLICT (number) DO NOTHING",
		seatID, number, zone)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM seats WHERE number = $1", number).Scan(&seatID)
	}

	return seatID
}

func SeatIDByNumber(t *testing.T, db DBLike, number string) uuid.UUID {
	t.Helper()

	var seatID uuid.UUID
	err := db.QueryRow(context.Background(), "SELECT id FROM seats WHERE number = $1", number).Scan(&seatID)
	require.NoError(t, err)
	return seatID
}

func CreateTestBooking(t *testing.T, db DBLike, userID, seatID uuid.UUID, day time.Time, status, seatType string) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO bookings (id, user_id, seat_id, day, status, seat_type) VALUES ($1, $2, $3, $4, $5, $6)",
		bookingID, userID, seatID, day, status, seatType)
	require.NoError(t, err)

	return bookingID
}

// inserts the floor layout every test relies on: seats S01..S50,
// the first 40 designated and the last 10 in the floater pool.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO seats (id, number, zone)
		SELECT gen_random_uuid(),
		       'S' || lpad(n::text, 2, '0'),
		       CASE WHEN n <= 40 THEN 'designated' ELSE 'floater' END
		FROM generate_series(1, 50) AS n
		ON CONFLICT (number) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
