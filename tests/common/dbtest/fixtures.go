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

// Catalog room numbers seeded by SeedReferenceData.
const (
	RoomSingle = "101"
	RoomDouble = "201"
	RoomDeluxe = "301"
	RoomSuite  = "401"
)

func CreateTestRoom(t *testing.T, db DBLike, number, roomType, rate string, maxOccupancy int) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO rooms (id, room_number, room_type, nightly_rate, max_occupancy, floor)
		VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (room_number) DO NOTHING`,
		roomID, number, roomType, rate, maxOccupancy, floorOf(number))
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM rooms WHERE room_number = $1", number).Scan(&roomID))
	}

	return roomID
}

func CreateTestCustomer(t *testing.T, db DBLike, userID, fullName, email string) uuid.UUID {
	t.Helper()

	customerID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO customers (id, user_id, full_name, email) VALUES ($1, $2, $3, $4) ON CONFLICT (user_id) DO NOTHING",
		customerID, userID, fullName, email)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM customers WHERE user_id = $1", userID).Scan(&customerID))
	}

	return customerID
}

func RoomID(t *testing.T, db DBLike, number string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), "SELECT id FROM rooms WHERE room_number = $1", number).Scan(&id)
	require.NoError(t, err)
	return id
}

func floorOf(number string) int {
	if number == "" {
		return 0
	}
	return int(number[0] - '0')
}

// inserts the room catalog the booking tests rely on
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO rooms (id, room_number, room_type, nightly_rate, max_occupancy, floor) VALUES
		    (gen_random_uuid(), '101', 'SINGLE', 80.00, 1, 1),
		    (gen_random_uuid(), '201', 'DOUBLE', 100.00, 2, 2),
		    (gen_random_uuid(), '301', 'DELUXE', 180.00, 3, 3),
		    (gen_random_uuid(), '401', 'SUITE', 320.00, 4, 4)
		ON CONFLICT (room_number) DO NOTHING;
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
