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

func CreateTestProfile(t *testing.T, db DBLike, email, role string, phone *string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO profiles (id, email, full_name, phone, role) VALUES ($1, $2, $3, $4, $5)",
		id, email, "Test "+role, phone, role)
	require.NoError(t, err)
	return id
}

func ProfilePhone(t *testing.T, db DBLike, id uuid.UUID) *string {
	t.Helper()

	var phone *string
	err := db.QueryRow(context.Background(), "SELECT phone FROM profiles WHERE id = $1", id).Scan(&phone)
	require.NoError(t, err)
	return phone
}

func CreateTestExperience(t *testing.T, db DBLike, title, vendorEmail string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO experiences (id, title, locations, vendor_name, vendor_email) VALUES ($1, $2, $3, $4, $5)",
		id, title, []string{"Rishikesh"}, "River Runners", vendorEmail)
	require.NoError(t, err)
	return id
}

// CreateTestActivity inserts an activity with no activity-level discount.
func CreateTestActivity(t *testing.T, db DBLike, experienceID uuid.UUID, name, basePrice, b2bPrice string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO activities (id, experience_id, name, base_price, b2b_price) VALUES ($1, $2, $3, $4::numeric, $5::numeric)",
		id, experienceID, name, basePrice, b2bPrice)
	require.NoError(t, err)
	return id
}

func CreateTestTimeSlot(t *testing.T, db DBLike, activityID uuid.UUID, start, end string, capacity int) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO time_slots (id, activity_id, start_time, end_time, capacity) VALUES ($1, $2, $3::time, $4::time, $5)",
		id, activityID, start, end, capacity)
	require.NoError(t, err)
	return id
}

// CreateTestCoupon inserts an active coupon without a validity window.
func CreateTestCoupon(t *testing.T, db DBLike, code, couponType, value string, activityID *uuid.UUID) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO coupons (id, code, type, discount_value, activity_id) VALUES ($1, $2, $3, $4::numeric, $5)",
		id, code, couponType, value, activityID)
	require.NoError(t, err)
	return id
}

// SlotRef identifies the catalog rows a booking points at.
type SlotRef struct {
	ExperienceID uuid.UUID
	ActivityID   uuid.UUID
	SlotID       uuid.UUID
}

// CreateTestBooking occupies seats on a slot for the given day.
func CreateTestBooking(t *testing.T, db DBLike, ref SlotRef, date time.Time, participants int, bookingType string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO bookings (id, experience_id, activity_id, time_slot_id, booking_date, participant_count,
		                      booking_amount, due_amount, booking_type, contact_name, contact_email, contact_phone)
		VALUES ($1, $2, $3, $4, $5, $6, 0, 0, $7, 'Seed Guest', 'seed@example.com', '+910000000000')`,
		id, ref.ExperienceID, ref.ActivityID, ref.SlotID, date, participants, bookingType)
	require.NoError(t, err)
	return id
}

func CountBookings(t *testing.T, db DBLike, slotID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM bookings WHERE time_slot_id = $1", slotID).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between subtests
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
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
