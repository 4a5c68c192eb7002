package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const insertBooking = `-- name: InsertBooking :one
INSERT INTO bookings (
    id, user_id, experience_id, activity_id, time_slot_id, booking_date,
    participant_count, booking_amount, due_amount, b2b_price, currency,
    is_agent_booking, booking_type, contact_name, contact_email, contact_phone,
    referral_code, coupon_code, payment_ref, created_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, COALESCE($20, now())
)
RETURNING id
`

type InsertBookingParams struct {
	ID               uuid.UUID
	UserID           pgtype.UUID
	ExperienceID     uuid.UUID
	ActivityID       uuid.UUID
	TimeSlotID       uuid.UUID
	BookingDate      pgtype.Timestamptz
	ParticipantCount int32
	BookingAmount    pgtype.Numeric
	DueAmount        pgtype.Numeric
	B2bPrice         pgtype.Numeric
	Currency         string
	IsAgentBooking   bool
	BookingType      string
	ContactName      string
	ContactEmail     string
	ContactPhone     string
	ReferralCode     pgtype.Text
	CouponCode       pgtype.Text
	PaymentRef       pgtype.Text
	CreatedAt        pgtype.Timestamptz
}

func (q *Queries) InsertBooking(ctx context.Context, db DBTX, arg InsertBookingParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, insertBooking,
		arg.ID,
		arg.UserID,
		arg.ExperienceID,
		arg.ActivityID,
		arg.TimeSlotID,
		arg.BookingDate,
		arg.ParticipantCount,
		arg.BookingAmount,
		arg.DueAmount,
		arg.B2bPrice,
		arg.Currency,
		arg.IsAgentBooking,
		arg.BookingType,
		arg.ContactName,
		arg.ContactEmail,
		arg.ContactPhone,
		arg.ReferralCode,
		arg.CouponCode,
		arg.PaymentRef,
		arg.CreatedAt,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

type InsertParticipantsParams struct {
	ID        uuid.UUID
	BookingID uuid.UUID
	Name      string
	Email     string
	Phone     string
}

// InsertParticipants bulk-loads participant rows with COPY.
func (q *Queries) InsertParticipants(ctx context.Context, db DBTX, arg []InsertParticipantsParams) (int64, error) {
	return db.CopyFrom(ctx,
		pgx.Identifier{"booking_participants"},
		[]string{"id", "booking_id", "name", "email", "phone"},
		pgx.CopyFromSlice(len(arg), func(i int) ([]any, error) {
			p := arg[i]
			return []any{p.ID, p.BookingID, p.Name, p.Email, p.Phone}, nil
		}),
	)
}

const findBookingByID = `-- name: FindBookingByID :one
SELECT id, user_id, experience_id, activity_id, time_slot_id, booking_date,
       participant_count, booking_amount, due_amount, b2b_price, currency,
       is_agent_booking, booking_type, contact_name, contact_email, contact_phone,
       referral_code, coupon_code, payment_ref, created_at
FROM bookings
WHERE id = $1
`

func (q *Queries) FindBookingByID(ctx context.Context, db DBTX, id uuid.UUID) (Booking, error) {
	row := db.QueryRow(ctx, findBookingByID, id)
	var i Booking
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.ExperienceID,
		&i.ActivityID,
		&i.TimeSlotID,
		&i.BookingDate,
		&i.ParticipantCount,
		&i.BookingAmount,
		&i.DueAmount,
		&i.B2bPrice,
		&i.Currency,
		&i.IsAgentBooking,
		&i.BookingType,
		&i.ContactName,
		&i.ContactEmail,
		&i.ContactPhone,
		&i.ReferralCode,
		&i.CouponCode,
		&i.PaymentRef,
		&i.CreatedAt,
	)
	return i, err
}

const listParticipantsByBooking = `-- name: ListParticipantsByBooking :many
SELECT id, booking_id, name, email, phone
FROM booking_participants
WHERE booking_id = $1
ORDER BY name, id
`

func (q *Queries) ListParticipantsByBooking(ctx context.Context, db DBTX, bookingID uuid.UUID) ([]BookingParticipant, error) {
	rows, err := db.Query(ctx, listParticipantsByBooking, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []BookingParticipant
	for rows.Next() {
		var i BookingParticipant
		if err := rows.Scan(&i.ID, &i.BookingID, &i.Name, &i.Email, &i.Phone); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
