package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const sumBookedSeats = `-- name: SumBookedSeats :one
SELECT COALESCE(SUM(participant_count), 0)::bigint AS booked
FROM bookings
WHERE time_slot_id = $1
  AND booking_date BETWEEN $2 AND $3
  AND booking_type <> 'canceled'
`

type SumBookedSeatsParams struct {
	TimeSlotID uuid.UUID
	DayStart   pgtype.Timestamptz
	DayEnd     pgtype.Timestamptz
}

func (q *Queries) SumBookedSeats(ctx context.Context, db DBTX, arg SumBookedSeatsParams) (int64, error) {
	row := db.QueryRow(ctx, sumBookedSeats, arg.TimeSlotID, arg.DayStart, arg.DayEnd)
	var booked int64
	err := row.Scan(&booked)
	return booked, err
}

const sumBookedSeatsBySlots = `-- name: SumBookedSeatsBySlots :many
SELECT time_slot_id, COALESCE(SUM(participant_count), 0)::bigint AS booked
FROM bookings
WHERE time_slot_id = ANY($1::uuid[])
  AND booking_date BETWEEN $2 AND $3
  AND booking_type <> 'canceled'
GROUP BY time_slot_id
`

type SumBookedSeatsBySlotsParams struct {
	TimeSlotIds []pgtype.UUID
	DayStart    pgtype.Timestamptz
	DayEnd      pgtype.Timestamptz
}

type SumBookedSeatsBySlotsRow struct {
	TimeSlotID uuid.UUID
	Booked     int64
}

func (q *Queries) SumBookedSeatsBySlots(ctx context.Context, db DBTX, arg SumBookedSeatsBySlotsParams) ([]SumBookedSeatsBySlotsRow, error) {
	rows, err := db.Query(ctx, sumBookedSeatsBySlots, arg.TimeSlotIds, arg.DayStart, arg.DayEnd)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []SumBookedSeatsBySlotsRow
	for rows.Next() {
		var i SumBookedSeatsBySlotsRow
		if err := rows.Scan(&i.TimeSlotID, &i.Booked); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
