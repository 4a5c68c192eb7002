package pgquery

import (
	"context"

	"github.com/google/uuid"
)

const findExperienceByID = `-- name: FindExperienceByID :one
SELECT id, title, locations, vendor_name, vendor_email, created_at
FROM experiences
WHERE id = $1
`

func (q *Queries) FindExperienceByID(ctx context.Context, db DBTX, id uuid.UUID) (Experience, error) {
	row := db.QueryRow(ctx, findExperienceByID, id)
	var i Experience
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Locations,
		&i.VendorName,
		&i.VendorEmail,
		&i.CreatedAt,
	)
	return i, err
}

const findActivityByID = `-- name: FindActivityByID :one
SELECT id, experience_id, name, base_price, currency, discount_type, discount_value, b2b_price, created_at
FROM activities
WHERE id = $1
`

func (q *Queries) FindActivityByID(ctx context.Context, db DBTX, id uuid.UUID) (Activity, error) {
	row := db.QueryRow(ctx, findActivityByID, id)
	var i Activity
	err := row.Scan(
		&i.ID,
		&i.ExperienceID,
		&i.Name,
		&i.BasePrice,
		&i.Currency,
		&i.DiscountType,
		&i.DiscountValue,
		&i.B2bPrice,
		&i.CreatedAt,
	)
	return i, err
}

const findTimeSlotByID = `-- name: FindTimeSlotByID :one
SELECT id, activity_id, start_time, end_time, capacity
FROM time_slots
WHERE id = $1
`

func (q *Queries) FindTimeSlotByID(ctx context.Context, db DBTX, id uuid.UUID) (TimeSlot, error) {
	row := db.QueryRow(ctx, findTimeSlotByID, id)
	var i TimeSlot
	err := row.Scan(
		&i.ID,
		&i.ActivityID,
		&i.StartTime,
		&i.EndTime,
		&i.Capacity,
	)
	return i, err
}

const listTimeSlotsByActivity = `-- name: ListTimeSlotsByActivity :many
SELECT id, activity_id, start_time, end_time, capacity
FROM time_slots
WHERE activity_id = $1
ORDER BY start_time
`

func (q *Queries) ListTimeSlotsByActivity(ctx context.Context, db DBTX, activityID uuid.UUID) ([]TimeSlot, error) {
	rows, err := db.Query(ctx, listTimeSlotsByActivity, activityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []TimeSlot
	for rows.Next() {
		var i TimeSlot
		if err := rows.Scan(
			&i.ID,
			&i.ActivityID,
			&i.StartTime,
			&i.EndTime,
			&i.Capacity,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
