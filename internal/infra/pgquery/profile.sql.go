package pgquery

import (
	"context"

	"github.com/google/uuid"
)

const findProfileByID = `-- name: FindProfileByID :one
SELECT id, email, full_name, phone, role, created_at, updated_at
FROM profiles
WHERE id = $1
`

func (q *Queries) FindProfileByID(ctx context.Context, db DBTX, id uuid.UUID) (Profile, error) {
	row := db.QueryRow(ctx, findProfileByID, id)
	var i Profile
	err := row.Scan(
		&i.ID,
		&i.Email,
		&i.FullName,
		&i.Phone,
		&i.Role,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const fillProfilePhone = `-- name: FillProfilePhone :execrows
UPDATE profiles
SET phone = $2, updated_at = now()
WHERE id = $1
  AND (phone IS NULL OR phone = '')
`

type FillProfilePhoneParams struct {
	ID    uuid.UUID
	Phone string
}

// FillProfilePhone only writes when no phone is on file; the returned count is
// zero when the profile already had one.
func (q *Queries) FillProfilePhone(ctx context.Context, db DBTX, arg FillProfilePhoneParams) (int64, error) {
	result, err := db.Exec(ctx, fillProfilePhone, arg.ID, arg.Phone)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
