package pgquery

import "context"

const findCouponByCode = `-- name: FindCouponByCode :one
SELECT id, code, type, discount_value, activity_id, valid_from, valid_until, is_active, created_at
FROM coupons
WHERE upper(code) = upper($1)
`

func (q *Queries) FindCouponByCode(ctx context.Context, db DBTX, code string) (Coupon, error) {
	row := db.QueryRow(ctx, findCouponByCode, code)
	var i Coupon
	err := row.Scan(
		&i.ID,
		&i.Code,
		&i.Type,
		&i.DiscountValue,
		&i.ActivityID,
		&i.ValidFrom,
		&i.ValidUntil,
		&i.IsActive,
		&i.CreatedAt,
	)
	return i, err
}
