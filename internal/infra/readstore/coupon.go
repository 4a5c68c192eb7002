package readstore

import (
	"context"

	"experience-booking/internal/infra"
	"experience-booking/internal/infra/pgquery"
	"experience-booking/internal/pkg/errs"
	"experience-booking/internal/pkg/pgconv"
	"experience-booking/internal/usecase/shared"
)

type CouponReadQueries interface {
	FindCouponByCode(ctx context.Context, db pgquery.DBTX, code string) (pgquery.Coupon, error)
}

type CouponReadStore struct {
	queries CouponReadQueries
}

func NewCouponReadStore(queries CouponReadQueries) *CouponReadStore {
	return &CouponReadStore{
		queries: queries,
	}
}

func (r *CouponReadStore) FindByCode(ctx context.Context, db pgquery.DBTX, code string) (*shared.CouponSnapshot, error) {
	row, err := r.queries.FindCouponByCode(ctx, db, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}

	value, err := pgconv.DecimalFromNumeric(row.DiscountValue)
	if err != nil {
		return nil, errs.Wrapf(err, "coupon %s discount value", row.Code)
	}

	return &shared.CouponSnapshot{
		ID:            row.ID,
		Code:          row.Code,
		Type:          row.Type,
		DiscountValue: value,
		ActivityID:    pgconv.UUIDPtrFromPgtype(row.ActivityID),
		ValidFrom:     pgconv.TimePtrFromPgtype(row.ValidFrom),
		ValidTo:       pgconv.TimePtrFromPgtype(row.ValidUntil),
		IsActive:      row.IsActive,
	}, nil
}
