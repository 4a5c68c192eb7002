//go:build unit || e2e

package builder

import (
	"time"

	"experience-booking/internal/domain/coupon"
	"experience-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CouponBuilder struct {
	ID            uuid.UUID
	Code          string
	Type          coupon.Type
	DiscountValue decimal.Decimal
	ActivityID    *uuid.UUID
	ValidFrom     *time.Time
	ValidTo       *time.Time
	IsActive      bool
}

func NewCouponBuilder() *CouponBuilder {
	return &CouponBuilder{
		ID:            uuid.New(),
		Code:          "SAVE10",
		Type:          coupon.TypePercentage,
		DiscountValue: decimal.NewFromInt(10),
		IsActive:      true,
	}
}

func (b *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(b)
	return b
}

func (b *CouponBuilder) BuildDomain() (*coupon.Coupon, error) {
	return coupon.NewCoupon(coupon.Params{
		ID:            b.ID,
		Code:          b.Code,
		Type:          b.Type,
		DiscountValue: b.DiscountValue,
		ActivityID:    b.ActivityID,
		ValidFrom:     b.ValidFrom,
		ValidTo:       b.ValidTo,
		IsActive:      b.IsActive,
	})
}

func (b *CouponBuilder) BuildSnapshot() *shared.CouponSnapshot {
	return &shared.CouponSnapshot{
		ID:            b.ID,
		Code:          b.Code,
		Type:          string(b.Type),
		DiscountValue: b.DiscountValue,
		ActivityID:    b.ActivityID,
		ValidFrom:     b.ValidFrom,
		ValidTo:       b.ValidTo,
		IsActive:      b.IsActive,
	}
}

func (b *CouponBuilder) WithCode(code string) *CouponBuilder {
	b.Code = code
	return b
}

func (b *CouponBuilder) WithFlat(amount string) *CouponBuilder {
	b.Type = coupon.TypeFlat
	b.DiscountValue = decimal.RequireFromString(amount)
	return b
}

func (b *CouponBuilder) WithPercentage(percent string) *CouponBuilder {
	b.Type = coupon.TypePercentage
	b.DiscountValue = decimal.RequireFromString(percent)
	return b
}

func (b *CouponBuilder) WithActivityID(id uuid.UUID) *CouponBuilder {
	b.ActivityID = &id
	return b
}

func (b *CouponBuilder) WithValidity(from, to *time.Time) *CouponBuilder {
	b.ValidFrom = from
	b.ValidTo = to
	return b
}

func (b *CouponBuilder) AsInactive() *CouponBuilder {
	b.IsActive = false
	return b
}
