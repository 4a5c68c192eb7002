package queries

import (
	"context"
	"log/slog"
	"time"

	"experience-booking/internal/domain/coupon"
	"experience-booking/internal/domain/money"
	"experience-booking/internal/infra"
	"experience-booking/internal/pkg/clock"
	"experience-booking/internal/pkg/errs"
	"experience-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// ErrInvalidCoupon is the only coupon failure callers ever see. The cause is
// kept in the chain for logs.
var ErrInvalidCoupon = errs.New("Invalid coupon code")

type CouponView struct {
	ID            uuid.UUID  `json:"id"`
	Code          string     `json:"code"`
	Type          string     `json:"type"`
	ActivityID    *uuid.UUID `json:"activityId,omitempty"`
	ValidFrom     *time.Time `json:"validFrom,omitempty"`
	ValidTo       *time.Time `json:"validTo,omitempty"`
	DiscountValue string     `json:"discountValue"`
}

type CouponValidation struct {
	Valid       bool
	Calculation *coupon.DiscountCalculation
	Coupon      *CouponView
}

type CouponValidator interface {
	// Validate checks code against the activity and prices the discount on
	// the activity-scoped per-person price.
	Validate(ctx context.Context, code string, activityID uuid.UUID, price money.Money) (*CouponValidation, error)
}

type couponValidatorImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCouponValidator(uow shared.UnitOfWork, clk clock.Clock) CouponValidator {
	return &couponValidatorImpl{uow: uow, clock: clk}
}

func (v *couponValidatorImpl) Validate(ctx context.Context, code string, activityID uuid.UUID, price money.Money) (*CouponValidation, error) {
	normalized, err := coupon.NewCouponCode(code)
	if err != nil {
		return nil, v.reject(code, err)
	}

	snap, err := v.uow.CommandReads().CouponByCode(ctx, normalized.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, v.reject(code, err)
		}
		return nil, err
	}

	c, err := snap.ToDomain()
	if err != nil {
		return nil, v.reject(code, err)
	}
	if err := c.ValidateUsage(activityID, v.clock.Now()); err != nil {
		return nil, v.reject(code, err)
	}

	calc := c.Calculate(price)
	return &CouponValidation{
		Valid:       true,
		Calculation: &calc,
		Coupon: &CouponView{
			ID:            c.ID(),
			Code:          c.Code().String(),
			Type:          string(c.Discount().Type()),
			ActivityID:    c.ActivityID(),
			ValidFrom:     c.ValidFrom(),
			ValidTo:       c.ValidTo(),
			DiscountValue: c.Discount().Value().String(),
		},
	}, nil
}

func (v *couponValidatorImpl) reject(code string, cause error) error {
	slog.Info("coupon rejected", "code", code, "reason", cause.Error())
	return errs.Mark(cause, ErrInvalidCoupon)
}
