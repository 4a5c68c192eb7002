package coupon

import (
	"errors"
	"time"

	"experience-booking/internal/domain/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrCouponInactive      = errors.New("coupon is inactive")
	ErrCouponExpired       = errors.New("coupon has expired")
	ErrCouponNotYetValid   = errors.New("coupon is not yet valid")
	ErrCouponNotApplicable = errors.New("coupon does not apply to this activity")
)

type Coupon struct {
	id         uuid.UUID
	code       Code
	discount   Discount
	activityID *uuid.UUID
	validFrom  *time.Time
	validTo    *time.Time
	isActive   bool
}

type Params struct {
	ID            uuid.UUID
	Code          string
	Type          Type
	DiscountValue decimal.Decimal
	ActivityID    *uuid.UUID
	ValidFrom     *time.Time
	ValidTo       *time.Time
	IsActive      bool
}

func NewCoupon(p Params) (*Coupon, error) {
	code, err := NewCouponCode(p.Code)
	if err != nil {
		return nil, err
	}

	discount, err := NewDiscount(p.Type, p.DiscountValue)
	if err != nil {
		return nil, err
	}

	return &Coupon{
		id:         p.ID,
		code:       code,
		discount:   discount,
		activityID: p.ActivityID,
		validFrom:  p.ValidFrom,
		validTo:    p.ValidTo,
		isActive:   p.IsActive,
	}, nil
}

func (c *Coupon) IsValidAt(t time.Time) bool {
	if c.validFrom != nil && t.Before(*c.validFrom) {
		return false
	}
	if c.validTo != nil && t.After(*c.validTo) {
		return false
	}
	return true
}

// ValidateUsage checks the coupon can be redeemed for activityID at t.
// A coupon without an activity scope applies to every activity.
func (c *Coupon) ValidateUsage(activityID uuid.UUID, t time.Time) error {
	if !c.isActive {
		return ErrCouponInactive
	}
	if !c.IsValidAt(t) {
		if c.validFrom != nil && t.Before(*c.validFrom) {
			return ErrCouponNotYetValid
		}
		return ErrCouponExpired
	}
	if c.activityID != nil && *c.activityID != activityID {
		return ErrCouponNotApplicable
	}
	return nil
}

func (c *Coupon) Calculate(price money.Money) DiscountCalculation {
	return c.discount.Calculate(price)
}

func (c *Coupon) ID() uuid.UUID          { return c.id }
func (c *Coupon) Code() Code             { return c.code }
func (c *Coupon) Discount() Discount     { return c.discount }
func (c *Coupon) ActivityID() *uuid.UUID { return c.activityID }
func (c *Coupon) ValidFrom() *time.Time  { return c.validFrom }
func (c *Coupon) ValidTo() *time.Time    { return c.validTo }
func (c *Coupon) IsActive() bool         { return c.isActive }
