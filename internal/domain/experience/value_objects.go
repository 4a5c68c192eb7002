package experience

import (
	"errors"

	"experience-booking/internal/domain/money"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDiscountType    = errors.New("discount type must be flat or percentage")
	ErrInvalidDiscountAmount  = errors.New("flat discount must be between 0 and the base price")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
)

type DiscountType string

const (
	DiscountFlat       DiscountType = "flat"
	DiscountPercentage DiscountType = "percentage"
)

func (t DiscountType) IsValid() bool {
	return t == DiscountFlat || t == DiscountPercentage
}

var hundred = decimal.NewFromInt(100)

// Discount is the activity-level markdown applied to the base price.
type Discount struct {
	discountType DiscountType
	value        decimal.Decimal
}

func NewDiscount(discountType DiscountType, value decimal.Decimal, basePrice money.Money) (Discount, error) {
	switch discountType {
	case DiscountFlat:
		amount := money.New(value)
		if amount.IsNegative() || amount.GreaterThan(basePrice) {
			return Discount{}, ErrInvalidDiscountAmount
		}
		return Discount{discountType: DiscountFlat, value: amount.Decimal()}, nil
	case DiscountPercentage:
		if value.IsNegative() || value.GreaterThan(hundred) {
			return Discount{}, ErrInvalidDiscountPercent
		}
		return Discount{discountType: DiscountPercentage, value: value}, nil
	default:
		return Discount{}, ErrInvalidDiscountType
	}
}

func (d Discount) Type() DiscountType     { return d.discountType }
func (d Discount) Value() decimal.Decimal { return d.value }

// Apply returns the discounted price for basePrice.
func (d Discount) Apply(basePrice money.Money) money.Money {
	if d.discountType == DiscountFlat {
		return money.Max(money.Zero(), basePrice.Sub(money.New(d.value)))
	}
	rate := decimal.NewFromInt(1).Sub(d.value.Div(hundred))
	return basePrice.MulRate(rate)
}

// Percentage is the stored discount percentage: d for percentage discounts,
// round(a/base*100, 2) for flat ones, 0 when base is 0.
func (d Discount) Percentage(basePrice money.Money) decimal.Decimal {
	if d.discountType == DiscountPercentage {
		return d.value
	}
	return money.New(d.value).PercentOf(basePrice)
}
