package coupon

import (
	"errors"
	"regexp"
	"strings"

	"experience-booking/internal/domain/money"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCouponCode      = errors.New("invalid coupon code format")
	ErrInvalidDiscountType    = errors.New("coupon type must be flat or percentage")
	ErrInvalidDiscountAmount  = errors.New("discount amount cannot be negative")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
)

var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

type Code string

func NewCouponCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type Type string

const (
	TypeFlat       Type = "flat"
	TypePercentage Type = "percentage"
)

var hundred = decimal.NewFromInt(100)

type Discount struct {
	discountType Type
	value        decimal.Decimal
}

func NewDiscount(discountType Type, value decimal.Decimal) (Discount, error) {
	switch discountType {
	case TypeFlat:
		if value.IsNegative() {
			return Discount{}, ErrInvalidDiscountAmount
		}
		return Discount{discountType: TypeFlat, value: value.Round(2)}, nil
	case TypePercentage:
		if value.IsNegative() || value.GreaterThan(hundred) {
			return Discount{}, ErrInvalidDiscountPercent
		}
		return Discount{discountType: TypePercentage, value: value}, nil
	default:
		return Discount{}, ErrInvalidDiscountType
	}
}

func (d Discount) Type() Type             { return d.discountType }
func (d Discount) Value() decimal.Decimal { return d.value }
func (d Discount) IsPercentage() bool     { return d.discountType == TypePercentage }

// DiscountAmount never exceeds price.
func (d Discount) DiscountAmount(price money.Money) money.Money {
	if d.IsPercentage() {
		return price.MulRate(d.value.Div(hundred))
	}
	return money.Min(money.New(d.value), price)
}

// DiscountCalculation is scoped to one activity and a per-person price.
type DiscountCalculation struct {
	OriginalAmount    money.Money     `json:"originalAmount"`
	DiscountAmount    money.Money     `json:"discountAmount"`
	FinalAmount       money.Money     `json:"finalAmount"`
	SavingsPercentage decimal.Decimal `json:"savingsPercentage"`
}

func (d Discount) Calculate(price money.Money) DiscountCalculation {
	discount := d.DiscountAmount(price)
	return DiscountCalculation{
		OriginalAmount:    price,
		DiscountAmount:    discount,
		FinalAmount:       price.Sub(discount),
		SavingsPercentage: discount.PercentOf(price),
	}
}
