// Package money carries monetary amounts rounded to two decimal places.
// Every operation rounds its result, so chained calculations always work on
// the already-rounded intermediate.
package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

const scale = 2

var ErrInvalidAmount = errors.New("invalid monetary amount")

// Currency is carried opaquely and never converted.
type Currency string

const DefaultCurrency Currency = "INR"

func (c Currency) String() string { return string(c) }

func (c Currency) OrDefault() Currency {
	if strings.TrimSpace(string(c)) == "" {
		return DefaultCurrency
	}
	return c
}

type Money struct {
	amount decimal.Decimal
}

func New(d decimal.Decimal) Money {
	return Money{amount: d.Round(scale)}
}

func FromInt(v int64) Money {
	return New(decimal.NewFromInt(v))
}

func FromFloat(v float64) Money {
	return New(decimal.NewFromFloat(v))
}

func Parse(s string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	return New(d), nil
}

func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

func Zero() Money { return Money{} }

func (m Money) Add(o Money) Money { return New(m.amount.Add(o.amount)) }
func (m Money) Sub(o Money) Money { return New(m.amount.Sub(o.amount)) }

func (m Money) MulInt(n int) Money {
	return New(m.amount.Mul(decimal.NewFromInt(int64(n))))
}

func (m Money) MulRate(rate decimal.Decimal) Money {
	return New(m.amount.Mul(rate))
}

// PercentOf returns m/o as a percentage rounded to two places, or zero when o is zero.
func (m Money) PercentOf(o Money) decimal.Decimal {
	if o.amount.IsZero() {
		return decimal.Zero
	}
	return m.amount.Div(o.amount).Mul(decimal.NewFromInt(100)).Round(scale)
}

func (m Money) Decimal() decimal.Decimal { return m.amount }

func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

func (m Money) String() string { return m.amount.StringFixed(scale) }

func (m Money) Cmp(o Money) int                 { return m.amount.Cmp(o.amount) }
func (m Money) Equal(o Money) bool              { return m.amount.Equal(o.amount) }
func (m Money) GreaterThan(o Money) bool        { return m.amount.GreaterThan(o.amount) }
func (m Money) GreaterThanOrEqual(o Money) bool { return m.amount.GreaterThanOrEqual(o.amount) }
func (m Money) LessThan(o Money) bool           { return m.amount.LessThan(o.amount) }
func (m Money) IsZero() bool                    { return m.amount.IsZero() }
func (m Money) IsPositive() bool                { return m.amount.IsPositive() }
func (m Money) IsNegative() bool                { return m.amount.IsNegative() }

func Max(a, b Money) Money {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

func Min(a, b Money) Money {
	if a.LessThan(b) {
		return a
	}
	return b
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.amount.StringFixed(scale)), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return ErrInvalidAmount
	}
	*m = New(d)
	return nil
}
