// Package pricing resolves the chargeable price of a booking and splits it
// into the amount collected now and the amount left due.
package pricing

import (
	"errors"

	"experience-booking/internal/domain/coupon"
	"experience-booking/internal/domain/experience"
	"experience-booking/internal/domain/money"

	"github.com/shopspring/decimal"
)

const (
	MinParticipants = 1
	MaxParticipants = 50
)

var (
	ErrInvalidParticipantCount = errors.New("participant count must be between 1 and 50")
	ErrInvalidSellingPrice     = errors.New("agent selling price cannot be negative")
	ErrMissingActivity         = errors.New("activity is required for pricing")
)

type Source string

const (
	SourceAgent    Source = "agent"
	SourceCoupon   Source = "coupon"
	SourceActivity Source = "activity"
)

// AgentPricing is supplied by resellers. A zero SellingPrice means the agent
// did not override the public price.
type AgentPricing struct {
	SellingPrice   money.Money
	AdvancePayment *money.Money
}

func (a *AgentPricing) overrides() bool {
	return a != nil && a.SellingPrice.IsPositive()
}

type Options struct {
	Coupon *coupon.DiscountCalculation
	Agent  *AgentPricing
}

type ResolvedPrice struct {
	PerPerson money.Money
	Total     money.Money
	Source    Source
	Discount  *coupon.DiscountCalculation
}

type Resolver interface {
	Resolve(activity *experience.Activity, participantCount int, opts Options) (ResolvedPrice, error)
	Split(total money.Money, policy Policy) (Split, error)
}

type DefaultResolver struct {
	PartialRate decimal.Decimal
}

func NewDefaultResolver() *DefaultResolver {
	return &DefaultResolver{
		PartialRate: DefaultPartialRate,
	}
}

func ValidateParticipantCount(n int) error {
	if n < MinParticipants || n > MaxParticipants {
		return ErrInvalidParticipantCount
	}
	return nil
}

// Resolve applies, highest first: agent selling price, coupon final amount
// (a per-person price), then the activity's discounted or base price.
// A coupon is ignored entirely when an agent price is present.
func (r *DefaultResolver) Resolve(activity *experience.Activity, participantCount int, opts Options) (ResolvedPrice, error) {
	if activity == nil {
		return ResolvedPrice{}, ErrMissingActivity
	}
	if err := ValidateParticipantCount(participantCount); err != nil {
		return ResolvedPrice{}, err
	}
	if opts.Agent != nil && opts.Agent.SellingPrice.IsNegative() {
		return ResolvedPrice{}, ErrInvalidSellingPrice
	}

	switch {
	case opts.Agent.overrides():
		perPerson := opts.Agent.SellingPrice
		return ResolvedPrice{
			PerPerson: perPerson,
			Total:     perPerson.MulInt(participantCount),
			Source:    SourceAgent,
		}, nil

	case opts.Coupon != nil:
		calc := *opts.Coupon
		return ResolvedPrice{
			PerPerson: calc.FinalAmount,
			Total:     calc.FinalAmount.MulInt(participantCount),
			Source:    SourceCoupon,
			Discount:  &calc,
		}, nil

	default:
		perPerson := activity.EffectivePrice()
		return ResolvedPrice{
			PerPerson: perPerson,
			Total:     perPerson.MulInt(participantCount),
			Source:    SourceActivity,
		}, nil
	}
}
