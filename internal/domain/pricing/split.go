package pricing

import (
	"errors"

	"experience-booking/internal/domain/money"

	"github.com/shopspring/decimal"
)

var (
	ErrAdvanceExceedsTotal = errors.New("advance payment cannot exceed the total")
	ErrNegativeAdvance     = errors.New("advance payment cannot be negative")
	ErrNegativeTotal       = errors.New("total cannot be negative")
	ErrUnknownPolicy       = errors.New("unknown payment policy")
)

// DefaultPartialRate is the share of the total collected upfront on partial payment.
var DefaultPartialRate = decimal.RequireFromString("0.10")

type PolicyKind string

const (
	PolicyAgentWithAdvance    PolicyKind = "agent_with_advance"
	PolicyAgentWithoutAdvance PolicyKind = "agent_without_advance"
	PolicyPartial             PolicyKind = "partial"
	PolicyFull                PolicyKind = "full"
)

type Policy struct {
	Kind           PolicyKind
	AdvancePayment money.Money
}

func (p Policy) IsAgent() bool {
	return p.Kind == PolicyAgentWithAdvance || p.Kind == PolicyAgentWithoutAdvance
}

// AgentPolicy chooses between the two agent policies from the optional advance.
func AgentPolicy(advance *money.Money) Policy {
	if advance == nil {
		return Policy{Kind: PolicyAgentWithoutAdvance}
	}
	return Policy{Kind: PolicyAgentWithAdvance, AdvancePayment: *advance}
}

func CustomerPolicy(partial bool) Policy {
	if partial {
		return Policy{Kind: PolicyPartial}
	}
	return Policy{Kind: PolicyFull}
}

// Split holds Upfront + Due == total for customer policies. Agents are
// invoiced, so their upfront is always zero.
type Split struct {
	Upfront money.Money
	Due     money.Money
}

func (r *DefaultResolver) Split(total money.Money, policy Policy) (Split, error) {
	if total.IsNegative() {
		return Split{}, ErrNegativeTotal
	}

	switch policy.Kind {
	case PolicyAgentWithAdvance:
		if policy.AdvancePayment.IsNegative() {
			return Split{}, ErrNegativeAdvance
		}
		if policy.AdvancePayment.GreaterThan(total) {
			return Split{}, ErrAdvanceExceedsTotal
		}
		return Split{
			Upfront: money.Zero(),
			Due:     money.Max(money.Zero(), total.Sub(policy.AdvancePayment)),
		}, nil

	case PolicyAgentWithoutAdvance:
		return Split{Upfront: money.Zero(), Due: money.Zero()}, nil

	case PolicyPartial:
		upfront := total.MulRate(r.PartialRate)
		return Split{Upfront: upfront, Due: total.Sub(upfront)}, nil

	case PolicyFull:
		return Split{Upfront: total, Due: money.Zero()}, nil

	default:
		return Split{}, ErrUnknownPolicy
	}
}
