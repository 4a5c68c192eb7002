package request

import (
	"strings"
	"time"

	"experience-booking/internal/domain/money"
	"experience-booking/internal/domain/pricing"
	"experience-booking/internal/domain/user"
	"experience-booking/internal/pkg/errs"
	"experience-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

const DateLayout = "2006-01-02"

var ErrInvalidAmount = errs.New("amount must be a decimal number")

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

// AgentPricingRequest is honored only for callers holding the agent role.
type AgentPricingRequest struct {
	SellingPrice   string  `json:"sellingPrice,omitempty" binding:"omitempty,numeric"`
	AdvancePayment *string `json:"advancePayment,omitempty" binding:"omitempty,numeric"`
}

// ToDomain returns nil for non-agents. An agent without a body still gets
// agent payment terms at the public price.
func (r *AgentPricingRequest) ToDomain(role user.Role) (*pricing.AgentPricing, error) {
	if !role.IsAgent() {
		return nil, nil
	}
	agent := &pricing.AgentPricing{}
	if r == nil {
		return agent, nil
	}
	if r.SellingPrice != "" {
		p, err := parseAmount(r.SellingPrice)
		if err != nil {
			return nil, err
		}
		agent.SellingPrice = p
	}
	if r.AdvancePayment != nil {
		a, err := parseAmount(*r.AdvancePayment)
		if err != nil {
			return nil, err
		}
		agent.AdvancePayment = &a
	}
	return agent, nil
}

type QuoteRequest struct {
	ActivityID       uuid.UUID            `json:"activityId" binding:"required"`
	ParticipantCount int                  `json:"participantCount" binding:"required,min=1,max=50"`
	CouponCode       *string              `json:"couponCode,omitempty"`
	PartialPayment   bool                 `json:"partialPayment"`
	Agent            *AgentPricingRequest `json:"agent,omitempty"`
}

func (r QuoteRequest) ToQuery(role user.Role) (queries.QuoteRequest, error) {
	agent, err := r.Agent.ToDomain(role)
	if err != nil {
		return queries.QuoteRequest{}, err
	}
	return queries.QuoteRequest{
		ActivityID:       r.ActivityID,
		ParticipantCount: r.ParticipantCount,
		CouponCode:       trimmedOrNil(r.CouponCode),
		PartialPayment:   r.PartialPayment,
		Agent:            agent,
	}, nil
}

type ValidateCouponRequest struct {
	Code       string    `json:"code" binding:"required,max=64"`
	ActivityID uuid.UUID `json:"activityId" binding:"required"`
	// Price is the per-person price the discount is computed on.
	Price string `json:"price" binding:"required,numeric"`
}

func (r ValidateCouponRequest) ParsedPrice() (money.Money, error) {
	return parseAmount(r.Price)
}

func parseAmount(s string) (money.Money, error) {
	m, err := money.Parse(s)
	if err != nil {
		return money.Money{}, errs.Mark(errs.Wrapf(err, "amount %q", s), ErrInvalidAmount)
	}
	if m.IsNegative() {
		return money.Money{}, errs.Mark(errs.Newf("amount %q cannot be negative", s), ErrInvalidAmount)
	}
	return m, nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
