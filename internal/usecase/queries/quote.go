package queries

import (
	"context"

	"experience-booking/internal/domain/experience"
	"experience-booking/internal/domain/pricing"
	"experience-booking/internal/infra"
	"experience-booking/internal/pkg/errs"
	"experience-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrExperienceNotFound = errs.New("experience not found")

type QuoteRequest struct {
	ActivityID       uuid.UUID
	ParticipantCount int
	CouponCode       *string
	PartialPayment   bool
	// Agent is set only for agent callers; it switches to agent pricing and
	// the agent payment policies.
	Agent *pricing.AgentPricing
}

func (r QuoteRequest) IsAgent() bool { return r.Agent != nil }

type Quote struct {
	Experience *experience.Experience
	Activity   *experience.Activity
	Price      pricing.ResolvedPrice
	Coupon     *CouponView
	Policy     pricing.Policy
	Split      pricing.Split
	Commission pricing.Commission
}

// QuoteQueries is the single pricing path; checkout commits what it returns.
type QuoteQueries interface {
	Quote(ctx context.Context, req QuoteRequest) (*Quote, error)
}

type quoteQueriesImpl struct {
	uow      shared.UnitOfWork
	coupons  CouponValidator
	resolver pricing.Resolver
}

func NewQuoteQueries(uow shared.UnitOfWork, coupons CouponValidator, resolver pricing.Resolver) QuoteQueries {
	return &quoteQueriesImpl{uow: uow, coupons: coupons, resolver: resolver}
}

func (q *quoteQueriesImpl) Quote(ctx context.Context, req QuoteRequest) (*Quote, error) {
	if err := pricing.ValidateParticipantCount(req.ParticipantCount); err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	exp, activity, err := q.loadActivity(ctx, req.ActivityID)
	if err != nil {
		return nil, err
	}

	opts := pricing.Options{Agent: req.Agent}
	var applied *CouponView
	if req.CouponCode != nil && !agentOverrides(req.Agent) {
		validation, verr := q.coupons.Validate(ctx, *req.CouponCode, activity.ID(), activity.EffectivePrice())
		if verr != nil {
			return nil, verr
		}
		opts.Coupon = validation.Calculation
		applied = validation.Coupon
	}

	price, err := q.resolver.Resolve(activity, req.ParticipantCount, opts)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	policy := pricing.CustomerPolicy(req.PartialPayment)
	if req.IsAgent() {
		policy = pricing.AgentPolicy(req.Agent.AdvancePayment)
	}
	split, err := q.resolver.Split(price.Total, policy)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	return &Quote{
		Experience: exp,
		Activity:   activity,
		Price:      price,
		Coupon:     applied,
		Policy:     policy,
		Split:      split,
		Commission: pricing.ComputeCommission(pricing.CommissionInput{
			BasePrice:        activity.BasePrice(),
			B2BPrice:         activity.B2BPrice(),
			BookingAmount:    price.Total,
			ParticipantCount: req.ParticipantCount,
			Upfront:          split.Upfront,
		}),
	}, nil
}

func (q *quoteQueriesImpl) loadActivity(ctx context.Context, activityID uuid.UUID) (*experience.Experience, *experience.Activity, error) {
	var (
		exp      *experience.Experience
		activity *experience.Activity
	)
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.CommandReads) error {
		asnap, err := reads.ActivityByID(ctx, activityID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrActivityNotFound)
			}
			return err
		}
		esnap, err := reads.ExperienceByID(ctx, asnap.ExperienceID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrExperienceNotFound)
			}
			return err
		}

		if activity, err = asnap.ToDomain(); err != nil {
			return errs.Wrapf(err, "activity %s", asnap.ID)
		}
		if exp, err = esnap.ToDomain(); err != nil {
			return errs.Wrapf(err, "experience %s", esnap.ID)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return exp, activity, nil
}

func agentOverrides(a *pricing.AgentPricing) bool {
	return a != nil && a.SellingPrice.IsPositive()
}
