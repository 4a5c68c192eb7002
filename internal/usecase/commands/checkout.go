package commands

import (
	"context"
	"time"

	"experience-booking/internal/domain/booking"
	"experience-booking/internal/domain/pricing"
	"experience-booking/internal/infra"
	"experience-booking/internal/pkg/errs"
	"experience-booking/internal/usecase/queries"
	"experience-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrSlotMismatch = errs.New("time slot does not belong to the activity")

type CheckoutRequest struct {
	ActivityID       uuid.UUID
	TimeSlotID       uuid.UUID
	Date             time.Time
	ParticipantCount int
	Contact          booking.ContactPerson
	CouponCode       *string
	ReferralCode     *string
	PartialPayment   bool
	// Agent is set only when the caller holds the agent role.
	Agent        *pricing.AgentPricing
	PaymentToken string
}

type CheckoutCommands interface {
	Checkout(ctx context.Context, userID uuid.UUID, req CheckoutRequest) (*FinalizeResult, error)
}

type checkoutUseCaseImpl struct {
	uow       shared.UnitOfWork
	quotes    queries.QuoteQueries
	finalizer BookingFinalizer
}

func NewCheckoutUseCase(uow shared.UnitOfWork, quotes queries.QuoteQueries, finalizer BookingFinalizer) CheckoutCommands {
	return &checkoutUseCaseImpl{uow: uow, quotes: quotes, finalizer: finalizer}
}

func (uc *checkoutUseCaseImpl) Checkout(ctx context.Context, userID uuid.UUID, req CheckoutRequest) (*FinalizeResult, error) {
	contact, err := booking.NewContactPerson(req.Contact.Name, req.Contact.Email, req.Contact.Phone)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	if req.Date.IsZero() {
		return nil, errs.Mark(booking.ErrMissingBookingDate, errs.ErrValidation)
	}

	quote, err := uc.quotes.Quote(ctx, queries.QuoteRequest{
		ActivityID:       req.ActivityID,
		ParticipantCount: req.ParticipantCount,
		CouponCode:       req.CouponCode,
		PartialPayment:   req.PartialPayment,
		Agent:            req.Agent,
	})
	if err != nil {
		return nil, err
	}

	slotSnap, err := uc.uow.CommandReads().TimeSlotByID(ctx, req.TimeSlotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, queries.ErrSlotNotFound)
		}
		return nil, err
	}
	if slotSnap.ActivityID != quote.Activity.ID() {
		return nil, errs.Mark(ErrSlotMismatch, errs.ErrValidation)
	}
	slot, err := slotSnap.ToDomain()
	if err != nil {
		return nil, errs.Wrapf(err, "time slot %s", slotSnap.ID)
	}

	var couponCode *string
	if quote.Price.Source == pricing.SourceCoupon && quote.Coupon != nil {
		code := quote.Coupon.Code
		couponCode = &code
	}

	uid := userID
	return uc.finalizer.Finalize(ctx, Selection{
		UserID:           &uid,
		Experience:       quote.Experience,
		Activity:         quote.Activity,
		Slot:             slot,
		Date:             req.Date,
		ParticipantCount: req.ParticipantCount,
		Contact:          contact,
		IsAgent:          req.Agent != nil,
		ReferralCode:     req.ReferralCode,
		CouponCode:       couponCode,
		PaymentToken:     req.PaymentToken,
	}, quote.Price, quote.Split)
}
