package commands

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"experience-booking/internal/domain/availability"
	"experience-booking/internal/domain/booking"
	"experience-booking/internal/domain/experience"
	"experience-booking/internal/domain/money"
	"experience-booking/internal/domain/pricing"
	"experience-booking/internal/infra"
	"experience-booking/internal/pkg/errs"
	"experience-booking/internal/pkg/metrics"
	"experience-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrPaymentCancelled     = errs.New("payment was cancelled")
	ErrPaymentFailed        = errs.New("payment failed")
	ErrPaymentTokenRequired = errs.New("payment token is required for an upfront payment")
	ErrPersistenceFailed    = errs.New("payment succeeded but booking failed, please contact support")
	ErrMissingSelection     = errs.New("experience, activity and time slot are required")
)

const (
	WarningMessagingDelayed = "Booking confirmed, but confirmation messages may be delayed"
	WarningProfileNotSaved  = "Booking confirmed, but your phone number could not be saved to your profile"
)

type Selection struct {
	UserID           *uuid.UUID
	Experience       *experience.Experience
	Activity         *experience.Activity
	Slot             *experience.TimeSlot
	Date             time.Time
	ParticipantCount int
	Contact          booking.ContactPerson
	IsAgent          bool
	ReferralCode     *string
	CouponCode       *string
	PaymentToken     string
}

type FinalizeResult struct {
	Booking  *booking.Booking
	Warnings []string
}

// BookingFinalizer commits a priced selection: capacity recheck, upfront
// charge, booking with participants in one transaction, then best-effort
// side effects. Failures after the commit never undo the booking.
type BookingFinalizer interface {
	Finalize(ctx context.Context, sel Selection, price pricing.ResolvedPrice, split pricing.Split) (*FinalizeResult, error)
}

type bookingFinalizerImpl struct {
	uow       shared.UnitOfWork
	authority shared.ChargeAuthority
	notifier  shared.Notifier
	logger    *slog.Logger
}

func NewBookingFinalizer(uow shared.UnitOfWork, authority shared.ChargeAuthority, notifier shared.Notifier, logger *slog.Logger) BookingFinalizer {
	return &bookingFinalizerImpl{
		uow:       uow,
		authority: authority,
		notifier:  notifier,
		logger:    logger,
	}
}

func (f *bookingFinalizerImpl) Finalize(ctx context.Context, sel Selection, price pricing.ResolvedPrice, split pricing.Split) (*FinalizeResult, error) {
	if sel.Experience == nil || sel.Activity == nil || sel.Slot == nil {
		return nil, errs.Mark(ErrMissingSelection, errs.ErrValidation)
	}

	b, err := booking.New(booking.Params{
		UserID:           sel.UserID,
		ExperienceID:     sel.Experience.ID(),
		ActivityID:       sel.Activity.ID(),
		TimeSlotID:       sel.Slot.ID(),
		BookingDate:      sel.Date,
		ParticipantCount: sel.ParticipantCount,
		BookingAmount:    price.Total,
		DueAmount:        split.Due,
		B2BPrice:         sel.Activity.B2BPrice(),
		Currency:         sel.Activity.Currency(),
		IsAgentBooking:   sel.IsAgent,
		Contact:          sel.Contact,
		ReferralCode:     sel.ReferralCode,
		CouponCode:       sel.CouponCode,
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	needsCharge := split.Upfront.IsPositive() && !sel.IsAgent
	if needsCharge && strings.TrimSpace(sel.PaymentToken) == "" {
		return nil, errs.Mark(ErrPaymentTokenRequired, errs.ErrValidation)
	}

	log := f.logger.With("booking_id", b.ID(), "slot_id", sel.Slot.ID(), "upfront", split.Upfront.String())

	if err := f.checkCapacity(ctx, sel); err != nil {
		metrics.RecordFinalize(metrics.OutcomeCapacityRejected)
		log.Info("capacity recheck rejected booking", "error", err.Error())
		return nil, err
	}

	if needsCharge {
		result := shared.AwaitCharge(ctx, f.authority, shared.ChargeRequest{
			Amount:      split.Upfront,
			Currency:    b.Currency(),
			OrderID:     b.ID().String(),
			Token:       sel.PaymentToken,
			Description: sel.Activity.Name(),
		})
		switch result.Outcome {
		case shared.ChargeSucceeded:
			b.RecordPayment(result.PaymentRef)
			log.Info("upfront payment captured", "payment_ref", result.PaymentRef)
		case shared.ChargeCancelled:
			metrics.RecordFinalize(metrics.OutcomePaymentCancelled)
			log.Info("payment cancelled by purchaser")
			return nil, ErrPaymentCancelled
		default:
			metrics.RecordFinalize(metrics.OutcomePaymentFailed)
			log.Warn("payment failed", "error", errString(result.Err))
			return nil, errs.Mark(errs.Wrap(causeOr(result.Err, ErrPaymentFailed), "charge"), ErrPaymentFailed)
		}
	}

	err = f.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Bookings().Create(ctx, b); derr != nil {
			return derr
		}
		return tx.Participants().CreateMany(ctx, b.Participants())
	})
	if err != nil {
		metrics.RecordFinalize(metrics.OutcomePersistenceFailed)
		if b.PaymentRef() != nil {
			log.Error("booking not saved after payment was captured",
				"payment_ref", *b.PaymentRef(),
				"error", err.Error())
			return nil, errs.Mark(err, ErrPersistenceFailed)
		}
		log.Error("booking not saved", "error", err.Error())
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	metrics.RecordFinalize(metrics.OutcomeConfirmed)
	metrics.RecordConfirmedSeats(b.ParticipantCount())
	log.Info("booking confirmed", "participants", b.ParticipantCount(), "total", b.BookingAmount().String())

	return &FinalizeResult{
		Booking:  b,
		Warnings: f.afterCommit(ctx, log, sel, b),
	}, nil
}

func (f *bookingFinalizerImpl) checkCapacity(ctx context.Context, sel Selection) error {
	booked, err := f.uow.CommandReads().BookedSeats(ctx, sel.Slot.ID(), availability.WindowFor(sel.Date))
	if err != nil {
		return err
	}
	return availability.Check(availability.Remaining(sel.Slot.Capacity(), booked), sel.ParticipantCount)
}

// afterCommit runs the best-effort side effects. It only ever returns
// warnings.
func (f *bookingFinalizerImpl) afterCommit(ctx context.Context, log *slog.Logger, sel Selection, b *booking.Booking) []string {
	var warnings []string

	if !sel.IsAgent && sel.UserID != nil {
		if err := f.backfillPhone(ctx, *sel.UserID, b.Contact().Phone); err != nil {
			metrics.RecordNotificationFailure(metrics.ChannelProfilePhoneUpdate)
			log.Warn("profile phone backfill failed", "error", err.Error())
			warnings = append(warnings, WarningProfileNotSaved)
		}
	}

	messagingFailed := false
	if err := f.notifier.SendTemplateMessage(ctx, templateMessage(sel, b)); err != nil {
		metrics.RecordNotificationFailure(metrics.ChannelTemplateMessage)
		log.Warn("template message failed", "error", err.Error())
		messagingFailed = true
	}
	for _, email := range bookingEmails(sel, b) {
		if err := f.notifier.SendEmail(ctx, email); err != nil {
			metrics.RecordNotificationFailure(metrics.ChannelEmail)
			log.Warn("email failed", "kind", email.Kind, "error", err.Error())
			messagingFailed = true
		}
	}
	if messagingFailed {
		warnings = append(warnings, WarningMessagingDelayed)
	}
	return warnings
}

func (f *bookingFinalizerImpl) backfillPhone(ctx context.Context, userID uuid.UUID, phone string) error {
	snap, err := f.uow.CommandReads().ProfileByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return err
	}
	profile, err := snap.ToDomain()
	if err != nil {
		return err
	}
	if !profile.BackfillPhone(phone) {
		return nil
	}
	return f.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Profiles().UpdatePhone(ctx, userID, *profile.Phone())
	})
}

func templateMessage(sel Selection, b *booking.Booking) shared.TemplateMessage {
	fields := map[string]string{
		"booking_id":   b.ID().String(),
		"name":         b.Contact().Name,
		"experience":   sel.Experience.Title(),
		"activity":     sel.Activity.Name(),
		"date":         b.BookingDate().Format("02 Jan 2006"),
		"time":         sel.Slot.Label(),
		"participants": strconv.Itoa(b.ParticipantCount()),
		"total":        formatAmount(b.BookingAmount(), b.Currency()),
		"paid":         formatAmount(b.Upfront(), b.Currency()),
		"due":          formatAmount(b.DueAmount(), b.Currency()),
	}

	template := shared.TemplateSingleLocation
	locations := sel.Experience.Locations()
	if sel.Experience.HasTwoLocations() {
		template = shared.TemplateTwoLocations
		fields["pickup_location"] = locations[0]
		fields["drop_location"] = locations[1]
	} else if len(locations) > 0 {
		fields["location"] = locations[0]
	}

	return shared.TemplateMessage{
		Template:       template,
		RecipientPhone: b.Contact().Phone,
		Fields:         fields,
	}
}

func bookingEmails(sel Selection, b *booking.Booking) []shared.Email {
	payload := map[string]string{
		"BookingID":    b.ID().String(),
		"Name":         b.Contact().Name,
		"Email":        b.Contact().Email,
		"Phone":        b.Contact().Phone,
		"Experience":   sel.Experience.Title(),
		"Activity":     sel.Activity.Name(),
		"Date":         b.BookingDate().Format("02 Jan 2006"),
		"Time":         sel.Slot.Label(),
		"Participants": strconv.Itoa(b.ParticipantCount()),
		"Total":        formatAmount(b.BookingAmount(), b.Currency()),
		"Paid":         formatAmount(b.Upfront(), b.Currency()),
		"Due":          formatAmount(b.DueAmount(), b.Currency()),
	}

	emails := []shared.Email{{
		Kind:    shared.EmailBookingConfirmation,
		To:      b.Contact().Email,
		Subject: "Your booking for " + sel.Activity.Name() + " is confirmed",
		Payload: payload,
	}}
	if vendor := sel.Experience.VendorEmail(); vendor != "" {
		emails = append(emails, shared.Email{
			Kind:    shared.EmailVendorBookingAlert,
			To:      vendor,
			Subject: "New booking: " + sel.Activity.Name(),
			Payload: payload,
		})
	}
	return emails
}

func formatAmount(m money.Money, c money.Currency) string {
	return c.String() + " " + m.String()
}

func causeOr(err, fallback error) error {
	if err != nil {
		return err
	}
	return fallback
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
