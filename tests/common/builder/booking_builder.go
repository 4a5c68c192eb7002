//go:build unit || e2e

package builder

import (
	"time"

	"experience-booking/internal/domain/booking"
	"experience-booking/internal/domain/money"
	"experience-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingBuilder struct {
	UserID           *uuid.UUID
	ExperienceID     uuid.UUID
	ActivityID       uuid.UUID
	TimeSlotID       uuid.UUID
	BookingDate      time.Time
	ParticipantCount int
	BookingAmount    string
	DueAmount        string
	B2BPrice         string
	Currency         string
	IsAgentBooking   bool
	ContactName      string
	ContactEmail     string
	ContactPhone     string
	ReferralCode     *string
	CouponCode       *string
	PaymentRef       *string
}

func NewBookingBuilder() *BookingBuilder {
	userID := uuid.New()
	ref := "pay_test_123"
	return &BookingBuilder{
		UserID:           &userID,
		ExperienceID:     uuid.New(),
		ActivityID:       uuid.New(),
		TimeSlotID:       uuid.New(),
		BookingDate:      time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC),
		ParticipantCount: 2,
		BookingAmount:    "1800",
		DueAmount:        "0",
		B2BPrice:         "700",
		Currency:         "INR",
		ContactName:      "Asha Rao",
		ContactEmail:     "asha@example.com",
		ContactPhone:     "+919800000001",
		PaymentRef:       &ref,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) Params() booking.Params {
	return booking.Params{
		UserID:           b.UserID,
		ExperienceID:     b.ExperienceID,
		ActivityID:       b.ActivityID,
		TimeSlotID:       b.TimeSlotID,
		BookingDate:      b.BookingDate,
		ParticipantCount: b.ParticipantCount,
		BookingAmount:    money.MustParse(b.BookingAmount),
		DueAmount:        money.MustParse(b.DueAmount),
		B2BPrice:         money.MustParse(b.B2BPrice),
		Currency:         money.Currency(b.Currency),
		IsAgentBooking:   b.IsAgentBooking,
		Contact: booking.ContactPerson{
			Name:  b.ContactName,
			Email: b.ContactEmail,
			Phone: b.ContactPhone,
		},
		ReferralCode: b.ReferralCode,
		CouponCode:   b.CouponCode,
		PaymentRef:   b.PaymentRef,
	}
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	return booking.New(b.Params())
}

// BuildSnapshot mirrors a stored row with one participant per seat.
func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	bookingType := "online"
	if b.IsAgentBooking {
		bookingType = "offline"
	}
	participants := make([]shared.ParticipantSnapshot, b.ParticipantCount)
	for i := range participants {
		participants[i] = shared.ParticipantSnapshot{
			ID:    uuid.New(),
			Name:  b.ContactName,
			Email: b.ContactEmail,
			Phone: b.ContactPhone,
		}
	}
	return &shared.BookingSnapshot{
		ID:               uuid.New(),
		UserID:           b.UserID,
		ExperienceID:     b.ExperienceID,
		ActivityID:       b.ActivityID,
		TimeSlotID:       b.TimeSlotID,
		BookingDate:      b.BookingDate,
		ParticipantCount: b.ParticipantCount,
		BookingAmount:    decimal.RequireFromString(b.BookingAmount),
		DueAmount:        decimal.RequireFromString(b.DueAmount),
		B2BPrice:         decimal.RequireFromString(b.B2BPrice),
		Currency:         b.Currency,
		IsAgentBooking:   b.IsAgentBooking,
		Type:             bookingType,
		ContactName:      b.ContactName,
		ContactEmail:     b.ContactEmail,
		ContactPhone:     b.ContactPhone,
		ReferralCode:     b.ReferralCode,
		CouponCode:       b.CouponCode,
		PaymentRef:       b.PaymentRef,
		Participants:     participants,
		CreatedAt:        time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) WithParticipants(n int) *BookingBuilder {
	b.ParticipantCount = n
	return b
}

func (b *BookingBuilder) WithAmounts(total, due string) *BookingBuilder {
	b.BookingAmount = total
	b.DueAmount = due
	return b
}

func (b *BookingBuilder) WithContact(name, email, phone string) *BookingBuilder {
	b.ContactName = name
	b.ContactEmail = email
	b.ContactPhone = phone
	return b
}

func (b *BookingBuilder) AsAgent() *BookingBuilder {
	b.IsAgentBooking = true
	b.PaymentRef = nil
	return b
}

func (b *BookingBuilder) WithSlot(experienceID, activityID, slotID uuid.UUID) *BookingBuilder {
	b.ExperienceID = experienceID
	b.ActivityID = activityID
	b.TimeSlotID = slotID
	return b
}

func (b *BookingBuilder) WithDate(date time.Time) *BookingBuilder {
	b.BookingDate = date
	return b
}
