package booking

import (
	"errors"
	"time"

	"experience-booking/internal/domain/money"
	"experience-booking/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrNegativeAmount     = errors.New("booking amount cannot be negative")
	ErrInvalidDueAmount   = errors.New("due amount must be between 0 and the booking amount")
	ErrMissingBookingDate = errors.New("booking date is required")
	ErrInvalidType        = errors.New("invalid booking type")
)

type Participant struct {
	ID        uuid.UUID
	BookingID uuid.UUID
	Name      string
	Email     string
	Phone     string
}

type Booking struct {
	id               uuid.UUID
	userID           *uuid.UUID
	experienceID     uuid.UUID
	activityID       uuid.UUID
	timeSlotID       uuid.UUID
	bookingDate      time.Time
	participantCount int
	bookingAmount    money.Money
	dueAmount        money.Money
	b2bPrice         money.Money
	currency         money.Currency
	isAgentBooking   bool
	bookingType      Type
	contact          ContactPerson
	referralCode     *string
	couponCode       *string
	paymentRef       *string
	participants     []Participant
	createdAt        time.Time
}

type Params struct {
	UserID           *uuid.UUID
	ExperienceID     uuid.UUID
	ActivityID       uuid.UUID
	TimeSlotID       uuid.UUID
	BookingDate      time.Time
	ParticipantCount int
	BookingAmount    money.Money
	DueAmount        money.Money
	B2BPrice         money.Money
	Currency         money.Currency
	IsAgentBooking   bool
	Contact          ContactPerson
	ReferralCode     *string
	CouponCode       *string
	PaymentRef       *string
}

// New builds a booking with one participant per seat, all cloned from the contact.
func New(p Params) (*Booking, error) {
	if err := pricing.ValidateParticipantCount(p.ParticipantCount); err != nil {
		return nil, err
	}
	if p.BookingDate.IsZero() {
		return nil, ErrMissingBookingDate
	}
	if p.BookingAmount.IsNegative() {
		return nil, ErrNegativeAmount
	}
	if p.DueAmount.IsNegative() || p.DueAmount.GreaterThan(p.BookingAmount) {
		return nil, ErrInvalidDueAmount
	}
	contact, err := NewContactPerson(p.Contact.Name, p.Contact.Email, p.Contact.Phone)
	if err != nil {
		return nil, err
	}

	bookingType := TypeOnline
	if p.IsAgentBooking {
		bookingType = TypeOffline
	}

	b := &Booking{
		id:               uuid.New(),
		userID:           p.UserID,
		experienceID:     p.ExperienceID,
		activityID:       p.ActivityID,
		timeSlotID:       p.TimeSlotID,
		bookingDate:      p.BookingDate,
		participantCount: p.ParticipantCount,
		bookingAmount:    p.BookingAmount,
		dueAmount:        p.DueAmount,
		b2bPrice:         p.B2BPrice,
		currency:         p.Currency.OrDefault(),
		isAgentBooking:   p.IsAgentBooking,
		bookingType:      bookingType,
		contact:          contact,
		referralCode:     p.ReferralCode,
		couponCode:       p.CouponCode,
		paymentRef:       p.PaymentRef,
	}
	b.participants = b.cloneParticipants()
	return b, nil
}

// Reconstruct rebuilds a stored booking without re-running creation rules.
func Reconstruct(id uuid.UUID, p Params, bookingType Type, participants []Participant, createdAt time.Time) (*Booking, error) {
	if !bookingType.IsValid() {
		return nil, ErrInvalidType
	}
	return &Booking{
		id:               id,
		userID:           p.UserID,
		experienceID:     p.ExperienceID,
		activityID:       p.ActivityID,
		timeSlotID:       p.TimeSlotID,
		bookingDate:      p.BookingDate,
		participantCount: p.ParticipantCount,
		bookingAmount:    p.BookingAmount,
		dueAmount:        p.DueAmount,
		b2bPrice:         p.B2BPrice,
		currency:         p.Currency.OrDefault(),
		isAgentBooking:   p.IsAgentBooking,
		bookingType:      bookingType,
		contact:          p.Contact,
		referralCode:     p.ReferralCode,
		couponCode:       p.CouponCode,
		paymentRef:       p.PaymentRef,
		participants:     participants,
		createdAt:        createdAt,
	}, nil
}

func (b *Booking) cloneParticipants() []Participant {
	out := make([]Participant, b.participantCount)
	for i := range out {
		out[i] = Participant{
			ID:        uuid.New(),
			BookingID: b.id,
			Name:      b.contact.Name,
			Email:     b.contact.Email,
			Phone:     b.contact.Phone,
		}
	}
	return out
}

// RecordPayment attaches the gateway reference once the upfront charge clears.
func (b *Booking) RecordPayment(ref string) {
	b.paymentRef = &ref
}

// Upfront is the amount collected when the booking was made. Agents are
// invoiced, so their advance stays out of it.
func (b *Booking) Upfront() money.Money {
	if b.isAgentBooking {
		return money.Zero()
	}
	return b.bookingAmount.Sub(b.dueAmount)
}

func (b *Booking) Commission(basePrice money.Money) pricing.Commission {
	return pricing.ComputeCommission(pricing.CommissionInput{
		BasePrice:        basePrice,
		B2BPrice:         b.b2bPrice,
		BookingAmount:    b.bookingAmount,
		ParticipantCount: b.participantCount,
		Upfront:          b.Upfront(),
	})
}

func (b *Booking) IsCanceled() bool { return b.bookingType == TypeCanceled }

func (b *Booking) ID() uuid.UUID               { return b.id }
func (b *Booking) UserID() *uuid.UUID          { return b.userID }
func (b *Booking) ExperienceID() uuid.UUID     { return b.experienceID }
func (b *Booking) ActivityID() uuid.UUID       { return b.activityID }
func (b *Booking) TimeSlotID() uuid.UUID       { return b.timeSlotID }
func (b *Booking) BookingDate() time.Time      { return b.bookingDate }
func (b *Booking) ParticipantCount() int       { return b.participantCount }
func (b *Booking) BookingAmount() money.Money  { return b.bookingAmount }
func (b *Booking) DueAmount() money.Money      { return b.dueAmount }
func (b *Booking) B2BPrice() money.Money       { return b.b2bPrice }
func (b *Booking) Currency() money.Currency    { return b.currency }
func (b *Booking) IsAgentBooking() bool        { return b.isAgentBooking }
func (b *Booking) Type() Type                  { return b.bookingType }
func (b *Booking) Contact() ContactPerson      { return b.contact }
func (b *Booking) ReferralCode() *string       { return b.referralCode }
func (b *Booking) CouponCode() *string         { return b.couponCode }
func (b *Booking) PaymentRef() *string         { return b.paymentRef }
func (b *Booking) Participants() []Participant { return append([]Participant(nil), b.participants...) }
func (b *Booking) CreatedAt() time.Time        { return b.createdAt }
