package shared

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Write-side snapshots keep command code independent of read-side views.

type ExperienceSnapshot struct {
	ID          uuid.UUID
	Title       string
	Locations   []string
	VendorName  string
	VendorEmail string
}

type ActivitySnapshot struct {
	ID            uuid.UUID
	ExperienceID  uuid.UUID
	Name          string
	BasePrice     decimal.Decimal
	Currency      string
	DiscountType  *string
	DiscountValue *decimal.Decimal
	B2BPrice      decimal.Decimal
}

type TimeSlotSnapshot struct {
	ID         uuid.UUID
	ActivityID uuid.UUID
	StartTime  time.Time
	EndTime    time.Time
	Capacity   int
}

type CouponSnapshot struct {
	ID            uuid.UUID
	Code          string
	Type          string
	DiscountValue decimal.Decimal
	ActivityID    *uuid.UUID
	ValidFrom     *time.Time
	ValidTo       *time.Time
	IsActive      bool
}

type ProfileSnapshot struct {
	ID        uuid.UUID
	Email     string
	FullName  string
	Phone     *string
	Role      string
	UpdatedAt time.Time
}

type ParticipantSnapshot struct {
	ID    uuid.UUID
	Name  string
	Email string
	Phone string
}

type BookingSnapshot struct {
	ID               uuid.UUID
	UserID           *uuid.UUID
	ExperienceID     uuid.UUID
	ActivityID       uuid.UUID
	TimeSlotID       uuid.UUID
	BookingDate      time.Time
	ParticipantCount int
	BookingAmount    decimal.Decimal
	DueAmount        decimal.Decimal
	B2BPrice         decimal.Decimal
	Currency         string
	IsAgentBooking   bool
	Type             string
	ContactName      string
	ContactEmail     string
	ContactPhone     string
	ReferralCode     *string
	CouponCode       *string
	PaymentRef       *string
	Participants     []ParticipantSnapshot
	CreatedAt        time.Time
}
