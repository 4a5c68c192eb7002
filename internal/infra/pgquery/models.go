package pgquery

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Experience struct {
	ID          uuid.UUID
	Title       string
	Locations   []string
	VendorName  string
	VendorEmail pgtype.Text
	CreatedAt   pgtype.Timestamptz
}

type Activity struct {
	ID            uuid.UUID
	ExperienceID  uuid.UUID
	Name          string
	BasePrice     pgtype.Numeric
	Currency      string
	DiscountType  pgtype.Text
	DiscountValue pgtype.Numeric
	B2bPrice      pgtype.Numeric
	CreatedAt     pgtype.Timestamptz
}

type TimeSlot struct {
	ID         uuid.UUID
	ActivityID uuid.UUID
	StartTime  pgtype.Time
	EndTime    pgtype.Time
	Capacity   int32
}

type Coupon struct {
	ID            uuid.UUID
	Code          string
	Type          string
	DiscountValue pgtype.Numeric
	ActivityID    pgtype.UUID
	ValidFrom     pgtype.Timestamptz
	ValidUntil    pgtype.Timestamptz
	IsActive      bool
	CreatedAt     pgtype.Timestamptz
}

type Profile struct {
	ID        uuid.UUID
	Email     string
	FullName  string
	Phone     pgtype.Text
	Role      string
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

type Booking struct {
	ID               uuid.UUID
	UserID           pgtype.UUID
	ExperienceID     uuid.UUID
	ActivityID       uuid.UUID
	TimeSlotID       uuid.UUID
	BookingDate      pgtype.Timestamptz
	ParticipantCount int32
	BookingAmount    pgtype.Numeric
	DueAmount        pgtype.Numeric
	B2bPrice         pgtype.Numeric
	Currency         string
	IsAgentBooking   bool
	BookingType      string
	ContactName      string
	ContactEmail     string
	ContactPhone     string
	ReferralCode     pgtype.Text
	CouponCode       pgtype.Text
	PaymentRef       pgtype.Text
	CreatedAt        pgtype.Timestamptz
}

type BookingParticipant struct {
	ID        uuid.UUID
	BookingID uuid.UUID
	Name      string
	Email     string
	Phone     string
}
