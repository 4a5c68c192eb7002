package shared

import (
	"context"

	"experience-booking/internal/domain/availability"
	"experience-booking/internal/domain/booking"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads CommandReads) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Participants() ParticipantRepository
	Profiles() ProfileRepository
	Reads() CommandReads
}

type CommandReads interface {
	ExperienceByID(ctx context.Context, id uuid.UUID) (*ExperienceSnapshot, error)
	ActivityByID(ctx context.Context, id uuid.UUID) (*ActivitySnapshot, error)
	TimeSlotByID(ctx context.Context, id uuid.UUID) (*TimeSlotSnapshot, error)
	TimeSlotsByActivity(ctx context.Context, activityID uuid.UUID) ([]*TimeSlotSnapshot, error)
	// BookedSeats sums participant counts of non-canceled bookings inside the window.
	BookedSeats(ctx context.Context, slotID uuid.UUID, window availability.DayWindow) (int, error)
	BookedSeatsBySlots(ctx context.Context, slotIDs []uuid.UUID, window availability.DayWindow) (map[uuid.UUID]int, error)
	CouponByCode(ctx context.Context, code string) (*CouponSnapshot, error)
	ProfileByID(ctx context.Context, id uuid.UUID) (*ProfileSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
}

type ParticipantRepository interface {
	CreateMany(ctx context.Context, participants []booking.Participant) error
}

type ProfileRepository interface {
	UpdatePhone(ctx context.Context, userID uuid.UUID, phone string) error
}
