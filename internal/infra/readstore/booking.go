package readstore

import (
	"context"

	"experience-booking/internal/infra"
	"experience-booking/internal/infra/pgquery"
	"experience-booking/internal/pkg/errs"
	"experience-booking/internal/pkg/pgconv"
	"experience-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingReadQueries interface {
	FindBookingByID(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.Booking, error)
	ListParticipantsByBooking(ctx context.Context, db pgquery.DBTX, bookingID uuid.UUID) ([]pgquery.BookingParticipant, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
}

func NewBookingReadStore(queries BookingReadQueries) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (*shared.BookingSnapshot, error) {
	row, err := r.queries.FindBookingByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	participants, err := r.queries.ListParticipantsByBooking(ctx, db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking participants", err)
	}

	return toBookingSnapshot(row, participants)
}

func toBookingSnapshot(row pgquery.Booking, participants []pgquery.BookingParticipant) (*shared.BookingSnapshot, error) {
	amount, err := pgconv.DecimalFromNumeric(row.BookingAmount)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s amount", row.ID)
	}
	due, err := pgconv.DecimalFromNumeric(row.DueAmount)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s due amount", row.ID)
	}
	b2b, err := pgconv.DecimalFromNumeric(row.B2bPrice)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s b2b price", row.ID)
	}

	snap := &shared.BookingSnapshot{
		ID:               row.ID,
		UserID:           pgconv.UUIDPtrFromPgtype(row.UserID),
		ExperienceID:     row.ExperienceID,
		ActivityID:       row.ActivityID,
		TimeSlotID:       row.TimeSlotID,
		BookingDate:      pgconv.TimeFromPgtype(row.BookingDate),
		ParticipantCount: int(row.ParticipantCount),
		BookingAmount:    amount,
		DueAmount:        due,
		B2BPrice:         b2b,
		Currency:         row.Currency,
		IsAgentBooking:   row.IsAgentBooking,
		Type:             row.BookingType,
		ContactName:      row.ContactName,
		ContactEmail:     row.ContactEmail,
		ContactPhone:     row.ContactPhone,
		ReferralCode:     pgconv.StringPtrFromPgtype(row.ReferralCode),
		CouponCode:       pgconv.StringPtrFromPgtype(row.CouponCode),
		PaymentRef:       pgconv.StringPtrFromPgtype(row.PaymentRef),
		Participants:     make([]shared.ParticipantSnapshot, len(participants)),
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
	}
	for i, p := range participants {
		snap.Participants[i] = shared.ParticipantSnapshot{
			ID:    p.ID,
			Name:  p.Name,
			Email: p.Email,
			Phone: p.Phone,
		}
	}
	return snap, nil
}
