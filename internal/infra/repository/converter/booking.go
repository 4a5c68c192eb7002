package converter

import (
	"experience-booking/internal/domain/booking"
	"experience-booking/internal/infra/pgquery"
	"experience-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

// BookingToInsertParams leaves created_at unset for new bookings so the
// database clock stamps them.
func BookingToInsertParams(b *booking.Booking) pgquery.InsertBookingParams {
	contact := b.Contact()
	createdAt := pgtype.Timestamptz{}
	if !b.CreatedAt().IsZero() {
		createdAt = pgconv.TimeToPgtype(b.CreatedAt())
	}
	return pgquery.InsertBookingParams{
		ID:               b.ID(),
		UserID:           pgconv.UUIDPtrToPgtype(b.UserID()),
		ExperienceID:     b.ExperienceID(),
		ActivityID:       b.ActivityID(),
		TimeSlotID:       b.TimeSlotID(),
		BookingDate:      pgconv.TimeToPgtype(b.BookingDate()),
		ParticipantCount: int32(b.ParticipantCount()), // #nosec G115 -- bounded by participant validation
		BookingAmount:    pgconv.NumericFromDecimal(b.BookingAmount().Decimal()),
		DueAmount:        pgconv.NumericFromDecimal(b.DueAmount().Decimal()),
		B2bPrice:         pgconv.NumericFromDecimal(b.B2BPrice().Decimal()),
		Currency:         b.Currency().String(),
		IsAgentBooking:   b.IsAgentBooking(),
		BookingType:      b.Type().String(),
		ContactName:      contact.Name,
		ContactEmail:     contact.Email,
		ContactPhone:     contact.Phone,
		ReferralCode:     pgconv.StringPtrToPgtype(b.ReferralCode()),
		CouponCode:       pgconv.StringPtrToPgtype(b.CouponCode()),
		PaymentRef:       pgconv.StringPtrToPgtype(b.PaymentRef()),
		CreatedAt:        createdAt,
	}
}

func ParticipantsToInsertParams(participants []booking.Participant) []pgquery.InsertParticipantsParams {
	out := make([]pgquery.InsertParticipantsParams, len(participants))
	for i, p := range participants {
		out[i] = pgquery.InsertParticipantsParams{
			ID:        p.ID,
			BookingID: p.BookingID,
			Name:      p.Name,
			Email:     p.Email,
			Phone:     p.Phone,
		}
	}
	return out
}
