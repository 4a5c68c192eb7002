package queries

import (
	"context"

	"experience-booking/internal/domain/booking"
	"experience-booking/internal/domain/money"
	"experience-booking/internal/domain/pricing"
	"experience-booking/internal/domain/user"
	"experience-booking/internal/infra"
	"experience-booking/internal/pkg/errs"
	"experience-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound  = errs.New("booking not found")
	ErrBookingForbidden = errs.New("booking belongs to another user")
)

type BookingView struct {
	Booking      *booking.Booking
	ActivityName string
	SlotLabel    string
	// Commission is recomputed on every read; it is never stored.
	Commission pricing.Commission
}

type BookingQueries interface {
	GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*BookingView, error)
}

type bookingQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewBookingQueries(uow shared.UnitOfWork) BookingQueries {
	return &bookingQueriesImpl{uow: uow}
}

// GetByID returns the booking to its owner, to the agent who created it and
// to admins.
func (q *bookingQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*BookingView, error) {
	var view *BookingView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.CommandReads) error {
		snap, err := reads.BookingByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrBookingNotFound)
			}
			return err
		}
		if actorRole != user.RoleAdmin && (snap.UserID == nil || *snap.UserID != actorID) {
			return ErrBookingForbidden
		}

		b, err := snap.ToDomain()
		if err != nil {
			return errs.Wrapf(err, "booking %s", snap.ID)
		}

		asnap, err := reads.ActivityByID(ctx, snap.ActivityID)
		if err != nil {
			return err
		}
		slotLabel := ""
		if ssnap, serr := reads.TimeSlotByID(ctx, snap.TimeSlotID); serr == nil {
			if slot, derr := ssnap.ToDomain(); derr == nil {
				slotLabel = slot.Label()
			}
		}

		view = &BookingView{
			Booking:      b,
			ActivityName: asnap.Name,
			SlotLabel:    slotLabel,
			Commission:   b.Commission(money.New(asnap.BasePrice)),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
