package queries

import (
	"context"
	"time"

	"experience-booking/internal/domain/availability"
	"experience-booking/internal/domain/experience"
	"experience-booking/internal/infra"
	"experience-booking/internal/pkg/errs"
	"experience-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrActivityNotFound = errs.New("activity not found")
	ErrSlotNotFound     = errs.New("time slot not found")
)

type SlotView struct {
	ID        uuid.UUID `json:"id"`
	Label     string    `json:"label"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Capacity  int       `json:"capacity"`
	Remaining int       `json:"remaining"`
	IsFull    bool      `json:"isFull"`
}

// AvailabilityQueries derives seats left per slot. Nothing is cached; every
// call recounts bookings.
type AvailabilityQueries interface {
	RemainingCapacity(ctx context.Context, slotID uuid.UUID, date time.Time) (int, error)
	ListSlots(ctx context.Context, activityID uuid.UUID, date time.Time) ([]*SlotView, error)
}

type availabilityQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewAvailabilityQueries(uow shared.UnitOfWork) AvailabilityQueries {
	return &availabilityQueriesImpl{uow: uow}
}

func (q *availabilityQueriesImpl) RemainingCapacity(ctx context.Context, slotID uuid.UUID, date time.Time) (int, error) {
	reads := q.uow.CommandReads()

	snap, err := reads.TimeSlotByID(ctx, slotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return 0, errs.Mark(err, ErrSlotNotFound)
		}
		return 0, err
	}
	booked, err := reads.BookedSeats(ctx, slotID, availability.WindowFor(date))
	if err != nil {
		return 0, err
	}
	return availability.Remaining(snap.Capacity, booked), nil
}

// ListSlots returns every slot of the activity, full ones included.
func (q *availabilityQueriesImpl) ListSlots(ctx context.Context, activityID uuid.UUID, date time.Time) ([]*SlotView, error) {
	var summary []availability.SlotAvailability
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.CommandReads) error {
		if _, err := reads.ActivityByID(ctx, activityID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrActivityNotFound)
			}
			return err
		}

		snaps, err := reads.TimeSlotsByActivity(ctx, activityID)
		if err != nil {
			return err
		}
		slots := make([]*experience.TimeSlot, 0, len(snaps))
		ids := make([]uuid.UUID, 0, len(snaps))
		for _, s := range snaps {
			slot, derr := s.ToDomain()
			if derr != nil {
				return errs.Wrapf(derr, "time slot %s", s.ID)
			}
			slots = append(slots, slot)
			ids = append(ids, slot.ID())
		}

		booked, err := reads.BookedSeatsBySlots(ctx, ids, availability.WindowFor(date))
		if err != nil {
			return err
		}
		summary = availability.Summarize(slots, booked)
		return nil
	})
	if err != nil {
		return nil, err
	}

	views := make([]*SlotView, len(summary))
	for i, s := range summary {
		views[i] = &SlotView{
			ID:        s.Slot.ID(),
			Label:     s.Slot.Label(),
			StartTime: s.Slot.StartTime(),
			EndTime:   s.Slot.EndTime(),
			Capacity:  s.Slot.Capacity(),
			Remaining: s.Remaining,
			IsFull:    s.IsFull(),
		}
	}
	return views, nil
}
