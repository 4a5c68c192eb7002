// Package availability derives remaining seats per time slot from the slot
// capacity and the participant counts of non-canceled bookings.
package availability

import (
	"errors"
	"fmt"
	"time"

	"experience-booking/internal/domain/experience"

	"github.com/google/uuid"
)

var (
	ErrSlotFull         = errors.New("slot is fully booked")
	ErrCapacityExceeded = errors.New("not enough seats remaining")
)

// CapacityError carries the exact remaining count so callers can re-prompt.
type CapacityError struct {
	Remaining int
	Requested int
}

func (e *CapacityError) Error() string {
	if e.Remaining == 0 {
		return "this slot is fully booked"
	}
	seat := "seats"
	if e.Remaining == 1 {
		seat = "seat"
	}
	return fmt.Sprintf("only %d %s remaining for this slot, %d requested", e.Remaining, seat, e.Requested)
}

func (e *CapacityError) Is(target error) bool {
	if e.Remaining == 0 {
		return target == ErrSlotFull
	}
	return target == ErrCapacityExceeded
}

// Remaining is never negative, even when a slot was oversold.
func Remaining(capacity, booked int) int {
	return max(0, capacity-booked)
}

// Check rejects a request for more seats than remain.
func Check(remaining, requested int) error {
	if remaining <= 0 {
		return &CapacityError{Remaining: 0, Requested: requested}
	}
	if requested > remaining {
		return &CapacityError{Remaining: remaining, Requested: requested}
	}
	return nil
}

// DayWindow is the inclusive [00:00:00, 23:59:59] range of a calendar date in
// the date's own location. No timezone normalization is applied.
type DayWindow struct {
	Start time.Time
	End   time.Time
}

func WindowFor(date time.Time) DayWindow {
	y, m, d := date.Date()
	loc := date.Location()
	return DayWindow{
		Start: time.Date(y, m, d, 0, 0, 0, 0, loc),
		End:   time.Date(y, m, d, 23, 59, 59, 0, loc),
	}
}

func (w DayWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

type SlotAvailability struct {
	Slot      *experience.TimeSlot
	Booked    int
	Remaining int
}

func (s SlotAvailability) IsFull() bool { return s.Remaining == 0 }

// Summarize lists every slot, including fully booked ones, in input order.
func Summarize(slots []*experience.TimeSlot, bookedBySlot map[uuid.UUID]int) []SlotAvailability {
	out := make([]SlotAvailability, 0, len(slots))
	for _, s := range slots {
		booked := bookedBySlot[s.ID()]
		out = append(out, SlotAvailability{
			Slot:      s,
			Booked:    booked,
			Remaining: Remaining(s.Capacity(), booked),
		})
	}
	return out
}
