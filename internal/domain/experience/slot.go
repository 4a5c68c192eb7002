package experience

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidCapacity   = errors.New("slot capacity must be positive")
	ErrInvalidSlotWindow = errors.New("slot end time must be after start time")
)

// TimeSlot times are wall-clock times of day; the date comes from the booking.
type TimeSlot struct {
	id         uuid.UUID
	activityID uuid.UUID
	startTime  time.Time
	endTime    time.Time
	capacity   int
}

func NewTimeSlot(id, activityID uuid.UUID, startTime, endTime time.Time, capacity int) (*TimeSlot, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if !endTime.After(startTime) {
		return nil, ErrInvalidSlotWindow
	}
	return &TimeSlot{
		id:         id,
		activityID: activityID,
		startTime:  startTime,
		endTime:    endTime,
		capacity:   capacity,
	}, nil
}

func (s *TimeSlot) ID() uuid.UUID         { return s.id }
func (s *TimeSlot) ActivityID() uuid.UUID { return s.activityID }
func (s *TimeSlot) StartTime() time.Time  { return s.startTime }
func (s *TimeSlot) EndTime() time.Time    { return s.endTime }
func (s *TimeSlot) Capacity() int         { return s.capacity }

func (s *TimeSlot) Label() string {
	return s.startTime.Format("15:04") + " - " + s.endTime.Format("15:04")
}
