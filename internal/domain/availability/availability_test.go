//go:build unit

package availability_test

import (
	"errors"
	"testing"
	"time"

	"experience-booking/internal/domain/availability"
	"experience-booking/internal/domain/experience"
	"experience-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemaining(t *testing.T) {
	cases := []struct {
		name     string
		capacity int
		booked   int
		want     int
	}{
		{name: "no bookings", capacity: 10, booked: 0, want: 10},
		{name: "two bookings of 4 and 5", capacity: 10, booked: 9, want: 1},
		{name: "exactly full", capacity: 10, booked: 10, want: 0},
		{name: "oversold never goes negative", capacity: 10, booked: 13, want: 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, availability.Remaining(c.capacity, c.booked))
		})
	}
}

func TestCheck(t *testing.T) {
	t.Run("enough seats", func(t *testing.T) {
		require.NoError(t, availability.Check(3, 3))
	})

	t.Run("capacity exceeded reports the remaining count", func(t *testing.T) {
		err := availability.Check(1, 2)
		require.ErrorIs(t, err, availability.ErrCapacityExceeded)
		require.NotErrorIs(t, err, availability.ErrSlotFull)

		var capErr *availability.CapacityError
		require.True(t, errors.As(err, &capErr))
		assert.Equal(t, 1, capErr.Remaining)
		assert.Contains(t, err.Error(), "only 1 seat remaining")
	})

	t.Run("slot full", func(t *testing.T) {
		err := availability.Check(0, 1)
		require.ErrorIs(t, err, availability.ErrSlotFull)
		require.NotErrorIs(t, err, availability.ErrCapacityExceeded)
		assert.Contains(t, err.Error(), "fully booked")
	})
}

func TestWindowFor(t *testing.T) {
	loc := time.FixedZone("IST", 19800)
	w := availability.WindowFor(time.Date(2026, 5, 4, 15, 30, 0, 0, loc))

	assert.Equal(t, time.Date(2026, 5, 4, 0, 0, 0, 0, loc), w.Start)
	assert.Equal(t, time.Date(2026, 5, 4, 23, 59, 59, 0, loc), w.End)
	assert.True(t, w.Contains(w.Start))
	assert.True(t, w.Contains(w.End))
	assert.False(t, w.Contains(w.End.Add(time.Second)))
	assert.False(t, w.Contains(w.Start.Add(-time.Second)))
}

func TestSummarize(t *testing.T) {
	b := builder.NewActivityBuilder().WithCapacity(10)
	morning, err := b.BuildSlot()
	require.NoError(t, err)
	evening, err := experience.NewTimeSlot(uuid.New(), b.ID,
		time.Date(0, 1, 1, 16, 0, 0, 0, time.UTC), time.Date(0, 1, 1, 18, 0, 0, 0, time.UTC), 4)
	require.NoError(t, err)

	got := availability.Summarize([]*experience.TimeSlot{morning, evening}, map[uuid.UUID]int{
		evening.ID(): 4,
	})

	require.Len(t, got, 2, "fully booked slots are still listed")
	assert.Equal(t, 10, got[0].Remaining)
	assert.False(t, got[0].IsFull())
	assert.Equal(t, 0, got[1].Remaining)
	assert.True(t, got[1].IsFull())
}
