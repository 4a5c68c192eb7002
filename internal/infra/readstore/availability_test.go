//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"experience-booking/internal/domain/availability"
	"experience-booking/internal/infra"
	"experience-booking/internal/infra/pgquery"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAvailabilityReadQueries struct {
	mock.Mock
}

func (m *MockAvailabilityReadQueries) SumBookedSeats(ctx context.Context, db pgquery.DBTX, arg pgquery.SumBookedSeatsParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAvailabilityReadQueries) SumBookedSeatsBySlots(ctx context.Context, db pgquery.DBTX, arg pgquery.SumBookedSeatsBySlotsParams) ([]pgquery.SumBookedSeatsBySlotsRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]pgquery.SumBookedSeatsBySlotsRow), args.Error(1)
}

func TestAvailabilityReadStore_BookedSeats(t *testing.T) {
	slotID := uuid.New()
	window := availability.WindowFor(time.Date(2026, 5, 4, 15, 0, 0, 0, time.UTC))

	t.Run("success: window bounds are passed through", func(t *testing.T) {
		q := new(MockAvailabilityReadQueries)
		q.On("SumBookedSeats", mock.Anything, mock.Anything, mock.MatchedBy(func(p pgquery.SumBookedSeatsParams) bool {
			return p.TimeSlotID == slotID &&
				p.DayStart.Time.Equal(time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)) &&
				p.DayEnd.Time.Equal(time.Date(2026, 5, 4, 23, 59, 59, 0, time.UTC))
		})).Return(int64(7), nil)

		got, err := NewAvailabilityReadStore(q).BookedSeats(context.Background(), nil, slotID, window)
		require.NoError(t, err)
		assert.Equal(t, 7, got)
		q.AssertExpectations(t)
	})

	t.Run("error: database failure", func(t *testing.T) {
		q := new(MockAvailabilityReadQueries)
		q.On("SumBookedSeats", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), assert.AnError)

		_, err := NewAvailabilityReadStore(q).BookedSeats(context.Background(), nil, slotID, window)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestAvailabilityReadStore_BookedSeatsBySlots(t *testing.T) {
	window := availability.WindowFor(time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC))
	a, b := uuid.New(), uuid.New()

	t.Run("success: slots without bookings are absent", func(t *testing.T) {
		q := new(MockAvailabilityReadQueries)
		q.On("SumBookedSeatsBySlots", mock.Anything, mock.Anything, mock.MatchedBy(func(p pgquery.SumBookedSeatsBySlotsParams) bool {
			return len(p.TimeSlotIds) == 2
		})).Return([]pgquery.SumBookedSeatsBySlotsRow{{TimeSlotID: a, Booked: 3}}, nil)

		got, err := NewAvailabilityReadStore(q).BookedSeatsBySlots(context.Background(), nil, []uuid.UUID{a, b}, window)
		require.NoError(t, err)
		assert.Equal(t, map[uuid.UUID]int{a: 3}, got)
	})

	t.Run("success: no slots skips the query", func(t *testing.T) {
		q := new(MockAvailabilityReadQueries)

		got, err := NewAvailabilityReadStore(q).BookedSeatsBySlots(context.Background(), nil, nil, window)
		require.NoError(t, err)
		assert.Empty(t, got)
		q.AssertNotCalled(t, "SumBookedSeatsBySlots", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("error: database failure", func(t *testing.T) {
		q := new(MockAvailabilityReadQueries)
		q.On("SumBookedSeatsBySlots", mock.Anything, mock.Anything, mock.Anything).
			Return([]pgquery.SumBookedSeatsBySlotsRow(nil), assert.AnError)

		_, err := NewAvailabilityReadStore(q).BookedSeatsBySlots(context.Background(), nil, []uuid.UUID{a}, window)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
