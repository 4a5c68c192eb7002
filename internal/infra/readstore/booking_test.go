//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"experience-booking/internal/infra"
	"experience-booking/internal/infra/pgquery"
	"experience-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingReadQueries struct {
	mock.Mock
}

func (m *MockBookingReadQueries) FindBookingByID(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.Booking, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(pgquery.Booking), args.Error(1)
}

func (m *MockBookingReadQueries) ListParticipantsByBooking(ctx context.Context, db pgquery.DBTX, bookingID uuid.UUID) ([]pgquery.BookingParticipant, error) {
	args := m.Called(ctx, db, bookingID)
	return args.Get(0).([]pgquery.BookingParticipant), args.Error(1)
}

func TestBookingReadStore_FindByID(t *testing.T) {
	id := uuid.New()
	userID := uuid.New()
	date := time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)
	row := pgquery.Booking{
		ID:               id,
		UserID:           pgconv.UUIDToPgtype(userID),
		ExperienceID:     uuid.New(),
		ActivityID:       uuid.New(),
		TimeSlotID:       uuid.New(),
		BookingDate:      pgconv.TimeToPgtype(date),
		ParticipantCount: 2,
		BookingAmount:    numeric("2000"),
		DueAmount:        numeric("1800"),
		B2bPrice:         numeric("0"),
		Currency:         "INR",
		BookingType:      "online",
		ContactName:      "Asha",
		ContactEmail:     "asha@example.com",
		ContactPhone:     "9876543210",
		PaymentRef:       pgconv.StringToPgtype("pay_123"),
	}

	t.Run("success: booking with participants", func(t *testing.T) {
		q := new(MockBookingReadQueries)
		q.On("FindBookingByID", mock.Anything, mock.Anything, id).Return(row, nil)
		q.On("ListParticipantsByBooking", mock.Anything, mock.Anything, id).Return([]pgquery.BookingParticipant{
			{ID: uuid.New(), BookingID: id, Name: "Asha", Email: "asha@example.com", Phone: "9876543210"},
			{ID: uuid.New(), BookingID: id, Name: "Asha", Email: "asha@example.com", Phone: "9876543210"},
		}, nil)

		got, err := NewBookingReadStore(q).FindByID(context.Background(), nil, id)
		require.NoError(t, err)
		require.NotNil(t, got.UserID)
		assert.Equal(t, userID, *got.UserID)
		assert.True(t, date.Equal(got.BookingDate))
		assert.Equal(t, "1800", got.DueAmount.String())
		assert.Len(t, got.Participants, 2)
		require.NotNil(t, got.PaymentRef)
		assert.Equal(t, "pay_123", *got.PaymentRef)
		assert.Nil(t, got.CouponCode)
		q.AssertExpectations(t)
	})

	t.Run("error: not found", func(t *testing.T) {
		q := new(MockBookingReadQueries)
		q.On("FindBookingByID", mock.Anything, mock.Anything, id).Return(pgquery.Booking{}, pgx.ErrNoRows)

		_, err := NewBookingReadStore(q).FindByID(context.Background(), nil, id)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		q.AssertNotCalled(t, "ListParticipantsByBooking", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("error: participant query failure", func(t *testing.T) {
		q := new(MockBookingReadQueries)
		q.On("FindBookingByID", mock.Anything, mock.Anything, id).Return(row, nil)
		q.On("ListParticipantsByBooking", mock.Anything, mock.Anything, id).Return([]pgquery.BookingParticipant(nil), assert.AnError)

		_, err := NewBookingReadStore(q).FindByID(context.Background(), nil, id)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
