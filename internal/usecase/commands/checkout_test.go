//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"experience-booking/internal/domain/booking"
	"experience-booking/internal/domain/money"
	"experience-booking/internal/domain/pricing"
	"experience-booking/internal/infra"
	"experience-booking/internal/pkg/errs"
	"experience-booking/internal/usecase/commands"
	"experience-booking/internal/usecase/queries"
	"experience-booking/tests/common/builder"
	commandsmock "experience-booking/tests/mock/commands"
	queriesmock "experience-booking/tests/mock/queries"
	sharedmock "experience-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type checkoutDeps struct {
	reads     *sharedmock.MockCommandReads
	quotes    *queriesmock.MockQuoteQueries
	finalizer *commandsmock.MockBookingFinalizer
}

func newCheckout(t *testing.T) (commands.CheckoutCommands, *checkoutDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	uow := sharedmock.NewMockUnitOfWork(ctrl)
	d := &checkoutDeps{
		reads:     sharedmock.NewMockCommandReads(ctrl),
		quotes:    queriesmock.NewMockQuoteQueries(ctrl),
		finalizer: commandsmock.NewMockBookingFinalizer(ctrl),
	}
	uow.EXPECT().CommandReads().Return(d.reads).AnyTimes()
	return commands.NewCheckoutUseCase(uow, d.quotes, d.finalizer), d
}

func quoteFor(t *testing.T, ab *builder.ActivityBuilder, source pricing.Source, code string) *queries.Quote {
	t.Helper()
	exp, err := ab.BuildExperience()
	require.NoError(t, err)
	activity, err := ab.BuildDomain()
	require.NoError(t, err)

	q := &queries.Quote{
		Experience: exp,
		Activity:   activity,
		Price:      pricing.ResolvedPrice{PerPerson: money.MustParse("900"), Total: money.MustParse("1800"), Source: source},
		Split:      pricing.Split{Upfront: money.MustParse("1800"), Due: money.Zero()},
	}
	if code != "" {
		q.Coupon = &queries.CouponView{Code: code}
	}
	return q
}

func validCheckoutRequest(ab *builder.ActivityBuilder) commands.CheckoutRequest {
	return commands.CheckoutRequest{
		ActivityID:       ab.ID,
		TimeSlotID:       ab.SlotID,
		Date:             time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC),
		ParticipantCount: 2,
		Contact:          booking.ContactPerson{Name: "Asha Rao", Email: "ASHA@example.com ", Phone: "+919800000001"},
		PaymentToken:     "pidx_123",
	}
}

// =============================================================================
// Checkout Tests
// =============================================================================

func TestCheckout(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("success: finalizes exactly what was quoted", func(t *testing.T) {
		ab := builder.NewActivityBuilder()
		checkout, d := newCheckout(t)
		req := validCheckoutRequest(ab)
		code := "save10"
		req.CouponCode = &code
		quote := quoteFor(t, ab, pricing.SourceCoupon, "SAVE10")

		d.quotes.EXPECT().Quote(gomock.Any(), queries.QuoteRequest{
			ActivityID:       ab.ID,
			ParticipantCount: 2,
			CouponCode:       &code,
		}).Return(quote, nil)
		d.reads.EXPECT().TimeSlotByID(gomock.Any(), ab.SlotID).Return(ab.BuildSlotSnapshot(), nil)

		var got commands.Selection
		d.finalizer.EXPECT().Finalize(gomock.Any(), gomock.Any(), quote.Price, quote.Split).
			DoAndReturn(func(_ context.Context, sel commands.Selection, _ pricing.ResolvedPrice, _ pricing.Split) (*commands.FinalizeResult, error) {
				got = sel
				return &commands.FinalizeResult{}, nil
			})

		_, err := checkout.Checkout(ctx, userID, req)
		require.NoError(t, err)

		require.NotNil(t, got.UserID)
		assert.Equal(t, userID, *got.UserID)
		assert.Equal(t, ab.SlotID, got.Slot.ID())
		assert.Equal(t, "asha@example.com", got.Contact.Email)
		assert.False(t, got.IsAgent)
		require.NotNil(t, got.CouponCode)
		assert.Equal(t, "SAVE10", *got.CouponCode)
		assert.Equal(t, "pidx_123", got.PaymentToken)
	})

	t.Run("success: coupon code is dropped when agent pricing won", func(t *testing.T) {
		ab := builder.NewActivityBuilder()
		checkout, d := newCheckout(t)
		req := validCheckoutRequest(ab)
		code := "SAVE10"
		req.CouponCode = &code
		req.Agent = &pricing.AgentPricing{SellingPrice: money.MustParse("800")}

		d.quotes.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(quoteFor(t, ab, pricing.SourceAgent, ""), nil)
		d.reads.EXPECT().TimeSlotByID(gomock.Any(), ab.SlotID).Return(ab.BuildSlotSnapshot(), nil)
		d.finalizer.EXPECT().Finalize(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, sel commands.Selection, _ pricing.ResolvedPrice, _ pricing.Split) (*commands.FinalizeResult, error) {
				assert.True(t, sel.IsAgent)
				assert.Nil(t, sel.CouponCode)
				return &commands.FinalizeResult{}, nil
			})

		_, err := checkout.Checkout(ctx, userID, req)
		require.NoError(t, err)
	})

	t.Run("error: invalid contact is rejected before pricing", func(t *testing.T) {
		ab := builder.NewActivityBuilder()
		checkout, _ := newCheckout(t)
		req := validCheckoutRequest(ab)
		req.Contact.Phone = ""

		_, err := checkout.Checkout(ctx, userID, req)
		assert.True(t, errs.Is(err, booking.ErrInvalidContact))
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("error: date is required", func(t *testing.T) {
		ab := builder.NewActivityBuilder()
		checkout, _ := newCheckout(t)
		req := validCheckoutRequest(ab)
		req.Date = time.Time{}

		_, err := checkout.Checkout(ctx, userID, req)
		assert.True(t, errs.Is(err, booking.ErrMissingBookingDate))
	})

	t.Run("error: quote failure is returned as is", func(t *testing.T) {
		ab := builder.NewActivityBuilder()
		checkout, d := newCheckout(t)

		d.quotes.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(nil, queries.ErrInvalidCoupon)

		_, err := checkout.Checkout(ctx, userID, validCheckoutRequest(ab))
		assert.True(t, errs.Is(err, queries.ErrInvalidCoupon))
	})

	t.Run("error: unknown slot", func(t *testing.T) {
		ab := builder.NewActivityBuilder()
		checkout, d := newCheckout(t)

		d.quotes.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(quoteFor(t, ab, pricing.SourceActivity, ""), nil)
		d.reads.EXPECT().TimeSlotByID(gomock.Any(), ab.SlotID).Return(nil, infra.NotFound("time slot not found"))

		_, err := checkout.Checkout(ctx, userID, validCheckoutRequest(ab))
		assert.True(t, errs.Is(err, queries.ErrSlotNotFound))
	})

	t.Run("error: slot from another activity", func(t *testing.T) {
		ab := builder.NewActivityBuilder()
		checkout, d := newCheckout(t)
		foreign := ab.BuildSlotSnapshot()
		foreign.ActivityID = uuid.New()

		d.quotes.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(quoteFor(t, ab, pricing.SourceActivity, ""), nil)
		d.reads.EXPECT().TimeSlotByID(gomock.Any(), ab.SlotID).Return(foreign, nil)

		_, err := checkout.Checkout(ctx, userID, validCheckoutRequest(ab))
		assert.True(t, errs.Is(err, commands.ErrSlotMismatch))
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}
