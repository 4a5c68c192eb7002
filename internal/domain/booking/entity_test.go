//go:build unit

package booking_test

import (
	"testing"

	"experience-booking/internal/domain/booking"
	"experience-booking/internal/domain/money"
	"experience-booking/internal/domain/pricing"
	"experience-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestBooking(t *testing.T) {
	t.Run("participants are cloned from the contact", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().
			WithParticipants(3).
			WithContact("  Asha Rao ", "Asha@Example.com", "+919800000001").
			BuildDomain()
		require.NoError(t, err)

		ps := b.Participants()
		require.Len(t, ps, 3)
		seen := map[string]bool{}
		for _, p := range ps {
			assert.Equal(t, b.ID(), p.BookingID)
			assert.Equal(t, "Asha Rao", p.Name)
			assert.Equal(t, "asha@example.com", p.Email)
			assert.Equal(t, "+919800000001", p.Phone)
			seen[p.ID.String()] = true
		}
		assert.Len(t, seen, 3, "each seat gets its own row id")
	})

	t.Run("customer bookings are online, agent bookings offline", func(t *testing.T) {
		customer, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, booking.TypeOnline, customer.Type())
		assert.False(t, customer.IsCanceled())

		agent, err := builder.NewBookingBuilder().AsAgent().BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, booking.TypeOffline, agent.Type())
		assert.True(t, agent.IsAgentBooking())
	})

	t.Run("upfront is booking amount minus due", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().WithParticipants(3).WithAmounts("1200", "1080").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "120.00", b.Upfront().String())
		assert.True(t, b.Upfront().Add(b.DueAmount()).Equal(b.BookingAmount()))
	})

	t.Run("agent bookings report no upfront", func(t *testing.T) {
		withAdvance, err := builder.NewBookingBuilder().AsAgent().WithParticipants(2).WithAmounts("1600", "1100").BuildDomain()
		require.NoError(t, err)
		assert.True(t, withAdvance.Upfront().IsZero())

		invoiced, err := builder.NewBookingBuilder().AsAgent().WithParticipants(2).WithAmounts("1600", "0").BuildDomain()
		require.NoError(t, err)
		assert.True(t, invoiced.Upfront().IsZero())
	})

	t.Run("agent commission on read matches the quote", func(t *testing.T) {
		resolver := pricing.NewDefaultResolver()
		total := money.MustParse("1600")
		base := money.MustParse("1000")
		b2b := money.MustParse("600")
		advance := money.MustParse("500")

		for _, policy := range []pricing.Policy{pricing.AgentPolicy(&advance), pricing.AgentPolicy(nil)} {
			split, err := resolver.Split(total, policy)
			require.NoError(t, err)
			quoted := pricing.ComputeCommission(pricing.CommissionInput{
				BasePrice:        base,
				B2BPrice:         b2b,
				BookingAmount:    total,
				ParticipantCount: 2,
				Upfront:          split.Upfront,
			})

			bb := builder.NewBookingBuilder().AsAgent().WithParticipants(2).WithAmounts("1600", split.Due.String())
			bb.B2BPrice = "600"
			b, err := bb.BuildDomain()
			require.NoError(t, err)

			read := b.Commission(base)
			assert.Equal(t, quoted.VendorOwesPlatform.String(), read.VendorOwesPlatform.String(), string(policy.Kind))
			assert.Equal(t, "400.00", read.VendorOwesPlatform.String(), string(policy.Kind))
			assert.Equal(t, quoted.Net.String(), read.Net.String())
		}
	})

	t.Run("commission is recomputed from stored inputs", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().WithParticipants(2).WithAmounts("1800", "1620").BuildDomain()
		require.NoError(t, err)

		c := b.Commission(money.MustParse("1000"))
		assert.Equal(t, "300.00", c.PerVendor.String())
		assert.Equal(t, "400.00", c.Net.String())
		assert.Equal(t, "220.00", c.VendorOwesPlatform.String())
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "zero participants NG", mutate: func(b *builder.BookingBuilder) { b.WithParticipants(0) }, errIs: pricing.ErrInvalidParticipantCount},
			{name: "51 participants NG", mutate: func(b *builder.BookingBuilder) { b.WithParticipants(51) }, errIs: pricing.ErrInvalidParticipantCount},
			{name: "50 participants OK", mutate: func(b *builder.BookingBuilder) { b.WithParticipants(50) }},
			{name: "negative amount NG", mutate: func(b *builder.BookingBuilder) { b.WithAmounts("-1", "0") }, errIs: booking.ErrNegativeAmount},
			{name: "negative due NG", mutate: func(b *builder.BookingBuilder) { b.WithAmounts("100", "-1") }, errIs: booking.ErrInvalidDueAmount},
			{name: "due above amount NG", mutate: func(b *builder.BookingBuilder) { b.WithAmounts("100", "100.01") }, errIs: booking.ErrInvalidDueAmount},
			{name: "missing contact name NG", mutate: func(b *builder.BookingBuilder) { b.ContactName = "" }, errIs: booking.ErrInvalidContact},
			{name: "malformed email NG", mutate: func(b *builder.BookingBuilder) { b.ContactEmail = "asha" }, errIs: booking.ErrInvalidContact},
			{name: "short phone NG", mutate: func(b *builder.BookingBuilder) { b.ContactPhone = "123" }, errIs: booking.ErrInvalidContact},
		})
	})
}

func TestContactPerson(t *testing.T) {
	_, err := booking.NewContactPerson("", "bad", "")
	require.ErrorIs(t, err, booking.ErrInvalidContact)
	assert.ElementsMatch(t, []string{"name", "email", "phone"}, booking.MissingFields(err))
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBookingBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
				assert.Len(t, actual.Participants(), actual.ParticipantCount())
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestRecordPayment(t *testing.T) {
	b, err := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.PaymentRef = nil }).BuildDomain()
	require.NoError(t, err)
	require.Nil(t, b.PaymentRef())

	b.RecordPayment("ref-42")
	require.NotNil(t, b.PaymentRef())
	assert.Equal(t, "ref-42", *b.PaymentRef())
}
