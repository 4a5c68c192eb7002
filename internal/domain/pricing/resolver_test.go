//go:build unit

package pricing_test

import (
	"testing"

	"experience-booking/internal/domain/coupon"
	"experience-booking/internal/domain/money"
	"experience-booking/internal/domain/pricing"
	"experience-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.Comparer(func(a, b money.Money) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }),
}

func moneyPtr(s string) *money.Money {
	m := money.MustParse(s)
	return &m
}

func TestResolve(t *testing.T) {
	r := pricing.NewDefaultResolver()

	t.Run("coupon final amount is a per-person price", func(t *testing.T) {
		activity, err := builder.NewActivityBuilder().WithBasePrice("1000").WithoutDiscount().BuildDomain()
		require.NoError(t, err)
		cp, err := builder.NewCouponBuilder().WithCode("SAVE10").WithPercentage("10").BuildDomain()
		require.NoError(t, err)

		calc := cp.Calculate(activity.EffectivePrice())
		got, err := r.Resolve(activity, 2, pricing.Options{Coupon: &calc})
		require.NoError(t, err)

		assert.Equal(t, "900.00", got.Discount.FinalAmount.String())
		assert.Equal(t, "900.00", got.PerPerson.String())
		assert.Equal(t, "1800.00", got.Total.String())
		assert.Equal(t, pricing.SourceCoupon, got.Source)
	})

	t.Run("flat activity discount with partial payment", func(t *testing.T) {
		activity, err := builder.NewActivityBuilder().WithBasePrice("500").WithFlatDiscount("100").BuildDomain()
		require.NoError(t, err)

		got, err := r.Resolve(activity, 3, pricing.Options{})
		require.NoError(t, err)
		assert.Equal(t, "400.00", got.PerPerson.String())
		assert.Equal(t, "1200.00", got.Total.String())
		assert.Equal(t, pricing.SourceActivity, got.Source)

		split, err := r.Split(got.Total, pricing.CustomerPolicy(true))
		require.NoError(t, err)
		assert.Equal(t, "120.00", split.Upfront.String())
		assert.Equal(t, "1080.00", split.Due.String())
	})

	t.Run("agent selling price with advance", func(t *testing.T) {
		activity, err := builder.NewActivityBuilder().BuildDomain()
		require.NoError(t, err)

		agent := &pricing.AgentPricing{SellingPrice: money.MustParse("800"), AdvancePayment: moneyPtr("500")}
		got, err := r.Resolve(activity, 2, pricing.Options{Agent: agent})
		require.NoError(t, err)
		assert.Equal(t, "1600.00", got.Total.String())
		assert.Equal(t, pricing.SourceAgent, got.Source)

		split, err := r.Split(got.Total, pricing.AgentPolicy(agent.AdvancePayment))
		require.NoError(t, err)
		assert.True(t, split.Upfront.IsZero())
		assert.Equal(t, "1100.00", split.Due.String())
	})

	t.Run("agent price wins over a coupon", func(t *testing.T) {
		activity, err := builder.NewActivityBuilder().WithBasePrice("1000").BuildDomain()
		require.NoError(t, err)
		calc := coupon.DiscountCalculation{FinalAmount: money.MustParse("1")}

		got, err := r.Resolve(activity, 1, pricing.Options{
			Coupon: &calc,
			Agent:  &pricing.AgentPricing{SellingPrice: money.MustParse("750")},
		})
		require.NoError(t, err)
		assert.Equal(t, "750.00", got.Total.String())
		assert.Nil(t, got.Discount)
	})

	t.Run("zero agent price falls through to the public price", func(t *testing.T) {
		activity, err := builder.NewActivityBuilder().WithBasePrice("1000").WithPercentageDiscount("20").BuildDomain()
		require.NoError(t, err)

		got, err := r.Resolve(activity, 1, pricing.Options{Agent: &pricing.AgentPricing{}})
		require.NoError(t, err)
		assert.Equal(t, "800.00", got.Total.String())
		assert.Equal(t, pricing.SourceActivity, got.Source)
	})

	t.Run("negative agent price is rejected", func(t *testing.T) {
		activity, err := builder.NewActivityBuilder().BuildDomain()
		require.NoError(t, err)

		_, err = r.Resolve(activity, 1, pricing.Options{Agent: &pricing.AgentPricing{SellingPrice: money.MustParse("-1")}})
		require.ErrorIs(t, err, pricing.ErrInvalidSellingPrice)
	})

	t.Run("participant bounds", func(t *testing.T) {
		activity, err := builder.NewActivityBuilder().BuildDomain()
		require.NoError(t, err)

		for _, n := range []int{0, -1, 51} {
			_, err := r.Resolve(activity, n, pricing.Options{})
			require.ErrorIs(t, err, pricing.ErrInvalidParticipantCount, "n=%d", n)
		}
		for _, n := range []int{1, 50} {
			_, err := r.Resolve(activity, n, pricing.Options{})
			require.NoError(t, err, "n=%d", n)
		}
	})

	t.Run("nil activity is rejected", func(t *testing.T) {
		_, err := r.Resolve(nil, 1, pricing.Options{})
		require.ErrorIs(t, err, pricing.ErrMissingActivity)
	})

	t.Run("identical inputs resolve identically", func(t *testing.T) {
		activity, err := builder.NewActivityBuilder().WithBasePrice("333.33").WithPercentageDiscount("12.5").BuildDomain()
		require.NoError(t, err)
		cp, err := builder.NewCouponBuilder().WithPercentage("7").BuildDomain()
		require.NoError(t, err)

		calc1 := cp.Calculate(activity.EffectivePrice())
		first, err := r.Resolve(activity, 7, pricing.Options{Coupon: &calc1})
		require.NoError(t, err)
		calc2 := cp.Calculate(activity.EffectivePrice())
		second, err := r.Resolve(activity, 7, pricing.Options{Coupon: &calc2})
		require.NoError(t, err)

		if diff := cmp.Diff(first, second, cmpOpts...); diff != "" {
			t.Errorf("ResolvedPrice mismatch (-first +second):\n%s", diff)
		}
	})
}
