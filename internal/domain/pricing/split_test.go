//go:build unit

package pricing_test

import (
	"testing"

	"experience-booking/internal/domain/money"
	"experience-booking/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	r := pricing.NewDefaultResolver()

	cases := []struct {
		name        string
		total       string
		policy      pricing.Policy
		wantUpfront string
		wantDue     string
		errIs       error
	}{
		{name: "full payment", total: "1200", policy: pricing.CustomerPolicy(false), wantUpfront: "1200.00", wantDue: "0.00"},
		{name: "partial payment", total: "1200", policy: pricing.CustomerPolicy(true), wantUpfront: "120.00", wantDue: "1080.00"},
		{name: "partial payment rounds upfront", total: "999.95", policy: pricing.CustomerPolicy(true), wantUpfront: "100.00", wantDue: "899.95"},
		{name: "partial payment of zero", total: "0", policy: pricing.CustomerPolicy(true), wantUpfront: "0.00", wantDue: "0.00"},
		{name: "agent without advance", total: "1600", policy: pricing.AgentPolicy(nil), wantUpfront: "0.00", wantDue: "0.00"},
		{name: "agent with advance", total: "1600", policy: pricing.AgentPolicy(moneyPtr("500")), wantUpfront: "0.00", wantDue: "1100.00"},
		{name: "agent advance equal to total", total: "1600", policy: pricing.AgentPolicy(moneyPtr("1600")), wantUpfront: "0.00", wantDue: "0.00"},
		{name: "agent advance above total", total: "1600", policy: pricing.AgentPolicy(moneyPtr("1600.01")), errIs: pricing.ErrAdvanceExceedsTotal},
		{name: "negative advance", total: "1600", policy: pricing.AgentPolicy(moneyPtr("-1")), errIs: pricing.ErrNegativeAdvance},
		{name: "negative total", total: "-1", policy: pricing.CustomerPolicy(false), errIs: pricing.ErrNegativeTotal},
		{name: "unknown policy", total: "1", policy: pricing.Policy{Kind: "barter"}, errIs: pricing.ErrUnknownPolicy},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := r.Split(money.MustParse(c.total), c.policy)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.wantUpfront, got.Upfront.String())
			assert.Equal(t, c.wantDue, got.Due.String())
		})
	}

	t.Run("partial upfront plus due reconciles to total", func(t *testing.T) {
		for _, total := range []string{"0.01", "0.05", "1", "10.55", "333.33", "1234.56", "99999.99"} {
			got, err := r.Split(money.MustParse(total), pricing.CustomerPolicy(true))
			require.NoError(t, err)
			assert.True(t, got.Upfront.Add(got.Due).Equal(money.MustParse(total)), "total=%s", total)
		}
	})

	t.Run("agent policies are flagged", func(t *testing.T) {
		assert.True(t, pricing.AgentPolicy(nil).IsAgent())
		assert.True(t, pricing.AgentPolicy(moneyPtr("1")).IsAgent())
		assert.False(t, pricing.CustomerPolicy(true).IsAgent())
	})
}

func TestComputeCommission(t *testing.T) {
	got := pricing.ComputeCommission(pricing.CommissionInput{
		BasePrice:        money.MustParse("1000"),
		B2BPrice:         money.MustParse("700"),
		BookingAmount:    money.MustParse("1800"),
		ParticipantCount: 2,
		Upfront:          money.MustParse("180"),
	})

	assert.Equal(t, "300.00", got.PerVendor.String())
	assert.Equal(t, "400.00", got.Net.String())
	assert.Equal(t, "220.00", got.VendorOwesPlatform.String())

	t.Run("recomputing yields the same figures", func(t *testing.T) {
		again := pricing.ComputeCommission(pricing.CommissionInput{
			BasePrice:        money.MustParse("1000"),
			B2BPrice:         money.MustParse("700"),
			BookingAmount:    money.MustParse("1800"),
			ParticipantCount: 2,
			Upfront:          money.MustParse("180"),
		})
		assert.True(t, again.VendorOwesPlatform.Equal(got.VendorOwesPlatform))
	})
}
