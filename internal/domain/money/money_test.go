//go:build unit

package money_test

import (
	"encoding/json"
	"testing"

	"experience-booking/internal/domain/money"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney(t *testing.T) {
	t.Run("rounds at construction", func(t *testing.T) {
		cases := []struct {
			in   string
			want string
		}{
			{in: "10", want: "10.00"},
			{in: "10.005", want: "10.01"},
			{in: "10.004", want: "10.00"},
			{in: "-10.005", want: "-10.01"},
			{in: "0.125", want: "0.13"},
		}
		for _, c := range cases {
			t.Run(c.in, func(t *testing.T) {
				m, err := money.Parse(c.in)
				require.NoError(t, err)
				assert.Equal(t, c.want, m.String())
			})
		}
	})

	t.Run("invalid input is rejected", func(t *testing.T) {
		_, err := money.Parse("abc")
		require.ErrorIs(t, err, money.ErrInvalidAmount)
	})

	t.Run("rounds at every combination", func(t *testing.T) {
		third := money.FromInt(100).MulRate(decimal.NewFromInt(1).Div(decimal.NewFromInt(3)))
		assert.Equal(t, "33.33", third.String())
		// uses the rounded intermediate, not 100/3*3
		assert.Equal(t, "99.99", third.MulInt(3).String())
	})

	t.Run("arithmetic", func(t *testing.T) {
		a := money.MustParse("1000")
		b := money.MustParse("120.50")
		assert.Equal(t, "1120.50", a.Add(b).String())
		assert.Equal(t, "879.50", a.Sub(b).String())
		assert.Equal(t, "3000.00", a.MulInt(3).String())
		assert.True(t, money.Max(a, b).Equal(a))
		assert.True(t, money.Min(a, b).Equal(b))
		assert.True(t, money.Zero().IsZero())
		assert.True(t, b.Sub(a).IsNegative())
	})

	t.Run("percent of", func(t *testing.T) {
		assert.True(t, money.FromInt(100).PercentOf(money.FromInt(500)).Equal(decimal.NewFromInt(20)))
		assert.True(t, money.FromInt(1).PercentOf(money.FromInt(3)).Equal(decimal.RequireFromString("33.33")))
		assert.True(t, money.FromInt(1).PercentOf(money.Zero()).IsZero())
	})

	t.Run("json uses two decimals", func(t *testing.T) {
		b, err := json.Marshal(struct {
			Total money.Money `json:"total"`
		}{Total: money.FromInt(1800)})
		require.NoError(t, err)
		assert.JSONEq(t, `{"total":1800.00}`, string(b))

		var out struct {
			Total money.Money `json:"total"`
		}
		require.NoError(t, json.Unmarshal([]byte(`{"total":120.456}`), &out))
		assert.Equal(t, "120.46", out.Total.String())
	})

	t.Run("currency defaults", func(t *testing.T) {
		assert.Equal(t, money.DefaultCurrency, money.Currency("").OrDefault())
		assert.Equal(t, money.Currency("USD"), money.Currency("USD").OrDefault())
	})
}
