//go:build unit

package experience_test

import (
	"testing"

	"experience-booking/internal/domain/experience"
	"experience-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ActivityBuilder)
	errIs  error
}

func TestActivity(t *testing.T) {
	t.Run("no discount uses the base price", func(t *testing.T) {
		a, err := builder.NewActivityBuilder().WithBasePrice("1000").BuildDomain()
		require.NoError(t, err)

		assert.Nil(t, a.DiscountedPrice())
		assert.True(t, a.DiscountPercentage().IsZero())
		assert.Equal(t, "1000.00", a.EffectivePrice().String())
		assert.Equal(t, "INR", a.Currency().String())
	})

	t.Run("flat discount", func(t *testing.T) {
		a, err := builder.NewActivityBuilder().WithBasePrice("500").WithFlatDiscount("100").BuildDomain()
		require.NoError(t, err)

		require.NotNil(t, a.DiscountedPrice())
		assert.Equal(t, "400.00", a.DiscountedPrice().String())
		assert.Equal(t, "20", a.DiscountPercentage().String())
		assert.Equal(t, "400.00", a.EffectivePrice().String())
	})

	t.Run("flat discount percentage is rounded to two places", func(t *testing.T) {
		a, err := builder.NewActivityBuilder().WithBasePrice("300").WithFlatDiscount("100").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "33.33", a.DiscountPercentage().String())
	})

	t.Run("flat discount on a free activity reports zero percent", func(t *testing.T) {
		a, err := builder.NewActivityBuilder().WithBasePrice("0").WithFlatDiscount("0").BuildDomain()
		require.NoError(t, err)
		assert.True(t, a.DiscountPercentage().IsZero())
		assert.Equal(t, "0.00", a.DiscountedPrice().String())
	})

	t.Run("percentage discount rounds to two places", func(t *testing.T) {
		cases := []struct {
			base    string
			percent string
			want    string
		}{
			{base: "1000", percent: "10", want: "900.00"},
			{base: "999.99", percent: "15", want: "849.99"},
			{base: "333.33", percent: "33.33", want: "222.23"},
			{base: "100", percent: "100", want: "0.00"},
			{base: "100", percent: "0", want: "100.00"},
		}
		for _, c := range cases {
			t.Run(c.base+"@"+c.percent, func(t *testing.T) {
				a, err := builder.NewActivityBuilder().WithBasePrice(c.base).WithPercentageDiscount(c.percent).BuildDomain()
				require.NoError(t, err)

				base := decimal.RequireFromString(c.base)
				d := decimal.RequireFromString(c.percent)
				expected := base.Mul(decimal.NewFromInt(1).Sub(d.Div(decimal.NewFromInt(100)))).Round(2)

				assert.Equal(t, c.want, a.DiscountedPrice().String())
				assert.True(t, expected.Equal(a.DiscountedPrice().Decimal()))
				assert.True(t, d.Equal(a.DiscountPercentage()))
			})
		}
	})

	t.Run("commission per vendor", func(t *testing.T) {
		a, err := builder.NewActivityBuilder().WithBasePrice("1000").WithB2BPrice("700").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "300.00", a.CommissionPerVendor().String())
	})

	t.Run("b2b price above base price is accepted", func(t *testing.T) {
		a, err := builder.NewActivityBuilder().WithBasePrice("500").WithB2BPrice("600").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "-100.00", a.CommissionPerVendor().String())
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "empty name NG", mutate: func(b *builder.ActivityBuilder) { b.WithName(" ") }, errIs: experience.ErrInvalidName},
			{name: "negative base NG", mutate: func(b *builder.ActivityBuilder) { b.WithBasePrice("-1") }, errIs: experience.ErrInvalidBasePrice},
			{name: "negative b2b NG", mutate: func(b *builder.ActivityBuilder) { b.WithB2BPrice("-1") }, errIs: experience.ErrInvalidB2BPrice},
			{name: "flat equal to base OK", mutate: func(b *builder.ActivityBuilder) { b.WithBasePrice("100").WithFlatDiscount("100") }},
			{name: "flat above base NG", mutate: func(b *builder.ActivityBuilder) { b.WithBasePrice("100").WithFlatDiscount("100.01") }, errIs: experience.ErrInvalidDiscountAmount},
			{name: "negative flat NG", mutate: func(b *builder.ActivityBuilder) { b.WithFlatDiscount("-5") }, errIs: experience.ErrInvalidDiscountAmount},
			{name: "percentage above 100 NG", mutate: func(b *builder.ActivityBuilder) { b.WithPercentageDiscount("100.5") }, errIs: experience.ErrInvalidDiscountPercent},
			{name: "negative percentage NG", mutate: func(b *builder.ActivityBuilder) { b.WithPercentageDiscount("-1") }, errIs: experience.ErrInvalidDiscountPercent},
			{
				name: "unknown discount type NG",
				mutate: func(b *builder.ActivityBuilder) {
					dt := experience.DiscountType("bogo")
					v := decimal.NewFromInt(1)
					b.DiscountType, b.DiscountValue = &dt, &v
				},
				errIs: experience.ErrInvalidDiscountType,
			},
		})
	})
}

func TestExperience(t *testing.T) {
	t.Run("single location", func(t *testing.T) {
		e, err := builder.NewActivityBuilder().WithLocations("Rishikesh").BuildExperience()
		require.NoError(t, err)
		assert.False(t, e.HasTwoLocations())
	})

	t.Run("two locations", func(t *testing.T) {
		e, err := builder.NewActivityBuilder().WithLocations("Rishikesh", "Shivpuri").BuildExperience()
		require.NoError(t, err)
		assert.True(t, e.HasTwoLocations())
		assert.Equal(t, []string{"Rishikesh", "Shivpuri"}, e.Locations())
	})

	t.Run("blank locations are not published", func(t *testing.T) {
		e, err := builder.NewActivityBuilder().WithLocations("Rishikesh", " ").BuildExperience()
		require.NoError(t, err)
		assert.False(t, e.HasTwoLocations())
	})

	t.Run("location count out of range", func(t *testing.T) {
		_, err := builder.NewActivityBuilder().WithLocations().BuildExperience()
		require.ErrorIs(t, err, experience.ErrInvalidLocations)

		_, err = builder.NewActivityBuilder().WithLocations("a", "b", "c").BuildExperience()
		require.ErrorIs(t, err, experience.ErrInvalidLocations)
	})

	t.Run("title required", func(t *testing.T) {
		_, err := experience.NewExperience(uuid.New(), "", []string{"x"}, "", "")
		require.ErrorIs(t, err, experience.ErrInvalidTitle)
	})
}

func TestTimeSlot(t *testing.T) {
	t.Run("valid slot", func(t *testing.T) {
		s, err := builder.NewActivityBuilder().WithCapacity(10).BuildSlot()
		require.NoError(t, err)
		assert.Equal(t, 10, s.Capacity())
		assert.Equal(t, "09:00 - 12:00", s.Label())
	})

	t.Run("capacity must be positive", func(t *testing.T) {
		_, err := builder.NewActivityBuilder().WithCapacity(0).BuildSlot()
		require.ErrorIs(t, err, experience.ErrInvalidCapacity)
	})

	t.Run("end must follow start", func(t *testing.T) {
		b := builder.NewActivityBuilder()
		b.SlotEnd = b.SlotStart
		_, err := b.BuildSlot()
		require.ErrorIs(t, err, experience.ErrInvalidSlotWindow)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewActivityBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
