//go:build unit

package user_test

import (
	"testing"

	"experience-booking/internal/domain/user"
	"experience-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(user.Profile{}, user.Email{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.ProfileBuilder)
	errIs  error
}

func TestProfile(t *testing.T) {
	t.Run("basic success", func(t *testing.T) {
		b := builder.NewProfileBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		email, _ := user.NewEmail("test@example.com")
		expected, err := user.NewProfile(b.ID, email, "Test Customer", nil, user.RoleCustomer)
		require.NoError(t, err)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("Profile mismatch (-want +got):\n%s", diff)
		}
		assert.False(t, actual.HasPhone())
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "valid email OK", mutate: func(b *builder.ProfileBuilder) { b.WithEmail("valid@example.com") }},
			{name: "empty email NG", mutate: func(b *builder.ProfileBuilder) { b.WithEmail("") }, errIs: user.ErrInvalidEmail},
			{name: "malformed email NG", mutate: func(b *builder.ProfileBuilder) { b.WithEmail("invalid-email") }, errIs: user.ErrInvalidEmail},
			{name: "missing at sign NG", mutate: func(b *builder.ProfileBuilder) { b.WithEmail("invalidemail.com") }, errIs: user.ErrInvalidEmail},
		})
	})

	t.Run("role validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "customer OK", mutate: func(b *builder.ProfileBuilder) { b.WithRole("customer") }},
			{name: "agent OK", mutate: func(b *builder.ProfileBuilder) { b.WithRole("agent") }},
			{name: "admin OK", mutate: func(b *builder.ProfileBuilder) { b.WithRole("admin") }},
			{name: "unknown role NG", mutate: func(b *builder.ProfileBuilder) { b.WithRole("operator") }, errIs: user.ErrInvalidRole},
			{name: "empty role NG", mutate: func(b *builder.ProfileBuilder) { b.WithRole("") }, errIs: user.ErrInvalidRole},
		})
	})

	t.Run("only agents book as agents", func(t *testing.T) {
		assert.True(t, user.RoleAgent.IsAgent())
		assert.False(t, user.RoleCustomer.IsAgent())
		assert.False(t, user.RoleAdmin.IsAgent())
	})

	t.Run("email is lowercased", func(t *testing.T) {
		e, err := user.NewEmail(" Asha@Example.COM ")
		require.NoError(t, err)
		assert.Equal(t, "asha@example.com", e.Value())
	})
}

func TestBackfillPhone(t *testing.T) {
	t.Run("fills a missing phone", func(t *testing.T) {
		p, err := builder.NewProfileBuilder().WithoutPhone().BuildDomain()
		require.NoError(t, err)

		assert.True(t, p.BackfillPhone(" +919800000001 "))
		require.NotNil(t, p.Phone())
		assert.Equal(t, "+919800000001", *p.Phone())
	})

	t.Run("keeps an existing phone", func(t *testing.T) {
		p, err := builder.NewProfileBuilder().WithPhone("+911111111111").BuildDomain()
		require.NoError(t, err)

		assert.False(t, p.BackfillPhone("+919800000001"))
		assert.Equal(t, "+911111111111", *p.Phone())
	})

	t.Run("blank stored phone counts as missing", func(t *testing.T) {
		p, err := builder.NewProfileBuilder().WithPhone("  ").BuildDomain()
		require.NoError(t, err)
		assert.True(t, p.BackfillPhone("+919800000001"))
	})

	t.Run("blank input is ignored", func(t *testing.T) {
		p, err := builder.NewProfileBuilder().WithoutPhone().BuildDomain()
		require.NoError(t, err)
		assert.False(t, p.BackfillPhone(" "))
		assert.Nil(t, p.Phone())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewProfileBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
