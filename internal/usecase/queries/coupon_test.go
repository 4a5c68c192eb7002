//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"experience-booking/internal/domain/coupon"
	"experience-booking/internal/domain/money"
	"experience-booking/internal/infra"
	"experience-booking/internal/pkg/clock"
	"experience-booking/internal/pkg/errs"
	"experience-booking/internal/usecase/queries"
	"experience-booking/tests/common/builder"
	sharedmock "experience-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCouponValidator(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)
	activityID := uuid.New()
	yesterday := now.Add(-24 * time.Hour)
	tomorrow := now.Add(24 * time.Hour)
	otherActivity := uuid.New()

	testCases := []struct {
		name      string
		code      string
		setupMock func(*sharedmock.MockCommandReads)
		cause     error
		wantFinal string
	}{
		{
			name: "success: code is matched case-insensitively",
			code: " save10 ",
			setupMock: func(m *sharedmock.MockCommandReads) {
				m.EXPECT().CouponByCode(gomock.Any(), "SAVE10").Return(builder.NewCouponBuilder().BuildSnapshot(), nil)
			},
			wantFinal: "900.00",
		},
		{
			name: "success: scoped coupon on its own activity",
			code: "RAFT50",
			setupMock: func(m *sharedmock.MockCommandReads) {
				snap := builder.NewCouponBuilder().WithCode("RAFT50").WithFlat("50").
					With(func(b *builder.CouponBuilder) { b.ActivityID = &activityID }).BuildSnapshot()
				m.EXPECT().CouponByCode(gomock.Any(), "RAFT50").Return(snap, nil)
			},
			wantFinal: "950.00",
		},
		{
			name: "error: unknown code",
			code: "NOPE99",
			setupMock: func(m *sharedmock.MockCommandReads) {
				m.EXPECT().CouponByCode(gomock.Any(), "NOPE99").Return(nil, infra.NotFound("coupon not found"))
			},
		},
		{
			name:  "error: malformed code never reaches storage",
			code:  "!!",
			cause: coupon.ErrInvalidCouponCode,
		},
		{
			name: "error: inactive",
			code: "SAVE10",
			setupMock: func(m *sharedmock.MockCommandReads) {
				snap := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) { b.IsActive = false }).BuildSnapshot()
				m.EXPECT().CouponByCode(gomock.Any(), "SAVE10").Return(snap, nil)
			},
			cause: coupon.ErrCouponInactive,
		},
		{
			name: "error: expired",
			code: "SAVE10",
			setupMock: func(m *sharedmock.MockCommandReads) {
				snap := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) { b.ValidTo = &yesterday }).BuildSnapshot()
				m.EXPECT().CouponByCode(gomock.Any(), "SAVE10").Return(snap, nil)
			},
			cause: coupon.ErrCouponExpired,
		},
		{
			name: "error: not yet valid",
			code: "SAVE10",
			setupMock: func(m *sharedmock.MockCommandReads) {
				snap := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) { b.ValidFrom = &tomorrow }).BuildSnapshot()
				m.EXPECT().CouponByCode(gomock.Any(), "SAVE10").Return(snap, nil)
			},
			cause: coupon.ErrCouponNotYetValid,
		},
		{
			name: "error: scoped to another activity",
			code: "SAVE10",
			setupMock: func(m *sharedmock.MockCommandReads) {
				snap := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) { b.ActivityID = &otherActivity }).BuildSnapshot()
				m.EXPECT().CouponByCode(gomock.Any(), "SAVE10").Return(snap, nil)
			},
			cause: coupon.ErrCouponNotApplicable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uow := sharedmock.NewMockUnitOfWork(ctrl)
			reads := sharedmock.NewMockCommandReads(ctrl)
			uow.EXPECT().CommandReads().Return(reads).AnyTimes()
			if tc.setupMock != nil {
				tc.setupMock(reads)
			}

			v := queries.NewCouponValidator(uow, clock.NewMockClock(now))
			got, err := v.Validate(ctx, tc.code, activityID, money.MustParse("1000"))

			if tc.wantFinal == "" {
				require.Nil(t, got)
				assert.True(t, errs.Is(err, queries.ErrInvalidCoupon), "got %v", err)
				assert.Equal(t, "Invalid coupon code", queries.ErrInvalidCoupon.Error())
				if tc.cause != nil {
					assert.True(t, errs.Is(err, tc.cause), "cause %v not in chain of %v", tc.cause, err)
				}
				return
			}

			require.NoError(t, err)
			assert.True(t, got.Valid)
			assert.Equal(t, tc.wantFinal, got.Calculation.FinalAmount.String())
			assert.Equal(t, "1000.00", got.Calculation.OriginalAmount.String())
		})
	}

	t.Run("error: storage failure is not reported as an invalid coupon", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow := sharedmock.NewMockUnitOfWork(ctrl)
		reads := sharedmock.NewMockCommandReads(ctrl)
		uow.EXPECT().CommandReads().Return(reads).AnyTimes()
		reads.EXPECT().CouponByCode(gomock.Any(), gomock.Any()).Return(nil, infra.WrapRepoErr("failed to find coupon by code", errors.New("timeout")))

		_, err := queries.NewCouponValidator(uow, clock.NewMockClock(now)).Validate(ctx, "SAVE10", activityID, money.MustParse("1000"))
		require.Error(t, err)
		assert.False(t, errs.Is(err, queries.ErrInvalidCoupon))
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
