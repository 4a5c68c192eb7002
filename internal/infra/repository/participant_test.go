//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"experience-booking/internal/infra"
	"experience-booking/internal/infra/pgquery"
	"experience-booking/internal/infra/repository"
	"experience-booking/tests/common/builder"
	repositorymock "experience-booking/tests/mock/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Participants Tests
// =============================================================================

func TestParticipantRepository_CreateMany(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockParticipantWriteQueries, pgquery.DBTX)
		expectedError bool
	}{
		{
			name: "success: every seat copied",
			setupMock: func(mock *repositorymock.MockParticipantWriteQueries, tx pgquery.DBTX) {
				mock.EXPECT().InsertParticipants(ctx, tx, gomock.Len(3)).Return(int64(3), nil)
			},
		},
		{
			name: "error: copy fails",
			setupMock: func(mock *repositorymock.MockParticipantWriteQueries, tx pgquery.DBTX) {
				mock.EXPECT().InsertParticipants(ctx, tx, gomock.Any()).Return(int64(0), errors.New("copy failed"))
			},
			expectedError: true,
		},
		{
			name: "error: short copy",
			setupMock: func(mock *repositorymock.MockParticipantWriteQueries, tx pgquery.DBTX) {
				mock.EXPECT().InsertParticipants(ctx, tx, gomock.Any()).Return(int64(2), nil)
			},
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockParticipantWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			tc.setupMock(mockQueries, mockDB)

			b, err := builder.NewBookingBuilder().WithParticipants(3).BuildDomain()
			require.NoError(t, err)

			err = repository.NewParticipantRepository(mockQueries, mockDB).CreateMany(ctx, b.Participants())

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				assert.NoError(t, err)
			}
		})
	}

	t.Run("success: nothing to insert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockParticipantWriteQueries(ctrl)

		err := repository.NewParticipantRepository(mockQueries, &mockDBTX{}).CreateMany(ctx, nil)
		assert.NoError(t, err)
	})
}
