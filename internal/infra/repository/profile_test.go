//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"experience-booking/internal/infra"
	"experience-booking/internal/infra/pgquery"
	"experience-booking/internal/infra/repository"
	repositorymock "experience-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Update Phone Tests
// =============================================================================

func TestProfileRepository_UpdatePhone(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	want := pgquery.FillProfilePhoneParams{ID: userID, Phone: "+919800000001"}

	testCases := []struct {
		name          string
		affected      int64
		queryErr      error
		expectedError bool
	}{
		{name: "success: empty phone filled", affected: 1},
		{name: "success: existing phone kept", affected: 0},
		{name: "error: database error occurs", queryErr: errors.New("database connection error"), expectedError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockProfileWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			mockQueries.EXPECT().FillProfilePhone(ctx, mockDB, want).Return(tc.affected, tc.queryErr)

			err := repository.NewProfileRepository(mockQueries, mockDB).UpdatePhone(ctx, userID, want.Phone)

			if tc.expectedError {
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
