//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"experience-booking/internal/domain/user"
	"experience-booking/internal/handler/middleware"
	"experience-booking/internal/pkg/errs"
	"experience-booking/internal/usecase"
	usecasemock "experience-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type observed struct {
	userID  uuid.UUID
	hasUser bool
	role    user.Role
}

func setupAuthRouter(t *testing.T, v usecase.TokenValidator, optional bool) (*gin.Engine, *observed) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	m := middleware.NewAuthMiddleware(v)
	mw := m.RequireAuth()
	if optional {
		mw = m.OptionalAuth()
	}

	seen := &observed{}
	r := gin.New()
	r.GET("/probe", mw, func(c *gin.Context) {
		seen.userID, seen.hasUser = middleware.GetUserID(c)
		seen.role, _ = middleware.GetUserRole(c)
		c.Status(http.StatusNoContent)
	})
	return r, seen
}

func probe(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuth(t *testing.T) {
	agentID := uuid.New()

	testCases := []struct {
		name       string
		header     string
		setupMock  func(m *usecasemock.MockTokenValidator)
		wantStatus int
		wantRole   user.Role
	}{
		{
			name:   "success: valid token sets identity",
			header: "Bearer good-token",
			setupMock: func(m *usecasemock.MockTokenValidator) {
				m.EXPECT().ValidateToken("good-token").Return(usecase.Identity{UserID: agentID, Role: user.RoleAgent}, nil)
			},
			wantStatus: http.StatusNoContent,
			wantRole:   user.RoleAgent,
		},
		{
			name:       "error: missing header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "error: non-bearer scheme",
			header:     "Basic Zm9vOmJhcg==",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "error: rejected token",
			header: "Bearer stale-token",
			setupMock: func(m *usecasemock.MockTokenValidator) {
				m.EXPECT().ValidateToken("stale-token").Return(usecase.Identity{}, errs.New("token is expired"))
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			v := usecasemock.NewMockTokenValidator(ctrl)
			if tc.setupMock != nil {
				tc.setupMock(v)
			}
			r, seen := setupAuthRouter(t, v, false)

			rec := probe(r, tc.header)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus == http.StatusNoContent {
				assert.True(t, seen.hasUser)
				assert.Equal(t, agentID, seen.userID)
				assert.Equal(t, tc.wantRole, seen.role)
			} else {
				assert.False(t, seen.hasUser)
			}
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	t.Run("success: anonymous request passes without identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r, seen := setupAuthRouter(t, usecasemock.NewMockTokenValidator(ctrl), true)

		rec := probe(r, "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.False(t, seen.hasUser)
	})

	t.Run("success: invalid token is treated as anonymous", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		v := usecasemock.NewMockTokenValidator(ctrl)
		v.EXPECT().ValidateToken("junk").Return(usecase.Identity{}, errs.New("malformed"))
		r, seen := setupAuthRouter(t, v, true)

		rec := probe(r, "Bearer junk")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.False(t, seen.hasUser)
	})

	t.Run("success: valid token sets identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		v := usecasemock.NewMockTokenValidator(ctrl)
		id := uuid.New()
		v.EXPECT().ValidateToken("good").Return(usecase.Identity{UserID: id, Role: user.RoleCustomer}, nil)
		r, seen := setupAuthRouter(t, v, true)

		rec := probe(r, "Bearer good")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.True(t, seen.hasUser)
		assert.Equal(t, id, seen.userID)
		assert.Equal(t, user.RoleCustomer, seen.role)
	})
}
