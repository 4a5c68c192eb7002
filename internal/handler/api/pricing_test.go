//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"experience-booking/internal/domain/coupon"
	"experience-booking/internal/domain/money"
	"experience-booking/internal/domain/pricing"
	"experience-booking/internal/domain/user"
	"experience-booking/internal/handler/api"
	resdto "experience-booking/internal/handler/dto/response"
	"experience-booking/internal/pkg/errs"
	"experience-booking/internal/usecase/queries"
	"experience-booking/tests/common/builder"
	"experience-booking/tests/common/httptest"
	"experience-booking/tests/common/testutil"
	queriesmock "experience-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PricingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockCoupons *queriesmock.MockCouponValidator
	mockQuotes  *queriesmock.MockQuoteQueries
	userID      uuid.UUID
	role        user.Role
}

func (s *PricingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCoupons = queriesmock.NewMockCouponValidator(s.mockCtrl)
	s.mockQuotes = queriesmock.NewMockQuoteQueries(s.mockCtrl)
	h := api.NewPricingHandler(s.mockCoupons, s.mockQuotes)
	s.userID = uuid.New()
	s.role = user.RoleCustomer

	// anonymous quotes are allowed, so auth only applies when a token is sent
	optionalAuth := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.userID)
			c.Set("user_role", s.role)
		}
		c.Next()
	}

	s.router.POST("/coupons/validate", h.ValidateCoupon)
	s.router.POST("/quotes", optionalAuth, h.Quote)
}

func (s *PricingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPricingHandlerSuite(t *testing.T) {
	suite.Run(t, new(PricingHandlerTestSuite))
}

// ================================================================================
// TestValidateCoupon
// ================================================================================

func (s *PricingHandlerTestSuite) TestValidateCoupon() {
	url := "/coupons/validate"
	activityID := uuid.New()
	body := map[string]any{"code": "SAVE10", "activityId": activityID.String(), "price": "1000"}

	s.Run("success: returns the per-person discount", func() {
		calc := coupon.DiscountCalculation{
			OriginalAmount:    money.MustParse("1000"),
			DiscountAmount:    money.MustParse("100"),
			FinalAmount:       money.MustParse("900"),
			SavingsPercentage: decimal.NewFromInt(10),
		}
		s.mockCoupons.EXPECT().Validate(gomock.Any(), "SAVE10", activityID, money.MustParse("1000")).
			Return(&queries.CouponValidation{Valid: true, Calculation: &calc, Coupon: &queries.CouponView{Code: "SAVE10", Type: "percentage", DiscountValue: "10"}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, "POST", url, body, "")

		var resp resdto.CouponValidationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.True(resp.Valid)
		s.Require().NotNil(resp.DiscountCalculation)
		s.Equal("900.00", resp.DiscountCalculation.FinalAmount)
		s.Equal("10.00", resp.DiscountCalculation.SavingsPercentage)
		s.Require().NotNil(resp.Coupon)
		s.Equal("SAVE10", resp.Coupon.Code)
	})

	s.Run("error: every rejection reads the same", func() {
		s.mockCoupons.EXPECT().Validate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(coupon.ErrCouponExpired, queries.ErrInvalidCoupon))

		rec := httptest.PerformRequest(s.T(), s.router, "POST", url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid coupon code")
		s.NotContains(rec.Body.String(), "expired")
	})

	invalid := []struct {
		name   string
		mutate func(m map[string]any)
	}{
		{name: "error: missing code", mutate: testutil.Field("code", nil)},
		{name: "error: missing price", mutate: testutil.Field("price", nil)},
		{name: "error: non-numeric price", mutate: testutil.Field("price", "ten")},
		{name: "error: negative price", mutate: testutil.Field("price", "-5")},
	}
	for _, tc := range invalid {
		s.Run(tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, "POST", url, testutil.DtoMap(s.T(), body, tc.mutate), "")
			s.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

// ================================================================================
// TestQuote
// ================================================================================

func (s *PricingHandlerTestSuite) quoteFixture() *queries.Quote {
	ab := builder.NewActivityBuilder()
	exp, err := ab.BuildExperience()
	s.Require().NoError(err)
	activity, err := ab.BuildDomain()
	s.Require().NoError(err)
	total := money.MustParse("2000")
	return &queries.Quote{
		Experience: exp,
		Activity:   activity,
		Price:      pricing.ResolvedPrice{PerPerson: money.MustParse("1000"), Total: total, Source: pricing.SourceActivity},
		Policy:     pricing.CustomerPolicy(true),
		Split:      pricing.Split{Upfront: money.MustParse("200"), Due: money.MustParse("1800")},
		Commission: pricing.ComputeCommission(pricing.CommissionInput{
			BasePrice:        activity.BasePrice(),
			B2BPrice:         activity.B2BPrice(),
			BookingAmount:    total,
			ParticipantCount: 2,
			Upfront:          money.MustParse("200"),
		}),
	}
}

func (s *PricingHandlerTestSuite) TestQuote() {
	url := "/quotes"
	activityID := uuid.New()
	body := map[string]any{
		"activityId":       activityID.String(),
		"participantCount": 2,
		"partialPayment":   true,
		"agent":            map[string]any{"sellingPrice": "1500"},
	}

	s.Run("success: anonymous caller gets customer pricing", func() {
		s.mockQuotes.EXPECT().Quote(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req queries.QuoteRequest) (*queries.Quote, error) {
				s.Equal(activityID, req.ActivityID)
				s.True(req.PartialPayment)
				s.Nil(req.Agent)
				return s.quoteFixture(), nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, "POST", url, body, "")

		var resp resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("2000.00", resp.Total)
		s.Equal("200.00", resp.UpfrontAmount)
		s.Equal("1800.00", resp.DueAmount)
		s.Equal(string(pricing.PolicyPartial), resp.PaymentPolicy)
		s.Require().NotNil(resp.Commission)
		s.Equal("300.00", resp.Commission.PerVendor)
	})

	s.Run("success: agent token switches to agent pricing", func() {
		s.role = user.RoleAgent
		defer func() { s.role = user.RoleCustomer }()

		s.mockQuotes.EXPECT().Quote(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req queries.QuoteRequest) (*queries.Quote, error) {
				s.Require().NotNil(req.Agent)
				s.Equal("1500.00", req.Agent.SellingPrice.String())
				s.Nil(req.Agent.AdvancePayment)
				return s.quoteFixture(), nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, "POST", url, body, "agent-token")
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	})

	s.Run("error: validation failure from pricing", func() {
		s.mockQuotes.EXPECT().Quote(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(pricing.ErrAdvanceExceedsTotal, errs.ErrValidation))

		rec := httptest.PerformRequest(s.T(), s.router, "POST", url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
	})

	s.Run("error: unknown activity", func() {
		s.mockQuotes.EXPECT().Quote(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("no rows"), queries.ErrActivityNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, "POST", url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Activity not found")
	})

	s.Run("error: participantCount out of range never reaches pricing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, "POST", url, testutil.DtoMap(s.T(), body, testutil.Field("participantCount", 60)), "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
