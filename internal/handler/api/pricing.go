package api

import (
	"net/http"

	"experience-booking/internal/domain/user"
	reqdto "experience-booking/internal/handler/dto/request"
	resdto "experience-booking/internal/handler/dto/response"
	"experience-booking/internal/handler/httperr"
	"experience-booking/internal/handler/middleware"
	"experience-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	coupons queries.CouponValidator
	quotes  queries.QuoteQueries
}

func NewPricingHandler(coupons queries.CouponValidator, quotes queries.QuoteQueries) *PricingHandler {
	return &PricingHandler{coupons: coupons, quotes: quotes}
}

// @Summary Validate coupon
// @Description Check a coupon code against an activity and price the discount per person
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body reqdto.ValidateCouponRequest true "Coupon validation request"
// @Success 200 {object} resdto.CouponValidationResponse
// @Failure 400 {object} map[string]string
// @Router /coupons/validate [post]
func (h *PricingHandler) ValidateCoupon(c *gin.Context) {
	var req reqdto.ValidateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	price, err := req.ParsedPrice()
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	result, err := h.coupons.Validate(c.Request.Context(), req.Code, req.ActivityID, price)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponValidation(result))
}

// @Summary Quote price
// @Description Resolve the total, the upfront and due split and the commission for a selection. Agent pricing applies only to agent tokens.
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /quotes [post]
func (h *PricingHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		role = user.RoleCustomer
	}
	query, err := req.ToQuery(role)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	quote, err := h.quotes.Quote(c.Request.Context(), query)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuote(quote))
}
