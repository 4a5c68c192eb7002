package response

import (
	"time"

	"experience-booking/internal/domain/coupon"
	"experience-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type DiscountResponse struct {
	OriginalAmount    string `json:"originalAmount"`
	DiscountAmount    string `json:"discountAmount"`
	FinalAmount       string `json:"finalAmount"`
	SavingsPercentage string `json:"savingsPercentage"`
}

type CouponResponse struct {
	ID            uuid.UUID  `json:"id"`
	Code          string     `json:"code"`
	Type          string     `json:"type"`
	ActivityID    *uuid.UUID `json:"activityId,omitempty"`
	ValidFrom     *time.Time `json:"validFrom,omitempty"`
	ValidTo       *time.Time `json:"validTo,omitempty"`
	DiscountValue string     `json:"discountValue"`
}

type CouponValidationResponse struct {
	Valid               bool              `json:"valid"`
	DiscountCalculation *DiscountResponse `json:"discountCalculation,omitempty"`
	Coupon              *CouponResponse   `json:"coupon,omitempty"`
}

type QuoteResponse struct {
	ExperienceID  uuid.UUID           `json:"experienceId"`
	ActivityID    uuid.UUID           `json:"activityId"`
	ActivityName  string              `json:"activityName"`
	Currency      string              `json:"currency"`
	PerPerson     string              `json:"perPersonPrice"`
	Total         string              `json:"totalAmount"`
	PriceSource   string              `json:"priceSource"`
	Discount      *DiscountResponse   `json:"discountCalculation,omitempty"`
	Coupon        *CouponResponse     `json:"coupon,omitempty"`
	PaymentPolicy string              `json:"paymentPolicy"`
	UpfrontAmount string              `json:"upfrontAmount"`
	DueAmount     string              `json:"dueAmount"`
	Commission    *CommissionResponse `json:"commission"`
}

func FromCouponValidation(v *queries.CouponValidation) *CouponValidationResponse {
	return &CouponValidationResponse{
		Valid:               v.Valid,
		DiscountCalculation: fromDiscount(v.Calculation),
		Coupon:              fromCouponView(v.Coupon),
	}
}

func FromQuote(q *queries.Quote) *QuoteResponse {
	return &QuoteResponse{
		ExperienceID:  q.Experience.ID(),
		ActivityID:    q.Activity.ID(),
		ActivityName:  q.Activity.Name(),
		Currency:      q.Activity.Currency().String(),
		PerPerson:     q.Price.PerPerson.String(),
		Total:         q.Price.Total.String(),
		PriceSource:   string(q.Price.Source),
		Discount:      fromDiscount(q.Price.Discount),
		Coupon:        fromCouponView(q.Coupon),
		PaymentPolicy: string(q.Policy.Kind),
		UpfrontAmount: q.Split.Upfront.String(),
		DueAmount:     q.Split.Due.String(),
		Commission:    fromCommission(q.Commission),
	}
}

func fromDiscount(d *coupon.DiscountCalculation) *DiscountResponse {
	if d == nil {
		return nil
	}
	return &DiscountResponse{
		OriginalAmount:    d.OriginalAmount.String(),
		DiscountAmount:    d.DiscountAmount.String(),
		FinalAmount:       d.FinalAmount.String(),
		SavingsPercentage: d.SavingsPercentage.StringFixed(2),
	}
}

func fromCouponView(v *queries.CouponView) *CouponResponse {
	if v == nil {
		return nil
	}
	var resp CouponResponse
	_ = copier.Copy(&resp, v)
	return &resp
}
