package request

import (
	"experience-booking/internal/domain/booking"
	"experience-booking/internal/domain/user"
	"experience-booking/internal/pkg/errs"
	"experience-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

// ContactRequest is validated by the booking domain so the response can
// name each missing field.
type ContactRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (r ContactRequest) ToDomain() booking.ContactPerson {
	return booking.ContactPerson{Name: r.Name, Email: r.Email, Phone: r.Phone}
}

type CreateBookingRequest struct {
	ActivityID       uuid.UUID            `json:"activityId" binding:"required"`
	TimeSlotID       uuid.UUID            `json:"timeSlotId" binding:"required"`
	Date             string               `json:"date" binding:"required,datetime=2006-01-02"`
	ParticipantCount int                  `json:"participantCount" binding:"required,min=1,max=50"`
	Contact          ContactRequest       `json:"contact"`
	CouponCode       *string              `json:"couponCode,omitempty"`
	ReferralCode     *string              `json:"referralCode,omitempty"`
	PartialPayment   bool                 `json:"partialPayment"`
	Agent            *AgentPricingRequest `json:"agent,omitempty"`
	PaymentToken     string               `json:"paymentToken"`
}

func (r CreateBookingRequest) ToCommand(role user.Role) (commands.CheckoutRequest, error) {
	date, err := ParseDate(r.Date)
	if err != nil {
		return commands.CheckoutRequest{}, errs.Wrap(err, "parse booking date")
	}
	agent, err := r.Agent.ToDomain(role)
	if err != nil {
		return commands.CheckoutRequest{}, err
	}
	return commands.CheckoutRequest{
		ActivityID:       r.ActivityID,
		TimeSlotID:       r.TimeSlotID,
		Date:             date,
		ParticipantCount: r.ParticipantCount,
		Contact:          r.Contact.ToDomain(),
		CouponCode:       trimmedOrNil(r.CouponCode),
		ReferralCode:     trimmedOrNil(r.ReferralCode),
		PartialPayment:   r.PartialPayment,
		Agent:            agent,
		PaymentToken:     r.PaymentToken,
	}, nil
}
