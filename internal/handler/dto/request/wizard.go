package request

import (
	"experience-booking/internal/domain/user"
	"experience-booking/internal/domain/wizard"
	"experience-booking/internal/pkg/errs"
	"experience-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type StartWizardRequest struct {
	Layout string `json:"layout" binding:"omitempty,oneof=desktop mobile"`
}

// SelectWizardRequest is a partial update; omitted fields keep their value.
type SelectWizardRequest struct {
	ActivityID       *uuid.UUID `json:"activityId,omitempty"`
	Date             *string    `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	TimeSlotID       *uuid.UUID `json:"timeSlotId,omitempty"`
	ParticipantCount *int       `json:"participantCount,omitempty" binding:"omitempty,min=1,max=50"`
}

func (r SelectWizardRequest) ToSelection() (wizard.Selection, error) {
	sel := wizard.Selection{
		ActivityID:       r.ActivityID,
		SlotID:           r.TimeSlotID,
		ParticipantCount: r.ParticipantCount,
	}
	if r.Date != nil {
		d, err := ParseDate(*r.Date)
		if err != nil {
			return wizard.Selection{}, errs.Wrap(err, "parse wizard date")
		}
		sel.Date = &d
	}
	return sel, nil
}

type SubmitWizardRequest struct {
	Contact        ContactRequest       `json:"contact"`
	CouponCode     *string              `json:"couponCode,omitempty"`
	ReferralCode   *string              `json:"referralCode,omitempty"`
	PartialPayment bool                 `json:"partialPayment"`
	Agent          *AgentPricingRequest `json:"agent,omitempty"`
	PaymentToken   string               `json:"paymentToken"`
}

func (r SubmitWizardRequest) ToDetails(role user.Role) (commands.SubmitDetails, error) {
	agent, err := r.Agent.ToDomain(role)
	if err != nil {
		return commands.SubmitDetails{}, err
	}
	return commands.SubmitDetails{
		Contact:        r.Contact.ToDomain(),
		CouponCode:     trimmedOrNil(r.CouponCode),
		ReferralCode:   trimmedOrNil(r.ReferralCode),
		PartialPayment: r.PartialPayment,
		Agent:          agent,
		PaymentToken:   r.PaymentToken,
	}, nil
}
