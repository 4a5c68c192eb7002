package response

import (
	"time"

	"experience-booking/internal/domain/wizard"
	"experience-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SlotResponse struct {
	ID        uuid.UUID `json:"id"`
	Label     string    `json:"label"`
	Capacity  int       `json:"capacity"`
	Remaining int       `json:"remaining"`
	IsFull    bool      `json:"isFull"`
}

type SlotListResponse struct {
	ActivityID uuid.UUID      `json:"activityId"`
	Date       string         `json:"date"`
	Slots      []SlotResponse `json:"slots"`
}

func FromSlotViews(activityID uuid.UUID, date time.Time, views []*queries.SlotView) *SlotListResponse {
	slots := make([]SlotResponse, 0, len(views))
	for _, v := range views {
		var slot SlotResponse
		_ = copier.Copy(&slot, v)
		slots = append(slots, slot)
	}
	return &SlotListResponse{
		ActivityID: activityID,
		Date:       date.Format("2006-01-02"),
		Slots:      slots,
	}
}

type WizardResponse struct {
	ID               uuid.UUID     `json:"id"`
	Layout           wizard.Layout `json:"layout"`
	Step             wizard.Step   `json:"step"`
	Steps            []wizard.Step `json:"steps"`
	ActivityID       *uuid.UUID    `json:"activityId,omitempty"`
	SelectedDate     *string       `json:"date,omitempty"`
	TimeSlotID       *uuid.UUID    `json:"timeSlotId,omitempty"`
	ParticipantCount int           `json:"participantCount"`
	Submitting       bool          `json:"submitting"`
}

// WizardTransitionResponse reports a rejected move with Advanced=false and
// the fields the user still has to fill.
type WizardTransitionResponse struct {
	Wizard        *WizardResponse `json:"wizard"`
	Advanced      bool            `json:"advanced"`
	MissingFields []string        `json:"missingFields,omitempty"`
}

type WizardSubmitResponse struct {
	Wizard        *WizardResponse        `json:"wizard"`
	MissingFields []string               `json:"missingFields,omitempty"`
	Booking       *CreateBookingResponse `json:"result,omitempty"`
}

func FromWizardState(s wizard.State) *WizardResponse {
	var resp WizardResponse
	_ = copier.Copy(&resp, &s)
	resp.Steps = s.Steps()
	resp.TimeSlotID = s.SlotID
	if s.Date != nil {
		d := s.Date.Format("2006-01-02")
		resp.SelectedDate = &d
	}
	return &resp
}

func FromWizardResult(r wizard.Result) *WizardTransitionResponse {
	return &WizardTransitionResponse{
		Wizard:        FromWizardState(r.State),
		Advanced:      r.Advanced,
		MissingFields: r.Missing,
	}
}
