package response

import (
	"time"

	"experience-booking/internal/domain/booking"
	"experience-booking/internal/domain/pricing"
	"experience-booking/internal/usecase/commands"
	"experience-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ContactResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type ParticipantResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone string    `json:"phone"`
}

type CommissionResponse struct {
	PerVendor          string `json:"commissionPerVendor"`
	Net                string `json:"netCommission"`
	VendorOwesPlatform string `json:"vendorOwesPlatform"`
}

type BookingResponse struct {
	ID               uuid.UUID             `json:"id"`
	UserID           *uuid.UUID            `json:"userId,omitempty"`
	ExperienceID     uuid.UUID             `json:"experienceId"`
	ActivityID       uuid.UUID             `json:"activityId"`
	ActivityName     string                `json:"activityName,omitempty"`
	TimeSlotID       uuid.UUID             `json:"timeSlotId"`
	SlotLabel        string                `json:"slotLabel,omitempty"`
	BookingDate      string                `json:"bookingDate"`
	ParticipantCount int                   `json:"participantCount"`
	BookingAmount    string                `json:"bookingAmount"`
	UpfrontAmount    string                `json:"upfrontAmount"`
	DueAmount        string                `json:"dueAmount"`
	B2BPrice         string                `json:"b2bPrice"`
	Currency         string                `json:"currency"`
	IsAgentBooking   bool                  `json:"isAgentBooking"`
	Type             string                `json:"bookingType"`
	Contact          ContactResponse       `json:"contactPerson"`
	ReferralCode     *string               `json:"referralCode,omitempty"`
	CouponCode       *string               `json:"couponCode,omitempty"`
	PaymentRef       *string               `json:"paymentRef,omitempty"`
	Participants     []ParticipantResponse `json:"participants"`
	Commission       *CommissionResponse   `json:"commission,omitempty"`
	CreatedAt        *time.Time            `json:"createdAt,omitempty"`
}

type CreateBookingResponse struct {
	Booking  *BookingResponse `json:"booking"`
	Warnings []string         `json:"warnings,omitempty"`
}

func FromBooking(b *booking.Booking) *BookingResponse {
	contact := b.Contact()
	participants := make([]ParticipantResponse, 0, b.ParticipantCount())
	for _, p := range b.Participants() {
		participants = append(participants, ParticipantResponse{ID: p.ID, Name: p.Name, Email: p.Email, Phone: p.Phone})
	}
	resp := &BookingResponse{
		ID:               b.ID(),
		UserID:           b.UserID(),
		ExperienceID:     b.ExperienceID(),
		ActivityID:       b.ActivityID(),
		TimeSlotID:       b.TimeSlotID(),
		BookingDate:      b.BookingDate().Format("2006-01-02"),
		ParticipantCount: b.ParticipantCount(),
		BookingAmount:    b.BookingAmount().String(),
		UpfrontAmount:    b.Upfront().String(),
		DueAmount:        b.DueAmount().String(),
		B2BPrice:         b.B2BPrice().String(),
		Currency:         b.Currency().String(),
		IsAgentBooking:   b.IsAgentBooking(),
		Type:             b.Type().String(),
		Contact:          ContactResponse{Name: contact.Name, Email: contact.Email, Phone: contact.Phone},
		ReferralCode:     b.ReferralCode(),
		CouponCode:       b.CouponCode(),
		PaymentRef:       b.PaymentRef(),
		Participants:     participants,
	}
	if created := b.CreatedAt(); !created.IsZero() {
		resp.CreatedAt = &created
	}
	return resp
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	resp := FromBooking(v.Booking)
	resp.ActivityName = v.ActivityName
	resp.SlotLabel = v.SlotLabel
	resp.Commission = fromCommission(v.Commission)
	return resp
}

func FromFinalizeResult(r *commands.FinalizeResult) *CreateBookingResponse {
	return &CreateBookingResponse{
		Booking:  FromBooking(r.Booking),
		Warnings: r.Warnings,
	}
}

func fromCommission(c pricing.Commission) *CommissionResponse {
	return &CommissionResponse{
		PerVendor:          c.PerVendor.String(),
		Net:                c.Net.String(),
		VendorOwesPlatform: c.VendorOwesPlatform.String(),
	}
}
