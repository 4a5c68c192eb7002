package shared

import (
	"experience-booking/internal/domain/booking"
	"experience-booking/internal/domain/coupon"
	"experience-booking/internal/domain/experience"
	"experience-booking/internal/domain/money"
	"experience-booking/internal/domain/user"
)

// Snapshots are validated on the way into the domain; a row that breaks a
// domain rule surfaces as that rule's error instead of leaking into pricing.

func (s *ExperienceSnapshot) ToDomain() (*experience.Experience, error) {
	return experience.NewExperience(s.ID, s.Title, s.Locations, s.VendorName, s.VendorEmail)
}

func (s *ActivitySnapshot) ToDomain() (*experience.Activity, error) {
	return experience.NewActivity(experience.ActivityParams{
		ID:            s.ID,
		ExperienceID:  s.ExperienceID,
		Name:          s.Name,
		BasePrice:     money.New(s.BasePrice),
		Currency:      money.Currency(s.Currency),
		DiscountType:  (*experience.DiscountType)(s.DiscountType),
		DiscountValue: s.DiscountValue,
		B2BPrice:      money.New(s.B2BPrice),
	})
}

func (s *TimeSlotSnapshot) ToDomain() (*experience.TimeSlot, error) {
	return experience.NewTimeSlot(s.ID, s.ActivityID, s.StartTime, s.EndTime, s.Capacity)
}

func (s *CouponSnapshot) ToDomain() (*coupon.Coupon, error) {
	return coupon.NewCoupon(coupon.Params{
		ID:            s.ID,
		Code:          s.Code,
		Type:          coupon.Type(s.Type),
		DiscountValue: s.DiscountValue,
		ActivityID:    s.ActivityID,
		ValidFrom:     s.ValidFrom,
		ValidTo:       s.ValidTo,
		IsActive:      s.IsActive,
	})
}

func (s *ProfileSnapshot) ToDomain() (*user.Profile, error) {
	email, err := user.NewEmail(s.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(s.Role)
	if err != nil {
		return nil, err
	}
	return user.ReconstructProfile(s.ID, email, s.FullName, s.Phone, role, s.UpdatedAt), nil
}

func (s *BookingSnapshot) ToDomain() (*booking.Booking, error) {
	participants := make([]booking.Participant, len(s.Participants))
	for i, p := range s.Participants {
		participants[i] = booking.Participant{
			ID:        p.ID,
			BookingID: s.ID,
			Name:      p.Name,
			Email:     p.Email,
			Phone:     p.Phone,
		}
	}
	return booking.Reconstruct(s.ID, booking.Params{
		UserID:           s.UserID,
		ExperienceID:     s.ExperienceID,
		ActivityID:       s.ActivityID,
		TimeSlotID:       s.TimeSlotID,
		BookingDate:      s.BookingDate,
		ParticipantCount: s.ParticipantCount,
		BookingAmount:    money.New(s.BookingAmount),
		DueAmount:        money.New(s.DueAmount),
		B2BPrice:         money.New(s.B2BPrice),
		Currency:         money.Currency(s.Currency),
		IsAgentBooking:   s.IsAgentBooking,
		Contact: booking.ContactPerson{
			Name:  s.ContactName,
			Email: s.ContactEmail,
			Phone: s.ContactPhone,
		},
		ReferralCode: s.ReferralCode,
		CouponCode:   s.CouponCode,
		PaymentRef:   s.PaymentRef,
	}, booking.Type(s.Type), participants, s.CreatedAt)
}
