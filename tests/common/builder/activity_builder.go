//go:build unit || e2e

package builder

import (
	"time"

	"experience-booking/internal/domain/experience"
	"experience-booking/internal/domain/money"
	"experience-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ActivityBuilder struct {
	ID            uuid.UUID
	ExperienceID  uuid.UUID
	Title         string
	Locations     []string
	VendorName    string
	VendorEmail   string
	Name          string
	BasePrice     string
	Currency      string
	DiscountType  *experience.DiscountType
	DiscountValue *decimal.Decimal
	B2BPrice      string
	SlotID        uuid.UUID
	SlotStart     time.Time
	SlotEnd       time.Time
	Capacity      int
}

func NewActivityBuilder() *ActivityBuilder {
	return &ActivityBuilder{
		ID:           uuid.New(),
		ExperienceID: uuid.New(),
		Title:        "River Rafting",
		Locations:    []string{"Rishikesh"},
		VendorName:   "Ganga Adventures",
		VendorEmail:  "vendor@example.com",
		Name:         "16km Rafting Run",
		BasePrice:    "1000",
		Currency:     "INR",
		B2BPrice:     "700",
		SlotID:       uuid.New(),
		SlotStart:    time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC),
		SlotEnd:      time.Date(0, 1, 1, 12, 0, 0, 0, time.UTC),
		Capacity:     10,
	}
}

func (b *ActivityBuilder) With(mutate func(*ActivityBuilder)) *ActivityBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ActivityBuilder) BuildExperience() (*experience.Experience, error) {
	return experience.NewExperience(b.ExperienceID, b.Title, b.Locations, b.VendorName, b.VendorEmail)
}

func (b *ActivityBuilder) BuildDomain() (*experience.Activity, error) {
	return experience.NewActivity(experience.ActivityParams{
		ID:            b.ID,
		ExperienceID:  b.ExperienceID,
		Name:          b.Name,
		BasePrice:     money.MustParse(b.BasePrice),
		Currency:      money.Currency(b.Currency),
		DiscountType:  b.DiscountType,
		DiscountValue: b.DiscountValue,
		B2BPrice:      money.MustParse(b.B2BPrice),
	})
}

func (b *ActivityBuilder) BuildSlot() (*experience.TimeSlot, error) {
	return experience.NewTimeSlot(b.SlotID, b.ID, b.SlotStart, b.SlotEnd, b.Capacity)
}

func (b *ActivityBuilder) BuildSnapshot() *shared.ActivitySnapshot {
	return &shared.ActivitySnapshot{
		ID:            b.ID,
		ExperienceID:  b.ExperienceID,
		Name:          b.Name,
		BasePrice:     decimal.RequireFromString(b.BasePrice),
		Currency:      b.Currency,
		DiscountType:  (*string)(b.DiscountType),
		DiscountValue: b.DiscountValue,
		B2BPrice:      decimal.RequireFromString(b.B2BPrice),
	}
}

func (b *ActivityBuilder) BuildExperienceSnapshot() *shared.ExperienceSnapshot {
	return &shared.ExperienceSnapshot{
		ID:          b.ExperienceID,
		Title:       b.Title,
		Locations:   b.Locations,
		VendorName:  b.VendorName,
		VendorEmail: b.VendorEmail,
	}
}

func (b *ActivityBuilder) BuildSlotSnapshot() *shared.TimeSlotSnapshot {
	return &shared.TimeSlotSnapshot{
		ID:         b.SlotID,
		ActivityID: b.ID,
		StartTime:  b.SlotStart,
		EndTime:    b.SlotEnd,
		Capacity:   b.Capacity,
	}
}

// Fluent builder methods
func (b *ActivityBuilder) WithBasePrice(price string) *ActivityBuilder {
	b.BasePrice = price
	return b
}

func (b *ActivityBuilder) WithB2BPrice(price string) *ActivityBuilder {
	b.B2BPrice = price
	return b
}

func (b *ActivityBuilder) WithFlatDiscount(amount string) *ActivityBuilder {
	t := experience.DiscountFlat
	v := decimal.RequireFromString(amount)
	b.DiscountType = &t
	b.DiscountValue = &v
	return b
}

func (b *ActivityBuilder) WithPercentageDiscount(percent string) *ActivityBuilder {
	t := experience.DiscountPercentage
	v := decimal.RequireFromString(percent)
	b.DiscountType = &t
	b.DiscountValue = &v
	return b
}

func (b *ActivityBuilder) WithoutDiscount() *ActivityBuilder {
	b.DiscountType = nil
	b.DiscountValue = nil
	return b
}

func (b *ActivityBuilder) WithCapacity(capacity int) *ActivityBuilder {
	b.Capacity = capacity
	return b
}

func (b *ActivityBuilder) WithLocations(locations ...string) *ActivityBuilder {
	b.Locations = locations
	return b
}

func (b *ActivityBuilder) WithName(name string) *ActivityBuilder {
	b.Name = name
	return b
}
