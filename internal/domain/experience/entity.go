package experience

import (
	"errors"
	"strings"
	"time"

	"experience-booking/internal/domain/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidTitle     = errors.New("experience title is required")
	ErrInvalidLocations = errors.New("experience must publish one or two locations")
	ErrInvalidName      = errors.New("activity name is required")
	ErrInvalidBasePrice = errors.New("base price cannot be negative")
	ErrInvalidB2BPrice  = errors.New("b2b price cannot be negative")
)

type Experience struct {
	id          uuid.UUID
	title       string
	locations   []string
	vendorName  string
	vendorEmail string
	createdAt   time.Time
}

func NewExperience(id uuid.UUID, title string, locations []string, vendorName, vendorEmail string) (*Experience, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrInvalidTitle
	}

	published := make([]string, 0, len(locations))
	for _, l := range locations {
		if l = strings.TrimSpace(l); l != "" {
			published = append(published, l)
		}
	}
	if len(published) < 1 || len(published) > 2 {
		return nil, ErrInvalidLocations
	}

	return &Experience{
		id:          id,
		title:       title,
		locations:   published,
		vendorName:  vendorName,
		vendorEmail: vendorEmail,
	}, nil
}

// HasTwoLocations selects the two-location confirmation template.
func (e *Experience) HasTwoLocations() bool { return len(e.locations) == 2 }

func (e *Experience) ID() uuid.UUID        { return e.id }
func (e *Experience) Title() string        { return e.title }
func (e *Experience) Locations() []string  { return append([]string(nil), e.locations...) }
func (e *Experience) VendorName() string   { return e.vendorName }
func (e *Experience) VendorEmail() string  { return e.vendorEmail }
func (e *Experience) CreatedAt() time.Time { return e.createdAt }

// Activity is a bookable offering inside an Experience. b2bPrice is not
// checked against basePrice.
type Activity struct {
	id           uuid.UUID
	experienceID uuid.UUID
	name         string
	basePrice    money.Money
	currency     money.Currency
	discount     *Discount
	b2bPrice     money.Money
}

type ActivityParams struct {
	ID            uuid.UUID
	ExperienceID  uuid.UUID
	Name          string
	BasePrice     money.Money
	Currency      money.Currency
	DiscountType  *DiscountType
	DiscountValue *decimal.Decimal
	B2BPrice      money.Money
}

func NewActivity(p ActivityParams) (*Activity, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, ErrInvalidName
	}
	if p.BasePrice.IsNegative() {
		return nil, ErrInvalidBasePrice
	}
	if p.B2BPrice.IsNegative() {
		return nil, ErrInvalidB2BPrice
	}

	a := &Activity{
		id:           p.ID,
		experienceID: p.ExperienceID,
		name:         strings.TrimSpace(p.Name),
		basePrice:    p.BasePrice,
		currency:     p.Currency.OrDefault(),
		b2bPrice:     p.B2BPrice,
	}

	if p.DiscountType != nil && p.DiscountValue != nil {
		d, err := NewDiscount(*p.DiscountType, *p.DiscountValue, p.BasePrice)
		if err != nil {
			return nil, err
		}
		a.discount = &d
	}

	return a, nil
}

// DiscountedPrice is nil when the activity carries no discount.
func (a *Activity) DiscountedPrice() *money.Money {
	if a.discount == nil {
		return nil
	}
	p := a.discount.Apply(a.basePrice)
	return &p
}

func (a *Activity) DiscountPercentage() decimal.Decimal {
	if a.discount == nil {
		return decimal.Zero
	}
	return a.discount.Percentage(a.basePrice)
}

// EffectivePrice is the per-person public price: discounted price if any, else base.
func (a *Activity) EffectivePrice() money.Money {
	if p := a.DiscountedPrice(); p != nil {
		return *p
	}
	return a.basePrice
}

// CommissionPerVendor is base_price - b2b_price.
func (a *Activity) CommissionPerVendor() money.Money {
	return a.basePrice.Sub(a.b2bPrice)
}

func (a *Activity) ID() uuid.UUID            { return a.id }
func (a *Activity) ExperienceID() uuid.UUID  { return a.experienceID }
func (a *Activity) Name() string             { return a.name }
func (a *Activity) BasePrice() money.Money   { return a.basePrice }
func (a *Activity) Currency() money.Currency { return a.currency }
func (a *Activity) Discount() *Discount      { return a.discount }
func (a *Activity) B2BPrice() money.Money    { return a.b2bPrice }
