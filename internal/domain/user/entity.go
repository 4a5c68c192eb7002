package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Profile is the booking-side view of an account. Identity and login live
// in the identity service; this service only reads profiles and fills in a
// missing phone number after a booking.
type Profile struct {
	id        uuid.UUID
	email     Email
	fullName  string
	phone     *string
	role      Role
	updatedAt time.Time
}

func NewProfile(id uuid.UUID, email Email, fullName string, phone *string, role Role) (*Profile, error) {
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	return &Profile{
		id:       id,
		email:    email,
		fullName: strings.TrimSpace(fullName),
		phone:    phone,
		role:     role,
	}, nil
}

func ReconstructProfile(id uuid.UUID, email Email, fullName string, phone *string, role Role, updatedAt time.Time) *Profile {
	return &Profile{
		id:        id,
		email:     email,
		fullName:  fullName,
		phone:     phone,
		role:      role,
		updatedAt: updatedAt,
	}
}

func (p *Profile) HasPhone() bool {
	return p.phone != nil && strings.TrimSpace(*p.phone) != ""
}

// BackfillPhone sets the phone only when none is on file. It reports whether
// the profile changed.
func (p *Profile) BackfillPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if phone == "" || p.HasPhone() {
		return false
	}
	p.phone = &phone
	return true
}

func (p *Profile) ID() uuid.UUID        { return p.id }
func (p *Profile) Email() Email         { return p.email }
func (p *Profile) FullName() string     { return p.fullName }
func (p *Profile) Phone() *string       { return p.phone }
func (p *Profile) Role() Role           { return p.role }
func (p *Profile) UpdatedAt() time.Time { return p.updatedAt }
