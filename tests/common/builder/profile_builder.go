//go:build unit || e2e

package builder

import (
	"experience-booking/internal/domain/user"

	"github.com/google/uuid"
)

type ProfileBuilder struct {
	ID       uuid.UUID
	Email    string
	FullName string
	Phone    *string
	Role     string
}

func NewProfileBuilder() *ProfileBuilder {
	return &ProfileBuilder{
		ID:       uuid.New(),
		Email:    "test@example.com",
		FullName: "Test Customer",
		Role:     "customer",
	}
}

func (b *ProfileBuilder) With(mutate func(*ProfileBuilder)) *ProfileBuilder {
	mutate(b)
	return b
}

func (b *ProfileBuilder) BuildDomain() (*user.Profile, error) {
	email, err := user.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(b.Role)
	if err != nil {
		return nil, err
	}
	return user.NewProfile(b.ID, email, b.FullName, b.Phone, role)
}

func (b *ProfileBuilder) WithEmail(email string) *ProfileBuilder {
	b.Email = email
	return b
}

func (b *ProfileBuilder) WithRole(role string) *ProfileBuilder {
	b.Role = role
	return b
}

func (b *ProfileBuilder) WithPhone(phone string) *ProfileBuilder {
	b.Phone = &phone
	return b
}

func (b *ProfileBuilder) WithoutPhone() *ProfileBuilder {
	b.Phone = nil
	return b
}
