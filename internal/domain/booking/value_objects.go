package booking

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidContact = errors.New("contact name, email and phone are required")

var validate = validator.New(validator.WithRequiredStructEnabled())

type Type string

const (
	TypeOnline   Type = "online"
	TypeOffline  Type = "offline"
	TypeCanceled Type = "canceled"
)

func (t Type) String() string { return string(t) }

func (t Type) IsValid() bool {
	switch t {
	case TypeOnline, TypeOffline, TypeCanceled:
		return true
	default:
		return false
	}
}

// ContactPerson is the single purchaser contact; every participant row is cloned from it.
type ContactPerson struct {
	Name  string `validate:"required,max=120"`
	Email string `validate:"required,email"`
	Phone string `validate:"required,min=7,max=20"`
}

func NewContactPerson(name, email, phone string) (ContactPerson, error) {
	c := ContactPerson{
		Name:  strings.TrimSpace(name),
		Email: strings.ToLower(strings.TrimSpace(email)),
		Phone: strings.TrimSpace(phone),
	}
	if err := validate.Struct(c); err != nil {
		return ContactPerson{}, errors.Join(ErrInvalidContact, err)
	}
	return c, nil
}

// MissingFields names the contact fields that failed validation.
func MissingFields(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, strings.ToLower(fe.Field()))
	}
	return fields
}
