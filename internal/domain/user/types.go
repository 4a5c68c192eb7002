package user

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAgent    Role = "agent"
	RoleAdmin    Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleAgent, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsAgent reports whether bookings made under this role are agent bookings.
func (r Role) IsAgent() bool {
	return r == RoleAgent
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
