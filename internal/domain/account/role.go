package account

import "fmt"

// Role is the closed set of account roles.
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleSalonOwner Role = "SALON_OWNER"
	RoleCustomer   Role = "CUSTOMER"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleSalonOwner, RoleCustomer:
		return true
	default:
		return false
	}
}

func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid role: %q", s)
	}
	return r, nil
}

// Promote is the single allowed role transition: a customer becomes a
// salon owner. Every other transition is rejected.
func Promote(current Role) (Role, error) {
	if current != RoleCustomer {
		return current, fmt.Errorf("role %s cannot be promoted", current)
	}
	return RoleSalonOwner, nil
}
