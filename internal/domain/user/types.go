package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleGuest Role = "guest"
	RoleStaff Role = "staff"
	RoleAdmin Role = "admin"
)

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

func (r Role) String() string {
	return string(r)
}

// CanManageReservations reports whether the role may act on other
// guests' reservations (front-desk operations, admin tooling).
func (r Role) CanManageReservations() bool {
	return r == RoleStaff || r == RoleAdmin
}

// CanManageInventory reports whether the role may mutate hotels and rooms.
func (r Role) CanManageInventory() bool {
	return r == RoleAdmin
}

func (r Role) IsValid() bool {
	switch r {
	case RoleGuest, RoleStaff, RoleAdmin:
		return true
	default:
		return false
	}
}
