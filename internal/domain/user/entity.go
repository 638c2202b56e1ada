package user

import "time"

// Role determines which route group and workflow entry points a user may hit.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCompany  Role = "company"
	RoleGraduate Role = "graduate"
)

// ParseRole converts a raw string to a Role, returning false for unknown
// values.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	switch r {
	case RoleAdmin, RoleCompany, RoleGraduate:
		return r, true
	}
	return "", false
}

type User struct {
	ID            string
	Email         string
	PasswordHash  string
	Role          Role
	EmailVerified bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
