package valueobjects

import "fmt"

// Role is the closed set of roles a profile can hold. Exactly one role per
// profile; there is no unknown or catch-all state.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleSalesman Role = "salesman"
	RoleEmployee Role = "employee"
)

var validRoles = map[Role]bool{
	RoleAdmin:    true,
	RoleSalesman: true,
	RoleEmployee: true,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return validRoles[r]
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

func (r Role) IsSalesman() bool {
	return r == RoleSalesman
}

func (r Role) IsEmployee() bool {
	return r == RoleEmployee
}

// CanRecordRevenue reports whether the role may create revenue records.
func (r Role) CanRecordRevenue() bool {
	return r == RoleSalesman || r == RoleAdmin
}

// NewRole parses a role string. Unknown values are an error, never silently
// mapped to a fallback role.
func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid role: %s", s)
	}
	return r, nil
}
