package enums

import "fmt"

// ActorRole labels the principal behind an authenticated request.
type ActorRole string

const (
	RoleCollege ActorRole = "COLLEGE"
	RoleGov     ActorRole = "GOV"
	RoleStudent ActorRole = "STUDENT"
)

var validActorRoles = []ActorRole{
	RoleCollege,
	RoleGov,
	RoleStudent,
}

// String implements fmt.Stringer.
func (r ActorRole) String() string {
	return string(r)
}

// IsValid reports whether the value is a known ActorRole.
func (r ActorRole) IsValid() bool {
	for _, candidate := range validActorRoles {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseActorRole converts raw input into an ActorRole.
func ParseActorRole(value string) (ActorRole, error) {
	for _, candidate := range validActorRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid actor role %q", value)
}
