package entity

// Role names a caller's claimed capacity. Roles are asserted by the client
// or carried in a login token; they are not a security boundary.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
)

// ParseRole maps a role name to a Role. "clinic_admin" is accepted as an
// alias for admin; the web client sends it.
func ParseRole(s string) (Role, bool) {
	switch s {
	case string(RoleAdmin), "clinic_admin":
		return RoleAdmin, true
	case string(RoleDoctor):
		return RoleDoctor, true
	case string(RolePatient):
		return RolePatient, true
	}
	return "", false
}

// Account is a fixed login identity standing in for a user table.
type Account struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}
