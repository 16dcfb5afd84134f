package entity

// Permission names a mutating operation behind the role gate.
type Permission string

const (
	PermissionCreatePatient        Permission = "create:patient"
	PermissionUpdatePatient        Permission = "update:patient"
	PermissionDeletePatient        Permission = "delete:patient"
	PermissionCreateDoctor         Permission = "create:doctor"
	PermissionUpdateDoctor         Permission = "update:doctor"
	PermissionDeleteDoctor         Permission = "delete:doctor"
	PermissionCreateAppointment    Permission = "create:appointment"
	PermissionAssignAppointment    Permission = "assign:appointment"
	PermissionSetAppointmentStatus Permission = "status:appointment"
	PermissionDeleteAppointment    Permission = "delete:appointment"
)

// permissionRoles maps each permission to the roles that hold it. Reads are
// never gated and do not appear here.
var permissionRoles = map[Permission][]Role{
	PermissionCreatePatient:        {RoleAdmin},
	PermissionUpdatePatient:        {RoleAdmin},
	PermissionDeletePatient:        {RoleAdmin},
	PermissionCreateDoctor:         {RoleAdmin},
	PermissionUpdateDoctor:         {RoleAdmin},
	PermissionDeleteDoctor:         {RoleAdmin},
	PermissionCreateAppointment:    {RoleAdmin},
	PermissionAssignAppointment:    {RoleAdmin},
	PermissionSetAppointmentStatus: {RoleAdmin, RoleDoctor},
	PermissionDeleteAppointment:    {RoleAdmin},
}

// Can reports whether r holds p. Unknown permissions are denied.
func (r Role) Can(p Permission) bool {
	for _, allowed := range permissionRoles[p] {
		if r == allowed {
			return true
		}
	}
	return false
}

// RolesFor returns the roles holding p.
func RolesFor(p Permission) []Role {
	return append([]Role(nil), permissionRoles[p]...)
}
