package models

// Role selects which view of the app a request is acting as. There is
// no authentication behind it; it is the dashboard's role switcher.
type Role string

const (
	RoleCleaner     Role = "Cleaner"
	RoleMaintenance Role = "Maintenance"
	RoleAdmin       Role = "Admin"
)

// ValidRole reports whether r is one of the three known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleCleaner, RoleMaintenance, RoleAdmin:
		return true
	}
	return false
}
