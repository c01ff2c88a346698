package domain

// Roles recognised by the dashboard. Everything else stored in a profile is
// treated as RoleUser when read back.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// ValidRole reports whether role is one of the recognised roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}

// NormalizeRole coerces unknown or empty roles to RoleUser. It never fails;
// callers that care about the coercion happening can compare in/out.
func NormalizeRole(role string) string {
	if ValidRole(role) {
		return role
	}
	return RoleUser
}

// DashboardTarget maps a role to the landing route the client should open
// after login.
func DashboardTarget(role string) string {
	if NormalizeRole(role) == RoleAdmin {
		return "/admin-dashboard"
	}
	return "/user-dashboard"
}
