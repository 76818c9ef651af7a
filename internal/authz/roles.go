package authz

import (
	"fmt"
	"strings"
)

// Role identifies the capability level of a Dayflow session.
type Role string

// Built-in roles
const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

// Routes the guard redirects to.
const (
	LoginRoute             = "/login"
	EmployeeDashboardRoute = "/employee/dashboard"
	ManagerDashboardRoute  = "/manager/dashboard"
	AdminDashboardRoute    = "/admin/dashboard"
)

// satisfies declares which roles satisfy which required roles.
// Admin is a superset of everything; manager is a superset of employee.
// The hierarchy is declared exactly once here.
var satisfies = map[Role]map[Role]bool{
	RoleEmployee: {
		RoleEmployee: true,
	},
	RoleManager: {
		RoleEmployee: true,
		RoleManager:  true,
	},
	RoleAdmin: {
		RoleEmployee: true,
		RoleManager:  true,
		RoleAdmin:    true,
	},
}

// ParseRole parses a string into a Role.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleEmployee:
		return RoleEmployee, nil
	case RoleManager:
		return RoleManager, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("unknown role: %q", s)
	}
}

// Valid reports whether the role is one of the built-in roles.
func (r Role) Valid() bool {
	_, ok := satisfies[r]
	return ok
}

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// Satisfies reports whether a session with role have may access a route
// requiring role need. An empty need means any authenticated session.
func Satisfies(have, need Role) bool {
	if need == "" {
		return true
	}
	return satisfies[have][need]
}

// DefaultRoute returns the landing route for a role. Employees and
// managers land on their own dashboards; anything else lands on the
// admin dashboard.
func DefaultRoute(r Role) string {
	switch r {
	case RoleEmployee:
		return EmployeeDashboardRoute
	case RoleManager:
		return ManagerDashboardRoute
	default:
		return AdminDashboardRoute
	}
}

// RequiredRole returns the role a default landing route demands.
// The guard relies on DefaultRoute(r) always passing for r itself,
// otherwise redirects would loop.
func RequiredRole(route string) Role {
	switch route {
	case EmployeeDashboardRoute:
		return RoleEmployee
	case ManagerDashboardRoute:
		return RoleManager
	case AdminDashboardRoute:
		return RoleAdmin
	default:
		return ""
	}
}
