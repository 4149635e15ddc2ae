package domain

import "strings"

// Role is the closed set of authorization roles a session can carry.
// Anything the store hands us that is not a known role collapses to
// RoleAnonymous, so invalid role strings cannot leak past this package.
type Role int

const (
	RoleAnonymous Role = iota
	RoleClient
	RoleEmployee
	RoleAdmin
)

// Surface identifies which navigation surface a role sees.
type Surface int

const (
	// SurfaceStorefront is the purchase-oriented surface: browse, cart,
	// rent, repair request. Shared by anonymous visitors and clients.
	SurfaceStorefront Surface = iota
	// SurfaceManagement is the inventory + repair management surface.
	// Shared by employees and admins.
	SurfaceManagement
)

// ParseRole maps a stored role string to a Role. Stale localStorage-style
// values ("null", "undefined", empty) read as anonymous.
func ParseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "client":
		return RoleClient
	case "employee":
		return RoleEmployee
	case "admin":
		return RoleAdmin
	default:
		return RoleAnonymous
	}
}

// String returns the wire representation of the role.
func (r Role) String() string {
	switch r {
	case RoleClient:
		return "client"
	case RoleEmployee:
		return "employee"
	case RoleAdmin:
		return "admin"
	default:
		return ""
	}
}

// Surface returns the navigation surface for the role.
func (r Role) Surface() Surface {
	switch r {
	case RoleEmployee, RoleAdmin:
		return SurfaceManagement
	default:
		return SurfaceStorefront
	}
}

// CanManageInventory reports whether the role may use inventory CRUD and
// repair management.
func (r Role) CanManageInventory() bool {
	return r.Surface() == SurfaceManagement
}

// CanCheckout reports whether checkout actions are shown. Anonymous
// visitors share the storefront surface but are routed to login instead.
func (r Role) CanCheckout() bool {
	return r == RoleClient
}

// IsAdmin reports whether the role is admin.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}
