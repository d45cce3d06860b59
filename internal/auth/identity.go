package auth

import "civicpulse/internal/model"

// Fixed admin identity authenticated against process configuration. It has
// no backing user record and is never queryable through the user store.
const (
	AdminID       = "admin"
	AdminEmail    = "admin@civic.com"
	AdminFullName = "Administrator"
)

// Identity is the authenticated caller as seen by the workflow services.
type Identity struct {
	ID    string
	Email string
	Role  model.Role
}

// IsAdmin reports whether the identity holds the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == model.RoleAdmin
}

// AdminIdentity returns the sentinel identity produced by the fixed
// credential login path.
func AdminIdentity() Identity {
	return Identity{
		ID:    AdminID,
		Email: AdminEmail,
		Role:  model.RoleAdmin,
	}
}

// IdentityFromClaims converts verified token claims into an Identity.
func IdentityFromClaims(claims *Claims) Identity {
	return Identity{
		ID:    claims.UserID,
		Email: claims.Email,
		Role:  claims.Role,
	}
}
