package domain

import "time"

// Identity is the authenticated caller, as established from a bearer token.
type Identity struct {
	AccountID       int64
	Email           string
	Role            Role
	PasswordVersion int
}

// IsAdmin reports whether the caller holds the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// LoginResult is what a successful login hands back to the transport layer.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Account   Account
}
