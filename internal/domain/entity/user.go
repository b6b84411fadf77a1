// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is the account record as the backend reports it. The authoritative
// copy is server-side; the client holds the snapshot returned by the most
// recent bootstrap, login or refresh call.
type User struct {
	ID              string     // The backend's unique identifier for the account.
	Email           string     // The user's login email.
	Role            Role       // Either RoleUser or RoleAdmin.
	IsEmailVerified bool       // Whether the user has completed email verification.
	Plan            Plan       // The active subscription tier.
	PlanExpiresAt   *time.Time // When the paid tier lapses. Nil for free or lifetime plans.
	IsBlocked       bool       // Whether an admin has suspended the account.
	CreatedAt       time.Time  // Timestamp of account creation.
}

// IsAdmin reports whether the account carries the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
