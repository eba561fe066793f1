// Package domain holds the small set of types shared across console
// bounded contexts: the signed-in admin and the user tiers beneath it.
package domain

import "time"

// Admin is the identity decoded from the stored session token. It is
// advisory: the upstream API re-validates the token on every call.
type Admin struct {
	ID        string
	Name      string
	UniqueID  string
	Email     string
	Role      string
	ExpiresAt time.Time
}

// Expired reports whether the session has lapsed at now.
func (a Admin) Expired(now time.Time) bool {
	return !a.ExpiresAt.After(now)
}
