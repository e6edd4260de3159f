// Package identity adapts the external auth collaborator to the invoice
// store's user state machine. The collaborator owns sign-in; this package
// only translates its signal into store transitions.
package identity

import "context"

// Principal is the signed-in user as reported by the auth collaborator.
// FirstName is optional display data and never influences scoping.
type Principal struct {
	ID        string
	FirstName string
}

// UserSwitcher is the slice of the store the identity collaborator drives.
type UserSwitcher interface {
	CurrentUser() string
	SetCurrentUser(id string)
	SwitchUser(ctx context.Context, id string)
	ClearCurrentUser(ctx context.Context)
	InitializeUserInvoices(id string)
}

// Apply pushes the collaborator's current signal into the store. While the
// collaborator has not finished loading, nothing happens; an empty id is a
// sign-out.
//
// Signing in from the anonymous state keeps the persisted filter set; only
// an in-session change from one user to another resets it. A fresh store is
// always anonymous, so session bootstrap must not go through SwitchUser or
// the filters would never survive a reload.
func Apply(ctx context.Context, s UserSwitcher, p Principal, loaded bool) {
	if !loaded {
		return
	}
	if p.ID == "" {
		s.ClearCurrentUser(ctx)
		return
	}
	if s.CurrentUser() == "" {
		s.SetCurrentUser(p.ID)
	} else {
		s.SwitchUser(ctx, p.ID)
	}
	s.InitializeUserInvoices(p.ID)
}
