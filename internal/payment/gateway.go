// Package payment talks to the external payment processor to create
// redirect-based checkout sessions.
package payment

import (
	"context"

	"storefront/internal/pricing"
)

// SessionHandle is the opaque result of a session creation: the processor's
// session identifier plus the URL the client is redirected to.
type SessionHandle struct {
	SessionID   string
	RedirectURL string
}

// Gateway creates hosted checkout sessions for a set of normalized lines.
type Gateway interface {
	CreateSession(ctx context.Context, lines []pricing.Line, successURL, cancelURL string) (*SessionHandle, error)
}
