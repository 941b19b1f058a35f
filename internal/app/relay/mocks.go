//go:build !release

package relay

import (
	"context"

	"msg-relay-go/internal/services/networking"
)

// Mock interfaces are used to generate mock implementations of the components
// that are consumed elsewhere in a system.

type mockRelay interface {
	NewSession(name string, conn networking.Connection) *Session
	Register(ctx context.Context, session *Session) error
	Deregister(ctx context.Context, session *Session)
	Route(ctx context.Context, from, to, body string) (RouteResult, error)
}

var _ mockRelay = (*Relay)(nil)
