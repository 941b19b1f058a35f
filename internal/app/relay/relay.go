// Package relay implements the store-and-forward core: the registry of
// connected sessions and the per-recipient mailboxes of undelivered messages.
package relay

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"msg-relay-go/internal/protocol"
	"msg-relay-go/internal/services"
	"msg-relay-go/internal/services/networking"

	"github.com/samber/lo"
	"go.uber.org/dig"
)

type RouteResult int

const (
	// RouteDelivered means the recipient is connected and the message was queued on its session.
	RouteDelivered RouteResult = iota + 1

	// RouteBuffered means the message was appended to the recipient mailbox.
	RouteBuffered
)

func (r RouteResult) String() string {
	switch r {
	case RouteDelivered:
		return "delivered"
	case RouteBuffered:
		return "buffered"
	default:
		return "unknown"
	}
}

type Deps struct {
	dig.In

	RootLogger *slog.Logger

	// config
	DeliverSender bool `name:"config.relay.deliverSender"`

	// services
	services.TimeProvider
}

// Relay owns connected sessions and mailboxes. Every operation holds
// one lock for all of its lookups and mutations.
type Relay struct {
	deps   Deps
	logger *slog.Logger

	mu        sync.Mutex
	sessions  map[string]*Session
	mailboxes map[string][]Message
}

func NewRelay(deps Deps) *Relay {
	return &Relay{
		deps:      deps,
		logger:    deps.RootLogger.WithGroup("relay"),
		sessions:  make(map[string]*Session),
		mailboxes: make(map[string][]Message),
	}
}

// NewSession creates a session that is not registered yet.
func (r *Relay) NewSession(name string, conn networking.Connection) *Session {
	return &Session{
		name:          name,
		conn:          conn,
		deliverSender: r.deps.DeliverSender,
		logger:        r.logger,
		now:           r.deps.TimeProvider,
		wake:          make(chan struct{}, 1),
		done:          make(chan struct{}),
	}
}

// Register binds the session name and moves any buffered messages for
// the name into the session queue in their original order.
func (r *Relay) Register(ctx context.Context, session *Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[session.name]; ok {
		return fmt.Errorf("%w: %s", ErrNameInUse, session.name)
	}
	r.sessions[session.name] = session

	mailbox := r.mailboxes[session.name]
	delete(r.mailboxes, session.name)
	session.enqueue(mailbox...)

	r.logger.InfoContext(ctx, "Client registered",
		slog.String("name", session.name),
		slog.Int("flushed", len(mailbox)),
	)
	return nil
}

// Deregister removes the binding if it still points to the session.
// Messages the session did not write are buffered again ahead of
// anything routed to the name afterwards.
func (r *Relay) Deregister(ctx context.Context, session *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if current, ok := r.sessions[session.name]; !ok || current != session {
		return
	}
	delete(r.sessions, session.name)

	pending := session.takePending()
	if len(pending) > 0 {
		r.mailboxes[session.name] = append(pending, r.mailboxes[session.name]...)
	}

	r.logger.InfoContext(ctx, "Client deregistered",
		slog.String("name", session.name),
		slog.Int("rebuffered", len(pending)),
	)
}

// Route queues the message on the recipient session if it is connected,
// otherwise appends it to the recipient mailbox.
func (r *Relay) Route(ctx context.Context, from, to, body string) (RouteResult, error) {
	if err := protocol.ValidateName(to); err != nil {
		return 0, err
	}
	msg := Message{
		From:       from,
		To:         to,
		Body:       body,
		ReceivedAt: r.deps.TimeProvider.Now(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	result := RouteBuffered
	if session, ok := r.sessions[to]; ok {
		session.enqueue(msg)
		result = RouteDelivered
	} else {
		r.mailboxes[to] = append(r.mailboxes[to], msg)
	}

	r.logger.DebugContext(ctx, "Message routed",
		slog.String("from", from),
		slog.String("to", to),
		slog.String("result", result.String()),
	)
	return result, nil
}

// ConnectedClients returns sorted names of registered sessions.
func (r *Relay) ConnectedClients() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := lo.Keys(r.sessions)
	slices.Sort(names)
	return names
}

// Pending returns a copy of the mailbox for the name.
func (r *Relay) Pending(name string) []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.mailboxes[name])
}

// Mailboxes returns number of buffered messages per recipient.
func (r *Relay) Mailboxes() map[string]int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return lo.MapValues(r.mailboxes, func(messages []Message, _ string) int {
		return len(messages)
	})
}

// DropMailbox discards buffered messages for the name and returns how many were dropped.
func (r *Relay) DropMailbox(ctx context.Context, name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	dropped := len(r.mailboxes[name])
	delete(r.mailboxes, name)
	if dropped > 0 {
		r.logger.InfoContext(ctx, "Mailbox dropped",
			slog.String("name", name),
			slog.Int("dropped", dropped),
		)
	}
	return dropped
}

// CloseAll closes every registered session. Sessions are deregistered by their handlers.
func (r *Relay) CloseAll() {
	r.mu.Lock()
	sessions := lo.Values(r.sessions)
	r.mu.Unlock()

	for _, session := range sessions {
		session.Close()
	}
}
