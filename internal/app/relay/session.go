package relay

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"msg-relay-go/internal/diag"
	"msg-relay-go/internal/protocol"
	"msg-relay-go/internal/services"
	"msg-relay-go/internal/services/networking"
)

// Message is a single routed message. Body never contains a line terminator.
type Message struct {
	From       string
	To         string
	Body       string
	ReceivedAt time.Time
}

// Session is a connected named client. Messages are queued by the relay
// and written to the connection by Serve in the order they were queued.
type Session struct {
	name          string
	conn          networking.Connection
	deliverSender bool
	logger        *slog.Logger
	now           services.TimeProvider

	mu    sync.Mutex
	queue []Message

	wake      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

func (s *Session) Name() string {
	return s.name
}

// Done is closed once the session is closed.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// enqueue must only be called while holding the relay lock.
func (s *Session) enqueue(messages ...Message) {
	if len(messages) == 0 {
		return
	}
	s.mu.Lock()
	s.queue = append(s.queue, messages...)
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *Session) next() (Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		return Message{}, false
	}
	msg := s.queue[0]
	s.queue[0] = Message{}
	s.queue = s.queue[1:]
	return msg, true
}

func (s *Session) requeue(msg Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = append([]Message{msg}, s.queue...)
}

// takePending removes and returns messages that were not written yet.
func (s *Session) takePending() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	pending := s.queue
	s.queue = nil
	return pending
}

func (s *Session) format(msg Message) string {
	if s.deliverSender {
		return protocol.EncodeDelivery(msg.From, msg.Body)
	}
	return msg.Body
}

// Serve writes queued messages to the connection until the session is closed
// or ctx is cancelled. If a write fails the message is put back to the head
// of the queue, the session is closed and the error is returned.
func (s *Session) Serve(ctx context.Context) error {
	for {
		select {
		case <-s.done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		msg, ok := s.next()
		if !ok {
			select {
			case <-s.wake:
				continue
			case <-s.done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		if err := s.conn.WriteLine(s.format(msg)); err != nil {
			s.requeue(msg)
			s.Close()
			return fmt.Errorf("failed to deliver message to %s: %w", s.name, err)
		}
		s.logger.DebugContext(ctx, "Message delivered",
			slog.String("from", msg.From),
			slog.String("to", msg.To),
			slog.Duration("waited", s.now.Now().Sub(msg.ReceivedAt)),
		)
	}
}

// Close stops Serve and closes the connection. Safe to call multiple times.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		if err := s.conn.Close(); err != nil {
			s.logger.Debug("Failed to close connection",
				slog.String("name", s.name),
				diag.ErrAttr(err),
			)
		}
	})
}
