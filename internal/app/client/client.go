// Package client implements the client side of the relay protocol.
package client

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"msg-relay-go/internal/protocol"
	"msg-relay-go/internal/services/networking"
)

var (
	ErrNameInUse = errors.New("name is already in use")
	ErrBadName   = errors.New("name rejected by server")
	ErrBadLine   = errors.New("line rejected by server")
)

var errorsByCode = map[string]error{
	protocol.CodeNameInUse: ErrNameInUse,
	protocol.CodeBadName:   ErrBadName,
	protocol.CodeBadLine:   ErrBadLine,
}

// Incoming is a message delivered by the server. From is empty
// if the server does not frame deliveries with the sender name.
type Incoming struct {
	From string
	Body string
}

type Opt func(c *Client)

// WithSenderFraming indicates that delivered lines start with the sender name.
func WithSenderFraming(value bool) Opt {
	return func(c *Client) {
		c.senderFraming = value
	}
}

type Client struct {
	name          string
	conn          networking.Connection
	senderFraming bool
}

// Connect announces the name on the connection.
func Connect(conn networking.Connection, name string, opts ...Opt) (*Client, error) {
	if err := protocol.ValidateName(name); err != nil {
		return nil, err
	}
	c := &Client{
		name:          name,
		conn:          conn,
		senderFraming: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := conn.WriteLine(name); err != nil {
		return nil, fmt.Errorf("failed to announce name: %w", err)
	}
	return c, nil
}

func (c *Client) Name() string {
	return c.name
}

// Send sends the text to the peer. Text is truncated at the first line terminator.
func (c *Client) Send(peer, text string) error {
	if err := protocol.ValidateName(peer); err != nil {
		return err
	}
	if idx := strings.IndexAny(text, "\r\n"); idx >= 0 {
		text = text[:idx]
	}
	if err := c.conn.WriteLine(protocol.EncodeRoute(peer, text)); err != nil {
		return fmt.Errorf("failed to send message to %s: %w", peer, err)
	}
	return nil
}

func (c *Client) decode(line string) (Incoming, error) {
	if code, ok := protocol.ParseErrorResponse(line); ok {
		if err, known := errorsByCode[code]; known {
			return Incoming{}, err
		}
	}
	if c.senderFraming {
		if from, body, ok := protocol.DecodeDelivery(line); ok {
			return Incoming{From: from, Body: body}, nil
		}
	}
	return Incoming{Body: line}, nil
}

// Receive returns an iterator over delivered messages. Iteration ends when
// the server closes the connection. Error responses of the server and read
// failures are yielded once before stopping.
func (c *Client) Receive() iter.Seq2[Incoming, error] {
	return func(yield func(Incoming, error) bool) {
		for line, err := range c.conn.Lines() {
			if err != nil {
				yield(Incoming{}, err)
				return
			}
			msg, err := c.decode(line)
			if err != nil {
				yield(Incoming{}, err)
				return
			}
			if !yield(msg, nil) {
				return
			}
		}
	}
}

func (c *Client) Close() error {
	return c.conn.Close()
}
