package networking

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"sync"
	"time"
)

const defaultMaxLineBytes = 64 * 1024

var (
	// ErrConnectionLost indicates that the peer went away or the network failed.
	ErrConnectionLost = errors.New("connection lost")

	// ErrLineTooLong is returned when the peer sends a line above the configured limit.
	ErrLineTooLong = errors.New("line too long")
)

// Connection is a line framed bidirectional stream to a single peer.
// Lines are terminated with '\n', the terminator is never part of the line.
type Connection interface {
	ID() string

	// ReadLine blocks until next complete line is available.
	// Returns io.EOF when the peer closes the stream.
	ReadLine() (string, error)

	// Lines returns a fresh iterator over incoming lines. Iteration stops
	// silently on io.EOF, other errors are yielded once before stopping.
	Lines() iter.Seq2[string, error]

	// WriteLine writes data followed by the terminator. Safe for concurrent use.
	WriteLine(data string) error

	Close() error
}

type writeDeadliner interface {
	SetWriteDeadline(t time.Time) error
}

type ConnectionOpt func(c *connection)

// WithWriteTimeout bounds every write if the stream supports write deadlines.
func WithWriteTimeout(timeout time.Duration) ConnectionOpt {
	return func(c *connection) {
		c.writeTimeout = timeout
	}
}

func WithMaxLineBytes(value int) ConnectionOpt {
	return func(c *connection) {
		if value > 0 {
			c.maxLineBytes = value
		}
	}
}

type connection struct {
	id           string
	stream       io.ReadWriter
	reader       *bufio.Reader
	writeTimeout time.Duration
	maxLineBytes int

	readMu  sync.Mutex
	writeMu sync.Mutex

	closeOnce sync.Once
	closeErr  error
}

func (c *connection) ID() string {
	return c.id
}

func (c *connection) ReadLine() (string, error) {
	c.readMu.Lock()
	defer c.readMu.Unlock()

	var line []byte
	for {
		chunk, isPrefix, err := c.reader.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", io.EOF
			}
			return "", fmt.Errorf("%w: %w", ErrConnectionLost, err)
		}
		if len(line)+len(chunk) > c.maxLineBytes {
			return "", fmt.Errorf("%w: more than %d bytes", ErrLineTooLong, c.maxLineBytes)
		}
		line = append(line, chunk...)
		if !isPrefix {
			return string(line), nil
		}
	}
}

func (c *connection) Lines() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for {
			line, err := c.ReadLine()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield("", err)
				return
			}
			if !yield(line, nil) {
				return
			}
		}
	}
}

func (c *connection) WriteLine(data string) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if deadliner, ok := c.stream.(writeDeadliner); ok && c.writeTimeout > 0 {
		if err := deadliner.SetWriteDeadline(time.Now().Add(c.writeTimeout)); err != nil {
			return fmt.Errorf("%w: %w", ErrConnectionLost, err)
		}
	}

	if _, err := c.stream.Write(append([]byte(data), '\n')); err != nil {
		return fmt.Errorf("%w: %w", ErrConnectionLost, err)
	}
	return nil
}

func (c *connection) Close() error {
	closer, ok := c.stream.(io.Closer)
	if !ok {
		return nil
	}
	c.closeOnce.Do(func() {
		c.closeErr = closer.Close()
	})
	return c.closeErr
}

func NewConnection(id string, stream io.ReadWriter, opts ...ConnectionOpt) Connection {
	c := &connection{
		id:           id,
		stream:       stream,
		reader:       bufio.NewReader(stream),
		maxLineBytes: defaultMaxLineBytes,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
