package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"sync"
	"time"

	"msg-relay-go/internal/diag"
	"msg-relay-go/internal/services"
	"msg-relay-go/internal/services/networking"

	"github.com/samber/lo"
	"go.uber.org/dig"
	"golang.org/x/sync/errgroup"
)

type commandHandler interface {
	Handle(ctx context.Context, con networking.Connection) error
}

type ListenerDeps struct {
	dig.In

	RootLogger *slog.Logger

	// config
	Host         string        `name:"config.tcpServer.host"`
	Port         int           `name:"config.tcpServer.port"`
	WriteTimeout time.Duration `name:"config.tcpServer.writeTimeout"`
	MaxLineBytes int           `name:"config.tcpServer.maxLineBytes"`

	// components
	Handler commandHandler

	// services
	services.UUIDGenerator
}

// Listener accepts tcp connections and runs the handler for each of them.
// Every handler goroutine is tracked so Close can wait for all of them.
type Listener struct {
	deps      ListenerDeps
	logger    *slog.Logger
	listening chan struct{}

	mu       sync.Mutex
	listener net.Listener
	conns    map[string]net.Conn
	closed   bool
	tasks    errgroup.Group
}

func NewListener(deps ListenerDeps) *Listener {
	return &Listener{
		deps:      deps,
		logger:    deps.RootLogger.WithGroup("tcp.server"),
		listening: make(chan struct{}),
		conns:     make(map[string]net.Conn),
	}
}

func (l *Listener) processAcceptedConnection(ctx context.Context, id string, c net.Conn) {
	defer l.untrack(id)
	defer c.Close()

	ctx = diag.ContextWithAttrs(ctx,
		slog.String("connectionID", id),
		slog.String("remoteAddr", c.RemoteAddr().String()),
	)
	defer func() {
		if rec := recover(); rec != nil {
			l.logger.ErrorContext(ctx, "Connection handler panicked", slog.Any("panic", rec))
		}
	}()

	l.logger.InfoContext(ctx, "Connection accepted")
	con := networking.NewConnection(id, c,
		networking.WithWriteTimeout(l.deps.WriteTimeout),
		networking.WithMaxLineBytes(l.deps.MaxLineBytes),
	)
	if err := l.deps.Handler.Handle(ctx, con); err != nil {
		l.logger.ErrorContext(ctx, "Failed processing connection", diag.ErrAttr(err))
		return
	}
	l.logger.InfoContext(ctx, "Connection closed")
}

// track registers the connection and starts its handler unless the listener is closed.
func (l *Listener) track(ctx context.Context, c net.Conn) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return false
	}
	id := l.deps.UUIDGenerator()
	l.conns[id] = c
	l.tasks.Go(func() error {
		l.processAcceptedConnection(ctx, id, c)
		return nil
	})
	return true
}

func (l *Listener) untrack(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.conns, id)
}

// Start listens and serves connections until Close is called.
func (l *Listener) Start(ctx context.Context) error {
	address := net.JoinHostPort(l.deps.Host, strconv.Itoa(l.deps.Port))
	l.logger.InfoContext(ctx, "Starting tcp listener", slog.String("address", address))
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return listener.Close()
	}
	l.listener = listener
	l.mu.Unlock()
	close(l.listening)
	l.logger.InfoContext(ctx, "Listening", slog.String("address", listener.Addr().String()))

	for {
		c, acceptErr := listener.Accept()
		if acceptErr != nil {
			if errors.Is(acceptErr, net.ErrClosed) {
				return nil
			}
			l.logger.ErrorContext(ctx, "Failed to accept connection", diag.ErrAttr(acceptErr))
			continue
		}
		if !l.track(ctx, c) {
			_ = c.Close()
		}
	}
}

// WaitListening blocks until Start is ready to accept connections.
func (l *Listener) WaitListening() {
	<-l.listening
}

// Addr returns the address the listener is bound to. Nil until listening.
func (l *Listener) Addr() net.Addr {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.listener == nil {
		return nil
	}
	return l.listener.Addr()
}

// Close stops accepting, closes all open connections and waits for
// their handlers to finish.
func (l *Listener) Close() error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return nil
	}
	l.closed = true
	listener := l.listener
	conns := lo.Values(l.conns)
	l.mu.Unlock()

	var err error
	if listener != nil {
		err = listener.Close()
	}
	for _, c := range conns {
		_ = c.Close()
	}
	_ = l.tasks.Wait()
	return err
}
