package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"msg-relay-go/internal/app/relay"
	"msg-relay-go/internal/diag"
	"msg-relay-go/internal/protocol"
	"msg-relay-go/internal/services/networking"

	"go.uber.org/dig"
)

type relayService interface {
	NewSession(name string, conn networking.Connection) *relay.Session
	Register(ctx context.Context, session *relay.Session) error
	Deregister(ctx context.Context, session *relay.Session)
	Route(ctx context.Context, from, to, body string) (relay.RouteResult, error)
}

type CommandHandlerDeps struct {
	dig.In

	RootLogger *slog.Logger

	// components
	Relay relayService
}

// CommandHandler drives a single connection: reads the client name,
// registers the session and routes every following line.
type CommandHandler struct {
	deps   CommandHandlerDeps
	logger *slog.Logger
}

func (h *CommandHandler) trace(ctx context.Context, msg string, args ...any) {
	h.logger.DebugContext(ctx, msg, args...)
}

func (h *CommandHandler) reject(ctx context.Context, con networking.Connection, code string, cause error) error {
	h.logger.WarnContext(ctx, "Protocol violation", slog.String("code", code), diag.ErrAttr(cause))
	return con.WriteLine(protocol.ErrorResponse(code))
}

func (h *CommandHandler) routeLines(ctx context.Context, con networking.Connection, name string) error {
	for line, err := range con.Lines() {
		if err != nil {
			if errors.Is(err, networking.ErrLineTooLong) {
				return h.reject(ctx, con, protocol.CodeBadLine, err)
			}
			if errors.Is(err, networking.ErrConnectionLost) {
				h.logger.InfoContext(ctx, "Connection lost", diag.ErrAttr(err))
				return nil
			}
			return err
		}

		to, body, err := protocol.DecodeRoute(line)
		if err != nil {
			return h.reject(ctx, con, protocol.CodeBadLine, err)
		}
		if _, err = h.deps.Relay.Route(ctx, name, to, body); err != nil {
			return h.reject(ctx, con, protocol.CodeBadLine, err)
		}
	}
	h.trace(ctx, "Client disconnected")
	return nil
}

func (h *CommandHandler) Handle(ctx context.Context, con networking.Connection) error {
	name, err := con.ReadLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			h.trace(ctx, "Connection closed before name was sent")
			return nil
		}
		return fmt.Errorf("failed to read client name: %w", err)
	}
	if err = protocol.ValidateName(name); err != nil {
		return h.reject(ctx, con, protocol.CodeBadName, err)
	}
	ctx = diag.ContextWithAttrs(ctx, slog.String("clientName", name))

	session := h.deps.Relay.NewSession(name, con)
	if err = h.deps.Relay.Register(ctx, session); err != nil {
		if errors.Is(err, relay.ErrNameInUse) {
			return h.reject(ctx, con, protocol.CodeNameInUse, err)
		}
		return fmt.Errorf("failed to register session: %w", err)
	}
	defer h.deps.Relay.Deregister(ctx, session)

	served := make(chan error, 1)
	go func() {
		served <- session.Serve(ctx)
	}()

	routeErr := h.routeLines(ctx, con, name)
	session.Close()
	if serveErr := <-served; serveErr != nil {
		h.logger.InfoContext(ctx, "Delivery stopped", diag.ErrAttr(serveErr))
	}
	return routeErr
}

func NewHandler(deps CommandHandlerDeps) *CommandHandler {
	return &CommandHandler{
		deps:   deps,
		logger: deps.RootLogger.WithGroup("tcp.server.handler"),
	}
}
