package main

import (
	"context"
	"log/slog"
	"os/signal"
	"time"

	"msg-relay-go/internal/api/tcp/server"
	"msg-relay-go/internal/app/relay"
	"msg-relay-go/internal/diag"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/dig"
	"golang.org/x/sys/unix"
)

type runTCPServerParams struct {
	dig.In `ignore-unexported:"true"`

	RootLogger *slog.Logger

	*server.Listener
	*relay.Relay

	noop bool
}

func shutdown(ctx context.Context, params runTCPServerParams) {
	logger := params.RootLogger
	logger.InfoContext(ctx, "Trying to shut down gracefully",
		slog.Any("connectedClients", params.Relay.ConnectedClients()),
	)
	ts := time.Now()
	params.Relay.CloseAll()
	if err := params.Listener.Close(); err != nil {
		logger.ErrorContext(ctx, "graceful shutdown failed", diag.ErrAttr(err))
	}
	if mailboxes := params.Relay.Mailboxes(); len(mailboxes) > 0 {
		logger.WarnContext(ctx, "Dropping undelivered messages",
			slog.Int("recipients", len(mailboxes)),
			slog.Int("messages", lo.Sum(lo.Values(mailboxes))),
		)
	}
	logger.InfoContext(ctx, "Service stopped",
		slog.Duration("duration", time.Since(ts)),
	)
}

func runTCPServer(params runTCPServerParams) error {
	rootLogger := params.RootLogger
	rootCtx := context.Background()

	signalCtx, cancel := signal.NotifyContext(rootCtx, unix.SIGINT, unix.SIGTERM)
	defer cancel()

	startupErrors := make(chan error, 1)
	go func() {
		if params.noop {
			rootLogger.InfoContext(signalCtx, "NOOP: Exiting now")
			startupErrors <- nil
			return
		}

		startupErrors <- params.Listener.Start(signalCtx)
	}()

	var startupErr error
	select {
	case startupErr = <-startupErrors:
		if startupErr != nil {
			rootLogger.ErrorContext(rootCtx, "Server error", diag.ErrAttr(startupErr))
		} else {
			rootLogger.InfoContext(rootCtx, "Server stopped")
		}
	case <-signalCtx.Done(): // coverage-ignore
		shutdown(rootCtx, params)
	}
	return startupErr
}

func newTCPServerCmd(container *dig.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tcp-server",
		Short: "Command to start tcp server",
	}
	noop := false
	cmd.Flags().BoolVar(
		&noop,
		"noop",
		false,
		"Do not start. Just setup deps and exit. Useful for testing if setup is all working.",
	)
	cmd.RunE = func(_ *cobra.Command, _ []string) error {
		return container.Invoke(func(params runTCPServerParams) error {
			params.noop = noop
			return runTCPServer(params)
		})
	}
	return cmd
}
