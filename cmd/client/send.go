package main

import (
	"context"
	"log/slog"
	"strings"

	"msg-relay-go/internal/diag"

	"github.com/spf13/cobra"
	"go.uber.org/dig"
)

type runSendCommandParams struct {
	dig.In `ignore-unexported:"true"`

	RootLogger *slog.Logger

	// config
	SenderFraming bool `name:"config.client.senderFraming"`

	// client specific deps
	ConnectionDialer

	serverAddress string
	name          string
	peer          string
	message       string
}

// runSendCommand connects, sends a single message and disconnects.
// Rejections of the server are not awaited.
func runSendCommand(ctx context.Context, params runSendCommandParams) error {
	logger := params.RootLogger.WithGroup("client")
	c, err := connectClient(ctx, logger, params.ConnectionDialer, params.serverAddress, params.name, params.SenderFraming)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := c.Close(); closeErr != nil {
			logger.ErrorContext(ctx, "Connection cleanup failed", diag.ErrAttr(closeErr))
		}
	}()

	if err = c.Send(params.peer, params.message); err != nil {
		return err
	}
	logger.InfoContext(ctx, "Message sent", slog.String("to", params.peer))
	return nil
}

func newSendCmd(container *dig.Container) *cobra.Command {
	serverAddress := "localhost:1025"
	cmd := &cobra.Command{
		Use:   "send <name> <peer> <message...>",
		Short: "Connect as <name>, send a single message to <peer> and disconnect",
		Args:  cobra.MinimumNArgs(3),
	}
	cmd.Flags().StringVarP(&serverAddress, "address", "a", serverAddress, "Server address to connect to")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		return container.Invoke(func(params runSendCommandParams) error {
			params.serverAddress = serverAddress
			params.name = args[0]
			params.peer = args[1]
			params.message = strings.Join(args[2:], " ")
			return runSendCommand(ctx, params)
		})
	}
	return cmd
}
