package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"msg-relay-go/internal/app/client"
	"msg-relay-go/internal/diag"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/dig"
	"golang.org/x/term"
)

const leaveCommand = "goodbye"

type runChatCommandParams struct {
	dig.In `ignore-unexported:"true"`

	RootLogger *slog.Logger

	// config
	SenderFraming bool `name:"config.client.senderFraming"`

	// client specific deps
	ConnectionDialer

	// Expected in a form host:port
	serverAddress string
	name          string
	peer          string
	interactive   bool
	input         io.Reader
	output        io.Writer
}

type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

func formatIncoming(msg client.Incoming) string {
	return lo.If(msg.From != "", msg.From+">>"+msg.Body).Else(msg.Body)
}

func connectClient(
	ctx context.Context,
	logger *slog.Logger,
	dialer ConnectionDialer,
	address, name string,
	senderFraming bool,
) (*client.Client, error) {
	logger.DebugContext(ctx, "Establishing connection", slog.String("address", address))
	conn, err := dialer.DialConnection(ctx, "tcp", address)
	if err != nil {
		return nil, err
	}
	c, err := client.Connect(conn, name, client.WithSenderFraming(senderFraming))
	if err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			logger.DebugContext(ctx, "Connection cleanup failed", diag.ErrAttr(closeErr))
		}
		return nil, err
	}
	return c, nil
}

func runChatCommand(ctx context.Context, params runChatCommandParams) error {
	logger := params.RootLogger.WithGroup("client")
	c, err := connectClient(ctx, logger, params.ConnectionDialer, params.serverAddress, params.name, params.SenderFraming)
	if err != nil {
		return err
	}

	output := &syncWriter{w: params.output}
	prompt := func() {
		if params.interactive {
			fmt.Fprint(output, params.name+">> ")
		}
	}

	received := make(chan error, 1)
	go func() {
		for msg, recvErr := range c.Receive() {
			if recvErr != nil {
				received <- recvErr
				return
			}
			fmt.Fprintln(output, formatIncoming(msg))
			prompt()
		}
		received <- nil
	}()

	typed := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(params.input)
		prompt()
		for scanner.Scan() {
			line := scanner.Text()
			if strings.HasPrefix(line, leaveCommand) {
				typed <- nil
				return
			}
			if sendErr := c.Send(params.peer, line); sendErr != nil {
				typed <- sendErr
				return
			}
			prompt()
		}
		typed <- scanner.Err()
	}()

	select {
	case err = <-typed:
		if closeErr := c.Close(); closeErr != nil {
			logger.DebugContext(ctx, "Connection cleanup failed", diag.ErrAttr(closeErr))
		}
		if recvErr := <-received; recvErr != nil {
			logger.DebugContext(ctx, "Receiving stopped", diag.ErrAttr(recvErr))
		}
		return err
	case err = <-received:
		if closeErr := c.Close(); closeErr != nil {
			logger.DebugContext(ctx, "Connection cleanup failed", diag.ErrAttr(closeErr))
		}
		if err == nil {
			fmt.Fprintln(output, "Server closed the connection")
		}
		return err
	}
}

func newChatCmd(container *dig.Container) *cobra.Command {
	serverAddress := "localhost:1025"
	cmd := &cobra.Command{
		Use:   "chat <name> <peer>",
		Short: "Connect as <name> and exchange messages with <peer>",
		Args:  cobra.ExactArgs(2),
	}
	cmd.Flags().StringVarP(&serverAddress, "address", "a", serverAddress, "Server address to connect to")
	noop := false
	cmd.Flags().BoolVar(
		&noop,
		"noop",
		false,
		"Do not start. Just setup deps and exit. Useful for testing if setup is all working.",
	)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		return container.Invoke(func(params runChatCommandParams) error {
			params.serverAddress = serverAddress
			params.name = args[0]
			params.peer = args[1]
			params.input = os.Stdin
			params.output = os.Stdout
			params.interactive = term.IsTerminal(int(os.Stdin.Fd()))
			if noop {
				params.RootLogger.InfoContext(ctx, "NOOP: Exiting now", slog.String("address", params.serverAddress))
				return nil
			}
			return runChatCommand(ctx, params)
		})
	}
	return cmd
}
