package main

import (
	"context"
	"fmt"
	"net"
	"time"

	"msg-relay-go/internal/services"
	"msg-relay-go/internal/services/networking"

	"go.uber.org/dig"
)

type ConnectionDialer interface {
	// DialConnection establishes new connection to the server
	DialConnection(ctx context.Context, network, address string) (networking.Connection, error)
}

type ConnectionDialerFunc func(ctx context.Context, network, address string) (networking.Connection, error)

func (f ConnectionDialerFunc) DialConnection(
	ctx context.Context,
	network, address string,
) (networking.Connection, error) {
	return f(ctx, network, address)
}

var _ ConnectionDialer = ConnectionDialerFunc(nil)

type ConnectionDialerDeps struct {
	dig.In

	// config
	IOTimeout time.Duration `name:"config.client.ioTimeout"`

	// services
	services.UUIDGenerator
}

func newConnectionDialer(deps ConnectionDialerDeps) ConnectionDialer {
	dialer := net.Dialer{Timeout: deps.IOTimeout}
	return ConnectionDialerFunc(func(ctx context.Context, network, address string) (networking.Connection, error) {
		conn, err := dialer.DialContext(ctx, network, address)
		if err != nil {
			return nil, fmt.Errorf("error connecting to server: %w", err)
		}
		return networking.NewConnection(
			deps.UUIDGenerator(),
			conn,
			networking.WithWriteTimeout(deps.IOTimeout),
		), nil
	})
}
