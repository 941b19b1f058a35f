package main

import (
	"context"
	"testing"
	"time"

	"msg-relay-go/internal/services"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialer(t *testing.T) {
	makeMockDeps := func() ConnectionDialerDeps {
		return ConnectionDialerDeps{
			IOTimeout:     10 * time.Second,
			UUIDGenerator: services.NewUUIDGenerator(),
		}
	}

	t.Run("should establish connection", func(t *testing.T) {
		srv := newMockTCPServer()
		require.NoError(t, srv.Start())
		defer srv.stop()

		dialer := newConnectionDialer(makeMockDeps())
		conn, err := dialer.DialConnection(context.Background(), "tcp", srv.addr())
		require.NoError(t, err)
		defer conn.Close()
		assert.NotEmpty(t, conn.ID())

		mockData := faker.Sentence()
		require.NoError(t, conn.WriteLine(mockData))
		gotRes, err := conn.ReadLine()
		require.NoError(t, err)
		assert.Equal(t, mockData, gotRes)

		assert.Equal(t, []string{mockData}, srv.getLines())
	})
	t.Run("should handle connection error", func(t *testing.T) {
		srv := newMockTCPServer()
		require.NoError(t, srv.Start())
		address := srv.addr()
		srv.stop()

		dialer := newConnectionDialer(makeMockDeps())
		_, err := dialer.DialConnection(context.Background(), "tcp", address)
		require.ErrorContains(t, err, "error connecting to server")
	})
}
