package commands

import (
	"msg-relay-go/internal/app/relay"
	"msg-relay-go/internal/di"

	"go.uber.org/dig"
)

func Register(container *dig.Container) error {
	return di.ProvideAll(container,
		di.ProvideAs[*relay.Relay, relayService](),

		NewHandler,
	)
}
