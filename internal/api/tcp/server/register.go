package server

import (
	"msg-relay-go/internal/api/tcp/commands"
	"msg-relay-go/internal/di"

	"go.uber.org/dig"
)

func Register(container *dig.Container) error {
	return di.ProvideAll(container,
		di.ProvideAs[*commands.CommandHandler, commandHandler](),

		NewListener,
	)
}
