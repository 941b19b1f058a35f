package services

import (
	"msg-relay-go/internal/di"

	"go.uber.org/dig"
)

func Register(container *dig.Container) error {
	return di.ProvideAll(container,
		NewTimeProvider,
		NewUUIDGenerator,
	)
}
