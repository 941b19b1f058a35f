package di

import (
	"fmt"
	"reflect"

	"go.uber.org/dig"
)

// ConstructorWithOpts allows registering a constructor together with dig provide options
// (e.g. dig.Name) in a single ProvideAll call.
type ConstructorWithOpts struct {
	Constructor any
	Options     []dig.ProvideOption
}

// ProvideAll registers all given constructors in the container.
// Each item may be a plain constructor function or a ConstructorWithOpts.
func ProvideAll(container *dig.Container, providers ...any) error {
	for i, provider := range providers {
		if err := provide(container, provider); err != nil {
			return fmt.Errorf("failed to provide dependency %d: %w", i, err)
		}
	}
	return nil
}

func provide(container *dig.Container, provider any) error {
	if withOpts, ok := provider.(ConstructorWithOpts); ok {
		return container.Provide(withOpts.Constructor, withOpts.Options...)
	}
	return container.Provide(provider)
}

// ProvideValue registers a constructor that always returns the given value.
func ProvideValue[T any](value T, opts ...dig.ProvideOption) ConstructorWithOpts {
	return ConstructorWithOpts{
		Constructor: func() T { return value },
		Options:     opts,
	}
}

// ProvideAs exposes already registered TSource as TTarget.
// TSource must implement TTarget, otherwise the constructor will fail when invoked.
func ProvideAs[TSource any, TTarget any](opts ...dig.ProvideOption) ConstructorWithOpts {
	return ConstructorWithOpts{
		Constructor: func(source TSource) (TTarget, error) {
			target, ok := any(source).(TTarget)
			if !ok {
				var zero TTarget
				return zero, fmt.Errorf(
					"%v does not implement %v",
					reflect.TypeFor[TSource](),
					reflect.TypeFor[TTarget](),
				)
			}
			return target, nil
		},
		Options: opts,
	}
}
