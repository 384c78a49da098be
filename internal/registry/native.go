// Where: internal/registry/native.go
// What: Wrapper for compiled-in Go types.
// Why: Construct a registered type with no arguments, like TCppWrapper<T>.
package registry

import (
	"fmt"
	"reflect"

	"github.com/ProskuraPD/glyreg/internal/domain/registration"
)

// Initializer is implemented by native types that need setup after
// zero-value construction.
type Initializer interface {
	Init() error
}

type nativeWrapper[T any] struct{}

// NewNative returns a wrapper whose New yields a fresh *T.
func NewNative[T any]() Wrapper {
	return nativeWrapper[T]{}
}

func (nativeWrapper[T]) Kind() registration.Kind {
	return registration.KindNative
}

func (nativeWrapper[T]) Target() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

func (w nativeWrapper[T]) New() (any, error) {
	instance := new(T)
	if init, ok := any(instance).(Initializer); ok {
		if err := init.Init(); err != nil {
			return nil, fmt.Errorf("init %s: %w", w.Target(), err)
		}
	}
	return instance, nil
}
