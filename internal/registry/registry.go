// Where: internal/registry/registry.go
// What: Process-wide name -> wrapper registry.
// Why: Model the runtime side that generated stubs register into at startup.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/ProskuraPD/glyreg/internal/domain/registration"
)

var (
	// ErrDuplicate is returned when a key is registered twice.
	ErrDuplicate = errors.New("duplicate registration")
	// ErrNotFound is returned by New for unknown keys.
	ErrNotFound = errors.New("registration not found")
)

// Wrapper presents a native or interpreted implementation behind one
// zero-argument factory.
type Wrapper interface {
	Kind() registration.Kind
	Target() string
	New() (any, error)
}

// Registry maps registration keys to wrappers. The zero value is not
// usable; call NewRegistry.
type Registry struct {
	mu       sync.RWMutex
	wrappers map[string]Wrapper
}

func NewRegistry() *Registry {
	return &Registry{wrappers: map[string]Wrapper{}}
}

// Default is populated from init functions, the same way a generated stub
// populates the runtime registry before main runs.
var Default = NewRegistry()

// Register adds wrapper under name. An existing key is never overwritten.
func (r *Registry) Register(name string, wrapper Wrapper) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("register: name is required")
	}
	if wrapper == nil {
		return fmt.Errorf("register %q: wrapper is required", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.wrappers[name]; ok {
		return fmt.Errorf("%w: %q already bound to %s %s", ErrDuplicate, name, existing.Kind(), existing.Target())
	}
	r.wrappers[name] = wrapper
	return nil
}

// MustRegister is Register for init functions: a failed registration
// aborts startup.
func (r *Registry) MustRegister(name string, wrapper Wrapper) {
	if err := r.Register(name, wrapper); err != nil {
		panic(err)
	}
}

func (r *Registry) Lookup(name string) (Wrapper, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	wrapper, ok := r.wrappers[name]
	return wrapper, ok
}

// New constructs a fresh instance from the wrapper registered under name.
func (r *Registry) New(name string) (any, error) {
	wrapper, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	instance, err := wrapper.New()
	if err != nil {
		return nil, fmt.Errorf("construct %q: %w", name, err)
	}
	return instance, nil
}

// Names returns the registered keys in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.wrappers))
	for name := range r.wrappers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Register(name string, wrapper Wrapper) error {
	return Default.Register(name, wrapper)
}

func MustRegister(name string, wrapper Wrapper) {
	Default.MustRegister(name, wrapper)
}

func Lookup(name string) (Wrapper, bool) {
	return Default.Lookup(name)
}
