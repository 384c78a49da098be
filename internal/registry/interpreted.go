// Where: internal/registry/interpreted.go
// What: Wrapper that loads its implementation through the yaegi interpreter.
// Why: Register implementations that are only available as source at runtime.
package registry

import (
	"fmt"
	"go/build"
	"path"
	"reflect"
	"strings"
	"sync"

	"github.com/ProskuraPD/glyreg/internal/domain/registration"
	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

// InterpretedOption configures an interpreted wrapper.
type InterpretedOption func(*interpretedWrapper)

// WithSourceRoot sets the GOPATH-style root whose src/ directory holds
// interpreted packages. The default is the build GOPATH.
func WithSourceRoot(root string) InterpretedOption {
	return func(w *interpretedWrapper) {
		w.sourceRoot = root
	}
}

type interpretedWrapper struct {
	module     string
	sourceRoot string

	once    sync.Once
	symbol  reflect.Value
	loadErr error
}

// NewInterpreted returns a wrapper for module, written as
// "import.path.Symbol" with dots separating path elements. The package is
// interpreted on the first call to New. When Symbol is a func() any or
// func() (any, error) it is called on every New; any other symbol value is
// returned as is.
func NewInterpreted(module string, opts ...InterpretedOption) Wrapper {
	w := &interpretedWrapper{
		module:     module,
		sourceRoot: build.Default.GOPATH,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *interpretedWrapper) Kind() registration.Kind {
	return registration.KindInterpreted
}

func (w *interpretedWrapper) Target() string {
	return w.module
}

func (w *interpretedWrapper) New() (any, error) {
	w.once.Do(w.load)
	if w.loadErr != nil {
		return nil, w.loadErr
	}

	switch fn := w.symbol.Interface().(type) {
	case func() any:
		return fn(), nil
	case func() (any, error):
		return fn()
	}
	if w.symbol.Kind() == reflect.Func {
		return nil, fmt.Errorf("%s: unsupported constructor signature %s", w.module, w.symbol.Type())
	}
	return w.symbol.Interface(), nil
}

func (w *interpretedWrapper) load() {
	importPath, pkgName, symbol, err := splitModule(w.module)
	if err != nil {
		w.loadErr = err
		return
	}

	i := interp.New(interp.Options{GoPath: w.sourceRoot})
	if err := i.Use(stdlib.Symbols); err != nil {
		w.loadErr = fmt.Errorf("load stdlib symbols: %w", err)
		return
	}
	if _, err := i.Eval(fmt.Sprintf("import %q", importPath)); err != nil {
		w.loadErr = fmt.Errorf("import %s: %w", importPath, err)
		return
	}
	value, err := i.Eval(pkgName + "." + symbol)
	if err != nil {
		w.loadErr = fmt.Errorf("resolve %s: %w", w.module, err)
		return
	}
	if !value.IsValid() {
		w.loadErr = fmt.Errorf("resolve %s: symbol has no value", w.module)
		return
	}
	w.symbol = value
}

// splitModule turns "scoring.model.Scorer" into import path
// "scoring/model", package name "model" and symbol "Scorer".
func splitModule(module string) (string, string, string, error) {
	parts := strings.Split(strings.TrimSpace(module), ".")
	if len(parts) < 2 {
		return "", "", "", fmt.Errorf("module %q: expected <package path>.<symbol>", module)
	}
	for _, part := range parts {
		if part == "" {
			return "", "", "", fmt.Errorf("module %q: empty path element", module)
		}
	}
	importPath := path.Join(parts[:len(parts)-1]...)
	return importPath, path.Base(importPath), parts[len(parts)-1], nil
}
