// Where: internal/domain/registration/implementation.go
// What: Native/interpreted implementation variants of a registration.
// Why: Keep the "exactly one variant" rule in one constructor.
package registration

import "strings"

type Kind string

const (
	KindNative      Kind = "native"
	KindInterpreted Kind = "interpreted"
)

func (k Kind) String() string {
	return string(k)
}

// Implementation is the wrapped payload of a registration. The only
// implementations are Native and Interpreted.
type Implementation interface {
	Kind() Kind
	// Target is the native type name or the interpreted module path.
	Target() string

	sealed()
}

// Native names a type that is constructed with no arguments.
type Native struct {
	Type string
}

func (Native) Kind() Kind       { return KindNative }
func (n Native) Target() string { return n.Type }
func (Native) sealed()          {}

// Interpreted names a module object loaded through the interpreter bridge.
type Interpreted struct {
	Module string
}

func (Interpreted) Kind() Kind       { return KindInterpreted }
func (i Interpreted) Target() string { return i.Module }
func (Interpreted) sealed()          {}

// SelectImplementation builds the implementation from the two mutually
// exclusive selectors. Exactly one of them must be non-empty.
func SelectImplementation(native, interpreted string) (Implementation, error) {
	native = strings.TrimSpace(native)
	interpreted = strings.TrimSpace(interpreted)
	switch {
	case native != "" && interpreted != "":
		return nil, configErr("--native and --interpreted are mutually exclusive")
	case native != "":
		return Native{Type: native}, nil
	case interpreted != "":
		return Interpreted{Module: interpreted}, nil
	default:
		return nil, configErr("one of --native or --interpreted is required")
	}
}
