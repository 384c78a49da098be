// Where: internal/domain/registration/request.go
// What: Validated input of a single stub generation.
// Why: Render from a value that already satisfies every input rule.
package registration

import (
	"fmt"
	"strings"
)

// Request is one generation request. Build it with NewRequest.
type Request struct {
	Name           string
	OutputPath     string
	Includes       []string
	Implementation Implementation
}

// NewRequest validates the inputs and returns an immutable request.
// Include entries are kept verbatim and in order.
func NewRequest(name, output string, includes []string, impl Implementation) (Request, error) {
	if err := validateName(name); err != nil {
		return Request{}, err
	}
	if strings.TrimSpace(output) == "" {
		return Request{}, configErr("output path is required")
	}
	if impl == nil {
		return Request{}, configErr("one of --native or --interpreted is required")
	}
	if strings.TrimSpace(impl.Target()) == "" {
		return Request{}, configErr(fmt.Sprintf("%s implementation is empty", impl.Kind()))
	}
	return Request{
		Name:           name,
		OutputPath:     output,
		Includes:       append([]string(nil), includes...),
		Implementation: impl,
	}, nil
}

// validateName rejects keys that cannot live inside a C string literal.
func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return configErr("name is required")
	}
	if strings.ContainsAny(name, "\"\n\r") {
		return configErr(fmt.Sprintf("name %q contains a quote or line break", name))
	}
	return nil
}
