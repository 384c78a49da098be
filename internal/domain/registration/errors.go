// Where: internal/domain/registration/errors.go
// What: Error kinds raised while assembling a generation request.
// Why: Let the command layer tell bad input apart from I/O failures.
package registration

import "errors"

// ErrConfiguration matches every *ConfigurationError via errors.Is.
var ErrConfiguration = errors.New("configuration error")

// ConfigurationError reports invalid generator input. It is raised before
// any file is opened.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

func configErr(reason string) error {
	return &ConfigurationError{Reason: reason}
}
