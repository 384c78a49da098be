// Where: internal/infra/fileops/file_ops.go
// What: Filesystem operations used by stub generation and inspection.
// Why: Keep write semantics (truncate, no mkdir) in one place.
package fileops

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrIO matches every *IOError via errors.Is.
var ErrIO = errors.New("io error")

// IOError wraps a filesystem failure on Path.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// WriteFile truncates path and writes content to it. Parent directories
// are not created and the write is not atomic.
func WriteFile(path, content string) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = &IOError{Op: "close", Path: path, Err: closeErr}
		}
	}()

	if _, err := io.WriteString(out, content); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// ReadFile returns the content of path.
func ReadFile(path string) (string, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return "", &IOError{Op: "read", Path: path, Err: err}
	}
	return string(payload), nil
}

func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
