// Where: cmd/glyreg/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"io"
	"os"

	"github.com/ProskuraPD/glyreg/internal/command"
	"github.com/ProskuraPD/glyreg/internal/infra/config"
	"github.com/ProskuraPD/glyreg/internal/infra/fileops"
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// buildDependencies constructs the runtime dependencies of the CLI: the
// process streams, the stub writer, the stub reader and the profile loader.
func buildDependencies() command.Dependencies {
	return command.Dependencies{
		Out:         stdout,
		ErrOut:      stderr,
		Write:       fileops.WriteFile,
		ReadFile:    fileops.ReadFile,
		LoadProfile: config.LoadProfile,
	}
}
