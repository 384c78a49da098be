// Where: internal/command/error_helpers.go
// What: Shared CLI error exit path.
// Why: Every failure reaches the build system as one stderr line and exit code 1.
package command

import (
	"io"
)

// exitWithError prints err to out and returns exit code 1.
func exitWithError(out io.Writer, err error) int {
	newUI(out).Error(err.Error())
	return 1
}
