// Where: internal/command/branding.go
// What: CLI naming for usage text.
// Why: Build wrappers may expose the tool under another command name.
package command

import (
	"os"
	"strings"

	"github.com/ProskuraPD/glyreg/internal/meta"
)

func cliName() string {
	name := strings.TrimSpace(os.Getenv(meta.EnvCLICommand))
	if name == "" {
		name = strings.TrimSpace(meta.Slug)
	}
	if name == "" {
		name = meta.AppName
	}
	return name
}
