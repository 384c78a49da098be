// Where: internal/command/output.go
// What: Output helpers for command adapters.
// Why: Centralize UserInterface construction.
package command

import (
	"io"

	"github.com/ProskuraPD/glyreg/internal/infra/ui"
	buildversion "github.com/ProskuraPD/glyreg/internal/version"
)

var version = buildversion.GetVersion

func newUI(out io.Writer) ui.UserInterface {
	return ui.NewUI(out, false)
}
