// Where: internal/generator/generate.go
// What: Render a stub and write it to the requested output path.
// Why: Keep the single filesystem side effect behind one entrypoint.
package generator

import (
	"fmt"

	"github.com/ProskuraPD/glyreg/internal/domain/registration"
	"github.com/ProskuraPD/glyreg/internal/infra/fileops"
)

// WriteFunc writes content to path, replacing what was there.
type WriteFunc func(path, content string) error

// Generate renders req and writes the stub to req.OutputPath. Nothing is
// written when rendering fails. A nil write uses fileops.WriteFile.
func Generate(req registration.Request, profile Profile, write WriteFunc) error {
	content, err := Render(req, profile)
	if err != nil {
		return fmt.Errorf("render registration stub %q: %w", req.Name, err)
	}
	if write == nil {
		write = fileops.WriteFile
	}
	return write(req.OutputPath, content)
}
