// Where: internal/command/generate.go
// What: CLI adapter for registration stub generation.
// Why: Turn parsed flags into a validated request and a single file write.
package command

import (
	"github.com/ProskuraPD/glyreg/internal/domain/registration"
	"github.com/ProskuraPD/glyreg/internal/generator"
	"go.uber.org/zap"
)

// GenerateCmd defines the generate command arguments and flags.
type GenerateCmd struct {
	Name        string   `arg:"" help:"Registry key the wrapper is registered under"`
	Output      string   `arg:"" help:"Destination file; overwritten, parent directory must exist"`
	Includes    []string `arg:"" optional:"" sep:"none" help:"Headers included before the support headers, in order"`
	Native      string   `placeholder:"IMPL" help:"Native type constructed with no arguments"`
	Interpreted string   `placeholder:"MODULE" help:"Module object loaded through the interpreter bridge"`
	Profile     string   `env:"GLYREG_PROFILE" help:"Runtime profile YAML overriding support headers and symbol names"`
}

// Validate enforces the required, mutually exclusive --native/--interpreted
// group before any I/O happens.
func (c GenerateCmd) Validate() error {
	_, err := registration.SelectImplementation(c.Native, c.Interpreted)
	return err
}

func runGenerate(cli CLI, deps Dependencies, logger *zap.Logger) int {
	cmd := cli.Generate
	impl, err := registration.SelectImplementation(cmd.Native, cmd.Interpreted)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	req, err := registration.NewRequest(cmd.Name, cmd.Output, cmd.Includes, impl)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	profile, err := deps.LoadProfile(cmd.Profile)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	logger.Debug("generating registration stub",
		zap.String("name", req.Name),
		zap.Stringer("kind", impl.Kind()),
		zap.String("target", impl.Target()),
		zap.Strings("includes", req.Includes),
		zap.String("output", req.OutputPath),
		zap.String("profile", cmd.Profile),
	)
	if err := generator.Generate(req, profile, deps.Write); err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	logger.Debug("wrote registration stub", zap.String("output", req.OutputPath))
	return 0
}
