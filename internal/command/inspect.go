// Where: internal/command/inspect.go
// What: CLI adapter that reports the registration stored in a stub.
// Why: Let build systems verify stubs without regenerating them.
package command

import (
	"fmt"

	"github.com/ProskuraPD/glyreg/internal/domain/registration"
	"github.com/ProskuraPD/glyreg/internal/generator"
	"github.com/ProskuraPD/glyreg/internal/infra/ui"
	"github.com/ProskuraPD/glyreg/internal/registry"
	"go.uber.org/zap"
)

// InspectCmd defines the inspect command arguments.
type InspectCmd struct {
	Stub       string `arg:"" help:"Generated stub to read"`
	Resolve    bool   `help:"Load an interpreted implementation through the registry to check it resolves"`
	SourceRoot string `name:"source-root" placeholder:"DIR" help:"GOPATH-style root holding interpreted packages (default: GOPATH)"`
}

func runInspect(cli CLI, deps Dependencies, logger *zap.Logger) int {
	cmd := cli.Inspect
	content, err := deps.ReadFile(cmd.Stub)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	reg, err := generator.Inspect(content)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	logger.Debug("inspected registration stub", zap.String("path", cmd.Stub), zap.String("name", reg.Name))

	rows := []ui.KeyValue{
		{Key: "name", Value: reg.Name},
		{Key: "kind", Value: reg.Implementation.Kind()},
		{Key: "implementation", Value: reg.Implementation.Target()},
		{Key: "includes", Value: reg.Includes},
		{Key: "helper", Value: reg.Helper + " " + reg.Instance},
	}
	if cmd.Resolve {
		resolved, err := resolveRegistration(reg, cmd.SourceRoot, logger)
		if err != nil {
			return exitWithError(deps.ErrOut, err)
		}
		rows = append(rows, ui.KeyValue{Key: "resolved", Value: resolved})
	}
	newUI(deps.Out).Block("Registration", rows)
	return 0
}

// resolveRegistration registers the stub's wrapper in a fresh registry and
// constructs one instance. Native types live in the host program and are
// reported as not resolvable here.
func resolveRegistration(reg generator.Registration, sourceRoot string, logger *zap.Logger) (string, error) {
	if reg.Implementation.Kind() != registration.KindInterpreted {
		return "skipped (native implementations resolve in the host program)", nil
	}

	var opts []registry.InterpretedOption
	if sourceRoot != "" {
		opts = append(opts, registry.WithSourceRoot(sourceRoot))
	}
	plugins := registry.NewRegistry()
	if err := plugins.Register(reg.Name, registry.NewInterpreted(reg.Implementation.Target(), opts...)); err != nil {
		return "", err
	}
	instance, err := plugins.New(reg.Name)
	if err != nil {
		return "", err
	}
	logger.Debug("resolved interpreted implementation",
		zap.String("name", reg.Name),
		zap.String("type", fmt.Sprintf("%T", instance)),
	)
	return fmt.Sprintf("ok (%T)", instance), nil
}
