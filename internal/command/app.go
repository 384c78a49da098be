// Where: internal/command/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package command

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ProskuraPD/glyreg/internal/generator"
	"github.com/ProskuraPD/glyreg/internal/infra/config"
	"github.com/ProskuraPD/glyreg/internal/infra/fileops"
	"github.com/ProskuraPD/glyreg/internal/infra/logging"
	"github.com/ProskuraPD/glyreg/internal/meta"
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Dependencies holds the I/O seams used by command handlers. Nil fields
// fall back to the real implementations.
type Dependencies struct {
	Out         io.Writer
	ErrOut      io.Writer
	Write       generator.WriteFunc
	ReadFile    func(path string) (string, error)
	LoadProfile func(path string) (generator.Profile, error)
}

// CLI defines the command-line interface structure parsed by Kong.
type CLI struct {
	EnvFile  string      `name:"env-file" help:"Path to .env file loaded before flags are resolved"`
	Verbose  bool        `short:"v" help:"Write debug logs to stderr"`
	Generate GenerateCmd `cmd:"" help:"Write a registration stub"`
	Inspect  InspectCmd  `cmd:"" help:"Print the registration stored in a stub"`
	Version  VersionCmd  `cmd:"" help:"Show version information"`
}

type VersionCmd struct{}

// Run parses args, dispatches the selected command and returns the
// process exit code: 0 on success, 1 on any error.
func Run(args []string, deps Dependencies) int {
	deps = withDefaults(deps)
	out := deps.Out
	errOut := deps.ErrOut

	if len(args) == 0 {
		return runNoArgs(out)
	}

	if err := loadEnvFile(envFileArg(args), errOut); err != nil {
		return exitWithError(errOut, err)
	}

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name(cliName()),
		kong.Description("Generate plugin registration stubs."),
		kong.Writers(out, errOut),
	)
	if err != nil {
		return exitWithError(errOut, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return handleParseError(err, errOut)
	}

	logger := logging.New(cli.Verbose, errOut)
	defer func() { _ = logger.Sync() }()

	if exitCode, handled := dispatchCommand(ctx.Command(), cli, deps, logger); handled {
		return exitCode
	}

	return exitWithError(errOut, fmt.Errorf("unknown command %q", ctx.Command()))
}

type commandHandler func(CLI, Dependencies, *zap.Logger) int

// dispatchCommand routes on the command word; kong appends positional
// placeholders ("generate <name> <output>") to the command string.
func dispatchCommand(command string, cli CLI, deps Dependencies, logger *zap.Logger) (int, bool) {
	handlers := map[string]commandHandler{
		"generate": runGenerate,
		"inspect":  runInspect,
		"version":  func(_ CLI, deps Dependencies, _ *zap.Logger) int { return runVersion(deps.Out) },
	}

	fields := strings.Fields(command)
	if len(fields) == 0 {
		return 1, false
	}
	if handler, ok := handlers[fields[0]]; ok {
		return handler(cli, deps, logger), true
	}
	return 1, false
}

func withDefaults(deps Dependencies) Dependencies {
	if deps.Out == nil {
		deps.Out = os.Stdout
	}
	if deps.ErrOut == nil {
		deps.ErrOut = os.Stderr
	}
	if deps.Write == nil {
		deps.Write = fileops.WriteFile
	}
	if deps.ReadFile == nil {
		deps.ReadFile = fileops.ReadFile
	}
	if deps.LoadProfile == nil {
		deps.LoadProfile = config.LoadProfile
	}
	return deps
}

// envFileArg returns the --env-file value without a full parse, so the
// file can be loaded before env-backed flags are resolved.
func envFileArg(args []string) string {
	for idx, arg := range args {
		if arg == "--" {
			return ""
		}
		if value, ok := strings.CutPrefix(arg, "--env-file="); ok {
			return value
		}
		if arg == "--env-file" && idx+1 < len(args) {
			return args[idx+1]
		}
	}
	return ""
}

// loadEnvFile loads path, or .env in the working directory when path is
// empty. Variables already set in the environment win.
func loadEnvFile(path string, errOut io.Writer) error {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load env file %s: %w", path, err)
		}
		return nil
	}
	if !fileops.FileExists(meta.DefaultEnvFile) {
		return nil
	}
	if err := godotenv.Load(meta.DefaultEnvFile); err != nil {
		newUI(errOut).Warn(fmt.Sprintf("failed to load %s: %v", meta.DefaultEnvFile, err))
	}
	return nil
}

// runVersion prints the version information of the CLI.
func runVersion(out io.Writer) int {
	newUI(out).Info(version())
	return 0
}

// runNoArgs prints a short usage hint.
func runNoArgs(out io.Writer) int {
	ui := newUI(out)
	cmd := cliName()
	ui.Info("Usage:")
	ui.Info(fmt.Sprintf("  %s generate <name> <output> [include ...] (--native=<impl> | --interpreted=<module>)", cmd))
	ui.Info(fmt.Sprintf("  %s inspect <stub>", cmd))
	ui.Info("")
	ui.Info(fmt.Sprintf("Try: %s generate --help", cmd))
	return 0
}

// handleParseError adds a usage hint for missing positional arguments.
func handleParseError(err error, errOut io.Writer) int {
	code := exitWithError(errOut, err)
	msg := err.Error()
	if strings.Contains(msg, "expected") && (strings.Contains(msg, "<name>") || strings.Contains(msg, "<output>")) {
		newUI(errOut).Info(fmt.Sprintf("Example: %s generate adder adder_reg.inc ops/adder.h --native=NOps::TAdder", cliName()))
	}
	return code
}
