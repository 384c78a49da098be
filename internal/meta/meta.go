// Where: internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep the tool name and env prefix in one place.
package meta

const (
	AppName   = "glyreg"
	Slug      = "glyreg"
	EnvPrefix = "GLYREG"

	// EnvProfile names the variable that backs --profile.
	EnvProfile = EnvPrefix + "_PROFILE"
	// EnvCLICommand overrides the command name shown in usage text.
	EnvCLICommand = EnvPrefix + "_CLI_CMD"

	DefaultEnvFile = ".env"
)
