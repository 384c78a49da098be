// Where: internal/infra/logging/logger.go
// What: zap logger construction for --verbose diagnostics.
// Why: Keep stdout silent for build systems while allowing debug traces on stderr.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a debug logger writing console-encoded entries to out when
// verbose is set, and a no-op logger otherwise.
func New(verbose bool, out io.Writer) *zap.Logger {
	if !verbose || out == nil {
		return zap.NewNop()
	}
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(out),
		zapcore.DebugLevel,
	)
	return zap.New(core).Named("glyreg")
}
