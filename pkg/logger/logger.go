// Package logger builds the structured loggers used across octet's
// long-lived components (LocalFileSystem and the FileHandles it opens). It exists so
// every component constructs its logger the same way instead of each
// package reaching for zap directly, mirroring how the teacher's
// pkg/ignite package obtained a logger via a single New(service) call.
package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	baseOnce sync.Once
	base     *zap.Logger
)

// New builds a *zap.SugaredLogger scoped to the given service/component
// name. It is cheap to call repeatedly: the underlying zap.Logger core is
// built once per process and every call to New just attaches a "service"
// field to it.
func New(service string) *zap.SugaredLogger {
	baseOnce.Do(func() {
		base = buildBase()
	})
	return base.Sugar().With("service", service)
}

// buildBase constructs the process-wide zap core. Octet is a library, not a
// daemon, so it defaults to a quiet, level-aware console encoder rather than
// assuming a JSON log shipper is present. New always builds on this core;
// zap.ReplaceGlobals has no effect on the loggers it returns.
func buildBase() *zap.Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(os.Stderr),
		levelFromEnv(),
	)

	return zap.New(core, zap.AddCaller())
}

// levelFromEnv lets embedders raise or lower verbosity with OCTET_LOG_LEVEL
// without forcing them to thread a config object through every constructor.
// It defaults to Info, matching the teacher's Infow-heavy logging style.
func levelFromEnv() zapcore.Level {
	lvl, err := zapcore.ParseLevel(os.Getenv("OCTET_LOG_LEVEL"))
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}
