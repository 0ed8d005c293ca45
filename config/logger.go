// SPDX-License-Identifier: EPL-2.0

package config

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger builds a zap logger writing to stderr. verbose forces debug level.
func (l LogConfig) Logger(verbose bool) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(l.Level))
	if err != nil {
		return nil, fmt.Errorf("%w: log level %q", ErrInvalidValue, l.Level)
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	var zc zap.Config
	switch strings.ToLower(l.Format) {
	case "json":
		zc = zap.NewProductionConfig()
	case "console", "":
		zc = zap.NewDevelopmentConfig()
		zc.Development = false
		zc.DisableStacktrace = true
	default:
		return nil, fmt.Errorf("%w: log format %q", ErrInvalidValue, l.Format)
	}

	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Sampling = nil
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	return zc.Build()
}
