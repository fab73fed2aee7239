// Package logging builds the zap loggers used by the command line.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"proxy-lattice/utils"
)

// Format selects the zap encoder.
type Format string

const (
	FormatJSON    Format = "json"
	FormatConsole Format = "console"
)

// Options describe a logger. The zero value is a JSON logger at info level.
type Options struct {
	Format Format
	Debug  bool
}

// ParseFormat reads a LOG_FORMAT value of the form "format[:level]", for
// example "console" or "json:debug".
func ParseFormat(s string) (Options, error) {
	format, level := utils.Unpack2(strings.SplitN(strings.TrimSpace(s), ":", 2))

	var opts Options

	switch Format(strings.ToLower(format)) {
	case "", FormatJSON:
		opts.Format = FormatJSON
	case FormatConsole:
		opts.Format = FormatConsole
	default:
		return Options{}, fmt.Errorf("unknown log format %q", format)
	}

	switch strings.ToLower(level) {
	case "", "info":
	case "debug":
		opts.Debug = true
	default:
		return Options{}, fmt.Errorf("unknown log level %q", level)
	}

	return opts, nil
}

// Config returns the zap configuration for opts.
func (o Options) Config() zap.Config {
	config := zap.NewProductionConfig()
	if o.Format == FormatConsole {
		config.Encoding = string(FormatConsole)
		config.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	if o.Debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return config
}

// New builds a logger for opts.
func New(o Options) (*zap.Logger, error) {
	logger, err := o.Config().Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return logger, nil
}
