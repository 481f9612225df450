// Package logger builds the zerolog loggers shared by the sanitizer, the
// orchestrator and the CLI.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
}

// New creates a zerolog logger based on Options. Output defaults to stderr so
// generated code written to stdout stays clean.
func New(opts Options) (zerolog.Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return zerolog.Nop(), err
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		output = console
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger(), nil
}

// Default is the warn-level stderr logger used when callers supply none.
func Default() zerolog.Logger {
	return zerolog.New(os.Stderr).Level(zerolog.WarnLevel).With().Timestamp().Logger()
}

// WithFields returns a derived logger that always writes the supplied fields.
func WithFields(base zerolog.Logger, fields map[string]any) zerolog.Logger {
	builder := base.With()
	for key, value := range fields {
		builder = builder.Interface(key, value)
	}
	return builder.Logger()
}
