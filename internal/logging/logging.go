// Package logging builds the process logger: human-readable lines with a
// timestamp and level, written to a log file and the console at once.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures New.
type Options struct {
	// File is appended to; it is created if missing. Empty disables it.
	File string
	// Level is a zap level name: debug, info, warn or error.
	Level string
	// Console receives the same lines as File. Defaults to os.Stdout.
	Console io.Writer
}

// New returns a logr.Logger backed by zap and a function that flushes and
// closes the log file.
func New(opts Options) (logr.Logger, func() error, error) {
	level := zapcore.InfoLevel
	if opts.Level != "" {
		var err error
		if level, err = zapcore.ParseLevel(opts.Level); err != nil {
			return logr.Discard(), nil, fmt.Errorf("parse log level: %w", err)
		}
	}

	console := opts.Console
	if console == nil {
		console = os.Stdout
	}
	sinks := []zapcore.WriteSyncer{zapcore.Lock(zapcore.AddSync(console))}

	var file *os.File
	if opts.File != "" {
		var err error
		file, err = os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return logr.Discard(), nil, fmt.Errorf("open log file: %w", err)
		}
		sinks = append(sinks, zapcore.Lock(file))
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encCfg.ConsoleSeparator = " - "

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.NewMultiWriteSyncer(sinks...), level)
	zl := zap.New(core)

	closeFn := func() error {
		_ = zl.Sync()
		if file != nil {
			return file.Close()
		}
		return nil
	}
	return zapr.NewLogger(zl), closeFn, nil
}
