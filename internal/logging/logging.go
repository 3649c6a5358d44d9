// Package logging builds the process logger.
//
// Every package logs through logr; the logger travels in the context. The
// backend is zap: a console encoder when stderr is a terminal, JSON
// otherwise.
package logging

import (
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger writing to stderr and a function flushing it.
// verbose enables V(1) messages.
func New(verbose bool) (logr.Logger, func()) {
	fd := os.Stderr.Fd()
	console := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	return NewWithSink(zapcore.Lock(os.Stderr), console, verbose)
}

// NewWithSink returns a logger writing to sink.
func NewWithSink(sink zapcore.WriteSyncer, console, verbose bool) (logr.Logger, func()) {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	var encoder zapcore.Encoder
	if console {
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	} else {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}

	zl := zap.New(zapcore.NewCore(encoder, sink, level))
	return zapr.NewLogger(zl), func() { _ = zl.Sync() }
}
