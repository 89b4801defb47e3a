package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Prm groups Logger's parameters.
// Successful passing non-nil parameters to the NewLogger (if returned
// error is nil) leads to any reconfigurations applied to the Prm to also be
// applied to the Logger.
type Prm struct {
	// link to the created Logger
	// instance; used for a runtime
	// reconfiguration
	level zap.AtomicLevel

	// support runtime rereading
	lvl zapcore.Level

	// do not support runtime rereading
	encoding string
}

const (
	// EncodingConsole is a human-readable log format, used by default.
	EncodingConsole = "console"
	// EncodingJSON is a machine-readable log format.
	EncodingJSON = "json"
)

// SetLevelString sets the minimum logging level. Default is
// "info".
//
// Returns an error if s is not a string representation of a
// supporting logging level.
//
// Supports runtime rereading.
func (p *Prm) SetLevelString(s string) error {
	err := p.lvl.UnmarshalText([]byte(s))
	if err != nil {
		return err
	}

	if p.level != (zap.AtomicLevel{}) {
		p.level.SetLevel(p.lvl)
	}

	return nil
}

// SetEncoding sets the logger output format. Default is
// EncodingConsole.
func (p *Prm) SetEncoding(s string) error {
	switch s {
	case "", EncodingConsole, EncodingJSON:
		p.encoding = s
		return nil
	default:
		return fmt.Errorf("unsupported log encoding: %q", s)
	}
}

// NewLogger constructs a new zap logger instance. Constructing with nil
// parameters is safe: default values will be used then.
// Passing non-nil parameters after a successful creation (non-error) allows
// runtime reconfiguration.
//
// Logger is built from production logging configuration with:
//   - parameterized level;
//   - console encoding unless JSON is requested;
//   - ISO8601 time encoding;
//   - output to stderr.
//
// Logger records a stack trace for all messages at or above fatal level.
func NewLogger(prm *Prm) (*zap.Logger, error) {
	if prm == nil {
		prm = new(Prm)
	}

	c := zap.NewProductionConfig()
	c.Level = zap.NewAtomicLevelAt(prm.lvl)
	c.Encoding = EncodingConsole
	if prm.encoding != "" {
		c.Encoding = prm.encoding
	}
	c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	c.Sampling = nil

	lZap, err := c.Build(
		zap.AddStacktrace(zap.NewAtomicLevelAt(zap.FatalLevel)),
	)
	if err != nil {
		return nil, err
	}

	prm.level = c.Level

	return lZap, nil
}
