package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type options struct {
	component string
	version   string
	outputs   []string
}

// Option customizes the logger built by New.
type Option func(*options)

// WithComponent names the root logger. Children created with Named append to it.
func WithComponent(name string) Option {
	return func(o *options) {
		o.component = strings.TrimSpace(name)
	}
}

// WithVersion stamps every entry with the running version.
func WithVersion(version string) Option {
	return func(o *options) {
		o.version = strings.TrimSpace(version)
	}
}

// WithOutput replaces stdout as the destination of entries.
func WithOutput(paths ...string) Option {
	return func(o *options) {
		if len(paths) > 0 {
			o.outputs = paths
		}
	}
}

// New builds the application logger. Console encoding is meant for operators
// watching the terminal, json for log shippers.
func New(json bool, debug bool, opts ...Option) (*zap.Logger, error) {
	o := &options{outputs: []string{"stdout"}}
	for _, opt := range opts {
		opt(o)
	}

	encoding := "console"
	if json {
		encoding = "json"
	}

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	cfg := zap.Config{
		Encoding:         encoding,
		Level:            zap.NewAtomicLevelAt(level),
		OutputPaths:      o.outputs,
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:     "msg",
			LevelKey:       "level",
			TimeKey:        "time",
			NameKey:        "component",
			CallerKey:      "caller",
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.RFC3339TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
			EncodeName:     zapcore.FullNameEncoder,
		},
	}

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	if o.component != "" {
		l = l.Named(o.component)
	}
	if o.version != "" {
		l = l.With(zap.String("version", o.version))
	}

	return l, nil
}
