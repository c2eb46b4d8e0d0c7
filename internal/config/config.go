// Package config provides application configuration for the texbody CLI.
package config

import "strings"

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// Defaults.
const (
	DefaultLogLevel      = "INFO"
	DefaultLogFormat     = LogFormatPretty
	DefaultInputEncoding = "utf-8"
)

// AppConfig holds the resolved configuration.
type AppConfig struct {
	logLevel      string
	logFormat     LogFormat
	inputEncoding string
	strict        bool
}

// NewAppConfig returns the default configuration.
func NewAppConfig() AppConfig {
	return AppConfig{
		logLevel:      DefaultLogLevel,
		logFormat:     DefaultLogFormat,
		inputEncoding: DefaultInputEncoding,
	}
}

// Option is a functional option for AppConfig.
type Option func(*AppConfig)

// NewAppConfigWithOptions returns the default configuration with opts applied.
func NewAppConfigWithOptions(opts ...Option) AppConfig {
	cfg := NewAppConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogLevel sets the log level (DEBUG, INFO, WARN, ERROR).
func WithLogLevel(level string) Option {
	return func(c *AppConfig) { c.logLevel = strings.ToUpper(level) }
}

// WithLogFormat sets the log format.
func WithLogFormat(format LogFormat) Option {
	return func(c *AppConfig) { c.logFormat = format }
}

// WithInputEncoding sets the character encoding of input files.
func WithInputEncoding(name string) Option {
	return func(c *AppConfig) { c.inputEncoding = name }
}

// WithStrict makes recoverable directive problems fail the render.
func WithStrict(strict bool) Option {
	return func(c *AppConfig) { c.strict = strict }
}

// LogLevel returns the log level.
func (c AppConfig) LogLevel() string { return c.logLevel }

// LogFormat returns the log format.
func (c AppConfig) LogFormat() LogFormat { return c.logFormat }

// InputEncoding returns the input character encoding name.
func (c AppConfig) InputEncoding() string { return c.inputEncoding }

// Strict reports whether warnings fail the render.
func (c AppConfig) Strict() bool { return c.strict }

// Apply returns a copy of c with opts applied.
func (c AppConfig) Apply(opts ...Option) AppConfig {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
