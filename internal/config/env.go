package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "TEXBODY"

// EnvConfig holds environment-based configuration.
type EnvConfig struct {
	// LogLevel is the log verbosity level.
	// Env: TEXBODY_LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (pretty or json).
	// Env: TEXBODY_LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// InputEncoding names the character encoding of input files.
	// Env: TEXBODY_INPUT_ENCODING (default: utf-8)
	InputEncoding string `envconfig:"INPUT_ENCODING" default:"utf-8"`

	// Strict turns directive warnings into errors.
	// Env: TEXBODY_STRICT (default: false)
	Strict bool `envconfig:"STRICT" default:"false"`
}

// LoadFromEnv loads configuration from TEXBODY_ environment variables.
func LoadFromEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// ToAppConfig converts EnvConfig to AppConfig.
func (e EnvConfig) ToAppConfig() AppConfig {
	cfg := NewAppConfig()
	if e.LogLevel != "" {
		cfg = cfg.Apply(WithLogLevel(e.LogLevel))
	}
	switch LogFormat(strings.ToLower(e.LogFormat)) {
	case LogFormatJSON:
		cfg = cfg.Apply(WithLogFormat(LogFormatJSON))
	default:
		cfg = cfg.Apply(WithLogFormat(LogFormatPretty))
	}
	if e.InputEncoding != "" {
		cfg = cfg.Apply(WithInputEncoding(e.InputEncoding))
	}
	return cfg.Apply(WithStrict(e.Strict))
}

// LoadDotEnv loads environment variables from a .env file. If path is
// empty it loads ".env" in the current directory. A missing file is not an
// error. Variables already set in the environment win.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

// LoadConfig loads an optional .env file, then the environment.
func LoadConfig(envPath string) (AppConfig, error) {
	if err := LoadDotEnv(envPath); err != nil {
		return AppConfig{}, err
	}
	envCfg, err := LoadFromEnv()
	if err != nil {
		return AppConfig{}, err
	}
	return envCfg.ToAppConfig(), nil
}
