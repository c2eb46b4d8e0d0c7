package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/texbody"
	"github.com/tsawler/texbody/internal/config"
	"github.com/tsawler/texbody/internal/log"
)

type processFlags struct {
	envFile     string
	output      string
	encoding    string
	strict      bool
	skipFigures bool
	skipRules   bool
}

func processCmd() *cobra.Command {
	var f processFlags

	cmd := &cobra.Command{
		Use:   "process <input>",
		Short: "Replay a body or trace and write the processed LaTeX",
		Long: `Replay a rendered body (.tex) or render trace (.yaml) and write the
processed LaTeX to stdout or the --output file.

Configuration is loaded in the following order (later sources override earlier):
  1. Default values
  2. .env file (if --env-file specified or .env exists in current directory)
  3. Environment variables
  4. Command line flags

Environment variables:
  TEXBODY_LOG_LEVEL        Log level: DEBUG, INFO, WARN, ERROR (default: INFO)
  TEXBODY_LOG_FORMAT       Log format: pretty, json (default: pretty)
  TEXBODY_INPUT_ENCODING   Input character encoding (default: utf-8)
  TEXBODY_STRICT           Fail on malformed directives (default: false)`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(f.envFile)
			if err != nil {
				return err
			}
			cfg = applyProcessOverrides(cfg, f)
			return runProcess(cmd, args[0], cfg, f)
		},
	}

	cmd.Flags().StringVar(&f.envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVar(&f.encoding, "encoding", "", "Input character encoding, e.g. latin1")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "Fail on malformed or conflicting directive options")
	cmd.Flags().BoolVar(&f.skipFigures, "skip-figures", false, "Ignore gridfigure events")
	cmd.Flags().BoolVar(&f.skipRules, "skip-rules", false, "Ignore tabularrows events")

	return cmd
}

func applyProcessOverrides(cfg config.AppConfig, f processFlags) config.AppConfig {
	if f.encoding != "" {
		cfg = cfg.Apply(config.WithInputEncoding(f.encoding))
	}
	if f.strict {
		cfg = cfg.Apply(config.WithStrict(true))
	}
	return cfg
}

func runProcess(cmd *cobra.Command, input string, cfg config.AppConfig, f processFlags) error {
	logger := log.NewLogger(cfg).With("input", input)

	p := texbody.Open(input).
		Encoding(cfg.InputEncoding()).
		Logger(logger.Slog())
	if cfg.Strict() {
		p = p.Strict()
	}
	if f.skipFigures {
		p = p.SkipFigures()
	}
	if f.skipRules {
		p = p.SkipRules()
	}

	out, warnings, err := p.Render()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		logger.Warn("directive skipped", "step", w.Step, "line", w.Line, "code", w.Code, "reason", w.Message)
	}

	if f.output == "" {
		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	}
	if err := os.WriteFile(f.output, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logger.Info("body written", "output", f.output, "bytes", len(out))
	return nil
}
