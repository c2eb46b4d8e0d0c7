// Package main is the entry point for the texbody CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/texbody/internal/config"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "texbody",
		Short: "Post-process rendered LaTeX bodies",
		Long: `texbody replays a rendered LaTeX body, moving longtables that stand in
for figures ahead of their figure environment and suppressing the
horizontal rules chosen by tabularrows directives.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(processCmd())
	cmd.AddCommand(inspectCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

// loadConfig loads configuration from .env file and environment variables.
func loadConfig(envFile string) (config.AppConfig, error) {
	cfg, err := config.LoadConfig(envFile)
	if err != nil {
		return config.AppConfig{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
