package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/texbody"
	"github.com/tsawler/texbody/internal/log"
	"github.com/tsawler/texbody/render"
)

func inspectCmd() *cobra.Command {
	var (
		envFile  string
		encoding string
	)

	cmd := &cobra.Command{
		Use:   "inspect <input>",
		Short: "List the tables of a body and their logical rules",
		Long: `List every table of an unprocessed body or trace with its fragment
range and the fragment indices of each logical rule. Rule numbers are the
positions tabularrows selectors count.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(envFile)
			if err != nil {
				return err
			}
			if encoding == "" {
				encoding = cfg.InputEncoding()
			}
			logger := log.NewLogger(cfg).With("input", args[0])

			tables, err := texbody.Open(args[0]).
				Encoding(encoding).
				Logger(logger.Slog()).
				Tables()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), formatTables(tables))
			return err
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().StringVar(&encoding, "encoding", "", "Input character encoding, e.g. latin1")

	return cmd
}

func formatTables(tables []render.TableInfo) string {
	var b strings.Builder
	for n, t := range tables {
		fmt.Fprintf(&b, "table %d: %s [%d:%d]", n, t.Kind, t.Begin, t.End+1)
		if t.Figure {
			b.WriteString(" in figure")
		}
		b.WriteByte('\n')
		for i, g := range t.Rules {
			idx := make([]string, len(g))
			for j, v := range g {
				idx[j] = fmt.Sprint(v)
			}
			fmt.Fprintf(&b, "  rule %d (%d): %s\n", i, i-len(t.Rules), strings.Join(idx, ", "))
		}
	}
	return b.String()
}
