package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wbprotofmt/internal/diagfmt"
	"wbprotofmt/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.proto|directory>",
	Short: "Parse PROTO sources and dump the syntax tree",
	Long:  `Parse analyzes a PROTO file or all *.proto files in a directory and outputs their concrete syntax trees`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	parseCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	fs, results, err := driver.ParsePaths(cmd.Context(), args, maxDiagnostics, jobs)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	if len(results) == 0 {
		return fmt.Errorf("no *.proto files found in %s", args[0])
	}

	prettyOpts := diagfmt.PrettyOpts{
		Color:   useColor(cmd, os.Stderr),
		Context: 2,
	}
	for _, r := range results {
		if r.Bag.HasErrors() || r.Bag.HasWarnings() {
			diagfmt.Pretty(os.Stderr, r.Bag, fs, prettyOpts)
		}
	}

	for idx, r := range results {
		if !quiet && len(results) > 1 {
			if _, err := fmt.Fprintf(os.Stdout, "== %s ==\n", r.Path); err != nil {
				return err
			}
		}
		if r.Tree == nil {
			continue
		}
		switch format {
		case "pretty":
			if err := diagfmt.FormatTreePretty(os.Stdout, r.Tree); err != nil {
				return err
			}
		case "json":
			if err := diagfmt.FormatTreeJSON(os.Stdout, r.Tree); err != nil {
				return err
			}
		}
		if !quiet && len(results) > 1 && idx < len(results)-1 {
			if _, err := fmt.Fprintln(os.Stdout); err != nil {
				return err
			}
		}
	}
	return nil
}
