package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wbprotofmt/internal/diagfmt"
	"wbprotofmt/internal/driver"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [flags] file.proto",
	Short: "Tokenize a PROTO source file",
	Long:  `Tokens breaks down a PROTO source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	tokensCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokens(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	fs, results, err := driver.TokenizePaths(cmd.Context(), args, maxDiagnostics, 1)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	if len(results) == 0 {
		return fmt.Errorf("no source file at %s", args[0])
	}
	result := results[0]

	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		opts := diagfmt.PrettyOpts{
			Color:   useColor(cmd, os.Stderr),
			Context: 2,
		}
		diagfmt.Pretty(os.Stderr, result.Bag, fs, opts)
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, fs)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
