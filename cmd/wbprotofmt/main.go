package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"wbprotofmt/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "wbprotofmt",
	Short: "Webots PROTO formatter",
	Long:  `wbprotofmt is a deterministic formatter for Webots PROTO world and prototype files`,
}

// main registers subcommands and persistent flags, then executes the
// root command. If command execution returns an error, the process
// exits with status code 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 256, "maximum number of diagnostics to show")
	rootCmd.PersistentFlags().String("trace", "", "write trace events to the given file ('-' for stderr)")
	rootCmd.PersistentFlags().String("trace-level", "off", "trace verbosity (off|phase|detail|debug)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false
	}
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}
