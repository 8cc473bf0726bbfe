package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"wbprotofmt/internal/diagfmt"
	"wbprotofmt/internal/driver"
	"wbprotofmt/internal/format"
	"wbprotofmt/internal/pipeline"
	"wbprotofmt/internal/source"
	"wbprotofmt/internal/trace"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] [path...]",
	Short: "Format PROTO source files",
	Long:  `Fmt rewrites PROTO files into the canonical layout. With no paths (or --stdin) it reads stdin and writes the result to stdout.`,
	RunE:  runFmt,
}

func init() {
	fmtCmd.Flags().BoolP("write", "w", false, "rewrite files in place (implied for multiple inputs)")
	fmtCmd.Flags().Bool("check", false, "exit non-zero if any file would change, write nothing")
	fmtCmd.Flags().String("format", "text", "result output format (text|json)")
	fmtCmd.Flags().Bool("stdin", false, "read source from stdin and write the result to stdout")
	fmtCmd.Flags().Int("indent", 2, "spaces per indentation level")
	fmtCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	fmtCmd.Flags().Bool("cache", true, "use the on-disk format cache")
	fmtCmd.Flags().String("js-formatter", "", "external JavaScript formatter command (default clang-format)")
	fmtCmd.Flags().String("ui", "off", "progress UI for multi-file runs (auto|on|off)")
}

type fmtSettings struct {
	check       bool
	write       bool
	stdin       bool
	output      string
	indent      int
	jobs        int
	cache       bool
	jsFormatter string
	ui          uiMode
	quiet       bool
}

func runFmt(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	settings, err := readFmtSettings(cmd, args)
	if err != nil {
		return err
	}

	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}

	opts := driver.FormatOptions{
		Write:          settings.write,
		Check:          settings.check,
		MaxDiagnostics: maxDiagnostics,
		Jobs:           settings.jobs,
		JSFormatter:    settings.jsFormatter,
		Format:         format.Options{IndentWidth: settings.indent},
	}

	if settings.stdin {
		return driver.FormatStdin(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), opts)
	}

	if settings.cache && !settings.check {
		cache, cacheErr := driver.OpenFormatCache("wbprotofmt")
		if cacheErr == nil {
			opts.Cache = cache
		}
	}

	files, err := driver.CollectSourceFiles(cmd.Context(), args)
	if err != nil {
		return err
	}

	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return err
	}
	var timingSink *pipeline.TimingSink
	if showTimings {
		timingSink = &pipeline.TimingSink{}
		opts.Progress = timingSink
	}

	span := trace.Begin(trace.FromContext(cmd.Context()), trace.ScopeRun, "fmt")
	defer span.End()
	ctx := trace.WithSpan(cmd.Context(), span)

	var fileSet *source.FileSet
	var results []driver.FormatResult
	if shouldUseTUI(settings.ui) && len(files) > 1 && settings.output == "text" {
		fileSet, results, err = runFormatWithUI(ctx, "formatting", files, opts)
	} else {
		fileSet, results, err = driver.FormatPaths(ctx, files, opts)
	}
	if err != nil {
		return err
	}

	var hasErrors, hasChanges bool
	switch settings.output {
	case "text":
		renderFmtText(cmd, fileSet, results, settings, &hasErrors, &hasChanges)
	case "json":
		if err := renderFmtJSON(results, settings.check); err != nil {
			return err
		}
		for _, res := range results {
			hasErrors = hasErrors || res.Err != nil
			hasChanges = hasChanges || res.Changed
		}
	default:
		return fmt.Errorf("fmt: unsupported output format %q", settings.output)
	}

	if timingSink != nil {
		printStageTimings(cmd.ErrOrStderr(), timingSink.Timings())
	}

	if hasErrors {
		return fmt.Errorf("fmt: failed to format some files")
	}
	if settings.check && hasChanges {
		return fmt.Errorf("fmt: formatting changes required")
	}
	return nil
}

func readFmtSettings(cmd *cobra.Command, args []string) (fmtSettings, error) {
	var s fmtSettings
	var err error

	if s.check, err = cmd.Flags().GetBool("check"); err != nil {
		return s, err
	}
	if s.write, err = cmd.Flags().GetBool("write"); err != nil {
		return s, err
	}
	if s.stdin, err = cmd.Flags().GetBool("stdin"); err != nil {
		return s, err
	}
	if s.output, err = cmd.Flags().GetString("format"); err != nil {
		return s, err
	}
	if s.indent, err = cmd.Flags().GetInt("indent"); err != nil {
		return s, err
	}
	if s.jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
		return s, err
	}
	if s.cache, err = cmd.Flags().GetBool("cache"); err != nil {
		return s, err
	}
	if s.jsFormatter, err = cmd.Flags().GetString("js-formatter"); err != nil {
		return s, err
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return s, err
	}
	if s.ui, err = readUIMode(uiValue); err != nil {
		return s, err
	}
	if s.quiet, err = cmd.Root().PersistentFlags().GetBool("quiet"); err != nil {
		return s, err
	}

	if s.stdin && len(args) > 0 {
		return s, fmt.Errorf("fmt: --stdin cannot be combined with paths")
	}
	if len(args) == 0 {
		if s.check || s.write {
			return s, fmt.Errorf("fmt: --check and --write require at least one path")
		}
		s.stdin = true
	}

	// Multiple inputs rewrite in place unless --check asked otherwise.
	if len(args) > 1 && !s.check {
		s.write = true
	}
	if s.write && s.check {
		return s, fmt.Errorf("fmt: --write cannot be used with --check")
	}
	if s.indent <= 0 {
		return s, fmt.Errorf("fmt: --indent must be positive")
	}

	return s, applyFmtConfig(cmd, args, &s)
}

// applyFmtConfig merges wbprotofmt.toml into settings. Explicitly set
// flags keep their value.
func applyFmtConfig(cmd *cobra.Command, args []string, s *fmtSettings) error {
	firstInput := ""
	if len(args) > 0 {
		firstInput = args[0]
	}
	path, err := findConfig(firstInput)
	if err != nil || path == "" {
		return err
	}
	cfg, err := loadConfig(path)
	if err != nil {
		return err
	}
	if cfg.Format.Indent != nil && !cmd.Flags().Changed("indent") {
		s.indent = *cfg.Format.Indent
	}
	if cfg.Format.JSFormatter != nil && !cmd.Flags().Changed("js-formatter") {
		s.jsFormatter = *cfg.Format.JSFormatter
	}
	if cfg.Cache.Enabled != nil && !cmd.Flags().Changed("cache") {
		s.cache = *cfg.Cache.Enabled
	}
	return nil
}

func renderFmtText(cmd *cobra.Command, fileSet *source.FileSet, results []driver.FormatResult, settings fmtSettings, hasErrors, hasChanges *bool) {
	colored := useColor(cmd, os.Stdout)
	okColor := color.New(color.FgGreen)
	errColor := color.New(color.FgRed)
	if !colored {
		okColor.DisableColor()
		errColor.DisableColor()
	}

	diagColor := useColor(cmd, os.Stderr)
	for _, res := range results {
		if res.Bag != nil && (res.Bag.HasErrors() || res.Bag.HasWarnings()) {
			diagfmt.Pretty(os.Stderr, res.Bag, fileSet, diagfmt.PrettyOpts{Color: diagColor, Context: 2})
		}
		if res.Err != nil {
			*hasErrors = true
			fmt.Fprintf(os.Stderr, "%s %s: %v\n", errColor.Sprint("error"), res.Path, res.Err)
			continue
		}

		if settings.check {
			if res.Changed {
				*hasChanges = true
				if !settings.quiet {
					fmt.Fprintln(cmd.OutOrStdout(), res.Path)
				}
			}
			continue
		}

		if !settings.write {
			// Single file without --write streams to stdout.
			_, _ = cmd.OutOrStdout().Write(res.Formatted)
			continue
		}

		if settings.quiet {
			continue
		}
		if res.Changed {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", okColor.Sprint("formatted"), res.Path)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "unchanged %s\n", res.Path)
		}
	}
}

func renderFmtJSON(results []driver.FormatResult, check bool) error {
	type jsonResult struct {
		Path     string `json:"path"`
		Changed  bool   `json:"changed"`
		Cached   bool   `json:"cached"`
		Error    string `json:"error,omitempty"`
		CheckRun bool   `json:"check"`
	}

	payload := make([]jsonResult, 0, len(results))
	for _, res := range results {
		jr := jsonResult{Path: res.Path, Changed: res.Changed, Cached: res.Cached, CheckRun: check}
		if res.Err != nil {
			jr.Error = res.Err.Error()
		}
		payload = append(payload, jr)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
