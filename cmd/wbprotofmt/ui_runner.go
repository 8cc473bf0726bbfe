package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"wbprotofmt/internal/driver"
	"wbprotofmt/internal/pipeline"
	"wbprotofmt/internal/source"
	"wbprotofmt/internal/ui"
)

type formatOutcome struct {
	fileSet *source.FileSet
	results []driver.FormatResult
	err     error
}

func runFormatWithUI(ctx context.Context, title string, files []string, opts driver.FormatOptions) (*source.FileSet, []driver.FormatResult, error) {
	events := make(chan pipeline.Event, 256)
	outcomeCh := make(chan formatOutcome, 1)

	go func() {
		optsCopy := opts
		sink := pipeline.ProgressSink(pipeline.ChannelSink{Ch: events})
		if opts.Progress != nil {
			sink = pipeline.MultiSink{opts.Progress, sink}
		}
		optsCopy.Progress = sink
		fileSet, results, err := driver.FormatPaths(ctx, files, optsCopy)
		outcomeCh <- formatOutcome{fileSet: fileSet, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fileSet, outcome.results, uiErr
	}
	return outcome.fileSet, outcome.results, outcome.err
}
