// Package pipeline defines the progress events emitted while files
// move through the formatting stages. Consumers (the terminal UI,
// plain logging) implement ProgressSink.
package pipeline

import "time"

// Stage describes a high-level formatting phase.
type Stage string

const (
	// StageRead is file loading and decoding.
	StageRead Stage = "read"
	// StageParse is lexing and parsing.
	StageParse Stage = "parse"
	// StageFormat is the layout engine run.
	StageFormat Stage = "format"
	// StageWrite is writing results back to disk.
	StageWrite Stage = "write"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the file is waiting to start.
	StatusQueued Status = "queued"
	// StatusWorking indicates the file is being processed.
	StatusWorking Status = "working"
	// StatusDone indicates the file is done.
	StatusDone Status = "done"
	// StatusError indicates the file failed.
	StatusError Status = "error"
	// StatusCached indicates the result came from the format cache.
	StatusCached Status = "cached"
)

// Event reports progress for a file (or for the overall run when
// File is empty).
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events.
type ProgressSink interface {
	OnEvent(Event)
}

// Timings holds per-stage durations.
type Timings struct {
	stages map[Stage]time.Duration
}

// Set stores a duration for the given stage.
func (t *Timings) Set(stage Stage, dur time.Duration) {
	if t == nil {
		return
	}
	if t.stages == nil {
		t.stages = make(map[Stage]time.Duration)
	}
	t.stages[stage] = dur
}

// Add accumulates a duration for the given stage.
func (t *Timings) Add(stage Stage, dur time.Duration) {
	t.Set(stage, t.Duration(stage)+dur)
}

// Has reports whether a duration was recorded for stage.
func (t Timings) Has(stage Stage) bool {
	_, ok := t.stages[stage]
	return ok
}

// Duration returns the recorded duration for stage.
func (t Timings) Duration(stage Stage) time.Duration {
	if t.stages == nil {
		return 0
	}
	return t.stages[stage]
}

// Sum returns the total across the provided stages.
func (t Timings) Sum(stages ...Stage) time.Duration {
	var total time.Duration
	for _, stage := range stages {
		total += t.Duration(stage)
	}
	return total
}
