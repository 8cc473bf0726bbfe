package pipeline

import "sync"

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

// MultiSink fans one event out to several sinks.
type MultiSink []ProgressSink

func (s MultiSink) OnEvent(evt Event) {
	for _, sink := range s {
		if sink != nil {
			sink.OnEvent(evt)
		}
	}
}

// TimingSink accumulates per-stage durations from completed events.
// Safe for concurrent use.
type TimingSink struct {
	mu      sync.Mutex
	timings Timings
}

func (s *TimingSink) OnEvent(evt Event) {
	if evt.Elapsed == 0 {
		return
	}
	switch evt.Status {
	case StatusDone, StatusCached, StatusError:
		s.mu.Lock()
		s.timings.Add(evt.Stage, evt.Elapsed)
		s.mu.Unlock()
	}
}

// Timings returns a snapshot of the accumulated durations.
func (s *TimingSink) Timings() Timings {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := Timings{}
	for stage, dur := range s.timings.stages {
		snapshot.Set(stage, dur)
	}
	return snapshot
}
