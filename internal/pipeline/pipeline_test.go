package pipeline

import (
	"testing"
	"time"
)

func TestTimings(t *testing.T) {
	var tm Timings
	if tm.Has(StageParse) {
		t.Error("empty timings should have no stages")
	}
	tm.Set(StageParse, 10*time.Millisecond)
	tm.Add(StageParse, 5*time.Millisecond)
	tm.Set(StageFormat, 20*time.Millisecond)

	if got := tm.Duration(StageParse); got != 15*time.Millisecond {
		t.Errorf("parse duration = %v, want 15ms", got)
	}
	if got := tm.Sum(StageParse, StageFormat, StageWrite); got != 35*time.Millisecond {
		t.Errorf("sum = %v, want 35ms", got)
	}
	if tm.Has(StageWrite) {
		t.Error("write stage was never recorded")
	}
}

func TestTimingSink(t *testing.T) {
	sink := &TimingSink{}
	sink.OnEvent(Event{File: "a.proto", Stage: StageFormat, Status: StatusDone, Elapsed: 3 * time.Millisecond})
	sink.OnEvent(Event{File: "b.proto", Stage: StageFormat, Status: StatusDone, Elapsed: 4 * time.Millisecond})
	sink.OnEvent(Event{File: "a.proto", Stage: StageFormat, Status: StatusWorking})
	sink.OnEvent(Event{File: "a.proto", Stage: StageWrite, Status: StatusError, Elapsed: time.Millisecond})

	tm := sink.Timings()
	if got := tm.Duration(StageFormat); got != 7*time.Millisecond {
		t.Errorf("format duration = %v, want 7ms", got)
	}
	if got := tm.Duration(StageWrite); got != time.Millisecond {
		t.Errorf("write duration = %v, want 1ms", got)
	}
}

func TestChannelAndMultiSink(t *testing.T) {
	ch := make(chan Event, 2)
	timing := &TimingSink{}
	sink := MultiSink{ChannelSink{Ch: ch}, timing, nil}

	evt := Event{File: "x.proto", Stage: StageParse, Status: StatusDone, Elapsed: time.Millisecond}
	sink.OnEvent(evt)

	got := <-ch
	if got.File != "x.proto" || got.Stage != StageParse {
		t.Errorf("channel received %+v", got)
	}
	if !timing.Timings().Has(StageParse) {
		t.Error("timing sink missed the event")
	}
}
