package trace

import (
	"sync/atomic"
	"time"
)

var (
	globalSeq   atomic.Uint64
	globalSpans atomic.Uint64
)

// NextSeq returns the next global sequence number.
func NextSeq() uint64 { return globalSeq.Add(1) }

// NextSpanID returns the next span identifier.
func NextSpanID() uint64 { return globalSpans.Add(1) }

// Span pairs begin and end events for one operation.
type Span struct {
	tracer Tracer
	id     uint64
	parent uint64
	scope  Scope
	name   string
	start  time.Time
}

// Begin emits a span-begin event and returns the span. On a nop or
// filtered tracer the span is still usable and End is a no-op.
func Begin(t Tracer, scope Scope, name string) *Span {
	s := &Span{tracer: t, scope: scope, name: name, start: time.Now()}
	if t == nil || !t.Enabled() {
		return s
	}
	s.id = NextSpanID()
	t.Emit(&Event{
		Time:   s.start,
		Kind:   KindSpanBegin,
		Scope:  scope,
		SpanID: s.id,
		Name:   name,
	})
	return s
}

// Child begins a span nested under s.
func (s *Span) Child(scope Scope, name string) *Span {
	c := Begin(s.tracer, scope, name)
	c.parent = s.id
	return c
}

// End emits the matching span-end event with the elapsed time.
func (s *Span) End() {
	if s.tracer == nil || !s.tracer.Enabled() || s.id == 0 {
		return
	}
	s.tracer.Emit(&Event{
		Time:     time.Now(),
		Kind:     KindSpanEnd,
		Scope:    s.scope,
		SpanID:   s.id,
		ParentID: s.parent,
		Name:     s.name,
		Detail:   time.Since(s.start).Round(time.Microsecond).String(),
	})
}

// Point emits an instant event under s.
func (s *Span) Point(name, detail string) {
	if s.tracer == nil || !s.tracer.Enabled() {
		return
	}
	s.tracer.Emit(&Event{
		Time:   time.Now(),
		Kind:   KindPoint,
		Scope:  s.scope,
		SpanID: s.id,
		Name:   name,
		Detail: detail,
	})
}
