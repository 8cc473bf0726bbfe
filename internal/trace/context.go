package trace

import "context"

type ctxKey struct{}

// WithTracer attaches a tracer to the context.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	return context.WithValue(ctx, ctxKey{}, t)
}

// FromContext returns the tracer from the context, or Nop.
func FromContext(ctx context.Context) Tracer {
	if t, ok := ctx.Value(ctxKey{}).(Tracer); ok && t != nil {
		return t
	}
	return Nop
}

type spanKey struct{}

// WithSpan attaches a span to the context so nested operations can
// hang child spans off it.
func WithSpan(ctx context.Context, s *Span) context.Context {
	return context.WithValue(ctx, spanKey{}, s)
}

// SpanFromContext returns the span from the context. When no span was
// attached it returns a root span over the context's tracer, so Child
// is always safe to call.
func SpanFromContext(ctx context.Context) *Span {
	if s, ok := ctx.Value(spanKey{}).(*Span); ok && s != nil {
		return s
	}
	return &Span{tracer: FromContext(ctx)}
}
