// Package trace provides lightweight execution tracing for the
// formatting pipeline. A Tracer travels via context.Context; with
// tracing off the nop tracer makes every call free.
package trace
