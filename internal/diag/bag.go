package diag

import (
	"fmt"
	"sort"
)

// Bag accumulates diagnostics up to a fixed capacity.
type Bag struct {
	items []Diagnostic
	max   uint16
}

func NewBag(max int) *Bag {
	return &Bag{
		items: make([]Diagnostic, 0, max),
		max:   uint16(max),
	}
}

// Add appends a diagnostic, honoring the capacity limit.
// Returns false when the diagnostic was dropped.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= int(b.max) {
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Cap() uint16 {
	return b.max
}

// HasErrors reports whether any diagnostic has Severity >= Error.
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// HasWarnings reports whether any diagnostic has Severity >= Warning.
func (b *Bag) HasWarnings() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevWarning {
			return true
		}
	}
	return false
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Items returns a read-only view of the accumulated diagnostics.
// Do not modify the returned slice.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// FirstError returns the first error-severity diagnostic in source order.
func (b *Bag) FirstError() (Diagnostic, bool) {
	best := -1
	for i := range b.items {
		if b.items[i].Severity < SevError {
			continue
		}
		if best < 0 || less(b.items[i], b.items[best]) {
			best = i
		}
	}
	if best < 0 {
		return Diagnostic{}, false
	}
	return b.items[best], true
}

// Sort orders diagnostics by file, start, end, severity (desc), code for a
// stable, deterministic output order.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		return less(b.items[i], b.items[j])
	})
}

func less(di, dj Diagnostic) bool {
	if di.Primary.File != dj.Primary.File {
		return di.Primary.File < dj.Primary.File
	}
	if di.Primary.Start != dj.Primary.Start {
		return di.Primary.Start < dj.Primary.Start
	}
	if di.Primary.End != dj.Primary.End {
		return di.Primary.End < dj.Primary.End
	}
	if di.Severity != dj.Severity {
		return di.Severity > dj.Severity
	}
	return di.Code < dj.Code
}

// Dedup removes duplicates sharing Code and Primary span.
func (b *Bag) Dedup() {
	seen := make(map[string]bool)
	newitems := make([]Diagnostic, 0, len(b.items))
	for _, d := range b.items {
		key := fmt.Sprintf("%s:%s", d.Code.ID(), d.Primary.String())
		if seen[key] {
			continue
		}
		seen[key] = true
		newitems = append(newitems, d)
	}
	b.items = newitems
}
