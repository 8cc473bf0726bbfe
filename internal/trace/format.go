package trace

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Format represents the output format for trace events.
type Format uint8

const (
	// FormatAuto picks a format from the output path.
	FormatAuto Format = iota
	// FormatText is human-readable text.
	FormatText
	// FormatNDJSON is newline-delimited JSON.
	FormatNDJSON
)

// FormatEvent renders an event in the specified format.
func FormatEvent(ev *Event, format Format) []byte {
	if format == FormatNDJSON {
		return formatNDJSON(ev)
	}
	return formatText(ev)
}

func formatNDJSON(ev *Event) []byte {
	type jsonEvent struct {
		Time     string `json:"time"`
		Seq      uint64 `json:"seq"`
		Kind     string `json:"kind"`
		Scope    string `json:"scope"`
		SpanID   uint64 `json:"span_id"`
		ParentID uint64 `json:"parent_id,omitempty"`
		Name     string `json:"name"`
		Detail   string `json:"detail,omitempty"`
	}
	j := jsonEvent{
		Time:     ev.Time.Format("2006-01-02T15:04:05.000000Z07:00"),
		Seq:      ev.Seq,
		Kind:     ev.Kind.String(),
		Scope:    ev.Scope.String(),
		SpanID:   ev.SpanID,
		ParentID: ev.ParentID,
		Name:     ev.Name,
		Detail:   ev.Detail,
	}
	data, _ := json.Marshal(j)
	return append(data, '\n')
}

func formatText(ev *Event) []byte {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("[%06d] ", ev.Seq))
	if ev.ParentID > 0 {
		sb.WriteString("  ")
	}
	switch ev.Kind {
	case KindSpanBegin:
		sb.WriteString("→ ")
	case KindSpanEnd:
		sb.WriteString("← ")
	case KindPoint:
		sb.WriteString("• ")
	}
	sb.WriteString(ev.Name)
	if ev.Detail != "" {
		sb.WriteString(" (")
		sb.WriteString(ev.Detail)
		sb.WriteString(")")
	}
	sb.WriteString("\n")
	return []byte(sb.String())
}
