package main

import (
	"fmt"
	"io"
	"time"

	"wbprotofmt/internal/pipeline"
)

func printStageTimings(out io.Writer, timings pipeline.Timings) {
	if out == nil {
		return
	}
	if timings.Has(pipeline.StageParse) {
		fmt.Fprintf(out, "parsed %.1f ms\n", toMillis(timings.Duration(pipeline.StageParse)))
	}
	if timings.Has(pipeline.StageFormat) {
		fmt.Fprintf(out, "formatted %.1f ms\n", toMillis(timings.Duration(pipeline.StageFormat)))
	}
	if timings.Has(pipeline.StageWrite) {
		fmt.Fprintf(out, "wrote %.1f ms\n", toMillis(timings.Duration(pipeline.StageWrite)))
	}
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
