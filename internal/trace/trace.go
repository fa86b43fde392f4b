// Package trace is picnic3's env-gated debug milestone logger, the same
// shape as the teacher's ntru/debug.go (NTRU_DEBUG=1 gates fmt.Fprintf):
// off by default, and when on, prints only non-secret, high-level
// milestones (round index, phase name) — never seeds, tapes, aux bits,
// keys, or any other secret-dependent content, and never consulted on a
// path whose timing could leak anything (spec.md §5/§7).
package trace

import (
	"fmt"
	"io"
	"os"
)

var enabled = os.Getenv("PICNIC3_DEBUG") == "1"

// Milestone writes a one-line, non-secret progress note to w when
// PICNIC3_DEBUG=1; a no-op otherwise.
func Milestone(w io.Writer, format string, a ...any) {
	if enabled {
		fmt.Fprintf(w, format, a...)
	}
}

// Enabled reports whether debug tracing is on, for callers that want to
// skip building a trace message entirely when it would be discarded.
func Enabled() bool { return enabled }
