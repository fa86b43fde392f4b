// Package mlog implements the per-round, per-party message log
// (spec.md §3 "MessageLog msgs[t][j]"): the bits each simulated party
// writes to its view during online MPC simulation, later bound into the
// view commitment Cv[t].
package mlog

import "github.com/DongLeiGryphonSecure/picnic3/internal/bitvec"

// Round holds the N party logs for a single round, plus which party (if
// any) is unopened — the unopened party's slot carries verifier-supplied
// content during verification (spec.md data model).
type Round struct {
	N        int
	Logs     [][]byte // N logs, each ViewSize bytes
	pos      []int    // per-party bit cursor; all must agree when sealed
	Unopened int      // -1 if not yet known / not applicable
}

// NewRound allocates N empty logs of viewSize bytes.
func NewRound(n, viewSize int) *Round {
	logs := make([][]byte, n)
	for j := range logs {
		logs[j] = make([]byte, viewSize)
	}
	return &Round{N: n, Logs: logs, pos: make([]int, n), Unopened: -1}
}

// WriteBit appends bit v to party j's log and advances its cursor.
func (r *Round) WriteBit(j int, v byte) {
	bitvec.Set(r.Logs[j], r.pos[j], v)
	r.pos[j]++
}

// Pos returns party j's current bit cursor.
func (r *Round) Pos(j int) int { return r.pos[j] }

// SealedByteLen returns ceil(pos/8) for party 0's cursor, after asserting
// every party's cursor agrees (spec.md §4.5: "All parties' cursors must be
// equal at this point (asserted)").
func (r *Round) SealedByteLen() (int, error) {
	if r.N == 0 {
		return 0, nil
	}
	want := r.pos[0]
	for j := 1; j < r.N; j++ {
		if r.pos[j] != want {
			return 0, errCursorMismatch
		}
	}
	return bitvec.ByteLen(want), nil
}

// SetUnopened installs verifier-supplied content for the unopened party's
// slot (spec.md §4.8) and rewinds its cursor to 0, like every other party's:
// the online simulation then replays the content bit by bit, so all cursors
// agree again when the round is sealed. bitLen is not consulted.
func (r *Round) SetUnopened(j int, content []byte, bitLen int) {
	copy(r.Logs[j], content)
	r.pos[j] = 0
	r.Unopened = j
}
