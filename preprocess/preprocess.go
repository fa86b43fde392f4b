// Package preprocess orchestrates spec.md §4.2: expanding each round's N
// party tapes from their seeds and computing the AND-gate aux correction,
// before any plaintext or private key is touched.
package preprocess

import (
	"github.com/DongLeiGryphonSecure/picnic3/lowmc"
	"github.com/DongLeiGryphonSecure/picnic3/params"
	"github.com/DongLeiGryphonSecure/picnic3/tape"
)

// Round expands round t's N party tapes from their seeds and computes the
// AND-gate aux correction, leaving the tape cursors reset to 0 so online
// simulation replays the identical mask stream (spec.md §4.2(d)).
func Round(c *lowmc.Cipher, p params.Bundle, seeds [][]byte, salt []byte, t uint16) (*tape.Round, error) {
	round := tape.NewRound(p.N, p.ViewSize, p.LowMCN, p.AndSizeBits())
	if err := tape.Expand(round, seeds, salt, t); err != nil {
		return nil, err
	}
	if err := lowmc.ComputeAux(c, round); err != nil {
		return nil, err
	}
	round.ResetCursor()
	return round, nil
}
