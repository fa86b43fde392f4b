// Package mpcsim orchestrates spec.md §2 item 5 / §4.2 item 5: running the
// online MPC evaluation for one round and committing to the resulting view
// (Cv[t]). It is the thin join point between lowmc's AND-gate algebra and
// commit's view commitment, which picnic3's signer and verifier call once
// per round for the online simulation.
package mpcsim

import (
	"github.com/DongLeiGryphonSecure/picnic3/commit"
	"github.com/DongLeiGryphonSecure/picnic3/lowmc"
	"github.com/DongLeiGryphonSecure/picnic3/mlog"
	"github.com/DongLeiGryphonSecure/picnic3/params"
	"github.com/DongLeiGryphonSecure/picnic3/tape"
)

// Result bundles one round's online-simulation outputs.
type Result struct {
	Cv         []byte
	Msgs       *mlog.Round
	Consistent bool
}

// SignerRound runs a full N-party online simulation (every tape known) and
// returns the resulting Cv and message log, for every proof round at
// signing time (spec.md §4.7 step 5).
func SignerRound(c *lowmc.Cipher, p params.Bundle, maskedKey, plaintext, pubKey []byte, tapeRound *tape.Round) (*Result, error) {
	msgs := mlog.NewRound(p.N, p.ViewSize)
	ok, err := lowmc.SimulateOnline(c, maskedKey, plaintext, tapeRound, msgs, pubKey)
	if err != nil {
		return nil, err
	}
	cv, err := commit.View(p.DigestSize, maskedKey, msgs)
	if err != nil {
		return nil, err
	}
	return &Result{Cv: cv, Msgs: msgs, Consistent: ok}, nil
}

// VerifierRound replays an opened round with one party's tape withheld: the
// caller supplies that party's own recorded message-log content (from the
// signature) instead of its tape, so SimulateOnline substitutes it in
// (spec.md §4.8).
func VerifierRound(c *lowmc.Cipher, p params.Bundle, maskedKey, plaintext, pubKey []byte, tapeRound *tape.Round, unopened int, unopenedLog []byte, unopenedBitLen int) (*Result, error) {
	msgs := mlog.NewRound(p.N, p.ViewSize)
	msgs.SetUnopened(unopened, unopenedLog, unopenedBitLen)
	ok, err := lowmc.SimulateOnline(c, maskedKey, plaintext, tapeRound, msgs, pubKey)
	if err != nil {
		return nil, err
	}
	cv, err := commit.View(p.DigestSize, maskedKey, msgs)
	if err != nil {
		return nil, err
	}
	return &Result{Cv: cv, Msgs: msgs, Consistent: ok}, nil
}
