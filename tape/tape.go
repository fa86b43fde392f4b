// Package tape implements the per-round, N-party random-tape manager
// (spec.md §3 "Tape", §4.1): each party's tape supplies the key-share mask
// consumed during pre-processing and the AND-gate correction stream
// consumed during both pre-processing and online simulation.
package tape

import (
	"fmt"

	"github.com/DongLeiGryphonSecure/picnic3/internal/bitvec"
	"github.com/DongLeiGryphonSecure/picnic3/xof"
)

// Tape is one party's random byte stream for one round. Layout, per
// spec.md §4.1: bits [0, keyBits) are the party's share of the LowMC key
// (the "mask" sub-stream); bits [keyBits, keyBits+andBits) are the AND-gate
// correction sub-stream, consumed 1 meaningful bit plus 1 rerandomization
// bit per AND gate (2 bits/gate, matching the tape-cursor width spec.md
// §4.1 describes), addressed by gate index within Buf.
type Tape struct {
	Buf []byte // tapeByteLen(keyBits, andGates) bytes, raw XOF output for this party/round
	pos int    // bit cursor into the AND-gate sub-stream
}

// Round is the N-tape set for a single round t, plus the derived aux
// correction for party N-1.
type Round struct {
	N        int
	KeyBits  int // LowMCN
	AndGates int // 3*R*M
	Tapes    []*Tape
	AuxBits  []byte // view_size bytes; only meaningful for party N-1
}

// tapeByteLen returns the byte length of one party's tape buffer: the
// keyBits-wide key-share prefix plus 2 bits per AND gate (mask bit plus
// companion rerandomization bit). This is a deliberate reinterpretation of
// spec.md's glossary entry, which states Tape[t][j] as exactly 2*view_size
// bytes — see DESIGN.md's Open Question decisions for why the two
// sub-streams this tape actually carries (the key share and the 2-bit-per-
// gate AND stream) don't reduce to that formula, and why the deviation is
// confined to this package.
func tapeByteLen(keyBits, andGates int) int {
	return bitvec.ByteLen(keyBits) + bitvec.ByteLen(2*andGates)
}

// NewRound allocates N empty tapes, each sized to hold the key-share prefix
// plus 2 bits per AND gate (spec.md §4.1).
func NewRound(n, viewSize, keyBits, andGates int) *Round {
	tapes := make([]*Tape, n)
	buflen := tapeByteLen(keyBits, andGates)
	for j := range tapes {
		tapes[j] = &Tape{Buf: make([]byte, buflen)}
	}
	return &Round{N: n, KeyBits: keyBits, AndGates: andGates, Tapes: tapes, AuxBits: make([]byte, viewSize)}
}

// Expand fills all N tapes for round t from their seeds, absorbing salt
// and (t, j) for domain separation, 4 parties at a time per spec.md §4.1.
// seeds[j] must be r.N seed-sized byte slices.
func Expand(r *Round, seeds [][]byte, salt []byte, t uint16) error {
	if len(seeds) != r.N {
		return fmt.Errorf("tape: expected %d seeds, got %d", r.N, len(seeds))
	}
	if r.N%4 != 0 {
		return fmt.Errorf("tape: N=%d must be a multiple of 4", r.N)
	}
	tapeLen := len(r.Tapes[0].Buf)
	for j := 0; j < r.N; j += 4 {
		b := xof.NewBatch4(xof.PrefixTapeExpand)
		b.Update(seeds[j], seeds[j+1], seeds[j+2], seeds[j+3])
		b.UpdateAll(salt)
		b.UpdateU16LE(t)
		b.UpdateU16sLELanes(uint16(j), uint16(j+1), uint16(j+2), uint16(j+3))
		out := [4][]byte{
			make([]byte, tapeLen), make([]byte, tapeLen),
			make([]byte, tapeLen), make([]byte, tapeLen),
		}
		b.Squeeze(out)
		for k := 0; k < 4; k++ {
			r.Tapes[j+k].Buf = out[k]
			r.Tapes[j+k].pos = 0
		}
	}
	return nil
}

// KeyShare returns party j's share of the LowMC key (bits [0, KeyBits)).
func (r *Round) KeyShare(j int) []byte {
	return r.Tapes[j].Buf[:bitvec.ByteLen(r.KeyBits)]
}

// ParityKey XORs every party's key share into the "LowMC key" spec.md
// §4.2(a) describes: the first n bits of the XOR of all N tape buffers.
func (r *Round) ParityKey() []byte {
	out := make([]byte, bitvec.ByteLen(r.KeyBits))
	for j := 0; j < r.N; j++ {
		share := r.KeyShare(j)
		for i := range out {
			out[i] ^= share[i]
		}
	}
	return out
}

// ResetCursor rewinds every party's AND-gate cursor to 0, so that online
// simulation re-walks the identical bit sequence pre-processing consumed
// (spec.md §4.2(d): "Reset pos to 0 so online simulation consumes the same
// mask stream").
func (r *Round) ResetCursor() {
	for _, t := range r.Tapes {
		t.pos = 0
	}
}

// andGateBitOffset returns the bit offset of AND-gate index g's 2-bit group
// within a party's tape buffer, after the KeyBits-wide key-share prefix.
func (r *Round) andGateBitOffset(g int) int { return r.KeyBits + 2*g }

// GateMaskBit reads the effective (aux-corrected for party N-1) mask bit
// for AND gate g, party j: the first of the two bits the gate consumes.
func (r *Round) GateMaskBit(j, g int) byte {
	off := r.andGateBitOffset(g)
	if j == r.N-1 {
		return bitvec.Get(r.AuxBits, g)
	}
	return bitvec.Get(r.Tapes[j].Buf, off)
}

// RawGateBit reads party j's own uncorrected first tape bit for AND gate g,
// bypassing the aux override — used only by preprocess/lowmc.ComputeAux to
// observe party N-1's pre-correction value while computing AuxBits.
func (r *Round) RawGateBit(j, g int) byte {
	return bitvec.Get(r.Tapes[j].Buf, r.andGateBitOffset(g))
}

// GateBlindBit reads the companion rerandomization bit for AND gate g,
// party j (the second of the two bits the gate consumes); it is never
// corrected and cancels pairwise across neighboring parties in the online
// simulation (lowmc.SimulateOnline).
func (r *Round) GateBlindBit(j, g int) byte {
	off := r.andGateBitOffset(g) + 1
	return bitvec.Get(r.Tapes[j].Buf, off)
}

// SetAuxBits installs an externally supplied aux correction (verifier,
// opened round where the unopened party is not N-1), matching spec.md
// §4.8. It does not touch any party's tape; ZeroTape does that.
func (r *Round) SetAuxBits(aux []byte) {
	copy(r.AuxBits, aux)
}

// ZeroTape clears party j's tape (used by the verifier for the unopened
// party, spec.md §4.8).
func (r *Round) ZeroTape(j int) {
	for i := range r.Tapes[j].Buf {
		r.Tapes[j].Buf[i] = 0
	}
}
