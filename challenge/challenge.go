// Package challenge implements the Fiat-Shamir transcript commitment and
// its expansion into the cut-and-choose challenge (spec.md §4.6): which Tau
// of T rounds get opened (challengeC), and which single party stays hidden
// in each opened round (challengeP).
package challenge

import (
	"github.com/DongLeiGryphonSecure/picnic3/internal/bitvec"
	"github.com/DongLeiGryphonSecure/picnic3/params"
	"github.com/DongLeiGryphonSecure/picnic3/xof"
)

// Transcript computes h = H(Ch[0] ‖ ... ‖ Ch[T-1] ‖ hCv ‖ salt ‖ pubKey ‖
// plaintext ‖ message), the Fiat-Shamir digest every other expansion step
// derives from (spec.md §4.6 item 1). hCv is the root of the Merkle tree
// built over Cv[0..T-1] (picnic3.Sign/Verify); chs must have exactly p.T
// entries, ascending by round index.
func Transcript(p params.Bundle, chs [][]byte, hCv, salt, pubKey, plaintext, message []byte) []byte {
	h := xof.New(xof.PrefixChallenge)
	for _, ch := range chs {
		h.Update(ch)
	}
	h.Update(hCv)
	h.Update(salt)
	h.Update(pubKey)
	h.Update(plaintext)
	h.Update(message)
	out := make([]byte, p.DigestSize)
	h.Squeeze(out)
	return out
}

// Expand derives challengeC (Tau distinct round indices, in the order they
// were discovered) and challengeP (one party index per opened round, may
// repeat) from the transcript digest h. challengeP[i] is the unopened party
// for round challengeC[i] — the two slices are positionally paired and
// callers must index them together, never rely on challengeC's order for
// anything beyond that pairing (picnic3 iterates rounds 0..T-1 and looks up
// each opened round's unopened party via a t->party map instead of assuming
// order). Chunks are sliced from h itself first; when the stream is
// exhausted before enough distinct round
// indices are found, h is rehashed with xof.HashPrefix1 and expansion
// continues (spec.md §4.6 items 2-3).
func Expand(p params.Bundle, h []byte) (challengeC []int, challengeP []int) {
	widthC := p.BitsPerChunkC()
	widthP := p.BitsPerChunkP()

	stream := newBitStream(h)
	seen := make(map[int]bool, p.Tau)
	for len(challengeC) < p.Tau {
		v := int(stream.next(widthC))
		if v >= p.T || seen[v] {
			continue
		}
		seen[v] = true
		challengeC = append(challengeC, v)
	}
	for i := 0; i < p.Tau; i++ {
		v := int(stream.next(widthP))
		for v >= p.N {
			v = int(stream.next(widthP))
		}
		challengeP = append(challengeP, v)
	}
	return challengeC, challengeP
}

// bitStream yields the bits of h, then an ever-growing pseudorandom bit
// sequence on demand, rehashing with xof.HashPrefix1 whenever the current
// block is exhausted.
type bitStream struct {
	seed []byte
	buf  []byte
	pos  int
}

func newBitStream(h []byte) *bitStream {
	s := &bitStream{seed: append([]byte(nil), h...)}
	s.buf = s.seed
	return s
}

func (s *bitStream) refill() {
	out := make([]byte, len(s.seed))
	xof.Digest(xof.HashPrefix1, out, s.seed)
	s.seed = out
	s.buf = out
	s.pos = 0
}

func (s *bitStream) next(width int) uint32 {
	if s.pos+width > len(s.buf)*8 {
		s.refill()
	}
	v := bitvec.ExtractChunk(s.buf, s.pos, width)
	s.pos += width
	return v
}
