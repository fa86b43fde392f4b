package picnic3

import (
	"github.com/DongLeiGryphonSecure/picnic3/commit"
	"github.com/DongLeiGryphonSecure/picnic3/internal/bitvec"
	"github.com/DongLeiGryphonSecure/picnic3/params"
)

// outerTreeDomain is the round-index value passed to the outer seed tree
// (over T round seeds) so its child derivations never collide with an
// inner per-round tree's derivations, which use genuine round indices in
// [0, T). T is at most 601 for the standard L5 preset, far below this.
const outerTreeDomain uint16 = 0xFFFF

// commitAllParties computes C[t][0..N-1], batching every full quartet not
// containing party N-1 and falling back to individual commit.Party calls
// for the final quartet (which always contains N-1, since N is a multiple
// of 4) — spec.md §4.3's batching guidance, with the one quartet that
// can't be batched committed party by party.
func commitAllParties(p params.Bundle, seeds [][]byte, aux []byte, salt []byte, t uint16) [][]byte {
	cs := make([][]byte, p.N)
	batchEnd := p.N - 4
	for j := 0; j < batchEnd; j += 4 {
		var quad [4][]byte
		copy(quad[:], seeds[j:j+4])
		out := commit.PartyBatch4(p.DigestSize, quad, salt, t, uint16(j))
		for k := 0; k < 4; k++ {
			cs[j+k] = out[k]
		}
	}
	for j := batchEnd; j < p.N; j++ {
		var partyAux []byte
		if j == p.N-1 {
			partyAux = aux
		}
		cs[j] = commit.Party(p.DigestSize, seeds[j], partyAux, salt, t, uint16(j))
	}
	return cs
}

// chForAllRounds computes Ch[t] for every round, batching groups of 4
// rounds at a time with a single-round fallback for the tail (spec.md
// §4.4: T need not be a multiple of 4).
func chForAllRounds(p params.Bundle, cs [][][]byte) [][]byte {
	chs := make([][]byte, p.T)
	t := 0
	for ; t+4 <= p.T; t += 4 {
		var quad [4][][]byte
		copy(quad[:], cs[t:t+4])
		out := commit.RoundBatch4(p.DigestSize, quad)
		for k := 0; k < 4; k++ {
			chs[t+k] = out[k]
		}
	}
	for ; t < p.T; t++ {
		chs[t] = commit.Round(p.DigestSize, cs[t])
	}
	return chs
}

// partyForRound builds the t -> challengeP[i] lookup (opened round t to its
// unopened party) picnic3 uses instead of relying on any ordering of
// challengeC.
func partyForRound(challengeC, challengeP []int) map[int]int {
	m := make(map[int]int, len(challengeC))
	for i, t := range challengeC {
		m[t] = challengeP[i]
	}
	return m
}

// zeroPaddingBits clears every bit in buf from bitLen up to len(buf)*8, the
// defensive counterpart of bitvec.TrailingZeroBits used when a caller must
// guarantee zero padding rather than merely check it (spec.md §4.2/§4.7:
// "zero all bits from position n upward in the padding region").
func zeroPaddingBits(buf []byte, bitLen int) {
	total := len(buf) * 8
	for i := bitLen; i < total; i++ {
		bitvec.Set(buf, i, 0)
	}
}

// sealedMsgsBytes returns a view_size buffer holding party j's message-log
// content up to its sealed byte length, with every byte past that length
// zero, as spec.md §4.5/§6.2 commits to and serializes it.
func sealedMsgsBytes(viewSize int, log []byte, pos int) []byte {
	n := bitvec.ByteLen(pos)
	out := make([]byte, viewSize)
	copy(out, log[:n])
	return out
}

// unflattenSeeds splits a flat byte blob (iSeedInfo/seedInfo as carried on
// the wire) back into seedSize-byte chunks.
func unflattenSeeds(flat []byte, seedSize int) [][]byte {
	if seedSize == 0 || len(flat)%seedSize != 0 {
		return nil
	}
	n := len(flat) / seedSize
	out := make([][]byte, n)
	for i := range out {
		out[i] = flat[i*seedSize : (i+1)*seedSize]
	}
	return out
}

// fillHiddenSeed replaces a reconstructed seed slice's nil hidden-leaf
// entries with a fixed-size zero placeholder, so the result is safe to pass
// to tape.Expand (which requires a same-length seed per party even though
// the hidden party's derived tape is discarded immediately via
// tape.Round.ZeroTape).
func fillHiddenSeed(seeds [][]byte, seedSize int) [][]byte {
	out := make([][]byte, len(seeds))
	for i, s := range seeds {
		if s == nil {
			out[i] = make([]byte, seedSize)
			continue
		}
		out[i] = s
	}
	return out
}
