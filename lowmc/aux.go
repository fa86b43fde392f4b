package lowmc

import (
	"github.com/DongLeiGryphonSecure/picnic3/internal/bitvec"
	"github.com/DongLeiGryphonSecure/picnic3/tape"
)

// ComputeAux fills in tapeRound.AuxBits: the N-1th party's AND-gate
// correction stream, chosen so the N parties' mask shares are a consistent
// additive sharing of the real LowMC key's evolution through the circuit
// (spec.md §4.2). It only ever touches mask shares — no plaintext or public
// key is involved, matching the "preprocessing is input-independent"
// property the KKW-style cut-and-choose construction relies on.
func ComputeAux(c *Cipher, tapeRound *tape.Round) error {
	n := c.n
	shareBytes := bitvec.ByteLen(n)
	shares := make([][]byte, tapeRound.N)
	for j := range shares {
		shares[j] = make([]byte, shareBytes)
		copy(shares[j], tapeRound.KeyShare(j))
	}

	gate := 0
	for r := 0; r < c.P.LowMCR; r++ {
		auxSboxPass(shares, tapeRound, &gate, c.P.LowMCM)
		for j := range shares {
			shares[j] = mulVec(c.linMats[r], shares[j], n)
			xorInto(shares[j], c.roundKeyTerm(r, tapeRound.KeyShare(j)))
		}
	}
	return nil
}

// auxSboxPass processes one round's m s-box triples, computing the true
// mask product at each AND gate from all N shares and writing party N-1's
// correction bit into tapeRound.AuxBits so the N parties' raw tape bits sum
// to that product.
func auxSboxPass(shares [][]byte, tapeRound *tape.Round, gate *int, m int) {
	n := len(shares)
	for k := 0; k < m; k++ {
		base := 3 * k
		for _, pair := range [3][2]int{{base + 1, base + 2}, {base, base + 2}, {base, base + 1}} {
			x, y := pair[0], pair[1]
			var mx, my byte
			for j := 0; j < n; j++ {
				mx ^= bitvec.Get(shares[j], x)
				my ^= bitvec.Get(shares[j], y)
			}
			product := mx & my

			var sumRaw byte
			for j := 0; j < n-1; j++ {
				sumRaw ^= tapeRound.RawGateBit(j, *gate)
			}
			correction := product ^ sumRaw
			bitvec.Set(tapeRound.AuxBits, *gate, correction)
			*gate++
		}
		// The s-box's new mask shares equal the old linear-term shares
		// unchanged (spec.md §4.2(b)/(c): a'=a⊕bc carries mask_a forward
		// as-is). Since a,b,c map to the same 3 positions, no share bits
		// need rewriting here; SimulateOnline performs the analogous
		// collapse on Pub.
	}
}
