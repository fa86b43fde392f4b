package lowmc

import (
	"github.com/DongLeiGryphonSecure/picnic3/internal/bitvec"
	"github.com/DongLeiGryphonSecure/picnic3/internal/ct"
	"github.com/DongLeiGryphonSecure/picnic3/mlog"
	"github.com/DongLeiGryphonSecure/picnic3/tape"
)

// SimulateOnline runs the N-party online MPC evaluation of the cipher on
// (maskedKey, plaintext), recording each party's per-gate view contribution
// into msgs (spec.md §4.2 item 5 / §2 item 5). If msgs.Unopened is >= 0,
// that party's contribution is read back from msgs instead of computed, so
// the same code path serves both the signer (all parties known) and the
// verifier (one party's randomness withheld).
//
// It returns whether the reconstructed public output equals pubKey; a
// false return, not an error, is how an inconsistent proof is reported —
// callers collapse it to the single opaque verification-failure sentinel
// (spec.md §7).
func SimulateOnline(c *Cipher, maskedKey, plaintext []byte, tapeRound *tape.Round, msgs *mlog.Round, pubKey []byte) (bool, error) {
	n := c.n
	if err := c.checkSize(maskedKey, plaintext, pubKey); err != nil {
		return false, err
	}
	shareBytes := bitvec.ByteLen(n)
	shares := make([][]byte, tapeRound.N)
	for j := range shares {
		shares[j] = make([]byte, shareBytes)
		copy(shares[j], tapeRound.KeyShare(j))
	}
	pub := make([]byte, shareBytes)
	copy(pub, plaintext)
	xorInto(pub, maskedKey) // K_0 = identity

	gate := 0
	for r := 0; r < c.P.LowMCR; r++ {
		onlineSboxPass(pub, shares, tapeRound, msgs, &gate, c.P.LowMCM)
		pub = mulVec(c.linMats[r], pub, n)
		xorInto(pub, c.roundConsts[r])
		xorInto(pub, c.roundKeyTerm(r, maskedKey))
		for j := range shares {
			shares[j] = mulVec(c.linMats[r], shares[j], n)
			xorInto(shares[j], c.roundKeyTerm(r, tapeRound.KeyShare(j)))
		}
	}

	out := make([]byte, shareBytes)
	copy(out, pub)
	for j := range shares {
		xorInto(out, shares[j])
	}
	return bitesEqual(out, pubKey), nil
}

func bitesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var diff byte
	for i := range a {
		diff |= a[i] ^ b[i]
	}
	return diff == 0
}

// onlineSboxPass advances Pub and every party's mask share through one
// round's s-box layer, recording each party's local AND-gate contribution
// (spec.md §4.2 item 5(a)-(c)).
func onlineSboxPass(pub []byte, shares [][]byte, tapeRound *tape.Round, msgs *mlog.Round, gate *int, m int) {
	n := len(shares)
	for k := 0; k < m; k++ {
		base := 3 * k
		triples := [3][2]int{{base + 1, base + 2}, {base, base + 2}, {base, base + 1}}
		linTerm := [3]int{base, base + 1, base + 2}
		var newPubBits [3]byte
		for g, pair := range triples {
			x, y := pair[0], pair[1]
			pubX, pubY := bitvec.Get(pub, x), bitvec.Get(pub, y)

			var zPub byte
			for j := 0; j < n; j++ {
				// j is a loop counter and msgs.Unopened is the Fiat-Shamir-
				// derived (public) unopened party index for this round,
				// never secret share material, so branching on their
				// equality here is not a secret-dependent branch.
				ct.AssertNoSecretBranch("party index and msgs.Unopened are both public")
				if j == msgs.Unopened {
					bit := bitvec.Get(msgs.Logs[j], msgs.Pos(j))
					msgs.WriteBit(j, bit)
					zPub ^= bit
					continue
				}
				mx := bitvec.Get(shares[j], x)
				my := bitvec.Get(shares[j], y)
				prev := (j - 1 + n) % n
				blind := tapeRound.GateBlindBit(j, *gate) ^ tapeRound.GateBlindBit(prev, *gate)
				w := tapeRound.GateMaskBit(j, *gate)
				z := (pubX & my) ^ (pubY & mx) ^ w ^ blind
				if j == 0 {
					z ^= pubX & pubY
				}
				msgs.WriteBit(j, z)
				zPub ^= z
			}
			newPubBits[g] = bitvec.Get(pub, linTerm[g]) ^ zPub
			*gate++
		}
		// Mask shares at these 3 positions are unchanged by the s-box
		// (spec.md §4.2(b)/(c): new mask = old linear-term mask, and the
		// a,b,c triple maps onto itself positionally) — only Pub moves.
		for g, pos := range linTerm {
			bitvec.Set(pub, pos, newPubBits[g])
		}
	}
}
