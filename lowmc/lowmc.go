// Package lowmc is the "compute_aux / simulate_online collaborator" spec.md
// §1 and §4.2 describe as an external, documented-interface dependency: an
// MPC-friendly block cipher with few AND gates per round, with a LowMC-shaped
// 3-bit s-box layer and linear layer (spec.md explicitly places
// LowMC's own internals out of the signature core's scope; this package is
// the minimal concrete cipher the core needs to exercise that interface).
//
// Every wire in the cipher is carried through the circuit in split form:
// a public vector Pub (ByteLen(LowMCN) bytes) plus, for the MPC paths, one
// mask-share vector per party. The real wire value is Pub XOR the XOR of
// all mask shares. Pre-processing (ComputeAux) only ever touches the mask
// shares; online simulation (SimulateOnline) advances both Pub and the
// shares together, recording each party's local AND-gate contribution into
// the message log.
package lowmc

import (
	"fmt"

	"github.com/DongLeiGryphonSecure/picnic3/internal/bitvec"
	"github.com/DongLeiGryphonSecure/picnic3/params"
	"github.com/DongLeiGryphonSecure/picnic3/xof"
)

// Cipher holds the deterministically generated public material for one
// parameter set: R linear-layer matrices, R+1 key-schedule matrices (the
// round-0 entry is conceptually identity and is never stored), and R round
// constants.
type Cipher struct {
	P           params.Bundle
	n           int
	linMats     []matrix
	keyMats     []matrix // length R; keyMats[r] is K_{r+1}'s matrix, round 0 uses identity
	roundConsts [][]byte
}

// NewCipher derives a cipher's public matrices and constants from the
// parameter bundle via a dedicated XOF stream, so every signer/verifier
// using the same bundle reconstructs byte-identical public material.
func NewCipher(p params.Bundle) *Cipher {
	n := p.LowMCN
	c := &Cipher{P: p, n: n}
	gen := xof.New(prefixLowMCMatrices)
	gen.UpdateU16LE(uint16(p.LowMCN))
	gen.UpdateU16LE(uint16(p.LowMCR))
	gen.UpdateU16LE(uint16(p.LowMCM))

	c.keyMats = make([]matrix, p.LowMCR)
	for r := range c.keyMats {
		c.keyMats[r] = genMatrix(gen, n)
	}
	c.linMats = make([]matrix, p.LowMCR)
	c.roundConsts = make([][]byte, p.LowMCR)
	for r := range c.linMats {
		c.linMats[r] = genMatrix(gen, n)
		rc := make([]byte, bitvec.ByteLen(n))
		gen.Squeeze(rc)
		c.roundConsts[r] = rc
	}
	return c
}

// sboxReal applies the 3-bit s-box a' = a⊕bc, b' = b⊕ac, c' = c⊕ab (the
// same map onlineSboxPass evaluates in MPC form) to the first 3*m bits of
// state in place, leaving the remaining n-3m bits (the identity part)
// untouched.
func (c *Cipher) sboxReal(state []byte) {
	m := c.P.LowMCM
	for k := 0; k < m; k++ {
		base := 3 * k
		a := bitvec.Get(state, base)
		b := bitvec.Get(state, base+1)
		cc := bitvec.Get(state, base+2)
		na := a ^ (b & cc)
		nb := b ^ (a & cc)
		nc := cc ^ (a & b)
		bitvec.Set(state, base, na)
		bitvec.Set(state, base+1, nb)
		bitvec.Set(state, base+2, nc)
	}
}

// Encrypt runs the plain (non-MPC) cipher; used for generating test and
// benchmark fixtures and by cmd/picnic3sign and bench/paramsweep, which
// derive the public ciphertext from a raw key and plaintext before calling
// Sign.
func (c *Cipher) Encrypt(key, plaintext []byte) []byte {
	n := c.n
	state := make([]byte, bitvec.ByteLen(n))
	copy(state, plaintext)
	xorInto(state, key) // K_0 = identity
	for r := 0; r < c.P.LowMCR; r++ {
		c.sboxReal(state)
		state = mulVec(c.linMats[r], state, n)
		xorInto(state, c.roundConsts[r])
		xorInto(state, mulVec(c.keyMats[r], key, n))
	}
	return state
}

// roundKeyTerm returns KeyMat_r * v for round index r (0-based into
// c.keyMats, i.e. the key round applied after round r's s-box+linear step).
func (c *Cipher) roundKeyTerm(r int, v []byte) []byte {
	return mulVec(c.keyMats[r], v, c.n)
}

var errBadInputSize = fmt.Errorf("lowmc: key/plaintext size mismatch with parameter bundle")

func (c *Cipher) checkSize(bufs ...[]byte) error {
	want := bitvec.ByteLen(c.n)
	for _, b := range bufs {
		if len(b) != want {
			return errBadInputSize
		}
	}
	return nil
}
