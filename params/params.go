// Package params defines the immutable instance constants shared by every
// picnic3 operation: party/round counts, LowMC dimensions and byte sizes.
package params

import (
	"errors"
	"fmt"
)

// MaxDigest bounds DigestSize; no supported XOF squeezes more than this.
const MaxDigest = 64

// SaltSize is fixed across every parameter set.
const SaltSize = 32

// Bundle is the read-only parameter set threaded through every core
// operation. It is never mutated after construction.
type Bundle struct {
	N int // number of MPC parties, multiple of 4
	T int // total rounds
	Tau int // opened rounds, Tau < T

	LowMCN int // LowMC block/key size in bits
	LowMCR int // LowMC rounds
	LowMCM int // LowMC S-boxes per round

	SeedSize        int
	DigestSize      int
	ViewSize        int // bytes
	InputOutputSize int // bytes, ceil(LowMCN/8)
}

// NewBundle validates and returns a Bundle. It is the only constructor;
// callers should prefer the named presets (L1, L3, L5) unless a bespoke
// parameter set is genuinely required.
func NewBundle(n, t, tau, lowmcN, lowmcR, lowmcM, seedSize, digestSize, viewSize, inputOutputSize int) (Bundle, error) {
	b := Bundle{
		N: n, T: t, Tau: tau,
		LowMCN: lowmcN, LowMCR: lowmcR, LowMCM: lowmcM,
		SeedSize: seedSize, DigestSize: digestSize,
		ViewSize: viewSize, InputOutputSize: inputOutputSize,
	}
	if err := b.Validate(); err != nil {
		return Bundle{}, err
	}
	return b, nil
}

// Validate checks every invariant from the data model in one place.
func (b Bundle) Validate() error {
	if b.N <= 0 || b.N%4 != 0 {
		return fmt.Errorf("params: N must be a positive multiple of 4, got %d", b.N)
	}
	if b.T <= 0 {
		return errors.New("params: T must be positive")
	}
	if b.Tau <= 0 || b.Tau >= b.T {
		return fmt.Errorf("params: Tau (%d) must be strictly less than T (%d)", b.Tau, b.T)
	}
	if b.LowMCN <= 0 || b.LowMCR <= 0 || b.LowMCM <= 0 {
		return errors.New("params: LowMC dimensions must be positive")
	}
	if b.SeedSize <= 0 {
		return errors.New("params: SeedSize must be positive")
	}
	if b.DigestSize <= 0 || b.DigestSize > MaxDigest {
		return fmt.Errorf("params: DigestSize (%d) must be in (0, %d]", b.DigestSize, MaxDigest)
	}
	if b.ViewSize*8 < 3*b.LowMCR*b.LowMCM {
		return fmt.Errorf("params: ViewSize*8 (%d) must be >= 3*R*M (%d)", b.ViewSize*8, 3*b.LowMCR*b.LowMCM)
	}
	if b.InputOutputSize <= 0 {
		return errors.New("params: InputOutputSize must be positive")
	}
	return nil
}

// AndSizeBits is the number of AND-gate mask bits consumed per round: 3 per
// S-box application (bc, ac, ab), LowMCM S-boxes per round, LowMCR rounds.
func (b Bundle) AndSizeBits() int { return 3 * b.LowMCR * b.LowMCM }

// BitsPerChunkC is the challenge-expansion chunk width for round indices.
func (b Bundle) BitsPerChunkC() int { return ceilLog2(b.T) }

// BitsPerChunkP is the challenge-expansion chunk width for party indices.
func (b Bundle) BitsPerChunkP() int { return ceilLog2(b.N) }

func ceilLog2(v int) int {
	if v <= 1 {
		return 1
	}
	bits := 0
	for (1 << bits) < v {
		bits++
	}
	if bits < 4 {
		return 4
	}
	return bits
}
