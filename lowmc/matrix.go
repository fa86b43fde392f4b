package lowmc

import (
	"math/bits"

	"github.com/DongLeiGryphonSecure/picnic3/internal/bitvec"
	"github.com/DongLeiGryphonSecure/picnic3/xof"
)

// prefixLowMCMatrices domain-separates the deterministic generation of the
// cipher's public linear layers, key-schedule matrices and round constants
// from every other XOF use in the core. Real LowMC derives these from a
// Grain LFSR seeded by the parameter set name; this reference
// implementation substitutes the already-wired SHAKE XOF for the same
// purpose, since LowMC's internal constant generation is explicitly out of
// the core's scope (spec.md §1) and no external LowMC package is part of
// the retrieved dependency pack.
const prefixLowMCMatrices byte = 0x10

// matrix is a row-major N x N GF(2) matrix, each row packed into
// bitvec.ByteLen(n) bytes.
type matrix [][]byte

func genMatrix(gen xof.XOF, n int) matrix {
	rowBytes := bitvec.ByteLen(n)
	rows := make(matrix, n)
	for i := range rows {
		row := make([]byte, rowBytes)
		gen.Squeeze(row)
		rows[i] = row
	}
	return rows
}

// dot returns the GF(2) inner product of two equal-length packed vectors.
func dot(a, b []byte) byte {
	var acc byte
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		acc ^= a[i] & b[i]
	}
	return byte(bits.OnesCount8(acc) & 1)
}

// mulVec computes m*v for an n-bit vector v, returning an n-bit result.
func mulVec(m matrix, v []byte, n int) []byte {
	out := make([]byte, bitvec.ByteLen(n))
	for i := 0; i < n; i++ {
		if dot(m[i], v) == 1 {
			bitvec.Set(out, i, 1)
		}
	}
	return out
}

// xorInto XORs src into dst in place; both must be the same length.
func xorInto(dst, src []byte) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}
