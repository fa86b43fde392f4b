package picnic3

import (
	"github.com/DongLeiGryphonSecure/picnic3/challenge"
	"github.com/DongLeiGryphonSecure/picnic3/internal/bitvec"
	"github.com/DongLeiGryphonSecure/picnic3/merkletree"
	"github.com/DongLeiGryphonSecure/picnic3/params"
	"github.com/DongLeiGryphonSecure/picnic3/seedtree"
)

// Serialize writes sig in the bit-exact wire layout spec.md §4.9/§6.2
// describes: challenge ‖ salt ‖ iSeedInfo ‖ cvInfo ‖ per opened round (in
// ascending t) { seedInfo ‖ aux_if_applicable ‖ input ‖ msgs ‖ C }.
// challengeC/challengeP and proof.Unopened are never written — a reader
// always re-derives them from the challenge digest alone.
func Serialize(p params.Bundle, sig *Signature) []byte {
	partyFor := partyForRound(sig.ChallengeC, sig.ChallengeP)

	out := make([]byte, 0, ExpectedLength(p, sig.ChallengeC, sig.ChallengeP))
	out = append(out, sig.Challenge...)
	out = append(out, sig.Salt...)
	out = append(out, sig.ISeedInfo...)
	for _, node := range sig.CvInfo.Nodes {
		out = append(out, node...)
	}

	for t := 0; t < p.T; t++ {
		proof := sig.Proofs[t]
		if proof == nil {
			continue
		}
		unopened := partyFor[t]
		out = append(out, proof.SeedInfo...)
		if unopened != p.N-1 {
			out = append(out, proof.Aux...)
		}
		out = append(out, proof.Input...)
		out = append(out, proof.Msgs...)
		out = append(out, proof.C...)
	}
	return out
}

// ExpectedLength computes the exact byte length a signature over
// challengeC/challengeP must have, before any per-round parsing happens
// (spec.md §4.9: "computes the exact expected byte length... and rejects
// any signature whose total length differs").
func ExpectedLength(p params.Bundle, challengeC, challengeP []int) int {
	total := p.DigestSize + params.SaltSize
	total += seedtree.RevealSize(p.T, challengeC) * p.SeedSize
	total += merkletree.OpenSize(merkletree.PaddedSize(p.T), challengeC) * p.DigestSize
	for _, unopened := range challengeP {
		total += seedtree.RevealSize(p.N, []int{unopened}) * p.SeedSize
		if unopened != p.N-1 {
			total += p.ViewSize
		}
		total += p.InputOutputSize
		total += p.ViewSize
		total += p.DigestSize
	}
	return total
}

// Deserialize parses data into a Signature, re-deriving challengeC and
// challengeP from the challenge digest rather than trusting anything on
// the wire to name them. It rejects a length mismatch (ErrBadSignatureLength)
// and any non-zero padding bit in aux/input/msgs (ErrBadPadding), per
// spec.md §4.9.
func Deserialize(p params.Bundle, data []byte) (*Signature, error) {
	if len(data) < p.DigestSize+params.SaltSize {
		return nil, ErrBadSignatureLength
	}
	challengeDigest := append([]byte(nil), data[:p.DigestSize]...)
	challengeC, challengeP := challenge.Expand(p, challengeDigest)

	want := ExpectedLength(p, challengeC, challengeP)
	if len(data) != want {
		return nil, ErrBadSignatureLength
	}

	r := &reader{buf: data}
	r.skip(p.DigestSize) // challenge already captured above
	salt := r.take(params.SaltSize)

	iSeedInfo := r.take(seedtree.RevealSize(p.T, challengeC) * p.SeedSize)
	cvNodeCount := merkletree.OpenSize(merkletree.PaddedSize(p.T), challengeC)
	cvNodes := make([][]byte, cvNodeCount)
	for i := range cvNodes {
		cvNodes[i] = r.take(p.DigestSize)
	}
	sortedC := append([]int(nil), challengeC...)
	insertionSort(sortedC)
	cvInfo := &merkletree.Proof{Indices: sortedC, Nodes: cvNodes}

	partyFor := partyForRound(challengeC, challengeP)
	proofs := make([]*RoundProof, p.T)
	opened := make(map[int]bool, len(challengeC))
	for _, t := range challengeC {
		opened[t] = true
	}
	for t := 0; t < p.T; t++ {
		if !opened[t] {
			continue
		}
		unopened := partyFor[t]
		seedInfo := r.take(seedtree.RevealSize(p.N, []int{unopened}) * p.SeedSize)

		var aux []byte
		if unopened != p.N-1 {
			aux = r.take(p.ViewSize)
			if !bitvec.TrailingZeroBits(aux, p.AndSizeBits()) {
				return nil, ErrBadPadding
			}
		}
		input := r.take(p.InputOutputSize)
		if !bitvec.TrailingZeroBits(input, p.LowMCN) {
			return nil, ErrBadPadding
		}
		msgs := r.take(p.ViewSize)
		if !bitvec.TrailingZeroBits(msgs, p.AndSizeBits()) {
			return nil, ErrBadPadding
		}
		cVal := r.take(p.DigestSize)

		proofs[t] = &RoundProof{
			SeedInfo: seedInfo,
			Aux:      aux,
			Input:    input,
			Msgs:     msgs,
			C:        cVal,
			Unopened: unopened,
		}
	}
	if r.err {
		return nil, ErrBadSignatureLength
	}

	return &Signature{
		Challenge:  challengeDigest,
		Salt:       salt,
		ISeedInfo:  iSeedInfo,
		CvInfo:     cvInfo,
		ChallengeC: challengeC,
		ChallengeP: challengeP,
		Proofs:     proofs,
	}, nil
}

// reader is a bounds-checked forward cursor over a byte slice whose total
// length was already validated by ExpectedLength; err is set (rather than
// panicking) if a caller's length arithmetic was wrong anyway.
type reader struct {
	buf []byte
	pos int
	err bool
}

func (r *reader) skip(n int) { r.pos += n }

func (r *reader) take(n int) []byte {
	if r.err || r.pos+n > len(r.buf) {
		r.err = true
		return nil
	}
	out := r.buf[r.pos : r.pos+n]
	r.pos += n
	return out
}

func insertionSort(v []int) {
	for i := 1; i < len(v); i++ {
		for j := i; j > 0 && v[j-1] > v[j]; j-- {
			v[j-1], v[j] = v[j], v[j-1]
		}
	}
}
