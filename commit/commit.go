// Package commit implements three of the four commitment layers of spec.md
// §4.3-4.6: per-party seed commitments C[t][j], per-round commitments Ch[t]
// and view commitments Cv[t]; the fourth, the Fiat-Shamir transcript, is in
// package challenge. Each commitment binds every field spec.md requires via the
// xof package's domain-separated, field-ordered absorption.
package commit

import (
	"github.com/DongLeiGryphonSecure/picnic3/mlog"
	"github.com/DongLeiGryphonSecure/picnic3/xof"
)

// Party computes C[t][j] = H(seed_j ‖ aux? ‖ salt ‖ t ‖ j). aux must be nil
// unless j is the N-1 party (spec.md §4.3: only the last party's
// commitment binds aux_bits).
func Party(digestSize int, seed, aux, salt []byte, t, j uint16) []byte {
	out := make([]byte, digestSize)
	h := xof.New(xof.PrefixSeedCommit)
	h.Update(seed)
	if aux != nil {
		h.Update(aux)
	}
	h.Update(salt)
	h.UpdateU16LE(t)
	h.UpdateU16LE(j)
	h.Squeeze(out)
	return out
}

// PartyBatch4 commits four consecutive parties j..j+3 at once, none of
// which may be the N-1 party (spec.md §4.3: "A 4-way batched form is used
// wherever j mod 4 = 0 and none of the four is N−1").
func PartyBatch4(digestSize int, seeds [4][]byte, salt []byte, t uint16, j uint16) [4][]byte {
	b := xof.NewBatch4(xof.PrefixSeedCommit)
	b.Update(seeds[0], seeds[1], seeds[2], seeds[3])
	b.UpdateAll(salt)
	b.UpdateU16LE(t)
	b.UpdateU16sLELanes(j, j+1, j+2, j+3)
	var out [4][]byte
	for i := range out {
		out[i] = make([]byte, digestSize)
	}
	b.Squeeze(out)
	return out
}

// Round computes Ch[t] = H(C[t][0] ‖ ... ‖ C[t][N-1]).
func Round(digestSize int, cs [][]byte) []byte {
	out := make([]byte, digestSize)
	h := xof.New(xof.PrefixRoundCommit)
	for _, c := range cs {
		h.Update(c)
	}
	h.Squeeze(out)
	return out
}

// RoundBatch4 computes four rounds' Ch digests in one batched call,
// spec.md §4.4's "4-way batched form hashes four Ch digests in parallel
// whenever t mod 4 = 0".
func RoundBatch4(digestSize int, css [4][][]byte) [4][]byte {
	b := xof.NewBatch4(xof.PrefixRoundCommit)
	n := len(css[0])
	for i := 0; i < n; i++ {
		b.Update(css[0][i], css[1][i], css[2][i], css[3][i])
	}
	var out [4][]byte
	for i := range out {
		out[i] = make([]byte, digestSize)
	}
	b.Squeeze(out)
	return out
}

// View computes Cv[t] = H(input ‖ msgs[0] ‖ ... ‖ msgs[N-1]), where the
// number of bytes taken from each log equals ceil(log.pos/8) (spec.md
// §4.5). All party cursors must already agree; View returns an error
// otherwise, which mpcsim passes up to its caller unchanged.
func View(digestSize int, input []byte, round *mlog.Round) ([]byte, error) {
	n, err := round.SealedByteLen()
	if err != nil {
		return nil, err
	}
	out := make([]byte, digestSize)
	h := xof.New(xof.PrefixViewCommit)
	h.Update(input)
	for j := 0; j < round.N; j++ {
		h.Update(round.Logs[j][:n])
	}
	h.Squeeze(out)
	return out, nil
}
