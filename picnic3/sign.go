package picnic3

import (
	crand "crypto/rand"
	"fmt"

	"github.com/DongLeiGryphonSecure/picnic3/challenge"
	"github.com/DongLeiGryphonSecure/picnic3/lowmc"
	"github.com/DongLeiGryphonSecure/picnic3/merkletree"
	"github.com/DongLeiGryphonSecure/picnic3/mlog"
	"github.com/DongLeiGryphonSecure/picnic3/mpcsim"
	"github.com/DongLeiGryphonSecure/picnic3/params"
	"github.com/DongLeiGryphonSecure/picnic3/preprocess"
	"github.com/DongLeiGryphonSecure/picnic3/seedtree"
	"github.com/DongLeiGryphonSecure/picnic3/tape"
)

// roundState is everything Sign accumulates per round before the
// Fiat-Shamir challenge is known and proof assembly can begin.
type roundState struct {
	inner     *seedtree.Tree
	tapeRound *tape.Round
	msgs      *mlog.Round
	maskedKey []byte
	cs        [][]byte
}

// Sign produces a non-interactive proof of knowledge of priv for pub under
// c (spec.md §4.7). message is bound into the Fiat-Shamir transcript but
// otherwise opaque to the core.
func Sign(p params.Bundle, c *lowmc.Cipher, priv PrivateKey, pub PublicKey, message []byte) (*Signature, error) {
	salt := make([]byte, params.SaltSize)
	if _, err := crand.Read(salt); err != nil {
		return nil, fmt.Errorf("%w: salt: %v", ErrAlloc, err)
	}
	rootSeed := make([]byte, p.SeedSize)
	if _, err := crand.Read(rootSeed); err != nil {
		return nil, fmt.Errorf("%w: root seed: %v", ErrAlloc, err)
	}

	outerTree := seedtree.Generate(rootSeed, salt, outerTreeDomain, p.T, p.SeedSize)

	rounds := make([]*roundState, p.T)
	cvTree := merkletree.Create(p.DigestSize, p.T)

	for t := 0; t < p.T; t++ {
		roundSeed := outerTree.Leaf(t)
		inner := seedtree.Generate(roundSeed, salt, uint16(t), p.N, p.SeedSize)
		seeds := inner.Leaves()

		tr, err := preprocess.Round(c, p, seeds, salt, uint16(t))
		if err != nil {
			return nil, fmt.Errorf("%w: preprocess round %d: %v", ErrAlloc, t, err)
		}

		maskedKey := make([]byte, len(priv.Key))
		copy(maskedKey, priv.Key)
		parity := tr.ParityKey()
		for i := range maskedKey {
			maskedKey[i] ^= parity[i]
		}
		zeroPaddingBits(maskedKey, p.LowMCN)

		cs := commitAllParties(p, seeds, tr.AuxBits, salt, uint16(t))

		res, err := mpcsim.SignerRound(c, p, maskedKey, pub.Plaintext, pub.Ciphertext, tr)
		if err != nil {
			return nil, fmt.Errorf("%w: online simulation round %d: %v", ErrAlloc, t, err)
		}
		if !res.Consistent {
			return nil, fmt.Errorf("%w: round %d", ErrMPCInconsistent, t)
		}
		cvTree.SetLeaf(t, res.Cv)

		rounds[t] = &roundState{inner: inner, tapeRound: tr, msgs: res.Msgs, maskedKey: maskedKey, cs: cs}
	}
	cvTree.Build()

	cs := make([][][]byte, p.T)
	for t, r := range rounds {
		cs[t] = r.cs
	}
	chs := chForAllRounds(p, cs)
	hCv := cvTree.Root()

	transcript := challenge.Transcript(p, chs, hCv, salt, pub.Ciphertext, pub.Plaintext, message)
	challengeC, challengeP := challenge.Expand(p, transcript)

	iSeedInfo := flattenSeeds(outerTree.Reveal(challengeC))
	cvInfo := cvTree.Open(challengeC)

	proofs := make([]*RoundProof, p.T)
	for i, t := range challengeC {
		unopened := challengeP[i]
		r := rounds[t]
		seedInfo := flattenSeeds(r.inner.Reveal([]int{unopened}))

		var aux []byte
		if unopened != p.N-1 {
			aux = append([]byte(nil), r.tapeRound.AuxBits...)
		}

		msgsContent := sealedMsgsBytes(p.ViewSize, r.msgs.Logs[unopened], r.msgs.Pos(unopened))

		proofs[t] = &RoundProof{
			SeedInfo: seedInfo,
			Aux:      aux,
			Input:    r.maskedKey,
			Msgs:     msgsContent,
			C:        append([]byte(nil), r.cs[unopened]...),
			Unopened: unopened,
		}
	}

	return &Signature{
		Challenge:  transcript,
		Salt:       salt,
		ISeedInfo:  iSeedInfo,
		CvInfo:     cvInfo,
		ChallengeC: challengeC,
		ChallengeP: challengeP,
		Proofs:     proofs,
	}, nil
}

func flattenSeeds(seeds [][]byte) []byte {
	out := make([]byte, 0, len(seeds)*seedLen(seeds))
	for _, s := range seeds {
		out = append(out, s...)
	}
	return out
}

func seedLen(seeds [][]byte) int {
	if len(seeds) == 0 {
		return 0
	}
	return len(seeds[0])
}
