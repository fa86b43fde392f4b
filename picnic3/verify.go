package picnic3

import (
	"os"

	"github.com/DongLeiGryphonSecure/picnic3/challenge"
	"github.com/DongLeiGryphonSecure/picnic3/internal/ct"
	"github.com/DongLeiGryphonSecure/picnic3/internal/trace"
	"github.com/DongLeiGryphonSecure/picnic3/lowmc"
	"github.com/DongLeiGryphonSecure/picnic3/merkletree"
	"github.com/DongLeiGryphonSecure/picnic3/mpcsim"
	"github.com/DongLeiGryphonSecure/picnic3/params"
	"github.com/DongLeiGryphonSecure/picnic3/preprocess"
	"github.com/DongLeiGryphonSecure/picnic3/seedtree"
	"github.com/DongLeiGryphonSecure/picnic3/tape"
)

// Verify checks sig against pub and message (spec.md §4.8). Every distinct
// internal failure collapses to the single ErrVerificationFailed sentinel;
// the specific cause is only ever written to a PICNIC3_DEBUG=1 trace, never
// returned or allowed to affect timing (spec.md §7).
func Verify(p params.Bundle, c *lowmc.Cipher, pub PublicKey, message []byte, sig *Signature) error {
	ok, cause := verify(p, c, pub, message, sig)
	if !ok {
		trace.Milestone(os.Stderr, "picnic3: verify failed: %v\n", cause)
		return ErrVerificationFailed
	}
	return nil
}

func verify(p params.Bundle, c *lowmc.Cipher, pub PublicKey, message []byte, sig *Signature) (bool, error) {
	if len(sig.ChallengeC) != p.Tau || len(sig.ChallengeP) != p.Tau {
		return false, ErrChallengeMismatch
	}
	partyFor := partyForRound(sig.ChallengeC, sig.ChallengeP)
	opened := make(map[int]bool, len(sig.ChallengeC))
	for _, t := range sig.ChallengeC {
		opened[t] = true
	}

	outerLeaves, err := reconstructOuterSeeds(p, sig)
	if err != nil {
		return false, err
	}

	cs := make([][][]byte, p.T)
	cvLeaves := make(map[int][]byte, len(sig.ChallengeC))

	for t := 0; t < p.T; t++ {
		if !opened[t] {
			roundSeed := outerLeaves[t]
			if roundSeed == nil {
				return false, ErrSeedReconstructFailure
			}
			inner := seedtree.Generate(roundSeed, sig.Salt, uint16(t), p.N, p.SeedSize)
			seeds := inner.Leaves()
			tr, err := preprocess.Round(c, p, seeds, sig.Salt, uint16(t))
			if err != nil {
				return false, err
			}
			cs[t] = commitAllParties(p, seeds, tr.AuxBits, sig.Salt, uint16(t))
			continue
		}

		proof := sig.Proofs[t]
		if proof == nil {
			return false, ErrSeedReconstructFailure
		}
		unopened := partyFor[t]

		revealed := unflattenSeeds(proof.SeedInfo, p.SeedSize)
		if revealed == nil {
			return false, ErrSeedReconstructFailure
		}
		reconstructed := seedtree.Reconstruct(revealed, []int{unopened}, p.N, p.SeedSize, sig.Salt, uint16(t))
		seeds := fillHiddenSeed(reconstructed, p.SeedSize)

		round := tape.NewRound(p.N, p.ViewSize, p.LowMCN, p.AndSizeBits())
		if err := tape.Expand(round, seeds, sig.Salt, uint16(t)); err != nil {
			return false, err
		}
		round.ZeroTape(unopened)
		if unopened != p.N-1 {
			if proof.Aux == nil {
				return false, ErrBadPadding
			}
			round.SetAuxBits(proof.Aux)
		}

		cs[t] = commitAllParties(p, seeds, round.AuxBits, sig.Salt, uint16(t))
		cs[t][unopened] = proof.C

		res, err := mpcsim.VerifierRound(c, p, proof.Input, pub.Plaintext, pub.Ciphertext, round, unopened, proof.Msgs, p.AndSizeBits())
		if err != nil {
			return false, err
		}
		if !res.Consistent {
			return false, ErrMPCInconsistent
		}
		cvLeaves[t] = res.Cv
	}

	chs := chForAllRounds(p, cs)

	hCv, ok := merkletree.ComputeRoot(p.DigestSize, merkletree.PaddedSize(p.T), cvLeaves, sig.CvInfo)
	if !ok {
		return false, ErrMerkleVerifyFailure
	}

	transcript := challenge.Transcript(p, chs, hCv, sig.Salt, pub.Ciphertext, pub.Plaintext, message)
	if !ct.Equal(transcript, sig.Challenge) {
		return false, ErrChallengeMismatch
	}

	expectC, expectP := challenge.Expand(p, transcript)
	if !intSliceEqual(expectC, sig.ChallengeC) || !intSliceEqual(expectP, sig.ChallengeP) {
		return false, ErrChallengeMismatch
	}

	return true, nil
}

// reconstructOuterSeeds rebuilds every round seed except the Tau opened
// ones from sig.ISeedInfo (spec.md §4.8: "derive the round seed from
// iSeedInfo" for t not in ChallengeC).
func reconstructOuterSeeds(p params.Bundle, sig *Signature) ([][]byte, error) {
	revealed := unflattenSeeds(sig.ISeedInfo, p.SeedSize)
	if revealed == nil && len(sig.ISeedInfo) != 0 {
		return nil, ErrSeedReconstructFailure
	}
	return seedtree.Reconstruct(revealed, sig.ChallengeC, p.T, p.SeedSize, sig.Salt, outerTreeDomain), nil
}

func intSliceEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
