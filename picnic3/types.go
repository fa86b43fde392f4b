// Package picnic3 is the Picnic3 MPC-in-the-Head signature core (spec.md
// §1): it composes params, tape, commit, preprocess, mpcsim, seedtree,
// merkletree and challenge into the Signer and Verifier control flow
// (spec.md §4.7-§4.8), the Signature data model (spec.md §3), and its
// bit-exact wire format (spec.md §4.9/§6.2).
package picnic3

import "github.com/DongLeiGryphonSecure/picnic3/merkletree"

// PublicKey is the (plaintext, ciphertext) pair the signer proves
// knowledge of a LowMC key for: ciphertext = LowMC(privateKey, plaintext).
type PublicKey struct {
	Plaintext  []byte
	Ciphertext []byte
}

// PrivateKey is the raw LowMC key bits, InputOutputSize bytes.
type PrivateKey struct {
	Key []byte
}

// RoundProof is Proof[t] for an opened round t (spec.md §3 "Proof[t]"):
// present iff t is a member of the signature's challengeC.
type RoundProof struct {
	SeedInfo []byte // inner seed-tree reveal hiding party Unopened (spec.md §4.7 "seedInfo")
	Aux      []byte // nil iff Unopened == N-1 (spec.md §4.7 "aux")
	Input    []byte // masked key, input_output_size bytes
	Msgs     []byte // unopened party's recorded message-log content, view_size bytes
	C        []byte // unopened party's seed commitment, digest_size bytes
	Unopened int     // challengeP[idx(t)] — kept for convenience, not separately serialized
}

// Signature is the full proof object (spec.md §3 "Signature"). ChallengeC
// and ChallengeP are redundant with Challenge — re-derivable by
// challenge.Expand — and are not written to the wire; Deserialize
// recomputes them and ignores any externally supplied value.
type Signature struct {
	Challenge []byte
	Salt      []byte
	ISeedInfo []byte            // outer seed-tree reveal hiding the Tau opened rounds (spec.md §4.7 "iSeedInfo")
	CvInfo    *merkletree.Proof // Merkle inclusion proof reconstructing hCv from the opened rounds' Cv leaves

	ChallengeC []int // Tau distinct round indices, in discovery order
	ChallengeP []int // ChallengeP[i] is the unopened party for round ChallengeC[i]

	Proofs []*RoundProof // dense, length T; nil iff its index is not in ChallengeC
}
