package picnic3

import "errors"

// Error taxonomy (spec.md §7). Signing returns the specific cause; every
// verification failure collapses to ErrVerificationFailed regardless of
// which check tripped, so a caller (and any timing channel) cannot tell
// BadPadding from MPCInconsistent from ChallengeMismatch apart — only
// internal/trace, gated by PICNIC3_DEBUG=1, ever names the specific cause.
var (
	ErrAlloc                  = errors.New("picnic3: allocation failure")
	ErrBadSignatureLength     = errors.New("picnic3: signature length does not match the length implied by its challenge")
	ErrBadPadding             = errors.New("picnic3: non-zero padding bit in a serialized field")
	ErrSeedReconstructFailure = errors.New("picnic3: seed-tree reveal info malformed")
	ErrMPCInconsistent        = errors.New("picnic3: online simulation disagreed with the public key for an opened round")
	ErrMerkleVerifyFailure    = errors.New("picnic3: view-commitment Merkle inclusion proof did not reconstruct the expected root")
	ErrChallengeMismatch      = errors.New("picnic3: recomputed challenge does not match the signature")

	// ErrVerificationFailed is the single opaque cause Verify ever returns.
	ErrVerificationFailed = errors.New("picnic3: signature verification failed")
)
