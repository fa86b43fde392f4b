// Package ct holds the constant-time discipline picnic3 applies to secret
// data (spec.md §5, §9: "no secret-dependent branches, no secret-dependent
// memory indexing, no early return on secret-dependent comparisons").
package ct

// Equal reports whether a and b are bitwise equal, in time independent of
// where the first difference falls — used for the challenge-digest
// comparison spec.md §9 requires to be constant-time. A length mismatch is
// public (it means the wire format was already rejected before this call),
// so it is checked eagerly.
func Equal(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var diff byte
	for i := range a {
		diff |= a[i] ^ b[i]
	}
	return diff == 0
}

// AssertNoSecretBranch documents, at the call site, that the surrounding
// branch is taken on PUBLIC data only (e.g. challengeC/challengeP,
// round/party indices after Fiat-Shamir declassification) even though it
// sits in code that otherwise handles secret material. It performs no
// check — spec.md §9 places static/dynamic taint auditing out of the
// core's scope — and exists purely as a reviewable marker.
func AssertNoSecretBranch(reason string) {}
