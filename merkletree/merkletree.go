// Package merkletree is the Merkle-tree external collaborator spec.md §1
// and §6.2 describe: a balanced binary tree over the T round view
// commitments Cv[t], consumed via create/build/open/verify. Adapted from
// DECS/merkle.go's single-leaf path design, generalized here to open many
// leaves (the Tau opened rounds) in one compact multi-leaf proof instead of
// Tau separate root-to-leaf paths.
package merkletree

import (
	"github.com/DongLeiGryphonSecure/picnic3/xof"
)

const (
	leafPrefix byte = 0x20
	nodePrefix byte = 0x21
)

// Tree is a full binary Merkle tree padded up to a power of two, with
// missing leaves hashed as all-zero placeholders (spec.md §6.2: unopened
// leaf slots never need real content since they are never opened).
type Tree struct {
	digestSize int
	layers     [][][]byte // layers[0] = leaves
}

// PaddedSize returns the next power of two >= n, the padded leaf count a
// Tree built over n leaves will have — callers that only hold a root and a
// proof (no Tree) use this to call Verify.
func PaddedSize(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}

// Create allocates the padded leaf layer; callers fill it via SetLeaf
// before calling Build. n is the true leaf count (T); the tree pads to the
// next power of two.
func Create(digestSize, n int) *Tree {
	size := 1
	for size < n {
		size <<= 1
	}
	leaves := make([][]byte, size)
	for i := range leaves {
		leaves[i] = make([]byte, digestSize)
	}
	return &Tree{digestSize: digestSize, layers: [][][]byte{leaves}}
}

// SetLeaf installs the pre-hashed content for leaf i (spec.md's Cv[t]).
func (t *Tree) SetLeaf(i int, content []byte) {
	hashLeaf(t.digestSize, content, t.layers[0][i])
}

func hashLeaf(digestSize int, content, out []byte) {
	xof.Digest(leafPrefix, out, content)
}

func hashNode(digestSize int, left, right, out []byte) {
	xof.Digest(nodePrefix, out, left, right)
}

// Build computes every internal layer up to the root. Call after every leaf
// has been installed via SetLeaf.
func (t *Tree) Build() {
	for sz := len(t.layers[0]); sz > 1; sz >>= 1 {
		prev := t.layers[len(t.layers)-1]
		next := make([][]byte, sz/2)
		for i := 0; i < sz; i += 2 {
			out := make([]byte, t.digestSize)
			hashNode(t.digestSize, prev[i], prev[i+1], out)
			next[i/2] = out
		}
		t.layers = append(t.layers, next)
	}
}

// Root returns the tree's root digest.
func (t *Tree) Root() []byte {
	top := t.layers[len(t.layers)-1]
	return top[0]
}

// NumLeaves returns the padded leaf count.
func (t *Tree) NumLeaves() int { return len(t.layers[0]) }

// Depth returns the number of non-leaf layers.
func (t *Tree) Depth() int { return len(t.layers) - 1 }
