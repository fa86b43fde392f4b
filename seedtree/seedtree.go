// Package seedtree implements the per-round seed tree spec.md §6.1
// describes: a GGM-style binary tree deriving N party seeds from one round
// seed, with a reveal/reconstruct pair that lets the verifier recompute
// every leaf except one (the unopened party) from O(log N) released
// interior seeds instead of N-1 full leaf seeds. Generation follows the
// same XOF-child-derivation idiom commit and tape use throughout.
package seedtree

import "github.com/DongLeiGryphonSecure/picnic3/xof"

const prefixSeedTree byte = 0x30

// Tree holds every node's seed, flattened as a binary heap: node 0 is the
// root, node i's children are 2i+1 and 2i+2.
type Tree struct {
	seedSize int
	n        int // true leaf count (may be less than the padded size)
	size     int // padded leaf count, power of two
	nodes    [][]byte
}

func nextPow2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}

// Generate derives a full tree from rootSeed, salt and round index t. Only
// the first n leaves (of the padded 2*size-1 node array) are meaningful;
// padding leaves beyond n are still derived deterministically but never
// used.
func Generate(rootSeed, salt []byte, t uint16, n, seedSize int) *Tree {
	size := nextPow2(n)
	tr := &Tree{seedSize: seedSize, n: n, size: size, nodes: make([][]byte, 2*size-1)}
	tr.nodes[0] = append([]byte(nil), rootSeed...)
	for i := 0; i < size-1; i++ {
		left, right := deriveChildren(tr.nodes[i], salt, t, seedSize)
		tr.nodes[2*i+1] = left
		tr.nodes[2*i+2] = right
	}
	return tr
}

func deriveChildren(parent, salt []byte, t uint16, seedSize int) (left, right []byte) {
	h := xof.New(prefixSeedTree)
	h.Update(parent)
	h.Update(salt)
	h.UpdateU16LE(t)
	both := make([]byte, 2*seedSize)
	h.Squeeze(both)
	return both[:seedSize], both[seedSize:]
}

// leafNodeIndex returns node index of leaf i in the flattened heap.
func (t *Tree) leafNodeIndex(i int) int { return t.size - 1 + i }

// Leaf returns party i's derived seed.
func (t *Tree) Leaf(i int) []byte { return t.nodes[t.leafNodeIndex(i)] }

// Leaves returns all n meaningful leaf seeds.
func (t *Tree) Leaves() [][]byte {
	out := make([][]byte, t.n)
	for i := range out {
		out[i] = t.Leaf(i)
	}
	return out
}

// NumLeaves returns the padded leaf count.
func (t *Tree) NumLeaves() int { return t.size }

// RevealSize returns the number of seeds Reveal(hideLeaves) would produce
// for an n-leaf tree, without constructing the tree — used to size the
// serialized iSeedInfo/seedInfo fields up front (spec.md §6.1 reveal_size).
func RevealSize(n int, hideLeaves []int) int {
	size := nextPow2(n)
	hidden := markHidden(size, hideLeaves)
	count := 0
	countRevealed(0, size, hidden, &count)
	return count
}

func countRevealed(node, size int, hidden []bool, count *int) {
	if !hidden[node] {
		*count++
		return
	}
	if node >= size-1 {
		return
	}
	countRevealed(2*node+1, size, hidden, count)
	countRevealed(2*node+2, size, hidden, count)
}
