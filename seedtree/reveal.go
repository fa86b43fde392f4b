package seedtree

// Reveal returns the minimal set of subtree-root seeds covering every leaf
// except those in hideLeaves: for each node, if no hidden leaf lies beneath
// it, its own seed is revealed and its subtree is not descended into;
// otherwise the search continues into its children. This is the standard
// seed-tree "punctured PRF" reveal (spec.md §4.7/§6.1 reveal/reveal_size),
// generalized here to hide any number of leaves at once — iSeedInfo hides
// the tau opened rounds out of T; a proof's own seedInfo hides exactly one
// party out of N, the hideLeaves={x} special case of the same algorithm.
// Emission order is a preorder walk from the root, which Reconstruct
// expects.
func (t *Tree) Reveal(hideLeaves []int) [][]byte {
	hidden := markHidden(t.size, hideLeaves)
	var out [][]byte
	revealWalk(0, t.size, hidden, t.nodes, &out)
	return out
}

func revealWalk(node, size int, hidden []bool, nodes [][]byte, out *[][]byte) {
	if !hidden[node] {
		*out = append(*out, nodes[node])
		return
	}
	if node >= size-1 {
		return // hidden leaf itself: nothing to reveal
	}
	revealWalk(2*node+1, size, hidden, nodes, out)
	revealWalk(2*node+2, size, hidden, nodes, out)
}

// markHidden computes, for every node in the flattened heap, whether any
// hidden leaf lies in its subtree (itself included for leaves).
func markHidden(size int, hideLeaves []int) []bool {
	hidden := make([]bool, 2*size-1)
	for _, i := range hideLeaves {
		hidden[size-1+i] = true
	}
	for i := size - 2; i >= 0; i-- {
		hidden[i] = hidden[2*i+1] || hidden[2*i+2]
	}
	return hidden
}

// Reconstruct rebuilds every leaf except those in hideLeaves from the seeds
// Reveal produced, without ever learning a hidden leaf's own seed.
func Reconstruct(revealed [][]byte, hideLeaves []int, n, seedSize int, salt []byte, t uint16) [][]byte {
	size := nextPow2(n)
	hidden := markHidden(size, hideLeaves)
	known := make([][]byte, 2*size-1)

	cursor := 0
	installWalk(0, size, hidden, known, revealed, &cursor)
	expand(known, salt, t, seedSize, size)

	leaves := make([][]byte, n)
	for i := 0; i < n; i++ {
		idx := size - 1 + i
		leaves[i] = known[idx] // nil for every hidden leaf
	}
	return leaves
}

func installWalk(node, size int, hidden []bool, known [][]byte, revealed [][]byte, cursor *int) {
	if !hidden[node] {
		known[node] = revealed[*cursor]
		*cursor++
		return
	}
	if node >= size-1 {
		return
	}
	installWalk(2*node+1, size, hidden, known, revealed, cursor)
	installWalk(2*node+2, size, hidden, known, revealed, cursor)
}

// expand fills in every descendant of each known interior node.
func expand(known [][]byte, salt []byte, t uint16, seedSize, size int) {
	for i := 0; i < size-1; i++ {
		if known[i] == nil {
			continue
		}
		left, right := deriveChildren(known[i], salt, t, seedSize)
		if known[2*i+1] == nil {
			known[2*i+1] = left
		}
		if known[2*i+2] == nil {
			known[2*i+2] = right
		}
	}
}
