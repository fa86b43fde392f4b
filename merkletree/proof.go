package merkletree

import "sort"

// Proof is the minimal sibling-hash set needed to recompute the root given
// the revealed leaves at Indices: adjacent revealed leaves never need each
// other's sibling hash supplied separately, since the verifier can derive
// it by the same traversal the prover used to build Nodes.
type Proof struct {
	Indices []int
	Nodes   [][]byte // in the canonical per-layer, ascending-index order
}

// OpenSize returns the number of sibling hashes Open would need for this
// set of revealed leaf indices, without constructing the proof — used to
// size the serialized signature before Open runs (spec.md §6.2 "open_size").
func OpenSize(numLeaves int, indices []int) int {
	known := toSet(indices)
	count := 0
	for size := numLeaves; size > 1; size >>= 1 {
		known, count = advanceLayer(known, count)
	}
	return count
}

// Open builds the multi-leaf inclusion proof for the given leaf indices.
func (t *Tree) Open(indices []int) *Proof {
	sorted := append([]int(nil), indices...)
	sort.Ints(sorted)
	known := toSet(sorted)
	var nodes [][]byte
	for layer := 0; layer < t.Depth(); layer++ {
		var missing []int
		known, missing = pairAndCollectMissing(known)
		for _, idx := range missing {
			nodes = append(nodes, t.layers[layer][idx])
		}
	}
	return &Proof{Indices: sorted, Nodes: nodes}
}

// Verify reconstructs the root from the supplied leaf contents and proof,
// returning whether it matches root. leaves must be keyed by the same leaf
// indices as proof.Indices.
func Verify(digestSize, numLeaves int, leaves map[int][]byte, proof *Proof, root []byte) bool {
	computed, ok := ComputeRoot(digestSize, numLeaves, leaves, proof)
	if !ok || len(computed) != len(root) {
		return false
	}
	var diff byte
	for i := range computed {
		diff |= computed[i] ^ root[i]
	}
	return diff == 0
}

// ComputeRoot reconstructs the root digest from the supplied leaf contents
// and proof, without comparing it against anything — used by callers (the
// picnic3 verifier) that don't have an independently known root and must
// instead fold the reconstructed root into a further computation (the
// Fiat-Shamir transcript) before any comparison happens. ok is false if the
// proof is structurally inconsistent with leaves (missing leaf, wrong node
// count).
func ComputeRoot(digestSize, numLeaves int, leaves map[int][]byte, proof *Proof) (root []byte, ok bool) {
	layer := make(map[int][]byte, len(leaves))
	for _, idx := range proof.Indices {
		content, present := leaves[idx]
		if !present {
			return nil, false
		}
		h := make([]byte, digestSize)
		hashLeaf(digestSize, content, h)
		layer[idx] = h
	}

	nodeCursor := 0
	size := numLeaves
	for size > 1 {
		next := make(map[int][]byte)
		seen := make(map[int]bool)
		indices := sortedKeys(layer)
		for _, idx := range indices {
			if seen[idx] {
				continue
			}
			sib := idx ^ 1
			var left, right []byte
			var parent int
			if idx&1 == 0 {
				left, parent = layer[idx], idx/2
			} else {
				right, parent = layer[idx], idx/2
			}
			if sibVal, present := layer[sib]; present {
				seen[sib] = true
				if idx&1 == 0 {
					right = sibVal
				} else {
					left = sibVal
				}
			} else {
				if nodeCursor >= len(proof.Nodes) {
					return nil, false
				}
				sibVal = proof.Nodes[nodeCursor]
				nodeCursor++
				if idx&1 == 0 {
					right = sibVal
				} else {
					left = sibVal
				}
			}
			out := make([]byte, digestSize)
			hashNode(digestSize, left, right, out)
			next[parent] = out
		}
		layer = next
		size >>= 1
	}
	if nodeCursor != len(proof.Nodes) {
		return nil, false
	}
	computed, present := layer[0]
	if !present {
		return nil, false
	}
	return computed, true
}

func toSet(indices []int) map[int]bool {
	m := make(map[int]bool, len(indices))
	for _, i := range indices {
		m[i] = true
	}
	return m
}

func sortedKeys(m map[int][]byte) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

// pairAndCollectMissing advances the "known" index set one layer up,
// returning the parent-layer known set and the list of sibling indices (at
// the current layer) whose hash must be supplied by the proof.
func pairAndCollectMissing(known map[int]bool) (map[int]bool, []int) {
	idxs := make([]int, 0, len(known))
	for idx := range known {
		idxs = append(idxs, idx)
	}
	sort.Ints(idxs)
	next := make(map[int]bool)
	seen := make(map[int]bool)
	var missing []int
	for _, idx := range idxs {
		if seen[idx] {
			continue
		}
		sib := idx ^ 1
		if known[sib] {
			seen[sib] = true
		} else {
			missing = append(missing, sib)
		}
		next[idx/2] = true
	}
	return next, missing
}

func advanceLayer(known map[int]bool, count int) (map[int]bool, int) {
	next, missing := pairAndCollectMissing(known)
	return next, count + len(missing)
}
