package merkletree

import "testing"

func buildTestTree(t *testing.T, n int) (*Tree, [][]byte) {
	t.Helper()
	contents := make([][]byte, n)
	tr := Create(32, n)
	for i := 0; i < n; i++ {
		contents[i] = []byte{byte(i), byte(i * 7), byte(i * 13)}
		tr.SetLeaf(i, contents[i])
	}
	tr.Build()
	return tr, contents
}

func TestSingleLeafOpenVerifies(t *testing.T) {
	tr, contents := buildTestTree(t, 11)
	for _, idx := range []int{0, 3, 7, 10} {
		proof := tr.Open([]int{idx})
		ok := Verify(32, tr.NumLeaves(), map[int][]byte{idx: contents[idx]}, proof, tr.Root())
		if !ok {
			t.Fatalf("single-leaf proof for index %d failed to verify", idx)
		}
	}
}

func TestMultiLeafOpenVerifies(t *testing.T) {
	tr, contents := buildTestTree(t, 16)
	indices := []int{1, 2, 3, 9, 14}
	proof := tr.Open(indices)
	leaves := map[int][]byte{}
	for _, idx := range indices {
		leaves[idx] = contents[idx]
	}
	if !Verify(32, tr.NumLeaves(), leaves, proof, tr.Root()) {
		t.Fatal("multi-leaf proof failed to verify")
	}
}

func TestMultiLeafOpenIsCompactForAdjacentIndices(t *testing.T) {
	tr, _ := buildTestTree(t, 16)
	adjacentProof := tr.Open([]int{4, 5, 6, 7})
	if len(adjacentProof.Nodes) >= 4*4 {
		t.Fatalf("expected adjacency to reduce sibling count, got %d nodes", len(adjacentProof.Nodes))
	}
}

func TestOpenSizeMatchesActualProof(t *testing.T) {
	tr, _ := buildTestTree(t, 16)
	indices := []int{0, 1, 5, 6, 12}
	proof := tr.Open(indices)
	if got, want := OpenSize(tr.NumLeaves(), indices), len(proof.Nodes); got != want {
		t.Fatalf("OpenSize=%d, actual proof has %d nodes", got, want)
	}
}

func TestTamperedLeafFailsVerify(t *testing.T) {
	tr, contents := buildTestTree(t, 8)
	proof := tr.Open([]int{2})
	tampered := append([]byte(nil), contents[2]...)
	tampered[0] ^= 0xFF
	if Verify(32, tr.NumLeaves(), map[int][]byte{2: tampered}, proof, tr.Root()) {
		t.Fatal("expected tampered leaf content to fail verification")
	}
}

func TestMissingLeafFailsVerify(t *testing.T) {
	tr, contents := buildTestTree(t, 8)
	proof := tr.Open([]int{2, 5})
	if Verify(32, tr.NumLeaves(), map[int][]byte{2: contents[2]}, proof, tr.Root()) {
		t.Fatal("expected verification to fail when a required leaf is absent")
	}
}
