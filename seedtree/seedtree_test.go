package seedtree

import (
	"bytes"
	"testing"
)

func TestGenerateDeterministic(t *testing.T) {
	root := bytes.Repeat([]byte{0x07}, 16)
	salt := bytes.Repeat([]byte{0x09}, 32)
	a := Generate(root, salt, 5, 16, 16)
	b := Generate(root, salt, 5, 16, 16)
	for i := 0; i < 16; i++ {
		if !bytes.Equal(a.Leaf(i), b.Leaf(i)) {
			t.Fatalf("leaf %d not deterministic", i)
		}
	}
}

func TestLeavesAreDistinct(t *testing.T) {
	root := bytes.Repeat([]byte{0x01}, 16)
	salt := bytes.Repeat([]byte{0x02}, 32)
	tr := Generate(root, salt, 0, 16, 16)
	seen := map[string]bool{}
	for _, leaf := range tr.Leaves() {
		key := string(leaf)
		if seen[key] {
			t.Fatal("duplicate leaf seed")
		}
		seen[key] = true
	}
}

func TestRevealReconstructRecoversAllButHidden(t *testing.T) {
	root := bytes.Repeat([]byte{0x03}, 16)
	salt := bytes.Repeat([]byte{0x04}, 32)
	const n, seedSize = 16, 16
	var round uint16 = 12
	tr := Generate(root, salt, round, n, seedSize)

	hidden := 11
	revealed := tr.Reveal([]int{hidden})
	recon := Reconstruct(revealed, []int{hidden}, n, seedSize, salt, round)

	for i := 0; i < n; i++ {
		if i == hidden {
			if recon[i] != nil {
				t.Fatal("hidden leaf should not be reconstructible")
			}
			continue
		}
		if !bytes.Equal(recon[i], tr.Leaf(i)) {
			t.Fatalf("leaf %d mismatch after reconstruct", i)
		}
	}
}

func TestRevealSizeIsLogarithmic(t *testing.T) {
	root := bytes.Repeat([]byte{0x05}, 16)
	salt := bytes.Repeat([]byte{0x06}, 32)
	tr := Generate(root, salt, 1, 64, 16)
	revealed := tr.Reveal([]int{30})
	if len(revealed) != 6 { // log2(64)
		t.Fatalf("expected 6 revealed seeds for 64 leaves, got %d", len(revealed))
	}
	if got := RevealSize(64, []int{30}); got != 6 {
		t.Fatalf("RevealSize = %d, want 6", got)
	}
}

func TestRevealMultipleHiddenLeaves(t *testing.T) {
	root := bytes.Repeat([]byte{0x08}, 16)
	salt := bytes.Repeat([]byte{0x0a}, 32)
	const n, seedSize = 32, 16
	var round uint16 = 7
	tr := Generate(root, salt, round, n, seedSize)

	hideLeaves := []int{2, 3, 17, 30}
	revealed := tr.Reveal(hideLeaves)
	recon := Reconstruct(revealed, hideLeaves, n, seedSize, salt, round)

	hideSet := map[int]bool{2: true, 3: true, 17: true, 30: true}
	for i := 0; i < n; i++ {
		if hideSet[i] {
			if recon[i] != nil {
				t.Fatalf("leaf %d should be hidden", i)
			}
			continue
		}
		if !bytes.Equal(recon[i], tr.Leaf(i)) {
			t.Fatalf("leaf %d mismatch after reconstruct", i)
		}
	}
	if got := RevealSize(n, hideLeaves); got != len(revealed) {
		t.Fatalf("RevealSize = %d, want %d", got, len(revealed))
	}
}
