package params

import "testing"

func TestPresetsValidate(t *testing.T) {
	cases := []struct {
		name string
		b    Bundle
	}{
		{"L1", L1()},
		{"L3", L3()},
		{"L5", L5()},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := c.b.Validate(); err != nil {
				t.Fatalf("%s: %v", c.name, err)
			}
			if c.b.ViewSize*8 < c.b.AndSizeBits() {
				t.Fatalf("%s: ViewSize too small for AndSizeBits", c.name)
			}
			if c.b.BitsPerChunkC() < 4 || c.b.BitsPerChunkP() < 4 {
				t.Fatalf("%s: chunk widths must be >= 4", c.name)
			}
		})
	}
}

func TestNewBundleRejectsBadN(t *testing.T) {
	if _, err := NewBundle(15, 10, 3, 128, 4, 10, 16, 32, 16, 16); err == nil {
		t.Fatal("expected error for N not a multiple of 4")
	}
}

func TestNewBundleRejectsTauGETau(t *testing.T) {
	if _, err := NewBundle(16, 10, 10, 128, 4, 10, 16, 32, 16, 16); err == nil {
		t.Fatal("expected error for Tau >= T")
	}
}

func TestNewBundleRejectsUndersizedView(t *testing.T) {
	if _, err := NewBundle(16, 10, 3, 128, 4, 10, 16, 32, 1, 16); err == nil {
		t.Fatal("expected error for undersized ViewSize")
	}
}

func TestNewBundleRejectsOversizedDigest(t *testing.T) {
	if _, err := NewBundle(16, 10, 3, 128, 4, 10, 16, 128, 16, 16); err == nil {
		t.Fatal("expected error for DigestSize > MaxDigest")
	}
}
