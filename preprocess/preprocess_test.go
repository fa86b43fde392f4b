package preprocess

import (
	"bytes"
	"testing"

	"github.com/DongLeiGryphonSecure/picnic3/lowmc"
	"github.com/DongLeiGryphonSecure/picnic3/params"
)

func TestRoundIsDeterministic(t *testing.T) {
	p := params.L1()
	c := lowmc.NewCipher(p)
	seeds := make([][]byte, p.N)
	for i := range seeds {
		seeds[i] = bytes.Repeat([]byte{byte(i + 1)}, p.SeedSize)
	}
	salt := bytes.Repeat([]byte{0x5}, params.SaltSize)

	r1, err := Round(c, p, seeds, salt, 4)
	if err != nil {
		t.Fatal(err)
	}
	r2, err := Round(c, p, seeds, salt, 4)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(r1.AuxBits, r2.AuxBits) {
		t.Fatal("aux correction not deterministic")
	}
}

func TestRoundRejectsBadSeedCount(t *testing.T) {
	p := params.L1()
	c := lowmc.NewCipher(p)
	seeds := make([][]byte, p.N-1)
	for i := range seeds {
		seeds[i] = make([]byte, p.SeedSize)
	}
	salt := make([]byte, params.SaltSize)
	if _, err := Round(c, p, seeds, salt, 0); err == nil {
		t.Fatal("expected error for wrong seed count")
	}
}
