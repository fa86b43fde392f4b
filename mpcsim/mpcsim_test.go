package mpcsim

import (
	"bytes"
	"testing"

	"github.com/DongLeiGryphonSecure/picnic3/lowmc"
	"github.com/DongLeiGryphonSecure/picnic3/params"
	"github.com/DongLeiGryphonSecure/picnic3/preprocess"
)

func setup(t *testing.T, round uint16) (params.Bundle, *lowmc.Cipher, []byte, []byte, []byte, []byte) {
	t.Helper()
	p := params.L1()
	c := lowmc.NewCipher(p)
	seeds := make([][]byte, p.N)
	for i := range seeds {
		seeds[i] = bytes.Repeat([]byte{byte(i + 3)}, p.SeedSize)
	}
	salt := bytes.Repeat([]byte{0xAB}, params.SaltSize)

	tr, err := preprocess.Round(c, p, seeds, salt, round)
	if err != nil {
		t.Fatalf("preprocess: %v", err)
	}

	privateKey := bytes.Repeat([]byte{0x11}, p.InputOutputSize)
	plaintext := bytes.Repeat([]byte{0x22}, p.InputOutputSize)
	pubKey := c.Encrypt(privateKey, plaintext)

	maskedKey := make([]byte, len(privateKey))
	copy(maskedKey, privateKey)
	parity := tr.ParityKey()
	for i := range maskedKey {
		maskedKey[i] ^= parity[i]
	}

	return p, c, maskedKey, plaintext, pubKey, tr.AuxBits
}

func TestSignerRoundConsistent(t *testing.T) {
	p := params.L1()
	c := lowmc.NewCipher(p)
	seeds := make([][]byte, p.N)
	for i := range seeds {
		seeds[i] = bytes.Repeat([]byte{byte(i + 3)}, p.SeedSize)
	}
	salt := bytes.Repeat([]byte{0xAB}, params.SaltSize)
	tr, err := preprocess.Round(c, p, seeds, salt, 2)
	if err != nil {
		t.Fatal(err)
	}

	privateKey := bytes.Repeat([]byte{0x11}, p.InputOutputSize)
	plaintext := bytes.Repeat([]byte{0x22}, p.InputOutputSize)
	pubKey := c.Encrypt(privateKey, plaintext)
	maskedKey := make([]byte, len(privateKey))
	copy(maskedKey, privateKey)
	parity := tr.ParityKey()
	for i := range maskedKey {
		maskedKey[i] ^= parity[i]
	}

	res, err := SignerRound(c, p, maskedKey, plaintext, pubKey, tr)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Consistent {
		t.Fatal("expected honest signer round to be consistent")
	}
	if len(res.Cv) != p.DigestSize {
		t.Fatalf("Cv length = %d, want %d", len(res.Cv), p.DigestSize)
	}
}

func TestVerifierRoundMatchesSignerView(t *testing.T) {
	p, c, maskedKey, plaintext, pubKey, aux := setup(t, 6)

	seeds := make([][]byte, p.N)
	for i := range seeds {
		seeds[i] = bytes.Repeat([]byte{byte(i + 3)}, p.SeedSize)
	}
	salt := bytes.Repeat([]byte{0xAB}, params.SaltSize)
	tr, err := preprocess.Round(c, p, seeds, salt, 6)
	if err != nil {
		t.Fatal(err)
	}
	signerRes, err := SignerRound(c, p, maskedKey, plaintext, pubKey, tr)
	if err != nil || !signerRes.Consistent {
		t.Fatalf("signer round failed: ok=%v err=%v", signerRes != nil && signerRes.Consistent, err)
	}

	unopened := 3
	verifierTape, err := preprocess.Round(c, p, seeds, salt, 6)
	if err != nil {
		t.Fatal(err)
	}
	verifierTape.SetAuxBits(aux)
	verifierTape.ZeroTape(unopened)

	unopenedContent := signerRes.Msgs.Logs[unopened]
	verifierRes, err := VerifierRound(c, p, maskedKey, plaintext, pubKey, verifierTape, unopened, unopenedContent, len(unopenedContent)*8)
	if err != nil {
		t.Fatal(err)
	}
	if !verifierRes.Consistent {
		t.Fatal("expected verifier replay to stay consistent")
	}
	if !bytes.Equal(verifierRes.Cv, signerRes.Cv) {
		t.Fatal("verifier Cv should match signer Cv when unopened party's log is honest")
	}
}
