package lowmc

import (
	"bytes"
	"testing"

	"github.com/DongLeiGryphonSecure/picnic3/internal/bitvec"
	"github.com/DongLeiGryphonSecure/picnic3/mlog"
	"github.com/DongLeiGryphonSecure/picnic3/params"
	"github.com/DongLeiGryphonSecure/picnic3/tape"
)

func fill(n int, b byte) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b ^ byte(i)
	}
	return out
}

func setupRound(t *testing.T, p params.Bundle, salt []byte, round uint16) *tape.Round {
	t.Helper()
	seeds := make([][]byte, p.N)
	for j := range seeds {
		seeds[j] = fill(p.SeedSize, byte(j+1))
	}
	andGates := 3 * p.LowMCR * p.LowMCM
	tr := tape.NewRound(p.N, p.ViewSize, p.LowMCN, andGates)
	if err := tape.Expand(tr, seeds, salt, round); err != nil {
		t.Fatalf("tape expand: %v", err)
	}
	return tr
}

func TestAuxCorrectnessMatchesPlainEncrypt(t *testing.T) {
	p := params.L1()
	c := NewCipher(p)
	salt := fill(params.SaltSize, 0x11)
	tr := setupRound(t, p, salt, 3)

	privateKey := fill(bitvec.ByteLen(p.LowMCN), 0x42)
	plaintext := fill(bitvec.ByteLen(p.LowMCN), 0x99)
	pubKey := c.Encrypt(privateKey, plaintext)

	if err := ComputeAux(c, tr); err != nil {
		t.Fatalf("ComputeAux: %v", err)
	}
	maskedKey := make([]byte, len(privateKey))
	copy(maskedKey, privateKey)
	parity := tr.ParityKey()
	for i := range maskedKey {
		maskedKey[i] ^= parity[i]
	}
	tr.ResetCursor()

	msgs := mlog.NewRound(p.N, p.ViewSize)
	ok, err := SimulateOnline(c, maskedKey, plaintext, tr, msgs, pubKey)
	if err != nil {
		t.Fatalf("SimulateOnline: %v", err)
	}
	if !ok {
		t.Fatal("expected simulated output to match plain LowMC encryption")
	}
}

func TestSimulateOnlineRejectsWrongPubKey(t *testing.T) {
	p := params.L1()
	c := NewCipher(p)
	salt := fill(params.SaltSize, 0x22)
	tr := setupRound(t, p, salt, 9)

	privateKey := fill(bitvec.ByteLen(p.LowMCN), 0x07)
	plaintext := fill(bitvec.ByteLen(p.LowMCN), 0x08)
	wrongPubKey := fill(bitvec.ByteLen(p.LowMCN), 0xAA)

	if err := ComputeAux(c, tr); err != nil {
		t.Fatalf("ComputeAux: %v", err)
	}
	maskedKey := make([]byte, len(privateKey))
	copy(maskedKey, privateKey)
	parity := tr.ParityKey()
	for i := range maskedKey {
		maskedKey[i] ^= parity[i]
	}
	tr.ResetCursor()

	msgs := mlog.NewRound(p.N, p.ViewSize)
	ok, err := SimulateOnline(c, maskedKey, plaintext, tr, msgs, wrongPubKey)
	if err != nil {
		t.Fatalf("SimulateOnline: %v", err)
	}
	if ok {
		t.Fatal("expected mismatch against an unrelated pubKey")
	}
}

func TestVerifierReplayWithUnopenedPartyAgrees(t *testing.T) {
	p := params.L1()
	c := NewCipher(p)
	salt := fill(params.SaltSize, 0x33)
	tr := setupRound(t, p, salt, 1)

	privateKey := fill(bitvec.ByteLen(p.LowMCN), 0x5A)
	plaintext := fill(bitvec.ByteLen(p.LowMCN), 0x5B)
	pubKey := c.Encrypt(privateKey, plaintext)

	if err := ComputeAux(c, tr); err != nil {
		t.Fatalf("ComputeAux: %v", err)
	}
	maskedKey := make([]byte, len(privateKey))
	copy(maskedKey, privateKey)
	parity := tr.ParityKey()
	for i := range maskedKey {
		maskedKey[i] ^= parity[i]
	}
	tr.ResetCursor()

	signerLog := mlog.NewRound(p.N, p.ViewSize)
	ok, err := SimulateOnline(c, maskedKey, plaintext, tr, signerLog, pubKey)
	if err != nil || !ok {
		t.Fatalf("signer-side simulation failed: ok=%v err=%v", ok, err)
	}

	unopened := p.N - 2
	verifierTape := setupRound(t, p, salt, 1)
	verifierTape.SetAuxBits(tr.AuxBits)
	verifierTape.ZeroTape(unopened)

	verifierLog := mlog.NewRound(p.N, p.ViewSize)
	verifierLog.SetUnopened(unopened, signerLog.Logs[unopened], len(signerLog.Logs[unopened])*8)

	ok, err = SimulateOnline(c, maskedKey, plaintext, verifierTape, verifierLog, pubKey)
	if err != nil {
		t.Fatalf("verifier-side simulation error: %v", err)
	}
	if !ok {
		t.Fatal("verifier-side replay with one hidden party should still reconstruct pubKey")
	}
	for j := 0; j < p.N; j++ {
		if j == unopened {
			continue
		}
		if !bytes.Equal(signerLog.Logs[j], verifierLog.Logs[j]) {
			t.Fatalf("party %d log diverged between signer and verifier replay", j)
		}
	}
}
