package picnic3

import (
	"bytes"
	"testing"

	"github.com/DongLeiGryphonSecure/picnic3/lowmc"
	"github.com/DongLeiGryphonSecure/picnic3/params"
)

func testKeypair(t *testing.T, p params.Bundle, c *lowmc.Cipher) (PrivateKey, PublicKey) {
	t.Helper()
	key := bytes.Repeat([]byte{0x42}, p.InputOutputSize)
	plaintext := bytes.Repeat([]byte{0x99}, p.InputOutputSize)
	ciphertext := c.Encrypt(key, plaintext)
	return PrivateKey{Key: key}, PublicKey{Plaintext: plaintext, Ciphertext: ciphertext}
}

func TestSignVerifyRoundtrip(t *testing.T) {
	p := params.L1()
	c := lowmc.NewCipher(p)
	priv, pub := testKeypair(t, p, c)
	message := []byte("picnic3 roundtrip message")

	sig, err := Sign(p, c, priv, pub, message)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if err := Verify(p, c, pub, message, sig); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestVerifyRejectsWrongMessage(t *testing.T) {
	p := params.L1()
	c := lowmc.NewCipher(p)
	priv, pub := testKeypair(t, p, c)

	sig, err := Sign(p, c, priv, pub, []byte("original message"))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if err := Verify(p, c, pub, []byte("tampered message"), sig); err == nil {
		t.Fatal("expected verification failure for altered message")
	}
}

func TestVerifyRejectsWrongPublicKey(t *testing.T) {
	p := params.L1()
	c := lowmc.NewCipher(p)
	priv, pub := testKeypair(t, p, c)
	message := []byte("message")

	sig, err := Sign(p, c, priv, pub, message)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	otherPub := pub
	otherPub.Ciphertext = append([]byte(nil), pub.Ciphertext...)
	otherPub.Ciphertext[0] ^= 0x01
	if err := Verify(p, c, otherPub, message, sig); err == nil {
		t.Fatal("expected verification failure for altered ciphertext")
	}
}

func TestVerifyRejectsFlippedChallengeBit(t *testing.T) {
	p := params.L1()
	c := lowmc.NewCipher(p)
	priv, pub := testKeypair(t, p, c)
	message := []byte("message")

	sig, err := Sign(p, c, priv, pub, message)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	sig.Challenge[0] ^= 0x01
	if err := Verify(p, c, pub, message, sig); err == nil {
		t.Fatal("expected verification failure for flipped challenge byte")
	}
}

func TestVerifyRejectsTamperedRoundProof(t *testing.T) {
	p := params.L1()
	c := lowmc.NewCipher(p)
	priv, pub := testKeypair(t, p, c)
	message := []byte("message")

	sig, err := Sign(p, c, priv, pub, message)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	var tampered bool
	for _, t2 := range sig.ChallengeC {
		proof := sig.Proofs[t2]
		if len(proof.Input) > 0 {
			proof.Input[0] ^= 0x01
			tampered = true
			break
		}
	}
	if !tampered {
		t.Fatal("no opened round found to tamper with")
	}
	if err := Verify(p, c, pub, message, sig); err == nil {
		t.Fatal("expected verification failure for tampered round input")
	}
}

func TestVerifyRejectsWrongUnopenedCommitment(t *testing.T) {
	p := params.L1()
	c := lowmc.NewCipher(p)
	priv, pub := testKeypair(t, p, c)
	message := []byte("message")

	sig, err := Sign(p, c, priv, pub, message)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	t2 := sig.ChallengeC[0]
	sig.Proofs[t2].C[0] ^= 0x01
	if err := Verify(p, c, pub, message, sig); err == nil {
		t.Fatal("expected verification failure for tampered commitment")
	}
}

func TestAuxOnlyBoundForLastParty(t *testing.T) {
	p := params.L1()
	c := lowmc.NewCipher(p)
	priv, pub := testKeypair(t, p, c)

	sig, err := Sign(p, c, priv, pub, []byte("aux test"))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	partyFor := partyForRound(sig.ChallengeC, sig.ChallengeP)
	for _, t2 := range sig.ChallengeC {
		proof := sig.Proofs[t2]
		unopened := partyFor[t2]
		if unopened != p.N-1 {
			if proof.Aux == nil {
				t.Fatalf("round %d: unopened party %d != N-1 but Aux is nil", t2, unopened)
			}
		} else if proof.Aux != nil {
			t.Fatalf("round %d: unopened party is N-1 but Aux is non-nil", t2)
		}
	}
}

func TestSignIsRandomized(t *testing.T) {
	p := params.L1()
	c := lowmc.NewCipher(p)
	priv, pub := testKeypair(t, p, c)
	message := []byte("same message")

	sig1, err := Sign(p, c, priv, pub, message)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	sig2, err := Sign(p, c, priv, pub, message)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if bytes.Equal(sig1.Salt, sig2.Salt) {
		t.Fatal("two signatures over the same message used the same salt")
	}
	if bytes.Equal(sig1.Challenge, sig2.Challenge) {
		t.Fatal("two signatures over the same message produced the same challenge")
	}
}
