// Command picnic3verify checks a serialized Picnic3 signature against a
// public key and message, following the flag + log.Fatal CLI idiom of
// cmd/ntru_sign.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/DongLeiGryphonSecure/picnic3/lowmc"
	"github.com/DongLeiGryphonSecure/picnic3/params"
	"github.com/DongLeiGryphonSecure/picnic3/picnic3"
)

func main() {
	preset := flag.String("preset", "L1", "parameter preset: L1, L3 or L5")
	plaintextArg := flag.String("plaintext", "", "plaintext: 0x-prefixed hex, or a file path")
	ciphertextArg := flag.String("ciphertext", "", "ciphertext (public key output): 0x-prefixed hex, or a file path")
	msgArg := flag.String("msg", "", "message: 0x-prefixed hex, or a file path")
	sigPath := flag.String("sig", "signature.bin", "path to the serialized signature")
	flag.Parse()

	if *plaintextArg == "" || *ciphertextArg == "" || *msgArg == "" {
		log.Fatal("-plaintext, -ciphertext and -msg are all required")
	}

	p, err := presetByName(*preset)
	if err != nil {
		log.Fatal(err)
	}
	c := lowmc.NewCipher(p)

	plaintext := readBytes(*plaintextArg)
	ciphertext := readBytes(*ciphertextArg)
	message := readBytes(*msgArg)
	if len(plaintext) != p.InputOutputSize || len(ciphertext) != p.InputOutputSize {
		log.Fatalf("plaintext and ciphertext must each be %d bytes for preset %s", p.InputOutputSize, *preset)
	}

	data, err := os.ReadFile(*sigPath)
	if err != nil {
		log.Fatalf("read signature: %v", err)
	}
	sig, err := picnic3.Deserialize(p, data)
	if err != nil {
		log.Fatalf("deserialize signature: %v", err)
	}

	pub := picnic3.PublicKey{Plaintext: plaintext, Ciphertext: ciphertext}
	if err := picnic3.Verify(p, c, pub, message, sig); err != nil {
		log.Fatalf("verification failed: %v", err)
	}
	log.Println("signature valid")
}

func presetByName(name string) (params.Bundle, error) {
	switch name {
	case "L1":
		return params.L1(), nil
	case "L3":
		return params.L3(), nil
	case "L5":
		return params.L5(), nil
	default:
		return params.Bundle{}, fmt.Errorf("unknown preset %q: want L1, L3 or L5", name)
	}
}

func has0x(s string) bool { return len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') }

func readBytes(arg string) []byte {
	if has0x(arg) {
		b, err := hex.DecodeString(arg[2:])
		if err != nil {
			log.Fatalf("invalid hex %q: %v", arg, err)
		}
		return b
	}
	b, err := os.ReadFile(arg)
	if err != nil {
		log.Fatalf("read %q: %v", arg, err)
	}
	return b
}
