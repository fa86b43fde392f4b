// Command picnic3sign produces a Picnic3 signature over a message given a
// raw LowMC private key and plaintext, following the flag + log.Fatal CLI
// idiom of cmd/ntru_sign.
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
	keyArg := flag.String("key", "", "private key: 0x-prefixed hex, or a file path")
	plaintextArg := flag.String("plaintext", "", "plaintext: 0x-prefixed hex, or a file path")
	msgArg := flag.String("msg", "", "message: 0x-prefixed hex, or a file path")
	outPath := flag.String("out", "signature.bin", "output path for the serialized signature")
	flag.Parse()

	if *keyArg == "" || *plaintextArg == "" || *msgArg == "" {
		log.Fatal("-key, -plaintext and -msg are all required")
	}

	p, err := presetByName(*preset)
	if err != nil {
		log.Fatal(err)
	}
	c := lowmc.NewCipher(p)

	key := readBytes(*keyArg)
	plaintext := readBytes(*plaintextArg)
	message := readBytes(*msgArg)
	if len(key) != p.InputOutputSize || len(plaintext) != p.InputOutputSize {
		log.Fatalf("key and plaintext must each be %d bytes for preset %s", p.InputOutputSize, *preset)
	}

	priv := picnic3.PrivateKey{Key: key}
	pub := picnic3.PublicKey{Plaintext: plaintext, Ciphertext: c.Encrypt(key, plaintext)}

	sig, err := picnic3.Sign(p, c, priv, pub, message)
	if err != nil {
		log.Fatalf("sign: %v", err)
	}

	data := picnic3.Serialize(p, sig)
	if err := os.WriteFile(*outPath, data, 0o644); err != nil {
		log.Fatalf("write signature: %v", err)
	}
	log.Printf("wrote %d-byte signature to %s (ciphertext %s)", len(data), *outPath, hex.EncodeToString(pub.Ciphertext))
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

// readBytes resolves arg as 0x-prefixed hex if it looks like hex, otherwise
// as a file path — the same dual convention cmd/ntru_sign uses for -target.
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
