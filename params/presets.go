package params

// L1 returns the Picnic3-L1 parameter bundle (128-bit security target):
// LowMC-128-4-10 style dimensions, N=16 parties, T=250 rounds, Tau=36
// opened. Mirrors the teacher's named-preset convention
// (ntru.PresetPower2_512_Q1038337 and friends) but for LowMC/MPCitH
// dimensions instead of NTRU ring parameters.
func L1() Bundle {
	b, err := NewBundle(
		16,  // N
		250, // T
		36,  // Tau
		128, // LowMCN (bits)
		4,   // LowMCR
		10,  // LowMCM (sboxes per round); AndSizeBits = 3*4*10 = 120 bits = 15 bytes
		16,  // SeedSize
		32,  // DigestSize
		16,  // ViewSize (bytes, >= 15)
		16,  // InputOutputSize (ceil(128/8))
	)
	if err != nil {
		panic(err)
	}
	return b
}

// L3 returns the Picnic3-L3 parameter bundle (192-bit security target).
func L3() Bundle {
	b, err := NewBundle(
		16,  // N
		419, // T
		52,  // Tau
		192, // LowMCN
		4,   // LowMCR
		16,  // LowMCM; AndSizeBits = 3*4*16 = 192 bits = 24 bytes
		24,  // SeedSize
		48,  // DigestSize
		24,  // ViewSize
		24,  // InputOutputSize
	)
	if err != nil {
		panic(err)
	}
	return b
}

// L5 returns the Picnic3-L5 parameter bundle (256-bit security target).
func L5() Bundle {
	b, err := NewBundle(
		16,  // N
		601, // T
		64,  // Tau
		256, // LowMCN
		4,   // LowMCR
		21,  // LowMCM; AndSizeBits = 3*4*21 = 252 bits = 32 bytes (ViewSize rounds up)
		32,  // SeedSize
		64,  // DigestSize
		32,  // ViewSize
		32,  // InputOutputSize
	)
	if err != nil {
		panic(err)
	}
	return b
}
