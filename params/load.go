package params

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// bundleFile mirrors the JSON schema for an externally supplied parameter
// bundle, following the teacher's credential.paramsFile pattern.
type bundleFile struct {
	N               int `json:"N"`
	T               int `json:"T"`
	Tau             int `json:"Tau"`
	LowMCN          int `json:"lowmc_n"`
	LowMCR          int `json:"lowmc_r"`
	LowMCM          int `json:"lowmc_m"`
	SeedSize        int `json:"seed_size"`
	DigestSize      int `json:"digest_size"`
	ViewSize        int `json:"view_size"`
	InputOutputSize int `json:"input_output_size"`
}

// LoadJSON reads a parameter bundle from path, falling back to the parent
// and grandparent directories if not found there — the same relative-path
// fallback search the teacher's credential.readFileWithFallback and
// ntru/signverify.loadParams use for locating config under nested test
// working directories.
func LoadJSON(path string) (Bundle, error) {
	data, resolved, err := readFileWithFallback(path)
	if err != nil {
		return Bundle{}, fmt.Errorf("params: %w", err)
	}
	var bf bundleFile
	if err := json.Unmarshal(data, &bf); err != nil {
		return Bundle{}, fmt.Errorf("params: parse %s: %w", resolved, err)
	}
	return NewBundle(bf.N, bf.T, bf.Tau, bf.LowMCN, bf.LowMCR, bf.LowMCM,
		bf.SeedSize, bf.DigestSize, bf.ViewSize, bf.InputOutputSize)
}

func readFileWithFallback(path string) ([]byte, string, error) {
	candidates := []string{path}
	if !filepath.IsAbs(path) {
		candidates = append(candidates, filepath.Join("..", path), filepath.Join("..", "..", path))
	}
	for _, p := range candidates {
		if data, err := os.ReadFile(p); err == nil {
			return data, p, nil
		}
	}
	return nil, "", fmt.Errorf("read %s: not found (tried %d candidates)", path, len(candidates))
}
