package store

import (
	"fmt"
	"os"

	"wheelsolve/internal/domain"
)

// LoadCiphertext reads a letters-only text file, skipping whitespace. It
// returns the parsed symbols and the raw bytes for receipt hashing.
func LoadCiphertext(path string) ([]domain.Symbol, []byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	symbols, err := domain.ParseText(string(raw))
	if err != nil {
		return nil, nil, fmt.Errorf("ciphertext %s: %w", path, err)
	}
	if len(symbols) == 0 {
		return nil, nil, fmt.Errorf("ciphertext %s is empty", path)
	}
	return symbols, raw, nil
}
