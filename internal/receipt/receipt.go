// Package receipt names the exact inputs a search ran against, so any
// downstream consumer can verify a result set came from specific, named data.
package receipt

import (
	"encoding/hex"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"

	"wheelsolve/internal/domain"
)

// Receipt is emitted alongside every result set.
type Receipt struct {
	RunID          string `json:"run_id"`
	CiphertextHash string `json:"ciphertext_hash"`
	RouteTableHash string `json:"route_table_hash,omitempty"`
	Recipe         string `json:"recipe,omitempty"`
}

// New hashes the ciphertext and the raw route table with BLAKE2b-256 and tags
// the run with a fresh id. recipe is a free-form description of the plan or
// seed the caller used; identical inputs plus identical recipes reproduce
// identical results.
func New(ciphertext []domain.Symbol, routeTable []byte, recipe string) Receipt {
	r := Receipt{
		RunID:          uuid.NewString(),
		CiphertextHash: hashText(ciphertext),
		Recipe:         recipe,
	}
	if len(routeTable) > 0 {
		sum := blake2b.Sum256(routeTable)
		r.RouteTableHash = hex.EncodeToString(sum[:])
	}
	return r
}

func hashText(text []domain.Symbol) string {
	raw := make([]byte, len(text))
	for i, s := range text {
		raw[i] = byte(s)
	}
	sum := blake2b.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

// Fingerprint returns a short hex fingerprint of a full hash for display.
//
// It truncates to 10 bytes (20 hex chars).
func Fingerprint(fullHash string) string {
	if len(fullHash) <= 20 {
		return fullHash
	}
	return fullHash[:20]
}
