package store

import (
	"fmt"

	"wheelsolve/internal/domain"
)

// constraintFile is the on-disk constraint format. Plaintext is written as
// letters, and a multi-letter string expands to consecutive positions, so an
// anchor span is one entry.
type constraintFile struct {
	Constraints []constraintEntry `json:"constraints"`
}

type constraintEntry struct {
	Index      int    `json:"index"`
	Plaintext  string `json:"plaintext"`
	Provenance string `json:"provenance,omitempty"`
}

// LoadConstraints reads a constraint set. Provenance defaults to hypothesis.
func LoadConstraints(path string) ([]domain.Constraint, error) {
	var file constraintFile
	if err := readJSON(path, &file); err != nil {
		return nil, err
	}
	if len(file.Constraints) == 0 {
		return nil, fmt.Errorf("constraint file %s has no constraints", path)
	}

	var out []domain.Constraint
	for _, entry := range file.Constraints {
		symbols, err := domain.ParseText(entry.Plaintext)
		if err != nil {
			return nil, fmt.Errorf("constraint at index %d: %w", entry.Index, err)
		}
		prov := domain.Provenance(entry.Provenance)
		if prov == "" {
			prov = domain.ProvenanceHypothesis
		}
		for offset, s := range symbols {
			out = append(out, domain.Constraint{
				Index:      entry.Index + offset,
				Plaintext:  s,
				Provenance: prov,
			})
		}
	}
	return out, nil
}
