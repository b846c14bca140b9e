package store

import (
	"wheelsolve/internal/domain"
	"wheelsolve/internal/receipt"
)

// ResultSet is the terminal artifact of one search run.
type ResultSet struct {
	Receipt receipt.Receipt       `json:"receipt"`
	Results []domain.SolverResult `json:"results"`
}

// WriteResults persists a result set as indented JSON, atomically.
func WriteResults(path string, rcpt receipt.Receipt, results []domain.SolverResult) error {
	return writeJSON(path, ResultSet{Receipt: rcpt, Results: results}, 0o644)
}

// ReadResults loads a previously written result set.
func ReadResults(path string) (ResultSet, error) {
	var set ResultSet
	if err := readJSON(path, &set); err != nil {
		return ResultSet{}, err
	}
	return set, nil
}
