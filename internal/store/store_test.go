package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wheelsolve/internal/domain"
	"wheelsolve/internal/receipt"
	"wheelsolve/internal/store"
)

// writeFile drops contents into a temp dir and returns the path.
func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadCiphertext(t *testing.T) {
	path := writeFile(t, "ct.txt", "OBKR\nUOXO GHULB\n")
	symbols, raw, err := store.LoadCiphertext(path)
	require.NoError(t, err)
	assert.Equal(t, "OBKRUOXOGHULB", domain.TextString(symbols))
	assert.NotEmpty(t, raw)

	_, _, err = store.LoadCiphertext(writeFile(t, "bad.txt", "AB3D"))
	require.Error(t, err)

	_, _, err = store.LoadCiphertext(writeFile(t, "empty.txt", "  \n"))
	require.Error(t, err)
}

func TestLoadConstraintsExpandsSpans(t *testing.T) {
	path := writeFile(t, "cons.json", `{
	  "constraints": [
	    {"index": 21, "plaintext": "EAST", "provenance": "anchor"},
	    {"index": 74, "plaintext": "XY", "provenance": "tail"},
	    {"index": 5, "plaintext": "Q"}
	  ]
	}`)
	cons, err := store.LoadConstraints(path)
	require.NoError(t, err)
	require.Len(t, cons, 7)

	assert.Equal(t, 21, cons[0].Index)
	assert.Equal(t, domain.Symbol(4), cons[0].Plaintext) // E
	assert.Equal(t, domain.ProvenanceAnchor, cons[0].Provenance)
	assert.Equal(t, 24, cons[3].Index)
	assert.Equal(t, domain.Symbol(19), cons[3].Plaintext) // T
	assert.Equal(t, 75, cons[5].Index)
	assert.Equal(t, domain.ProvenanceTail, cons[5].Provenance)
	// Missing provenance defaults to hypothesis.
	assert.Equal(t, domain.ProvenanceHypothesis, cons[6].Provenance)
}

func TestRouteFileStore(t *testing.T) {
	path := writeFile(t, "routes.json", `{
	  "routes": [
	    {"id": "reverse", "order": [4, 3, 2, 1, 0]},
	    {"id": "partial", "order": [2, 0, 3], "excluded": [1, 4]}
	  ]
	}`)
	rs, err := store.NewRouteFileStore(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"partial", "reverse"}, rs.IDs())
	spec, ok := rs.Load("reverse")
	require.True(t, ok)
	assert.Equal(t, []int{4, 3, 2, 1, 0}, spec.Order)
	_, ok = rs.Load("missing")
	assert.False(t, ok)
	assert.NotEmpty(t, rs.Raw())

	_, err = store.NewRouteFileStore(writeFile(t, "dup.json",
		`{"routes": [{"id": "x", "order": [0]}, {"id": "x", "order": [0]}]}`))
	require.Error(t, err)
}

func TestLoadPlan(t *testing.T) {
	path := writeFile(t, "plan.yaml", `
routes: [identity]
classings: [six-track]
periods: [15, 17]
phases: [0]
families: [vigenere, beaufort]
autokey:
  enabled: true
  delay: 1
  passes: 3
policy:
  forbid_identity: true
protected: [21, 22, 23, 24]
workers: 4
budget: 1000
`)
	plan, err := store.LoadPlan(path)
	require.NoError(t, err)
	assert.Equal(t, []int{15, 17}, plan.Periods)
	assert.True(t, plan.Autokey.Enabled)
	assert.True(t, plan.Policy.ForbidIdentity)
	assert.Equal(t, []int{21, 22, 23, 24}, plan.Protected)
	assert.Equal(t, 4, plan.Workers)

	_, err = store.LoadPlan(writeFile(t, "short.yaml", "routes: [identity]\n"))
	require.Error(t, err)

	_, err = store.LoadPlan(writeFile(t, "badperiod.yaml",
		"classings: [six-track]\nperiods: [0]\nfamilies: [vigenere]\n"))
	require.Error(t, err)
}

func TestResultRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	ciphertext, err := domain.ParseText("OBKR")
	require.NoError(t, err)

	rcpt := receipt.New(ciphertext, []byte(`{"routes": []}`), "plan:test")
	results := []domain.SolverResult{{
		RouteID:    "identity",
		ClassingID: "six-track",
		Families:   []string{"vigenere"},
		Period:     17,
		Verdict:    domain.VerdictFeasible,
		Plaintext:  []domain.Symbol{0, domain.Unknown, 2, 3},
	}}
	require.NoError(t, store.WriteResults(path, rcpt, results))

	set, err := store.ReadResults(path)
	require.NoError(t, err)
	assert.Equal(t, rcpt, set.Receipt)
	require.Len(t, set.Results, 1)
	assert.Equal(t, results[0], set.Results[0])
}
