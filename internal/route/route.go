// Package route applies invertible transposition routes: permutations of
// position indices run before wheel decryption and inverted after.
package route

import (
	"errors"
	"fmt"

	"wheelsolve/internal/domain"
)

var (
	// ErrRouteDomain is returned when a route's permutation domain overlaps
	// positions the caller requires to stay fixed ("NA-only" policy).
	ErrRouteDomain = errors.New("route order overlaps protected positions")

	// ErrBadPermutation is returned when a route spec's order is not a
	// bijection over the non-excluded positions.
	ErrBadPermutation = errors.New("route order is not a permutation of its domain")
)

// Route is a validated permutation over a text of fixed length. Excluded
// positions pass through unchanged under both Apply and Invert.
type Route struct {
	id      string
	length  int
	perm    []int // perm[j] = source position feeding output j
	inverse []int // inverse[i] = output position holding source i
}

// New validates a spec against a text length and an optional protected set.
// Order lists, in output order, the source positions feeding the non-excluded
// slots; excluded positions are fixed points. Protected positions must be
// outside the permutation domain or construction fails with ErrRouteDomain.
// All checks run once here, never per character.
func New(spec domain.RouteSpec, length int, protected []int) (*Route, error) {
	excluded := make([]bool, length)
	for _, i := range spec.Excluded {
		if i < 0 || i >= length {
			return nil, fmt.Errorf("route %q: excluded position %d outside text of length %d", spec.ID, i, length)
		}
		excluded[i] = true
	}

	domainSize := length - countTrue(excluded)
	if len(spec.Order) != domainSize {
		return nil, fmt.Errorf("%w: route %q order has %d entries, domain has %d",
			ErrBadPermutation, spec.ID, len(spec.Order), domainSize)
	}

	perm := make([]int, length)
	seen := make([]bool, length)
	next := 0
	for j := 0; j < length; j++ {
		if excluded[j] {
			perm[j] = j
			continue
		}
		src := spec.Order[next]
		next++
		if src < 0 || src >= length || excluded[src] {
			return nil, fmt.Errorf("%w: route %q order entry %d", ErrBadPermutation, spec.ID, src)
		}
		if seen[src] {
			return nil, fmt.Errorf("%w: route %q repeats position %d", ErrBadPermutation, spec.ID, src)
		}
		seen[src] = true
		perm[j] = src
	}

	for _, p := range protected {
		if p >= 0 && p < length && !excluded[p] {
			return nil, fmt.Errorf("%w: route %q moves position %d", ErrRouteDomain, spec.ID, p)
		}
	}

	inverse := make([]int, length)
	for j, src := range perm {
		inverse[src] = j
	}
	return &Route{id: spec.ID, length: length, perm: perm, inverse: inverse}, nil
}

// Identity is the no-op route of the given length.
func Identity(length int) *Route {
	perm := make([]int, length)
	inverse := make([]int, length)
	for i := range perm {
		perm[i] = i
		inverse[i] = i
	}
	return &Route{id: "identity", length: length, perm: perm, inverse: inverse}
}

// ID names the route in result records.
func (r *Route) ID() string { return r.id }

// Length is the text length the route was validated against.
func (r *Route) Length() int { return r.length }

// Apply permutes text into wheel order: out[j] = text[perm[j]].
func (r *Route) Apply(text []domain.Symbol) []domain.Symbol {
	out := make([]domain.Symbol, len(text))
	for j, src := range r.perm {
		out[j] = text[src]
	}
	return out
}

// Invert restores original order; Invert(Apply(t)) == t for any t of the
// route's length.
func (r *Route) Invert(text []domain.Symbol) []domain.Symbol {
	out := make([]domain.Symbol, len(text))
	for j, src := range r.perm {
		out[src] = text[j]
	}
	return out
}

// MappedIndex is the wheel-order position of original position i, i.e. the
// slot the wheel model actually sees for a constraint at i.
func (r *Route) MappedIndex(i int) int { return r.inverse[i] }

func countTrue(b []bool) int {
	n := 0
	for _, v := range b {
		if v {
			n++
		}
	}
	return n
}
