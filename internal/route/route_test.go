package route_test

import (
	"errors"
	"testing"

	"wheelsolve/internal/domain"
	"wheelsolve/internal/route"
)

// mustText parses a letters-only string.
func mustText(t *testing.T, s string) []domain.Symbol {
	t.Helper()
	out, err := domain.ParseText(s)
	if err != nil {
		t.Fatalf("ParseText(%q): %v", s, err)
	}
	return out
}

func TestApplyInvertRoundTrip(t *testing.T) {
	text := mustText(t, "WHEELBANK")
	rt, err := route.New(domain.RouteSpec{
		ID:    "reverse",
		Order: []int{8, 7, 6, 5, 4, 3, 2, 1, 0},
	}, len(text), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	routed := rt.Apply(text)
	if got := domain.TextString(routed); got != "KNABLEEHW" {
		t.Fatalf("Apply = %q", got)
	}
	if got := domain.TextString(rt.Invert(routed)); got != "WHEELBANK" {
		t.Fatalf("Invert(Apply(text)) = %q", got)
	}
}

func TestExcludedPositionsPassThrough(t *testing.T) {
	text := mustText(t, "ABCDEF")
	// Positions 1 and 4 fixed; the rest rotate.
	rt, err := route.New(domain.RouteSpec{
		ID:       "partial",
		Order:    []int{2, 3, 5, 0},
		Excluded: []int{1, 4},
	}, len(text), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	routed := rt.Apply(text)
	if routed[1] != text[1] || routed[4] != text[4] {
		t.Fatalf("excluded positions moved: %q", domain.TextString(routed))
	}
	if got := domain.TextString(rt.Invert(routed)); got != "ABCDEF" {
		t.Fatalf("round trip = %q", got)
	}
	// Excluded positions map to themselves in wheel order.
	if rt.MappedIndex(1) != 1 || rt.MappedIndex(4) != 4 {
		t.Fatal("excluded positions should be fixed points of MappedIndex")
	}
}

func TestMappedIndexMatchesApply(t *testing.T) {
	text := mustText(t, "SOLVERTEXT")
	rt, err := route.New(domain.RouteSpec{
		ID:    "rot3",
		Order: []int{3, 4, 5, 6, 7, 8, 9, 0, 1, 2},
	}, len(text), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	routed := rt.Apply(text)
	for i := range text {
		if routed[rt.MappedIndex(i)] != text[i] {
			t.Fatalf("MappedIndex(%d) disagrees with Apply", i)
		}
	}
}

func TestProtectedPositionsRejected(t *testing.T) {
	// Anchor positions must be excluded from the permutation domain.
	_, err := route.New(domain.RouteSpec{
		ID:    "bad",
		Order: []int{4, 3, 2, 1, 0},
	}, 5, []int{2})
	if !errors.Is(err, route.ErrRouteDomain) {
		t.Fatalf("want ErrRouteDomain, got %v", err)
	}

	// The same route is fine once the anchor is excluded.
	_, err = route.New(domain.RouteSpec{
		ID:       "good",
		Order:    []int{4, 3, 1, 0},
		Excluded: []int{2},
	}, 5, []int{2})
	if err != nil {
		t.Fatalf("New with excluded anchor: %v", err)
	}
}

func TestBadPermutations(t *testing.T) {
	cases := []domain.RouteSpec{
		{ID: "short", Order: []int{0, 1}},
		{ID: "repeat", Order: []int{0, 1, 1, 3, 4}},
		{ID: "oob", Order: []int{0, 1, 2, 3, 9}},
	}
	for _, spec := range cases {
		if _, err := route.New(spec, 5, nil); !errors.Is(err, route.ErrBadPermutation) {
			t.Fatalf("route %q: want ErrBadPermutation, got %v", spec.ID, err)
		}
	}
}

func TestIdentityRoute(t *testing.T) {
	text := mustText(t, "UNMOVED")
	rt := route.Identity(len(text))
	if got := domain.TextString(rt.Apply(text)); got != "UNMOVED" {
		t.Fatalf("identity Apply = %q", got)
	}
	for i := range text {
		if rt.MappedIndex(i) != i {
			t.Fatalf("identity MappedIndex(%d) = %d", i, rt.MappedIndex(i))
		}
	}
}
