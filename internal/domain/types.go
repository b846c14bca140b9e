package domain

import (
	"errors"
	"fmt"
)

// Provenance records where a constraint came from. It is diagnostic only and
// never changes the arithmetic.
type Provenance string

const (
	ProvenanceAnchor     Provenance = "anchor"
	ProvenanceTail       Provenance = "tail"
	ProvenanceHypothesis Provenance = "hypothesis"
)

// Constraint pins the plaintext at one ciphertext position.
type Constraint struct {
	Index      int        `json:"index"`
	Plaintext  Symbol     `json:"plaintext"`
	Provenance Provenance `json:"provenance"`
}

// ErrMalformedConstraint indicates a constraint whose index is out of bounds
// or whose plaintext symbol is outside the alphabet. Unlike collisions this is
// caller error and aborts the search before any wheel work begins.
var ErrMalformedConstraint = errors.New("malformed constraint")

// ValidateConstraints rejects any constraint that is out of bounds for a text
// of the given length.
func ValidateConstraints(constraints []Constraint, length int) error {
	for _, c := range constraints {
		if c.Index < 0 || c.Index >= length {
			return fmt.Errorf("%w: index %d outside text of length %d", ErrMalformedConstraint, c.Index, length)
		}
		if !c.Plaintext.Known() {
			return fmt.Errorf("%w: symbol %d at index %d outside alphabet", ErrMalformedConstraint, c.Plaintext, c.Index)
		}
	}
	return nil
}

// RouteSpec is the serialized form of a transposition route: a permutation of
// the non-excluded positions in output order, plus the positions the
// permutation never touches.
type RouteSpec struct {
	ID       string `json:"id"`
	Order    []int  `json:"order"`
	Excluded []int  `json:"excluded,omitempty"`
}

// CollisionEvent records two constraints disagreeing on one wheel slot.
type CollisionEvent struct {
	ClassID     int    `json:"class_id"`
	Slot        int    `json:"slot"`
	Existing    Symbol `json:"existing"`
	Conflicting Symbol `json:"conflicting"`
	Positions   []int  `json:"positions"`
}

// Verdict classifies the outcome of one search combination.
type Verdict string

const (
	VerdictFeasible       Verdict = "feasible"
	VerdictCollision      Verdict = "collision"
	VerdictIllegalResidue Verdict = "illegal_residue"
)

// ClosureReport summarizes how completely a wheel bank determines a text and
// how many further constraints full closure provably requires.
type ClosureReport struct {
	Length        int  `json:"length"`
	Closed        bool `json:"closed"`
	UnknownCount  int  `json:"unknown_count"`
	DistinctSlots int  `json:"distinct_slots"`
	// SingleUseSlots counts (class, slot) pairs touched by exactly one
	// position; ReusedSlots counts pairs touched by more than one.
	SingleUseSlots int `json:"single_use_slots"`
	ReusedSlots    int `json:"reused_slots"`
	// Injective is true when no slot is reused, in which case forcing one
	// position can never determine another and MinAdditional is exact.
	Injective bool `json:"injective"`
	// MinAdditional is the minimum number of further non-colliding
	// constraints required for full closure: one per undetermined
	// (class, slot) pair. A provable lower bound, not a heuristic.
	MinAdditional int `json:"min_additional"`
}

// WheelSnapshot is the serializable state of one wheel after forcing.
// Residues holds Unknown for slots no constraint reached.
type WheelSnapshot struct {
	ClassID  int      `json:"class_id"`
	Family   string   `json:"family"`
	Period   int      `json:"period"`
	Phase    int      `json:"phase"`
	Residues []Symbol `json:"residues"`
}

// SolverResult is the terminal record for one combination. It is immutable
// after construction; infeasible combinations still produce one.
type SolverResult struct {
	RouteID    string   `json:"route_id"`
	ClassingID string   `json:"classing_id"`
	Families   []string `json:"family_per_class"`
	Period     int      `json:"period"`
	Phase      int      `json:"phase"`

	Verdict          Verdict          `json:"verdict"`
	ForcedCount      int              `json:"forced_count"`
	UnknownPositions []int            `json:"unknown_positions"`
	Collisions       []CollisionEvent `json:"collisions,omitempty"`
	Closure          bool             `json:"closure"`
	Plaintext        []Symbol         `json:"derived_plaintext"`
	ClosureReport    *ClosureReport   `json:"closure_report,omitempty"`
	Wheels           []WheelSnapshot  `json:"wheels,omitempty"`
}

// Feasible reports whether the combination survived forcing.
func (r SolverResult) Feasible() bool { return r.Verdict == VerdictFeasible }
