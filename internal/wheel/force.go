package wheel

import (
	"errors"
	"fmt"

	"wheelsolve/internal/domain"
	"wheelsolve/internal/route"
)

// ErrIllegalResidue is returned when a forced residue violates the configured
// key policy, or when no tableau row of a table-keyed family can produce the
// constrained pair at all.
var ErrIllegalResidue = errors.New("forced residue violates key policy")

// Policy configures residue validation during forcing.
type Policy struct {
	// ForbidIdentity rejects residue zero for additive families
	// (no pass-through key). It never applies to table-keyed families.
	ForbidIdentity bool
}

// CollisionError carries the collision event up to the orchestrator, which
// records it as data rather than a failure.
type CollisionError struct {
	Event domain.CollisionEvent
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("collision: class %d slot %d holds %d, constraint requires %d",
		e.Event.ClassID, e.Event.Slot, e.Event.Existing, e.Event.Conflicting)
}

// Force records the residue implied by one constraint. The constraint's index
// is mapped through the route to the wheel-order position; the required
// residue comes from the family's inverse encryption relation. An unset slot
// is filled; a matching slot is a no-op; a mismatch returns a CollisionError
// and the caller should abandon the combination, never repair it.
//
// Callers must validate the constraint set with domain.ValidateConstraints
// before any forcing begins.
func (b *Bank) Force(ciphertext []domain.Symbol, con domain.Constraint, rt *route.Route, pol Policy) error {
	j := rt.MappedIndex(con.Index)
	w, slot := b.WheelFor(j)

	// The route permutes positions, not symbols: the ciphertext symbol at
	// wheel-order position j is the one at the constraint's original index.
	c := ciphertext[con.Index]

	k, ok := w.Family.KeyFor(con.Plaintext, c)
	if !ok {
		return fmt.Errorf("%w: no %s row maps %c to %c", ErrIllegalResidue,
			w.Family.Name(), con.Plaintext.Rune(), c.Rune())
	}
	if pol.ForbidIdentity && w.Family.Additive() && k == 0 {
		return fmt.Errorf("%w: identity residue at class %d slot %d", ErrIllegalResidue, w.Class, slot)
	}

	if existing, set := w.Residue(slot); set {
		if existing == k {
			w.positions[slot] = append(w.positions[slot], con.Index)
			return nil
		}
		return &CollisionError{Event: domain.CollisionEvent{
			ClassID:     w.Class,
			Slot:        slot,
			Existing:    domain.Symbol(existing),
			Conflicting: domain.Symbol(k),
			Positions:   append(append([]int(nil), w.positions[slot]...), con.Index),
		}}
	}

	w.residues[slot] = k
	w.provenance[slot] = con.Provenance
	w.positions[slot] = append(w.positions[slot], con.Index)
	return nil
}

// ForceAll forces every constraint in order, stopping at the first collision
// or illegal residue.
func (b *Bank) ForceAll(ciphertext []domain.Symbol, constraints []domain.Constraint, rt *route.Route, pol Policy) error {
	for _, con := range constraints {
		if err := b.Force(ciphertext, con, rt, pol); err != nil {
			return err
		}
	}
	return nil
}
