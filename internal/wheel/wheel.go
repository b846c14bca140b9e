// Package wheel holds the per-class key wheels and the constraint forcer
// that fills their residue slots from known plaintext.
package wheel

import (
	"wheelsolve/internal/alphabet"
	"wheelsolve/internal/classing"
	"wheelsolve/internal/domain"
)

// Wheel is the residue schedule for one equivalence class: a cipher family,
// a period, a phase, and one residue per slot. Slots start unknown.
type Wheel struct {
	Class  int
	Family alphabet.Family
	Period int
	Phase  int

	residues   []int
	provenance []domain.Provenance
	positions  [][]int // original positions that forced or confirmed each slot
}

func newWheel(class int, family alphabet.Family, period, phase int) *Wheel {
	residues := make([]int, period)
	for i := range residues {
		residues[i] = -1
	}
	return &Wheel{
		Class:      class,
		Family:     family,
		Period:     period,
		Phase:      phase,
		residues:   residues,
		provenance: make([]domain.Provenance, period),
		positions:  make([][]int, period),
	}
}

// Slot is the wheel slot serving wheel-order position j.
func (w *Wheel) Slot(j int) int { return (j + w.Phase) % w.Period }

// Residue returns the residue at slot, if forced.
func (w *Wheel) Residue(slot int) (int, bool) {
	k := w.residues[slot]
	return k, k >= 0
}

// Snapshot freezes the wheel for a result record.
func (w *Wheel) Snapshot() domain.WheelSnapshot {
	residues := make([]domain.Symbol, w.Period)
	for i, k := range w.residues {
		if k < 0 {
			residues[i] = domain.Unknown
		} else {
			residues[i] = domain.Symbol(k)
		}
	}
	return domain.WheelSnapshot{
		ClassID:  w.Class,
		Family:   w.Family.Name(),
		Period:   w.Period,
		Phase:    w.Phase,
		Residues: residues,
	}
}

// Bank maps every equivalence class of a classing scheme to its wheel.
// A bank lives for exactly one search combination.
type Bank struct {
	classing classing.Scheme
	wheels   []*Wheel
}

// NewBank builds one wheel per class. families must have one entry per class
// of the scheme; period and phase are shared across classes.
func NewBank(scheme classing.Scheme, families []alphabet.Family, period, phase int) *Bank {
	wheels := make([]*Wheel, scheme.Classes())
	for class := range wheels {
		wheels[class] = newWheel(class, families[class], period, phase)
	}
	return &Bank{classing: scheme, wheels: wheels}
}

// Classing is the scheme the bank was built for.
func (b *Bank) Classing() classing.Scheme { return b.classing }

// WheelFor returns the wheel serving wheel-order position j and its slot.
func (b *Bank) WheelFor(j int) (*Wheel, int) {
	w := b.wheels[b.classing.ClassOf(j)]
	return w, w.Slot(j)
}

// Wheels returns the wheels in class order.
func (b *Bank) Wheels() []*Wheel { return b.wheels }

// Snapshots freezes every wheel for a result record.
func (b *Bank) Snapshots() []domain.WheelSnapshot {
	out := make([]domain.WheelSnapshot, len(b.wheels))
	for i, w := range b.wheels {
		out[i] = w.Snapshot()
	}
	return out
}
