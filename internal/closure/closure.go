// Package closure reports how completely a wheel bank determines a text and
// proves how many further constraints full closure requires.
package closure

import (
	"wheelsolve/internal/domain"
	"wheelsolve/internal/wheel"
)

// Analyze censuses the (class, slot) pair of every wheel-order position in
// 0..length and compares it with the bank's forced slots.
//
// When the position-to-pair mapping is injective over the text, forcing one
// position never determines another, so the minimum number of additional
// constraints for full closure is exactly the unknown count. In general the
// bound is the number of distinct undetermined pairs: at least one constraint
// is needed per pair, and one per pair suffices absent collisions.
func Analyze(bank *wheel.Bank, length int) domain.ClosureReport {
	type pair struct{ class, slot int }

	multiplicity := make(map[pair]int, length)
	unknownPairs := make(map[pair]bool)
	unknown := 0
	for j := 0; j < length; j++ {
		w, slot := bank.WheelFor(j)
		p := pair{w.Class, slot}
		multiplicity[p]++
		if _, ok := w.Residue(slot); !ok {
			unknown++
			unknownPairs[p] = true
		}
	}

	singleUse, reused := 0, 0
	for _, n := range multiplicity {
		if n == 1 {
			singleUse++
		} else {
			reused++
		}
	}

	return domain.ClosureReport{
		Length:         length,
		Closed:         unknown == 0,
		UnknownCount:   unknown,
		DistinctSlots:  len(multiplicity),
		SingleUseSlots: singleUse,
		ReusedSlots:    reused,
		Injective:      reused == 0,
		MinAdditional:  len(unknownPairs),
	}
}

// UnknownPositions lists, in original order, every position the bank leaves
// undetermined. The route is a bijection, so callers pass derived plaintext
// rather than re-deriving wheel order here.
func UnknownPositions(plaintext []domain.Symbol) []int {
	var out []int
	for i, s := range plaintext {
		if !s.Known() {
			out = append(out, i)
		}
	}
	return out
}
