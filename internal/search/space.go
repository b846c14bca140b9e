package search

import (
	"wheelsolve/internal/alphabet"
	"wheelsolve/internal/classing"
	"wheelsolve/internal/route"
)

// Combination is one point of the search space: everything needed to build a
// wheel bank and run the pipeline once.
type Combination struct {
	Route    *route.Route
	Classing classing.Scheme
	Families []alphabet.Family // one per class
	Period   int
	Phase    int
}

// Space describes the Cartesian enumeration
// {routes} × {classings} × {periods} × {phases} × {family assignments}.
type Space struct {
	Routes    []*route.Route
	Classings []classing.Scheme
	Periods   []int
	// Phases lists the phases to try; nil means every phase 0..L-1.
	Phases []int
	// Families is the candidate family set. With PerClass false every class
	// uses the same family (len(Families) assignments per point); with
	// PerClass true the full product families^classes is enumerated.
	Families []alphabet.Family
	PerClass bool
}

// Points materializes the space in deterministic order.
func (s Space) Points() []Combination {
	var out []Combination
	for _, rt := range s.Routes {
		for _, scheme := range s.Classings {
			for _, assignment := range s.assignments(scheme.Classes()) {
				for _, period := range s.Periods {
					for _, phase := range s.phases(period) {
						out = append(out, Combination{
							Route:    rt,
							Classing: scheme,
							Families: assignment,
							Period:   period,
							Phase:    phase,
						})
					}
				}
			}
		}
	}
	return out
}

func (s Space) phases(period int) []int {
	if s.Phases != nil {
		return s.Phases
	}
	all := make([]int, period)
	for i := range all {
		all[i] = i
	}
	return all
}

// assignments enumerates per-class family vectors: either one uniform vector
// per candidate family, or the full Cartesian product in odometer order.
func (s Space) assignments(classes int) [][]alphabet.Family {
	if !s.PerClass {
		out := make([][]alphabet.Family, 0, len(s.Families))
		for _, fam := range s.Families {
			vec := make([]alphabet.Family, classes)
			for i := range vec {
				vec[i] = fam
			}
			out = append(out, vec)
		}
		return out
	}

	var out [][]alphabet.Family
	idx := make([]int, classes)
	for {
		vec := make([]alphabet.Family, classes)
		for i, f := range idx {
			vec[i] = s.Families[f]
		}
		out = append(out, vec)

		carry := classes - 1
		for carry >= 0 {
			idx[carry]++
			if idx[carry] < len(s.Families) {
				break
			}
			idx[carry] = 0
			carry--
		}
		if carry < 0 {
			return out
		}
	}
}
