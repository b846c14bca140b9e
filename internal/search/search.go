// Package search enumerates candidate cipher configurations and runs the
// forcing/derivation/closure pipeline once per point.
//
// Points are independent: each gets a fresh wheel bank and shares nothing
// mutable with its neighbours, so they run on a bounded worker pool. Results
// land in a pre-sized slice by point index, which makes parallel and serial
// runs bit-identical. Collisions and illegal residues are recorded verdicts,
// never failures; only malformed input aborts a search.
package search

import (
	"context"
	"errors"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"wheelsolve/internal/closure"
	"wheelsolve/internal/derive"
	"wheelsolve/internal/domain"
	"wheelsolve/internal/wheel"
)

// Config bundles the per-search inputs shared by every point.
type Config struct {
	Ciphertext  []domain.Symbol
	Constraints []domain.Constraint
	Policy      wheel.Policy
	Derive      derive.Options

	// Workers bounds the pool; zero means GOMAXPROCS.
	Workers int
	// Budget caps the number of enumerated points; zero means unlimited.
	Budget int
	// Logger is optional; nil means no logging.
	Logger *zap.Logger
}

// Orchestrator runs searches over combination spaces.
type Orchestrator struct {
	cfg Config
	log *zap.Logger
}

// New validates nothing yet; constraint validation happens per Run against
// the ciphertext length.
func New(cfg Config) *Orchestrator {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Orchestrator{cfg: cfg, log: log}
}

// Run evaluates every point of the space and returns one SolverResult per
// attempted point, in enumeration order. A finished search never returns a
// partial record list: infeasible points produce records too.
func (o *Orchestrator) Run(ctx context.Context, space Space) ([]domain.SolverResult, error) {
	if err := domain.ValidateConstraints(o.cfg.Constraints, len(o.cfg.Ciphertext)); err != nil {
		return nil, err
	}

	points := space.Points()
	if o.cfg.Budget > 0 && len(points) > o.cfg.Budget {
		o.log.Info("search budget reached",
			zap.Int("enumerated", len(points)),
			zap.Int("budget", o.cfg.Budget))
		points = points[:o.cfg.Budget]
	}

	workers := o.cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]domain.SolverResult, len(points))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, point := range points {
		i, point := i, point
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = o.evaluate(point)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	feasible := 0
	for _, r := range results {
		if r.Feasible() {
			feasible++
		}
	}
	o.log.Info("search finished",
		zap.Int("points", len(points)),
		zap.Int("feasible", feasible))
	return results, nil
}

// evaluate runs forcing, derivation and closure analysis for one point.
func (o *Orchestrator) evaluate(point Combination) domain.SolverResult {
	result := domain.SolverResult{
		RouteID:    point.Route.ID(),
		ClassingID: point.Classing.ID(),
		Families:   familyNames(point),
		Period:     point.Period,
		Phase:      point.Phase,
		Verdict:    domain.VerdictFeasible,
	}

	bank := wheel.NewBank(point.Classing, point.Families, point.Period, point.Phase)
	if err := bank.ForceAll(o.cfg.Ciphertext, o.cfg.Constraints, point.Route, o.cfg.Policy); err != nil {
		var collision *wheel.CollisionError
		switch {
		case errors.As(err, &collision):
			result.Verdict = domain.VerdictCollision
			result.Collisions = append(result.Collisions, collision.Event)
		case errors.Is(err, wheel.ErrIllegalResidue):
			result.Verdict = domain.VerdictIllegalResidue
		default:
			// Constraints were validated up front; anything else here is a
			// policy outcome, not an error.
			result.Verdict = domain.VerdictIllegalResidue
		}
		o.log.Debug("infeasible combination",
			zap.String("route", result.RouteID),
			zap.String("classing", result.ClassingID),
			zap.Int("period", result.Period),
			zap.Int("phase", result.Phase),
			zap.String("verdict", string(result.Verdict)))
		return result
	}

	plaintext, forced := derive.Derive(bank, o.cfg.Ciphertext, point.Route, o.cfg.Derive)
	report := closure.Analyze(bank, len(o.cfg.Ciphertext))

	result.Plaintext = plaintext
	result.ForcedCount = forced
	result.UnknownPositions = closure.UnknownPositions(plaintext)
	result.Closure = len(result.UnknownPositions) == 0
	result.ClosureReport = &report
	result.Wheels = bank.Snapshots()
	return result
}

func familyNames(point Combination) []string {
	names := make([]string, len(point.Families))
	for i, f := range point.Families {
		names[i] = f.Name()
	}
	return names
}
