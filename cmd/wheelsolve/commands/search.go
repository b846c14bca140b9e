package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wheelsolve/internal/alphabet"
	"wheelsolve/internal/classing"
	"wheelsolve/internal/derive"
	"wheelsolve/internal/receipt"
	"wheelsolve/internal/route"
	"wheelsolve/internal/search"
	"wheelsolve/internal/store"
	"wheelsolve/internal/wheel"
)

// search --plan plan.yaml --out results.json: enumerate a whole plan.
func searchCmd() *cobra.Command {
	var (
		planPath string
		outPath  string
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Run every configuration in a plan and write result records",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := store.LoadPlan(planPath)
			if err != nil {
				return err
			}

			space, err := buildSpace(plan)
			if err != nil {
				return err
			}

			orch := search.New(search.Config{
				Ciphertext:  appCtx.Ciphertext,
				Constraints: appCtx.Constraints,
				Policy:      wheel.Policy{ForbidIdentity: plan.Policy.ForbidIdentity},
				Derive: derive.Options{
					Autokey:   plan.Autokey.Enabled,
					Delay:     plan.Autokey.Delay,
					MaxPasses: plan.Autokey.Passes,
				},
				Workers: plan.Workers,
				Budget:  plan.Budget,
				Logger:  appCtx.Logger,
			})
			results, err := orch.Run(cmd.Context(), space)
			if err != nil {
				return err
			}

			var routeTable []byte
			if appCtx.Routes != nil {
				routeTable = appCtx.Routes.Raw()
			}
			rcpt := receipt.New(appCtx.Ciphertext, routeTable, "plan:"+planPath)
			if err := store.WriteResults(outPath, rcpt, results); err != nil {
				return err
			}

			feasible := 0
			for _, r := range results {
				if r.Feasible() {
					feasible++
				}
			}
			fmt.Printf("wrote %d results (%d feasible) to %s\nrun %s ciphertext %s\n",
				len(results), feasible, outPath, rcpt.RunID, receipt.Fingerprint(rcpt.CiphertextHash))
			return nil
		},
	}

	cmd.Flags().StringVar(&planPath, "plan", "", "search plan YAML")
	cmd.Flags().StringVar(&outPath, "out", "", "result set output path")
	_ = cmd.MarkFlagRequired("plan")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

// buildSpace resolves the plan's names into a concrete search space.
func buildSpace(plan store.Plan) (search.Space, error) {
	var space search.Space

	routeIDs := plan.Routes
	if len(routeIDs) == 0 {
		routeIDs = []string{"identity"}
	}
	for _, id := range routeIDs {
		rt, err := resolveRoute(id, plan.Protected)
		if err != nil {
			// An NA-only violation skips the route, not the search.
			if errors.Is(err, route.ErrRouteDomain) {
				appCtx.Logger.Warn("skipping route", zap.String("route", id), zap.Error(err))
				continue
			}
			return search.Space{}, err
		}
		space.Routes = append(space.Routes, rt)
	}
	if len(space.Routes) == 0 {
		return search.Space{}, fmt.Errorf("no usable routes in plan")
	}

	for _, id := range plan.Classings {
		scheme, err := classing.ByID(id)
		if err != nil {
			return search.Space{}, err
		}
		space.Classings = append(space.Classings, scheme)
	}
	for _, name := range plan.Families {
		fam, err := alphabet.ParseFamily(name)
		if err != nil {
			return search.Space{}, err
		}
		space.Families = append(space.Families, fam)
	}
	space.Periods = plan.Periods
	space.Phases = plan.Phases
	space.PerClass = plan.PerClass
	return space, nil
}
