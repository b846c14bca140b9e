package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"wheelsolve/internal/alphabet"
	"wheelsolve/internal/classing"
	"wheelsolve/internal/closure"
	"wheelsolve/internal/derive"
	"wheelsolve/internal/domain"
	"wheelsolve/internal/wheel"
)

// solve: run a single configuration end to end.
func solveCmd() *cobra.Command {
	var (
		routeID        string
		classingID     string
		period         int
		phase          int
		families       string
		autokey        bool
		delay          int
		forbidIdentity bool
		protected      []int
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Force constraints through one configuration and print the derived text",
		RunE: func(cmd *cobra.Command, args []string) error {
			if period <= 0 {
				return fmt.Errorf("period required (--period)")
			}
			scheme, err := classing.ByID(classingID)
			if err != nil {
				return err
			}
			perClass, err := parseFamilies(families, scheme.Classes())
			if err != nil {
				return err
			}
			rt, err := resolveRoute(routeID, protected)
			if err != nil {
				return err
			}

			bank := wheel.NewBank(scheme, perClass, period, phase%period)
			pol := wheel.Policy{ForbidIdentity: forbidIdentity}
			if err := bank.ForceAll(appCtx.Ciphertext, appCtx.Constraints, rt, pol); err != nil {
				var collision *wheel.CollisionError
				if errors.As(err, &collision) || errors.Is(err, wheel.ErrIllegalResidue) {
					fmt.Printf("infeasible: %v\n", err)
					return nil
				}
				return err
			}

			plaintext, forced := derive.Derive(bank, appCtx.Ciphertext, rt, derive.Options{
				Autokey: autokey,
				Delay:   delay,
			})
			report := closure.Analyze(bank, len(appCtx.Ciphertext))

			fmt.Println(domain.TextString(plaintext))
			fmt.Printf("forced %d of %d positions; %d unknown\n",
				forced, report.Length, report.UnknownCount)
			if report.Closed {
				fmt.Println("closure reached")
			} else {
				fmt.Printf("minimum additional constraints for closure: %d (injective=%v)\n",
					report.MinAdditional, report.Injective)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&routeID, "route", "identity", "route id from the route table")
	cmd.Flags().StringVar(&classingID, "classing", "six-track", "classing scheme id")
	cmd.Flags().IntVar(&period, "period", 0, "wheel period L")
	cmd.Flags().IntVar(&phase, "phase", 0, "wheel phase")
	cmd.Flags().StringVar(&families, "families", "vigenere", "family name, or one per class comma-separated")
	cmd.Flags().BoolVar(&autokey, "autokey", false, "enable running-key feedback derivation")
	cmd.Flags().IntVar(&delay, "delay", 1, "autokey feedback distance")
	cmd.Flags().BoolVar(&forbidIdentity, "forbid-identity", false, "reject identity residues for additive families")
	cmd.Flags().IntSliceVar(&protected, "protected", nil, "positions the route must not move")
	return cmd
}

// parseFamilies expands "vigenere" or "vigenere,beaufort,..." into one family
// per class.
func parseFamilies(spec string, classes int) ([]alphabet.Family, error) {
	names := strings.Split(spec, ",")
	if len(names) != 1 && len(names) != classes {
		return nil, fmt.Errorf("expected 1 or %d families, got %d", classes, len(names))
	}
	out := make([]alphabet.Family, classes)
	for i := range out {
		name := names[0]
		if len(names) == classes {
			name = names[i]
		}
		fam, err := alphabet.ParseFamily(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		out[i] = fam
	}
	return out, nil
}
