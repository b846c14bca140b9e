package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"wheelsolve/internal/alphabet"
	"wheelsolve/internal/classing"
	"wheelsolve/internal/closure"
	"wheelsolve/internal/wheel"
)

// closure: slot-coverage census for a classing and period, before any
// constraints exist. Shows whether anchors can ever propagate.
func closureCmd() *cobra.Command {
	var (
		classingID string
		period     int
		phase      int
	)

	cmd := &cobra.Command{
		Use:   "closure",
		Short: "Report slot coverage and the closure bound for a classing and period",
		RunE: func(cmd *cobra.Command, args []string) error {
			if period <= 0 {
				return fmt.Errorf("period required (--period)")
			}
			scheme, err := classing.ByID(classingID)
			if err != nil {
				return err
			}

			// Family choice does not affect the census; the bank is empty.
			families := make([]alphabet.Family, scheme.Classes())
			for i := range families {
				families[i] = alphabet.VigenereFamily
			}
			bank := wheel.NewBank(scheme, families, period, phase%period)
			report := closure.Analyze(bank, len(appCtx.Ciphertext))

			fmt.Printf("length %d, classing %s, period %d, phase %d\n",
				report.Length, scheme.ID(), period, phase%period)
			fmt.Printf("distinct (class, slot) pairs: %d (%d single-use, %d reused)\n",
				report.DistinctSlots, report.SingleUseSlots, report.ReusedSlots)
			if report.Injective {
				fmt.Println("mapping is injective: one constraint determines exactly one position")
			} else {
				fmt.Println("slots are reused: constraints can propagate")
			}
			fmt.Printf("minimum constraints for closure from scratch: %d\n", report.MinAdditional)
			return nil
		},
	}

	cmd.Flags().StringVar(&classingID, "classing", "six-track", "classing scheme id")
	cmd.Flags().IntVar(&period, "period", 0, "wheel period L")
	cmd.Flags().IntVar(&phase, "phase", 0, "wheel phase")
	return cmd
}
