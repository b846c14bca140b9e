package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"wheelsolve/internal/app"
	"wheelsolve/internal/route"
)

var (
	ciphertextPath  string
	constraintsPath string
	routesPath      string
	verbose         bool

	appCtx *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "wheelsolve",
		Short: "Key-wheel constraint solver for classical ciphers",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := zap.NewProductionConfig()
			if verbose {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := cfg.Build()
			if err != nil {
				return err
			}

			appCtx, err = app.NewWire(app.Config{
				CiphertextPath:  ciphertextPath,
				ConstraintsPath: constraintsPath,
				RoutesPath:      routesPath,
				Logger:          logger,
			})
			return err
		},
	}

	root.PersistentFlags().StringVar(&ciphertextPath, "ciphertext", "", "ciphertext file (letters only)")
	root.PersistentFlags().StringVar(&constraintsPath, "constraints", "", "constraint set JSON")
	root.PersistentFlags().StringVar(&routesPath, "routes", "", "route table JSON")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	_ = root.MarkPersistentFlagRequired("ciphertext")

	root.AddCommand(solveCmd(), searchCmd(), closureCmd())
	return root.Execute()
}

// resolveRoute builds a validated route from an id, with "identity" always
// available even without a route table.
func resolveRoute(id string, protected []int) (*route.Route, error) {
	length := len(appCtx.Ciphertext)
	if id == "" || id == "identity" {
		return route.Identity(length), nil
	}
	if appCtx.Routes == nil {
		return nil, fmt.Errorf("route %q requested but no route table configured (--routes)", id)
	}
	spec, ok := appCtx.Routes.Load(id)
	if !ok {
		return nil, fmt.Errorf("route %q not in route table", id)
	}
	return route.New(spec, length, protected)
}
