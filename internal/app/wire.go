package app

import (
	"fmt"

	"go.uber.org/zap"

	"wheelsolve/internal/domain"
	"wheelsolve/internal/store"
)

// Wire bundles the loaded inputs and shared dependencies for the CLI.
type Wire struct {
	Ciphertext    []domain.Symbol
	CiphertextRaw []byte
	Constraints   []domain.Constraint
	Routes        *store.RouteFileStore // nil when no route table is configured
	Logger        *zap.Logger
}

// NewWire loads everything cfg names. The ciphertext is required; constraint
// sets and route tables are optional collaborator inputs.
func NewWire(cfg Config) (*Wire, error) {
	if cfg.CiphertextPath == "" {
		return nil, fmt.Errorf("ciphertext path required")
	}
	ciphertext, raw, err := store.LoadCiphertext(cfg.CiphertextPath)
	if err != nil {
		return nil, err
	}

	w := &Wire{
		Ciphertext:    ciphertext,
		CiphertextRaw: raw,
		Logger:        cfg.Logger,
	}
	if w.Logger == nil {
		w.Logger = zap.NewNop()
	}

	if cfg.ConstraintsPath != "" {
		constraints, err := store.LoadConstraints(cfg.ConstraintsPath)
		if err != nil {
			return nil, err
		}
		if err := domain.ValidateConstraints(constraints, len(ciphertext)); err != nil {
			return nil, err
		}
		w.Constraints = constraints
	}

	if cfg.RoutesPath != "" {
		routes, err := store.NewRouteFileStore(cfg.RoutesPath)
		if err != nil {
			return nil, err
		}
		w.Routes = routes
	}
	return w, nil
}
