package app

import "go.uber.org/zap"

// Config holds runtime wiring options for building the app.
type Config struct {
	CiphertextPath  string // letters-only text file
	ConstraintsPath string // JSON constraint set; optional
	RoutesPath      string // JSON route table; optional
	Logger          *zap.Logger
}
