// Package store loads and persists the solver's external data as files.
//
// It contains the collaborator-facing I/O the solver core never performs:
//   - Ciphertext text files (LoadCiphertext)
//   - Constraint sets as JSON (LoadConstraints)
//   - Route tables as JSON keyed by route id (RouteFileStore)
//   - Search plans as YAML (LoadPlan)
//   - Result records plus their receipt as JSON (WriteResults)
//
// Writes go through a temp file and rename, so a crash never leaves a
// half-written result set.
package store
