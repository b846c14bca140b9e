// Package commands defines the wheelsolve CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - solve    Run one cipher configuration end to end and print the derived text
//   - search   Enumerate a YAML plan of configurations and write result records
//   - closure  Report slot coverage and the closure bound for a classing and period
//
// # Implementation
//
// The root command loads the ciphertext, constraint set and route table named
// by the persistent flags before any subcommand runs, so handlers share one
// validated input set and one logger.
package commands
