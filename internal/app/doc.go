// Package app wires application dependencies for the CLI.
//
// It loads the ciphertext, constraint set and route table named in Config,
// exposing them via the Wire struct for commands to use.
package app
