// Package cli parses command-line arguments for cmd/sceneimport into a
// Config, in the same shape as the rest of this repo's ambient stack:
// flag.FlagSet-based parsing, a distinct ExitError for process exit
// codes, and validation that turns bad input into an error rather than
// a panic deep inside the resolver.
package cli
