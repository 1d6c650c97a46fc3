// Package check implements the check command, the default action of revcheck.
//
// A passing run prints nothing. A mismatch prints the diagnostic to stdout
// and returns an error wrapping revcheck.ErrVersionMismatch, which the binary
// maps to exit status 1.
package check
