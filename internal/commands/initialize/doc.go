// Package initialize implements the init command.
//
// It writes a commented .revcheck.yaml built from a template or from the
// changelog and markdown pages discovered in the working directory, and asks
// before replacing an existing file when a terminal is attached.
package initialize
