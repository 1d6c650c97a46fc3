// Package cli assembles the revcheck root command from the subcommands in
// internal/commands and applies the global flags before any of them runs.
package cli
