// Package core holds the small abstractions shared across revcheck packages,
// most notably the FileSystem used to read the changelog and documentation pages.
package core
