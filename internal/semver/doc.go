// Package semver parses and orders release identifiers so pinned revisions
// can be reported as behind or ahead of the latest changelog entry.
package semver
