// Package revcheck verifies that the revision pinned in example configuration
// snippets inside documentation matches the latest release in the changelog.
//
// A document is checked block by block. The first block that does not decode
// to a mapping ends the check for that document as a pass, even when later
// blocks would mismatch. The first mismatch ends the whole run.
package revcheck
