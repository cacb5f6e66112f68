// Package toolcheck resolves the availability of the external tools grit wraps:
// a boolean for git and a tri-state for the GitHub CLI (unavailable, available
// but unauthenticated, authenticated). Checks are cheap and run uncached by
// each command that needs them.
package toolcheck
