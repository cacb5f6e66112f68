// Package clone implements the clone command: a shallow clone configured for
// rebasing pulls and pruned fetches, with the branch listing printed.
package clone
