// Package pullrequest implements the pr command: it pushes the current branch
// and opens a GitHub pull request with branch-derived defaults.
package pullrequest
