// Package gitrepo contains helpers for interrogating and manipulating Git repositories.
//
// It exposes RepositoryManager for inspecting worktree status, branches, and
// upstreams and for pushing with an upstream-tracking fallback, along with
// remote URL parsing and the clone-directory derivation used by grit commands.
package gitrepo
