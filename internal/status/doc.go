// Package status implements the status command: a compact report of branch,
// upstream tracking, divergence, working-tree changes, and stash depth.
package status
