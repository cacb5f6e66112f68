// Package branches implements the branch command: check out a branch,
// create it when missing, and push it with upstream tracking.
package branches
