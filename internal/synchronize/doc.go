// Package synchronize implements the sync command: fetch the remote and
// align the current branch with the remote default branch by rebase or pull.
package synchronize
