// Package save implements the save command: stage everything, commit with a
// timestamped default message, and push the current branch.
package save
