// Package clean implements the clean command: a double-confirmed, previewed
// removal of untracked files and directories.
package clean
