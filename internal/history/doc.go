// Package history implements the log command: a decorated oneline commit
// graph limited to a configurable number of entries.
package history
