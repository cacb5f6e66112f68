// Package repoinit implements the init command: it creates a local git
// repository with template files and an initial commit, then publishes it to
// GitHub when the CLI is available and authenticated.
package repoinit
