// Package changelog builds release notes from git commit history.
package changelog
