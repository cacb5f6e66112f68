// Package releases implements the release command: it tags a version,
// pushes the tag, and publishes a GitHub release when the CLI is
// authenticated.
package releases
