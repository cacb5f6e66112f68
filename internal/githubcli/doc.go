// Package githubcli wraps the GitHub CLI for grit workflows.
//
// It layers typed request structures for the gh subcommands grit issues
// (auth status, repo create, pr create, release create) and integrates with
// execshell so interactions with GitHub can be stubbed during testing.
package githubcli
