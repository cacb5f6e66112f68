package toolcheck

import (
	"context"
	"errors"
	"os/exec"

	"github.com/temirov/grit/internal/githubauth"
)

const (
	// GitExecutableNameConstant is the executable grit requires for every command.
	GitExecutableNameConstant = "git"
	// GitHubExecutableNameConstant is the optional hosting CLI grit degrades without.
	GitHubExecutableNameConstant = "gh"

	gitUnavailableMessageConstant = "git executable not found in PATH; install git to use grit"
)

// ErrGitUnavailable indicates the git executable could not be resolved on the search path.
var ErrGitUnavailable = errors.New(gitUnavailableMessageConstant)

// GitHubCLIState reports the usability of the GitHub CLI.
type GitHubCLIState int

// GitHub CLI states ordered by increasing capability.
const (
	GitHubCLIUnavailable GitHubCLIState = iota
	GitHubCLIUnauthenticated
	GitHubCLIAuthenticated
)

// Available reports whether the GitHub CLI executable was resolved.
func (state GitHubCLIState) Available() bool {
	return state != GitHubCLIUnavailable
}

// Authenticated reports whether the GitHub CLI holds a usable session.
func (state GitHubCLIState) Authenticated() bool {
	return state == GitHubCLIAuthenticated
}

// ExecutableLocator resolves an executable name against the system search path.
type ExecutableLocator func(executableName string) (string, error)

// AuthenticationChecker reports whether the GitHub CLI session is authenticated.
type AuthenticationChecker interface {
	CheckAuthentication(executionContext context.Context) (bool, error)
}

// Dependencies enumerates the collaborators an Inspector consults. Every field is
// optional; zero values fall back to the process environment and exec.LookPath.
type Dependencies struct {
	ExecutableLocator     ExecutableLocator
	AuthenticationChecker AuthenticationChecker
	Environment           map[string]string
}

// Inspector answers availability questions about the external tools grit wraps.
type Inspector struct {
	dependencies Dependencies
}

// NewInspector constructs an Inspector from the provided dependencies.
func NewInspector(dependencies Dependencies) *Inspector {
	if dependencies.ExecutableLocator == nil {
		dependencies.ExecutableLocator = exec.LookPath
	}
	return &Inspector{dependencies: dependencies}
}

// GitAvailable reports whether the git executable is resolvable.
func (inspector *Inspector) GitAvailable() bool {
	_, lookupError := inspector.dependencies.ExecutableLocator(GitExecutableNameConstant)
	return lookupError == nil
}

// RequireGit returns ErrGitUnavailable when the git executable cannot be resolved.
func (inspector *Inspector) RequireGit() error {
	if !inspector.GitAvailable() {
		return ErrGitUnavailable
	}
	return nil
}

// InspectGitHubCLI resolves the GitHub CLI tri-state. A token in the environment
// satisfies authentication without invoking gh; otherwise the authentication
// checker decides. Without a checker an available CLI counts as unauthenticated.
func (inspector *Inspector) InspectGitHubCLI(executionContext context.Context) (GitHubCLIState, error) {
	if _, lookupError := inspector.dependencies.ExecutableLocator(GitHubExecutableNameConstant); lookupError != nil {
		return GitHubCLIUnavailable, nil
	}

	if _, tokenFound := githubauth.ResolveToken(inspector.dependencies.Environment); tokenFound {
		return GitHubCLIAuthenticated, nil
	}

	if inspector.dependencies.AuthenticationChecker == nil {
		return GitHubCLIUnauthenticated, nil
	}

	authenticated, authenticationError := inspector.dependencies.AuthenticationChecker.CheckAuthentication(executionContext)
	if authenticationError != nil {
		return GitHubCLIUnauthenticated, authenticationError
	}
	if authenticated {
		return GitHubCLIAuthenticated, nil
	}
	return GitHubCLIUnauthenticated, nil
}
