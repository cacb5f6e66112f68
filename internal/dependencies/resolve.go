package dependencies

import (
	"go.uber.org/zap"

	"github.com/temirov/grit/internal/changelog"
	"github.com/temirov/grit/internal/execshell"
	"github.com/temirov/grit/internal/githubcli"
	"github.com/temirov/grit/internal/gitrepo"
	"github.com/temirov/grit/internal/shared"
	"github.com/temirov/grit/internal/toolcheck"
)

// ResolveGitExecutor returns the provided executor or constructs a shell-backed default.
func ResolveGitExecutor(existing shared.GitExecutor, logger *zap.Logger, humanReadableLogging bool) (shared.GitExecutor, error) {
	if existing != nil {
		return existing, nil
	}

	commandRunner := execshell.NewOSCommandRunner()
	shellExecutor, creationError := execshell.NewShellExecutor(logger, commandRunner, humanReadableLogging)
	if creationError != nil {
		return nil, creationError
	}
	return shellExecutor, nil
}

// ResolveRepositoryManager returns the provided manager or constructs one from the executor.
func ResolveRepositoryManager(existing shared.GitRepositoryManager, executor shared.GitExecutor) (shared.GitRepositoryManager, error) {
	if existing != nil {
		return existing, nil
	}
	return gitrepo.NewRepositoryManager(executor)
}

// ResolveGitHubClient constructs a GitHub CLI client from the executor.
func ResolveGitHubClient(executor shared.GitExecutor) (*githubcli.Client, error) {
	return githubcli.NewClient(executor)
}

// ResolveToolInspector returns the provided inspector or constructs one whose
// authentication checks run through the GitHub CLI client.
func ResolveToolInspector(existing *toolcheck.Inspector, executor shared.GitExecutor) (*toolcheck.Inspector, error) {
	if existing != nil {
		return existing, nil
	}

	client, clientError := githubcli.NewClient(executor)
	if clientError != nil {
		return nil, clientError
	}
	return toolcheck.NewInspector(toolcheck.Dependencies{AuthenticationChecker: client}), nil
}

// ResolveClock returns the provided clock or the system clock.
func ResolveClock(existing shared.Clock) shared.Clock {
	if existing != nil {
		return existing
	}
	return shared.SystemClock{}
}

// ResolveFileSystem returns the provided filesystem or an OS-backed default.
func ResolveFileSystem(existing shared.FileSystem) shared.FileSystem {
	if existing != nil {
		return existing
	}
	return shared.OSFileSystem{}
}

// ResolveNotesBuilder returns the provided builder or constructs one from the executor.
func ResolveNotesBuilder(existing *changelog.Builder, executor shared.GitExecutor) (*changelog.Builder, error) {
	if existing != nil {
		return existing, nil
	}
	return changelog.NewBuilder(executor)
}
