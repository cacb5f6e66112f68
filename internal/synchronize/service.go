package synchronize

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/temirov/grit/internal/execshell"
	"github.com/temirov/grit/internal/shared"
)

const (
	repositoryPathRequiredMessageConstant       = "repository path must be provided"
	gitExecutorMissingMessageConstant           = "git executor not configured"
	repositoryManagerMissingMessageConstant     = "repository manager not configured"
	defaultBranchProbeFailureTemplateConstant   = "failed to probe remote %q for the default branch: %w"
	fetchFailureTemplateConstant                = "failed to fetch from remote %q: %w"
	currentBranchFailureTemplateConstant        = "failed to resolve the current branch: %w"
	pullFailureTemplateConstant                 = "failed to pull %s/%s: %w"
	rebaseConflictTemplateConstant              = "rebase onto %s/%s stopped by conflicts; the rebase was aborted"
	gitFetchSubcommandConstant                  = "fetch"
	gitPullSubcommandConstant                   = "pull"
	gitRebaseSubcommandConstant                 = "rebase"
	gitRebaseAbortFlagConstant                  = "--abort"
	remoteBranchSeparatorConstant               = "/"
	gitTerminalPromptEnvironmentNameConstant    = "GIT_TERMINAL_PROMPT"
	gitTerminalPromptEnvironmentDisableConstant = "0"
)

// ErrRepositoryPathRequired indicates the repository path option was empty.
var ErrRepositoryPathRequired = errors.New(repositoryPathRequiredMessageConstant)

// ErrGitExecutorNotConfigured indicates the git executor dependency was missing.
var ErrGitExecutorNotConfigured = errors.New(gitExecutorMissingMessageConstant)

// ErrRepositoryManagerNotConfigured indicates the repository manager dependency was missing.
var ErrRepositoryManagerNotConfigured = errors.New(repositoryManagerMissingMessageConstant)

// RebaseConflictError reports a rebase halted by conflicts after the automatic abort.
type RebaseConflictError struct {
	RemoteName    string
	DefaultBranch string
	Cause         error
}

// Error describes the halted rebase.
func (conflictError RebaseConflictError) Error() string {
	return fmt.Sprintf(rebaseConflictTemplateConstant, conflictError.RemoteName, conflictError.DefaultBranch)
}

// Unwrap exposes the underlying git failure.
func (conflictError RebaseConflictError) Unwrap() error {
	return conflictError.Cause
}

// Dependencies enumerates external collaborators required for synchronization.
type Dependencies struct {
	GitExecutor       shared.GitExecutor
	RepositoryManager shared.GitRepositoryManager
}

// Options configures a synchronization run.
type Options struct {
	RepositoryPath string
	RemoteName     string
}

// Result captures the observable outcomes of a synchronization.
type Result struct {
	RepositoryPath string
	RemoteName     string
	DefaultBranch  string
	CurrentBranch  string
	Rebased        bool
}

// Service aligns the current branch with the remote default branch.
type Service struct {
	gitExecutor       shared.GitExecutor
	repositoryManager shared.GitRepositoryManager
}

// NewService validates the dependencies and constructs a Service.
func NewService(dependencies Dependencies) (*Service, error) {
	if dependencies.GitExecutor == nil {
		return nil, ErrGitExecutorNotConfigured
	}
	if dependencies.RepositoryManager == nil {
		return nil, ErrRepositoryManagerNotConfigured
	}
	return &Service{gitExecutor: dependencies.GitExecutor, repositoryManager: dependencies.RepositoryManager}, nil
}

// Sync fetches the remote and either pulls the default branch or rebases the
// current branch onto it. The default branch is master when the remote still
// serves one and main otherwise. A conflicted rebase is aborted and surfaced
// as a RebaseConflictError.
func (service *Service) Sync(executionContext context.Context, options Options) (Result, error) {
	trimmedRepositoryPath := strings.TrimSpace(options.RepositoryPath)
	if len(trimmedRepositoryPath) == 0 {
		return Result{}, ErrRepositoryPathRequired
	}

	remoteName := strings.TrimSpace(options.RemoteName)
	if len(remoteName) == 0 {
		remoteName = shared.OriginRemoteNameConstant
	}

	masterListed, probeError := service.repositoryManager.RemoteBranchExists(executionContext, trimmedRepositoryPath, remoteName, shared.LegacyDefaultBranchNameConstant)
	if probeError != nil {
		return Result{}, fmt.Errorf(defaultBranchProbeFailureTemplateConstant, remoteName, probeError)
	}
	defaultBranch := shared.DefaultBranchNameConstant
	if masterListed {
		defaultBranch = shared.LegacyDefaultBranchNameConstant
	}

	_, fetchError := service.gitExecutor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:            []string{gitFetchSubcommandConstant, remoteName},
		WorkingDirectory:     trimmedRepositoryPath,
		EnvironmentVariables: map[string]string{gitTerminalPromptEnvironmentNameConstant: gitTerminalPromptEnvironmentDisableConstant},
	})
	if fetchError != nil {
		return Result{}, fmt.Errorf(fetchFailureTemplateConstant, remoteName, fetchError)
	}

	currentBranch, branchError := service.repositoryManager.GetCurrentBranch(executionContext, trimmedRepositoryPath)
	if branchError != nil {
		return Result{}, fmt.Errorf(currentBranchFailureTemplateConstant, branchError)
	}

	result := Result{
		RepositoryPath: trimmedRepositoryPath,
		RemoteName:     remoteName,
		DefaultBranch:  defaultBranch,
		CurrentBranch:  currentBranch,
	}

	if currentBranch == defaultBranch {
		_, pullError := service.gitExecutor.ExecuteGit(executionContext, execshell.CommandDetails{
			Arguments:            []string{gitPullSubcommandConstant, remoteName, defaultBranch},
			WorkingDirectory:     trimmedRepositoryPath,
			EnvironmentVariables: map[string]string{gitTerminalPromptEnvironmentNameConstant: gitTerminalPromptEnvironmentDisableConstant},
		})
		if pullError != nil {
			return Result{}, fmt.Errorf(pullFailureTemplateConstant, remoteName, defaultBranch, pullError)
		}
		return result, nil
	}

	rebaseTarget := remoteName + remoteBranchSeparatorConstant + defaultBranch
	_, rebaseError := service.gitExecutor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitRebaseSubcommandConstant, rebaseTarget},
		WorkingDirectory: trimmedRepositoryPath,
	})
	if rebaseError != nil {
		_, _ = service.gitExecutor.ExecuteGit(executionContext, execshell.CommandDetails{
			Arguments:        []string{gitRebaseSubcommandConstant, gitRebaseAbortFlagConstant},
			WorkingDirectory: trimmedRepositoryPath,
		})
		return Result{}, RebaseConflictError{RemoteName: remoteName, DefaultBranch: defaultBranch, Cause: rebaseError}
	}

	result.Rebased = true
	return result, nil
}
