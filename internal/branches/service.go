package branches

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
	branchLookupFailureTemplateConstant         = "failed to check for branch %q: %w"
	branchSwitchFailureTemplateConstant         = "failed to switch to branch %q: %w"
	branchCreationFailureTemplateConstant       = "failed to create branch %q: %w"
	branchPushFailureTemplateConstant           = "failed to push branch %q to remote %q: %w"
	gitCheckoutSubcommandConstant               = "checkout"
	gitCheckoutNewBranchFlagConstant            = "-b"
	gitPushSubcommandConstant                   = "push"
	gitPushSetUpstreamFlagConstant              = "--set-upstream"
	gitTerminalPromptEnvironmentNameConstant    = "GIT_TERMINAL_PROMPT"
	gitTerminalPromptEnvironmentDisableConstant = "0"
)

// ErrRepositoryPathRequired indicates the repository path option was empty.
var ErrRepositoryPathRequired = errors.New(repositoryPathRequiredMessageConstant)

// ErrGitExecutorNotConfigured indicates the git executor dependency was missing.
var ErrGitExecutorNotConfigured = errors.New(gitExecutorMissingMessageConstant)

// ErrRepositoryManagerNotConfigured indicates the repository manager dependency was missing.
var ErrRepositoryManagerNotConfigured = errors.New(repositoryManagerMissingMessageConstant)

// Dependencies enumerates external collaborators required for branch switching.
type Dependencies struct {
	GitExecutor       shared.GitExecutor
	RepositoryManager shared.GitRepositoryManager
}

// Options configures a branch switch operation.
type Options struct {
	RepositoryPath string
	BranchName     string
	RemoteName     string
}

// Result captures the observable outcomes of a branch switch.
type Result struct {
	RepositoryPath string
	BranchName     string
	Created        bool
}

// Service switches branches, creating missing ones and pushing them upstream.
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

// Switch checks out the named branch, creating it when it does not exist
// locally, and pushes it to the remote with upstream tracking.
func (service *Service) Switch(executionContext context.Context, options Options) (Result, error) {
	trimmedRepositoryPath := strings.TrimSpace(options.RepositoryPath)
	if len(trimmedRepositoryPath) == 0 {
		return Result{}, ErrRepositoryPathRequired
	}

	branchName, branchNameError := shared.NewBranchName(options.BranchName)
	if branchNameError != nil {
		return Result{}, branchNameError
	}

	remoteName := strings.TrimSpace(options.RemoteName)
	if len(remoteName) == 0 {
		remoteName = shared.OriginRemoteNameConstant
	}

	branchExists, lookupError := service.repositoryManager.LocalBranchExists(executionContext, trimmedRepositoryPath, branchName.String())
	if lookupError != nil {
		return Result{}, fmt.Errorf(branchLookupFailureTemplateConstant, branchName.String(), lookupError)
	}

	checkoutArguments := []string{gitCheckoutSubcommandConstant, branchName.String()}
	if !branchExists {
		checkoutArguments = []string{gitCheckoutSubcommandConstant, gitCheckoutNewBranchFlagConstant, branchName.String()}
	}
	_, checkoutError := service.gitExecutor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        checkoutArguments,
		WorkingDirectory: trimmedRepositoryPath,
	})
	if checkoutError != nil {
		failureTemplate := branchSwitchFailureTemplateConstant
		if !branchExists {
			failureTemplate = branchCreationFailureTemplateConstant
		}
		return Result{}, fmt.Errorf(failureTemplate, branchName.String(), checkoutError)
	}

	_, pushError := service.gitExecutor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:            []string{gitPushSubcommandConstant, gitPushSetUpstreamFlagConstant, remoteName, branchName.String()},
		WorkingDirectory:     trimmedRepositoryPath,
		EnvironmentVariables: map[string]string{gitTerminalPromptEnvironmentNameConstant: gitTerminalPromptEnvironmentDisableConstant},
	})
	if pushError != nil {
		return Result{}, fmt.Errorf(branchPushFailureTemplateConstant, branchName.String(), remoteName, pushError)
	}

	return Result{
		RepositoryPath: trimmedRepositoryPath,
		BranchName:     branchName.String(),
		Created:        !branchExists,
	}, nil
}
