package clone

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/temirov/grit/internal/execshell"
	"github.com/temirov/grit/internal/gitrepo"
	"github.com/temirov/grit/internal/shared"
	pathutils "github.com/temirov/grit/internal/utils/path"
)

const (
	workingDirectoryRequiredMessageConstant     = "working directory must be provided"
	remoteURLRequiredMessageConstant            = "repository url must be provided"
	gitExecutorMissingMessageConstant           = "git executor not configured"
	directoryDerivationFailureTemplateConstant  = "failed to derive a directory name from %q: %w"
	cloneFailureTemplateConstant                = "failed to clone %q: %w"
	fetchFailureTemplateConstant                = "failed to fetch remotes: %w"
	configurationFailureTemplateConstant        = "failed to set %s: %w"
	branchListFailureTemplateConstant           = "failed to list branches: %w"
	gitCloneSubcommandConstant                  = "clone"
	gitCloneDepthFlagConstant                   = "--depth"
	gitCloneDepthValueConstant                  = "1"
	gitFetchSubcommandConstant                  = "fetch"
	gitFetchAllFlagConstant                     = "--all"
	gitConfigSubcommandConstant                 = "config"
	pullRebaseConfigurationKeyConstant          = "pull.rebase"
	fetchPruneConfigurationKeyConstant          = "fetch.prune"
	configurationEnabledValueConstant           = "true"
	gitBranchSubcommandConstant                 = "branch"
	gitBranchAllFlagConstant                    = "-a"
	gitTerminalPromptEnvironmentNameConstant    = "GIT_TERMINAL_PROMPT"
	gitTerminalPromptEnvironmentDisableConstant = "0"
)

// ErrWorkingDirectoryRequired indicates the working directory option was empty.
var ErrWorkingDirectoryRequired = errors.New(workingDirectoryRequiredMessageConstant)

// ErrRemoteURLRequired indicates the remote URL option was empty.
var ErrRemoteURLRequired = errors.New(remoteURLRequiredMessageConstant)

// ErrGitExecutorNotConfigured indicates the git executor dependency was missing.
var ErrGitExecutorNotConfigured = errors.New(gitExecutorMissingMessageConstant)

// ServiceDependencies enumerates the collaborators required by Service. A nil
// HomeExpander falls back to the current user's home directory.
type ServiceDependencies struct {
	GitExecutor  shared.GitExecutor
	HomeExpander *pathutils.HomeExpander
}

// Options configures a single clone request.
type Options struct {
	WorkingDirectory string
	RemoteURL        string
	TargetDirectory  string
}

// Result captures the observable outcomes of a clone.
type Result struct {
	RemoteURL     string
	DirectoryName string
	DirectoryPath string
	BranchList    string
}

// Service clones a repository shallowly and prepares it for day-to-day pulls.
type Service struct {
	gitExecutor  shared.GitExecutor
	homeExpander *pathutils.HomeExpander
}

// NewService validates the dependencies and constructs a Service.
func NewService(dependencies ServiceDependencies) (*Service, error) {
	if dependencies.GitExecutor == nil {
		return nil, ErrGitExecutorNotConfigured
	}
	homeExpander := dependencies.HomeExpander
	if homeExpander == nil {
		homeExpander = pathutils.NewHomeExpander()
	}
	return &Service{gitExecutor: dependencies.GitExecutor, homeExpander: homeExpander}, nil
}

// Clone performs a depth-1 clone into the target directory (derived from the
// URL when omitted, with ~ expanded), then fetches all remotes, enables rebase
// pulls and fetch pruning, and captures the full branch listing.
func (service *Service) Clone(executionContext context.Context, options Options) (Result, error) {
	trimmedWorkingDirectory := strings.TrimSpace(options.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return Result{}, ErrWorkingDirectoryRequired
	}

	trimmedRemoteURL := strings.TrimSpace(options.RemoteURL)
	if len(trimmedRemoteURL) == 0 {
		return Result{}, ErrRemoteURLRequired
	}

	targetDirectory := strings.TrimSpace(options.TargetDirectory)
	if len(targetDirectory) == 0 {
		derivedDirectory, derivationError := gitrepo.DeriveCloneDirectory(trimmedRemoteURL)
		if derivationError != nil {
			return Result{}, fmt.Errorf(directoryDerivationFailureTemplateConstant, trimmedRemoteURL, derivationError)
		}
		targetDirectory = derivedDirectory
	}
	targetDirectory = service.homeExpander.Expand(targetDirectory)

	clonedDirectoryPath := targetDirectory
	if !filepath.IsAbs(clonedDirectoryPath) {
		clonedDirectoryPath = filepath.Join(trimmedWorkingDirectory, clonedDirectoryPath)
	}

	networkEnvironment := map[string]string{gitTerminalPromptEnvironmentNameConstant: gitTerminalPromptEnvironmentDisableConstant}

	_, cloneError := service.gitExecutor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:            []string{gitCloneSubcommandConstant, gitCloneDepthFlagConstant, gitCloneDepthValueConstant, trimmedRemoteURL, targetDirectory},
		WorkingDirectory:     trimmedWorkingDirectory,
		EnvironmentVariables: networkEnvironment,
	})
	if cloneError != nil {
		return Result{}, fmt.Errorf(cloneFailureTemplateConstant, trimmedRemoteURL, cloneError)
	}

	_, fetchError := service.gitExecutor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:            []string{gitFetchSubcommandConstant, gitFetchAllFlagConstant},
		WorkingDirectory:     clonedDirectoryPath,
		EnvironmentVariables: networkEnvironment,
	})
	if fetchError != nil {
		return Result{}, fmt.Errorf(fetchFailureTemplateConstant, fetchError)
	}

	configurationEntries := []string{pullRebaseConfigurationKeyConstant, fetchPruneConfigurationKeyConstant}
	for _, configurationKey := range configurationEntries {
		_, configurationError := service.gitExecutor.ExecuteGit(executionContext, execshell.CommandDetails{
			Arguments:        []string{gitConfigSubcommandConstant, configurationKey, configurationEnabledValueConstant},
			WorkingDirectory: clonedDirectoryPath,
		})
		if configurationError != nil {
			return Result{}, fmt.Errorf(configurationFailureTemplateConstant, configurationKey, configurationError)
		}
	}

	branchListResult, branchListError := service.gitExecutor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitBranchSubcommandConstant, gitBranchAllFlagConstant},
		WorkingDirectory: clonedDirectoryPath,
	})
	if branchListError != nil {
		return Result{}, fmt.Errorf(branchListFailureTemplateConstant, branchListError)
	}

	return Result{
		RemoteURL:     trimmedRemoteURL,
		DirectoryName: targetDirectory,
		DirectoryPath: clonedDirectoryPath,
		BranchList:    branchListResult.StandardOutput,
	}, nil
}
