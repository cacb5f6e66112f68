package save

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/temirov/grit/internal/execshell"
	"github.com/temirov/grit/internal/shared"
)

const (
	repositoryPathRequiredMessageConstant   = "repository path must be provided"
	gitExecutorMissingMessageConstant       = "git executor not configured"
	repositoryManagerMissingMessageConstant = "repository manager not configured"
	clockMissingMessageConstant             = "clock not configured"
	worktreeCheckFailureTemplateConstant    = "failed to inspect working tree: %w"
	stageFailureTemplateConstant            = "failed to stage changes: %w"
	commitFailureTemplateConstant           = "failed to commit changes: %w"
	pushFailureTemplateConstant             = "failed to push changes: %w"
	gitAddSubcommandConstant                = "add"
	gitAddAllFlagConstant                   = "--all"
	gitCommitSubcommandConstant             = "commit"
	gitCommitMessageFlagConstant            = "-m"
	commitTimestampLayoutConstant           = "2006-01-02 15:04:05"
	defaultMessageTemplateConstant          = "Update - %s"
)

// ErrRepositoryPathRequired indicates the repository path option was empty.
var ErrRepositoryPathRequired = errors.New(repositoryPathRequiredMessageConstant)

// ErrGitExecutorNotConfigured indicates the git executor dependency was missing.
var ErrGitExecutorNotConfigured = errors.New(gitExecutorMissingMessageConstant)

// ErrRepositoryManagerNotConfigured indicates the repository manager dependency was missing.
var ErrRepositoryManagerNotConfigured = errors.New(repositoryManagerMissingMessageConstant)

// ErrClockNotConfigured indicates the clock dependency was missing.
var ErrClockNotConfigured = errors.New(clockMissingMessageConstant)

// ServiceDependencies enumerates the collaborators required by Service.
type ServiceDependencies struct {
	GitExecutor       shared.GitExecutor
	RepositoryManager shared.GitRepositoryManager
	Clock             shared.Clock
}

// Options configures a single save request.
type Options struct {
	RepositoryPath string
	Message        string
	RemoteName     string
}

// Result captures the observable outcomes of a save.
type Result struct {
	RepositoryPath     string
	CommitMessage      string
	CommitCreated      bool
	UpstreamConfigured bool
}

// Service stages, commits, and pushes working tree changes.
type Service struct {
	gitExecutor       shared.GitExecutor
	repositoryManager shared.GitRepositoryManager
	clock             shared.Clock
}

// NewService validates the dependencies and constructs a Service.
func NewService(dependencies ServiceDependencies) (*Service, error) {
	if dependencies.GitExecutor == nil {
		return nil, ErrGitExecutorNotConfigured
	}
	if dependencies.RepositoryManager == nil {
		return nil, ErrRepositoryManagerNotConfigured
	}
	if dependencies.Clock == nil {
		return nil, ErrClockNotConfigured
	}
	return &Service{
		gitExecutor:       dependencies.GitExecutor,
		repositoryManager: dependencies.RepositoryManager,
		clock:             dependencies.Clock,
	}, nil
}

// Save commits every pending change and pushes the current branch. A clean
// working tree short-circuits without creating a commit.
func (service *Service) Save(executionContext context.Context, options Options) (Result, error) {
	trimmedRepositoryPath := strings.TrimSpace(options.RepositoryPath)
	if len(trimmedRepositoryPath) == 0 {
		return Result{}, ErrRepositoryPathRequired
	}

	worktreeClean, worktreeError := service.repositoryManager.CheckCleanWorktree(executionContext, trimmedRepositoryPath)
	if worktreeError != nil {
		return Result{}, fmt.Errorf(worktreeCheckFailureTemplateConstant, worktreeError)
	}
	if worktreeClean {
		return Result{RepositoryPath: trimmedRepositoryPath}, nil
	}

	commitMessage := strings.TrimSpace(options.Message)
	if len(commitMessage) == 0 {
		commitMessage = fmt.Sprintf(defaultMessageTemplateConstant, service.clock.Now().Format(commitTimestampLayoutConstant))
	}

	remoteName := strings.TrimSpace(options.RemoteName)
	if len(remoteName) == 0 {
		remoteName = shared.OriginRemoteNameConstant
	}

	_, stageError := service.gitExecutor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitAddSubcommandConstant, gitAddAllFlagConstant},
		WorkingDirectory: trimmedRepositoryPath,
	})
	if stageError != nil {
		return Result{}, fmt.Errorf(stageFailureTemplateConstant, stageError)
	}

	_, commitError := service.gitExecutor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitCommitSubcommandConstant, gitCommitMessageFlagConstant, commitMessage},
		WorkingDirectory: trimmedRepositoryPath,
	})
	if commitError != nil {
		return Result{}, fmt.Errorf(commitFailureTemplateConstant, commitError)
	}

	upstreamConfigured, pushError := service.repositoryManager.PushCurrentBranch(executionContext, trimmedRepositoryPath, remoteName)
	if pushError != nil {
		return Result{}, fmt.Errorf(pushFailureTemplateConstant, pushError)
	}

	return Result{
		RepositoryPath:     trimmedRepositoryPath,
		CommitMessage:      commitMessage,
		CommitCreated:      true,
		UpstreamConfigured: upstreamConfigured,
	}, nil
}
