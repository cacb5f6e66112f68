package pullrequest

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/temirov/grit/internal/githubcli"
	"github.com/temirov/grit/internal/shared"
	"github.com/temirov/grit/internal/toolcheck"
)

const (
	repositoryPathRequiredMessageConstant    = "repository path must be provided"
	repositoryManagerMissingMessageConstant  = "repository manager not configured"
	hostingInspectorMissingMessageConstant   = "hosting inspector not configured"
	creatorMissingMessageConstant            = "pull request creator not configured"
	cliUnavailableMessageConstant            = "GitHub CLI not found in PATH; install gh to open pull requests"
	cliUnauthenticatedMessageConstant        = "GitHub CLI is not authenticated; run 'gh auth login' and retry"
	hostingInspectionFailureTemplateConstant = "failed to inspect GitHub CLI: %w"
	branchResolutionFailureTemplateConstant  = "failed to resolve the current branch: %w"
	branchPushFailureTemplateConstant        = "failed to push branch %q to remote %q: %w"
	creationFailureTemplateConstant          = "failed to create pull request for branch %q: %w"
	defaultTitleTemplateConstant             = "Pull request for %s"
	defaultBodyTemplateConstant              = "Changes made in %s"
)

// ErrRepositoryPathRequired indicates the repository path option was empty.
var ErrRepositoryPathRequired = errors.New(repositoryPathRequiredMessageConstant)

// ErrRepositoryManagerNotConfigured indicates the repository manager dependency was missing.
var ErrRepositoryManagerNotConfigured = errors.New(repositoryManagerMissingMessageConstant)

// ErrHostingInspectorNotConfigured indicates the hosting inspector dependency was missing.
var ErrHostingInspectorNotConfigured = errors.New(hostingInspectorMissingMessageConstant)

// ErrPullRequestCreatorNotConfigured indicates the pull request creator dependency was missing.
var ErrPullRequestCreatorNotConfigured = errors.New(creatorMissingMessageConstant)

// ErrGitHubCLIUnavailable indicates gh is required but absent from the search path.
var ErrGitHubCLIUnavailable = errors.New(cliUnavailableMessageConstant)

// ErrGitHubCLIUnauthenticated indicates gh is installed but holds no usable session.
var ErrGitHubCLIUnauthenticated = errors.New(cliUnauthenticatedMessageConstant)

// HostingInspector reports whether the GitHub CLI can open pull requests.
type HostingInspector interface {
	InspectGitHubCLI(executionContext context.Context) (toolcheck.GitHubCLIState, error)
}

// PullRequestCreator opens pull requests through the GitHub CLI.
type PullRequestCreator interface {
	CreatePullRequest(executionContext context.Context, options githubcli.PullRequestCreationOptions) (string, error)
}

// ServiceDependencies enumerates the collaborators required by Service.
type ServiceDependencies struct {
	RepositoryManager  shared.GitRepositoryManager
	HostingInspector   HostingInspector
	PullRequestCreator PullRequestCreator
}

// Options configures a single pull request submission.
type Options struct {
	RepositoryPath string
	Title          string
	Body           string
	RemoteName     string
}

// Result captures the observable outcomes of a pull request submission.
type Result struct {
	RepositoryPath     string
	BranchName         string
	Title              string
	Body               string
	PullRequestURL     string
	UpstreamConfigured bool
}

// Service pushes the current branch and opens a pull request for it.
type Service struct {
	repositoryManager  shared.GitRepositoryManager
	hostingInspector   HostingInspector
	pullRequestCreator PullRequestCreator
}

// NewService validates the dependencies and constructs a Service.
func NewService(dependencies ServiceDependencies) (*Service, error) {
	if dependencies.RepositoryManager == nil {
		return nil, ErrRepositoryManagerNotConfigured
	}
	if dependencies.HostingInspector == nil {
		return nil, ErrHostingInspectorNotConfigured
	}
	if dependencies.PullRequestCreator == nil {
		return nil, ErrPullRequestCreatorNotConfigured
	}
	return &Service{
		repositoryManager:  dependencies.RepositoryManager,
		hostingInspector:   dependencies.HostingInspector,
		pullRequestCreator: dependencies.PullRequestCreator,
	}, nil
}

// Open pushes the current branch and creates a pull request with the provided
// title and body, deriving defaults from the branch name when they are blank.
// The GitHub CLI must be installed and authenticated; there is no degraded mode.
func (service *Service) Open(executionContext context.Context, options Options) (Result, error) {
	trimmedRepositoryPath := strings.TrimSpace(options.RepositoryPath)
	if len(trimmedRepositoryPath) == 0 {
		return Result{}, ErrRepositoryPathRequired
	}

	hostingState, inspectionError := service.hostingInspector.InspectGitHubCLI(executionContext)
	if inspectionError != nil {
		return Result{}, fmt.Errorf(hostingInspectionFailureTemplateConstant, inspectionError)
	}
	if !hostingState.Available() {
		return Result{}, ErrGitHubCLIUnavailable
	}
	if !hostingState.Authenticated() {
		return Result{}, ErrGitHubCLIUnauthenticated
	}

	branchName, branchError := service.repositoryManager.GetCurrentBranch(executionContext, trimmedRepositoryPath)
	if branchError != nil {
		return Result{}, fmt.Errorf(branchResolutionFailureTemplateConstant, branchError)
	}

	pullRequestTitle := strings.TrimSpace(options.Title)
	if len(pullRequestTitle) == 0 {
		pullRequestTitle = fmt.Sprintf(defaultTitleTemplateConstant, branchName)
	}
	pullRequestBody := strings.TrimSpace(options.Body)
	if len(pullRequestBody) == 0 {
		pullRequestBody = fmt.Sprintf(defaultBodyTemplateConstant, branchName)
	}

	remoteName := strings.TrimSpace(options.RemoteName)
	if len(remoteName) == 0 {
		remoteName = shared.OriginRemoteNameConstant
	}

	upstreamConfigured, pushError := service.repositoryManager.PushCurrentBranch(executionContext, trimmedRepositoryPath, remoteName)
	if pushError != nil {
		return Result{}, fmt.Errorf(branchPushFailureTemplateConstant, branchName, remoteName, pushError)
	}

	pullRequestURL, creationError := service.pullRequestCreator.CreatePullRequest(executionContext, githubcli.PullRequestCreationOptions{
		RepositoryPath: trimmedRepositoryPath,
		Title:          pullRequestTitle,
		Body:           pullRequestBody,
	})
	if creationError != nil {
		return Result{}, fmt.Errorf(creationFailureTemplateConstant, branchName, creationError)
	}

	return Result{
		RepositoryPath:     trimmedRepositoryPath,
		BranchName:         branchName,
		Title:              pullRequestTitle,
		Body:               pullRequestBody,
		PullRequestURL:     pullRequestURL,
		UpstreamConfigured: upstreamConfigured,
	}, nil
}
