package githubcli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/temirov/grit/internal/execshell"
)

const (
	authSubcommandConstant               = "auth"
	statusSubcommandConstant             = "status"
	repoSubcommandConstant               = "repo"
	pullRequestSubcommandConstant        = "pr"
	releaseSubcommandConstant            = "release"
	createSubcommandConstant             = "create"
	sourceFlagConstant                   = "--source"
	remoteFlagConstant                   = "--remote"
	pushFlagConstant                     = "--push"
	titleFlagConstant                    = "--title"
	bodyFlagConstant                     = "--body"
	notesFlagConstant                    = "--notes"
	originRemoteAssignmentConstant       = "origin"
	visibilityFlagPrefixConstant         = "--"
	flagAssignmentSeparatorConstant      = "="
	currentDirectorySourceConstant       = "."
	repositoryNameFieldConstant          = "repository name"
	repositoryPathFieldConstant          = "repository path"
	visibilityFieldConstant              = "visibility"
	titleFieldConstant                   = "title"
	tagNameFieldConstant                 = "tag name"
	requiredValueMessageConstant         = "value required"
	unknownVisibilityTemplateConstant    = "unsupported visibility %q (expected private, public, or internal)"
	executorNotConfiguredMessageConstant = "github cli executor not configured"

	operationErrorMessageTemplateConstant   = "%s operation failed"
	operationErrorWithCauseTemplateConstant = "%s operation failed: %s"
	invalidInputErrorTemplateConstant       = "%s: %s"

	checkAuthenticationOperationNameConstant = OperationName("CheckAuthentication")
	createRepositoryOperationNameConstant    = OperationName("CreateRepository")
	createPullRequestOperationNameConstant   = OperationName("CreatePullRequest")
	createReleaseOperationNameConstant       = OperationName("CreateRelease")
)

// OperationName describes a named GitHub CLI workflow supported by the client.
type OperationName string

// RepositoryVisibility enumerates the visibility levels gh accepts for new repositories.
type RepositoryVisibility string

// Supported repository visibility levels.
const (
	RepositoryVisibilityPrivate  RepositoryVisibility = RepositoryVisibility("private")
	RepositoryVisibilityPublic   RepositoryVisibility = RepositoryVisibility("public")
	RepositoryVisibilityInternal RepositoryVisibility = RepositoryVisibility("internal")
)

// ParseRepositoryVisibility normalizes a visibility candidate supplied by flags or configuration.
func ParseRepositoryVisibility(candidate string) (RepositoryVisibility, error) {
	normalizedCandidate := strings.ToLower(strings.TrimSpace(candidate))
	switch RepositoryVisibility(normalizedCandidate) {
	case RepositoryVisibilityPrivate, RepositoryVisibilityPublic, RepositoryVisibilityInternal:
		return RepositoryVisibility(normalizedCandidate), nil
	default:
		return RepositoryVisibility(""), fmt.Errorf(unknownVisibilityTemplateConstant, candidate)
	}
}

// flagArgument renders the visibility as the boolean flag gh repo create expects.
func (visibility RepositoryVisibility) flagArgument() string {
	return visibilityFlagPrefixConstant + string(visibility)
}

// RepositoryCreationOptions configures CreateRepository operations.
type RepositoryCreationOptions struct {
	Name           string
	Visibility     RepositoryVisibility
	RepositoryPath string
}

// PullRequestCreationOptions configures CreatePullRequest operations.
type PullRequestCreationOptions struct {
	RepositoryPath string
	Title          string
	Body           string
}

// ReleaseCreationOptions configures CreateRelease operations.
type ReleaseCreationOptions struct {
	RepositoryPath string
	TagName        string
	Title          string
	Notes          string
}

// GitHubCommandExecutor is the minimal interface required from execshell.ShellExecutor.
type GitHubCommandExecutor interface {
	ExecuteGitHubCLI(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// Client coordinates GitHub CLI invocations through execshell.
type Client struct {
	executor GitHubCommandExecutor
}

// ErrExecutorNotConfigured indicates the client was constructed without an executor.
var ErrExecutorNotConfigured = errors.New(executorNotConfiguredMessageConstant)

// InvalidInputError surfaces validation issues for operation inputs.
type InvalidInputError struct {
	FieldName string
	Message   string
}

// Error describes the invalid input.
func (inputError InvalidInputError) Error() string {
	return fmt.Sprintf(invalidInputErrorTemplateConstant, inputError.FieldName, inputError.Message)
}

// OperationError wraps execution issues for GitHub CLI operations.
type OperationError struct {
	Operation OperationName
	Cause     error
}

// Error describes the operation failure.
func (operationError OperationError) Error() string {
	if operationError.Cause == nil {
		return fmt.Sprintf(operationErrorMessageTemplateConstant, operationError.Operation)
	}
	return fmt.Sprintf(operationErrorWithCauseTemplateConstant, operationError.Operation, operationError.Cause)
}

// Unwrap exposes the underlying cause.
func (operationError OperationError) Unwrap() error {
	return operationError.Cause
}

// NewClient constructs a GitHub CLI client.
func NewClient(executor GitHubCommandExecutor) (*Client, error) {
	if executor == nil {
		return nil, ErrExecutorNotConfigured
	}
	return &Client{executor: executor}, nil
}

// CheckAuthentication reports whether gh holds an authenticated session. A non-zero
// auth status exit is an unauthenticated session, not an error.
func (client *Client) CheckAuthentication(executionContext context.Context) (bool, error) {
	commandDetails := execshell.CommandDetails{
		Arguments: []string{authSubcommandConstant, statusSubcommandConstant},
	}

	_, executionError := client.executor.ExecuteGitHubCLI(executionContext, commandDetails)
	if executionError != nil {
		var commandFailure execshell.CommandFailedError
		if errors.As(executionError, &commandFailure) {
			return false, nil
		}
		return false, OperationError{Operation: checkAuthenticationOperationNameConstant, Cause: executionError}
	}
	return true, nil
}

// CreateRepository creates a remote repository from the local one and pushes it,
// wiring the origin remote in a single gh invocation.
func (client *Client) CreateRepository(executionContext context.Context, options RepositoryCreationOptions) error {
	repositoryName := strings.TrimSpace(options.Name)
	if len(repositoryName) == 0 {
		return InvalidInputError{FieldName: repositoryNameFieldConstant, Message: requiredValueMessageConstant}
	}
	repositoryPath := strings.TrimSpace(options.RepositoryPath)
	if len(repositoryPath) == 0 {
		return InvalidInputError{FieldName: repositoryPathFieldConstant, Message: requiredValueMessageConstant}
	}
	if len(options.Visibility) == 0 {
		return InvalidInputError{FieldName: visibilityFieldConstant, Message: requiredValueMessageConstant}
	}

	commandDetails := execshell.CommandDetails{
		Arguments: []string{
			repoSubcommandConstant,
			createSubcommandConstant,
			repositoryName,
			options.Visibility.flagArgument(),
			sourceFlagConstant + flagAssignmentSeparatorConstant + currentDirectorySourceConstant,
			remoteFlagConstant + flagAssignmentSeparatorConstant + originRemoteAssignmentConstant,
			pushFlagConstant,
		},
		WorkingDirectory: repositoryPath,
	}

	if _, executionError := client.executor.ExecuteGitHubCLI(executionContext, commandDetails); executionError != nil {
		return OperationError{Operation: createRepositoryOperationNameConstant, Cause: executionError}
	}
	return nil
}

// CreatePullRequest opens a pull request for the current branch and returns the URL gh prints.
func (client *Client) CreatePullRequest(executionContext context.Context, options PullRequestCreationOptions) (string, error) {
	repositoryPath := strings.TrimSpace(options.RepositoryPath)
	if len(repositoryPath) == 0 {
		return "", InvalidInputError{FieldName: repositoryPathFieldConstant, Message: requiredValueMessageConstant}
	}
	pullRequestTitle := strings.TrimSpace(options.Title)
	if len(pullRequestTitle) == 0 {
		return "", InvalidInputError{FieldName: titleFieldConstant, Message: requiredValueMessageConstant}
	}

	commandDetails := execshell.CommandDetails{
		Arguments: []string{
			pullRequestSubcommandConstant,
			createSubcommandConstant,
			titleFlagConstant,
			pullRequestTitle,
			bodyFlagConstant,
			options.Body,
		},
		WorkingDirectory: repositoryPath,
	}

	executionResult, executionError := client.executor.ExecuteGitHubCLI(executionContext, commandDetails)
	if executionError != nil {
		return "", OperationError{Operation: createPullRequestOperationNameConstant, Cause: executionError}
	}
	return strings.TrimSpace(executionResult.StandardOutput), nil
}

// CreateRelease publishes a release for an existing tag and returns the URL gh prints.
func (client *Client) CreateRelease(executionContext context.Context, options ReleaseCreationOptions) (string, error) {
	repositoryPath := strings.TrimSpace(options.RepositoryPath)
	if len(repositoryPath) == 0 {
		return "", InvalidInputError{FieldName: repositoryPathFieldConstant, Message: requiredValueMessageConstant}
	}
	tagName := strings.TrimSpace(options.TagName)
	if len(tagName) == 0 {
		return "", InvalidInputError{FieldName: tagNameFieldConstant, Message: requiredValueMessageConstant}
	}
	releaseTitle := strings.TrimSpace(options.Title)
	if len(releaseTitle) == 0 {
		releaseTitle = tagName
	}
	releaseNotes := options.Notes
	if len(strings.TrimSpace(releaseNotes)) == 0 {
		releaseNotes = releaseTitle
	}

	commandDetails := execshell.CommandDetails{
		Arguments: []string{
			releaseSubcommandConstant,
			createSubcommandConstant,
			tagName,
			titleFlagConstant,
			releaseTitle,
			notesFlagConstant,
			releaseNotes,
		},
		WorkingDirectory: repositoryPath,
	}

	executionResult, executionError := client.executor.ExecuteGitHubCLI(executionContext, commandDetails)
	if executionError != nil {
		return "", OperationError{Operation: createReleaseOperationNameConstant, Cause: executionError}
	}
	return strings.TrimSpace(executionResult.StandardOutput), nil
}
