package releases

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/temirov/grit/internal/execshell"
	"github.com/temirov/grit/internal/githubcli"
	"github.com/temirov/grit/internal/shared"
	"github.com/temirov/grit/internal/toolcheck"
)

const (
	repositoryPathRequiredMessageConstant       = "repository path must be provided"
	versionRequiredMessageConstant              = "release version must be provided"
	gitExecutorMissingMessageConstant           = "git executor not configured"
	hostingInspectorMissingMessageConstant      = "hosting inspector not configured"
	releasePublisherMissingMessageConstant      = "release publisher not configured"
	notesBuilderMissingMessageConstant          = "notes builder not configured"
	tagCreationFailureTemplateConstant          = "failed to create tag %q: %w"
	tagPushFailureTemplateConstant              = "failed to push tag %q to remote %q: %w"
	hostingInspectionFailureTemplateConstant    = "failed to inspect GitHub CLI: %w"
	notesBuildFailureTemplateConstant           = "failed to build release notes: %w"
	releasePublicationFailureTemplateConstant   = "failed to publish GitHub release %q: %w"
	gitTagSubcommandConstant                    = "tag"
	gitTagAnnotateFlagConstant                  = "-a"
	gitTagMessageFlagConstant                   = "-m"
	gitPushSubcommandConstant                   = "push"
	gitTerminalPromptEnvironmentNameConstant    = "GIT_TERMINAL_PROMPT"
	gitTerminalPromptEnvironmentDisableConstant = "0"
	tagNamePrefixConstant                       = "v"
	defaultMessageTemplateConstant              = "Release %s"
	skipReasonCLIUnavailableConstant            = "GitHub CLI not found in PATH"
	skipReasonCLIUnauthenticatedConstant        = "GitHub CLI is not authenticated (run 'gh auth login')"
)

// ErrRepositoryPathRequired indicates the repository path option was empty.
var ErrRepositoryPathRequired = errors.New(repositoryPathRequiredMessageConstant)

// ErrVersionRequired indicates the version option was empty.
var ErrVersionRequired = errors.New(versionRequiredMessageConstant)

// ErrGitExecutorNotConfigured indicates the git executor dependency was missing.
var ErrGitExecutorNotConfigured = errors.New(gitExecutorMissingMessageConstant)

// ErrHostingInspectorNotConfigured indicates the hosting inspector dependency was missing.
var ErrHostingInspectorNotConfigured = errors.New(hostingInspectorMissingMessageConstant)

// ErrReleasePublisherNotConfigured indicates the release publisher dependency was missing.
var ErrReleasePublisherNotConfigured = errors.New(releasePublisherMissingMessageConstant)

// ErrNotesBuilderNotConfigured indicates the notes builder dependency was missing.
var ErrNotesBuilderNotConfigured = errors.New(notesBuilderMissingMessageConstant)

// HostingInspector reports whether the GitHub CLI can publish releases.
type HostingInspector interface {
	InspectGitHubCLI(executionContext context.Context) (toolcheck.GitHubCLIState, error)
}

// ReleasePublisher publishes hosted releases through the GitHub CLI.
type ReleasePublisher interface {
	CreateRelease(executionContext context.Context, options githubcli.ReleaseCreationOptions) (string, error)
}

// NotesBuilder assembles release notes from repository history.
type NotesBuilder interface {
	BuildNotes(executionContext context.Context, repositoryPath string, fallbackNotes string) (string, error)
}

// ServiceDependencies enumerates the collaborators required by Service.
type ServiceDependencies struct {
	GitExecutor      shared.GitExecutor
	HostingInspector HostingInspector
	ReleasePublisher ReleasePublisher
	NotesBuilder     NotesBuilder
}

// Options configures a single release request.
type Options struct {
	RepositoryPath string
	Version        string
	Message        string
	RemoteName     string
	DryRun         bool
}

// Result captures the observable outcomes of a release.
type Result struct {
	RepositoryPath string
	TagName        string
	Message        string
	ReleaseURL     string
	Published      bool
	SkipReason     string
}

// Service tags releases, pushes the tags, and publishes them on GitHub.
type Service struct {
	gitExecutor      shared.GitExecutor
	hostingInspector HostingInspector
	releasePublisher ReleasePublisher
	notesBuilder     NotesBuilder
}

// NewService validates the dependencies and constructs a Service.
func NewService(dependencies ServiceDependencies) (*Service, error) {
	if dependencies.GitExecutor == nil {
		return nil, ErrGitExecutorNotConfigured
	}
	if dependencies.HostingInspector == nil {
		return nil, ErrHostingInspectorNotConfigured
	}
	if dependencies.ReleasePublisher == nil {
		return nil, ErrReleasePublisherNotConfigured
	}
	if dependencies.NotesBuilder == nil {
		return nil, ErrNotesBuilderNotConfigured
	}
	return &Service{
		gitExecutor:      dependencies.GitExecutor,
		hostingInspector: dependencies.HostingInspector,
		releasePublisher: dependencies.ReleasePublisher,
		notesBuilder:     dependencies.NotesBuilder,
	}, nil
}

// Release creates an annotated tag, pushes it, and publishes a GitHub release
// when the GitHub CLI is authenticated. Dry runs resolve the tag name and
// message without executing any commands.
func (service *Service) Release(executionContext context.Context, options Options) (Result, error) {
	trimmedRepositoryPath := strings.TrimSpace(options.RepositoryPath)
	if len(trimmedRepositoryPath) == 0 {
		return Result{}, ErrRepositoryPathRequired
	}

	trimmedVersion := strings.TrimSpace(options.Version)
	if len(trimmedVersion) == 0 {
		return Result{}, ErrVersionRequired
	}

	tagName := normalizeTagName(trimmedVersion)
	tagMessage := strings.TrimSpace(options.Message)
	if len(tagMessage) == 0 {
		tagMessage = fmt.Sprintf(defaultMessageTemplateConstant, tagName)
	}

	remoteName := strings.TrimSpace(options.RemoteName)
	if len(remoteName) == 0 {
		remoteName = shared.OriginRemoteNameConstant
	}

	result := Result{RepositoryPath: trimmedRepositoryPath, TagName: tagName, Message: tagMessage}
	if options.DryRun {
		return result, nil
	}

	// Notes must be resolved before the tag exists; afterwards the new tag is
	// the latest one and the history range collapses to nothing.
	releaseNotes, notesError := service.notesBuilder.BuildNotes(executionContext, trimmedRepositoryPath, tagMessage)
	if notesError != nil {
		return Result{}, fmt.Errorf(notesBuildFailureTemplateConstant, notesError)
	}

	_, tagError := service.gitExecutor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitTagSubcommandConstant, gitTagAnnotateFlagConstant, tagName, gitTagMessageFlagConstant, tagMessage},
		WorkingDirectory: trimmedRepositoryPath,
	})
	if tagError != nil {
		return Result{}, fmt.Errorf(tagCreationFailureTemplateConstant, tagName, tagError)
	}

	_, pushError := service.gitExecutor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:            []string{gitPushSubcommandConstant, remoteName, tagName},
		WorkingDirectory:     trimmedRepositoryPath,
		EnvironmentVariables: map[string]string{gitTerminalPromptEnvironmentNameConstant: gitTerminalPromptEnvironmentDisableConstant},
	})
	if pushError != nil {
		return Result{}, fmt.Errorf(tagPushFailureTemplateConstant, tagName, remoteName, pushError)
	}

	hostingState, inspectionError := service.hostingInspector.InspectGitHubCLI(executionContext)
	if inspectionError != nil {
		return Result{}, fmt.Errorf(hostingInspectionFailureTemplateConstant, inspectionError)
	}
	if !hostingState.Available() {
		result.SkipReason = skipReasonCLIUnavailableConstant
		return result, nil
	}
	if !hostingState.Authenticated() {
		result.SkipReason = skipReasonCLIUnauthenticatedConstant
		return result, nil
	}

	releaseURL, publicationError := service.releasePublisher.CreateRelease(executionContext, githubcli.ReleaseCreationOptions{
		RepositoryPath: trimmedRepositoryPath,
		TagName:        tagName,
		Title:          tagName,
		Notes:          releaseNotes,
	})
	if publicationError != nil {
		return Result{}, fmt.Errorf(releasePublicationFailureTemplateConstant, tagName, publicationError)
	}

	result.ReleaseURL = releaseURL
	result.Published = true
	return result, nil
}

func normalizeTagName(version string) string {
	if strings.HasPrefix(version, tagNamePrefixConstant) {
		return version
	}
	return tagNamePrefixConstant + version
}
