package repoinit

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/temirov/grit/internal/execshell"
	"github.com/temirov/grit/internal/githubcli"
	"github.com/temirov/grit/internal/shared"
	"github.com/temirov/grit/internal/toolcheck"
)

const (
	repositoryPathRequiredMessageConstant     = "repository path must be provided"
	gitExecutorMissingMessageConstant         = "git executor not configured"
	fileSystemMissingMessageConstant          = "filesystem not configured"
	hostingInspectorMissingMessageConstant    = "hosting inspector not configured"
	repositoryCreatorMissingMessageConstant   = "repository creator not configured"
	repositoryInitFailureTemplateConstant     = "failed to initialize repository at %q: %w"
	templateStatFailureTemplateConstant       = "failed to inspect %s: %w"
	templateWriteFailureTemplateConstant      = "failed to write %s: %w"
	stageFailureTemplateConstant              = "failed to stage repository contents: %w"
	commitFailureTemplateConstant             = "failed to create the initial commit: %w"
	hostingInspectionFailureTemplateConstant  = "failed to inspect GitHub CLI: %w"
	repositoryCreationFailureTemplateConstant = "failed to create GitHub repository %q: %w"
	gitInitSubcommandConstant                 = "init"
	gitAddSubcommandConstant                  = "add"
	gitCommitSubcommandConstant               = "commit"
	gitCommitMessageFlagConstant              = "-m"
	currentDirectoryPathspecConstant          = "."
	initialCommitMessageConstant              = "Initial commit"
	gitignoreFileNameConstant                 = ".gitignore"
	readmeFileNameConstant                    = "README.md"
	readmeTemplateConstant                    = "# %s\n"
	templateFilePermissionsConstant           = fs.FileMode(0o644)
	skipReasonCLIUnavailableConstant          = "GitHub CLI not found in PATH"
	skipReasonCLIUnauthenticatedConstant      = "GitHub CLI is not authenticated (run 'gh auth login')"
)

const gitignoreTemplateConstant = `# Logs
*.log

# OS artifacts
.DS_Store
Thumbs.db

# Editor state
.idea/
.vscode/
*.swp

# Build output
bin/
dist/
`

// ErrRepositoryPathRequired indicates the repository path option was empty.
var ErrRepositoryPathRequired = errors.New(repositoryPathRequiredMessageConstant)

// ErrGitExecutorNotConfigured indicates the git executor dependency was missing.
var ErrGitExecutorNotConfigured = errors.New(gitExecutorMissingMessageConstant)

// ErrFileSystemNotConfigured indicates the filesystem dependency was missing.
var ErrFileSystemNotConfigured = errors.New(fileSystemMissingMessageConstant)

// ErrHostingInspectorNotConfigured indicates the hosting inspector dependency was missing.
var ErrHostingInspectorNotConfigured = errors.New(hostingInspectorMissingMessageConstant)

// ErrRepositoryCreatorNotConfigured indicates the repository creator dependency was missing.
var ErrRepositoryCreatorNotConfigured = errors.New(repositoryCreatorMissingMessageConstant)

// HostingInspector reports whether the GitHub CLI can publish repositories.
type HostingInspector interface {
	InspectGitHubCLI(executionContext context.Context) (toolcheck.GitHubCLIState, error)
}

// RepositoryCreator publishes a local repository through the GitHub CLI.
type RepositoryCreator interface {
	CreateRepository(executionContext context.Context, options githubcli.RepositoryCreationOptions) error
}

// ServiceDependencies enumerates the collaborators required by Service.
type ServiceDependencies struct {
	GitExecutor       shared.GitExecutor
	FileSystem        shared.FileSystem
	HostingInspector  HostingInspector
	RepositoryCreator RepositoryCreator
}

// Options configures a single initialization request.
type Options struct {
	RepositoryPath string
	RepositoryName string
	Visibility     githubcli.RepositoryVisibility
}

// Result captures the observable outcomes of an initialization.
type Result struct {
	RepositoryPath   string
	RepositoryName   string
	GitIgnoreCreated bool
	ReadmeCreated    bool
	RemoteConfigured bool
	SkipReason       string
}

// Service initializes a local repository, seeds template files, records the
// initial commit, and publishes the repository to GitHub when the CLI allows.
type Service struct {
	gitExecutor       shared.GitExecutor
	fileSystem        shared.FileSystem
	hostingInspector  HostingInspector
	repositoryCreator RepositoryCreator
}

// NewService validates the dependencies and constructs a Service.
func NewService(dependencies ServiceDependencies) (*Service, error) {
	if dependencies.GitExecutor == nil {
		return nil, ErrGitExecutorNotConfigured
	}
	if dependencies.FileSystem == nil {
		return nil, ErrFileSystemNotConfigured
	}
	if dependencies.HostingInspector == nil {
		return nil, ErrHostingInspectorNotConfigured
	}
	if dependencies.RepositoryCreator == nil {
		return nil, ErrRepositoryCreatorNotConfigured
	}
	return &Service{
		gitExecutor:       dependencies.GitExecutor,
		fileSystem:        dependencies.FileSystem,
		hostingInspector:  dependencies.HostingInspector,
		repositoryCreator: dependencies.RepositoryCreator,
	}, nil
}

// Initialize creates the repository, writes the template .gitignore and README
// when absent, commits everything, and creates the GitHub repository when the
// CLI is authenticated. A missing or unauthenticated CLI degrades to a skip
// reason instead of failing.
func (service *Service) Initialize(executionContext context.Context, options Options) (Result, error) {
	trimmedRepositoryPath := strings.TrimSpace(options.RepositoryPath)
	if len(trimmedRepositoryPath) == 0 {
		return Result{}, ErrRepositoryPathRequired
	}

	repositoryName := strings.TrimSpace(options.RepositoryName)
	if len(repositoryName) == 0 {
		repositoryName = filepath.Base(trimmedRepositoryPath)
	}

	repositoryVisibility := options.Visibility
	if len(repositoryVisibility) == 0 {
		repositoryVisibility = githubcli.RepositoryVisibilityPrivate
	}

	result := Result{RepositoryPath: trimmedRepositoryPath, RepositoryName: repositoryName}

	_, initError := service.gitExecutor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitInitSubcommandConstant},
		WorkingDirectory: trimmedRepositoryPath,
	})
	if initError != nil {
		return Result{}, fmt.Errorf(repositoryInitFailureTemplateConstant, trimmedRepositoryPath, initError)
	}

	gitignoreCreated, gitignoreError := service.writeTemplateWhenAbsent(
		filepath.Join(trimmedRepositoryPath, gitignoreFileNameConstant),
		[]byte(gitignoreTemplateConstant),
	)
	if gitignoreError != nil {
		return Result{}, gitignoreError
	}
	result.GitIgnoreCreated = gitignoreCreated

	readmeCreated, readmeError := service.writeTemplateWhenAbsent(
		filepath.Join(trimmedRepositoryPath, readmeFileNameConstant),
		[]byte(fmt.Sprintf(readmeTemplateConstant, repositoryName)),
	)
	if readmeError != nil {
		return Result{}, readmeError
	}
	result.ReadmeCreated = readmeCreated

	_, stageError := service.gitExecutor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitAddSubcommandConstant, currentDirectoryPathspecConstant},
		WorkingDirectory: trimmedRepositoryPath,
	})
	if stageError != nil {
		return Result{}, fmt.Errorf(stageFailureTemplateConstant, stageError)
	}

	_, commitError := service.gitExecutor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitCommitSubcommandConstant, gitCommitMessageFlagConstant, initialCommitMessageConstant},
		WorkingDirectory: trimmedRepositoryPath,
	})
	if commitError != nil {
		return Result{}, fmt.Errorf(commitFailureTemplateConstant, commitError)
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

	creationError := service.repositoryCreator.CreateRepository(executionContext, githubcli.RepositoryCreationOptions{
		Name:           repositoryName,
		Visibility:     repositoryVisibility,
		RepositoryPath: trimmedRepositoryPath,
	})
	if creationError != nil {
		return Result{}, fmt.Errorf(repositoryCreationFailureTemplateConstant, repositoryName, creationError)
	}

	result.RemoteConfigured = true
	return result, nil
}

func (service *Service) writeTemplateWhenAbsent(filePath string, contents []byte) (bool, error) {
	_, statError := service.fileSystem.Stat(filePath)
	if statError == nil {
		return false, nil
	}
	if !errors.Is(statError, fs.ErrNotExist) {
		return false, fmt.Errorf(templateStatFailureTemplateConstant, filepath.Base(filePath), statError)
	}

	writeError := service.fileSystem.WriteFile(filePath, contents, templateFilePermissionsConstant)
	if writeError != nil {
		return false, fmt.Errorf(templateWriteFailureTemplateConstant, filepath.Base(filePath), writeError)
	}
	return true, nil
}
