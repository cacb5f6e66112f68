package history

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/temirov/grit/internal/execshell"
	"github.com/temirov/grit/internal/shared"
)

const (
	repositoryPathRequiredMessageConstant = "repository path must be provided"
	gitExecutorMissingMessageConstant     = "git executor not configured"
	logFailureTemplateConstant            = "failed to read commit history: %w"
	gitLogSubcommandConstant              = "log"
	gitLogOnelineFlagConstant             = "--oneline"
	gitLogGraphFlagConstant               = "--graph"
	gitLogDecorateFlagConstant            = "--decorate"
	gitLogAllFlagConstant                 = "--all"
	gitLogCountFlagConstant               = "-n"
	defaultEntryCountConstant             = 5
)

// ErrRepositoryPathRequired indicates the repository path option was empty.
var ErrRepositoryPathRequired = errors.New(repositoryPathRequiredMessageConstant)

// ErrGitExecutorNotConfigured indicates the git executor dependency was missing.
var ErrGitExecutorNotConfigured = errors.New(gitExecutorMissingMessageConstant)

// ServiceDependencies enumerates the collaborators required by Service.
type ServiceDependencies struct {
	GitExecutor shared.GitExecutor
}

// Options configures a single history request.
type Options struct {
	RepositoryPath string
	EntryCount     int
}

// Result captures the rendered commit graph.
type Result struct {
	RepositoryPath string
	EntryCount     int
	GraphOutput    string
}

// Service renders the decorated commit graph for a repository.
type Service struct {
	gitExecutor shared.GitExecutor
}

// NewService validates the dependencies and constructs a Service.
func NewService(dependencies ServiceDependencies) (*Service, error) {
	if dependencies.GitExecutor == nil {
		return nil, ErrGitExecutorNotConfigured
	}
	return &Service{gitExecutor: dependencies.GitExecutor}, nil
}

// Show runs git log with the decorated graph flags and returns the output
// unchanged. Non-positive entry counts fall back to the default of five.
func (service *Service) Show(executionContext context.Context, options Options) (Result, error) {
	trimmedRepositoryPath := strings.TrimSpace(options.RepositoryPath)
	if len(trimmedRepositoryPath) == 0 {
		return Result{}, ErrRepositoryPathRequired
	}

	entryCount := options.EntryCount
	if entryCount <= 0 {
		entryCount = defaultEntryCountConstant
	}

	executionResult, logError := service.gitExecutor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments: []string{
			gitLogSubcommandConstant,
			gitLogOnelineFlagConstant,
			gitLogGraphFlagConstant,
			gitLogDecorateFlagConstant,
			gitLogAllFlagConstant,
			gitLogCountFlagConstant,
			strconv.Itoa(entryCount),
		},
		WorkingDirectory: trimmedRepositoryPath,
	})
	if logError != nil {
		return Result{}, fmt.Errorf(logFailureTemplateConstant, logError)
	}

	return Result{
		RepositoryPath: trimmedRepositoryPath,
		EntryCount:     entryCount,
		GraphOutput:    executionResult.StandardOutput,
	}, nil
}
