package clean

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/temirov/grit/internal/execshell"
	"github.com/temirov/grit/internal/shared"
)

const (
	repositoryPathRequiredMessageConstant = "repository path must be provided"
	gitExecutorMissingMessageConstant     = "git executor not configured"
	prompterMissingMessageConstant        = "confirmation prompter not configured"
	outputWriterMissingMessageConstant    = "output writer not configured"
	confirmationFailureTemplateConstant   = "failed to read confirmation: %w"
	previewFailureTemplateConstant        = "failed to preview removable files: %w"
	removalFailureTemplateConstant        = "failed to remove untracked files: %w"
	gitCleanSubcommandConstant            = "clean"
	gitCleanPreviewFlagConstant           = "-dn"
	gitCleanForceFlagConstant             = "-df"
	firstConfirmationPromptConstant       = "This will permanently remove untracked files and directories. Continue? [y/N] "
	secondConfirmationPromptConstant      = "Proceed with removing the files listed above? [y/N] "
)

// ErrRepositoryPathRequired indicates the repository path option was empty.
var ErrRepositoryPathRequired = errors.New(repositoryPathRequiredMessageConstant)

// ErrGitExecutorNotConfigured indicates the git executor dependency was missing.
var ErrGitExecutorNotConfigured = errors.New(gitExecutorMissingMessageConstant)

// ErrPrompterNotConfigured indicates the confirmation prompter dependency was missing.
var ErrPrompterNotConfigured = errors.New(prompterMissingMessageConstant)

// ErrOutputWriterNotConfigured indicates the output writer dependency was missing.
var ErrOutputWriterNotConfigured = errors.New(outputWriterMissingMessageConstant)

// Outcome identifies how a clean session ended.
type Outcome string

const (
	// OutcomeDeclined reports that one of the confirmations was not affirmed.
	OutcomeDeclined Outcome = "declined"
	// OutcomeNothingToRemove reports an empty removal preview.
	OutcomeNothingToRemove Outcome = "nothing-to-remove"
	// OutcomeCleaned reports that untracked files were removed.
	OutcomeCleaned Outcome = "cleaned"
)

// Dependencies enumerates external collaborators required for cleaning.
type Dependencies struct {
	GitExecutor shared.GitExecutor
	Prompter    shared.ConfirmationPrompter
	Output      io.Writer
}

// Options configures a clean session.
type Options struct {
	RepositoryPath string
}

// Result captures the observable outcomes of a clean session.
type Result struct {
	RepositoryPath string
	Outcome        Outcome
	Preview        string
	RemovalOutput  string
}

// Service removes untracked files behind a two-stage confirmation.
type Service struct {
	gitExecutor shared.GitExecutor
	prompter    shared.ConfirmationPrompter
	output      io.Writer
}

// NewService validates the dependencies and constructs a Service.
func NewService(dependencies Dependencies) (*Service, error) {
	if dependencies.GitExecutor == nil {
		return nil, ErrGitExecutorNotConfigured
	}
	if dependencies.Prompter == nil {
		return nil, ErrPrompterNotConfigured
	}
	if dependencies.Output == nil {
		return nil, ErrOutputWriterNotConfigured
	}
	return &Service{
		gitExecutor: dependencies.GitExecutor,
		prompter:    dependencies.Prompter,
		output:      dependencies.Output,
	}, nil
}

// Clean previews and removes untracked files. Removal requires two
// affirmative confirmations, and the preview is always shown before the
// second one. Declines and an empty preview end the session without
// touching the repository.
func (service *Service) Clean(executionContext context.Context, options Options) (Result, error) {
	trimmedRepositoryPath := strings.TrimSpace(options.RepositoryPath)
	if len(trimmedRepositoryPath) == 0 {
		return Result{}, ErrRepositoryPathRequired
	}

	result := Result{RepositoryPath: trimmedRepositoryPath}

	firstConfirmed, firstPromptError := service.prompter.Confirm(firstConfirmationPromptConstant)
	if firstPromptError != nil {
		return Result{}, fmt.Errorf(confirmationFailureTemplateConstant, firstPromptError)
	}
	if !firstConfirmed {
		result.Outcome = OutcomeDeclined
		return result, nil
	}

	previewResult, previewError := service.gitExecutor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitCleanSubcommandConstant, gitCleanPreviewFlagConstant},
		WorkingDirectory: trimmedRepositoryPath,
	})
	if previewError != nil {
		return Result{}, fmt.Errorf(previewFailureTemplateConstant, previewError)
	}
	result.Preview = previewResult.StandardOutput

	if len(strings.TrimSpace(previewResult.StandardOutput)) == 0 {
		result.Outcome = OutcomeNothingToRemove
		return result, nil
	}

	if _, writeError := io.WriteString(service.output, previewResult.StandardOutput); writeError != nil {
		return Result{}, writeError
	}

	secondConfirmed, secondPromptError := service.prompter.Confirm(secondConfirmationPromptConstant)
	if secondPromptError != nil {
		return Result{}, fmt.Errorf(confirmationFailureTemplateConstant, secondPromptError)
	}
	if !secondConfirmed {
		result.Outcome = OutcomeDeclined
		return result, nil
	}

	removalResult, removalError := service.gitExecutor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitCleanSubcommandConstant, gitCleanForceFlagConstant},
		WorkingDirectory: trimmedRepositoryPath,
	})
	if removalError != nil {
		return Result{}, fmt.Errorf(removalFailureTemplateConstant, removalError)
	}
	result.RemovalOutput = removalResult.StandardOutput

	if len(removalResult.StandardOutput) > 0 {
		if _, writeError := io.WriteString(service.output, removalResult.StandardOutput); writeError != nil {
			return Result{}, writeError
		}
	}

	result.Outcome = OutcomeCleaned
	return result, nil
}
