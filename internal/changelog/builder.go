package changelog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/temirov/grit/internal/execshell"
	"github.com/temirov/grit/internal/shared"
)

const (
	gitDescribeSubcommandConstant         = "describe"
	gitDescribeTagsFlagConstant           = "--tags"
	gitDescribeAbbrevFlagConstant         = "--abbrev=0"
	gitLogSubcommandConstant              = "log"
	gitLogNoMergesFlagConstant            = "--no-merges"
	gitLogDateFormatFlagConstant          = "--date=short"
	gitLogPrettyFormatFlagConstant        = "--pretty=format:%h %ad %an %s"
	gitLogMaxCountFlagConstant            = "--max-count=200"
	commitRangeTemplateConstant           = "%s..HEAD"
	executorMissingMessageConstant        = "git executor not configured"
	repositoryPathRequiredMessageConstant = "repository path must be provided"
	describeFailureTemplateConstant       = "failed to resolve latest tag: %w"
	logFailureTemplateConstant            = "failed to collect commit history: %w"
)

// ErrGitExecutorNotConfigured indicates the builder requires a git executor.
var ErrGitExecutorNotConfigured = errors.New(executorMissingMessageConstant)

// ErrRepositoryPathRequired indicates BuildNotes received an empty repository path.
var ErrRepositoryPathRequired = errors.New(repositoryPathRequiredMessageConstant)

// Builder derives release notes from the commit history since the latest tag.
type Builder struct {
	gitExecutor shared.GitExecutor
}

// NewBuilder constructs a Builder backed by the provided executor.
func NewBuilder(gitExecutor shared.GitExecutor) (*Builder, error) {
	if gitExecutor == nil {
		return nil, ErrGitExecutorNotConfigured
	}
	return &Builder{gitExecutor: gitExecutor}, nil
}

// BuildNotes collects the non-merge commits recorded since the latest tag. It
// returns fallbackNotes when the repository has no tags yet or when the range
// holds no commits, so callers always receive usable notes.
func (builder *Builder) BuildNotes(executionContext context.Context, repositoryPath string, fallbackNotes string) (string, error) {
	trimmedRepositoryPath := strings.TrimSpace(repositoryPath)
	if len(trimmedRepositoryPath) == 0 {
		return "", ErrRepositoryPathRequired
	}

	latestTag, latestTagFound, describeError := builder.latestTag(executionContext, trimmedRepositoryPath)
	if describeError != nil {
		return "", describeError
	}
	if !latestTagFound {
		return fallbackNotes, nil
	}

	logArguments := []string{
		gitLogSubcommandConstant,
		gitLogNoMergesFlagConstant,
		gitLogDateFormatFlagConstant,
		gitLogPrettyFormatFlagConstant,
		gitLogMaxCountFlagConstant,
		fmt.Sprintf(commitRangeTemplateConstant, latestTag),
	}
	logResult, logError := builder.gitExecutor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        logArguments,
		WorkingDirectory: trimmedRepositoryPath,
	})
	if logError != nil {
		return "", fmt.Errorf(logFailureTemplateConstant, logError)
	}

	commitNotes := strings.TrimSpace(logResult.StandardOutput)
	if len(commitNotes) == 0 {
		return fallbackNotes, nil
	}
	return commitNotes, nil
}

func (builder *Builder) latestTag(executionContext context.Context, repositoryPath string) (string, bool, error) {
	describeArguments := []string{gitDescribeSubcommandConstant, gitDescribeTagsFlagConstant, gitDescribeAbbrevFlagConstant}
	describeResult, describeError := builder.gitExecutor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        describeArguments,
		WorkingDirectory: repositoryPath,
	})
	if describeError != nil {
		var commandFailure execshell.CommandFailedError
		if errors.As(describeError, &commandFailure) {
			return "", false, nil
		}
		return "", false, fmt.Errorf(describeFailureTemplateConstant, describeError)
	}

	latestTag := strings.TrimSpace(describeResult.StandardOutput)
	if len(latestTag) == 0 {
		return "", false, nil
	}
	return latestTag, true, nil
}
