package gitrepo

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
	requiredValueMessageConstant          = "value must not be empty"
	gitExecutorMissingMessageConstant     = "git executor not configured"
	repositoryPathRequiredMessageConstant = "repository path must be provided"
	branchNameRequiredMessageConstant     = "branch name must be provided"
	remoteNameRequiredMessageConstant     = "remote name must be provided"

	gitStatusSubcommandConstant      = "status"
	gitStatusPorcelainFlagConstant   = "--porcelain"
	gitRevParseSubcommandConstant    = "rev-parse"
	gitAbbreviatedRefFlagConstant    = "--abbrev-ref"
	gitSymbolicFullNameFlagConstant  = "--symbolic-full-name"
	gitHeadReferenceConstant         = "HEAD"
	gitUpstreamReferenceConstant     = "@{u}"
	gitRevListSubcommandConstant     = "rev-list"
	gitLeftRightFlagConstant         = "--left-right"
	gitCountFlagConstant             = "--count"
	gitUpstreamRangeConstant         = "@{u}...HEAD"
	gitStashSubcommandConstant       = "stash"
	gitStashListArgumentConstant     = "list"
	gitShowRefSubcommandConstant     = "show-ref"
	gitShowRefVerifyFlagConstant     = "--verify"
	gitShowRefQuietFlagConstant      = "--quiet"
	gitBranchReferencePrefixConstant = "refs/heads/"
	gitListRemoteSubcommandConstant  = "ls-remote"
	gitListRemoteHeadsFlagConstant   = "--heads"
	gitPushSubcommandConstant        = "push"
	gitPushSetUpstreamFlagConstant   = "--set-upstream"

	gitTerminalPromptEnvironmentNameConstant    = "GIT_TERMINAL_PROMPT"
	gitTerminalPromptEnvironmentDisableConstant = "0"

	untrackedStatusPrefixConstant     = "??"
	porcelainUnmodifiedMarkerConstant = byte(' ')
	porcelainStatusWidthConstant      = 2
	aheadBehindFieldCountConstant     = 2

	worktreeStatusFailureTemplateConstant     = "failed to inspect worktree status: %w"
	currentBranchFailureTemplateConstant      = "failed to resolve current branch: %w"
	upstreamLookupFailureTemplateConstant     = "failed to resolve upstream branch: %w"
	aheadBehindFailureTemplateConstant        = "failed to count commits against upstream: %w"
	aheadBehindParseFailureTemplateConstant   = "unexpected rev-list count output %q"
	stashListFailureTemplateConstant          = "failed to list stash entries: %w"
	branchLookupFailureTemplateConstant       = "failed to check branch %q: %w"
	remoteBranchLookupFailureTemplateConstant = "failed to query remote %q for branch %q: %w"
	pushFailureTemplateConstant               = "failed to push to remote %q: %w"
	upstreamPushFailureTemplateConstant       = "failed to push branch %q to remote %q: %w"
)

// ErrGitExecutorNotConfigured indicates the repository manager was constructed without a git executor.
var ErrGitExecutorNotConfigured = errors.New(gitExecutorMissingMessageConstant)

// ErrRepositoryPathRequired indicates an operation received an empty repository path.
var ErrRepositoryPathRequired = errors.New(repositoryPathRequiredMessageConstant)

// ErrBranchNameRequired indicates an operation received an empty branch name.
var ErrBranchNameRequired = errors.New(branchNameRequiredMessageConstant)

// ErrRemoteNameRequired indicates an operation received an empty remote name.
var ErrRemoteNameRequired = errors.New(remoteNameRequiredMessageConstant)

// RepositoryManager inspects and mutates git repositories through the git CLI.
type RepositoryManager struct {
	gitExecutor shared.GitExecutor
}

// NewRepositoryManager constructs a RepositoryManager backed by the provided executor.
func NewRepositoryManager(gitExecutor shared.GitExecutor) (*RepositoryManager, error) {
	if gitExecutor == nil {
		return nil, ErrGitExecutorNotConfigured
	}
	return &RepositoryManager{gitExecutor: gitExecutor}, nil
}

// CheckCleanWorktree reports whether the repository worktree has no pending changes.
func (manager *RepositoryManager) CheckCleanWorktree(executionContext context.Context, repositoryPath string) (bool, error) {
	statusOutput, statusError := manager.runGit(executionContext, repositoryPath, []string{gitStatusSubcommandConstant, gitStatusPorcelainFlagConstant}, false)
	if statusError != nil {
		return false, fmt.Errorf(worktreeStatusFailureTemplateConstant, statusError)
	}
	return len(strings.TrimSpace(statusOutput)) == 0, nil
}

// GetCurrentBranch resolves the abbreviated ref of HEAD, reporting HEAD itself when detached.
func (manager *RepositoryManager) GetCurrentBranch(executionContext context.Context, repositoryPath string) (string, error) {
	branchOutput, branchError := manager.runGit(executionContext, repositoryPath, []string{gitRevParseSubcommandConstant, gitAbbreviatedRefFlagConstant, gitHeadReferenceConstant}, false)
	if branchError != nil {
		return "", fmt.Errorf(currentBranchFailureTemplateConstant, branchError)
	}
	return strings.TrimSpace(branchOutput), nil
}

// GetUpstreamBranch resolves the upstream tracking branch of HEAD. The boolean
// result reports whether an upstream is configured; a missing upstream is not an error.
func (manager *RepositoryManager) GetUpstreamBranch(executionContext context.Context, repositoryPath string) (string, bool, error) {
	upstreamArguments := []string{gitRevParseSubcommandConstant, gitAbbreviatedRefFlagConstant, gitSymbolicFullNameFlagConstant, gitUpstreamReferenceConstant}
	upstreamOutput, upstreamError := manager.runGit(executionContext, repositoryPath, upstreamArguments, false)
	if upstreamError != nil {
		if isCommandFailure(upstreamError) {
			return "", false, nil
		}
		return "", false, fmt.Errorf(upstreamLookupFailureTemplateConstant, upstreamError)
	}
	upstreamBranch := strings.TrimSpace(upstreamOutput)
	if len(upstreamBranch) == 0 {
		return "", false, nil
	}
	return upstreamBranch, true, nil
}

// CountAheadBehind counts the commits HEAD is ahead of and behind its upstream.
func (manager *RepositoryManager) CountAheadBehind(executionContext context.Context, repositoryPath string) (int, int, error) {
	countArguments := []string{gitRevListSubcommandConstant, gitLeftRightFlagConstant, gitCountFlagConstant, gitUpstreamRangeConstant}
	countOutput, countError := manager.runGit(executionContext, repositoryPath, countArguments, false)
	if countError != nil {
		return 0, 0, fmt.Errorf(aheadBehindFailureTemplateConstant, countError)
	}

	countFields := strings.Fields(strings.TrimSpace(countOutput))
	if len(countFields) != aheadBehindFieldCountConstant {
		return 0, 0, fmt.Errorf(aheadBehindParseFailureTemplateConstant, strings.TrimSpace(countOutput))
	}
	behindCount, behindParseError := strconv.Atoi(countFields[0])
	if behindParseError != nil {
		return 0, 0, fmt.Errorf(aheadBehindParseFailureTemplateConstant, strings.TrimSpace(countOutput))
	}
	aheadCount, aheadParseError := strconv.Atoi(countFields[1])
	if aheadParseError != nil {
		return 0, 0, fmt.Errorf(aheadBehindParseFailureTemplateConstant, strings.TrimSpace(countOutput))
	}
	return aheadCount, behindCount, nil
}

// SummarizeWorktree tallies staged, unstaged, and untracked changes from porcelain status output.
func (manager *RepositoryManager) SummarizeWorktree(executionContext context.Context, repositoryPath string) (shared.WorktreeSummary, error) {
	statusOutput, statusError := manager.runGit(executionContext, repositoryPath, []string{gitStatusSubcommandConstant, gitStatusPorcelainFlagConstant}, false)
	if statusError != nil {
		return shared.WorktreeSummary{}, fmt.Errorf(worktreeStatusFailureTemplateConstant, statusError)
	}
	return parseWorktreeSummary(statusOutput), nil
}

// CountStashEntries counts the entries reported by git stash list.
func (manager *RepositoryManager) CountStashEntries(executionContext context.Context, repositoryPath string) (int, error) {
	stashOutput, stashError := manager.runGit(executionContext, repositoryPath, []string{gitStashSubcommandConstant, gitStashListArgumentConstant}, false)
	if stashError != nil {
		return 0, fmt.Errorf(stashListFailureTemplateConstant, stashError)
	}

	stashEntryCount := 0
	for _, stashLine := range strings.Split(stashOutput, "\n") {
		if len(strings.TrimSpace(stashLine)) > 0 {
			stashEntryCount++
		}
	}
	return stashEntryCount, nil
}

// LocalBranchExists reports whether the repository contains a local branch with the provided name.
func (manager *RepositoryManager) LocalBranchExists(executionContext context.Context, repositoryPath string, branchName string) (bool, error) {
	trimmedBranchName := strings.TrimSpace(branchName)
	if len(trimmedBranchName) == 0 {
		return false, ErrBranchNameRequired
	}

	verifyArguments := []string{gitShowRefSubcommandConstant, gitShowRefVerifyFlagConstant, gitShowRefQuietFlagConstant, gitBranchReferencePrefixConstant + trimmedBranchName}
	_, verifyError := manager.runGit(executionContext, repositoryPath, verifyArguments, false)
	if verifyError != nil {
		if isCommandFailure(verifyError) {
			return false, nil
		}
		return false, fmt.Errorf(branchLookupFailureTemplateConstant, trimmedBranchName, verifyError)
	}
	return true, nil
}

// RemoteBranchExists reports whether the remote advertises a branch with the provided name.
func (manager *RepositoryManager) RemoteBranchExists(executionContext context.Context, repositoryPath string, remoteName string, branchName string) (bool, error) {
	trimmedRemoteName := strings.TrimSpace(remoteName)
	if len(trimmedRemoteName) == 0 {
		return false, ErrRemoteNameRequired
	}
	trimmedBranchName := strings.TrimSpace(branchName)
	if len(trimmedBranchName) == 0 {
		return false, ErrBranchNameRequired
	}

	listArguments := []string{gitListRemoteSubcommandConstant, gitListRemoteHeadsFlagConstant, trimmedRemoteName, trimmedBranchName}
	listOutput, listError := manager.runGit(executionContext, repositoryPath, listArguments, true)
	if listError != nil {
		if isCommandFailure(listError) {
			return false, nil
		}
		return false, fmt.Errorf(remoteBranchLookupFailureTemplateConstant, trimmedRemoteName, trimmedBranchName, listError)
	}
	return len(strings.TrimSpace(listOutput)) > 0, nil
}

// PushCurrentBranch pushes the checked-out branch, configuring upstream tracking on the
// provided remote when the plain push is rejected. The boolean result reports whether
// the upstream fallback ran.
func (manager *RepositoryManager) PushCurrentBranch(executionContext context.Context, repositoryPath string, remoteName string) (bool, error) {
	trimmedRemoteName := strings.TrimSpace(remoteName)
	if len(trimmedRemoteName) == 0 {
		return false, ErrRemoteNameRequired
	}

	_, pushError := manager.runGit(executionContext, repositoryPath, []string{gitPushSubcommandConstant}, true)
	if pushError == nil {
		return false, nil
	}
	if !isCommandFailure(pushError) {
		return false, fmt.Errorf(pushFailureTemplateConstant, trimmedRemoteName, pushError)
	}

	currentBranch, currentBranchError := manager.GetCurrentBranch(executionContext, repositoryPath)
	if currentBranchError != nil {
		return false, currentBranchError
	}

	upstreamArguments := []string{gitPushSubcommandConstant, gitPushSetUpstreamFlagConstant, trimmedRemoteName, currentBranch}
	if _, upstreamPushError := manager.runGit(executionContext, repositoryPath, upstreamArguments, true); upstreamPushError != nil {
		return false, fmt.Errorf(upstreamPushFailureTemplateConstant, currentBranch, trimmedRemoteName, upstreamPushError)
	}
	return true, nil
}

func (manager *RepositoryManager) runGit(executionContext context.Context, repositoryPath string, arguments []string, disableTerminalPrompt bool) (string, error) {
	trimmedRepositoryPath := strings.TrimSpace(repositoryPath)
	if len(trimmedRepositoryPath) == 0 {
		return "", ErrRepositoryPathRequired
	}

	commandDetails := execshell.CommandDetails{Arguments: arguments, WorkingDirectory: trimmedRepositoryPath}
	if disableTerminalPrompt {
		commandDetails.EnvironmentVariables = map[string]string{gitTerminalPromptEnvironmentNameConstant: gitTerminalPromptEnvironmentDisableConstant}
	}

	executionResult, executionError := manager.gitExecutor.ExecuteGit(executionContext, commandDetails)
	if executionError != nil {
		return "", executionError
	}
	return executionResult.StandardOutput, nil
}

func parseWorktreeSummary(statusOutput string) shared.WorktreeSummary {
	var summary shared.WorktreeSummary
	for _, statusLine := range strings.Split(statusOutput, "\n") {
		if len(strings.TrimSpace(statusLine)) == 0 {
			continue
		}
		if strings.HasPrefix(statusLine, untrackedStatusPrefixConstant) {
			summary.UntrackedFileCount++
			continue
		}
		if len(statusLine) < porcelainStatusWidthConstant {
			continue
		}
		if statusLine[0] != porcelainUnmodifiedMarkerConstant {
			summary.StagedChangeCount++
		}
		if statusLine[1] != porcelainUnmodifiedMarkerConstant {
			summary.UnstagedChangeCount++
		}
	}
	return summary
}

func isCommandFailure(candidate error) bool {
	var commandFailure execshell.CommandFailedError
	return errors.As(candidate, &commandFailure)
}
