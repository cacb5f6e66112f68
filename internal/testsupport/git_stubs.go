// Package testsupport provides scripted stand-ins for the git contracts used
// across command tests.
package testsupport

import (
	"context"
	"strings"
	"time"

	"github.com/temirov/grit/internal/execshell"
	"github.com/temirov/grit/internal/shared"
)

// GitExecutorStub records git and GitHub CLI invocations and replays scripted results.
//
// Results and errors are keyed by the space-joined argument list.
type GitExecutorStub struct {
	GitResponses           map[string]execshell.ExecutionResult
	GitErrors              map[string]error
	GitHubResponses        map[string]execshell.ExecutionResult
	GitHubErrors           map[string]error
	ExecutedGitCommands    []execshell.CommandDetails
	ExecutedGitHubCommands []execshell.CommandDetails
}

// ExecuteGit records the invocation and replays the scripted git result.
func (executor *GitExecutorStub) ExecuteGit(_ context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error) {
	executor.ExecutedGitCommands = append(executor.ExecutedGitCommands, details)
	commandKey := strings.Join(details.Arguments, " ")
	if executor.GitErrors != nil {
		if scriptedError, exists := executor.GitErrors[commandKey]; exists {
			return execshell.ExecutionResult{}, scriptedError
		}
	}
	if executor.GitResponses != nil {
		if scriptedResult, exists := executor.GitResponses[commandKey]; exists {
			return scriptedResult, nil
		}
	}
	return execshell.ExecutionResult{}, nil
}

// ExecuteGitHubCLI records the invocation and replays the scripted GitHub CLI result.
func (executor *GitExecutorStub) ExecuteGitHubCLI(_ context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error) {
	executor.ExecutedGitHubCommands = append(executor.ExecutedGitHubCommands, details)
	commandKey := strings.Join(details.Arguments, " ")
	if executor.GitHubErrors != nil {
		if scriptedError, exists := executor.GitHubErrors[commandKey]; exists {
			return execshell.ExecutionResult{}, scriptedError
		}
	}
	if executor.GitHubResponses != nil {
		if scriptedResult, exists := executor.GitHubResponses[commandKey]; exists {
			return scriptedResult, nil
		}
	}
	return execshell.ExecutionResult{}, nil
}

// GitCommandKeys lists the joined argument strings of recorded git invocations.
func (executor *GitExecutorStub) GitCommandKeys() []string {
	keys := make([]string, 0, len(executor.ExecutedGitCommands))
	for _, details := range executor.ExecutedGitCommands {
		keys = append(keys, strings.Join(details.Arguments, " "))
	}
	return keys
}

// RepositoryManagerStub implements shared.GitRepositoryManager with scripted answers.
type RepositoryManagerStub struct {
	CleanWorktree          bool
	CleanWorktreeError     error
	CurrentBranch          string
	CurrentBranchError     error
	UpstreamBranch         string
	UpstreamConfigured     bool
	UpstreamError          error
	AheadCount             int
	BehindCount            int
	AheadBehindError       error
	Worktree               shared.WorktreeSummary
	WorktreeError          error
	StashCount             int
	StashError             error
	LocalBranches          map[string]bool
	LocalBranchError       error
	RemoteBranches         map[string]bool
	RemoteBranchError      error
	PushConfiguredUpstream bool
	PushError              error
	PushedRemotes          []string
	QueriedLocalBranches   []string
	QueriedRemoteBranches  []string
}

// CheckCleanWorktree replays the scripted worktree cleanliness.
func (manager *RepositoryManagerStub) CheckCleanWorktree(context.Context, string) (bool, error) {
	return manager.CleanWorktree, manager.CleanWorktreeError
}

// GetCurrentBranch replays the scripted branch name.
func (manager *RepositoryManagerStub) GetCurrentBranch(context.Context, string) (string, error) {
	return manager.CurrentBranch, manager.CurrentBranchError
}

// GetUpstreamBranch replays the scripted upstream state.
func (manager *RepositoryManagerStub) GetUpstreamBranch(context.Context, string) (string, bool, error) {
	return manager.UpstreamBranch, manager.UpstreamConfigured, manager.UpstreamError
}

// CountAheadBehind replays the scripted divergence counts.
func (manager *RepositoryManagerStub) CountAheadBehind(context.Context, string) (int, int, error) {
	return manager.AheadCount, manager.BehindCount, manager.AheadBehindError
}

// SummarizeWorktree replays the scripted worktree summary.
func (manager *RepositoryManagerStub) SummarizeWorktree(context.Context, string) (shared.WorktreeSummary, error) {
	return manager.Worktree, manager.WorktreeError
}

// CountStashEntries replays the scripted stash count.
func (manager *RepositoryManagerStub) CountStashEntries(context.Context, string) (int, error) {
	return manager.StashCount, manager.StashError
}

// LocalBranchExists records the queried branch and replays the scripted answer.
func (manager *RepositoryManagerStub) LocalBranchExists(_ context.Context, _ string, branchName string) (bool, error) {
	manager.QueriedLocalBranches = append(manager.QueriedLocalBranches, branchName)
	if manager.LocalBranchError != nil {
		return false, manager.LocalBranchError
	}
	return manager.LocalBranches[branchName], nil
}

// RemoteBranchExists records the queried branch and replays the scripted answer.
func (manager *RepositoryManagerStub) RemoteBranchExists(_ context.Context, _ string, remoteName string, branchName string) (bool, error) {
	manager.QueriedRemoteBranches = append(manager.QueriedRemoteBranches, remoteName+"/"+branchName)
	if manager.RemoteBranchError != nil {
		return false, manager.RemoteBranchError
	}
	return manager.RemoteBranches[branchName], nil
}

// PushCurrentBranch records the remote and replays the scripted push outcome.
func (manager *RepositoryManagerStub) PushCurrentBranch(_ context.Context, _ string, remoteName string) (bool, error) {
	manager.PushedRemotes = append(manager.PushedRemotes, remoteName)
	if manager.PushError != nil {
		return false, manager.PushError
	}
	return manager.PushConfiguredUpstream, nil
}

// FrozenClock returns a fixed instant for deterministic timestamps.
type FrozenClock struct {
	Instant time.Time
}

// Now returns the configured instant.
func (clock FrozenClock) Now() time.Time {
	return clock.Instant
}
