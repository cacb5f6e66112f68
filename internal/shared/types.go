package shared

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/temirov/grit/internal/execshell"
)

const (
	// OriginRemoteNameConstant identifies the default remote used when publishing branches and tags.
	OriginRemoteNameConstant = "origin"
	// DefaultBranchNameConstant is the branch synchronization targets when the remote does not advertise master.
	DefaultBranchNameConstant = "main"
	// LegacyDefaultBranchNameConstant is preferred whenever the remote still advertises a master branch.
	LegacyDefaultBranchNameConstant = "master"
	// DetachedHeadIndicatorConstant is the ref name git reports while no branch is checked out.
	DetachedHeadIndicatorConstant = "HEAD"

	branchNameRequiredMessageConstant   = "branch name must not be empty"
	branchNameWhitespaceMessageConstant = "branch name must not contain whitespace"
	remoteNameRequiredMessageConstant   = "remote name must not be empty"
	remoteNameWhitespaceMessageConstant = "remote name must not contain whitespace"
	whitespaceCharactersConstant        = " \t\r\n"
)

// Clock abstracts time acquisition for deterministic testing.
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock using the system time source.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ConfirmationPrompter collects user confirmations prior to destructive actions.
type ConfirmationPrompter interface {
	Confirm(prompt string) (bool, error)
}

// FileSystem exposes the filesystem operations repository services need.
type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
	WriteFile(path string, data []byte, permissions fs.FileMode) error
}

// OSFileSystem implements FileSystem using the operating system primitives.
type OSFileSystem struct{}

// Stat retrieves file metadata.
func (OSFileSystem) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// WriteFile writes data to a file with the supplied permissions.
func (OSFileSystem) WriteFile(path string, data []byte, permissions fs.FileMode) error {
	return os.WriteFile(path, data, permissions)
}

// GitExecutor exposes the subset of shell execution used by command services.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
	ExecuteGitHubCLI(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// WorktreeSummary totals the change classes reported by git status --porcelain.
type WorktreeSummary struct {
	StagedChangeCount   int
	UnstagedChangeCount int
	UntrackedFileCount  int
}

// Clean reports whether the worktree holds no staged, unstaged, or untracked changes.
func (summary WorktreeSummary) Clean() bool {
	return summary.StagedChangeCount == 0 && summary.UnstagedChangeCount == 0 && summary.UntrackedFileCount == 0
}

// GitRepositoryManager exposes repository-level git operations shared across commands.
type GitRepositoryManager interface {
	CheckCleanWorktree(executionContext context.Context, repositoryPath string) (bool, error)
	GetCurrentBranch(executionContext context.Context, repositoryPath string) (string, error)
	GetUpstreamBranch(executionContext context.Context, repositoryPath string) (string, bool, error)
	CountAheadBehind(executionContext context.Context, repositoryPath string) (int, int, error)
	SummarizeWorktree(executionContext context.Context, repositoryPath string) (WorktreeSummary, error)
	CountStashEntries(executionContext context.Context, repositoryPath string) (int, error)
	LocalBranchExists(executionContext context.Context, repositoryPath string, branchName string) (bool, error)
	RemoteBranchExists(executionContext context.Context, repositoryPath string, remoteName string, branchName string) (bool, error)
	PushCurrentBranch(executionContext context.Context, repositoryPath string, remoteName string) (bool, error)
}

// BranchName is a validated git branch name.
type BranchName struct {
	value string
}

// NewBranchName normalizes and validates a branch name supplied by a user.
func NewBranchName(raw string) (BranchName, error) {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) == 0 {
		return BranchName{}, errors.New(branchNameRequiredMessageConstant)
	}
	if strings.ContainsAny(trimmed, whitespaceCharactersConstant) {
		return BranchName{}, errors.New(branchNameWhitespaceMessageConstant)
	}
	return BranchName{value: trimmed}, nil
}

// String returns the validated branch name.
func (name BranchName) String() string {
	return name.value
}

// RemoteName is a validated git remote name.
type RemoteName struct {
	value string
}

// NewRemoteName normalizes and validates a remote name supplied by flags or configuration.
func NewRemoteName(raw string) (RemoteName, error) {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) == 0 {
		return RemoteName{}, errors.New(remoteNameRequiredMessageConstant)
	}
	if strings.ContainsAny(trimmed, whitespaceCharactersConstant) {
		return RemoteName{}, errors.New(remoteNameWhitespaceMessageConstant)
	}
	return RemoteName{value: trimmed}, nil
}

// String returns the validated remote name.
func (name RemoteName) String() string {
	return name.value
}
