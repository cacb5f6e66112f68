package status

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/temirov/grit/internal/shared"
)

const (
	repositoryPathRequiredMessageConstant   = "repository path must be provided"
	repositoryManagerMissingMessageConstant = "repository manager not configured"
	branchResolutionFailureTemplateConstant = "failed to resolve the current branch: %w"
	upstreamFailureTemplateConstant         = "failed to resolve the upstream branch: %w"
	divergenceFailureTemplateConstant       = "failed to count commits ahead and behind: %w"
	worktreeFailureTemplateConstant         = "failed to summarize the working tree: %w"
	stashFailureTemplateConstant            = "failed to count stash entries: %w"
)

// ErrRepositoryPathRequired indicates the repository path option was empty.
var ErrRepositoryPathRequired = errors.New(repositoryPathRequiredMessageConstant)

// ErrRepositoryManagerNotConfigured indicates the repository manager dependency was missing.
var ErrRepositoryManagerNotConfigured = errors.New(repositoryManagerMissingMessageConstant)

// ServiceDependencies enumerates the collaborators required by Service.
type ServiceDependencies struct {
	RepositoryManager shared.GitRepositoryManager
}

// Options configures a single status request.
type Options struct {
	RepositoryPath string
}

// Result aggregates the repository state reported by status.
type Result struct {
	RepositoryPath     string
	BranchName         string
	DetachedHead       bool
	UpstreamBranch     string
	UpstreamConfigured bool
	AheadCount         int
	BehindCount        int
	Worktree           shared.WorktreeSummary
	StashCount         int
}

// Service collects branch, upstream, divergence, worktree, and stash state.
type Service struct {
	repositoryManager shared.GitRepositoryManager
}

// NewService validates the dependencies and constructs a Service.
func NewService(dependencies ServiceDependencies) (*Service, error) {
	if dependencies.RepositoryManager == nil {
		return nil, ErrRepositoryManagerNotConfigured
	}
	return &Service{repositoryManager: dependencies.RepositoryManager}, nil
}

// Report gathers the repository state. Divergence counts are collected only
// when an upstream is configured; a detached HEAD reports no branch name.
func (service *Service) Report(executionContext context.Context, options Options) (Result, error) {
	trimmedRepositoryPath := strings.TrimSpace(options.RepositoryPath)
	if len(trimmedRepositoryPath) == 0 {
		return Result{}, ErrRepositoryPathRequired
	}

	result := Result{RepositoryPath: trimmedRepositoryPath}

	branchName, branchError := service.repositoryManager.GetCurrentBranch(executionContext, trimmedRepositoryPath)
	if branchError != nil {
		return Result{}, fmt.Errorf(branchResolutionFailureTemplateConstant, branchError)
	}
	result.BranchName = branchName
	result.DetachedHead = branchName == shared.DetachedHeadIndicatorConstant

	upstreamBranch, upstreamConfigured, upstreamError := service.repositoryManager.GetUpstreamBranch(executionContext, trimmedRepositoryPath)
	if upstreamError != nil {
		return Result{}, fmt.Errorf(upstreamFailureTemplateConstant, upstreamError)
	}
	result.UpstreamBranch = upstreamBranch
	result.UpstreamConfigured = upstreamConfigured

	if upstreamConfigured {
		aheadCount, behindCount, divergenceError := service.repositoryManager.CountAheadBehind(executionContext, trimmedRepositoryPath)
		if divergenceError != nil {
			return Result{}, fmt.Errorf(divergenceFailureTemplateConstant, divergenceError)
		}
		result.AheadCount = aheadCount
		result.BehindCount = behindCount
	}

	worktreeSummary, worktreeError := service.repositoryManager.SummarizeWorktree(executionContext, trimmedRepositoryPath)
	if worktreeError != nil {
		return Result{}, fmt.Errorf(worktreeFailureTemplateConstant, worktreeError)
	}
	result.Worktree = worktreeSummary

	stashCount, stashError := service.repositoryManager.CountStashEntries(executionContext, trimmedRepositoryPath)
	if stashError != nil {
		return Result{}, fmt.Errorf(stashFailureTemplateConstant, stashError)
	}
	result.StashCount = stashCount

	return result, nil
}
