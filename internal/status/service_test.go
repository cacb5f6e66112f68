package status

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/grit/internal/shared"
	"github.com/temirov/grit/internal/testsupport"
)

const testRepositoryPathConstant = "/workspace/widgets"

func newStatusService(testInstance *testing.T, manager *testsupport.RepositoryManagerStub) *Service {
	testInstance.Helper()
	service, serviceError := NewService(ServiceDependencies{RepositoryManager: manager})
	require.NoError(testInstance, serviceError)
	return service
}

func TestNewServiceValidation(testInstance *testing.T) {
	_, constructionError := NewService(ServiceDependencies{})
	require.ErrorIs(testInstance, constructionError, ErrRepositoryManagerNotConfigured)
}

func TestReportCollectsFullState(testInstance *testing.T) {
	manager := &testsupport.RepositoryManagerStub{
		CurrentBranch:      "feature/retry",
		UpstreamBranch:     "origin/feature/retry",
		UpstreamConfigured: true,
		AheadCount:         2,
		BehindCount:        1,
		Worktree:           shared.WorktreeSummary{StagedChangeCount: 1, UnstagedChangeCount: 2, UntrackedFileCount: 3},
		StashCount:         4,
	}
	service := newStatusService(testInstance, manager)

	result, reportError := service.Report(context.Background(), Options{RepositoryPath: testRepositoryPathConstant})
	require.NoError(testInstance, reportError)
	require.Equal(testInstance, "feature/retry", result.BranchName)
	require.False(testInstance, result.DetachedHead)
	require.Equal(testInstance, "origin/feature/retry", result.UpstreamBranch)
	require.True(testInstance, result.UpstreamConfigured)
	require.Equal(testInstance, 2, result.AheadCount)
	require.Equal(testInstance, 1, result.BehindCount)
	require.Equal(testInstance, shared.WorktreeSummary{StagedChangeCount: 1, UnstagedChangeCount: 2, UntrackedFileCount: 3}, result.Worktree)
	require.Equal(testInstance, 4, result.StashCount)
}

func TestReportSkipsDivergenceWithoutUpstream(testInstance *testing.T) {
	manager := &testsupport.RepositoryManagerStub{
		CurrentBranch:    "main",
		AheadCount:       7,
		BehindCount:      7,
		AheadBehindError: errors.New("no upstream configured"),
	}
	service := newStatusService(testInstance, manager)

	result, reportError := service.Report(context.Background(), Options{RepositoryPath: testRepositoryPathConstant})
	require.NoError(testInstance, reportError)
	require.False(testInstance, result.UpstreamConfigured)
	require.Zero(testInstance, result.AheadCount)
	require.Zero(testInstance, result.BehindCount)
}

func TestReportFlagsDetachedHead(testInstance *testing.T) {
	manager := &testsupport.RepositoryManagerStub{CurrentBranch: shared.DetachedHeadIndicatorConstant}
	service := newStatusService(testInstance, manager)

	result, reportError := service.Report(context.Background(), Options{RepositoryPath: testRepositoryPathConstant})
	require.NoError(testInstance, reportError)
	require.True(testInstance, result.DetachedHead)
}

func TestReportValidatesRepositoryPath(testInstance *testing.T) {
	service := newStatusService(testInstance, &testsupport.RepositoryManagerStub{})

	_, reportError := service.Report(context.Background(), Options{RepositoryPath: "  "})
	require.ErrorIs(testInstance, reportError, ErrRepositoryPathRequired)
}

func TestReportPropagatesFailures(testInstance *testing.T) {
	testCases := []struct {
		name            string
		configure       func(manager *testsupport.RepositoryManagerStub)
		expectedMessage string
	}{
		{
			name:            "branch_fails",
			configure:       func(manager *testsupport.RepositoryManagerStub) { manager.CurrentBranchError = errors.New("boom") },
			expectedMessage: "failed to resolve the current branch",
		},
		{
			name:            "upstream_fails",
			configure:       func(manager *testsupport.RepositoryManagerStub) { manager.UpstreamError = errors.New("boom") },
			expectedMessage: "failed to resolve the upstream branch",
		},
		{
			name: "divergence_fails",
			configure: func(manager *testsupport.RepositoryManagerStub) {
				manager.UpstreamConfigured = true
				manager.AheadBehindError = errors.New("boom")
			},
			expectedMessage: "failed to count commits ahead and behind",
		},
		{
			name:            "worktree_fails",
			configure:       func(manager *testsupport.RepositoryManagerStub) { manager.WorktreeError = errors.New("boom") },
			expectedMessage: "failed to summarize the working tree",
		},
		{
			name:            "stash_fails",
			configure:       func(manager *testsupport.RepositoryManagerStub) { manager.StashError = errors.New("boom") },
			expectedMessage: "failed to count stash entries",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			manager := &testsupport.RepositoryManagerStub{CurrentBranch: "main"}
			testCase.configure(manager)
			service := newStatusService(testInstance, manager)

			_, reportError := service.Report(context.Background(), Options{RepositoryPath: testRepositoryPathConstant})
			require.ErrorContains(testInstance, reportError, testCase.expectedMessage)
		})
	}
}
