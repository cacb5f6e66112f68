package history

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/grit/internal/execshell"
	"github.com/temirov/grit/internal/testsupport"
)

const testRepositoryPathConstant = "/workspace/widgets"

func newHistoryService(testInstance *testing.T, executor *testsupport.GitExecutorStub) *Service {
	testInstance.Helper()
	service, serviceError := NewService(ServiceDependencies{GitExecutor: executor})
	require.NoError(testInstance, serviceError)
	return service
}

func TestNewServiceValidation(testInstance *testing.T) {
	_, constructionError := NewService(ServiceDependencies{})
	require.ErrorIs(testInstance, constructionError, ErrGitExecutorNotConfigured)
}

func TestShowRequestsExactlyTheConfiguredCount(testInstance *testing.T) {
	testCases := []struct {
		name         string
		entryCount   int
		expectedKey  string
		expectedSize int
	}{
		{
			name:         "default_count_when_unset",
			entryCount:   0,
			expectedKey:  "log --oneline --graph --decorate --all -n 5",
			expectedSize: 5,
		},
		{
			name:         "explicit_count",
			entryCount:   10,
			expectedKey:  "log --oneline --graph --decorate --all -n 10",
			expectedSize: 10,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			executor := &testsupport.GitExecutorStub{}
			service := newHistoryService(testInstance, executor)

			result, showError := service.Show(context.Background(), Options{
				RepositoryPath: testRepositoryPathConstant,
				EntryCount:     testCase.entryCount,
			})
			require.NoError(testInstance, showError)
			require.Equal(testInstance, testCase.expectedSize, result.EntryCount)
			require.Equal(testInstance, []string{testCase.expectedKey}, executor.GitCommandKeys())
			require.Equal(testInstance, testRepositoryPathConstant, executor.ExecutedGitCommands[0].WorkingDirectory)
		})
	}
}

func TestShowReturnsGraphOutputVerbatim(testInstance *testing.T) {
	graph := "* 9f2c1aa (HEAD -> main, origin/main) Add retry logic\n* 4d11b3e Initial commit\n"
	executor := &testsupport.GitExecutorStub{
		GitResponses: map[string]execshell.ExecutionResult{
			"log --oneline --graph --decorate --all -n 5": {StandardOutput: graph},
		},
	}
	service := newHistoryService(testInstance, executor)

	result, showError := service.Show(context.Background(), Options{RepositoryPath: testRepositoryPathConstant})
	require.NoError(testInstance, showError)
	require.Equal(testInstance, graph, result.GraphOutput)
}

func TestShowValidatesRepositoryPath(testInstance *testing.T) {
	service := newHistoryService(testInstance, &testsupport.GitExecutorStub{})

	_, showError := service.Show(context.Background(), Options{RepositoryPath: "  "})
	require.ErrorIs(testInstance, showError, ErrRepositoryPathRequired)
}

func TestShowPropagatesLogFailure(testInstance *testing.T) {
	executor := &testsupport.GitExecutorStub{
		GitErrors: map[string]error{
			"log --oneline --graph --decorate --all -n 5": errors.New("branch has no commits"),
		},
	}
	service := newHistoryService(testInstance, executor)

	_, showError := service.Show(context.Background(), Options{RepositoryPath: testRepositoryPathConstant})
	require.ErrorContains(testInstance, showError, "failed to read commit history")
}
