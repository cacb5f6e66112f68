package clone

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/grit/internal/execshell"
	"github.com/temirov/grit/internal/testsupport"
	pathutils "github.com/temirov/grit/internal/utils/path"
)

const (
	testWorkingDirectoryConstant = "/workspace"
	testRemoteURLConstant        = "git@github.com:acme/widgets.git"
)

func newCloneService(testInstance *testing.T, executor *testsupport.GitExecutorStub) *Service {
	testInstance.Helper()
	homeExpander := pathutils.NewHomeExpanderWithProvider(func() (string, error) { return "/home/tester", nil })
	service, serviceError := NewService(ServiceDependencies{GitExecutor: executor, HomeExpander: homeExpander})
	require.NoError(testInstance, serviceError)
	return service
}

func TestNewServiceValidation(testInstance *testing.T) {
	_, constructionError := NewService(ServiceDependencies{})
	require.ErrorIs(testInstance, constructionError, ErrGitExecutorNotConfigured)
}

func TestCloneDerivesDirectoryAndConfiguresRepository(testInstance *testing.T) {
	executor := &testsupport.GitExecutorStub{
		GitResponses: map[string]execshell.ExecutionResult{
			"branch -a": {StandardOutput: "* main\n  remotes/origin/main\n"},
		},
	}
	service := newCloneService(testInstance, executor)

	result, cloneError := service.Clone(context.Background(), Options{
		WorkingDirectory: testWorkingDirectoryConstant,
		RemoteURL:        testRemoteURLConstant,
	})
	require.NoError(testInstance, cloneError)
	require.Equal(testInstance, "widgets", result.DirectoryName)
	require.Equal(testInstance, "/workspace/widgets", result.DirectoryPath)
	require.Equal(testInstance, "* main\n  remotes/origin/main\n", result.BranchList)

	require.Equal(testInstance, []string{
		"clone --depth 1 git@github.com:acme/widgets.git widgets",
		"fetch --all",
		"config pull.rebase true",
		"config fetch.prune true",
		"branch -a",
	}, executor.GitCommandKeys())

	cloneCommand := executor.ExecutedGitCommands[0]
	require.Equal(testInstance, testWorkingDirectoryConstant, cloneCommand.WorkingDirectory)
	require.Equal(testInstance, "0", cloneCommand.EnvironmentVariables["GIT_TERMINAL_PROMPT"])

	fetchCommand := executor.ExecutedGitCommands[1]
	require.Equal(testInstance, "/workspace/widgets", fetchCommand.WorkingDirectory)
	require.Equal(testInstance, "0", fetchCommand.EnvironmentVariables["GIT_TERMINAL_PROMPT"])

	for _, followupCommand := range executor.ExecutedGitCommands[2:] {
		require.Equal(testInstance, "/workspace/widgets", followupCommand.WorkingDirectory)
	}
}

func TestCloneDerivesDirectoryFromURLShapes(testInstance *testing.T) {
	testCases := []struct {
		name              string
		remoteURL         string
		expectedDirectory string
	}{
		{name: "ssh_remote", remoteURL: "git@github.com:acme/widgets.git", expectedDirectory: "widgets"},
		{name: "https_remote", remoteURL: "https://github.com/acme/widgets.git", expectedDirectory: "widgets"},
		{name: "https_without_suffix", remoteURL: "https://github.com/acme/widgets", expectedDirectory: "widgets"},
		{name: "plain_path_fallback", remoteURL: "example.com/mirrors/widgets.git", expectedDirectory: "widgets"},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			executor := &testsupport.GitExecutorStub{}
			service := newCloneService(testInstance, executor)

			result, cloneError := service.Clone(context.Background(), Options{
				WorkingDirectory: testWorkingDirectoryConstant,
				RemoteURL:        testCase.remoteURL,
			})
			require.NoError(testInstance, cloneError)
			require.Equal(testInstance, testCase.expectedDirectory, result.DirectoryName)
		})
	}
}

func TestCloneExpandsHomeRelativeTarget(testInstance *testing.T) {
	executor := &testsupport.GitExecutorStub{}
	service := newCloneService(testInstance, executor)

	result, cloneError := service.Clone(context.Background(), Options{
		WorkingDirectory: testWorkingDirectoryConstant,
		RemoteURL:        testRemoteURLConstant,
		TargetDirectory:  "~/src/widgets",
	})
	require.NoError(testInstance, cloneError)
	require.Equal(testInstance, "/home/tester/src/widgets", result.DirectoryName)
	require.Equal(testInstance, "/home/tester/src/widgets", result.DirectoryPath)
	require.Contains(testInstance, executor.GitCommandKeys()[0], "clone --depth 1 git@github.com:acme/widgets.git /home/tester/src/widgets")
}

func TestCloneValidatesInputs(testInstance *testing.T) {
	service := newCloneService(testInstance, &testsupport.GitExecutorStub{})

	_, missingDirectoryError := service.Clone(context.Background(), Options{RemoteURL: testRemoteURLConstant})
	require.ErrorIs(testInstance, missingDirectoryError, ErrWorkingDirectoryRequired)

	_, missingURLError := service.Clone(context.Background(), Options{WorkingDirectory: testWorkingDirectoryConstant})
	require.ErrorIs(testInstance, missingURLError, ErrRemoteURLRequired)
}

func TestClonePropagatesFailures(testInstance *testing.T) {
	testCases := []struct {
		name            string
		failingCommand  string
		expectedMessage string
	}{
		{
			name:            "clone_fails",
			failingCommand:  "clone --depth 1 git@github.com:acme/widgets.git widgets",
			expectedMessage: "failed to clone",
		},
		{
			name:            "fetch_fails",
			failingCommand:  "fetch --all",
			expectedMessage: "failed to fetch remotes",
		},
		{
			name:            "configuration_fails",
			failingCommand:  "config pull.rebase true",
			expectedMessage: "failed to set pull.rebase",
		},
		{
			name:            "branch_listing_fails",
			failingCommand:  "branch -a",
			expectedMessage: "failed to list branches",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			executor := &testsupport.GitExecutorStub{
				GitErrors: map[string]error{testCase.failingCommand: errors.New("exit status 128")},
			}
			service := newCloneService(testInstance, executor)

			_, cloneError := service.Clone(context.Background(), Options{
				WorkingDirectory: testWorkingDirectoryConstant,
				RemoteURL:        testRemoteURLConstant,
			})
			require.ErrorContains(testInstance, cloneError, testCase.expectedMessage)
		})
	}
}
