package history_test

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/temirov/grit/internal/execshell"
	"github.com/temirov/grit/internal/history"
	"github.com/temirov/grit/internal/testsupport"
)

func buildLogCommand(testInstance *testing.T, executor *testsupport.GitExecutorStub, configurationProvider func() history.CommandConfiguration) (*cobra.Command, *bytes.Buffer) {
	testInstance.Helper()
	builder := history.CommandBuilder{
		LoggerProvider:        func() *zap.Logger { return zap.NewNop() },
		GitExecutor:           executor,
		ConfigurationProvider: configurationProvider,
	}
	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)
	outputBuffer := &bytes.Buffer{}
	command.SetOut(outputBuffer)
	command.SetErr(outputBuffer)
	return command, outputBuffer
}

func TestCommandPrintsGraphWithDefaultCount(testInstance *testing.T) {
	graph := "* 9f2c1aa (HEAD -> main) Add retry logic\n* 4d11b3e Initial commit\n"
	executor := &testsupport.GitExecutorStub{
		GitResponses: map[string]execshell.ExecutionResult{
			"log --oneline --graph --decorate --all -n 5": {StandardOutput: graph},
		},
	}
	command, outputBuffer := buildLogCommand(testInstance, executor, nil)

	runError := command.RunE(command, nil)
	require.NoError(testInstance, runError)
	require.Equal(testInstance, graph, outputBuffer.String())
}

func TestCommandParsesPositionalCount(testInstance *testing.T) {
	executor := &testsupport.GitExecutorStub{}
	command, _ := buildLogCommand(testInstance, executor, nil)

	runError := command.RunE(command, []string{"10"})
	require.NoError(testInstance, runError)
	require.Equal(testInstance, []string{"log --oneline --graph --decorate --all -n 10"}, executor.GitCommandKeys())
}

func TestCommandUsesConfiguredDefaultCount(testInstance *testing.T) {
	executor := &testsupport.GitExecutorStub{}
	command, _ := buildLogCommand(testInstance, executor, func() history.CommandConfiguration {
		return history.CommandConfiguration{CommitCount: 3}
	})

	runError := command.RunE(command, nil)
	require.NoError(testInstance, runError)
	require.Equal(testInstance, []string{"log --oneline --graph --decorate --all -n 3"}, executor.GitCommandKeys())
}

func TestCommandRejectsInvalidCounts(testInstance *testing.T) {
	testCases := []struct {
		name     string
		argument string
	}{
		{name: "non_numeric", argument: "ten"},
		{name: "zero", argument: "0"},
		{name: "negative", argument: "-3"},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			executor := &testsupport.GitExecutorStub{}
			command, outputBuffer := buildLogCommand(testInstance, executor, nil)

			runError := command.RunE(command, []string{testCase.argument})
			require.Error(testInstance, runError)
			require.Contains(testInstance, runError.Error(), "log count must be a positive number")
			require.Contains(testInstance, outputBuffer.String(), "Usage:")
			require.Empty(testInstance, executor.ExecutedGitCommands)
		})
	}
}
