package repoinit_test

import (
	"bytes"
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/temirov/grit/internal/execshell"
	"github.com/temirov/grit/internal/githubauth"
	"github.com/temirov/grit/internal/repoinit"
	"github.com/temirov/grit/internal/testsupport"
	"github.com/temirov/grit/internal/toolcheck"
)

type recordingFileSystem struct {
	writtenFiles map[string][]byte
}

func (filesystem *recordingFileSystem) Stat(string) (fs.FileInfo, error) {
	return nil, fs.ErrNotExist
}

func (filesystem *recordingFileSystem) WriteFile(path string, data []byte, _ fs.FileMode) error {
	if filesystem.writtenFiles == nil {
		filesystem.writtenFiles = map[string][]byte{}
	}
	filesystem.writtenFiles[path] = data
	return nil
}

func newUnavailableCLIInspector() *toolcheck.Inspector {
	return toolcheck.NewInspector(toolcheck.Dependencies{
		ExecutableLocator: func(string) (string, error) { return "", errors.New("executable not found") },
		Environment:       map[string]string{},
	})
}

func newAuthenticatedCLIInspector() *toolcheck.Inspector {
	return toolcheck.NewInspector(toolcheck.Dependencies{
		ExecutableLocator: func(string) (string, error) { return "/usr/local/bin/gh", nil },
		Environment:       map[string]string{githubauth.EnvGitHubCLIToken: "test-token"},
	})
}

func buildInitCommand(testInstance *testing.T, executor *testsupport.GitExecutorStub, inspector *toolcheck.Inspector) (*cobra.Command, *recordingFileSystem, *bytes.Buffer) {
	testInstance.Helper()
	filesystem := &recordingFileSystem{}
	builder := repoinit.CommandBuilder{
		LoggerProvider: func() *zap.Logger { return zap.NewNop() },
		GitExecutor:    executor,
		FileSystem:     filesystem,
		ToolInspector:  inspector,
	}
	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)
	outputBuffer := &bytes.Buffer{}
	command.SetOut(outputBuffer)
	command.SetErr(outputBuffer)
	return command, filesystem, outputBuffer
}

func TestCommandDefinesVisibilityFlag(testInstance *testing.T) {
	command, _, _ := buildInitCommand(testInstance, &testsupport.GitExecutorStub{}, newUnavailableCLIInspector())
	require.NotNil(testInstance, command.Flags().Lookup("visibility"))
}

func TestCommandPrintsManualInstructionsWhenCLIUnavailable(testInstance *testing.T) {
	executor := &testsupport.GitExecutorStub{}
	command, filesystem, outputBuffer := buildInitCommand(testInstance, executor, newUnavailableCLIInspector())

	runError := command.RunE(command, []string{"demo-repo"})
	require.NoError(testInstance, runError)
	require.Equal(testInstance, []string{"init", "add .", "commit -m Initial commit"}, executor.GitCommandKeys())
	require.Empty(testInstance, executor.ExecutedGitHubCommands)

	writtenNames := make([]string, 0, len(filesystem.writtenFiles))
	for path := range filesystem.writtenFiles {
		writtenNames = append(writtenNames, filepath.Base(path))
	}
	require.ElementsMatch(testInstance, []string{".gitignore", "README.md"}, writtenNames)

	output := outputBuffer.String()
	require.Contains(testInstance, output, "Initialized repository \"demo-repo\" with an initial commit")
	require.Contains(testInstance, output, "Skipped GitHub repository creation: GitHub CLI not found in PATH")
	require.Contains(testInstance, output, "git remote add origin git@github.com:<owner>/demo-repo.git")
}

func TestCommandCreatesGitHubRepositoryWhenAuthenticated(testInstance *testing.T) {
	executor := &testsupport.GitExecutorStub{
		GitHubResponses: map[string]execshell.ExecutionResult{
			"repo create demo-repo --private --source=. --remote=origin --push": {},
		},
	}
	command, _, outputBuffer := buildInitCommand(testInstance, executor, newAuthenticatedCLIInspector())

	runError := command.RunE(command, []string{"demo-repo"})
	require.NoError(testInstance, runError)
	require.Len(testInstance, executor.ExecutedGitHubCommands, 1)
	require.Equal(testInstance, []string{
		"repo", "create", "demo-repo", "--private", "--source=.", "--remote=origin", "--push",
	}, executor.ExecutedGitHubCommands[0].Arguments)
	require.Contains(testInstance, outputBuffer.String(), "Created GitHub repository demo-repo and pushed the initial commit")
}

func TestCommandHonorsVisibilityFlag(testInstance *testing.T) {
	executor := &testsupport.GitExecutorStub{
		GitHubResponses: map[string]execshell.ExecutionResult{
			"repo create demo-repo --public --source=. --remote=origin --push": {},
		},
	}
	command, _, _ := buildInitCommand(testInstance, executor, newAuthenticatedCLIInspector())
	require.NoError(testInstance, command.Flags().Set("visibility", "public"))

	runError := command.RunE(command, []string{"demo-repo"})
	require.NoError(testInstance, runError)
	require.Len(testInstance, executor.ExecutedGitHubCommands, 1)
	require.Contains(testInstance, executor.ExecutedGitHubCommands[0].Arguments, "--public")
}

func TestCommandRejectsUnknownVisibility(testInstance *testing.T) {
	executor := &testsupport.GitExecutorStub{}
	command, _, _ := buildInitCommand(testInstance, executor, newAuthenticatedCLIInspector())
	require.NoError(testInstance, command.Flags().Set("visibility", "secret"))

	runError := command.RunE(command, []string{"demo-repo"})
	require.ErrorContains(testInstance, runError, "unsupported visibility")
	require.Empty(testInstance, executor.ExecutedGitCommands)
}
