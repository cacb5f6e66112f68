package tests

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const (
	integrationCommandTimeoutConstant          = 120 * time.Second
	goExecutableNameConstant                   = "go"
	goRunSubcommandConstant                    = "run"
	goRunPackageReferenceConstant              = "."
	gitExecutableNameConstant                  = "git"
	githubCLIExecutableNameConstant            = "gh"
	githubCLIAuthStatusArgumentConstant        = "auth"
	githubCLIStatusArgumentConstant            = "status"
	gitMissingSkipMessageConstant              = "git executable not available on PATH"
	githubCLIAuthenticatedSkipMessageConstant  = "an authenticated GitHub CLI would reach the network"
	integrationUserEmailConstant               = "integration@example.com"
	integrationUserNameConstant                = "Integration Tester"
	integrationBareRemoteDirectoryNameConstant = "origin.git"
)

// runGritCommand executes the CLI through `go run .` from the repository root
// and returns the combined output together with the process exit code.
func runGritCommand(testInstance *testing.T, arguments []string, standardInput io.Reader) (string, int) {
	testInstance.Helper()

	executionContext, cancelFunction := context.WithTimeout(context.Background(), integrationCommandTimeoutConstant)
	defer cancelFunction()

	commandArguments := append([]string{goRunSubcommandConstant, goRunPackageReferenceConstant}, arguments...)
	command := exec.CommandContext(executionContext, goExecutableNameConstant, commandArguments...)
	command.Dir = repositoryRootDirectory(testInstance)
	command.Env = os.Environ()
	if standardInput != nil {
		command.Stdin = standardInput
	}

	outputBytes, runError := command.CombinedOutput()
	outputText := string(outputBytes)
	if runError == nil {
		return outputText, 0
	}

	var exitError *exec.ExitError
	if errors.As(runError, &exitError) {
		return outputText, exitError.ExitCode()
	}

	require.NoError(testInstance, runError, outputText)
	return outputText, -1
}

func repositoryRootDirectory(testInstance *testing.T) string {
	testInstance.Helper()

	currentWorkingDirectory, workingDirectoryError := os.Getwd()
	require.NoError(testInstance, workingDirectoryError)
	return filepath.Dir(currentWorkingDirectory)
}

func requireGitAvailable(testInstance *testing.T) {
	testInstance.Helper()

	if _, lookError := exec.LookPath(gitExecutableNameConstant); lookError != nil {
		testInstance.Skip(gitMissingSkipMessageConstant)
	}
}

// requireGitHubCLIUnauthenticated skips tests whose commands would attempt a
// real GitHub operation when the host happens to carry an authenticated gh.
func requireGitHubCLIUnauthenticated(testInstance *testing.T) {
	testInstance.Helper()

	githubCLIPath, lookError := exec.LookPath(githubCLIExecutableNameConstant)
	if lookError != nil {
		return
	}

	statusCommand := exec.Command(githubCLIPath, githubCLIAuthStatusArgumentConstant, githubCLIStatusArgumentConstant)
	if statusError := statusCommand.Run(); statusError == nil {
		testInstance.Skip(githubCLIAuthenticatedSkipMessageConstant)
	}
}

func runGitCommand(testInstance *testing.T, repositoryPath string, arguments ...string) string {
	testInstance.Helper()

	command := exec.Command(gitExecutableNameConstant, arguments...)
	command.Dir = repositoryPath
	outputBytes, runError := command.CombinedOutput()
	require.NoError(testInstance, runError, string(outputBytes))
	return strings.TrimSpace(string(outputBytes))
}

// initializeRepository creates a temporary repository whose unborn default
// branch carries the requested name.
func initializeRepository(testInstance *testing.T, defaultBranchName string) string {
	testInstance.Helper()

	repositoryPath := testInstance.TempDir()
	runGitCommand(testInstance, repositoryPath, "init")
	runGitCommand(testInstance, repositoryPath, "symbolic-ref", "HEAD", "refs/heads/"+defaultBranchName)
	runGitCommand(testInstance, repositoryPath, "config", "user.email", integrationUserEmailConstant)
	runGitCommand(testInstance, repositoryPath, "config", "user.name", integrationUserNameConstant)
	return repositoryPath
}

func commitFile(testInstance *testing.T, repositoryPath string, fileName string, content string, message string) {
	testInstance.Helper()

	writeError := os.WriteFile(filepath.Join(repositoryPath, fileName), []byte(content), 0o644)
	require.NoError(testInstance, writeError)
	runGitCommand(testInstance, repositoryPath, "add", "--all")
	runGitCommand(testInstance, repositoryPath, "commit", "-m", message)
}

// createBareRemote provisions a bare repository and registers it as origin.
func createBareRemote(testInstance *testing.T, repositoryPath string) string {
	testInstance.Helper()

	remoteParentDirectory := testInstance.TempDir()
	remotePath := filepath.Join(remoteParentDirectory, integrationBareRemoteDirectoryNameConstant)
	runGitCommand(testInstance, remoteParentDirectory, "init", "--bare", remotePath)
	runGitCommand(testInstance, repositoryPath, "remote", "add", "origin", remotePath)
	return remotePath
}

func countCommits(testInstance *testing.T, repositoryPath string) string {
	testInstance.Helper()

	return runGitCommand(testInstance, repositoryPath, "rev-list", "--count", "HEAD")
}
