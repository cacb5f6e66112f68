package tests

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	workflowDefaultBranchNameConstant = "main"
	workflowDirectoryFlagConstant     = "-C"
	workflowSubtestNameTemplate       = "%d_%s"
)

func TestSaveIntegrationSkipsCleanWorktree(testInstance *testing.T) {
	requireGitAvailable(testInstance)

	repositoryPath := initializeRepository(testInstance, workflowDefaultBranchNameConstant)
	commitFile(testInstance, repositoryPath, "notes.txt", "notes\n", "initial commit")

	outputText, exitCode := runGritCommand(testInstance, []string{workflowDirectoryFlagConstant, repositoryPath, "save"}, nil)

	require.Equal(testInstance, 0, exitCode, outputText)
	require.Contains(testInstance, outputText, "No changes to save")
	require.Equal(testInstance, "1", countCommits(testInstance, repositoryPath))
}

func TestSaveIntegrationCommitsAndConfiguresUpstream(testInstance *testing.T) {
	requireGitAvailable(testInstance)

	repositoryPath := initializeRepository(testInstance, workflowDefaultBranchNameConstant)
	commitFile(testInstance, repositoryPath, "notes.txt", "notes\n", "initial commit")
	createBareRemote(testInstance, repositoryPath)

	writeError := os.WriteFile(filepath.Join(repositoryPath, "feature.txt"), []byte("feature\n"), 0o644)
	require.NoError(testInstance, writeError)

	outputText, exitCode := runGritCommand(testInstance, []string{workflowDirectoryFlagConstant, repositoryPath, "save", "Add feature notes"}, nil)

	require.Equal(testInstance, 0, exitCode, outputText)
	require.Contains(testInstance, outputText, "Saved changes with message \"Add feature notes\"")
	require.Contains(testInstance, outputText, "configured upstream tracking")
	require.Equal(testInstance, "2", countCommits(testInstance, repositoryPath))

	remoteHeads := runGitCommand(testInstance, repositoryPath, "ls-remote", "--heads", "origin", workflowDefaultBranchNameConstant)
	require.NotEmpty(testInstance, remoteHeads)
}

func TestBranchIntegrationCreatesThenSwitches(testInstance *testing.T) {
	requireGitAvailable(testInstance)

	repositoryPath := initializeRepository(testInstance, workflowDefaultBranchNameConstant)
	commitFile(testInstance, repositoryPath, "notes.txt", "notes\n", "initial commit")
	createBareRemote(testInstance, repositoryPath)

	createdOutput, createdExitCode := runGritCommand(testInstance, []string{workflowDirectoryFlagConstant, repositoryPath, "branch", "feature-login"}, nil)
	require.Equal(testInstance, 0, createdExitCode, createdOutput)
	require.Contains(testInstance, createdOutput, "Created branch \"feature-login\"")

	runGitCommand(testInstance, repositoryPath, "checkout", workflowDefaultBranchNameConstant)

	switchedOutput, switchedExitCode := runGritCommand(testInstance, []string{workflowDirectoryFlagConstant, repositoryPath, "branch", "feature-login"}, nil)
	require.Equal(testInstance, 0, switchedExitCode, switchedOutput)
	require.Contains(testInstance, switchedOutput, "Switched to branch \"feature-login\"")

	branchListing := runGitCommand(testInstance, repositoryPath, "branch", "--list", "feature-login")
	require.Len(testInstance, strings.Split(branchListing, "\n"), 1)
}

func TestLogIntegrationHonorsRequestedCount(testInstance *testing.T) {
	requireGitAvailable(testInstance)

	repositoryPath := initializeRepository(testInstance, workflowDefaultBranchNameConstant)
	subjects := []string{"commit-one", "commit-two", "commit-three", "commit-four", "commit-five", "commit-six"}
	for subjectIndex, subject := range subjects {
		commitFile(testInstance, repositoryPath, fmt.Sprintf("file-%d.txt", subjectIndex), subject+"\n", subject)
	}

	limitedOutput, limitedExitCode := runGritCommand(testInstance, []string{workflowDirectoryFlagConstant, repositoryPath, "log", "2"}, nil)
	require.Equal(testInstance, 0, limitedExitCode, limitedOutput)
	require.Contains(testInstance, limitedOutput, "commit-six")
	require.Contains(testInstance, limitedOutput, "commit-five")
	require.NotContains(testInstance, limitedOutput, "commit-four")

	defaultOutput, defaultExitCode := runGritCommand(testInstance, []string{workflowDirectoryFlagConstant, repositoryPath, "log"}, nil)
	require.Equal(testInstance, 0, defaultExitCode, defaultOutput)
	require.Contains(testInstance, defaultOutput, "commit-two")
	require.NotContains(testInstance, defaultOutput, "commit-one\n")
}

func TestStatusIntegrationSummarizesRepository(testInstance *testing.T) {
	requireGitAvailable(testInstance)

	repositoryPath := initializeRepository(testInstance, workflowDefaultBranchNameConstant)
	commitFile(testInstance, repositoryPath, "notes.txt", "notes\n", "initial commit")

	cleanOutput, cleanExitCode := runGritCommand(testInstance, []string{workflowDirectoryFlagConstant, repositoryPath, "status"}, nil)
	require.Equal(testInstance, 0, cleanExitCode, cleanOutput)
	require.Contains(testInstance, cleanOutput, "On branch "+workflowDefaultBranchNameConstant)
	require.Contains(testInstance, cleanOutput, "No upstream configured")
	require.Contains(testInstance, cleanOutput, "Working tree clean")

	writeError := os.WriteFile(filepath.Join(repositoryPath, "draft.txt"), []byte("draft\n"), 0o644)
	require.NoError(testInstance, writeError)

	dirtyOutput, dirtyExitCode := runGritCommand(testInstance, []string{workflowDirectoryFlagConstant, repositoryPath, "status"}, nil)
	require.Equal(testInstance, 0, dirtyExitCode, dirtyOutput)
	require.Contains(testInstance, dirtyOutput, "untracked: 1")
}

func TestSyncIntegrationPullsResolvedDefaultBranch(testInstance *testing.T) {
	requireGitAvailable(testInstance)

	testCases := []struct {
		name              string
		defaultBranchName string
	}{
		{
			name:              "prefers_main_without_remote_master",
			defaultBranchName: "main",
		},
		{
			name:              "prefers_master_when_remote_ref_exists",
			defaultBranchName: "master",
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(workflowSubtestNameTemplate, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			repositoryPath := initializeRepository(testInstance, testCase.defaultBranchName)
			commitFile(testInstance, repositoryPath, "notes.txt", "notes\n", "initial commit")
			createBareRemote(testInstance, repositoryPath)
			runGitCommand(testInstance, repositoryPath, "push", "--set-upstream", "origin", testCase.defaultBranchName)

			outputText, exitCode := runGritCommand(testInstance, []string{workflowDirectoryFlagConstant, repositoryPath, "sync"}, nil)

			require.Equal(testInstance, 0, exitCode, outputText)
			require.Contains(testInstance, outputText, fmt.Sprintf("Pulled latest %s from origin", testCase.defaultBranchName))
		})
	}
}

func TestSyncIntegrationRebasesFeatureBranch(testInstance *testing.T) {
	requireGitAvailable(testInstance)

	repositoryPath := initializeRepository(testInstance, workflowDefaultBranchNameConstant)
	commitFile(testInstance, repositoryPath, "notes.txt", "notes\n", "initial commit")
	createBareRemote(testInstance, repositoryPath)
	runGitCommand(testInstance, repositoryPath, "push", "--set-upstream", "origin", workflowDefaultBranchNameConstant)
	runGitCommand(testInstance, repositoryPath, "checkout", "-b", "feature-sync")

	outputText, exitCode := runGritCommand(testInstance, []string{workflowDirectoryFlagConstant, repositoryPath, "sync"}, nil)

	require.Equal(testInstance, 0, exitCode, outputText)
	require.Contains(testInstance, outputText, "Rebased feature-sync onto origin/"+workflowDefaultBranchNameConstant)
}

func TestCleanIntegrationRequiresTwoConfirmations(testInstance *testing.T) {
	requireGitAvailable(testInstance)

	testCases := []struct {
		name              string
		confirmationInput string
		expectedMessage   string
		expectFileRemoved bool
	}{
		{
			name:              "decline_first_prompt",
			confirmationInput: "n\n",
			expectedMessage:   "Clean aborted",
			expectFileRemoved: false,
		},
		{
			name:              "decline_second_prompt",
			confirmationInput: "y\nn\n",
			expectedMessage:   "Clean aborted",
			expectFileRemoved: false,
		},
		{
			name:              "affirm_both_prompts",
			confirmationInput: "y\ny\n",
			expectedMessage:   "Removed untracked files and directories",
			expectFileRemoved: true,
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(workflowSubtestNameTemplate, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			repositoryPath := initializeRepository(testInstance, workflowDefaultBranchNameConstant)
			commitFile(testInstance, repositoryPath, "notes.txt", "notes\n", "initial commit")

			untrackedPath := filepath.Join(repositoryPath, "scratch.txt")
			writeError := os.WriteFile(untrackedPath, []byte("scratch\n"), 0o644)
			require.NoError(testInstance, writeError)

			outputText, exitCode := runGritCommand(
				testInstance,
				[]string{workflowDirectoryFlagConstant, repositoryPath, "clean"},
				strings.NewReader(testCase.confirmationInput),
			)

			require.Equal(testInstance, 0, exitCode, outputText)
			require.Contains(testInstance, outputText, testCase.expectedMessage)

			_, statError := os.Stat(untrackedPath)
			if testCase.expectFileRemoved {
				require.True(testInstance, os.IsNotExist(statError), outputText)
			} else {
				require.NoError(testInstance, statError, outputText)
			}
		})
	}
}

func TestReleaseIntegrationDryRunNormalizesVersion(testInstance *testing.T) {
	requireGitAvailable(testInstance)

	testCases := []struct {
		name             string
		requestedVersion string
		expectedTagName  string
	}{
		{
			name:             "adds_missing_prefix",
			requestedVersion: "1.2.3",
			expectedTagName:  "v1.2.3",
		},
		{
			name:             "keeps_existing_prefix",
			requestedVersion: "v2.0.0",
			expectedTagName:  "v2.0.0",
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(workflowSubtestNameTemplate, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			repositoryPath := initializeRepository(testInstance, workflowDefaultBranchNameConstant)
			commitFile(testInstance, repositoryPath, "notes.txt", "notes\n", "initial commit")

			outputText, exitCode := runGritCommand(testInstance, []string{workflowDirectoryFlagConstant, repositoryPath, "release", testCase.requestedVersion, "--dry-run"}, nil)

			require.Equal(testInstance, 0, exitCode, outputText)
			require.Contains(testInstance, outputText, "DRY RUN: would create annotated tag "+testCase.expectedTagName)
			require.Empty(testInstance, runGitCommand(testInstance, repositoryPath, "tag"))
		})
	}
}

func TestReleaseIntegrationCreatesAndPushesTag(testInstance *testing.T) {
	requireGitAvailable(testInstance)
	requireGitHubCLIUnauthenticated(testInstance)

	repositoryPath := initializeRepository(testInstance, workflowDefaultBranchNameConstant)
	commitFile(testInstance, repositoryPath, "notes.txt", "notes\n", "initial commit")
	createBareRemote(testInstance, repositoryPath)
	runGitCommand(testInstance, repositoryPath, "push", "--set-upstream", "origin", workflowDefaultBranchNameConstant)

	outputText, exitCode := runGritCommand(testInstance, []string{workflowDirectoryFlagConstant, repositoryPath, "release", "0.1.0", "First cut"}, nil)

	require.Equal(testInstance, 0, exitCode, outputText)
	require.Contains(testInstance, outputText, "Created tag v0.1.0 and pushed it to origin")
	require.Contains(testInstance, outputText, "Skipped GitHub release:")
	require.Equal(testInstance, "v0.1.0", runGitCommand(testInstance, repositoryPath, "tag"))

	remoteTags := runGitCommand(testInstance, repositoryPath, "ls-remote", "--tags", "origin")
	require.Contains(testInstance, remoteTags, "refs/tags/v0.1.0")
}

func TestInitIntegrationCreatesRepositoryWithTemplates(testInstance *testing.T) {
	requireGitAvailable(testInstance)
	requireGitHubCLIUnauthenticated(testInstance)

	workingDirectory := testInstance.TempDir()

	outputText, exitCode := runGritCommand(testInstance, []string{workflowDirectoryFlagConstant, workingDirectory, "init", "myproject"}, nil)

	require.Equal(testInstance, 0, exitCode, outputText)
	require.Contains(testInstance, outputText, "Initialized repository \"myproject\"")

	_, gitignoreStatError := os.Stat(filepath.Join(workingDirectory, ".gitignore"))
	require.NoError(testInstance, gitignoreStatError)
	_, readmeStatError := os.Stat(filepath.Join(workingDirectory, "README.md"))
	require.NoError(testInstance, readmeStatError)
	require.Equal(testInstance, "1", countCommits(testInstance, workingDirectory))
}

func TestCloneIntegrationDerivesDirectoryAndConfiguresPulls(testInstance *testing.T) {
	requireGitAvailable(testInstance)

	sourceRepositoryPath := initializeRepository(testInstance, workflowDefaultBranchNameConstant)
	commitFile(testInstance, sourceRepositoryPath, "notes.txt", "notes\n", "initial commit")

	bareParentDirectory := testInstance.TempDir()
	bareRepositoryPath := filepath.Join(bareParentDirectory, "project.git")
	runGitCommand(testInstance, bareParentDirectory, "clone", "--bare", sourceRepositoryPath, bareRepositoryPath)

	workspaceDirectory := testInstance.TempDir()
	remoteURL := "file://" + bareRepositoryPath

	outputText, exitCode := runGritCommand(testInstance, []string{workflowDirectoryFlagConstant, workspaceDirectory, "clone", remoteURL}, nil)

	require.Equal(testInstance, 0, exitCode, outputText)
	require.Contains(testInstance, outputText, "Cloned")

	clonedRepositoryPath := filepath.Join(workspaceDirectory, "project")
	require.Equal(testInstance, "true", runGitCommand(testInstance, clonedRepositoryPath, "config", "--get", "pull.rebase"))
	require.Equal(testInstance, "true", runGitCommand(testInstance, clonedRepositoryPath, "config", "--get", "fetch.prune"))
}
