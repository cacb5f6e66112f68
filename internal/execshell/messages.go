package execshell

import (
	"fmt"
	"strings"
)

type messageStage int

const (
	messageStageStart messageStage = iota
	messageStageSuccess
	messageStageFailure
	messageStageExecutionFailure
)

const (
	genericStartTemplateConstant            = "Running %s"
	genericSuccessTemplateConstant          = "Completed %s"
	genericFailureTemplateConstant          = "%s failed with exit code %d%s"
	genericExecutionFailureTemplateConstant = "%s failed: %s"
	commandLabelTemplateConstant            = "%s%s"
	workingDirectorySuffixTemplateConstant  = " (in %s)"
	commandArgumentsJoinSeparatorConstant   = " "
	standardErrorSuffixTemplateConstant     = ": %s"
	unknownFailureMessageConstant           = "unknown error"
	emptyStringConstant                     = ""
	defaultWorkingDirectoryLabelConstant    = "current directory"
	fallbackUnknownValueLabelConstant       = "unknown"
)

const (
	gitInitSubcommandNameConstant     = "init"
	gitAddSubcommandNameConstant      = "add"
	gitCommitSubcommandNameConstant   = "commit"
	gitPushSubcommandNameConstant     = "push"
	gitFetchSubcommandNameConstant    = "fetch"
	gitPullSubcommandNameConstant     = "pull"
	gitRebaseSubcommandNameConstant   = "rebase"
	gitTagSubcommandNameConstant      = "tag"
	gitLogSubcommandNameConstant      = "log"
	gitStatusSubcommandNameConstant   = "status"
	gitStashSubcommandNameConstant    = "stash"
	gitCleanSubcommandNameConstant    = "clean"
	gitCloneSubcommandNameConstant    = "clone"
	gitConfigSubcommandNameConstant   = "config"
	gitCheckoutSubcommandNameConstant = "checkout"
	gitBranchSubcommandNameConstant   = "branch"
	gitShowRefSubcommandNameConstant  = "show-ref"
	gitLSRemoteSubcommandNameConstant = "ls-remote"
	gitRevParseSubcommandNameConstant = "rev-parse"
	gitRevListSubcommandNameConstant  = "rev-list"
	gitDescribeSubcommandNameConstant = "describe"

	gitMessageFlagConstant         = "-m"
	gitAllFlagConstant             = "--all"
	gitAllShortFlagConstant        = "-A"
	gitSetUpstreamFlagConstant     = "--set-upstream"
	gitCreateBranchFlagConstant    = "-b"
	gitAbbrevRefFlagConstant       = "--abbrev-ref"
	gitSymbolicFullNameConstant    = "--symbolic-full-name"
	gitUpstreamReferenceConstant   = "@{u}"
	gitHeadReferenceConstant       = "HEAD"
	gitAnnotatedTagFlagConstant    = "-a"
	gitCountFlagConstant           = "-n"
	gitDryRunCleanArgumentConstant = "-dn"
	gitAbortFlagConstant           = "--abort"
	gitDepthFlagPrefixConstant     = "--depth"
	gitStashListArgumentConstant   = "list"

	gitLocalBranchRefPrefixConstant = "refs/heads/"
)

const (
	gitInitStartTemplateConstant              = "Initializing repository in %s"
	gitInitSuccessTemplateConstant            = "Initialized repository in %s"
	gitInitFailureTemplateConstant            = "Failed to initialize repository in %s (exit code %d%s)"
	gitInitExecutionFailureTemplateConstant   = "Unable to initialize repository in %s: %s"
	gitAddStartTemplateConstant               = "Staging %s in %s"
	gitAddSuccessTemplateConstant             = "Staged %s in %s"
	gitAddFailureTemplateConstant             = "Failed to stage %s in %s (exit code %d%s)"
	gitAddExecutionFailureTemplateConstant    = "Unable to stage %s in %s: %s"
	gitAddAllChangesLabelConstant             = "all changes"
	gitCommitStartTemplateConstant            = "Creating commit in %s with message %q"
	gitCommitSuccessTemplateConstant          = "Created commit in %s with message %q"
	gitCommitFailureTemplateConstant          = "Failed to create commit in %s with message %q (exit code %d%s)"
	gitCommitExecutionFailureTemplateConstant = "Unable to create commit in %s with message %q: %s"
	gitPushStartTemplateConstant              = "Pushing %s to %s from %s"
	gitPushSuccessTemplateConstant            = "Pushed %s to %s from %s"
	gitPushFailureTemplateConstant            = "Failed to push %s to %s from %s (exit code %d%s)"
	gitPushExecutionFailureTemplateConstant   = "Unable to push %s to %s from %s: %s"
	gitPushUpstreamStartTemplateConstant      = "Pushing %s to %s with upstream tracking from %s"
	gitPushUpstreamSuccessTemplateConstant    = "Pushed %s to %s with upstream tracking from %s"
	gitPushPlainStartTemplateConstant         = "Pushing current branch from %s"
	gitPushPlainSuccessTemplateConstant       = "Pushed current branch from %s"
	gitPushPlainFailureTemplateConstant       = "Failed to push current branch from %s (exit code %d%s)"
	gitPushPlainExecutionFailureTemplateConstant      = "Unable to push current branch from %s: %s"
	gitPushCurrentBranchLabelConstant         = "current branch"
	gitFetchStartTemplateConstant             = "Fetching from %s in %s"
	gitFetchSuccessTemplateConstant           = "Fetched from %s in %s"
	gitFetchFailureTemplateConstant           = "Failed to fetch from %s in %s (exit code %d%s)"
	gitFetchExecutionFailureTemplateConstant  = "Unable to fetch from %s in %s: %s"
	gitFetchAllRemotesLabelConstant           = "all remotes"
	gitPullStartTemplateConstant              = "Pulling %s from %s into %s"
	gitPullSuccessTemplateConstant            = "Pulled %s from %s into %s"
	gitPullFailureTemplateConstant            = "Failed to pull %s from %s into %s (exit code %d%s)"
	gitPullExecutionFailureTemplateConstant   = "Unable to pull %s from %s into %s: %s"
	gitPullPlainStartTemplateConstant         = "Pulling updates into %s"
	gitPullPlainSuccessTemplateConstant       = "Pulled updates into %s"
	gitPullPlainFailureTemplateConstant       = "Failed to pull updates into %s (exit code %d%s)"
	gitPullPlainExecutionFailureTemplateConstant      = "Unable to pull updates into %s: %s"
	gitRebaseStartTemplateConstant            = "Rebasing work in %s onto %s"
	gitRebaseSuccessTemplateConstant          = "Rebased work in %s onto %s"
	gitRebaseFailureTemplateConstant          = "Failed to rebase work in %s onto %s (exit code %d%s)"
	gitRebaseExecutionFailureTemplateConstant = "Unable to rebase work in %s onto %s: %s"
	gitRebaseAbortStartTemplateConstant       = "Aborting rebase in %s"
	gitRebaseAbortSuccessTemplateConstant     = "Aborted rebase in %s"
	gitRebaseAbortFailureTemplateConstant     = "Failed to abort rebase in %s (exit code %d%s)"
	gitRebaseAbortExecutionFailureTemplateConstant    = "Unable to abort rebase in %s: %s"
	gitTagStartTemplateConstant               = "Creating annotated tag %s in %s"
	gitTagSuccessTemplateConstant             = "Created annotated tag %s in %s"
	gitTagFailureTemplateConstant             = "Failed to create annotated tag %s in %s (exit code %d%s)"
	gitTagExecutionFailureTemplateConstant    = "Unable to create annotated tag %s in %s: %s"
	gitLogStartTemplateConstant               = "Collecting the last %s commits in %s"
	gitLogSuccessTemplateConstant             = "Collected the last %s commits in %s"
	gitLogFailureTemplateConstant             = "Failed to collect the last %s commits in %s (exit code %d%s)"
	gitLogExecutionFailureTemplateConstant    = "Unable to collect the last %s commits in %s: %s"
	gitStatusStartTemplateConstant            = "Reviewing working tree status in %s"
	gitStatusSuccessTemplateConstant          = "Collected working tree status for %s"
	gitStatusFailureTemplateConstant          = "Failed to review working tree status in %s (exit code %d%s)"
	gitStatusExecutionFailureTemplateConstant    = "Unable to review working tree status in %s: %s"
	gitStashListStartTemplateConstant         = "Counting stash entries in %s"
	gitStashListSuccessTemplateConstant       = "Counted stash entries in %s"
	gitStashListFailureTemplateConstant       = "Failed to count stash entries in %s (exit code %d%s)"
	gitStashListExecutionFailureTemplateConstant      = "Unable to count stash entries in %s: %s"
	gitCleanPreviewStartTemplateConstant      = "Previewing untracked paths to remove in %s"
	gitCleanPreviewSuccessTemplateConstant    = "Previewed untracked paths to remove in %s"
	gitCleanPreviewFailureTemplateConstant    = "Failed to preview untracked paths in %s (exit code %d%s)"
	gitCleanPreviewExecutionFailureTemplateConstant   = "Unable to preview untracked paths in %s: %s"
	gitCleanRemoveStartTemplateConstant       = "Removing untracked paths in %s"
	gitCleanRemoveSuccessTemplateConstant     = "Removed untracked paths in %s"
	gitCleanRemoveFailureTemplateConstant     = "Failed to remove untracked paths in %s (exit code %d%s)"
	gitCleanRemoveExecutionFailureTemplateConstant    = "Unable to remove untracked paths in %s: %s"
	gitCloneStartTemplateConstant             = "Cloning %s into %s"
	gitCloneSuccessTemplateConstant           = "Cloned %s into %s"
	gitCloneFailureTemplateConstant           = "Failed to clone %s into %s (exit code %d%s)"
	gitCloneExecutionFailureTemplateConstant  = "Unable to clone %s into %s: %s"
	gitCloneDerivedDirectoryLabelConstant     = "a directory derived from the URL"
	gitConfigStartTemplateConstant            = "Setting %s to %s in %s"
	gitConfigSuccessTemplateConstant          = "Set %s to %s in %s"
	gitConfigFailureTemplateConstant          = "Failed to set %s to %s in %s (exit code %d%s)"
	gitConfigExecutionFailureTemplateConstant    = "Unable to set %s to %s in %s: %s"
	gitCheckoutStartTemplateConstant          = "Switching %s to branch %s"
	gitCheckoutSuccessTemplateConstant        = "%s now on branch %s"
	gitCheckoutFailureTemplateConstant        = "Failed to switch %s to branch %s (exit code %d%s)"
	gitCheckoutExecutionFailureTemplateConstant  = "Unable to switch %s to branch %s: %s"
	gitCheckoutCreateStartTemplateConstant    = "Creating and switching to branch %s in %s"
	gitCheckoutCreateSuccessTemplateConstant  = "Created and switched to branch %s in %s"
	gitCheckoutCreateFailureTemplateConstant  = "Failed to create branch %s in %s (exit code %d%s)"
	gitCheckoutCreateExecutionFailureTemplateConstant = "Unable to create branch %s in %s: %s"
	gitBranchListStartTemplateConstant        = "Listing branches in %s"
	gitBranchListSuccessTemplateConstant      = "Listed branches in %s"
	gitBranchListFailureTemplateConstant      = "Failed to list branches in %s (exit code %d%s)"
	gitBranchListExecutionFailureTemplateConstant     = "Unable to list branches in %s: %s"
	gitShowRefStartTemplateConstant           = "Checking for local branch %s in %s"
	gitShowRefFoundTemplateConstant           = "Local branch %s exists in %s"
	gitShowRefFailureTemplateConstant         = "Local branch %s was not found in %s (exit code %d%s)"
	gitShowRefExecutionFailureTemplateConstant   = "Unable to check for local branch %s in %s: %s"
	gitLSRemoteStartTemplateConstant          = "Checking for %s on %s"
	gitLSRemoteSuccessTemplateConstant        = "Checked for %s on %s"
	gitLSRemoteFailureTemplateConstant        = "Failed to check for %s on %s (exit code %d%s)"
	gitLSRemoteExecutionFailureTemplateConstant  = "Unable to check for %s on %s: %s"
	gitLSRemoteAnyReferenceLabelConstant      = "remote references"
	gitCurrentBranchStartTemplateConstant     = "Identifying current branch in %s"
	gitCurrentBranchSuccessTemplateConstant   = "Current branch in %s is %s"
	gitCurrentBranchDetachedTemplateConstant  = "%s is in a detached HEAD state"
	gitCurrentBranchFailureTemplateConstant   = "Failed to identify current branch in %s (exit code %d%s)"
	gitCurrentBranchExecutionFailureTemplateConstant  = "Unable to identify current branch in %s: %s"
	gitUpstreamStartTemplateConstant          = "Checking upstream branch configuration in %s"
	gitUpstreamSuccessTemplateConstant        = "Upstream branch in %s is %s"
	gitUpstreamMissingTemplateConstant        = "No upstream branch configured in %s"
	gitUpstreamFailureTemplateConstant        = "No upstream branch configured in %s (exit code %d%s)"
	gitUpstreamExecutionFailureTemplateConstant  = "Unable to check upstream branch configuration in %s: %s"
	gitRevListStartTemplateConstant           = "Comparing local and upstream history in %s"
	gitRevListSuccessTemplateConstant         = "Compared local and upstream history in %s"
	gitRevListFailureTemplateConstant         = "Failed to compare local and upstream history in %s (exit code %d%s)"
	gitRevListExecutionFailureTemplateConstant   = "Unable to compare local and upstream history in %s: %s"
	gitDescribeStartTemplateConstant          = "Finding the latest tag in %s"
	gitDescribeSuccessTemplateConstant        = "Latest tag in %s is %s"
	gitDescribeMissingTemplateConstant        = "No tags found in %s"
	gitDescribeFailureTemplateConstant        = "No earlier tag found in %s (exit code %d%s)"
	gitDescribeExecutionFailureTemplateConstant  = "Unable to find the latest tag in %s: %s"
)

const (
	githubAuthSubcommandNameConstant    = "auth"
	githubAuthStatusSubcommandConstant  = "status"
	githubRepoSubcommandNameConstant    = "repo"
	githubPullRequestSubcommandConstant = "pr"
	githubReleaseSubcommandNameConstant = "release"
	githubCreateSubcommandNameConstant  = "create"
	githubTitleFlagConstant             = "--title"
)

const (
	githubAuthStatusStartTemplateConstant       = "Checking GitHub CLI authentication"
	githubAuthStatusSuccessTemplateConstant     = "GitHub CLI is authenticated"
	githubAuthStatusFailureTemplateConstant     = "GitHub CLI is not authenticated (exit code %d%s)"
	githubAuthStatusExecutionFailureTemplateConstant    = "Unable to check GitHub CLI authentication: %s"
	githubRepoCreateStartTemplateConstant       = "Creating GitHub repository %s"
	githubRepoCreateSuccessTemplateConstant     = "Created GitHub repository %s"
	githubRepoCreateFailureTemplateConstant     = "Failed to create GitHub repository %s (exit code %d%s)"
	githubRepoCreateExecutionFailureTemplateConstant    = "Unable to create GitHub repository %s: %s"
	githubPullRequestStartTemplateConstant      = "Opening pull request %q"
	githubPullRequestSuccessTemplateConstant    = "Opened pull request %q"
	githubPullRequestFailureTemplateConstant    = "Failed to open pull request %q (exit code %d%s)"
	githubPullRequestExecutionFailureTemplateConstant   = "Unable to open pull request %q: %s"
	githubReleaseCreateStartTemplateConstant    = "Publishing GitHub release %s"
	githubReleaseCreateSuccessTemplateConstant  = "Published GitHub release %s"
	githubReleaseCreateFailureTemplateConstant  = "Failed to publish GitHub release %s (exit code %d%s)"
	githubReleaseCreateExecutionFailureTemplateConstant = "Unable to publish GitHub release %s: %s"
)

// CommandMessageFormatter builds human-readable messages for command lifecycle events.
type CommandMessageFormatter struct{}

// BuildStartedMessage formats the message describing a command about to run.
func (formatter CommandMessageFormatter) BuildStartedMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageStart)
}

// BuildSuccessMessage formats the message describing a completed command with a zero exit code.
func (formatter CommandMessageFormatter) BuildSuccessMessage(command ShellCommand, result ExecutionResult) string {
	return formatter.buildMessage(command, result, nil, messageStageSuccess)
}

// BuildFailureMessage formats the message describing a command that returned a non-zero exit code.
func (formatter CommandMessageFormatter) BuildFailureMessage(command ShellCommand, result ExecutionResult) string {
	return formatter.buildMessage(command, result, nil, messageStageFailure)
}

// BuildExecutionFailureMessage formats the message describing an unexpected execution failure.
func (formatter CommandMessageFormatter) BuildExecutionFailureMessage(command ShellCommand, failure error) string {
	return formatter.buildMessage(command, ExecutionResult{}, failure, messageStageExecutionFailure)
}

func (formatter CommandMessageFormatter) buildMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	switch command.Name {
	case CommandGit:
		return formatter.describeGitMessage(command, result, failure, stage)
	case CommandGitHub:
		return formatter.describeGitHubMessage(command, result, failure, stage)
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeGitMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	if len(command.Details.Arguments) == 0 {
		return formatter.buildGenericMessage(command, result, failure, stage)
	}

	subcommand := strings.TrimSpace(command.Details.Arguments[0])
	switch subcommand {
	case gitInitSubcommandNameConstant:
		return formatter.describeGitInitMessage(command, result, failure, stage)
	case gitAddSubcommandNameConstant:
		return formatter.describeGitAddMessage(command, result, failure, stage)
	case gitCommitSubcommandNameConstant:
		return formatter.describeGitCommitMessage(command, result, failure, stage)
	case gitPushSubcommandNameConstant:
		return formatter.describeGitPushMessage(command, result, failure, stage)
	case gitFetchSubcommandNameConstant:
		return formatter.describeGitFetchMessage(command, result, failure, stage)
	case gitPullSubcommandNameConstant:
		return formatter.describeGitPullMessage(command, result, failure, stage)
	case gitRebaseSubcommandNameConstant:
		return formatter.describeGitRebaseMessage(command, result, failure, stage)
	case gitTagSubcommandNameConstant:
		return formatter.describeGitTagMessage(command, result, failure, stage)
	case gitLogSubcommandNameConstant:
		return formatter.describeGitLogMessage(command, result, failure, stage)
	case gitStatusSubcommandNameConstant:
		return formatter.describeGitStatusMessage(command, result, failure, stage)
	case gitStashSubcommandNameConstant:
		return formatter.describeGitStashMessage(command, result, failure, stage)
	case gitCleanSubcommandNameConstant:
		return formatter.describeGitCleanMessage(command, result, failure, stage)
	case gitCloneSubcommandNameConstant:
		return formatter.describeGitCloneMessage(command, result, failure, stage)
	case gitConfigSubcommandNameConstant:
		return formatter.describeGitConfigMessage(command, result, failure, stage)
	case gitCheckoutSubcommandNameConstant:
		return formatter.describeGitCheckoutMessage(command, result, failure, stage)
	case gitBranchSubcommandNameConstant:
		return formatter.describeGitBranchMessage(command, result, failure, stage)
	case gitShowRefSubcommandNameConstant:
		return formatter.describeGitShowRefMessage(command, result, failure, stage)
	case gitLSRemoteSubcommandNameConstant:
		return formatter.describeGitLSRemoteMessage(command, result, failure, stage)
	case gitRevParseSubcommandNameConstant:
		return formatter.describeGitRevParseMessage(command, result, failure, stage)
	case gitRevListSubcommandNameConstant:
		return formatter.describeGitRevListMessage(command, result, failure, stage)
	case gitDescribeSubcommandNameConstant:
		return formatter.describeGitDescribeMessage(command, result, failure, stage)
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeGitInitMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	workingDirectory := formatter.describeWorkingDirectory(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitInitStartTemplateConstant, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitInitSuccessTemplateConstant, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(gitInitFailureTemplateConstant, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(gitInitExecutionFailureTemplateConstant, workingDirectory, formatter.describeFailure(failure))
	}
}

func (formatter CommandMessageFormatter) describeGitAddMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	workingDirectory := formatter.describeWorkingDirectory(command)
	stagedTarget := gitAddAllChangesLabelConstant
	if !containsArgument(command.Details.Arguments, gitAllFlagConstant) && !containsArgument(command.Details.Arguments, gitAllShortFlagConstant) {
		stagedTarget = ensureValue(argumentAtIndex(command.Details.Arguments, 1), gitAddAllChangesLabelConstant)
	}

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitAddStartTemplateConstant, stagedTarget, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitAddSuccessTemplateConstant, stagedTarget, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(gitAddFailureTemplateConstant, stagedTarget, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(gitAddExecutionFailureTemplateConstant, stagedTarget, workingDirectory, formatter.describeFailure(failure))
	}
}

func (formatter CommandMessageFormatter) describeGitCommitMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	workingDirectory := formatter.describeWorkingDirectory(command)
	commitMessage := extractFlagValue(command.Details.Arguments, gitMessageFlagConstant)

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitCommitStartTemplateConstant, workingDirectory, commitMessage)
	case messageStageSuccess:
		return fmt.Sprintf(gitCommitSuccessTemplateConstant, workingDirectory, commitMessage)
	case messageStageFailure:
		return fmt.Sprintf(gitCommitFailureTemplateConstant, workingDirectory, commitMessage, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(gitCommitExecutionFailureTemplateConstant, workingDirectory, commitMessage, formatter.describeFailure(failure))
	}
}

func (formatter CommandMessageFormatter) describeGitPushMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	workingDirectory := formatter.describeWorkingDirectory(command)

	if containsArgument(arguments, gitSetUpstreamFlagConstant) {
		remoteName := ensureValue(argumentAfterFlag(arguments, gitSetUpstreamFlagConstant, 1), fallbackUnknownValueLabelConstant)
		branchName := ensureValue(argumentAfterFlag(arguments, gitSetUpstreamFlagConstant, 2), fallbackUnknownValueLabelConstant)
		switch stage {
		case messageStageStart:
			return fmt.Sprintf(gitPushUpstreamStartTemplateConstant, branchName, remoteName, workingDirectory)
		case messageStageSuccess:
			return fmt.Sprintf(gitPushUpstreamSuccessTemplateConstant, branchName, remoteName, workingDirectory)
		case messageStageFailure:
			return fmt.Sprintf(gitPushFailureTemplateConstant, branchName, remoteName, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
		default:
			return fmt.Sprintf(gitPushExecutionFailureTemplateConstant, branchName, remoteName, workingDirectory, formatter.describeFailure(failure))
		}
	}

	if len(arguments) >= 3 {
		remoteName := strings.TrimSpace(arguments[1])
		referenceName := strings.TrimSpace(arguments[2])
		switch stage {
		case messageStageStart:
			return fmt.Sprintf(gitPushStartTemplateConstant, referenceName, remoteName, workingDirectory)
		case messageStageSuccess:
			return fmt.Sprintf(gitPushSuccessTemplateConstant, referenceName, remoteName, workingDirectory)
		case messageStageFailure:
			return fmt.Sprintf(gitPushFailureTemplateConstant, referenceName, remoteName, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
		default:
			return fmt.Sprintf(gitPushExecutionFailureTemplateConstant, referenceName, remoteName, workingDirectory, formatter.describeFailure(failure))
		}
	}

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitPushPlainStartTemplateConstant, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitPushPlainSuccessTemplateConstant, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(gitPushPlainFailureTemplateConstant, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(gitPushPlainExecutionFailureTemplateConstant, workingDirectory, formatter.describeFailure(failure))
	}
}

func (formatter CommandMessageFormatter) describeGitFetchMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	workingDirectory := formatter.describeWorkingDirectory(command)
	fetchSource := gitFetchAllRemotesLabelConstant
	positionalArguments := collectPositionalArguments(command.Details.Arguments[1:])
	if len(positionalArguments) > 0 {
		fetchSource = positionalArguments[0]
	}

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitFetchStartTemplateConstant, fetchSource, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitFetchSuccessTemplateConstant, fetchSource, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(gitFetchFailureTemplateConstant, fetchSource, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(gitFetchExecutionFailureTemplateConstant, fetchSource, workingDirectory, formatter.describeFailure(failure))
	}
}

func (formatter CommandMessageFormatter) describeGitPullMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	workingDirectory := formatter.describeWorkingDirectory(command)

	if len(arguments) >= 3 {
		remoteName := strings.TrimSpace(arguments[1])
		branchName := strings.TrimSpace(arguments[2])
		switch stage {
		case messageStageStart:
			return fmt.Sprintf(gitPullStartTemplateConstant, branchName, remoteName, workingDirectory)
		case messageStageSuccess:
			return fmt.Sprintf(gitPullSuccessTemplateConstant, branchName, remoteName, workingDirectory)
		case messageStageFailure:
			return fmt.Sprintf(gitPullFailureTemplateConstant, branchName, remoteName, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
		default:
			return fmt.Sprintf(gitPullExecutionFailureTemplateConstant, branchName, remoteName, workingDirectory, formatter.describeFailure(failure))
		}
	}

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitPullPlainStartTemplateConstant, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitPullPlainSuccessTemplateConstant, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(gitPullPlainFailureTemplateConstant, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(gitPullPlainExecutionFailureTemplateConstant, workingDirectory, formatter.describeFailure(failure))
	}
}

func (formatter CommandMessageFormatter) describeGitRebaseMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	workingDirectory := formatter.describeWorkingDirectory(command)

	if containsArgument(arguments, gitAbortFlagConstant) {
		switch stage {
		case messageStageStart:
			return fmt.Sprintf(gitRebaseAbortStartTemplateConstant, workingDirectory)
		case messageStageSuccess:
			return fmt.Sprintf(gitRebaseAbortSuccessTemplateConstant, workingDirectory)
		case messageStageFailure:
			return fmt.Sprintf(gitRebaseAbortFailureTemplateConstant, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
		default:
			return fmt.Sprintf(gitRebaseAbortExecutionFailureTemplateConstant, workingDirectory, formatter.describeFailure(failure))
		}
	}

	rebaseTarget := ensureValue(argumentAtIndex(arguments, 1), fallbackUnknownValueLabelConstant)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitRebaseStartTemplateConstant, workingDirectory, rebaseTarget)
	case messageStageSuccess:
		return fmt.Sprintf(gitRebaseSuccessTemplateConstant, workingDirectory, rebaseTarget)
	case messageStageFailure:
		return fmt.Sprintf(gitRebaseFailureTemplateConstant, workingDirectory, rebaseTarget, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(gitRebaseExecutionFailureTemplateConstant, workingDirectory, rebaseTarget, formatter.describeFailure(failure))
	}
}

func (formatter CommandMessageFormatter) describeGitTagMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	workingDirectory := formatter.describeWorkingDirectory(command)
	tagName := ensureValue(argumentAfterFlag(command.Details.Arguments, gitAnnotatedTagFlagConstant, 1), fallbackUnknownValueLabelConstant)

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitTagStartTemplateConstant, tagName, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitTagSuccessTemplateConstant, tagName, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(gitTagFailureTemplateConstant, tagName, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(gitTagExecutionFailureTemplateConstant, tagName, workingDirectory, formatter.describeFailure(failure))
	}
}

func (formatter CommandMessageFormatter) describeGitLogMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	workingDirectory := formatter.describeWorkingDirectory(command)
	commitCount := ensureValue(argumentAfterFlag(command.Details.Arguments, gitCountFlagConstant, 1), fallbackUnknownValueLabelConstant)

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitLogStartTemplateConstant, commitCount, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitLogSuccessTemplateConstant, commitCount, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(gitLogFailureTemplateConstant, commitCount, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(gitLogExecutionFailureTemplateConstant, commitCount, workingDirectory, formatter.describeFailure(failure))
	}
}

func (formatter CommandMessageFormatter) describeGitStatusMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	workingDirectory := formatter.describeWorkingDirectory(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitStatusStartTemplateConstant, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitStatusSuccessTemplateConstant, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(gitStatusFailureTemplateConstant, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(gitStatusExecutionFailureTemplateConstant, workingDirectory, formatter.describeFailure(failure))
	}
}

func (formatter CommandMessageFormatter) describeGitStashMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	if !containsArgument(command.Details.Arguments, gitStashListArgumentConstant) {
		return formatter.buildGenericMessage(command, result, failure, stage)
	}

	workingDirectory := formatter.describeWorkingDirectory(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitStashListStartTemplateConstant, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitStashListSuccessTemplateConstant, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(gitStashListFailureTemplateConstant, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(gitStashListExecutionFailureTemplateConstant, workingDirectory, formatter.describeFailure(failure))
	}
}

func (formatter CommandMessageFormatter) describeGitCleanMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	workingDirectory := formatter.describeWorkingDirectory(command)

	if containsArgument(command.Details.Arguments, gitDryRunCleanArgumentConstant) {
		switch stage {
		case messageStageStart:
			return fmt.Sprintf(gitCleanPreviewStartTemplateConstant, workingDirectory)
		case messageStageSuccess:
			return fmt.Sprintf(gitCleanPreviewSuccessTemplateConstant, workingDirectory)
		case messageStageFailure:
			return fmt.Sprintf(gitCleanPreviewFailureTemplateConstant, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
		default:
			return fmt.Sprintf(gitCleanPreviewExecutionFailureTemplateConstant, workingDirectory, formatter.describeFailure(failure))
		}
	}

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitCleanRemoveStartTemplateConstant, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitCleanRemoveSuccessTemplateConstant, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(gitCleanRemoveFailureTemplateConstant, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(gitCleanRemoveExecutionFailureTemplateConstant, workingDirectory, formatter.describeFailure(failure))
	}
}

func (formatter CommandMessageFormatter) describeGitCloneMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	repositoryURL, targetDirectory := extractClonePositionalArguments(command.Details.Arguments)
	if len(targetDirectory) == 0 {
		targetDirectory = gitCloneDerivedDirectoryLabelConstant
	}

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitCloneStartTemplateConstant, repositoryURL, targetDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitCloneSuccessTemplateConstant, repositoryURL, targetDirectory)
	case messageStageFailure:
		return fmt.Sprintf(gitCloneFailureTemplateConstant, repositoryURL, targetDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(gitCloneExecutionFailureTemplateConstant, repositoryURL, targetDirectory, formatter.describeFailure(failure))
	}
}

func (formatter CommandMessageFormatter) describeGitConfigMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	workingDirectory := formatter.describeWorkingDirectory(command)
	configurationKey := ensureValue(argumentAtIndex(command.Details.Arguments, 1), fallbackUnknownValueLabelConstant)
	configurationValue := ensureValue(argumentAtIndex(command.Details.Arguments, 2), fallbackUnknownValueLabelConstant)

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitConfigStartTemplateConstant, configurationKey, configurationValue, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitConfigSuccessTemplateConstant, configurationKey, configurationValue, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(gitConfigFailureTemplateConstant, configurationKey, configurationValue, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(gitConfigExecutionFailureTemplateConstant, configurationKey, configurationValue, workingDirectory, formatter.describeFailure(failure))
	}
}

func (formatter CommandMessageFormatter) describeGitCheckoutMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	workingDirectory := formatter.describeWorkingDirectory(command)

	if containsArgument(arguments, gitCreateBranchFlagConstant) {
		branchName := ensureValue(argumentAfterFlag(arguments, gitCreateBranchFlagConstant, 1), fallbackUnknownValueLabelConstant)
		switch stage {
		case messageStageStart:
			return fmt.Sprintf(gitCheckoutCreateStartTemplateConstant, branchName, workingDirectory)
		case messageStageSuccess:
			return fmt.Sprintf(gitCheckoutCreateSuccessTemplateConstant, branchName, workingDirectory)
		case messageStageFailure:
			return fmt.Sprintf(gitCheckoutCreateFailureTemplateConstant, branchName, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
		default:
			return fmt.Sprintf(gitCheckoutCreateExecutionFailureTemplateConstant, branchName, workingDirectory, formatter.describeFailure(failure))
		}
	}

	branchName := ensureValue(argumentAtIndex(arguments, 1), fallbackUnknownValueLabelConstant)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitCheckoutStartTemplateConstant, workingDirectory, branchName)
	case messageStageSuccess:
		return fmt.Sprintf(gitCheckoutSuccessTemplateConstant, workingDirectory, branchName)
	case messageStageFailure:
		return fmt.Sprintf(gitCheckoutFailureTemplateConstant, workingDirectory, branchName, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(gitCheckoutExecutionFailureTemplateConstant, workingDirectory, branchName, formatter.describeFailure(failure))
	}
}

func (formatter CommandMessageFormatter) describeGitBranchMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	workingDirectory := formatter.describeWorkingDirectory(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitBranchListStartTemplateConstant, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitBranchListSuccessTemplateConstant, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(gitBranchListFailureTemplateConstant, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(gitBranchListExecutionFailureTemplateConstant, workingDirectory, formatter.describeFailure(failure))
	}
}

func (formatter CommandMessageFormatter) describeGitShowRefMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	workingDirectory := formatter.describeWorkingDirectory(command)
	branchName := fallbackUnknownValueLabelConstant
	for _, argument := range command.Details.Arguments {
		if strings.HasPrefix(argument, gitLocalBranchRefPrefixConstant) {
			branchName = strings.TrimPrefix(argument, gitLocalBranchRefPrefixConstant)
			break
		}
	}

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitShowRefStartTemplateConstant, branchName, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitShowRefFoundTemplateConstant, branchName, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(gitShowRefFailureTemplateConstant, branchName, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(gitShowRefExecutionFailureTemplateConstant, branchName, workingDirectory, formatter.describeFailure(failure))
	}
}

func (formatter CommandMessageFormatter) describeGitLSRemoteMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	remoteName := fallbackUnknownValueLabelConstant
	referenceLabel := gitLSRemoteAnyReferenceLabelConstant

	positionalArguments := collectPositionalArguments(arguments[1:])
	if len(positionalArguments) > 0 {
		remoteName = positionalArguments[0]
	}
	if len(positionalArguments) > 1 {
		referenceLabel = positionalArguments[1]
	}

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitLSRemoteStartTemplateConstant, referenceLabel, remoteName)
	case messageStageSuccess:
		return fmt.Sprintf(gitLSRemoteSuccessTemplateConstant, referenceLabel, remoteName)
	case messageStageFailure:
		return fmt.Sprintf(gitLSRemoteFailureTemplateConstant, referenceLabel, remoteName, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(gitLSRemoteExecutionFailureTemplateConstant, referenceLabel, remoteName, formatter.describeFailure(failure))
	}
}

func (formatter CommandMessageFormatter) describeGitRevParseMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	workingDirectory := formatter.describeWorkingDirectory(command)

	if containsArgument(arguments, gitAbbrevRefFlagConstant) {
		if containsArgument(arguments, gitSymbolicFullNameConstant) && containsArgument(arguments, gitUpstreamReferenceConstant) {
			switch stage {
			case messageStageStart:
				return fmt.Sprintf(gitUpstreamStartTemplateConstant, workingDirectory)
			case messageStageSuccess:
				trimmedOutput := strings.TrimSpace(result.StandardOutput)
				if len(trimmedOutput) == 0 {
					return fmt.Sprintf(gitUpstreamMissingTemplateConstant, workingDirectory)
				}
				return fmt.Sprintf(gitUpstreamSuccessTemplateConstant, workingDirectory, trimmedOutput)
			case messageStageFailure:
				return fmt.Sprintf(gitUpstreamFailureTemplateConstant, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
			default:
				return fmt.Sprintf(gitUpstreamExecutionFailureTemplateConstant, workingDirectory, formatter.describeFailure(failure))
			}
		}

		switch stage {
		case messageStageStart:
			return fmt.Sprintf(gitCurrentBranchStartTemplateConstant, workingDirectory)
		case messageStageSuccess:
			trimmedOutput := strings.TrimSpace(result.StandardOutput)
			if len(trimmedOutput) == 0 || strings.EqualFold(trimmedOutput, gitHeadReferenceConstant) {
				return fmt.Sprintf(gitCurrentBranchDetachedTemplateConstant, workingDirectory)
			}
			return fmt.Sprintf(gitCurrentBranchSuccessTemplateConstant, workingDirectory, trimmedOutput)
		case messageStageFailure:
			return fmt.Sprintf(gitCurrentBranchFailureTemplateConstant, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
		default:
			return fmt.Sprintf(gitCurrentBranchExecutionFailureTemplateConstant, workingDirectory, formatter.describeFailure(failure))
		}
	}

	return formatter.buildGenericMessage(command, result, failure, stage)
}

func (formatter CommandMessageFormatter) describeGitRevListMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	workingDirectory := formatter.describeWorkingDirectory(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitRevListStartTemplateConstant, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitRevListSuccessTemplateConstant, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(gitRevListFailureTemplateConstant, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(gitRevListExecutionFailureTemplateConstant, workingDirectory, formatter.describeFailure(failure))
	}
}

func (formatter CommandMessageFormatter) describeGitDescribeMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	workingDirectory := formatter.describeWorkingDirectory(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitDescribeStartTemplateConstant, workingDirectory)
	case messageStageSuccess:
		trimmedOutput := strings.TrimSpace(result.StandardOutput)
		if len(trimmedOutput) == 0 {
			return fmt.Sprintf(gitDescribeMissingTemplateConstant, workingDirectory)
		}
		return fmt.Sprintf(gitDescribeSuccessTemplateConstant, workingDirectory, trimmedOutput)
	case messageStageFailure:
		return fmt.Sprintf(gitDescribeFailureTemplateConstant, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(gitDescribeExecutionFailureTemplateConstant, workingDirectory, formatter.describeFailure(failure))
	}
}

func (formatter CommandMessageFormatter) describeGitHubMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	if len(arguments) == 0 {
		return formatter.buildGenericMessage(command, result, failure, stage)
	}

	subcommand := strings.TrimSpace(arguments[0])
	switch subcommand {
	case githubAuthSubcommandNameConstant:
		if containsArgument(arguments, githubAuthStatusSubcommandConstant) {
			return formatter.describeGitHubAuthStatusMessage(result, failure, stage)
		}
	case githubRepoSubcommandNameConstant:
		if containsArgument(arguments, githubCreateSubcommandNameConstant) {
			repositoryName := ensureValue(argumentAtIndex(arguments, 2), fallbackUnknownValueLabelConstant)
			return formatter.describeGitHubCreationMessage(
				githubRepoCreateStartTemplateConstant,
				githubRepoCreateSuccessTemplateConstant,
				githubRepoCreateFailureTemplateConstant,
				githubRepoCreateExecutionFailureTemplateConstant,
				repositoryName, result, failure, stage,
			)
		}
	case githubPullRequestSubcommandConstant:
		if containsArgument(arguments, githubCreateSubcommandNameConstant) {
			pullRequestTitle := extractFlagValue(arguments, githubTitleFlagConstant)
			switch stage {
			case messageStageStart:
				return fmt.Sprintf(githubPullRequestStartTemplateConstant, pullRequestTitle)
			case messageStageSuccess:
				return fmt.Sprintf(githubPullRequestSuccessTemplateConstant, pullRequestTitle)
			case messageStageFailure:
				return fmt.Sprintf(githubPullRequestFailureTemplateConstant, pullRequestTitle, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
			default:
				return fmt.Sprintf(githubPullRequestExecutionFailureTemplateConstant, pullRequestTitle, formatter.describeFailure(failure))
			}
		}
	case githubReleaseSubcommandNameConstant:
		if containsArgument(arguments, githubCreateSubcommandNameConstant) {
			tagName := ensureValue(argumentAtIndex(arguments, 2), fallbackUnknownValueLabelConstant)
			return formatter.describeGitHubCreationMessage(
				githubReleaseCreateStartTemplateConstant,
				githubReleaseCreateSuccessTemplateConstant,
				githubReleaseCreateFailureTemplateConstant,
				githubReleaseCreateExecutionFailureTemplateConstant,
				tagName, result, failure, stage,
			)
		}
	}

	return formatter.buildGenericMessage(command, result, failure, stage)
}

func (formatter CommandMessageFormatter) describeGitHubAuthStatusMessage(result ExecutionResult, failure error, stage messageStage) string {
	switch stage {
	case messageStageStart:
		return githubAuthStatusStartTemplateConstant
	case messageStageSuccess:
		return githubAuthStatusSuccessTemplateConstant
	case messageStageFailure:
		return fmt.Sprintf(githubAuthStatusFailureTemplateConstant, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(githubAuthStatusExecutionFailureTemplateConstant, formatter.describeFailure(failure))
	}
}

func (formatter CommandMessageFormatter) describeGitHubCreationMessage(startTemplate string, successTemplate string, failureTemplate string, executionFailureTemplate string, subjectName string, result ExecutionResult, failure error, stage messageStage) string {
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(startTemplate, subjectName)
	case messageStageSuccess:
		return fmt.Sprintf(successTemplate, subjectName)
	case messageStageFailure:
		return fmt.Sprintf(failureTemplate, subjectName, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(executionFailureTemplate, subjectName, formatter.describeFailure(failure))
	}
}

func (formatter CommandMessageFormatter) buildGenericMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	commandLabel := formatter.formatCommandLabel(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(genericStartTemplateConstant, commandLabel)
	case messageStageSuccess:
		return fmt.Sprintf(genericSuccessTemplateConstant, commandLabel)
	case messageStageFailure:
		return fmt.Sprintf(genericFailureTemplateConstant, commandLabel, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(genericExecutionFailureTemplateConstant, commandLabel, formatter.describeFailure(failure))
	}
}

func (formatter CommandMessageFormatter) formatCommandLabel(command ShellCommand) string {
	commandParts := []string{string(command.Name)}
	if len(command.Details.Arguments) > 0 {
		commandParts = append(commandParts, strings.Join(command.Details.Arguments, commandArgumentsJoinSeparatorConstant))
	}
	commandLabel := strings.Join(commandParts, commandArgumentsJoinSeparatorConstant)
	return fmt.Sprintf(commandLabelTemplateConstant, commandLabel, formatter.formatWorkingDirectorySuffix(command))
}

func (formatter CommandMessageFormatter) formatWorkingDirectorySuffix(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(workingDirectorySuffixTemplateConstant, trimmedWorkingDirectory)
}

func (formatter CommandMessageFormatter) describeWorkingDirectory(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return defaultWorkingDirectoryLabelConstant
	}
	return trimmedWorkingDirectory
}

func (formatter CommandMessageFormatter) formatStandardErrorSuffix(standardError string) string {
	trimmedStandardError := strings.TrimSpace(standardError)
	if len(trimmedStandardError) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(standardErrorSuffixTemplateConstant, trimmedStandardError)
}

func (formatter CommandMessageFormatter) describeFailure(failure error) string {
	if failure == nil {
		return unknownFailureMessageConstant
	}
	return failure.Error()
}

func containsArgument(arguments []string, candidate string) bool {
	for _, argument := range arguments {
		if strings.TrimSpace(argument) == candidate {
			return true
		}
	}
	return false
}

func argumentAtIndex(arguments []string, index int) string {
	if index < 0 || index >= len(arguments) {
		return emptyStringConstant
	}
	return strings.TrimSpace(arguments[index])
}

func argumentAfterFlag(arguments []string, flagName string, offset int) string {
	for argumentIndex, argument := range arguments {
		if strings.TrimSpace(argument) != flagName {
			continue
		}
		return argumentAtIndex(arguments, argumentIndex+offset)
	}
	return emptyStringConstant
}

func extractFlagValue(arguments []string, flagName string) string {
	return ensureValue(argumentAfterFlag(arguments, flagName, 1), emptyStringConstant)
}

func ensureValue(candidate string, fallback string) string {
	trimmedCandidate := strings.TrimSpace(candidate)
	if len(trimmedCandidate) == 0 {
		return fallback
	}
	return trimmedCandidate
}

func collectPositionalArguments(arguments []string) []string {
	positionalArguments := make([]string, 0, len(arguments))
	for _, argument := range arguments {
		trimmedArgument := strings.TrimSpace(argument)
		if len(trimmedArgument) == 0 || strings.HasPrefix(trimmedArgument, "-") {
			continue
		}
		positionalArguments = append(positionalArguments, trimmedArgument)
	}
	return positionalArguments
}

func extractClonePositionalArguments(arguments []string) (string, string) {
	positionalArguments := make([]string, 0, 2)
	skipNext := false
	for _, argument := range arguments[1:] {
		trimmedArgument := strings.TrimSpace(argument)
		if skipNext {
			skipNext = false
			continue
		}
		if trimmedArgument == gitDepthFlagPrefixConstant {
			skipNext = true
			continue
		}
		if strings.HasPrefix(trimmedArgument, "-") {
			continue
		}
		positionalArguments = append(positionalArguments, trimmedArgument)
	}

	repositoryURL := fallbackUnknownValueLabelConstant
	targetDirectory := emptyStringConstant
	if len(positionalArguments) > 0 {
		repositoryURL = positionalArguments[0]
	}
	if len(positionalArguments) > 1 {
		targetDirectory = positionalArguments[1]
	}
	return repositoryURL, targetDirectory
}
