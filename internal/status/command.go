package status

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/grit/internal/dependencies"
	"github.com/temirov/grit/internal/shared"
	flagutils "github.com/temirov/grit/internal/utils/flags"
)

const (
	commandUseConstant              = "status"
	commandShortDescriptionConstant = "Summarize branch, upstream, and working-tree state"
	commandLongDescriptionConstant  = "status reports the current branch, the upstream it tracks with ahead/behind counts, a working-tree change summary, and the stash depth when stashes exist. Branches without an upstream are reported explicitly."
	branchTemplateConstant          = "On branch %s\n"
	detachedHeadMessageConstant     = "HEAD is detached"
	upstreamTemplateConstant        = "Tracking %s\n"
	divergenceTemplateConstant      = "Ahead %d, behind %d\n"
	noUpstreamMessageConstant       = "No upstream configured"
	cleanWorktreeMessageConstant    = "Working tree clean"
	worktreeTemplateConstant        = "Staged: %d, unstaged: %d, untracked: %d\n"
	stashTemplateConstant           = "Stash entries: %d\n"
)

// LoggerProvider yields a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the status command.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	GitExecutor                  shared.GitExecutor
	RepositoryManager            shared.GitRepositoryManager
	HumanReadableLoggingProvider func() bool
}

// Build constructs the status command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.NoArgs,
		RunE:  builder.run,
	}

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, _ []string) error {
	repositoryPath, pathError := flagutils.ResolveWorkingDirectory(command)
	if pathError != nil {
		return pathError
	}

	logger := builder.resolveLogger()
	humanReadableLogging := false
	if builder.HumanReadableLoggingProvider != nil {
		humanReadableLogging = builder.HumanReadableLoggingProvider()
	}
	gitExecutor, executorError := dependencies.ResolveGitExecutor(builder.GitExecutor, logger, humanReadableLogging)
	if executorError != nil {
		return executorError
	}

	repositoryManager, managerError := dependencies.ResolveRepositoryManager(builder.RepositoryManager, gitExecutor)
	if managerError != nil {
		return managerError
	}

	service, serviceError := NewService(ServiceDependencies{RepositoryManager: repositoryManager})
	if serviceError != nil {
		return serviceError
	}

	result, reportError := service.Report(command.Context(), Options{RepositoryPath: repositoryPath})
	if reportError != nil {
		return reportError
	}

	if result.DetachedHead {
		fmt.Fprintln(command.OutOrStdout(), detachedHeadMessageConstant)
	} else {
		fmt.Fprintf(command.OutOrStdout(), branchTemplateConstant, result.BranchName)
	}

	if result.UpstreamConfigured {
		fmt.Fprintf(command.OutOrStdout(), upstreamTemplateConstant, result.UpstreamBranch)
		fmt.Fprintf(command.OutOrStdout(), divergenceTemplateConstant, result.AheadCount, result.BehindCount)
	} else {
		fmt.Fprintln(command.OutOrStdout(), noUpstreamMessageConstant)
	}

	if result.Worktree.Clean() {
		fmt.Fprintln(command.OutOrStdout(), cleanWorktreeMessageConstant)
	} else {
		fmt.Fprintf(command.OutOrStdout(), worktreeTemplateConstant,
			result.Worktree.StagedChangeCount, result.Worktree.UnstagedChangeCount, result.Worktree.UntrackedFileCount)
	}

	if result.StashCount > 0 {
		fmt.Fprintf(command.OutOrStdout(), stashTemplateConstant, result.StashCount)
	}

	return nil
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
