package synchronize

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/grit/internal/dependencies"
	"github.com/temirov/grit/internal/shared"
	flagutils "github.com/temirov/grit/internal/utils/flags"
)

const (
	commandUseConstant              = "sync"
	commandShortDescriptionConstant = "Update the current branch from the remote default branch"
	commandLongDescriptionConstant  = "sync fetches the remote and rebases the current branch onto the remote default branch (master when the remote still serves one, main otherwise). On the default branch itself it pulls instead. A conflicted rebase is aborted so the repository stays in its pre-rebase state."
	rebasedTemplateConstant         = "Rebased %s onto %s/%s\n"
	pulledTemplateConstant          = "Pulled latest %s from %s\n"
	conflictAdviceTemplateConstant  = "Sync stopped: rebasing onto %s/%s hit conflicts and the rebase was aborted.\nResolve the conflicts manually:\n  git fetch %s\n  git rebase %s/%s\nthen fix the reported files, stage them, and run 'git rebase --continue'.\n"
)

// LoggerProvider yields a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the sync command.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	GitExecutor                  shared.GitExecutor
	RepositoryManager            shared.GitRepositoryManager
	HumanReadableLoggingProvider func() bool
	ConfigurationProvider        func() CommandConfiguration
}

// Build constructs the sync command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.NoArgs,
		RunE:  builder.run,
	}

	flagutils.EnsureRemoteFlag(command, "", flagutils.RemoteFlagUsage)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, _ []string) error {
	configuration := builder.resolveConfiguration()

	remoteName := configuration.RemoteName
	executionFlags, executionFlagsAvailable := flagutils.ResolveExecutionFlags(command)
	if executionFlagsAvailable && executionFlags.RemoteSet {
		override := strings.TrimSpace(executionFlags.Remote)
		if len(override) > 0 {
			remoteName = override
		}
	}

	if len(strings.TrimSpace(remoteName)) == 0 {
		remoteName = shared.OriginRemoteNameConstant
	}
	validatedRemote, remoteNameError := shared.NewRemoteName(remoteName)
	if remoteNameError != nil {
		if command != nil {
			_ = command.Help()
		}
		return remoteNameError
	}
	remoteName = validatedRemote.String()

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

	service, serviceError := NewService(Dependencies{GitExecutor: gitExecutor, RepositoryManager: repositoryManager})
	if serviceError != nil {
		return serviceError
	}

	result, syncError := service.Sync(command.Context(), Options{
		RepositoryPath: repositoryPath,
		RemoteName:     remoteName,
	})
	if syncError != nil {
		var conflictError RebaseConflictError
		if errors.As(syncError, &conflictError) {
			fmt.Fprintf(command.OutOrStdout(), conflictAdviceTemplateConstant,
				conflictError.RemoteName, conflictError.DefaultBranch,
				conflictError.RemoteName,
				conflictError.RemoteName, conflictError.DefaultBranch)
		}
		return syncError
	}

	if result.Rebased {
		fmt.Fprintf(command.OutOrStdout(), rebasedTemplateConstant, result.CurrentBranch, result.RemoteName, result.DefaultBranch)
		return nil
	}
	fmt.Fprintf(command.OutOrStdout(), pulledTemplateConstant, result.DefaultBranch, result.RemoteName)
	return nil
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().Sanitize()
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
