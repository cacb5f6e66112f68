package save

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/grit/internal/dependencies"
	"github.com/temirov/grit/internal/shared"
	flagutils "github.com/temirov/grit/internal/utils/flags"
)

const (
	commandUseConstant                 = "save [message]"
	commandShortDescriptionConstant    = "Stage, commit, and push all changes"
	commandLongDescriptionConstant     = "save stages every change in the working tree, commits with the provided message (default 'Update - <timestamp>'), and pushes the current branch. Branches without an upstream are pushed with --set-upstream origin."
	noChangesMessageConstant           = "No changes to save; the working tree is clean"
	savedTemplateConstant              = "Saved changes with message %q\n"
	pushedTemplateConstant             = "Pushed to %s\n"
	pushedWithUpstreamTemplateConstant = "Pushed to %s and configured upstream tracking\n"
)

// LoggerProvider yields a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the save command.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	GitExecutor                  shared.GitExecutor
	RepositoryManager            shared.GitRepositoryManager
	Clock                        shared.Clock
	HumanReadableLoggingProvider func() bool
}

// Build constructs the save command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.ArbitraryArgs,
		RunE:  builder.run,
	}

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	commitMessage := strings.TrimSpace(strings.Join(arguments, " "))

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

	service, serviceError := NewService(ServiceDependencies{
		GitExecutor:       gitExecutor,
		RepositoryManager: repositoryManager,
		Clock:             dependencies.ResolveClock(builder.Clock),
	})
	if serviceError != nil {
		return serviceError
	}

	result, saveError := service.Save(command.Context(), Options{
		RepositoryPath: repositoryPath,
		Message:        commitMessage,
		RemoteName:     shared.OriginRemoteNameConstant,
	})
	if saveError != nil {
		return saveError
	}

	if !result.CommitCreated {
		fmt.Fprintln(command.OutOrStdout(), noChangesMessageConstant)
		return nil
	}

	fmt.Fprintf(command.OutOrStdout(), savedTemplateConstant, result.CommitMessage)
	if result.UpstreamConfigured {
		fmt.Fprintf(command.OutOrStdout(), pushedWithUpstreamTemplateConstant, shared.OriginRemoteNameConstant)
		return nil
	}
	fmt.Fprintf(command.OutOrStdout(), pushedTemplateConstant, shared.OriginRemoteNameConstant)
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
