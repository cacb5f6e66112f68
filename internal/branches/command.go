package branches

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
	commandUseConstant               = "branch <name>"
	commandShortDescriptionConstant  = "Switch to a branch, creating it when missing"
	commandLongDescriptionConstant   = "branch checks out the named branch, creates it when it does not exist locally, and pushes it with --set-upstream origin so the branch tracks the remote."
	missingBranchNameMessageConstant = "branch name is required"
	switchedTemplateConstant         = "Switched to branch %q and pushed it to %s\n"
	createdTemplateConstant          = "Created branch %q and pushed it to %s\n"
)

// LoggerProvider yields a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the branch command.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	GitExecutor                  shared.GitExecutor
	RepositoryManager            shared.GitRepositoryManager
	HumanReadableLoggingProvider func() bool
}

// Build constructs the branch command.
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
	if len(arguments) == 0 || len(strings.TrimSpace(arguments[0])) == 0 {
		if command != nil {
			_ = command.Help()
		}
		return errors.New(missingBranchNameMessageConstant)
	}
	branchName := strings.TrimSpace(arguments[0])

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

	result, switchError := service.Switch(command.Context(), Options{
		RepositoryPath: repositoryPath,
		BranchName:     branchName,
		RemoteName:     shared.OriginRemoteNameConstant,
	})
	if switchError != nil {
		return switchError
	}

	if result.Created {
		fmt.Fprintf(command.OutOrStdout(), createdTemplateConstant, result.BranchName, shared.OriginRemoteNameConstant)
		return nil
	}
	fmt.Fprintf(command.OutOrStdout(), switchedTemplateConstant, result.BranchName, shared.OriginRemoteNameConstant)
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
