package clean

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/grit/internal/dependencies"
	"github.com/temirov/grit/internal/shared"
	"github.com/temirov/grit/internal/utils"
	flagutils "github.com/temirov/grit/internal/utils/flags"
)

const (
	commandUseConstant              = "clean"
	commandShortDescriptionConstant = "Remove untracked files after a double confirmation"
	commandLongDescriptionConstant  = "clean asks for confirmation, previews the files git would remove, and asks again before running git clean -df. Declining either question leaves the repository untouched."
	abortedMessageConstant          = "Clean aborted; nothing was removed"
	nothingToRemoveMessageConstant  = "Nothing to remove; the working tree has no untracked files"
	cleanedMessageConstant          = "Removed untracked files and directories"
)

// LoggerProvider yields a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the clean command.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	GitExecutor                  shared.GitExecutor
	Prompter                     shared.ConfirmationPrompter
	HumanReadableLoggingProvider func() bool
}

// Build constructs the clean command.
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

	sessionOutput := utils.NewPromptWriter(command.OutOrStdout())
	prompter := builder.Prompter
	if prompter == nil {
		prompter = NewIOConfirmationPrompter(command.InOrStdin(), sessionOutput)
	}

	service, serviceError := NewService(Dependencies{
		GitExecutor: gitExecutor,
		Prompter:    prompter,
		Output:      sessionOutput,
	})
	if serviceError != nil {
		return serviceError
	}

	result, cleanError := service.Clean(command.Context(), Options{RepositoryPath: repositoryPath})
	if cleanError != nil {
		return cleanError
	}

	switch result.Outcome {
	case OutcomeDeclined:
		fmt.Fprintln(command.OutOrStdout(), abortedMessageConstant)
	case OutcomeNothingToRemove:
		fmt.Fprintln(command.OutOrStdout(), nothingToRemoveMessageConstant)
	case OutcomeCleaned:
		fmt.Fprintln(command.OutOrStdout(), cleanedMessageConstant)
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
