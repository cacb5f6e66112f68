package history

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/grit/internal/dependencies"
	"github.com/temirov/grit/internal/shared"
	flagutils "github.com/temirov/grit/internal/utils/flags"
)

const (
	commandUseConstant              = "log [count]"
	commandShortDescriptionConstant = "Show the decorated commit graph"
	commandLongDescriptionConstant  = "log prints the oneline commit graph across all refs, limited to the requested number of entries (default 5)."
	commandExampleConstant          = "grit log 10"
	invalidCountMessageConstant     = "log count must be a positive number"
)

// LoggerProvider yields a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the log command.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	GitExecutor                  shared.GitExecutor
	HumanReadableLoggingProvider func() bool
	ConfigurationProvider        func() CommandConfiguration
}

// Build constructs the log command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:     commandUseConstant,
		Short:   commandShortDescriptionConstant,
		Long:    commandLongDescriptionConstant,
		Example: commandExampleConstant,
		Args:    cobra.ArbitraryArgs,
		RunE:    builder.run,
	}

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration()

	entryCount := configuration.CommitCount
	if len(arguments) > 0 && len(strings.TrimSpace(arguments[0])) > 0 {
		parsedCount, parseError := strconv.Atoi(strings.TrimSpace(arguments[0]))
		if parseError != nil || parsedCount < 1 {
			if command != nil {
				_ = command.Help()
			}
			return errors.New(invalidCountMessageConstant)
		}
		entryCount = parsedCount
	}

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

	service, serviceError := NewService(ServiceDependencies{GitExecutor: gitExecutor})
	if serviceError != nil {
		return serviceError
	}

	result, showError := service.Show(command.Context(), Options{
		RepositoryPath: repositoryPath,
		EntryCount:     entryCount,
	})
	if showError != nil {
		return showError
	}

	fmt.Fprint(command.OutOrStdout(), result.GraphOutput)
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
