package clone

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/grit/internal/dependencies"
	"github.com/temirov/grit/internal/shared"
	flagutils "github.com/temirov/grit/internal/utils/flags"
	pathutils "github.com/temirov/grit/internal/utils/path"
)

const (
	commandUseConstant              = "clone <url> [directory]"
	commandShortDescriptionConstant = "Clone a repository shallowly and prepare it for rebasing pulls"
	commandLongDescriptionConstant  = "clone performs a depth-1 clone into the given directory (derived from the URL when omitted, ~ expanded), fetches all remotes, enables pull.rebase and fetch.prune, and lists every branch."
	commandExampleConstant          = "grit clone git@github.com:acme/widgets.git"
	missingURLMessageConstant       = "repository url is required"
	clonedTemplateConstant          = "Cloned %s into %s\n"
)

// LoggerProvider yields a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the clone command.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	GitExecutor                  shared.GitExecutor
	HomeExpander                 *pathutils.HomeExpander
	HumanReadableLoggingProvider func() bool
}

// Build constructs the clone command.
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
	if len(arguments) == 0 || len(strings.TrimSpace(arguments[0])) == 0 {
		if command != nil {
			_ = command.Help()
		}
		return errors.New(missingURLMessageConstant)
	}
	remoteURL := strings.TrimSpace(arguments[0])

	targetDirectory := ""
	if len(arguments) > 1 {
		targetDirectory = strings.TrimSpace(arguments[1])
	}

	workingDirectory, pathError := flagutils.ResolveWorkingDirectory(command)
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

	service, serviceError := NewService(ServiceDependencies{
		GitExecutor:  gitExecutor,
		HomeExpander: builder.HomeExpander,
	})
	if serviceError != nil {
		return serviceError
	}

	result, cloneError := service.Clone(command.Context(), Options{
		WorkingDirectory: workingDirectory,
		RemoteURL:        remoteURL,
		TargetDirectory:  targetDirectory,
	})
	if cloneError != nil {
		return cloneError
	}

	fmt.Fprintf(command.OutOrStdout(), clonedTemplateConstant, result.RemoteURL, result.DirectoryName)
	fmt.Fprint(command.OutOrStdout(), result.BranchList)
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
