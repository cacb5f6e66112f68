package pullrequest

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/grit/internal/dependencies"
	"github.com/temirov/grit/internal/shared"
	"github.com/temirov/grit/internal/toolcheck"
	flagutils "github.com/temirov/grit/internal/utils/flags"
)

const (
	commandUseConstant              = "pr [title] [description]"
	commandShortDescriptionConstant = "Push the current branch and open a pull request"
	commandLongDescriptionConstant  = "pr pushes the current branch (configuring an upstream when none exists) and opens a GitHub pull request. The title defaults to 'Pull request for <branch>' and the description to 'Changes made in <branch>'. The GitHub CLI must be installed and authenticated."
	commandExampleConstant          = "grit pr \"Add retry logic\" \"Retries transient fetch failures\""
	createdTemplateConstant         = "Opened pull request for branch %q: %s\n"
)

// LoggerProvider yields a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the pr command.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	GitExecutor                  shared.GitExecutor
	RepositoryManager            shared.GitRepositoryManager
	ToolInspector                *toolcheck.Inspector
	HumanReadableLoggingProvider func() bool
}

// Build constructs the pr command.
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
	pullRequestTitle := ""
	if len(arguments) > 0 {
		pullRequestTitle = strings.TrimSpace(arguments[0])
	}
	pullRequestBody := ""
	if len(arguments) > 1 {
		pullRequestBody = strings.TrimSpace(strings.Join(arguments[1:], " "))
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

	repositoryManager, managerError := dependencies.ResolveRepositoryManager(builder.RepositoryManager, gitExecutor)
	if managerError != nil {
		return managerError
	}

	toolInspector, inspectorError := dependencies.ResolveToolInspector(builder.ToolInspector, gitExecutor)
	if inspectorError != nil {
		return inspectorError
	}

	pullRequestCreator, creatorError := dependencies.ResolveGitHubClient(gitExecutor)
	if creatorError != nil {
		return creatorError
	}

	service, serviceError := NewService(ServiceDependencies{
		RepositoryManager:  repositoryManager,
		HostingInspector:   toolInspector,
		PullRequestCreator: pullRequestCreator,
	})
	if serviceError != nil {
		return serviceError
	}

	result, openError := service.Open(command.Context(), Options{
		RepositoryPath: repositoryPath,
		Title:          pullRequestTitle,
		Body:           pullRequestBody,
		RemoteName:     shared.OriginRemoteNameConstant,
	})
	if openError != nil {
		return openError
	}

	fmt.Fprintf(command.OutOrStdout(), createdTemplateConstant, result.BranchName, result.PullRequestURL)
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
