package repoinit

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/grit/internal/dependencies"
	"github.com/temirov/grit/internal/githubcli"
	"github.com/temirov/grit/internal/gitrepo"
	"github.com/temirov/grit/internal/shared"
	"github.com/temirov/grit/internal/toolcheck"
	flagutils "github.com/temirov/grit/internal/utils/flags"
)

const (
	commandUseConstant                   = "init [name]"
	commandShortDescriptionConstant      = "Create a local repository and publish it to GitHub when possible"
	commandLongDescriptionConstant       = "init creates a git repository in the working directory, seeds a template .gitignore and a one-line README when they are absent, and records an initial commit. When the GitHub CLI is installed and authenticated the repository is also created on GitHub and pushed; otherwise manual remote-setup instructions are printed."
	commandExampleConstant               = "grit init my-service"
	visibilityFlagNameConstant           = "visibility"
	visibilityFlagDescriptionConstant    = "Visibility for the created GitHub repository"
	initializedTemplateConstant          = "Initialized repository %q with an initial commit\n"
	remoteCreatedTemplateConstant        = "Created GitHub repository %s and pushed the initial commit\n"
	skippedTemplateConstant              = "Skipped GitHub repository creation: %s\n"
	manualInstructionsTemplateConstant   = "Create a repository named %s with your hosting provider, then run:\n  git remote add origin %s\n  git push -u origin <branch>\n"
	manualRemoteHostConstant             = "github.com"
	manualRemoteOwnerPlaceholderConstant = "<owner>"
	manualRemoteFallbackConstant         = "<repository-url>"
)

// LoggerProvider yields a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the init command.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	GitExecutor                  shared.GitExecutor
	FileSystem                   shared.FileSystem
	ToolInspector                *toolcheck.Inspector
	HumanReadableLoggingProvider func() bool
	ConfigurationProvider        func() CommandConfiguration
}

// Build constructs the init command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:     commandUseConstant,
		Short:   commandShortDescriptionConstant,
		Long:    commandLongDescriptionConstant,
		Example: commandExampleConstant,
		Args:    cobra.ArbitraryArgs,
		RunE:    builder.run,
	}

	visibilityUsage := flagutils.FormatChoiceUsage(
		string(githubcli.RepositoryVisibilityPrivate),
		[]string{string(githubcli.RepositoryVisibilityPublic), string(githubcli.RepositoryVisibilityPrivate)},
		visibilityFlagDescriptionConstant,
	)
	command.Flags().String(visibilityFlagNameConstant, "", visibilityUsage)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration()

	repositoryName := ""
	if len(arguments) > 0 {
		repositoryName = strings.TrimSpace(arguments[0])
	}

	visibilityCandidate := configuration.Visibility
	flagValue, flagChanged, flagError := flagutils.StringFlag(command, visibilityFlagNameConstant)
	if flagError == nil && flagChanged && len(strings.TrimSpace(flagValue)) > 0 {
		visibilityCandidate = flagValue
	}
	repositoryVisibility, visibilityError := githubcli.ParseRepositoryVisibility(visibilityCandidate)
	if visibilityError != nil {
		return visibilityError
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

	toolInspector, inspectorError := dependencies.ResolveToolInspector(builder.ToolInspector, gitExecutor)
	if inspectorError != nil {
		return inspectorError
	}

	repositoryCreator, creatorError := dependencies.ResolveGitHubClient(gitExecutor)
	if creatorError != nil {
		return creatorError
	}

	service, serviceError := NewService(ServiceDependencies{
		GitExecutor:       gitExecutor,
		FileSystem:        dependencies.ResolveFileSystem(builder.FileSystem),
		HostingInspector:  toolInspector,
		RepositoryCreator: repositoryCreator,
	})
	if serviceError != nil {
		return serviceError
	}

	result, initializationError := service.Initialize(command.Context(), Options{
		RepositoryPath: repositoryPath,
		RepositoryName: repositoryName,
		Visibility:     repositoryVisibility,
	})
	if initializationError != nil {
		return initializationError
	}

	fmt.Fprintf(command.OutOrStdout(), initializedTemplateConstant, result.RepositoryName)
	if result.RemoteConfigured {
		fmt.Fprintf(command.OutOrStdout(), remoteCreatedTemplateConstant, result.RepositoryName)
		return nil
	}

	fmt.Fprintf(command.OutOrStdout(), skippedTemplateConstant, result.SkipReason)
	fmt.Fprintf(command.OutOrStdout(), manualInstructionsTemplateConstant, result.RepositoryName, manualRemoteExample(result.RepositoryName))
	return nil
}

// manualRemoteExample renders the SSH URL the user would add by hand, with the
// owner left as a placeholder since no hosting account is known at this point.
func manualRemoteExample(repositoryName string) string {
	formatted, formatError := gitrepo.FormatRemoteURL(gitrepo.RemoteURL{
		Protocol:   gitrepo.RemoteProtocolSSH,
		Host:       manualRemoteHostConstant,
		Owner:      manualRemoteOwnerPlaceholderConstant,
		Repository: repositoryName,
	})
	if formatError != nil {
		return manualRemoteFallbackConstant
	}
	return formatted
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
