package releases

import (
	"errors"
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
	commandUseConstant              = "release <version> [message]"
	commandShortDescriptionConstant = "Tag a release and publish it on GitHub"
	commandLongDescriptionConstant  = "release creates an annotated tag for the provided version (a leading 'v' is added when missing), pushes the tag to the configured remote, and publishes a GitHub release with notes generated from the commit history since the previous tag. Publication is skipped when the GitHub CLI is unavailable or unauthenticated."
	commandExampleConstant          = "grit release 1.2.3"
	missingVersionMessageConstant   = "release version is required"
	dryRunPreviewTemplateConstant   = "DRY RUN: would create annotated tag %s with message %q and push it to %s\n"
	tagPushedTemplateConstant       = "Created tag %s and pushed it to %s\n"
	publishedTemplateConstant       = "Published GitHub release: %s\n"
	skippedTemplateConstant         = "Skipped GitHub release: %s\n"
)

// LoggerProvider yields a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the release command.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	GitExecutor                  shared.GitExecutor
	ToolInspector                *toolcheck.Inspector
	HumanReadableLoggingProvider func() bool
	ConfigurationProvider        func() CommandConfiguration
}

// Build constructs the release command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:     commandUseConstant,
		Short:   commandShortDescriptionConstant,
		Long:    commandLongDescriptionConstant,
		Example: commandExampleConstant,
		Args:    cobra.ArbitraryArgs,
		RunE:    builder.run,
	}

	flagutils.BindExecutionFlags(command, flagutils.ExecutionDefaults{}, flagutils.ExecutionFlagDefinitions{
		DryRun: flagutils.ExecutionFlagDefinition{Name: flagutils.DryRunFlagName, Usage: flagutils.DryRunFlagUsage, Enabled: true},
	})
	flagutils.EnsureRemoteFlag(command, "", flagutils.RemoteFlagUsage)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration()

	if len(arguments) == 0 || len(strings.TrimSpace(arguments[0])) == 0 {
		if command != nil {
			_ = command.Help()
		}
		return errors.New(missingVersionMessageConstant)
	}
	version := strings.TrimSpace(arguments[0])

	tagMessage := ""
	if len(arguments) > 1 {
		tagMessage = strings.TrimSpace(strings.Join(arguments[1:], " "))
	}

	executionFlags, executionFlagsAvailable := flagutils.ResolveExecutionFlags(command)
	dryRun := false
	if executionFlagsAvailable && executionFlags.DryRunSet {
		dryRun = executionFlags.DryRun
	}

	remoteName := configuration.RemoteName
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

	toolInspector, inspectorError := dependencies.ResolveToolInspector(builder.ToolInspector, gitExecutor)
	if inspectorError != nil {
		return inspectorError
	}

	releasePublisher, publisherError := dependencies.ResolveGitHubClient(gitExecutor)
	if publisherError != nil {
		return publisherError
	}

	notesBuilder, notesBuilderError := dependencies.ResolveNotesBuilder(nil, gitExecutor)
	if notesBuilderError != nil {
		return notesBuilderError
	}

	service, serviceError := NewService(ServiceDependencies{
		GitExecutor:      gitExecutor,
		HostingInspector: toolInspector,
		ReleasePublisher: releasePublisher,
		NotesBuilder:     notesBuilder,
	})
	if serviceError != nil {
		return serviceError
	}

	result, releaseError := service.Release(command.Context(), Options{
		RepositoryPath: repositoryPath,
		Version:        version,
		Message:        tagMessage,
		RemoteName:     remoteName,
		DryRun:         dryRun,
	})
	if releaseError != nil {
		return releaseError
	}

	resolvedRemote := remoteName
	if len(strings.TrimSpace(resolvedRemote)) == 0 {
		resolvedRemote = shared.OriginRemoteNameConstant
	}

	if dryRun {
		fmt.Fprintf(command.OutOrStdout(), dryRunPreviewTemplateConstant, result.TagName, result.Message, resolvedRemote)
		return nil
	}

	fmt.Fprintf(command.OutOrStdout(), tagPushedTemplateConstant, result.TagName, resolvedRemote)
	if result.Published {
		fmt.Fprintf(command.OutOrStdout(), publishedTemplateConstant, result.ReleaseURL)
	} else {
		fmt.Fprintf(command.OutOrStdout(), skippedTemplateConstant, result.SkipReason)
	}

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
