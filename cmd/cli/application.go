package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/temirov/grit/internal/branches"
	"github.com/temirov/grit/internal/clean"
	"github.com/temirov/grit/internal/clone"
	"github.com/temirov/grit/internal/history"
	"github.com/temirov/grit/internal/pullrequest"
	"github.com/temirov/grit/internal/releases"
	"github.com/temirov/grit/internal/repoinit"
	"github.com/temirov/grit/internal/save"
	"github.com/temirov/grit/internal/status"
	"github.com/temirov/grit/internal/synchronize"
	"github.com/temirov/grit/internal/toolcheck"
	"github.com/temirov/grit/internal/utils"
	flagutils "github.com/temirov/grit/internal/utils/flags"
)

const (
	applicationNameConstant                        = "grit"
	applicationShortDescriptionConstant            = "Git workflow shortcuts for everyday development"
	applicationLongDescriptionConstant             = "grit wraps the routine Git and GitHub CLI sequences behind short commands with sensible defaults."
	configFileFlagNameConstant                     = "config"
	configFileFlagUsageConstant                    = "Optional path to a configuration file (YAML or JSON)."
	logLevelFlagNameConstant                       = "log-level"
	logLevelFlagUsageConstant                      = "Override the configured log level."
	logFormatFlagNameConstant                      = "log-format"
	logFormatFlagUsageConstant                     = "Override the configured log format (structured or console)."
	commonConfigurationKeyConstant                 = "common"
	commonLogLevelConfigKeyConstant                = commonConfigurationKeyConstant + ".log_level"
	commonLogFormatConfigKeyConstant               = commonConfigurationKeyConstant + ".log_format"
	environmentPrefixConstant                      = "GRIT"
	configurationNameConstant                      = "config"
	configurationTypeConstant                      = "yaml"
	configurationSearchPathEnvironmentNameConstant = "GRIT_CONFIG_SEARCH_PATH"
	configurationInitializedMessageConstant        = "configuration initialized"
	configurationLogLevelFieldConstant             = "log_level"
	configurationLogFormatFieldConstant            = "log_format"
	configurationFileFieldConstant                 = "config_file"
	configurationLoadErrorTemplateConstant         = "unable to load configuration: %w"
	loggerCreationErrorTemplateConstant            = "unable to create logger: %w"
	loggerSyncErrorTemplateConstant                = "unable to flush logger: %w"
	rootCommandInvokedMessageConstant              = "grit invoked"
	logFieldCommandNameConstant                    = "command_name"
	logFieldArgumentCountConstant                  = "argument_count"
	loggerNotInitializedMessageConstant            = "logger not initialized"
	defaultConfigurationSearchPathConstant         = "."
	toolsConfigurationKeyConstant                  = "tools"
	initConfigurationKeyConstant                   = toolsConfigurationKeyConstant + ".init"
	syncConfigurationKeyConstant                   = toolsConfigurationKeyConstant + ".sync"
	logConfigurationKeyConstant                    = toolsConfigurationKeyConstant + ".log"
	releaseConfigurationKeyConstant                = toolsConfigurationKeyConstant + ".release"
	unknownCommandErrorTemplateConstant            = "unknown command %q"
	versionCommandUseConstant                      = "version"
	versionCommandShortDescriptionConstant         = "Print the grit version"
	versionOutputTemplateConstant                  = "%s version: %s\n"
	developmentVersionFallbackConstant             = "(devel)"
	helpCommandNameConstant                        = "help"
	completionCommandNameConstant                  = "completion"
)

// ApplicationConfiguration describes the persisted configuration for the CLI entrypoint.
type ApplicationConfiguration struct {
	Common ApplicationCommonConfiguration `mapstructure:"common"`
	Tools  ApplicationToolsConfiguration  `mapstructure:"tools"`
}

// ApplicationCommonConfiguration stores logging configuration shared across commands.
type ApplicationCommonConfiguration struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// ApplicationToolsConfiguration holds per-command configuration keyed by command name.
type ApplicationToolsConfiguration struct {
	Init    repoinit.CommandConfiguration    `mapstructure:"init"`
	Sync    synchronize.CommandConfiguration `mapstructure:"sync"`
	Log     history.CommandConfiguration     `mapstructure:"log"`
	Release releases.CommandConfiguration    `mapstructure:"release"`
}

// Application wires the Cobra root command, configuration loader, and structured logger.
type Application struct {
	rootCommand            *cobra.Command
	configurationLoader    *utils.ConfigurationLoader
	loggerFactory          *utils.LoggerFactory
	logger                 *zap.Logger
	configuration          ApplicationConfiguration
	configurationMetadata  utils.LoadedConfiguration
	configurationFilePath  string
	logLevelFlagValue      string
	logFormatFlagValue     string
	workingDirectoryValue  string
	toolInspector          *toolcheck.Inspector
	commandContextAccessor utils.CommandContextAccessor
	versionResolver        func(executionContext context.Context) string
}

// NewApplication assembles a fully wired CLI application instance.
func NewApplication() *Application {
	configurationSearchPaths := []string{defaultConfigurationSearchPathConstant}
	if environmentSearchPath := strings.TrimSpace(os.Getenv(configurationSearchPathEnvironmentNameConstant)); len(environmentSearchPath) > 0 {
		configurationSearchPaths = []string{environmentSearchPath}
	}

	configurationLoader := utils.NewConfigurationLoader(
		configurationNameConstant,
		configurationTypeConstant,
		environmentPrefixConstant,
		configurationSearchPaths,
	)
	configurationLoader.SetEmbeddedConfiguration(EmbeddedDefaultConfiguration())

	application := &Application{
		configurationLoader:    configurationLoader,
		loggerFactory:          utils.NewLoggerFactory(),
		logger:                 zap.NewNop(),
		toolInspector:          toolcheck.NewInspector(toolcheck.Dependencies{}),
		commandContextAccessor: utils.NewCommandContextAccessor(),
	}

	cobraCommand := &cobra.Command{
		Use:           applicationNameConstant,
		Short:         applicationShortDescriptionConstant,
		Long:          applicationLongDescriptionConstant,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(command *cobra.Command, arguments []string) error {
			if configurationError := application.initializeConfiguration(command); configurationError != nil {
				return configurationError
			}
			return application.ensureGitAvailable(command)
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			return application.runRootCommand(command, arguments)
		},
	}

	cobraCommand.SetContext(context.Background())
	cobraCommand.PersistentFlags().StringVar(&application.configurationFilePath, configFileFlagNameConstant, "", configFileFlagUsageConstant)
	cobraCommand.PersistentFlags().StringVar(&application.logLevelFlagValue, logLevelFlagNameConstant, "", logLevelFlagUsageConstant)
	cobraCommand.PersistentFlags().StringVar(&application.logFormatFlagValue, logFormatFlagNameConstant, "", logFormatFlagUsageConstant)
	cobraCommand.PersistentFlags().StringVarP(&application.workingDirectoryValue, flagutils.DirectoryFlagName, flagutils.DirectoryFlagShorthand, "", flagutils.DirectoryFlagUsage)

	loggerProvider := func() *zap.Logger {
		return application.logger
	}

	commandBuilders := []interface{ Build() (*cobra.Command, error) }{
		&repoinit.CommandBuilder{
			LoggerProvider:               loggerProvider,
			HumanReadableLoggingProvider: application.humanReadableLoggingEnabled,
			ConfigurationProvider: func() repoinit.CommandConfiguration {
				return application.configuration.Tools.Init
			},
		},
		&save.CommandBuilder{
			LoggerProvider:               loggerProvider,
			HumanReadableLoggingProvider: application.humanReadableLoggingEnabled,
		},
		&branches.CommandBuilder{
			LoggerProvider:               loggerProvider,
			HumanReadableLoggingProvider: application.humanReadableLoggingEnabled,
		},
		&pullrequest.CommandBuilder{
			LoggerProvider:               loggerProvider,
			HumanReadableLoggingProvider: application.humanReadableLoggingEnabled,
		},
		&synchronize.CommandBuilder{
			LoggerProvider:               loggerProvider,
			HumanReadableLoggingProvider: application.humanReadableLoggingEnabled,
			ConfigurationProvider: func() synchronize.CommandConfiguration {
				return application.configuration.Tools.Sync
			},
		},
		&clean.CommandBuilder{
			LoggerProvider:               loggerProvider,
			HumanReadableLoggingProvider: application.humanReadableLoggingEnabled,
		},
		&history.CommandBuilder{
			LoggerProvider:               loggerProvider,
			HumanReadableLoggingProvider: application.humanReadableLoggingEnabled,
			ConfigurationProvider: func() history.CommandConfiguration {
				return application.configuration.Tools.Log
			},
		},
		&status.CommandBuilder{
			LoggerProvider:               loggerProvider,
			HumanReadableLoggingProvider: application.humanReadableLoggingEnabled,
		},
		&releases.CommandBuilder{
			LoggerProvider:               loggerProvider,
			HumanReadableLoggingProvider: application.humanReadableLoggingEnabled,
			ConfigurationProvider: func() releases.CommandConfiguration {
				return application.configuration.Tools.Release
			},
		},
		&clone.CommandBuilder{
			LoggerProvider:               loggerProvider,
			HumanReadableLoggingProvider: application.humanReadableLoggingEnabled,
		},
	}
	for _, commandBuilder := range commandBuilders {
		builtCommand, buildError := commandBuilder.Build()
		if buildError == nil {
			cobraCommand.AddCommand(builtCommand)
		}
	}

	versionCommand := &cobra.Command{
		Use:   versionCommandUseConstant,
		Short: versionCommandShortDescriptionConstant,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			fmt.Fprintf(command.OutOrStdout(), versionOutputTemplateConstant, applicationNameConstant, application.resolveVersion(command.Context()))
			return nil
		},
	}
	cobraCommand.AddCommand(versionCommand)

	application.rootCommand = cobraCommand

	return application
}

// Execute runs the configured Cobra command hierarchy and ensures logger flushing.
func (application *Application) Execute() error {
	executionError := application.rootCommand.Execute()
	if syncError := application.flushLogger(); syncError != nil {
		return fmt.Errorf(loggerSyncErrorTemplateConstant, syncError)
	}
	return executionError
}

// Execute builds a fresh application instance and executes the root command hierarchy.
func Execute() error {
	return NewApplication().Execute()
}

func (application *Application) initializeConfiguration(command *cobra.Command) error {
	defaultValues := map[string]any{
		commonLogLevelConfigKeyConstant:  string(utils.LogLevelInfo),
		commonLogFormatConfigKeyConstant: string(utils.LogFormatConsole),
	}
	for configurationKey, configurationValue := range repoinit.DefaultConfigurationValues(initConfigurationKeyConstant) {
		defaultValues[configurationKey] = configurationValue
	}
	for configurationKey, configurationValue := range synchronize.DefaultConfigurationValues(syncConfigurationKeyConstant) {
		defaultValues[configurationKey] = configurationValue
	}
	for configurationKey, configurationValue := range history.DefaultConfigurationValues(logConfigurationKeyConstant) {
		defaultValues[configurationKey] = configurationValue
	}
	for configurationKey, configurationValue := range releases.DefaultConfigurationValues(releaseConfigurationKeyConstant) {
		defaultValues[configurationKey] = configurationValue
	}

	loadedConfiguration, loadError := application.configurationLoader.LoadConfiguration(application.configurationFilePath, defaultValues, &application.configuration)
	if loadError != nil {
		return fmt.Errorf(configurationLoadErrorTemplateConstant, loadError)
	}

	application.configurationMetadata = loadedConfiguration

	if application.persistentFlagChanged(command, logLevelFlagNameConstant) {
		application.configuration.Common.LogLevel = application.logLevelFlagValue
	}

	if application.persistentFlagChanged(command, logFormatFlagNameConstant) {
		application.configuration.Common.LogFormat = application.logFormatFlagValue
	}

	logger, loggerCreationError := application.loggerFactory.CreateLogger(
		utils.NormalizeLogLevel(application.configuration.Common.LogLevel),
		utils.NormalizeLogFormat(application.configuration.Common.LogFormat),
	)
	if loggerCreationError != nil {
		return fmt.Errorf(loggerCreationErrorTemplateConstant, loggerCreationError)
	}

	application.logger = logger

	application.logger.Debug(
		configurationInitializedMessageConstant,
		zap.String(configurationLogLevelFieldConstant, application.configuration.Common.LogLevel),
		zap.String(configurationLogFormatFieldConstant, application.configuration.Common.LogFormat),
		zap.String(configurationFileFieldConstant, application.configurationMetadata.ConfigFileUsed),
	)

	if command != nil {
		updatedContext := application.commandContextAccessor.WithConfigurationFilePath(
			command.Context(),
			application.configurationMetadata.ConfigFileUsed,
		)
		command.SetContext(updatedContext)
		if rootCommand := command.Root(); rootCommand != nil {
			rootCommand.SetContext(updatedContext)
		}
	}

	return nil
}

// ensureGitAvailable fails fast when a subcommand that drives git is invoked on
// a system without the git executable. Help, version, and completion stay usable.
func (application *Application) ensureGitAvailable(command *cobra.Command) error {
	if command == nil || !command.HasParent() {
		return nil
	}

	for currentCommand := command; currentCommand != nil && currentCommand.HasParent(); currentCommand = currentCommand.Parent() {
		switch currentCommand.Name() {
		case helpCommandNameConstant, versionCommandUseConstant, completionCommandNameConstant, cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return nil
		}
	}

	return application.toolInspector.RequireGit()
}

func (application *Application) humanReadableLoggingEnabled() bool {
	return utils.NormalizeLogFormat(application.configuration.Common.LogFormat) == utils.LogFormatConsole
}

func (application *Application) resolveVersion(executionContext context.Context) string {
	if application.versionResolver != nil {
		return application.versionResolver(executionContext)
	}

	if buildInformation, buildInformationAvailable := debug.ReadBuildInfo(); buildInformationAvailable {
		resolvedVersion := strings.TrimSpace(buildInformation.Main.Version)
		if len(resolvedVersion) > 0 {
			return resolvedVersion
		}
	}

	return developmentVersionFallbackConstant
}

func (application *Application) runRootCommand(command *cobra.Command, arguments []string) error {
	if application.logger == nil {
		return errors.New(loggerNotInitializedMessageConstant)
	}

	application.logger.Debug(
		rootCommandInvokedMessageConstant,
		zap.String(logFieldCommandNameConstant, command.Name()),
		zap.Int(logFieldArgumentCountConstant, len(arguments)),
	)

	if len(arguments) == 0 {
		return command.Help()
	}

	_ = command.Help()
	return fmt.Errorf(unknownCommandErrorTemplateConstant, arguments[0])
}

func (application *Application) flushLogger() error {
	return application.syncLoggerInstance(application.logger)
}

func (application *Application) syncLoggerInstance(logger *zap.Logger) error {
	if logger == nil {
		return nil
	}

	syncError := logger.Sync()
	switch {
	case syncError == nil:
		return nil
	case errors.Is(syncError, syscall.ENOTSUP):
		return nil
	case errors.Is(syncError, syscall.EINVAL):
		return nil
	default:
		return syncError
	}
}

func (application *Application) persistentFlagChanged(command *cobra.Command, flagName string) bool {
	if command == nil {
		return false
	}

	flagSetsToInspect := []*pflag.FlagSet{
		command.PersistentFlags(),
		command.InheritedFlags(),
	}

	rootCommand := command.Root()
	if rootCommand != nil {
		flagSetsToInspect = append(flagSetsToInspect, rootCommand.PersistentFlags())
	}

	for _, flagSet := range flagSetsToInspect {
		if flagSet == nil {
			continue
		}

		if flagSet.Changed(flagName) {
			return true
		}
	}

	return false
}
