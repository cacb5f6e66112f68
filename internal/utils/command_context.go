package utils

import "context"

const (
	configurationFilePathContextKeyConstant = commandContextKey("configurationFilePath")
	executionFlagsContextKeyConstant        = commandContextKey("executionFlags")
)

type commandContextKey string

// ExecutionFlags carries root-level flag values shared across subcommands.
//
// The *Set fields distinguish a flag the user supplied from one left at its
// default so configuration values are only overridden deliberately.
type ExecutionFlags struct {
	DryRun    bool
	DryRunSet bool
	Remote    string
	RemoteSet bool
}

// CommandContextAccessor manages values stored in command execution contexts.
type CommandContextAccessor struct{}

// NewCommandContextAccessor constructs a CommandContextAccessor instance.
func NewCommandContextAccessor() CommandContextAccessor {
	return CommandContextAccessor{}
}

// WithConfigurationFilePath attaches the configuration file path to the provided context.
func (accessor CommandContextAccessor) WithConfigurationFilePath(parentContext context.Context, configurationFilePath string) context.Context {
	if parentContext == nil {
		parentContext = context.Background()
	}
	return context.WithValue(parentContext, configurationFilePathContextKeyConstant, configurationFilePath)
}

// ConfigurationFilePath extracts the configuration file path from the provided context.
func (accessor CommandContextAccessor) ConfigurationFilePath(executionContext context.Context) (string, bool) {
	if executionContext == nil {
		return "", false
	}
	configurationFilePath, configurationFilePathAvailable := executionContext.Value(configurationFilePathContextKeyConstant).(string)
	if !configurationFilePathAvailable {
		return "", false
	}
	return configurationFilePath, true
}

// WithExecutionFlags attaches resolved execution flags to the provided context.
func (accessor CommandContextAccessor) WithExecutionFlags(parentContext context.Context, executionFlags ExecutionFlags) context.Context {
	if parentContext == nil {
		parentContext = context.Background()
	}
	return context.WithValue(parentContext, executionFlagsContextKeyConstant, executionFlags)
}

// ExecutionFlags extracts execution flags from the provided context.
func (accessor CommandContextAccessor) ExecutionFlags(executionContext context.Context) (ExecutionFlags, bool) {
	if executionContext == nil {
		return ExecutionFlags{}, false
	}
	executionFlags, executionFlagsAvailable := executionContext.Value(executionFlagsContextKeyConstant).(ExecutionFlags)
	if !executionFlagsAvailable {
		return ExecutionFlags{}, false
	}
	return executionFlags, true
}
