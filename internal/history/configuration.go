package history

const countConfigurationKeyConstant = "count"

// CommandConfiguration captures configuration values for the log command.
type CommandConfiguration struct {
	CommitCount int `mapstructure:"count"`
}

// DefaultCommandConfiguration provides baseline configuration values for log.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{CommitCount: defaultEntryCountConstant}
}

// DefaultConfigurationValues produces Viper defaults for the log command.
func DefaultConfigurationValues(rootKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		rootKey + "." + countConfigurationKeyConstant: defaults.CommitCount,
	}
}

// Sanitize restores the default count for non-positive entries.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	if sanitized.CommitCount <= 0 {
		sanitized.CommitCount = defaultEntryCountConstant
	}
	return sanitized
}
