package releases

import (
	"strings"

	"github.com/temirov/grit/internal/shared"
)

const remoteConfigurationKeyConstant = "remote"

// CommandConfiguration captures configuration values for the release command.
type CommandConfiguration struct {
	RemoteName string `mapstructure:"remote"`
}

// DefaultCommandConfiguration provides baseline configuration values for release.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{RemoteName: shared.OriginRemoteNameConstant}
}

// DefaultConfigurationValues produces Viper defaults for the release command.
func DefaultConfigurationValues(rootKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		rootKey + "." + remoteConfigurationKeyConstant: defaults.RemoteName,
	}
}

// Sanitize trims configuration values and restores defaults for blank entries.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.RemoteName = strings.TrimSpace(configuration.RemoteName)
	if len(sanitized.RemoteName) == 0 {
		sanitized.RemoteName = shared.OriginRemoteNameConstant
	}
	return sanitized
}
