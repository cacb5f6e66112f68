package repoinit

import (
	"strings"

	"github.com/temirov/grit/internal/githubcli"
)

const visibilityConfigurationKeyConstant = "visibility"

// CommandConfiguration captures configuration values for the init command.
type CommandConfiguration struct {
	Visibility string `mapstructure:"visibility"`
}

// DefaultCommandConfiguration provides baseline configuration values for init.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{Visibility: string(githubcli.RepositoryVisibilityPrivate)}
}

// DefaultConfigurationValues produces Viper defaults for the init command.
func DefaultConfigurationValues(rootKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		rootKey + "." + visibilityConfigurationKeyConstant: defaults.Visibility,
	}
}

// Sanitize normalizes configuration values and restores defaults for blank entries.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.Visibility = strings.ToLower(strings.TrimSpace(configuration.Visibility))
	if len(sanitized.Visibility) == 0 {
		sanitized.Visibility = string(githubcli.RepositoryVisibilityPrivate)
	}
	return sanitized
}
