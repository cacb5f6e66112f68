// Package githubauth resolves GitHub credentials from the environment.
package githubauth

import (
	"os"
	"strings"
)

// Environment variable names honored by the GitHub CLI for authentication.
const (
	EnvGitHubCLIToken = "GH_TOKEN"
	EnvGitHubToken    = "GITHUB_TOKEN"
	EnvGitHubAPIToken = "GITHUB_API_TOKEN"
)

var tokenPreference = []string{
	EnvGitHubCLIToken,
	EnvGitHubToken,
	EnvGitHubAPIToken,
}

// ResolveToken returns the first non-empty GitHub authentication token observed
// for the preferred variable names, consulting the provided environment map
// before the process environment for each name. The boolean result reports
// whether any token was found.
func ResolveToken(environment map[string]string) (string, bool) {
	for _, variableName := range tokenPreference {
		if tokenValue, found := lookupEnvironment(environment, variableName); found {
			return tokenValue, true
		}
		if tokenValue, found := lookupProcessEnvironment(variableName); found {
			return tokenValue, true
		}
	}
	return "", false
}

func lookupEnvironment(environment map[string]string, variableName string) (string, bool) {
	if environment == nil {
		return "", false
	}
	return normalizeTokenValue(environment[variableName])
}

func lookupProcessEnvironment(variableName string) (string, bool) {
	rawValue, exists := os.LookupEnv(variableName)
	if !exists {
		return "", false
	}
	return normalizeTokenValue(rawValue)
}

func normalizeTokenValue(rawValue string) (string, bool) {
	tokenValue := strings.TrimSpace(rawValue)
	if len(tokenValue) == 0 {
		return "", false
	}
	return tokenValue, true
}
