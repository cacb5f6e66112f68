package cli

import _ "embed"

// defaultConfigurationContent holds the built-in config.yaml shipped inside
// the binary. It supplies every tool's defaults when no config file is found.
//
//go:embed default_config.yaml
var defaultConfigurationContent []byte

// EmbeddedDefaultConfiguration returns a copy of the built-in configuration
// together with its format identifier. Callers get a copy so the embedded
// bytes cannot be mutated between configuration reloads.
func EmbeddedDefaultConfiguration() ([]byte, string) {
	return append([]byte(nil), defaultConfigurationContent...), configurationTypeConstant
}
