package flags

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/temirov/grit/internal/utils"
)

const (
	// DryRunFlagName exposes the shared dry-run flag name.
	DryRunFlagName = "dry-run"
	// DryRunFlagUsage describes the shared dry-run flag purpose.
	DryRunFlagUsage = "Preview operations without making changes"
	// RemoteFlagName exposes the shared remote flag name.
	RemoteFlagName = "remote"
	// RemoteFlagUsage describes the shared remote flag purpose.
	RemoteFlagUsage = "Remote name to target"
	// DirectoryFlagName exposes the shared working directory flag name.
	DirectoryFlagName = "directory"
	// DirectoryFlagShorthand provides the shorthand for the working directory flag.
	DirectoryFlagShorthand = "C"
	// DirectoryFlagUsage describes the shared working directory flag purpose.
	DirectoryFlagUsage = "Run as if started in the provided directory"

	flagNotDefinedErrorTemplateConstant = "flag %q is not defined on command %q"
)

// BoolFlag resolves a boolean flag from the command or its ancestors alongside whether the user changed it.
func BoolFlag(command *cobra.Command, flagName string) (bool, bool, error) {
	resolvedFlag := lookupFlag(command, flagName)
	if resolvedFlag == nil {
		return false, false, fmt.Errorf(flagNotDefinedErrorTemplateConstant, flagName, commandName(command))
	}

	flagValue, parseError := command.Flags().GetBool(flagName)
	if parseError != nil {
		inheritedValue, inheritedError := command.InheritedFlags().GetBool(flagName)
		if inheritedError != nil {
			return false, false, inheritedError
		}
		flagValue = inheritedValue
	}

	return flagValue, resolvedFlag.Changed, nil
}

// StringFlag resolves a string flag from the command or its ancestors alongside whether the user changed it.
func StringFlag(command *cobra.Command, flagName string) (string, bool, error) {
	resolvedFlag := lookupFlag(command, flagName)
	if resolvedFlag == nil {
		return "", false, fmt.Errorf(flagNotDefinedErrorTemplateConstant, flagName, commandName(command))
	}

	flagValue, parseError := command.Flags().GetString(flagName)
	if parseError != nil {
		inheritedValue, inheritedError := command.InheritedFlags().GetString(flagName)
		if inheritedError != nil {
			return "", false, inheritedError
		}
		flagValue = inheritedValue
	}

	return flagValue, resolvedFlag.Changed, nil
}

// ResolveExecutionFlags collects shared execution flags for the command.
//
// Values already attached to the command context win over flag lookups so
// services invoked outside Cobra can inject them directly.
func ResolveExecutionFlags(command *cobra.Command) (utils.ExecutionFlags, bool) {
	if command == nil {
		return utils.ExecutionFlags{}, false
	}

	contextAccessor := utils.NewCommandContextAccessor()
	if contextFlags, contextFlagsFound := contextAccessor.ExecutionFlags(command.Context()); contextFlagsFound {
		return contextFlags, true
	}

	resolvedFlags := utils.ExecutionFlags{}
	anyFlagResolved := false

	if dryRunValue, dryRunChanged, dryRunError := BoolFlag(command, DryRunFlagName); dryRunError == nil {
		resolvedFlags.DryRun = dryRunValue
		resolvedFlags.DryRunSet = dryRunChanged
		anyFlagResolved = true
	}

	if remoteValue, remoteChanged, remoteError := StringFlag(command, RemoteFlagName); remoteError == nil {
		resolvedFlags.Remote = remoteValue
		resolvedFlags.RemoteSet = remoteChanged
		anyFlagResolved = true
	}

	return resolvedFlags, anyFlagResolved
}

// EnsureRemoteFlag guarantees the shared remote flag is available on the command.
func EnsureRemoteFlag(command *cobra.Command, defaultValue string, usage string) {
	if command == nil {
		return
	}

	persistentSet := command.PersistentFlags()
	if persistentSet.Lookup(RemoteFlagName) == nil {
		persistentSet.String(RemoteFlagName, defaultValue, usage)
	}

	if command.Flags().Lookup(RemoteFlagName) == nil {
		if remoteFlag := persistentSet.Lookup(RemoteFlagName); remoteFlag != nil {
			command.Flags().AddFlag(remoteFlag)
		}
	}
}

func lookupFlag(command *cobra.Command, flagName string) *pflag.Flag {
	if command == nil {
		return nil
	}
	if localFlag := command.Flags().Lookup(flagName); localFlag != nil {
		return localFlag
	}
	return command.InheritedFlags().Lookup(flagName)
}

func commandName(command *cobra.Command) string {
	if command == nil {
		return ""
	}
	return command.Name()
}
