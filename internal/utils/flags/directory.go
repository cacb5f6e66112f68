package flags

import (
	"github.com/spf13/cobra"

	pathutils "github.com/temirov/grit/internal/utils/path"
)

// ResolveWorkingDirectory resolves the shared directory flag into an absolute path.
//
// Commands without the flag fall back to the process working directory.
func ResolveWorkingDirectory(command *cobra.Command) (string, error) {
	directoryValue := ""
	if command != nil {
		if flagValue, _, flagError := StringFlag(command, DirectoryFlagName); flagError == nil {
			directoryValue = flagValue
		}
	}
	return pathutils.NewWorkingDirectoryResolver().Resolve(directoryValue)
}
