package flags_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	flagutils "github.com/temirov/grit/internal/utils/flags"
)

func TestResolveWorkingDirectoryUsesFlagValue(testInstance *testing.T) {
	temporaryDirectory := testInstance.TempDir()

	command := &cobra.Command{Use: "example"}
	command.PersistentFlags().StringP(flagutils.DirectoryFlagName, flagutils.DirectoryFlagShorthand, "", flagutils.DirectoryFlagUsage)
	require.NoError(testInstance, command.PersistentFlags().Set(flagutils.DirectoryFlagName, temporaryDirectory))

	resolvedDirectory, resolveError := flagutils.ResolveWorkingDirectory(command)
	require.NoError(testInstance, resolveError)
	require.Equal(testInstance, filepath.Clean(temporaryDirectory), resolvedDirectory)
}

func TestResolveWorkingDirectoryDefaultsToProcessDirectory(testInstance *testing.T) {
	command := &cobra.Command{Use: "example"}

	resolvedDirectory, resolveError := flagutils.ResolveWorkingDirectory(command)
	require.NoError(testInstance, resolveError)

	workingDirectory, workingDirectoryError := os.Getwd()
	require.NoError(testInstance, workingDirectoryError)
	require.Equal(testInstance, workingDirectory, resolvedDirectory)
}
