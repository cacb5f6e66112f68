package pathutils_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	pathutils "github.com/temirov/grit/internal/utils/path"
)

const testHomeSubdirectoryConstant = "projects/sample"

func TestWorkingDirectoryResolverResolve(testInstance *testing.T) {
	fakeHomeDirectory := testInstance.TempDir()
	homeExpander := pathutils.NewHomeExpanderWithProvider(func() (string, error) {
		return fakeHomeDirectory, nil
	})
	resolver := pathutils.NewWorkingDirectoryResolverWithExpander(homeExpander)

	currentWorkingDirectory, workingDirectoryError := os.Getwd()
	require.NoError(testInstance, workingDirectoryError)

	testCases := []struct {
		name               string
		candidateDirectory string
		expectedDirectory  string
	}{
		{
			name:               "blank_candidate_resolves_to_working_directory",
			candidateDirectory: "   ",
			expectedDirectory:  currentWorkingDirectory,
		},
		{
			name:               "tilde_prefix_expands_to_home",
			candidateDirectory: "~/" + testHomeSubdirectoryConstant,
			expectedDirectory:  filepath.Join(fakeHomeDirectory, testHomeSubdirectoryConstant),
		},
		{
			name:               "relative_candidate_becomes_absolute",
			candidateDirectory: "./nested/../nested",
			expectedDirectory:  filepath.Join(currentWorkingDirectory, "nested"),
		},
		{
			name:               "absolute_candidate_is_cleaned",
			candidateDirectory: fakeHomeDirectory + string(os.PathSeparator) + ".",
			expectedDirectory:  fakeHomeDirectory,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			resolvedDirectory, resolveError := resolver.Resolve(testCase.candidateDirectory)
			require.NoError(testInstance, resolveError)
			require.Equal(testInstance, testCase.expectedDirectory, resolvedDirectory)
		})
	}
}

func TestHomeExpanderExpand(testInstance *testing.T) {
	fakeHomeDirectory := testInstance.TempDir()
	homeExpander := pathutils.NewHomeExpanderWithProvider(func() (string, error) {
		return fakeHomeDirectory, nil
	})

	require.Equal(testInstance, fakeHomeDirectory, homeExpander.Expand("~"))
	require.Equal(testInstance, filepath.Join(fakeHomeDirectory, "repos"), homeExpander.Expand("~/repos"))
	require.Equal(testInstance, "/var/tmp", homeExpander.Expand("/var/tmp"))
	require.Equal(testInstance, "~repos", homeExpander.Expand("~repos"))
}
