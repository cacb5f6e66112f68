package repoinit

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/grit/internal/githubcli"
	"github.com/temirov/grit/internal/testsupport"
	"github.com/temirov/grit/internal/toolcheck"
)

const testRepositoryPathConstant = "/workspace/widgets"

type stubHostingInspector struct {
	state        toolcheck.GitHubCLIState
	inspectError error
	invocations  int
}

func (inspector *stubHostingInspector) InspectGitHubCLI(context.Context) (toolcheck.GitHubCLIState, error) {
	inspector.invocations++
	if inspector.inspectError != nil {
		return toolcheck.GitHubCLIUnavailable, inspector.inspectError
	}
	return inspector.state, nil
}

type stubRepositoryCreator struct {
	creationError error
	recorded      []githubcli.RepositoryCreationOptions
}

func (creator *stubRepositoryCreator) CreateRepository(_ context.Context, options githubcli.RepositoryCreationOptions) error {
	creator.recorded = append(creator.recorded, options)
	return creator.creationError
}

type stubFileSystem struct {
	existingPaths map[string]bool
	statErrors    map[string]error
	writeError    error
	writtenFiles  map[string][]byte
	writtenModes  map[string]fs.FileMode
}

func (filesystem *stubFileSystem) Stat(path string) (fs.FileInfo, error) {
	if statError, found := filesystem.statErrors[path]; found {
		return nil, statError
	}
	if filesystem.existingPaths[path] {
		return nil, nil
	}
	return nil, fs.ErrNotExist
}

func (filesystem *stubFileSystem) WriteFile(path string, data []byte, permissions fs.FileMode) error {
	if filesystem.writeError != nil {
		return filesystem.writeError
	}
	if filesystem.writtenFiles == nil {
		filesystem.writtenFiles = map[string][]byte{}
	}
	if filesystem.writtenModes == nil {
		filesystem.writtenModes = map[string]fs.FileMode{}
	}
	filesystem.writtenFiles[path] = data
	filesystem.writtenModes[path] = permissions
	return nil
}

type initializeFixture struct {
	executor   *testsupport.GitExecutorStub
	filesystem *stubFileSystem
	inspector  *stubHostingInspector
	creator    *stubRepositoryCreator
	service    *Service
}

func newInitializeFixture(testInstance *testing.T, state toolcheck.GitHubCLIState) *initializeFixture {
	testInstance.Helper()
	fixture := &initializeFixture{
		executor:   &testsupport.GitExecutorStub{},
		filesystem: &stubFileSystem{},
		inspector:  &stubHostingInspector{state: state},
		creator:    &stubRepositoryCreator{},
	}
	service, serviceError := NewService(ServiceDependencies{
		GitExecutor:       fixture.executor,
		FileSystem:        fixture.filesystem,
		HostingInspector:  fixture.inspector,
		RepositoryCreator: fixture.creator,
	})
	require.NoError(testInstance, serviceError)
	fixture.service = service
	return fixture
}

func TestNewServiceValidation(testInstance *testing.T) {
	executor := &testsupport.GitExecutorStub{}
	filesystem := &stubFileSystem{}
	inspector := &stubHostingInspector{}
	creator := &stubRepositoryCreator{}

	testCases := []struct {
		name          string
		dependencies  ServiceDependencies
		expectedError error
	}{
		{
			name:          "missing_git_executor",
			dependencies:  ServiceDependencies{FileSystem: filesystem, HostingInspector: inspector, RepositoryCreator: creator},
			expectedError: ErrGitExecutorNotConfigured,
		},
		{
			name:          "missing_filesystem",
			dependencies:  ServiceDependencies{GitExecutor: executor, HostingInspector: inspector, RepositoryCreator: creator},
			expectedError: ErrFileSystemNotConfigured,
		},
		{
			name:          "missing_hosting_inspector",
			dependencies:  ServiceDependencies{GitExecutor: executor, FileSystem: filesystem, RepositoryCreator: creator},
			expectedError: ErrHostingInspectorNotConfigured,
		},
		{
			name:          "missing_repository_creator",
			dependencies:  ServiceDependencies{GitExecutor: executor, FileSystem: filesystem, HostingInspector: inspector},
			expectedError: ErrRepositoryCreatorNotConfigured,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			_, constructionError := NewService(testCase.dependencies)
			require.ErrorIs(testInstance, constructionError, testCase.expectedError)
		})
	}
}

func TestInitializeCreatesRepositoryAndPublishes(testInstance *testing.T) {
	fixture := newInitializeFixture(testInstance, toolcheck.GitHubCLIAuthenticated)

	result, initializationError := fixture.service.Initialize(context.Background(), Options{RepositoryPath: testRepositoryPathConstant})
	require.NoError(testInstance, initializationError)
	require.Equal(testInstance, "widgets", result.RepositoryName)
	require.True(testInstance, result.GitIgnoreCreated)
	require.True(testInstance, result.ReadmeCreated)
	require.True(testInstance, result.RemoteConfigured)
	require.Empty(testInstance, result.SkipReason)

	require.Equal(testInstance, []string{"init", "add .", "commit -m Initial commit"}, fixture.executor.GitCommandKeys())
	for _, command := range fixture.executor.ExecutedGitCommands {
		require.Equal(testInstance, testRepositoryPathConstant, command.WorkingDirectory)
	}

	readmePath := filepath.Join(testRepositoryPathConstant, "README.md")
	require.Equal(testInstance, []byte("# widgets\n"), fixture.filesystem.writtenFiles[readmePath])
	gitignorePath := filepath.Join(testRepositoryPathConstant, ".gitignore")
	require.Contains(testInstance, string(fixture.filesystem.writtenFiles[gitignorePath]), "*.log")
	require.Equal(testInstance, fs.FileMode(0o644), fixture.filesystem.writtenModes[readmePath])

	require.Len(testInstance, fixture.creator.recorded, 1)
	require.Equal(testInstance, githubcli.RepositoryCreationOptions{
		Name:           "widgets",
		Visibility:     githubcli.RepositoryVisibilityPrivate,
		RepositoryPath: testRepositoryPathConstant,
	}, fixture.creator.recorded[0])
}

func TestInitializeHonorsNameAndVisibilityOverrides(testInstance *testing.T) {
	fixture := newInitializeFixture(testInstance, toolcheck.GitHubCLIAuthenticated)

	result, initializationError := fixture.service.Initialize(context.Background(), Options{
		RepositoryPath: testRepositoryPathConstant,
		RepositoryName: "  gadget-api  ",
		Visibility:     githubcli.RepositoryVisibilityPublic,
	})
	require.NoError(testInstance, initializationError)
	require.Equal(testInstance, "gadget-api", result.RepositoryName)

	readmePath := filepath.Join(testRepositoryPathConstant, "README.md")
	require.Equal(testInstance, []byte("# gadget-api\n"), fixture.filesystem.writtenFiles[readmePath])

	require.Len(testInstance, fixture.creator.recorded, 1)
	require.Equal(testInstance, githubcli.RepositoryVisibilityPublic, fixture.creator.recorded[0].Visibility)
	require.Equal(testInstance, "gadget-api", fixture.creator.recorded[0].Name)
}

func TestInitializeSkipsExistingTemplates(testInstance *testing.T) {
	fixture := newInitializeFixture(testInstance, toolcheck.GitHubCLIAuthenticated)
	fixture.filesystem.existingPaths = map[string]bool{
		filepath.Join(testRepositoryPathConstant, ".gitignore"): true,
		filepath.Join(testRepositoryPathConstant, "README.md"):  true,
	}

	result, initializationError := fixture.service.Initialize(context.Background(), Options{RepositoryPath: testRepositoryPathConstant})
	require.NoError(testInstance, initializationError)
	require.False(testInstance, result.GitIgnoreCreated)
	require.False(testInstance, result.ReadmeCreated)
	require.Empty(testInstance, fixture.filesystem.writtenFiles)
}

func TestInitializeSkipsPublicationWhenCLIDegraded(testInstance *testing.T) {
	testCases := []struct {
		name               string
		state              toolcheck.GitHubCLIState
		expectedSkipReason string
	}{
		{
			name:               "cli_unavailable",
			state:              toolcheck.GitHubCLIUnavailable,
			expectedSkipReason: "GitHub CLI not found in PATH",
		},
		{
			name:               "cli_unauthenticated",
			state:              toolcheck.GitHubCLIUnauthenticated,
			expectedSkipReason: "GitHub CLI is not authenticated (run 'gh auth login')",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			fixture := newInitializeFixture(testInstance, testCase.state)

			result, initializationError := fixture.service.Initialize(context.Background(), Options{RepositoryPath: testRepositoryPathConstant})
			require.NoError(testInstance, initializationError)
			require.False(testInstance, result.RemoteConfigured)
			require.Equal(testInstance, testCase.expectedSkipReason, result.SkipReason)
			require.Empty(testInstance, fixture.creator.recorded)
			require.Len(testInstance, fixture.executor.ExecutedGitCommands, 3)
		})
	}
}

func TestInitializeValidatesRepositoryPath(testInstance *testing.T) {
	fixture := newInitializeFixture(testInstance, toolcheck.GitHubCLIAuthenticated)

	_, initializationError := fixture.service.Initialize(context.Background(), Options{RepositoryPath: "  "})
	require.ErrorIs(testInstance, initializationError, ErrRepositoryPathRequired)
	require.Empty(testInstance, fixture.executor.ExecutedGitCommands)
}

func TestInitializePropagatesFailures(testInstance *testing.T) {
	testInstance.Run("init_fails", func(testInstance *testing.T) {
		fixture := newInitializeFixture(testInstance, toolcheck.GitHubCLIAuthenticated)
		fixture.executor.GitErrors = map[string]error{"init": errors.New("permission denied")}

		_, initializationError := fixture.service.Initialize(context.Background(), Options{RepositoryPath: testRepositoryPathConstant})
		require.ErrorContains(testInstance, initializationError, "failed to initialize repository")
	})

	testInstance.Run("template_write_fails", func(testInstance *testing.T) {
		fixture := newInitializeFixture(testInstance, toolcheck.GitHubCLIAuthenticated)
		fixture.filesystem.writeError = errors.New("read-only filesystem")

		_, initializationError := fixture.service.Initialize(context.Background(), Options{RepositoryPath: testRepositoryPathConstant})
		require.ErrorContains(testInstance, initializationError, "failed to write .gitignore")
	})

	testInstance.Run("template_stat_fails", func(testInstance *testing.T) {
		fixture := newInitializeFixture(testInstance, toolcheck.GitHubCLIAuthenticated)
		fixture.filesystem.statErrors = map[string]error{
			filepath.Join(testRepositoryPathConstant, ".gitignore"): errors.New("input/output error"),
		}

		_, initializationError := fixture.service.Initialize(context.Background(), Options{RepositoryPath: testRepositoryPathConstant})
		require.ErrorContains(testInstance, initializationError, "failed to inspect .gitignore")
	})

	testInstance.Run("commit_fails", func(testInstance *testing.T) {
		fixture := newInitializeFixture(testInstance, toolcheck.GitHubCLIAuthenticated)
		fixture.executor.GitErrors = map[string]error{"commit -m Initial commit": errors.New("nothing to commit")}

		_, initializationError := fixture.service.Initialize(context.Background(), Options{RepositoryPath: testRepositoryPathConstant})
		require.ErrorContains(testInstance, initializationError, "failed to create the initial commit")
	})

	testInstance.Run("publication_fails", func(testInstance *testing.T) {
		fixture := newInitializeFixture(testInstance, toolcheck.GitHubCLIAuthenticated)
		fixture.creator.creationError = errors.New("name already exists")

		_, initializationError := fixture.service.Initialize(context.Background(), Options{RepositoryPath: testRepositoryPathConstant})
		require.ErrorContains(testInstance, initializationError, "failed to create GitHub repository")
	})

	testInstance.Run("inspection_fails", func(testInstance *testing.T) {
		fixture := newInitializeFixture(testInstance, toolcheck.GitHubCLIAuthenticated)
		fixture.inspector.inspectError = errors.New("locator misconfigured")

		_, initializationError := fixture.service.Initialize(context.Background(), Options{RepositoryPath: testRepositoryPathConstant})
		require.ErrorContains(testInstance, initializationError, "failed to inspect GitHub CLI")
	})
}
