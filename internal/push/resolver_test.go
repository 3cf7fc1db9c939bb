package push_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/forkpush/forkpush/internal/push"
)

type stubRemoteInspector struct {
	remoteNames      []string
	listError        error
	remoteURL        string
	remoteURLError   error
	listedPaths      []string
	requestedRemotes []string
}

func (inspector *stubRemoteInspector) ListRemoteNames(_ context.Context, repositoryPath string) ([]string, error) {
	inspector.listedPaths = append(inspector.listedPaths, repositoryPath)
	if inspector.listError != nil {
		return nil, inspector.listError
	}
	return inspector.remoteNames, nil
}

func (inspector *stubRemoteInspector) GetRemoteURL(_ context.Context, _ string, remoteName string) (string, error) {
	inspector.requestedRemotes = append(inspector.requestedRemotes, remoteName)
	if inspector.remoteURLError != nil {
		return "", inspector.remoteURLError
	}
	return inspector.remoteURL, nil
}

func TestNewForkRemoteResolverRequiresInspector(testInstance *testing.T) {
	resolver, creationError := push.NewForkRemoteResolver(nil, "origin")

	require.ErrorIs(testInstance, creationError, push.ErrRemoteInspectorNotConfigured)
	require.Nil(testInstance, resolver)
}

func TestForkRemoteResolverResolve(testInstance *testing.T) {
	testCases := []struct {
		name               string
		originName         string
		remoteNames        []string
		listError          error
		expectedRemoteName string
		expectedError      error
	}{
		{
			name:               "single_fork_remote_resolved",
			originName:         "origin",
			remoteNames:        []string{"origin", "myfork"},
			expectedRemoteName: "myfork",
		},
		{
			name:          "origin_only_reports_no_fork",
			originName:    "origin",
			remoteNames:   []string{"origin"},
			expectedError: push.ErrNoForkRemote,
		},
		{
			name:          "no_remotes_reports_no_fork",
			originName:    "origin",
			remoteNames:   []string{},
			expectedError: push.ErrNoForkRemote,
		},
		{
			name:          "multiple_fork_remotes_ambiguous",
			originName:    "origin",
			remoteNames:   []string{"origin", "myfork", "upstream"},
			expectedError: push.ErrAmbiguousForkRemote,
		},
		{
			name:          "remote_listing_failure_reports_not_a_repository",
			originName:    "origin",
			listError:     errors.New("fatal: not a git repository"),
			expectedError: push.ErrNotARepository,
		},
		{
			name:               "blank_origin_name_falls_back_to_origin",
			originName:         "   ",
			remoteNames:        []string{"origin", "myfork"},
			expectedRemoteName: "myfork",
		},
		{
			name:               "custom_origin_name_filters_that_remote",
			originName:         "upstream",
			remoteNames:        []string{"upstream", "myfork"},
			expectedRemoteName: "myfork",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			repositoryPath := testInstance.TempDir()
			inspector := &stubRemoteInspector{remoteNames: testCase.remoteNames, listError: testCase.listError}

			resolver, creationError := push.NewForkRemoteResolver(inspector, testCase.originName)
			require.NoError(testInstance, creationError)

			remoteName, resolveError := resolver.Resolve(context.Background(), repositoryPath)

			if testCase.expectedError != nil {
				require.ErrorIs(testInstance, resolveError, testCase.expectedError)
				return
			}

			require.NoError(testInstance, resolveError)
			require.Equal(testInstance, testCase.expectedRemoteName, remoteName)
			require.Equal(testInstance, []string{repositoryPath}, inspector.listedPaths)
		})
	}
}

func TestForkRemoteResolverMissingDirectorySkipsGit(testInstance *testing.T) {
	missingPath := filepath.Join(testInstance.TempDir(), "vanished")
	inspector := &stubRemoteInspector{remoteNames: []string{"origin", "myfork"}}

	resolver, creationError := push.NewForkRemoteResolver(inspector, "origin")
	require.NoError(testInstance, creationError)

	_, resolveError := resolver.Resolve(context.Background(), missingPath)

	require.ErrorIs(testInstance, resolveError, push.ErrNotARepository)
	require.Empty(testInstance, inspector.listedPaths)
}

func TestForkRemoteResolverEnumeratesFreshPerCall(testInstance *testing.T) {
	repositoryPath := testInstance.TempDir()
	inspector := &stubRemoteInspector{remoteNames: []string{"origin", "myfork"}}

	resolver, creationError := push.NewForkRemoteResolver(inspector, "origin")
	require.NoError(testInstance, creationError)

	_, firstError := resolver.Resolve(context.Background(), repositoryPath)
	require.NoError(testInstance, firstError)
	_, secondError := resolver.Resolve(context.Background(), repositoryPath)
	require.NoError(testInstance, secondError)

	require.Equal(testInstance, []string{repositoryPath, repositoryPath}, inspector.listedPaths)
}

func TestForkRemoteResolverDescribeForkRemote(testInstance *testing.T) {
	testCases := []struct {
		name                string
		remoteURL           string
		remoteURLError      error
		expectedDescription string
	}{
		{
			name:                "owner_extracted_from_ssh_url",
			remoteURL:           "git@github.com:contributor/homebrew-core.git",
			expectedDescription: "myfork (contributor)",
		},
		{
			name:                "owner_extracted_from_https_url",
			remoteURL:           "https://github.com/contributor/homebrew-core.git",
			expectedDescription: "myfork (contributor)",
		},
		{
			name:                "url_lookup_failure_falls_back_to_name",
			remoteURLError:      errors.New("no such remote"),
			expectedDescription: "myfork",
		},
		{
			name:                "unparseable_url_falls_back_to_name",
			remoteURL:           "not a remote url",
			expectedDescription: "myfork",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			inspector := &stubRemoteInspector{remoteURL: testCase.remoteURL, remoteURLError: testCase.remoteURLError}

			resolver, creationError := push.NewForkRemoteResolver(inspector, "origin")
			require.NoError(testInstance, creationError)

			description := resolver.DescribeForkRemote(context.Background(), "/opt/host/repository", "myfork")

			require.Equal(testInstance, testCase.expectedDescription, description)
			require.Equal(testInstance, []string{"myfork"}, inspector.requestedRemotes)
		})
	}
}
