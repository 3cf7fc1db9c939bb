package hostenv_test

import (
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/forkpush/forkpush/internal/hostenv"
)

func TestLoadHostEnvironmentReadsPrefixedVariables(testInstance *testing.T) {
	testInstance.Setenv("FORKPUSH_HOST_REPOSITORY", "/opt/host/repository")
	testInstance.Setenv("FORKPUSH_HOST_TAPS_ROOT", "/opt/host/Library/Taps")
	testInstance.Setenv("FORKPUSH_HOST_GIT", "/opt/host/bin/git")
	testInstance.Setenv("FORKPUSH_HOST_VERBOSE", "true")
	testInstance.Setenv("FORKPUSH_HOST_DEBUG", "false")
	testInstance.Setenv("FORKPUSH_HOST_OS", "macos")

	environment, loadError := hostenv.LoadHostEnvironment()
	require.NoError(testInstance, loadError)
	require.Equal(testInstance, "/opt/host/repository", environment.RepositoryPath)
	require.Equal(testInstance, "/opt/host/Library/Taps", environment.TapsRoot)
	require.Equal(testInstance, "/opt/host/bin/git", environment.GitExecutablePath)
	require.True(testInstance, environment.Verbose)
	require.False(testInstance, environment.Debug)
	require.Equal(testInstance, "macos", environment.OperatingSystem)
}

func TestResolveOperatingSystem(testInstance *testing.T) {
	testCases := []struct {
		name               string
		advertisedValue    string
		expectedIdentifier string
	}{
		{
			name:               "advertised_identifier_lowered",
			advertisedValue:    "MacOS",
			expectedIdentifier: "macos",
		},
		{
			name:               "empty_falls_back_to_runtime",
			advertisedValue:    "",
			expectedIdentifier: runtime.GOOS,
		},
		{
			name:               "whitespace_falls_back_to_runtime",
			advertisedValue:    "   ",
			expectedIdentifier: runtime.GOOS,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			environment := hostenv.HostEnvironment{OperatingSystem: testCase.advertisedValue}
			require.Equal(testInstance, testCase.expectedIdentifier, environment.ResolveOperatingSystem())
		})
	}
}

func TestValidateRejectsUnsupportedOperatingSystem(testInstance *testing.T) {
	environment := hostenv.HostEnvironment{OperatingSystem: "plan9"}

	validationError := environment.Validate(nil)
	require.ErrorIs(testInstance, validationError, hostenv.ErrUnsupportedOperatingSystem)
	require.ErrorContains(testInstance, validationError, "plan9")
}

func TestValidateAcceptsSupportedOperatingSystems(testInstance *testing.T) {
	for _, identifier := range []string{"macos", "darwin", "Darwin"} {
		environment := hostenv.HostEnvironment{OperatingSystem: identifier}
		require.NoError(testInstance, environment.Validate(nil), identifier)
	}
}

func TestValidateReportsMissingWorkingDirectory(testInstance *testing.T) {
	environment := hostenv.HostEnvironment{OperatingSystem: "macos"}

	failingResolver := func() (string, error) {
		return "", errors.New("getcwd: no such file or directory")
	}
	require.ErrorIs(testInstance, environment.Validate(failingResolver), hostenv.ErrWorkingDirectoryMissing)

	vanishedDirectoryResolver := func() (string, error) {
		return testInstance.TempDir() + "/vanished", nil
	}
	require.ErrorIs(testInstance, environment.Validate(vanishedDirectoryResolver), hostenv.ErrWorkingDirectoryMissing)
}
