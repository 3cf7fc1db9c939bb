package gitrepo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/forkpush/forkpush/internal/gitrepo"
)

func TestParseRemoteURL(testInstance *testing.T) {
	testCases := []struct {
		name        string
		input       string
		expected    gitrepo.RemoteURL
		expectError bool
	}{
		{
			name:  "git_user_shorthand",
			input: "git@github.com:contributor/homebrew-core.git",
			expected: gitrepo.RemoteURL{
				Protocol:   gitrepo.RemoteProtocolSSH,
				Host:       "github.com",
				Owner:      "contributor",
				Repository: "homebrew-core",
			},
		},
		{
			name:  "ssh_protocol_prefix",
			input: "ssh://git@github.com/contributor/tap.git",
			expected: gitrepo.RemoteURL{
				Protocol:   gitrepo.RemoteProtocolSSH,
				Host:       "github.com",
				Owner:      "contributor",
				Repository: "tap",
			},
		},
		{
			name:  "https_protocol",
			input: "https://github.com/contributor/tap.git",
			expected: gitrepo.RemoteURL{
				Protocol:   gitrepo.RemoteProtocolHTTPS,
				Host:       "github.com",
				Owner:      "contributor",
				Repository: "tap",
			},
		},
		{
			name:  "https_without_git_suffix",
			input: "https://github.com/contributor/tap",
			expected: gitrepo.RemoteURL{
				Protocol:   gitrepo.RemoteProtocolHTTPS,
				Host:       "github.com",
				Owner:      "contributor",
				Repository: "tap",
			},
		},
		{
			name:        "empty_input",
			input:       "   ",
			expectError: true,
		},
		{
			name:        "unsupported_protocol",
			input:       "ftp://example.com/some/repo",
			expectError: true,
		},
		{
			name:        "missing_path_segments",
			input:       "git@github.com:contributor",
			expectError: true,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			parsedRemote, parseError := gitrepo.ParseRemoteURL(testCase.input)
			if testCase.expectError {
				require.Error(testInstance, parseError)
				require.IsType(testInstance, gitrepo.RemoteURLParseError{}, parseError)
				return
			}
			require.NoError(testInstance, parseError)
			require.Equal(testInstance, testCase.expected, parsedRemote)
		})
	}
}
