package utils_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/forkpush/forkpush/internal/utils"
)

func TestLoggerFactoryCreateLogger(testInstance *testing.T) {
	testCases := []struct {
		name          string
		logLevel      utils.LogLevel
		logFormat     utils.LogFormat
		expectedError string
	}{
		{
			name:      "debug_console",
			logLevel:  utils.LogLevelDebug,
			logFormat: utils.LogFormatConsole,
		},
		{
			name:      "info_structured",
			logLevel:  utils.LogLevelInfo,
			logFormat: utils.LogFormatStructured,
		},
		{
			name:      "warn_console",
			logLevel:  utils.LogLevelWarn,
			logFormat: utils.LogFormatConsole,
		},
		{
			name:      "error_structured",
			logLevel:  utils.LogLevelError,
			logFormat: utils.LogFormatStructured,
		},
		{
			name:          "unsupported_level",
			logLevel:      utils.LogLevel("verbose"),
			logFormat:     utils.LogFormatConsole,
			expectedError: "unsupported log level: verbose",
		},
		{
			name:          "unsupported_format",
			logLevel:      utils.LogLevelInfo,
			logFormat:     utils.LogFormat("plain"),
			expectedError: "unsupported log format: plain",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			factory := utils.NewLoggerFactory()

			logger, creationError := factory.CreateLogger(testCase.logLevel, testCase.logFormat)

			if len(testCase.expectedError) > 0 {
				require.Error(testInstance, creationError)
				require.EqualError(testInstance, creationError, testCase.expectedError)
				require.Nil(testInstance, logger)
				return
			}

			require.NoError(testInstance, creationError)
			require.NotNil(testInstance, logger)
		})
	}
}

func TestParseLogLevel(testInstance *testing.T) {
	testCases := []struct {
		name          string
		rawValue      string
		expectedLevel utils.LogLevel
		expectError   bool
	}{
		{name: "blank_uses_default", rawValue: "   ", expectedLevel: utils.LogLevelInfo},
		{name: "mixed_case_normalized", rawValue: "DeBuG", expectedLevel: utils.LogLevelDebug},
		{name: "unknown_rejected", rawValue: "trace", expectedLevel: utils.LogLevelInfo, expectError: true},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			parsedLevel, parseError := utils.ParseLogLevel(testCase.rawValue, utils.LogLevelInfo)

			if testCase.expectError {
				require.Error(testInstance, parseError)
			} else {
				require.NoError(testInstance, parseError)
			}
			require.Equal(testInstance, testCase.expectedLevel, parsedLevel)
		})
	}
}

func TestParseLogFormat(testInstance *testing.T) {
	testCases := []struct {
		name           string
		rawValue       string
		expectedFormat utils.LogFormat
		expectError    bool
	}{
		{name: "blank_uses_default", rawValue: "", expectedFormat: utils.LogFormatConsole},
		{name: "structured_accepted", rawValue: "structured", expectedFormat: utils.LogFormatStructured},
		{name: "unknown_rejected", rawValue: "logfmt", expectedFormat: utils.LogFormatConsole, expectError: true},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			parsedFormat, parseError := utils.ParseLogFormat(testCase.rawValue, utils.LogFormatConsole)

			if testCase.expectError {
				require.Error(testInstance, parseError)
			} else {
				require.NoError(testInstance, parseError)
			}
			require.Equal(testInstance, testCase.expectedFormat, parsedFormat)
		})
	}
}
