package utils_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/forkpush/forkpush/internal/utils"
)

const (
	testConfigurationNameConstant        = "config"
	testConfigurationTypeConstant        = "yaml"
	testEnvironmentPrefixConstant        = "FORKPUSH"
	testConfigurationFileNameConstant    = "config.yaml"
	testPrimaryBranchesEnvironmentKey    = "FORKPUSH_TOOLS_PUSH_PRIMARY_BRANCHES"
	testOriginNameEnvironmentKeyConstant = "FORKPUSH_TOOLS_PUSH_ORIGIN_NAME"
)

type testCommonConfiguration struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

type testPushConfiguration struct {
	PrimaryBranches []string `mapstructure:"primary_branches"`
	OriginName      string   `mapstructure:"origin_name"`
}

type testToolsConfiguration struct {
	Push testPushConfiguration `mapstructure:"push"`
}

type testRootConfiguration struct {
	Common testCommonConfiguration `mapstructure:"common"`
	Tools  testToolsConfiguration  `mapstructure:"tools"`
}

func writeConfigurationFixture(testInstance *testing.T, document map[string]any) string {
	testInstance.Helper()

	serializedDocument, marshalError := yaml.Marshal(document)
	require.NoError(testInstance, marshalError)

	fixturePath := filepath.Join(testInstance.TempDir(), testConfigurationFileNameConstant)
	require.NoError(testInstance, os.WriteFile(fixturePath, serializedDocument, 0o644))
	return fixturePath
}

func defaultTestValues() map[string]any {
	return map[string]any{
		"common.log_level":            "info",
		"common.log_format":           "console",
		"tools.push.primary_branches": []string{"master", "stable"},
		"tools.push.origin_name":      "origin",
	}
}

func TestConfigurationLoaderAppliesDefaults(testInstance *testing.T) {
	loader := utils.NewConfigurationLoader(testConfigurationNameConstant, testConfigurationTypeConstant, testEnvironmentPrefixConstant, nil)

	var configuration testRootConfiguration
	loadedConfiguration, loadError := loader.LoadConfiguration("", defaultTestValues(), &configuration)

	require.NoError(testInstance, loadError)
	require.Empty(testInstance, loadedConfiguration.ConfigFileUsed)
	require.Equal(testInstance, "info", configuration.Common.LogLevel)
	require.Equal(testInstance, []string{"master", "stable"}, configuration.Tools.Push.PrimaryBranches)
	require.Equal(testInstance, "origin", configuration.Tools.Push.OriginName)
}

func TestConfigurationLoaderReadsConfigurationFile(testInstance *testing.T) {
	fixturePath := writeConfigurationFixture(testInstance, map[string]any{
		"common": map[string]any{
			"log_level": "debug",
		},
		"tools": map[string]any{
			"push": map[string]any{
				"primary_branches": []string{"main"},
			},
		},
	})

	loader := utils.NewConfigurationLoader(testConfigurationNameConstant, testConfigurationTypeConstant, testEnvironmentPrefixConstant, nil)

	var configuration testRootConfiguration
	loadedConfiguration, loadError := loader.LoadConfiguration(fixturePath, defaultTestValues(), &configuration)

	require.NoError(testInstance, loadError)
	require.Equal(testInstance, fixturePath, loadedConfiguration.ConfigFileUsed)
	require.Equal(testInstance, "debug", configuration.Common.LogLevel)
	require.Equal(testInstance, "console", configuration.Common.LogFormat)
	require.Equal(testInstance, []string{"main"}, configuration.Tools.Push.PrimaryBranches)
}

func TestConfigurationLoaderEnvironmentOverrides(testInstance *testing.T) {
	testInstance.Setenv(testOriginNameEnvironmentKeyConstant, "upstream")
	testInstance.Setenv(testPrimaryBranchesEnvironmentKey, "master,stable,release")

	loader := utils.NewConfigurationLoader(testConfigurationNameConstant, testConfigurationTypeConstant, testEnvironmentPrefixConstant, nil)

	var configuration testRootConfiguration
	_, loadError := loader.LoadConfiguration("", defaultTestValues(), &configuration)

	require.NoError(testInstance, loadError)
	require.Equal(testInstance, "upstream", configuration.Tools.Push.OriginName)
	require.Equal(testInstance, []string{"master", "stable", "release"}, configuration.Tools.Push.PrimaryBranches)
}

func TestConfigurationLoaderRejectsMalformedFile(testInstance *testing.T) {
	fixturePath := filepath.Join(testInstance.TempDir(), testConfigurationFileNameConstant)
	require.NoError(testInstance, os.WriteFile(fixturePath, []byte("common: [unbalanced"), 0o644))

	loader := utils.NewConfigurationLoader(testConfigurationNameConstant, testConfigurationTypeConstant, testEnvironmentPrefixConstant, nil)

	var configuration testRootConfiguration
	_, loadError := loader.LoadConfiguration(fixturePath, defaultTestValues(), &configuration)

	require.Error(testInstance, loadError)
	require.Contains(testInstance, loadError.Error(), "failed to read configuration")
}
