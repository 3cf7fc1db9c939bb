package push

import "strings"

const (
	primaryBranchesConfigurationKeyConstant = "tools.push.primary_branches"
	tapBranchesConfigurationKeyConstant     = "tools.push.tap_branches"
	originNameConfigurationKeyConstant      = "tools.push.origin_name"
	verboseConfigurationKeyConstant         = "tools.push.verbose"
	debugConfigurationKeyConstant           = "tools.push.debug"
	defaultOriginNameConstant               = "origin"
	defaultPrimaryBranchMasterConstant      = "master"
	defaultPrimaryBranchStableConstant      = "stable"
	defaultTapBranchConstant                = "master"
)

// CommandConfiguration captures configurable behavior of the push command.
type CommandConfiguration struct {
	PrimaryBranches []string `mapstructure:"primary_branches"`
	TapBranches     []string `mapstructure:"tap_branches"`
	OriginName      string   `mapstructure:"origin_name"`
	Verbose         bool     `mapstructure:"verbose"`
	Debug           bool     `mapstructure:"debug"`
}

// DefaultCommandConfiguration returns the built-in push configuration.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		PrimaryBranches: []string{defaultPrimaryBranchMasterConstant, defaultPrimaryBranchStableConstant},
		TapBranches:     []string{defaultTapBranchConstant},
		OriginName:      defaultOriginNameConstant,
	}
}

// DefaultConfigurationValues exposes the push defaults keyed for the configuration loader.
func DefaultConfigurationValues() map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		primaryBranchesConfigurationKeyConstant: defaults.PrimaryBranches,
		tapBranchesConfigurationKeyConstant:     defaults.TapBranches,
		originNameConfigurationKeyConstant:      defaults.OriginName,
		verboseConfigurationKeyConstant:         defaults.Verbose,
		debugConfigurationKeyConstant:           defaults.Debug,
	}
}

// Sanitize normalizes configured values, falling back to defaults for blank entries.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	defaults := DefaultCommandConfiguration()

	sanitized := configuration
	sanitized.PrimaryBranches = sanitizeBranchList(configuration.PrimaryBranches, defaults.PrimaryBranches)
	sanitized.TapBranches = sanitizeBranchList(configuration.TapBranches, defaults.TapBranches)

	sanitized.OriginName = strings.TrimSpace(configuration.OriginName)
	if len(sanitized.OriginName) == 0 {
		sanitized.OriginName = defaults.OriginName
	}

	return sanitized
}

func sanitizeBranchList(branchNames []string, defaultBranchNames []string) []string {
	sanitizedBranchNames := make([]string, 0, len(branchNames))
	for _, branchName := range branchNames {
		trimmedBranchName := strings.TrimSpace(branchName)
		if len(trimmedBranchName) == 0 {
			continue
		}
		sanitizedBranchNames = append(sanitizedBranchNames, trimmedBranchName)
	}

	if len(sanitizedBranchNames) == 0 {
		return append([]string{}, defaultBranchNames...)
	}
	return sanitizedBranchNames
}
