package hostenv

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

const (
	environmentPrefixConstant                  = "forkpush_host"
	environmentLoadErrorTemplateConstant       = "unable to read host environment: %w"
	workingDirectoryMissingMessageConstant     = "current working directory does not exist"
	unsupportedOperatingSystemMessageConstant  = "unsupported host operating system"
	unsupportedOperatingSystemTemplateConstant = "%w: %s"
	macOSIdentifierConstant                    = "macos"
	darwinIdentifierConstant                   = "darwin"
)

// ErrWorkingDirectoryMissing indicates the process's working directory no longer exists.
var ErrWorkingDirectoryMissing = errors.New(workingDirectoryMissingMessageConstant)

// ErrUnsupportedOperatingSystem indicates the host platform is not the validated one.
var ErrUnsupportedOperatingSystem = errors.New(unsupportedOperatingSystemMessageConstant)

var supportedOperatingSystems = map[string]struct{}{
	macOSIdentifierConstant:  {},
	darwinIdentifierConstant: {},
}

// HostEnvironment describes the read-only context the hosting package manager provides.
type HostEnvironment struct {
	RepositoryPath    string `envconfig:"REPOSITORY"`
	TapsRoot          string `envconfig:"TAPS_ROOT"`
	GitExecutablePath string `envconfig:"GIT"`
	Verbose           bool   `envconfig:"VERBOSE"`
	Debug             bool   `envconfig:"DEBUG"`
	OperatingSystem   string `envconfig:"OS"`
}

// LoadHostEnvironment populates a HostEnvironment from process environment variables.
func LoadHostEnvironment() (HostEnvironment, error) {
	var environment HostEnvironment
	if processError := envconfig.Process(environmentPrefixConstant, &environment); processError != nil {
		return HostEnvironment{}, fmt.Errorf(environmentLoadErrorTemplateConstant, processError)
	}
	return environment, nil
}

// ResolveOperatingSystem returns the host-advertised operating system identifier,
// falling back to the runtime platform when the host does not advertise one.
func (environment HostEnvironment) ResolveOperatingSystem() string {
	trimmedIdentifier := strings.TrimSpace(environment.OperatingSystem)
	if len(trimmedIdentifier) == 0 {
		return runtime.GOOS
	}
	return strings.ToLower(trimmedIdentifier)
}

// Validate performs the startup checks that must pass before any repository is touched.
func (environment HostEnvironment) Validate(currentDirectoryResolver func() (string, error)) error {
	if currentDirectoryResolver == nil {
		currentDirectoryResolver = os.Getwd
	}

	workingDirectory, workingDirectoryError := currentDirectoryResolver()
	if workingDirectoryError != nil {
		return ErrWorkingDirectoryMissing
	}
	if _, statError := os.Stat(workingDirectory); statError != nil {
		return ErrWorkingDirectoryMissing
	}

	operatingSystem := environment.ResolveOperatingSystem()
	if _, supported := supportedOperatingSystems[operatingSystem]; !supported {
		return fmt.Errorf(unsupportedOperatingSystemTemplateConstant, ErrUnsupportedOperatingSystem, operatingSystem)
	}

	return nil
}
