package execshell

import (
	"os/exec"
	"strings"
	"sync"
)

// GitExecutableLocator resolves the git executable path exactly once per process.
//
// The hosting package manager may ship its own git; when it advertises a path
// the locator prefers it over whatever PATH lookup would find.
type GitExecutableLocator struct {
	resolveOnce func() (string, error)
}

// NewGitExecutableLocator constructs a locator honoring the optional override path.
func NewGitExecutableLocator(overridePath string) *GitExecutableLocator {
	trimmedOverridePath := strings.TrimSpace(overridePath)
	locator := &GitExecutableLocator{}
	locator.resolveOnce = sync.OnceValues(func() (string, error) {
		if len(trimmedOverridePath) > 0 {
			return trimmedOverridePath, nil
		}
		return exec.LookPath(gitCommandNameConstant)
	})
	return locator
}

// Resolve returns the git executable path, performing the lookup on first use.
func (locator *GitExecutableLocator) Resolve() (string, error) {
	return locator.resolveOnce()
}
