package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/forkpush/forkpush/internal/execshell"
)

const (
	executorNotConfiguredMessageConstant      = "repository manager requires a git executor"
	repositoryPathRequiredMessageConstant     = "repository path must be provided"
	remoteNameRequiredMessageConstant         = "remote name must be provided"
	branchNameRequiredMessageConstant         = "branch name must be provided"
	listRemotesFailureTemplateConstant        = "failed to list remotes in %s: %w"
	remoteURLFailureTemplateConstant          = "failed to read URL of remote %q in %s: %w"
	checkoutFailureTemplateConstant           = "failed to checkout branch %q in %s: %w"
	pushFailureTemplateConstant               = "failed to push branch %q to %q from %s: %w"
	gitRemoteSubcommandConstant               = "remote"
	gitRemoteGetURLSubcommandConstant         = "get-url"
	gitCheckoutSubcommandConstant             = "checkout"
	gitPushSubcommandConstant                 = "push"
	gitForceWithLeaseFlagConstant             = "--force-with-lease"
	gitVerboseFlagConstant                    = "--verbose"
	gitQuietFlagConstant                      = "--quiet"
	gitTerminalPromptEnvironmentNameConstant  = "GIT_TERMINAL_PROMPT"
	gitTerminalPromptEnvironmentValueConstant = "0"
)

// ErrExecutorNotConfigured indicates the repository manager was constructed without an executor.
var ErrExecutorNotConfigured = errors.New(executorNotConfiguredMessageConstant)

// ErrRepositoryPathRequired indicates a repository path argument was empty.
var ErrRepositoryPathRequired = errors.New(repositoryPathRequiredMessageConstant)

// ErrRemoteNameRequired indicates a remote name argument was empty.
var ErrRemoteNameRequired = errors.New(remoteNameRequiredMessageConstant)

// ErrBranchNameRequired indicates a branch name argument was empty.
var ErrBranchNameRequired = errors.New(branchNameRequiredMessageConstant)

// GitExecutor exposes the subset of shell execution used by the repository manager.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// PushVerbosity selects the observability level requested from git push.
type PushVerbosity int

const (
	// PushVerbosityQuiet requests suppressed push output.
	PushVerbosityQuiet PushVerbosity = iota
	// PushVerbosityVerbose requests progress output from git push.
	PushVerbosityVerbose
)

// RepositoryManager performs repository-level git operations through a GitExecutor.
type RepositoryManager struct {
	executor GitExecutor
}

// NewRepositoryManager constructs a RepositoryManager after validating the executor.
func NewRepositoryManager(executor GitExecutor) (*RepositoryManager, error) {
	if executor == nil {
		return nil, ErrExecutorNotConfigured
	}
	return &RepositoryManager{executor: executor}, nil
}

// ListRemoteNames returns the configured remote names for the repository, in git's output order.
func (manager *RepositoryManager) ListRemoteNames(executionContext context.Context, repositoryPath string) ([]string, error) {
	trimmedRepositoryPath := strings.TrimSpace(repositoryPath)
	if len(trimmedRepositoryPath) == 0 {
		return nil, ErrRepositoryPathRequired
	}

	executionResult, executionError := manager.executeGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitRemoteSubcommandConstant},
		WorkingDirectory: trimmedRepositoryPath,
	})
	if executionError != nil {
		return nil, fmt.Errorf(listRemotesFailureTemplateConstant, trimmedRepositoryPath, executionError)
	}

	return splitRemoteNames(executionResult.StandardOutput), nil
}

// GetRemoteURL returns the fetch URL configured for the named remote.
func (manager *RepositoryManager) GetRemoteURL(executionContext context.Context, repositoryPath string, remoteName string) (string, error) {
	trimmedRepositoryPath := strings.TrimSpace(repositoryPath)
	if len(trimmedRepositoryPath) == 0 {
		return "", ErrRepositoryPathRequired
	}
	trimmedRemoteName := strings.TrimSpace(remoteName)
	if len(trimmedRemoteName) == 0 {
		return "", ErrRemoteNameRequired
	}

	executionResult, executionError := manager.executeGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitRemoteSubcommandConstant, gitRemoteGetURLSubcommandConstant, trimmedRemoteName},
		WorkingDirectory: trimmedRepositoryPath,
	})
	if executionError != nil {
		return "", fmt.Errorf(remoteURLFailureTemplateConstant, trimmedRemoteName, trimmedRepositoryPath, executionError)
	}

	return strings.TrimSpace(executionResult.StandardOutput), nil
}

// CheckoutBranch switches the repository working tree to the named branch.
func (manager *RepositoryManager) CheckoutBranch(executionContext context.Context, repositoryPath string, branchName string) error {
	trimmedRepositoryPath := strings.TrimSpace(repositoryPath)
	if len(trimmedRepositoryPath) == 0 {
		return ErrRepositoryPathRequired
	}
	trimmedBranchName := strings.TrimSpace(branchName)
	if len(trimmedBranchName) == 0 {
		return ErrBranchNameRequired
	}

	_, executionError := manager.executeGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitCheckoutSubcommandConstant, trimmedBranchName},
		WorkingDirectory: trimmedRepositoryPath,
	})
	if executionError != nil {
		return fmt.Errorf(checkoutFailureTemplateConstant, trimmedBranchName, trimmedRepositoryPath, executionError)
	}

	return nil
}

// PushBranchForceWithLease pushes the branch to the remote, overwriting only when the
// remote ref still matches its last observed state.
func (manager *RepositoryManager) PushBranchForceWithLease(executionContext context.Context, repositoryPath string, remoteName string, branchName string, verbosity PushVerbosity) error {
	trimmedRepositoryPath := strings.TrimSpace(repositoryPath)
	if len(trimmedRepositoryPath) == 0 {
		return ErrRepositoryPathRequired
	}
	trimmedRemoteName := strings.TrimSpace(remoteName)
	if len(trimmedRemoteName) == 0 {
		return ErrRemoteNameRequired
	}
	trimmedBranchName := strings.TrimSpace(branchName)
	if len(trimmedBranchName) == 0 {
		return ErrBranchNameRequired
	}

	verbosityFlag := gitQuietFlagConstant
	if verbosity == PushVerbosityVerbose {
		verbosityFlag = gitVerboseFlagConstant
	}

	_, executionError := manager.executeGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitPushSubcommandConstant, gitForceWithLeaseFlagConstant, verbosityFlag, trimmedRemoteName, trimmedBranchName},
		WorkingDirectory: trimmedRepositoryPath,
	})
	if executionError != nil {
		return fmt.Errorf(pushFailureTemplateConstant, trimmedBranchName, trimmedRemoteName, trimmedRepositoryPath, executionError)
	}

	return nil
}

func (manager *RepositoryManager) executeGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error) {
	if details.EnvironmentVariables == nil {
		details.EnvironmentVariables = map[string]string{}
	}
	details.EnvironmentVariables[gitTerminalPromptEnvironmentNameConstant] = gitTerminalPromptEnvironmentValueConstant
	return manager.executor.ExecuteGit(executionContext, details)
}

func splitRemoteNames(standardOutput string) []string {
	remoteNames := []string{}
	for _, outputLine := range strings.Split(standardOutput, "\n") {
		trimmedLine := strings.TrimSpace(outputLine)
		if len(trimmedLine) == 0 {
			continue
		}
		remoteNames = append(remoteNames, trimmedLine)
	}
	return remoteNames
}
