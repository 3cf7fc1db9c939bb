package execshell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

const environmentAssignmentTemplateConstant = "%s=%s"

// OSCommandRunner executes commands using the operating system facilities.
type OSCommandRunner struct {
	gitLocator *GitExecutableLocator
}

// NewOSCommandRunner constructs a runner backed by os/exec that finds git on PATH.
func NewOSCommandRunner() *OSCommandRunner {
	return NewOSCommandRunnerWithLocator(NewGitExecutableLocator(""))
}

// NewOSCommandRunnerWithLocator constructs a runner using the provided git locator.
func NewOSCommandRunnerWithLocator(gitLocator *GitExecutableLocator) *OSCommandRunner {
	return &OSCommandRunner{gitLocator: gitLocator}
}

// Run executes the supplied command using os/exec, honoring context cancellation.
func (runner *OSCommandRunner) Run(executionContext context.Context, command ShellCommand) (ExecutionResult, error) {
	executablePath, resolveError := runner.resolveExecutablePath(command.Name)
	if resolveError != nil {
		return ExecutionResult{}, resolveError
	}

	commandArguments := append([]string{}, command.Details.Arguments...)
	executable := exec.CommandContext(executionContext, executablePath, commandArguments...)

	if len(command.Details.WorkingDirectory) > 0 {
		executable.Dir = command.Details.WorkingDirectory
	}

	if len(command.Details.EnvironmentVariables) > 0 {
		mergedEnvironment := append([]string{}, os.Environ()...)
		for environmentKey, environmentValue := range command.Details.EnvironmentVariables {
			mergedEnvironment = append(mergedEnvironment, fmt.Sprintf(environmentAssignmentTemplateConstant, environmentKey, environmentValue))
		}
		executable.Env = mergedEnvironment
	}

	var standardOutputBuffer bytes.Buffer
	var standardErrorBuffer bytes.Buffer
	executable.Stdout = &standardOutputBuffer
	executable.Stderr = &standardErrorBuffer

	if len(command.Details.StandardInput) > 0 {
		executable.Stdin = bytes.NewReader(command.Details.StandardInput)
	}

	runError := executable.Run()
	if runError != nil {
		exitError := &exec.ExitError{}
		if errors.As(runError, &exitError) {
			return ExecutionResult{
				StandardOutput: standardOutputBuffer.String(),
				StandardError:  standardErrorBuffer.String(),
				ExitCode:       exitError.ExitCode(),
			}, nil
		}
		return ExecutionResult{}, runError
	}

	return ExecutionResult{
		StandardOutput: standardOutputBuffer.String(),
		StandardError:  standardErrorBuffer.String(),
		ExitCode:       0,
	}, nil
}

func (runner *OSCommandRunner) resolveExecutablePath(commandName CommandName) (string, error) {
	if commandName == CommandGit && runner.gitLocator != nil {
		return runner.gitLocator.Resolve()
	}
	return string(commandName), nil
}
