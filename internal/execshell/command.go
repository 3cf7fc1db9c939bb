package execshell

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const (
	gitCommandNameConstant                    = "git"
	loggerNotConfiguredMessageConstant        = "shell executor requires a logger"
	commandRunnerNotConfiguredMessageConstant = "shell executor requires a command runner"
	commandFailedTemplateConstant             = "%s exited with code %d%s"
	commandExecutionFailedTemplateConstant    = "%s could not be executed: %v"
	commandLabelSeparatorConstant             = " "
	standardErrorSuffixTemplateConstant       = ": %s"
)

// CommandName identifies an external executable invoked through the executor.
type CommandName string

// CommandGit names the git executable.
const CommandGit CommandName = CommandName(gitCommandNameConstant)

// CommandDetails carries the invocation parameters for a shell command.
type CommandDetails struct {
	Arguments            []string
	WorkingDirectory     string
	EnvironmentVariables map[string]string
	StandardInput        []byte
}

// ShellCommand couples an executable name with its invocation details.
type ShellCommand struct {
	Name    CommandName
	Details CommandDetails
}

// ExecutionResult captures the observable outcome of a completed command.
type ExecutionResult struct {
	StandardOutput string
	StandardError  string
	ExitCode       int
}

// CommandRunner executes shell commands and reports their results.
type CommandRunner interface {
	Run(executionContext context.Context, command ShellCommand) (ExecutionResult, error)
}

// ErrLoggerNotConfigured indicates a ShellExecutor was constructed without a logger.
var ErrLoggerNotConfigured = errors.New(loggerNotConfiguredMessageConstant)

// ErrCommandRunnerNotConfigured indicates a ShellExecutor was constructed without a runner.
var ErrCommandRunnerNotConfigured = errors.New(commandRunnerNotConfiguredMessageConstant)

// CommandFailedError reports a command that ran to completion with a non-zero exit code.
type CommandFailedError struct {
	Command ShellCommand
	Result  ExecutionResult
}

// Error describes the failure including exit code and trailing standard error output.
func (failedError CommandFailedError) Error() string {
	return fmt.Sprintf(
		commandFailedTemplateConstant,
		describeCommand(failedError.Command),
		failedError.Result.ExitCode,
		formatStandardErrorSuffix(failedError.Result.StandardError),
	)
}

// CommandExecutionError reports a command that could not be executed at all.
type CommandExecutionError struct {
	Command ShellCommand
	Cause   error
}

// Error describes the execution failure.
func (executionError CommandExecutionError) Error() string {
	return fmt.Sprintf(commandExecutionFailedTemplateConstant, describeCommand(executionError.Command), executionError.Cause)
}

// Unwrap exposes the underlying cause for errors.Is and errors.As.
func (executionError CommandExecutionError) Unwrap() error {
	return executionError.Cause
}

func describeCommand(command ShellCommand) string {
	commandParts := append([]string{string(command.Name)}, command.Details.Arguments...)
	return strings.Join(commandParts, commandLabelSeparatorConstant)
}

func formatStandardErrorSuffix(standardError string) string {
	trimmedStandardError := strings.TrimSpace(standardError)
	if len(trimmedStandardError) == 0 {
		return ""
	}
	return fmt.Sprintf(standardErrorSuffixTemplateConstant, trimmedStandardError)
}
