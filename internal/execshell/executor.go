package execshell

import (
	"context"

	"go.uber.org/zap"
)

const (
	commandStartedLogMessageConstant   = "executing command"
	commandCompletedLogMessageConstant = "command completed"
	commandFailedLogMessageConstant    = "command execution failed"
	logFieldCommandConstant            = "command"
	logFieldArgumentsConstant          = "arguments"
	logFieldWorkingDirectoryConstant   = "working_directory"
	logFieldExitCodeConstant           = "exit_code"
	logFieldStandardErrorConstant      = "standard_error"
)

// ShellExecutor runs shell commands with structured logging and event notifications.
type ShellExecutor struct {
	logger        *zap.Logger
	commandRunner CommandRunner
	eventObserver CommandEventObserver
}

// NewShellExecutor constructs a ShellExecutor after validating its collaborators.
func NewShellExecutor(logger *zap.Logger, commandRunner CommandRunner) (*ShellExecutor, error) {
	if logger == nil {
		return nil, ErrLoggerNotConfigured
	}
	if commandRunner == nil {
		return nil, ErrCommandRunnerNotConfigured
	}

	return &ShellExecutor{
		logger:        logger,
		commandRunner: commandRunner,
		eventObserver: noopCommandEventObserver{},
	}, nil
}

// SetCommandEventObserver installs an observer receiving command lifecycle events.
func (executor *ShellExecutor) SetCommandEventObserver(eventObserver CommandEventObserver) {
	if eventObserver == nil {
		executor.eventObserver = noopCommandEventObserver{}
		return
	}
	executor.eventObserver = eventObserver
}

// ExecuteGit runs git with the provided invocation details.
func (executor *ShellExecutor) ExecuteGit(executionContext context.Context, details CommandDetails) (ExecutionResult, error) {
	return executor.execute(executionContext, ShellCommand{Name: CommandGit, Details: details})
}

func (executor *ShellExecutor) execute(executionContext context.Context, command ShellCommand) (ExecutionResult, error) {
	executor.logger.Debug(
		commandStartedLogMessageConstant,
		zap.String(logFieldCommandConstant, string(command.Name)),
		zap.Strings(logFieldArgumentsConstant, command.Details.Arguments),
		zap.String(logFieldWorkingDirectoryConstant, command.Details.WorkingDirectory),
	)
	executor.eventObserver.CommandStarted(command)

	executionResult, runError := executor.commandRunner.Run(executionContext, command)
	if runError != nil {
		executor.logger.Debug(
			commandFailedLogMessageConstant,
			zap.String(logFieldCommandConstant, string(command.Name)),
			zap.Error(runError),
		)
		executor.eventObserver.CommandExecutionFailed(command, runError)
		return ExecutionResult{}, CommandExecutionError{Command: command, Cause: runError}
	}

	executor.logger.Debug(
		commandCompletedLogMessageConstant,
		zap.String(logFieldCommandConstant, string(command.Name)),
		zap.Int(logFieldExitCodeConstant, executionResult.ExitCode),
		zap.String(logFieldStandardErrorConstant, executionResult.StandardError),
	)
	executor.eventObserver.CommandCompleted(command, executionResult)

	if executionResult.ExitCode != 0 {
		return executionResult, CommandFailedError{Command: command, Result: executionResult}
	}

	return executionResult, nil
}
