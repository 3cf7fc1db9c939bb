package push

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/forkpush/forkpush/internal/execshell"
	"github.com/forkpush/forkpush/internal/gitrepo"
	"github.com/forkpush/forkpush/internal/hostenv"
	"github.com/forkpush/forkpush/internal/taps"
	"github.com/forkpush/forkpush/internal/ui"
	"github.com/forkpush/forkpush/internal/utils"
	"github.com/forkpush/forkpush/internal/utils/flags"
)

const (
	commandUseConstant              = "push"
	commandShortDescriptionConstant = "Push local branches to the personal fork remote"
	commandLongDescriptionConstant  = "push force-pushes the configured local branches of the package manager's core repository and the master branch of every installed tap to the single non-origin remote of each repository."
	verboseFlagNameConstant         = "verbose"
	verboseFlagShorthandConstant    = "v"
	verboseFlagDescriptionConstant  = "Narrate every repository outcome and request progress output from git push"
	debugFlagNameConstant           = "debug"
	debugFlagShorthandConstant      = "d"
	debugFlagDescriptionConstant    = "Trace every executed git command"
	excludedTapNameSuffixConstant   = "forkpush"
	configFileUsedMessageConstant   = "using configuration file"
	configFileLogFieldConstant      = "config_file"
)

// LoggerProvider yields a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the push command. Zero-value fields resolve to
// production defaults; tests inject substitutes.
type CommandBuilder struct {
	LoggerProvider           LoggerProvider
	ConfigurationProvider    func() CommandConfiguration
	HostEnvironmentLoader    func() (hostenv.HostEnvironment, error)
	WorkingDirectoryResolver func() (string, error)
	GitExecutor              gitrepo.GitExecutor
	Discoverer               TapLister
	Reporter                 ui.Reporter

	verboseFlagValue bool
	debugFlagValue   bool
}

// Build constructs the push command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:                commandUseConstant,
		Short:              commandShortDescriptionConstant,
		Long:               commandLongDescriptionConstant,
		Args:               cobra.NoArgs,
		RunE:               builder.run,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
	}

	flags.AddToggleFlag(command.Flags(), &builder.verboseFlagValue, verboseFlagNameConstant, verboseFlagShorthandConstant, false, verboseFlagDescriptionConstant)
	flags.AddToggleFlag(command.Flags(), &builder.debugFlagValue, debugFlagNameConstant, debugFlagShorthandConstant, false, debugFlagDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, _ []string) error {
	configuration := builder.resolveConfiguration()

	hostEnvironment, environmentError := builder.loadHostEnvironment()
	if environmentError != nil {
		return environmentError
	}
	if validationError := hostEnvironment.Validate(builder.WorkingDirectoryResolver); validationError != nil {
		return validationError
	}

	verbose := configuration.Verbose || hostEnvironment.Verbose
	if command.Flags().Changed(verboseFlagNameConstant) {
		verbose = builder.verboseFlagValue
	}
	debug := configuration.Debug || hostEnvironment.Debug
	if command.Flags().Changed(debugFlagNameConstant) {
		debug = builder.debugFlagValue
	}

	logger := builder.resolveLogger()

	contextAccessor := utils.NewCommandContextAccessor()
	if configurationFilePath, configurationFileAvailable := contextAccessor.ConfigurationFilePath(command.Context()); configurationFileAvailable && configurationFilePath != "" {
		logger.Debug(configFileUsedMessageConstant, zap.String(configFileLogFieldConstant, configurationFilePath))
	}

	gitExecutor, executorError := builder.resolveGitExecutor(logger, hostEnvironment, debug)
	if executorError != nil {
		return executorError
	}

	repositoryManager, managerError := gitrepo.NewRepositoryManager(gitExecutor)
	if managerError != nil {
		return managerError
	}

	resolver, resolverError := NewForkRemoteResolver(repositoryManager, configuration.OriginName)
	if resolverError != nil {
		return resolverError
	}

	pusher, pusherError := NewBranchPusher(repositoryManager)
	if pusherError != nil {
		return pusherError
	}

	service, serviceError := NewService(Dependencies{
		Resolver:   resolver,
		Pusher:     pusher,
		Discoverer: builder.resolveDiscoverer(),
		Reporter:   builder.resolveReporter(command),
	})
	if serviceError != nil {
		return serviceError
	}

	return service.Run(command.Context(), Options{
		PrimaryRepositoryPath: hostEnvironment.RepositoryPath,
		TapsRoot:              hostEnvironment.TapsRoot,
		ExcludedTapNameSuffix: excludedTapNameSuffixConstant,
		PrimaryBranches:       configuration.PrimaryBranches,
		TapBranches:           configuration.TapBranches,
		Verbose:               verbose,
	})
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().Sanitize()
}

func (builder *CommandBuilder) loadHostEnvironment() (hostenv.HostEnvironment, error) {
	if builder.HostEnvironmentLoader == nil {
		return hostenv.LoadHostEnvironment()
	}
	return builder.HostEnvironmentLoader()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func (builder *CommandBuilder) resolveGitExecutor(logger *zap.Logger, hostEnvironment hostenv.HostEnvironment, debug bool) (gitrepo.GitExecutor, error) {
	if builder.GitExecutor != nil {
		return builder.GitExecutor, nil
	}

	commandRunner := execshell.NewOSCommandRunnerWithLocator(execshell.NewGitExecutableLocator(hostEnvironment.GitExecutablePath))
	shellExecutor, executorError := execshell.NewShellExecutor(logger, commandRunner)
	if executorError != nil {
		return nil, executorError
	}
	if debug {
		shellExecutor.SetCommandEventObserver(ui.NewConsoleCommandEventLogger(logger))
	}
	return shellExecutor, nil
}

func (builder *CommandBuilder) resolveDiscoverer() TapLister {
	if builder.Discoverer != nil {
		return builder.Discoverer
	}
	return taps.NewTapDiscoverer()
}

func (builder *CommandBuilder) resolveReporter(command *cobra.Command) ui.Reporter {
	if builder.Reporter != nil {
		return builder.Reporter
	}
	return ui.NewWriterReporter(command.OutOrStdout())
}
