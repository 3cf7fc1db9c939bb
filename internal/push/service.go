package push

import (
	"context"
	"errors"
	"strings"

	"github.com/forkpush/forkpush/internal/gitrepo"
	"github.com/forkpush/forkpush/internal/ui"
)

const (
	resolverMissingMessageConstant   = "push service requires a fork remote resolver"
	pusherMissingMessageConstant     = "push service requires a branch pusher"
	discovererMissingMessageConstant = "push service requires a tap discoverer"
	pushedMessageTemplateConstant    = "PUSHED: %s -> %s (%s)\n"
	skippedMessageTemplateConstant   = "SKIP: %s (%s)\n"
	failedMessageTemplateConstant    = "FAILED: %s (%v)\n"
	branchListSeparatorConstant      = ", "
	emptyPrimaryPathReasonConstant   = "no primary repository configured"
)

// ErrResolverNotConfigured indicates the service was constructed without a resolver.
var ErrResolverNotConfigured = errors.New(resolverMissingMessageConstant)

// ErrPusherNotConfigured indicates the service was constructed without a pusher.
var ErrPusherNotConfigured = errors.New(pusherMissingMessageConstant)

// ErrDiscovererNotConfigured indicates the service was constructed without a tap discoverer.
var ErrDiscovererNotConfigured = errors.New(discovererMissingMessageConstant)

// ForkResolver resolves and describes the fork remote of a repository.
type ForkResolver interface {
	Resolve(executionContext context.Context, repositoryPath string) (string, error)
	DescribeForkRemote(executionContext context.Context, repositoryPath string, remoteName string) string
}

// RepositoryPusher pushes an ordered branch list of one repository to its fork remote.
type RepositoryPusher interface {
	Push(executionContext context.Context, repositoryPath string, remoteName string, branchNames []string, verbosity gitrepo.PushVerbosity) error
}

// TapLister enumerates installed tap repositories beneath a taps root.
type TapLister interface {
	DiscoverTapDirectories(tapsRoot string, excludedNameSuffix string) ([]string, error)
}

// Dependencies enumerates the collaborators required by the push service.
type Dependencies struct {
	Resolver   ForkResolver
	Pusher     RepositoryPusher
	Discoverer TapLister
	Reporter   ui.Reporter
}

// Options configures a single push run.
type Options struct {
	PrimaryRepositoryPath string
	TapsRoot              string
	ExcludedTapNameSuffix string
	PrimaryBranches       []string
	TapBranches           []string
	Verbose               bool
}

// Service orchestrates the primary and tap push phases.
type Service struct {
	resolver   ForkResolver
	pusher     RepositoryPusher
	discoverer TapLister
	reporter   ui.Reporter
}

// NewService constructs a Service from the provided dependencies.
func NewService(dependencies Dependencies) (*Service, error) {
	if dependencies.Resolver == nil {
		return nil, ErrResolverNotConfigured
	}
	if dependencies.Pusher == nil {
		return nil, ErrPusherNotConfigured
	}
	if dependencies.Discoverer == nil {
		return nil, ErrDiscovererNotConfigured
	}

	reporter := dependencies.Reporter
	if reporter == nil {
		reporter = ui.NewSilentReporter()
	}

	return &Service{
		resolver:   dependencies.Resolver,
		pusher:     dependencies.Pusher,
		discoverer: dependencies.Discoverer,
		reporter:   reporter,
	}, nil
}

// Run executes the primary phase followed by the tap phase. Per-repository failures
// are narrated in verbose mode and never abort the run; only context cancellation
// stops the iteration early.
func (service *Service) Run(executionContext context.Context, options Options) error {
	primaryRepositoryPath := strings.TrimSpace(options.PrimaryRepositoryPath)
	if len(primaryRepositoryPath) == 0 {
		service.narrate(options.Verbose, skippedMessageTemplateConstant, options.PrimaryRepositoryPath, emptyPrimaryPathReasonConstant)
	} else {
		if contextError := executionContext.Err(); contextError != nil {
			return contextError
		}
		service.pushRepository(executionContext, primaryRepositoryPath, options.PrimaryBranches, options.Verbose)
	}

	tapDirectories, discoveryError := service.discoverer.DiscoverTapDirectories(options.TapsRoot, options.ExcludedTapNameSuffix)
	if discoveryError != nil {
		service.narrate(options.Verbose, skippedMessageTemplateConstant, options.TapsRoot, discoveryError.Error())
		return nil
	}

	for _, tapDirectory := range tapDirectories {
		if contextError := executionContext.Err(); contextError != nil {
			return contextError
		}
		service.pushRepository(executionContext, tapDirectory, options.TapBranches, options.Verbose)
	}

	return nil
}

func (service *Service) pushRepository(executionContext context.Context, repositoryPath string, branchNames []string, verbose bool) {
	forkRemoteName, resolveError := service.resolver.Resolve(executionContext, repositoryPath)
	if resolveError != nil {
		service.narrate(verbose, skippedMessageTemplateConstant, repositoryPath, skipReason(resolveError))
		return
	}

	verbosity := gitrepo.PushVerbosityQuiet
	if verbose {
		verbosity = gitrepo.PushVerbosityVerbose
	}

	if pushError := service.pusher.Push(executionContext, repositoryPath, forkRemoteName, branchNames, verbosity); pushError != nil {
		service.narrate(verbose, failedMessageTemplateConstant, repositoryPath, pushError)
		return
	}

	forkRemoteDescription := forkRemoteName
	if verbose {
		forkRemoteDescription = service.resolver.DescribeForkRemote(executionContext, repositoryPath, forkRemoteName)
	}
	service.narrate(verbose, pushedMessageTemplateConstant, repositoryPath, forkRemoteDescription, strings.Join(branchNames, branchListSeparatorConstant))
}

func (service *Service) narrate(verbose bool, messageTemplate string, messageArguments ...any) {
	if !verbose {
		return
	}
	service.reporter.Printf(messageTemplate, messageArguments...)
}

func skipReason(resolveError error) string {
	switch {
	case errors.Is(resolveError, ErrNotARepository):
		return notARepositoryMessageConstant
	case errors.Is(resolveError, ErrNoForkRemote):
		return noForkRemoteMessageConstant
	case errors.Is(resolveError, ErrAmbiguousForkRemote):
		return ambiguousForkRemoteMessageConstant
	default:
		return resolveError.Error()
	}
}
