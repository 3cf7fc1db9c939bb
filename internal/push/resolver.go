package push

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/forkpush/forkpush/internal/gitrepo"
)

const (
	notARepositoryMessageConstant         = "not a git repository"
	noForkRemoteMessageConstant           = "no remotes other than origin"
	ambiguousForkRemoteMessageConstant    = "multiple remotes other than origin"
	remoteInspectorMissingMessageConstant = "fork remote resolver requires a remote inspector"
	forkRemoteWithOwnerTemplateConstant   = "%s (%s)"
)

// ErrNotARepository indicates the repository path is missing or git refused to operate on it.
var ErrNotARepository = errors.New(notARepositoryMessageConstant)

// ErrNoForkRemote indicates the repository has no remote besides origin.
var ErrNoForkRemote = errors.New(noForkRemoteMessageConstant)

// ErrAmbiguousForkRemote indicates the repository has more than one remote besides origin.
var ErrAmbiguousForkRemote = errors.New(ambiguousForkRemoteMessageConstant)

// ErrRemoteInspectorNotConfigured indicates the resolver was constructed without a remote inspector.
var ErrRemoteInspectorNotConfigured = errors.New(remoteInspectorMissingMessageConstant)

// RemoteInspector exposes the remote queries needed to resolve a fork remote.
type RemoteInspector interface {
	ListRemoteNames(executionContext context.Context, repositoryPath string) ([]string, error)
	GetRemoteURL(executionContext context.Context, repositoryPath string, remoteName string) (string, error)
}

// ForkRemoteResolver determines the personal fork remote of a repository.
type ForkRemoteResolver struct {
	remoteInspector RemoteInspector
	originName      string
}

// NewForkRemoteResolver constructs a ForkRemoteResolver treating the provided remote name as origin.
func NewForkRemoteResolver(remoteInspector RemoteInspector, originName string) (*ForkRemoteResolver, error) {
	if remoteInspector == nil {
		return nil, ErrRemoteInspectorNotConfigured
	}

	trimmedOriginName := strings.TrimSpace(originName)
	if len(trimmedOriginName) == 0 {
		trimmedOriginName = defaultOriginNameConstant
	}

	return &ForkRemoteResolver{remoteInspector: remoteInspector, originName: trimmedOriginName}, nil
}

// Resolve returns the single non-origin remote name of the repository. Remote names are
// enumerated fresh on every call. A missing directory, a git failure, and remote counts
// other than one all yield sentinel errors the caller treats as skip outcomes.
func (resolver *ForkRemoteResolver) Resolve(executionContext context.Context, repositoryPath string) (string, error) {
	trimmedRepositoryPath := strings.TrimSpace(repositoryPath)
	if len(trimmedRepositoryPath) == 0 {
		return "", fmt.Errorf("%w: empty repository path", ErrNotARepository)
	}

	if _, statError := os.Stat(trimmedRepositoryPath); statError != nil {
		return "", fmt.Errorf("%w: %s", ErrNotARepository, trimmedRepositoryPath)
	}

	remoteNames, listError := resolver.remoteInspector.ListRemoteNames(executionContext, trimmedRepositoryPath)
	if listError != nil {
		return "", fmt.Errorf("%w: %s", ErrNotARepository, trimmedRepositoryPath)
	}

	forkRemoteNames := make([]string, 0, len(remoteNames))
	for _, remoteName := range remoteNames {
		if remoteName == resolver.originName {
			continue
		}
		forkRemoteNames = append(forkRemoteNames, remoteName)
	}

	switch len(forkRemoteNames) {
	case 0:
		return "", fmt.Errorf("%w: %s", ErrNoForkRemote, trimmedRepositoryPath)
	case 1:
		return forkRemoteNames[0], nil
	default:
		return "", fmt.Errorf("%w: %s has %s", ErrAmbiguousForkRemote, trimmedRepositoryPath, strings.Join(forkRemoteNames, ", "))
	}
}

// DescribeForkRemote returns a human-readable label for the resolved fork remote,
// including the fork owner when the remote URL parses. Failures fall back to the
// bare remote name; this is diagnostics only and never affects control flow.
func (resolver *ForkRemoteResolver) DescribeForkRemote(executionContext context.Context, repositoryPath string, remoteName string) string {
	remoteURL, urlError := resolver.remoteInspector.GetRemoteURL(executionContext, repositoryPath, remoteName)
	if urlError != nil {
		return remoteName
	}

	parsedRemoteURL, parseError := gitrepo.ParseRemoteURL(remoteURL)
	if parseError != nil {
		return remoteName
	}

	return fmt.Sprintf(forkRemoteWithOwnerTemplateConstant, remoteName, parsedRemoteURL.Owner)
}
