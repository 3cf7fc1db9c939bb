package push

import (
	"context"
	"errors"
	"strings"

	"github.com/forkpush/forkpush/internal/gitrepo"
)

const branchOperatorMissingMessageConstant = "branch pusher requires a branch operator"

// ErrBranchOperatorNotConfigured indicates the pusher was constructed without a branch operator.
var ErrBranchOperatorNotConfigured = errors.New(branchOperatorMissingMessageConstant)

// BranchOperator exposes the git operations the pusher performs per branch.
type BranchOperator interface {
	CheckoutBranch(executionContext context.Context, repositoryPath string, branchName string) error
	PushBranchForceWithLease(executionContext context.Context, repositoryPath string, remoteName string, branchName string, verbosity gitrepo.PushVerbosity) error
}

// BranchPusher pushes a list of local branches to a fork remote, one branch at a time.
type BranchPusher struct {
	branchOperator BranchOperator
}

// NewBranchPusher constructs a BranchPusher after validating its dependency.
func NewBranchPusher(branchOperator BranchOperator) (*BranchPusher, error) {
	if branchOperator == nil {
		return nil, ErrBranchOperatorNotConfigured
	}
	return &BranchPusher{branchOperator: branchOperator}, nil
}

// Push checks out and force-pushes each branch in order. The next branch never starts
// before the previous one completed; the first failure aborts the remaining branches.
// The working tree is intentionally left on the last branch processed.
func (pusher *BranchPusher) Push(executionContext context.Context, repositoryPath string, remoteName string, branchNames []string, verbosity gitrepo.PushVerbosity) error {
	for _, branchName := range branchNames {
		trimmedBranchName := strings.TrimSpace(branchName)
		if len(trimmedBranchName) == 0 {
			continue
		}

		if checkoutError := pusher.branchOperator.CheckoutBranch(executionContext, repositoryPath, trimmedBranchName); checkoutError != nil {
			return checkoutError
		}

		if pushError := pusher.branchOperator.PushBranchForceWithLease(executionContext, repositoryPath, remoteName, trimmedBranchName, verbosity); pushError != nil {
			return pushError
		}
	}

	return nil
}
