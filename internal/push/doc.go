// Package push implements the fork synchronization command: it resolves
// the personal fork remote of the package manager's core repository and
// of every installed tap, then force-pushes the configured local
// branches to that fork.
package push
