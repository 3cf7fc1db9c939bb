// Package gitrepo contains helpers for interrogating and manipulating Git repositories.
//
// It exposes RepositoryManager for listing remotes, switching branches, and
// force-with-lease pushing through the execshell layer, along with a remote URL
// parser used for fork diagnostics.
package gitrepo
