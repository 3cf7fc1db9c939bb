// Package execshell provides structured helpers for invoking external tools.
//
// It wraps os/exec with logging via ShellExecutor, exposes OSCommandRunner for
// default process execution, and defines the abstractions forkpush uses to run
// git in a testable manner, including lazy resolution of the git executable
// path supplied by the hosting package manager.
package execshell
