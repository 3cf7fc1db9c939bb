// Package cli assembles the forkpush command line application:
// configuration loading, logger construction, signal handling, and the
// cobra command hierarchy.
package cli
