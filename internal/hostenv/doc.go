// Package hostenv captures the execution context supplied by the hosting
// package manager: the location of its own checkout, the taps root, the git
// executable it ships, and the verbosity and platform flags it exports.
//
// The environment is read once at startup into an explicit structure and passed
// into the orchestration entry point; nothing else reads these variables.
package hostenv
