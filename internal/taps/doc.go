// Package taps enumerates tap repositories installed under the host package
// manager's taps root. Taps live exactly two path segments below the root,
// grouped by owner directory.
package taps
