// Package ui renders operator-facing output: a Reporter for narration lines and
// a console observer that traces executed commands when debug mode is enabled.
package ui
