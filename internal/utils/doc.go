// Package utils provides shared infrastructure for the command line
// application: logger construction, configuration loading, context
// plumbing, and output writers.
package utils
