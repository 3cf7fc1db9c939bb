// Package flags provides pflag helpers for boolean toggle flags that
// accept yes/no style values.
package flags
