// Package utils holds small helpers shared by the other packages: resolving
// configured paths relative to the configuration file and closing resources
// with a logged warning instead of a silently dropped error.
package utils
