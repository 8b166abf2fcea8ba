// Package mocks provides mock implementations for testing.
//
// This package should ONLY be imported in test files (_test.go).
// The Go toolchain will automatically exclude this package from production builds
// since it's not imported in any production code.
//
// Every mock follows the same shape: an optional XxxFunc field overrides the
// behavior of method Xxx, and an XxxCalls counter records how many times the
// method was invoked so tests can assert on ordering and short-circuiting.
package mocks
