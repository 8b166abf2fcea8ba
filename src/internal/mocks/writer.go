package mocks

import (
	"github.com/maksimkurb/ip-ranges/src/internal/ranges"
)

// MockWriter is a mock implementation of the output.Writer interface.
//
// Written lists are kept in memory instead of files.
type MockWriter struct {
	// CheckDirFunc is called by CheckDir if not nil
	CheckDirFunc func() error

	// WriteFunc is called by Write if not nil
	WriteFunc func(servers, combined []ranges.Network) error

	// Track calls and written lists for verification
	CheckDirCalls int
	WriteCalls    int
	Servers       []ranges.Network
	Combined      []ranges.Network
}

// CheckDir reports whether the output directory is usable.
//
// If CheckDirFunc is set, it calls that function.
// Otherwise, returns nil.
func (m *MockWriter) CheckDir() error {
	m.CheckDirCalls++
	if m.CheckDirFunc != nil {
		return m.CheckDirFunc()
	}
	return nil
}

// Write stores both lists.
func (m *MockWriter) Write(servers, combined []ranges.Network) error {
	m.WriteCalls++
	if m.WriteFunc != nil {
		return m.WriteFunc(servers, combined)
	}
	m.Servers = append([]ranges.Network(nil), servers...)
	m.Combined = append([]ranges.Network(nil), combined...)
	return nil
}
